package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Website is a source site a participant claims identity on. Participant
// ids are only unique per website, so a tebakan always carries both.
type Website struct {
	bun.BaseModel `bun:"table:websites,alias:w" json:"-"`

	ID          uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	Nama        string    `bun:"nama" json:"nama"`
	LinkWebsite string    `bun:"link_website" json:"link_website"`
	CreatedAt   time.Time `bun:"created_at,nullzero" json:"created_at"`
}

// Tebakan is one participant's guess entry for a lomba.
//
// Number holds one or more candidate numbers separated by "-". The triple
// (LombaID, WebsiteID, UseridWebsite) is unique: a participant gets at most
// one entry per source site per contest, enforced on the write path.
type Tebakan struct {
	bun.BaseModel `bun:"table:tebakan,alias:t" json:"-"`

	ID            uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	LombaID       uuid.UUID `bun:"lomba_id,type:uuid" json:"lomba_id"`
	WebsiteID     uuid.UUID `bun:"website_id,type:uuid" json:"website_id"`
	UseridWebsite string    `bun:"userid_website" json:"userid_website"`
	Number        string    `bun:"number" json:"number"`
	CreatedAt     time.Time `bun:"created_at,nullzero" json:"created_at"`

	Website *Website `bun:"rel:belongs-to,join:website_id=id" json:"websites,omitempty"`
}

// FakeUser marks a participant identity on a source site as house-seeded.
// Markers are global: they are not scoped to any lomba.
type FakeUser struct {
	bun.BaseModel `bun:"table:fake_users,alias:f" json:"-"`

	UseridWebsite string    `bun:"userid_website,pk" json:"userid_website"`
	WebsiteID     uuid.UUID `bun:"website_id,pk,type:uuid" json:"website_id"`
	CreatedAt     time.Time `bun:"created_at,nullzero" json:"created_at"`
}
