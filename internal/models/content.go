package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Slide is one banner on the public site carousel, ordered by Position.
type Slide struct {
	bun.BaseModel `bun:"table:slides,alias:s" json:"-"`

	ID             uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	Title          string    `bun:"title" json:"title"`
	ImageURL       string    `bun:"image_url" json:"image_url"`
	ImageMobileURL string    `bun:"image_mobile_url" json:"image_mobile_url"`
	LinkURL        string    `bun:"link_url" json:"link_url"`
	Position       int       `bun:"position" json:"position"`
	CreatedAt      time.Time `bun:"created_at,nullzero" json:"created_at"`
	UpdatedAt      time.Time `bun:"updated_at,nullzero" json:"updated_at"`
}

// Contact is one support-contact channel shown on the public site.
type Contact struct {
	bun.BaseModel `bun:"table:contacts,alias:c" json:"-"`

	ID        uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	Name      string    `bun:"name" json:"name"`
	Value     string    `bun:"value" json:"value"`
	Icon      string    `bun:"icon" json:"icon"`
	CreatedAt time.Time `bun:"created_at,nullzero" json:"created_at"`
}

// SocialMedia is one social profile link shown on the public site.
type SocialMedia struct {
	bun.BaseModel `bun:"table:social_media,alias:sm" json:"-"`

	ID        uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	Name      string    `bun:"name" json:"name"`
	Link      string    `bun:"link" json:"link"`
	Icon      string    `bun:"icon" json:"icon"`
	CreatedAt time.Time `bun:"created_at,nullzero" json:"created_at"`
}

// WhitelistEntry is an IP/domain pair allowed through the admin gate.
type WhitelistEntry struct {
	bun.BaseModel `bun:"table:whitelist,alias:wl" json:"-"`

	ID        uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	Value     string    `bun:"value" json:"value"`
	Label     string    `bun:"label" json:"label"`
	CreatedAt time.Time `bun:"created_at,nullzero" json:"created_at"`
}
