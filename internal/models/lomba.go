package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Market represents a lottery market (pasaran): the schedule/venue a lomba
// belongs to, with its open and close times and display image.
type Market struct {
	bun.BaseModel `bun:"table:markets,alias:m" json:"-"`

	ID        uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	Name      string    `bun:"name" json:"name"`
	Buka      string    `bun:"buka" json:"buka"`
	Tutup     string    `bun:"tutup" json:"tutup"`
	Image     string    `bun:"image" json:"image"`
	CreatedAt time.Time `bun:"created_at,nullzero" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,nullzero" json:"updated_at"`
}

// Lomba represents one guessing contest in a market.
//
// Result is nil until an admin settles the contest with the drawn number.
// It stays a string so leading zeros survive (a result of "0078" is not 78).
// GuessType starts with the match length k: its leading digits encode how
// many trailing digits of Result a guess must reproduce to win.
type Lomba struct {
	bun.BaseModel `bun:"table:lomba,alias:l" json:"-"`

	ID        uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	MarketID  uuid.UUID `bun:"market_id,type:uuid" json:"market_id"`
	Tanggal   string    `bun:"tanggal" json:"tanggal"`
	PrizePool int64     `bun:"prize_pool" json:"prize_pool"`
	Result    *string   `bun:"result" json:"result"`
	GuessType string    `bun:"guess_type" json:"guess_type"`
	MaxWinner int       `bun:"max_winner" json:"max_winner"`
	CreatedAt time.Time `bun:"created_at,nullzero" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,nullzero" json:"updated_at"`

	Market *Market `bun:"rel:belongs-to,join:market_id=id" json:"markets,omitempty"`
}

// Settled reports whether the contest result has been recorded.
func (l *Lomba) Settled() bool {
	return l.Result != nil
}

// Winner is the derived view of a matching submission. It is never
// persisted: the winner list is recomputed from current data on every call.
//
// MatchingPart is the first candidate part of Number, in split order, whose
// trailing digits equal the contest's target number. IsFake marks
// house-seeded identities; they are annotated, never excluded.
type Winner struct {
	UseridWebsite string    `json:"userid_website"`
	Number        string    `json:"number"`
	CreatedAt     time.Time `json:"created_at"`
	WebsiteID     uuid.UUID `json:"website_id"`
	WebsiteName   string    `json:"website_name,omitempty"`
	IsFake        bool      `json:"isFake"`
	MatchingPart  string    `json:"matchingPart"`
}
