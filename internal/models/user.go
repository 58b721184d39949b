package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// User statuses as stored in the users table.
const (
	StatusActive = "active"
	StatusBanned = "banned"
)

// User is a registered participant account on the public site.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u" json:"-"`

	ID           uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	Username     string    `bun:"username" json:"username"`
	Email        string    `bun:"email" json:"email"`
	Phone        string    `bun:"phone" json:"phone"`
	BirthDate    string    `bun:"birth_date" json:"birth_date"`
	PasswordHash string    `bun:"password_hash" json:"-"`
	Status       string    `bun:"status" json:"status"`
	CreatedAt    time.Time `bun:"created_at,nullzero" json:"created_at"`
	UpdatedAt    time.Time `bun:"updated_at,nullzero" json:"updated_at"`
}

// Admin is a back-office staff account with a privilege level.
type Admin struct {
	bun.BaseModel `bun:"table:admins,alias:a" json:"-"`

	ID           uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	Username     string    `bun:"username" json:"username"`
	Email        string    `bun:"email" json:"email"`
	PasswordHash string    `bun:"password_hash" json:"-"`
	Level        int       `bun:"level" json:"level"`
	CreatedAt    time.Time `bun:"created_at,nullzero" json:"created_at"`
}

// Privilege maps an admin level to its access list.
type Privilege struct {
	bun.BaseModel `bun:"table:privilage,alias:p" json:"-"`

	Level int      `bun:"level,pk" json:"level"`
	Akses []string `bun:"akses,array" json:"akses"`
}

// UserOnline records the last time a user logged in, keyed by username.
type UserOnline struct {
	bun.BaseModel `bun:"table:user_online,alias:uo" json:"-"`

	Username  string    `bun:"username,pk" json:"username"`
	UpdatedAt time.Time `bun:"updated_at,nullzero" json:"updated_at"`
}
