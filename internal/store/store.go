// Package store defines the persistence interfaces the services consume and
// their two implementations: a bun/Postgres store for production and a
// mutex-guarded in-memory store for tests and local development.
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"tebakangka/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when an insert violates a uniqueness constraint,
// such as a second tebakan for the same (lomba, website, participant) triple.
var ErrDuplicate = errors.New("record already exists")

// MarketStore is read/write access to markets.
type MarketStore interface {
	ListMarkets(ctx context.Context) ([]models.Market, error)
	GetMarket(ctx context.Context, id uuid.UUID) (*models.Market, error)
	GetMarketByName(ctx context.Context, name string) (*models.Market, error)
	CreateMarket(ctx context.Context, m *models.Market) error
	UpdateMarket(ctx context.Context, m *models.Market) error
	DeleteMarket(ctx context.Context, id uuid.UUID) error
}

// LombaStore is read/write access to contests.
type LombaStore interface {
	GetLomba(ctx context.Context, id uuid.UUID) (*models.Lomba, error)
	// ListLomba returns the contests of a market on a date, ordered by
	// guess_type, each with its market display fields populated.
	ListLomba(ctx context.Context, marketID uuid.UUID, tanggal string) ([]models.Lomba, error)
	CreateLomba(ctx context.Context, l *models.Lomba) error
	UpdateLomba(ctx context.Context, l *models.Lomba) error
}

// TebakanStore is access to submissions and synthetic-entry markers.
type TebakanStore interface {
	// ListTebakan returns every submission ever made for the lomba, with
	// website names populated. No ordering is guaranteed; callers sort.
	ListTebakan(ctx context.Context, lombaID uuid.UUID) ([]models.Tebakan, error)
	// CreateTebakan inserts a submission, returning ErrDuplicate when the
	// (lomba_id, website_id, userid_website) triple already exists.
	CreateTebakan(ctx context.Context, t *models.Tebakan) error
	// ListFakeUsers returns the full, contest-unscoped marker set.
	ListFakeUsers(ctx context.Context) ([]models.FakeUser, error)
	AddFakeUser(ctx context.Context, f *models.FakeUser) error
	RemoveFakeUser(ctx context.Context, useridWebsite string, websiteID uuid.UUID) error
}

// UserStore is access to participant accounts, staff accounts and presence.
type UserStore interface {
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	// GetUserByIdentifier finds a user by username or email.
	GetUserByIdentifier(ctx context.Context, identifier string) (*models.User, error)
	// GetUserByField finds a user by one of the registration-unique fields
	// (username, email, phone).
	GetUserByField(ctx context.Context, field, value string) (*models.User, error)
	CreateUser(ctx context.Context, u *models.User) error
	UpdateUserStatus(ctx context.Context, id uuid.UUID, status string) (*models.User, error)
	UpsertUserOnline(ctx context.Context, username string) error

	GetAdminByIdentifier(ctx context.Context, identifier string) (*models.Admin, error)
	GetPrivilege(ctx context.Context, level int) (*models.Privilege, error)
}

// ContentStore is access to slides, websites, contact channels and the
// whitelist.
type ContentStore interface {
	ListSlides(ctx context.Context) ([]models.Slide, error)
	CreateSlide(ctx context.Context, s *models.Slide) error
	UpdateSlide(ctx context.Context, s *models.Slide) error
	// ReorderSlides bulk-upserts slide positions.
	ReorderSlides(ctx context.Context, slides []models.Slide) error
	DeleteSlide(ctx context.Context, id uuid.UUID) error

	ListWebsites(ctx context.Context) ([]models.Website, error)
	CreateWebsite(ctx context.Context, w *models.Website) error
	DeleteWebsite(ctx context.Context, id uuid.UUID) error

	ListContacts(ctx context.Context) ([]models.Contact, error)
	CreateContact(ctx context.Context, c *models.Contact) error
	DeleteContact(ctx context.Context, id uuid.UUID) error

	ListSocialMedia(ctx context.Context) ([]models.SocialMedia, error)
	CreateSocialMedia(ctx context.Context, s *models.SocialMedia) error
	DeleteSocialMedia(ctx context.Context, id uuid.UUID) error

	ListWhitelist(ctx context.Context) ([]models.WhitelistEntry, error)
	AddWhitelistEntry(ctx context.Context, e *models.WhitelistEntry) error
	RemoveWhitelistEntry(ctx context.Context, id uuid.UUID) error
}

// Store is the full persistence surface of the service.
type Store interface {
	MarketStore
	LombaStore
	TebakanStore
	UserStore
	ContentStore
}
