package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tebakangka/internal/models"
	"tebakangka/internal/store"
)

func TestCheckStatusCreatesOnFirstSight(t *testing.T) {
	mem := store.NewMemory()
	svc := NewUserService(mem)
	ctx := context.Background()
	id := uuid.New()

	status, err := svc.CheckStatus(ctx, id, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, status)

	user, err := mem.GetUser(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)

	// A second call reads the stored row instead of creating another.
	status, err = svc.CheckStatus(ctx, id, "ignored@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, status)
}

func TestToggleStatus(t *testing.T) {
	mem := store.NewMemory()
	svc := NewUserService(mem)
	ctx := context.Background()
	id := uuid.New()

	_, err := svc.CheckStatus(ctx, id, "bob@example.com")
	require.NoError(t, err)

	user, err := svc.ToggleStatus(ctx, id, models.StatusBanned)
	require.NoError(t, err)
	assert.Equal(t, models.StatusBanned, user.Status)

	_, err = svc.ToggleStatus(ctx, id, "frozen")
	assert.ErrorIs(t, err, ErrInvalidState)

	_, err = svc.ToggleStatus(ctx, uuid.New(), models.StatusActive)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUsernameFallbacks(t *testing.T) {
	mem := store.NewMemory()
	svc := NewUserService(mem)
	ctx := context.Background()

	withName := models.User{ID: uuid.New(), Username: "carol", Email: "carol@example.com"}
	require.NoError(t, mem.CreateUser(ctx, &withName))
	emailOnly := models.User{ID: uuid.New(), Email: "dave@example.com"}
	require.NoError(t, mem.CreateUser(ctx, &emailOnly))

	name, err := svc.Username(ctx, withName.ID)
	require.NoError(t, err)
	assert.Equal(t, "carol", name)

	name, err = svc.Username(ctx, emailOnly.ID)
	require.NoError(t, err)
	assert.Equal(t, "dave", name)

	name, err = svc.Username(ctx, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, "User", name)
}

func TestExistsFieldWhitelist(t *testing.T) {
	mem := store.NewMemory()
	svc := NewUserService(mem)
	ctx := context.Background()

	u := models.User{ID: uuid.New(), Username: "erin", Email: "erin@example.com", Phone: "0812"}
	require.NoError(t, mem.CreateUser(ctx, &u))

	for _, field := range []string{"username", "email", "phone"} {
		exists, err := svc.Exists(ctx, field, map[string]string{
			"username": "erin", "email": "erin@example.com", "phone": "0812",
		}[field])
		require.NoError(t, err)
		assert.True(t, exists, field)
	}

	exists, err := svc.Exists(ctx, "username", "nobody")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = svc.Exists(ctx, "password_hash", "x")
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestContentSlideAutoPosition(t *testing.T) {
	mem := store.NewMemory()
	svc := NewContentService(mem, mem)
	ctx := context.Background()

	first := models.Slide{ImageURL: "https://cdn/a.png"}
	require.NoError(t, svc.CreateSlide(ctx, &first))
	assert.Equal(t, 1, first.Position)

	second := models.Slide{ImageURL: "https://cdn/b.png"}
	require.NoError(t, svc.CreateSlide(ctx, &second))
	assert.Equal(t, 2, second.Position)

	pinned := models.Slide{ImageURL: "https://cdn/c.png", Position: 7}
	require.NoError(t, svc.CreateSlide(ctx, &pinned))
	assert.Equal(t, 7, pinned.Position)

	err := svc.CreateSlide(ctx, &models.Slide{})
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestContentFakeUserValidation(t *testing.T) {
	mem := store.NewMemory()
	svc := NewContentService(mem, mem)
	ctx := context.Background()

	err := svc.AddFakeUser(ctx, &models.FakeUser{UseridWebsite: "bot1"})
	assert.ErrorIs(t, err, ErrInvalidState)

	f := models.FakeUser{UseridWebsite: "bot1", WebsiteID: uuid.New()}
	require.NoError(t, svc.AddFakeUser(ctx, &f))
	assert.False(t, f.CreatedAt.IsZero())
}

func TestProfileByEmail(t *testing.T) {
	mem := store.NewMemory()
	svc := NewUserService(mem)
	ctx := context.Background()

	u := models.User{
		ID: uuid.New(), Username: "frank", Email: "frank@example.com",
		Phone: "0813", BirthDate: "1990-01-15", PasswordHash: "secret-hash",
	}
	require.NoError(t, mem.CreateUser(ctx, &u))

	profile, err := svc.Profile(ctx, "frank@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, profile.ID)
	assert.Equal(t, "frank", profile.Username)
	assert.Equal(t, "1990-01-15", profile.BirthDate)

	_, err = svc.Profile(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestContentContacts(t *testing.T) {
	mem := store.NewMemory()
	svc := NewContentService(mem, mem)
	ctx := context.Background()

	err := svc.CreateContact(ctx, &models.Contact{Name: "WhatsApp"})
	assert.ErrorIs(t, err, ErrInvalidState)

	base := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	first := models.Contact{Name: "WhatsApp", Value: "+62811111111", CreatedAt: base}
	require.NoError(t, svc.CreateContact(ctx, &first))
	assert.NotEqual(t, uuid.Nil, first.ID)

	second := models.Contact{Name: "Telegram", Value: "@tebakangka", CreatedAt: base.Add(time.Minute)}
	require.NoError(t, svc.CreateContact(ctx, &second))

	contacts, err := svc.ListContacts(ctx)
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	assert.Equal(t, "WhatsApp", contacts[0].Name)

	require.NoError(t, svc.DeleteContact(ctx, first.ID))
	assert.ErrorIs(t, svc.DeleteContact(ctx, first.ID), store.ErrNotFound)
}

func TestContentSocialMedia(t *testing.T) {
	mem := store.NewMemory()
	svc := NewContentService(mem, mem)
	ctx := context.Background()

	err := svc.CreateSocialMedia(ctx, &models.SocialMedia{Name: "Instagram"})
	assert.ErrorIs(t, err, ErrInvalidState)

	sm := models.SocialMedia{Name: "Instagram", Link: "https://instagram.com/tebakangka"}
	require.NoError(t, svc.CreateSocialMedia(ctx, &sm))
	assert.NotEqual(t, uuid.Nil, sm.ID)

	social, err := svc.ListSocialMedia(ctx)
	require.NoError(t, err)
	require.Len(t, social, 1)

	require.NoError(t, svc.DeleteSocialMedia(ctx, sm.ID))
	assert.ErrorIs(t, svc.DeleteSocialMedia(ctx, sm.ID), store.ErrNotFound)
}

func TestContentWhitelistValidation(t *testing.T) {
	mem := store.NewMemory()
	svc := NewContentService(mem, mem)
	ctx := context.Background()

	err := svc.AddWhitelistEntry(ctx, &models.WhitelistEntry{Label: "office"})
	assert.ErrorIs(t, err, ErrInvalidState)

	e := models.WhitelistEntry{Value: "203.0.113.7", Label: "office"}
	require.NoError(t, svc.AddWhitelistEntry(ctx, &e))
	assert.NotEqual(t, uuid.Nil, e.ID)
}
