package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"tebakangka/internal/models"
	"tebakangka/internal/store"
)

const testSecret = "test-secret"

func registerTestUser(t *testing.T, svc *AuthService) *models.User {
	t.Helper()
	user, err := svc.Register(context.Background(), RegisterInput{
		Username:  "alice",
		Email:     "alice@example.com",
		Phone:     "08123456789",
		BirthDate: "2000-01-01",
		Password:  "rahasia123",
	})
	require.NoError(t, err)
	return user
}

func TestRegisterFieldUniqueness(t *testing.T) {
	mem := store.NewMemory()
	svc := NewAuthService(mem, testSecret, time.Hour)
	registerTestUser(t, svc)

	tests := []struct {
		name string
		in   RegisterInput
		want error
	}{
		{
			name: "username taken",
			in:   RegisterInput{Username: "alice", Email: "other@example.com", Phone: "0999", Password: "x12345"},
			want: ErrUsernameTaken,
		},
		{
			name: "email taken",
			in:   RegisterInput{Username: "bob", Email: "alice@example.com", Phone: "0999", Password: "x12345"},
			want: ErrEmailTaken,
		},
		{
			name: "phone taken",
			in:   RegisterInput{Username: "bob", Email: "bob@example.com", Phone: "08123456789", Password: "x12345"},
			want: ErrPhoneTaken,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.in)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRegisterHashesPassword(t *testing.T) {
	mem := store.NewMemory()
	svc := NewAuthService(mem, testSecret, time.Hour)
	user := registerTestUser(t, svc)

	assert.NotEqual(t, "rahasia123", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("rahasia123")))
	assert.Equal(t, models.StatusActive, user.Status)
}

func TestLogin(t *testing.T) {
	mem := store.NewMemory()
	svc := NewAuthService(mem, testSecret, time.Hour)
	user := registerTestUser(t, svc)

	t.Run("by username", func(t *testing.T) {
		token, got, err := svc.Login(context.Background(), "alice", "rahasia123")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)

		claims, err := svc.ParseToken(token)
		require.NoError(t, err)
		assert.Equal(t, "alice", claims.Username)
		assert.Equal(t, user.ID.String(), claims.Subject)
		assert.Zero(t, claims.Level)
	})

	t.Run("by email", func(t *testing.T) {
		_, got, err := svc.Login(context.Background(), "alice@example.com", "rahasia123")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login(context.Background(), "alice", "salah")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown identifier", func(t *testing.T) {
		_, _, err := svc.Login(context.Background(), "nobody", "rahasia123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("banned account", func(t *testing.T) {
		_, err := mem.UpdateUserStatus(context.Background(), user.ID, models.StatusBanned)
		require.NoError(t, err)
		_, _, err = svc.Login(context.Background(), "alice", "rahasia123")
		assert.ErrorIs(t, err, ErrAccountBanned)
	})
}

func TestAdminLogin(t *testing.T) {
	mem := store.NewMemory()
	svc := NewAuthService(mem, testSecret, time.Hour)

	hash, err := bcrypt.GenerateFromPassword([]byte("adminpass"), bcrypt.DefaultCost)
	require.NoError(t, err)
	mem.PutAdmin(models.Admin{
		ID:           uuid.New(),
		Username:     "boss",
		Email:        "boss@example.com",
		PasswordHash: string(hash),
		Level:        2,
	})

	token, admin, err := svc.AdminLogin(context.Background(), "boss", "adminpass")
	require.NoError(t, err)
	assert.Equal(t, 2, admin.Level)

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, 2, claims.Level)

	_, _, err = svc.AdminLogin(context.Background(), "boss", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestParseTokenRejectsForgery(t *testing.T) {
	mem := store.NewMemory()
	svc := NewAuthService(mem, testSecret, time.Hour)
	other := NewAuthService(mem, "another-secret", time.Hour)
	registerTestUser(t, svc)

	token, _, err := svc.Login(context.Background(), "alice", "rahasia123")
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestExpiredTokenRejected(t *testing.T) {
	mem := store.NewMemory()
	svc := NewAuthService(mem, testSecret, -time.Minute)
	registerTestUser(t, svc)

	token, _, err := svc.Login(context.Background(), "alice", "rahasia123")
	require.NoError(t, err)

	_, err = svc.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
