package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/logger"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"tebakangka/internal/models"
	"tebakangka/internal/store"
)

// Credential and account-state errors. The register errors carry the
// user-facing messages the site shows, field by field.
var (
	ErrInvalidCredentials = errors.New("username/email atau password salah")
	ErrAccountBanned      = errors.New("akun Anda telah dibanned sementara waktu")
	ErrUsernameTaken      = errors.New("username sudah digunakan")
	ErrEmailTaken         = errors.New("email sudah terdaftar")
	ErrPhoneTaken         = errors.New("nomor telepon sudah terdaftar")
)

// SessionClaims is the JWT payload of a logged-in session. Level is zero
// for participant sessions and the staff privilege level for admin ones.
type SessionClaims struct {
	Username string `json:"username"`
	Level    int    `json:"level,omitempty"`
	jwt.RegisteredClaims
}

// RegisterInput is the payload of a registration request.
type RegisterInput struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	BirthDate string `json:"birthDate"`
	Password  string `json:"password"`
}

// AuthService handles registration, login and session tokens for both
// participants and back-office staff.
type AuthService struct {
	users  store.UserStore
	secret []byte
	ttl    time.Duration
}

// NewAuthService creates an AuthService signing sessions with secret.
func NewAuthService(users store.UserStore, secret string, ttl time.Duration) *AuthService {
	return &AuthService{users: users, secret: []byte(secret), ttl: ttl}
}

// Register creates a participant account after checking each uniqueness
// field separately, so the caller can say which one is taken.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: username, email dan password harus diisi", ErrInvalidState)
	}

	checks := []struct {
		field, value string
		taken        error
	}{
		{"username", in.Username, ErrUsernameTaken},
		{"email", in.Email, ErrEmailTaken},
		{"phone", in.Phone, ErrPhoneTaken},
	}
	for _, check := range checks {
		if check.value == "" {
			continue
		}
		_, err := s.users.GetUserByField(ctx, check.field, check.value)
		if err == nil {
			return nil, check.taken
		}
		if !errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("check %s: %w", check.field, err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := &models.User{
		ID:           uuid.New(),
		Username:     in.Username,
		Email:        in.Email,
		Phone:        in.Phone,
		BirthDate:    in.BirthDate,
		PasswordHash: string(hash),
		Status:       models.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	logger.Infof("registered user %s", user.Username)
	return user, nil
}

// Login authenticates a participant by username or email and returns a
// session token. A banned account is rejected even with the right
// password, and a successful login refreshes the user's presence record.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (string, *models.User, error) {
	user, err := s.users.GetUserByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("load user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}
	if user.Status == models.StatusBanned {
		return "", nil, ErrAccountBanned
	}

	token, err := s.issueToken(user.ID.String(), user.Username, 0)
	if err != nil {
		return "", nil, err
	}
	if err := s.users.UpsertUserOnline(ctx, user.Username); err != nil {
		// Presence is best effort; a login must not fail on it.
		logger.Errorf("failed to record online user %s: %v", user.Username, err)
	}
	return token, user, nil
}

// AdminLogin authenticates a staff account and returns a session token
// carrying its privilege level.
func (s *AuthService) AdminLogin(ctx context.Context, identifier, password string) (string, *models.Admin, error) {
	admin, err := s.users.GetAdminByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("load admin: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}
	token, err := s.issueToken(admin.ID.String(), admin.Username, admin.Level)
	if err != nil {
		return "", nil, err
	}
	return token, admin, nil
}

// ParseToken validates a session token and returns its claims.
func (s *AuthService) ParseToken(tokenString string) (*SessionClaims, error) {
	claims := new(SessionClaims)
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}
	if !token.Valid {
		return nil, ErrInvalidCredentials
	}
	return claims, nil
}

func (s *AuthService) issueToken(subject, username string, level int) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		Username: username,
		Level:    level,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
