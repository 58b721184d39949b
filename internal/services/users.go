package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/logger"
	"github.com/google/uuid"

	"tebakangka/internal/models"
	"tebakangka/internal/store"
)

// UserService covers the account-status endpoints of the users API.
type UserService struct {
	users store.UserStore
}

// NewUserService creates a UserService.
func NewUserService(users store.UserStore) *UserService {
	return &UserService{users: users}
}

// CheckStatus returns a user's status, creating an active account with
// placeholder profile fields when the id has never been seen. The site
// calls this right after an external login, so an unknown id means a valid
// session whose profile row has not been written yet.
func (s *UserService) CheckStatus(ctx context.Context, id uuid.UUID, email string) (string, error) {
	user, err := s.users.GetUser(ctx, id)
	if err == nil {
		return user.Status, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return "", fmt.Errorf("load user: %w", err)
	}

	username := email
	if at := strings.Index(email, "@"); at > 0 {
		username = email[:at]
	}
	now := time.Now()
	created := &models.User{
		ID:        id,
		Username:  username,
		Email:     email,
		Phone:     "-",
		BirthDate: now.Format("2006-01-02"),
		Status:    models.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.users.CreateUser(ctx, created); err != nil {
		return "", fmt.Errorf("create user: %w", err)
	}
	logger.Infof("created user row for %s on first status check", id)
	return created.Status, nil
}

// ToggleStatus sets a user's status and returns the updated account.
func (s *UserService) ToggleStatus(ctx context.Context, id uuid.UUID, status string) (*models.User, error) {
	if status != models.StatusActive && status != models.StatusBanned {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidState, status)
	}
	return s.users.UpdateUserStatus(ctx, id, status)
}

// Username returns a user's display name, deriving one from the email
// local part and finally falling back to "User" when nothing is stored.
func (s *UserService) Username(ctx context.Context, id uuid.UUID) (string, error) {
	user, err := s.users.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "User", nil
		}
		return "", fmt.Errorf("load user: %w", err)
	}
	if user.Username != "" {
		return user.Username, nil
	}
	if at := strings.Index(user.Email, "@"); at > 0 {
		return user.Email[:at], nil
	}
	return "User", nil
}

// Profile returns the account registered under the given email. The
// handler exposes only the profile fields, never the status or hash.
func (s *UserService) Profile(ctx context.Context, email string) (*models.User, error) {
	return s.users.GetUserByField(ctx, "email", email)
}

// Exists reports whether a user exists with the given value in one of the
// registration-unique fields (username, email, phone).
func (s *UserService) Exists(ctx context.Context, field, value string) (bool, error) {
	switch field {
	case "username", "email", "phone":
	default:
		return false, fmt.Errorf("%w: cannot check field %q", ErrInvalidState, field)
	}
	_, err := s.users.GetUserByField(ctx, field, value)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	return false, fmt.Errorf("check %s: %w", field, err)
}

// Privilege returns the access list of an admin privilege level.
func (s *UserService) Privilege(ctx context.Context, level int) (*models.Privilege, error) {
	return s.users.GetPrivilege(ctx, level)
}
