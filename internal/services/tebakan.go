package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"tebakangka/internal/models"
	"tebakangka/internal/store"
)

// TebakanService manages guess submissions.
type TebakanService struct {
	lomba   store.LombaStore
	tebakan store.TebakanStore
}

// NewTebakanService creates a TebakanService.
func NewTebakanService(lomba store.LombaStore, tebakan store.TebakanStore) *TebakanService {
	return &TebakanService{lomba: lomba, tebakan: tebakan}
}

// Submit records a guess for a lomba. The lomba must exist and be
// unsettled, every "-"-separated candidate must be a digit string at least
// as long as the lomba's match length, and the (lomba, website,
// participant) triple must not have submitted before.
func (s *TebakanService) Submit(ctx context.Context, t *models.Tebakan) error {
	if t.UseridWebsite == "" || t.Number == "" {
		return fmt.Errorf("%w: userid and number are required", ErrInvalidState)
	}

	lomba, err := s.lomba.GetLomba(ctx, t.LombaID)
	if err != nil {
		return fmt.Errorf("load lomba: %w", err)
	}
	if lomba.Settled() {
		return fmt.Errorf("%w: lomba %s is already settled", ErrInvalidState, t.LombaID)
	}

	k := leadingInt(lomba.GuessType)
	for _, part := range strings.Split(t.Number, "-") {
		if !isDigits(part) {
			return fmt.Errorf("%w: candidate %q is not a digit string", ErrInvalidState, part)
		}
		if k > 0 && len(part) < k {
			return fmt.Errorf("%w: candidate %q shorter than match length %d", ErrInvalidState, part, k)
		}
	}

	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	return s.tebakan.CreateTebakan(ctx, t)
}

// Participants returns the participant ids that have entered a lomba, the
// public ticker feed.
func (s *TebakanService) Participants(ctx context.Context, lombaID uuid.UUID) ([]string, error) {
	entries, err := s.tebakan.ListTebakan(ctx, lombaID)
	if err != nil {
		return nil, fmt.Errorf("load tebakan: %w", err)
	}
	ids := make([]string, 0, len(entries))
	for _, t := range entries {
		ids = append(ids, t.UseridWebsite)
	}
	return ids, nil
}

// View returns the full submissions of a lomba, newest first, with website
// names populated.
func (s *TebakanService) View(ctx context.Context, lombaID uuid.UUID) ([]models.Tebakan, error) {
	entries, err := s.tebakan.ListTebakan(ctx, lombaID)
	if err != nil {
		return nil, fmt.Errorf("load tebakan: %w", err)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	return entries, nil
}

// WinnerData returns the raw pre-resolution payload: every submission of
// the lomba in arrival order plus the full synthetic-marker set. The lomba
// must exist, settled or not.
func (s *TebakanService) WinnerData(ctx context.Context, lombaID uuid.UUID) ([]models.Tebakan, []models.FakeUser, error) {
	if _, err := s.lomba.GetLomba(ctx, lombaID); err != nil {
		return nil, nil, fmt.Errorf("load lomba: %w", err)
	}
	entries, err := s.tebakan.ListTebakan(ctx, lombaID)
	if err != nil {
		return nil, nil, fmt.Errorf("load tebakan: %w", err)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})
	fakes, err := s.tebakan.ListFakeUsers(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load fake users: %w", err)
	}
	return entries, fakes, nil
}
