package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tebakangka/internal/models"
	"tebakangka/internal/store"
)

// LombaService manages contests.
type LombaService struct {
	lomba store.LombaStore
}

// NewLombaService creates a LombaService.
func NewLombaService(lomba store.LombaStore) *LombaService {
	return &LombaService{lomba: lomba}
}

// Get returns a lomba by id.
func (s *LombaService) Get(ctx context.Context, id uuid.UUID) (*models.Lomba, error) {
	return s.lomba.GetLomba(ctx, id)
}

// ListByMarket returns the contests of a market for a date, defaulting to
// today, ordered by guess type.
func (s *LombaService) ListByMarket(ctx context.Context, marketID uuid.UUID, tanggal string) ([]models.Lomba, error) {
	if tanggal == "" {
		tanggal = time.Now().Format("2006-01-02")
	}
	return s.lomba.ListLomba(ctx, marketID, tanggal)
}

// Create schedules a lomba. The result is always nil at creation; it is
// recorded later through Settle.
func (s *LombaService) Create(ctx context.Context, l *models.Lomba) error {
	if l.MarketID == uuid.Nil {
		return fmt.Errorf("%w: lomba needs a market", ErrInvalidState)
	}
	if leadingInt(l.GuessType) <= 0 {
		return fmt.Errorf("%w: guess type %q has no usable match length", ErrInvalidState, l.GuessType)
	}
	if l.MaxWinner <= 0 {
		return fmt.Errorf("%w: max_winner must be positive", ErrInvalidState)
	}
	if l.PrizePool < 0 {
		return fmt.Errorf("%w: prize pool cannot be negative", ErrInvalidState)
	}
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.Tanggal == "" {
		l.Tanggal = time.Now().Format("2006-01-02")
	}
	l.Result = nil
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now()
	}
	l.UpdatedAt = l.CreatedAt
	return s.lomba.CreateLomba(ctx, l)
}

// Settle records the drawn result. A result is set once: settling an
// already-settled lomba fails instead of overwriting the recorded draw.
func (s *LombaService) Settle(ctx context.Context, id uuid.UUID, result string) (*models.Lomba, error) {
	if result == "" || !isDigits(result) {
		return nil, fmt.Errorf("%w: result %q is not a digit string", ErrInvalidState, result)
	}
	l, err := s.lomba.GetLomba(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load lomba: %w", err)
	}
	if l.Settled() {
		return nil, fmt.Errorf("%w: lomba %s is already settled", ErrInvalidState, id)
	}
	if k := leadingInt(l.GuessType); k > len(result) {
		return nil, fmt.Errorf("%w: result %q shorter than match length %d", ErrInvalidState, result, k)
	}
	l.Result = &result
	if err := s.lomba.UpdateLomba(ctx, l); err != nil {
		return nil, fmt.Errorf("save result: %w", err)
	}
	return l, nil
}

// UpdatePrize changes the prize pool and winner cap of an unsettled lomba.
func (s *LombaService) UpdatePrize(ctx context.Context, id uuid.UUID, prizePool int64, maxWinner int) (*models.Lomba, error) {
	if prizePool < 0 {
		return nil, fmt.Errorf("%w: prize pool cannot be negative", ErrInvalidState)
	}
	if maxWinner <= 0 {
		return nil, fmt.Errorf("%w: max_winner must be positive", ErrInvalidState)
	}
	l, err := s.lomba.GetLomba(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load lomba: %w", err)
	}
	if l.Settled() {
		return nil, fmt.Errorf("%w: lomba %s is already settled", ErrInvalidState, id)
	}
	l.PrizePool = prizePool
	l.MaxWinner = maxWinner
	if err := s.lomba.UpdateLomba(ctx, l); err != nil {
		return nil, fmt.Errorf("save lomba: %w", err)
	}
	return l, nil
}
