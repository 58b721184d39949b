package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tebakangka/internal/models"
	"tebakangka/internal/store"
)

// MarketService manages markets (pasaran).
type MarketService struct {
	markets store.MarketStore
}

// NewMarketService creates a MarketService.
func NewMarketService(markets store.MarketStore) *MarketService {
	return &MarketService{markets: markets}
}

// List returns all markets.
func (s *MarketService) List(ctx context.Context) ([]models.Market, error) {
	return s.markets.ListMarkets(ctx)
}

// Get resolves a market by id, falling back to lookup by name when the
// identifier is not a UUID or no market has that id.
func (s *MarketService) Get(ctx context.Context, idOrName string) (*models.Market, error) {
	if id, err := uuid.Parse(idOrName); err == nil {
		market, err := s.markets.GetMarket(ctx, id)
		if err == nil {
			return market, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
	}
	return s.markets.GetMarketByName(ctx, idOrName)
}

// Create adds a market.
func (s *MarketService) Create(ctx context.Context, m *models.Market) error {
	if m.Name == "" {
		return fmt.Errorf("%w: market name is required", ErrInvalidState)
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	m.UpdatedAt = m.CreatedAt
	return s.markets.CreateMarket(ctx, m)
}

// Update rewrites a market's display fields.
func (s *MarketService) Update(ctx context.Context, m *models.Market) error {
	return s.markets.UpdateMarket(ctx, m)
}

// Delete removes a market.
func (s *MarketService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.markets.DeleteMarket(ctx, id)
}
