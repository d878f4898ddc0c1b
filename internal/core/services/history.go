package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/kalk-cli/internal/core/domain"
	"github.com/custodia-labs/kalk-cli/internal/core/ports/driven"
	"github.com/custodia-labs/kalk-cli/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService provides access to past calculations.
type HistoryService struct {
	store driven.HistoryStore
}

// NewHistoryService creates a new history service.
// A nil store behaves as an always-empty history.
func NewHistoryService(store driven.HistoryStore) *HistoryService {
	return &HistoryService{store: store}
}

// List returns up to limit calculations, newest first.
func (s *HistoryService) List(ctx context.Context, limit int) ([]domain.Calculation, error) {
	if s.store == nil {
		return []domain.Calculation{}, nil
	}
	calcs, err := s.store.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	return calcs, nil
}

// Get retrieves a calculation by ID.
func (s *HistoryService) Get(ctx context.Context, id string) (*domain.Calculation, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: calculation ID is required", domain.ErrInvalidInput)
	}
	if s.store == nil {
		return nil, domain.ErrNotFound
	}
	return s.store.Get(ctx, id)
}

// Delete removes a single calculation.
func (s *HistoryService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: calculation ID is required", domain.ErrInvalidInput)
	}
	if s.store == nil {
		return nil
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting calculation: %w", err)
	}
	return nil
}

// Clear removes all calculations.
func (s *HistoryService) Clear(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	return nil
}
