package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/kalk-cli/internal/core/domain"
	"github.com/custodia-labs/kalk-cli/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory implementation of driven.HistoryStore.
// Calculations are kept in insertion order; history lasts for the session.
type HistoryStore struct {
	mu    sync.RWMutex
	calcs []domain.Calculation
	index map[string]int
}

// NewHistoryStore creates a new in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{
		index: make(map[string]int),
	}
}

// Save stores a calculation, replacing any with the same ID.
func (s *HistoryStore) Save(_ context.Context, calc domain.Calculation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i, ok := s.index[calc.ID]; ok {
		s.calcs[i] = calc
		return nil
	}
	s.index[calc.ID] = len(s.calcs)
	s.calcs = append(s.calcs, calc)
	return nil
}

// Get retrieves a calculation by ID.
func (s *HistoryStore) Get(_ context.Context, id string) (*domain.Calculation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	calc := s.calcs[i]
	return &calc, nil
}

// List returns up to limit calculations, newest first.
func (s *HistoryStore) List(_ context.Context, limit int) ([]domain.Calculation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Calculation, len(s.calcs))
	copy(result, s.calcs)
	// Stable sort keeps insertion order for equal timestamps.
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}

	if limit > 0 && limit < len(result) {
		result = result[:limit]
	}
	return result, nil
}

// Delete removes a calculation by ID.
func (s *HistoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return nil
	}
	s.calcs = append(s.calcs[:i], s.calcs[i+1:]...)
	s.reindex()
	return nil
}

// Clear removes all calculations.
func (s *HistoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calcs = nil
	s.index = make(map[string]int)
	return nil
}

// Trim drops the oldest calculations so at most keep remain.
func (s *HistoryStore) Trim(_ context.Context, keep int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if keep < 0 {
		keep = 0
	}
	excess := len(s.calcs) - keep
	if excess <= 0 {
		return 0, nil
	}

	sort.SliceStable(s.calcs, func(i, j int) bool {
		return s.calcs[i].CreatedAt.Before(s.calcs[j].CreatedAt)
	})
	s.calcs = append([]domain.Calculation(nil), s.calcs[excess:]...)
	s.reindex()
	return excess, nil
}

// Count returns the number of stored calculations.
func (s *HistoryStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.calcs), nil
}

// reindex rebuilds the ID index (caller must hold lock).
func (s *HistoryStore) reindex() {
	s.index = make(map[string]int, len(s.calcs))
	for i, c := range s.calcs {
		s.index[c.ID] = i
	}
}
