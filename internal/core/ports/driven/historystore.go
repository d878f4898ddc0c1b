package driven

import (
	"context"

	"github.com/custodia-labs/kalk-cli/internal/core/domain"
)

// HistoryStore persists calculations.
type HistoryStore interface {
	// Save stores a calculation.
	Save(ctx context.Context, calc domain.Calculation) error

	// Get retrieves a calculation by ID.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, id string) (*domain.Calculation, error)

	// List returns up to limit calculations, newest first.
	// A limit of zero or less returns all of them.
	List(ctx context.Context, limit int) ([]domain.Calculation, error)

	// Delete removes a calculation. Deleting a missing ID is not an error.
	Delete(ctx context.Context, id string) error

	// Clear removes all calculations.
	Clear(ctx context.Context) error

	// Trim removes the oldest calculations so that at most keep remain.
	// Returns the number removed.
	Trim(ctx context.Context, keep int) (int, error)

	// Count returns the number of stored calculations.
	Count(ctx context.Context) (int, error)
}
