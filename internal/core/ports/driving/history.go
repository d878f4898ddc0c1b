package driving

import (
	"context"

	"github.com/custodia-labs/kalk-cli/internal/core/domain"
)

// HistoryService provides access to past calculations.
type HistoryService interface {
	// List returns up to limit calculations, newest first.
	// A limit of zero or less returns everything kept.
	List(ctx context.Context, limit int) ([]domain.Calculation, error)

	// Get retrieves a calculation by ID.
	Get(ctx context.Context, id string) (*domain.Calculation, error)

	// Delete removes a single calculation.
	Delete(ctx context.Context, id string) error

	// Clear removes all calculations.
	Clear(ctx context.Context) error
}
