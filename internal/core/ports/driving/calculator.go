package driving

import (
	"context"

	"github.com/custodia-labs/kalk-cli/internal/core/domain"
)

// CalculatorService evaluates expressions and formats results.
type CalculatorService interface {
	// Evaluate evaluates expr and records the result in history.
	// Evaluation failures are returned as *domain.CalcError.
	Evaluate(ctx context.Context, expr string) (*domain.Calculation, error)

	// Format renders a value using the configured display settings.
	Format(value float64) string
}
