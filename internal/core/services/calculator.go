package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/kalk-cli/internal/core/calc"
	"github.com/custodia-labs/kalk-cli/internal/core/domain"
	"github.com/custodia-labs/kalk-cli/internal/core/ports/driven"
	"github.com/custodia-labs/kalk-cli/internal/core/ports/driving"
	"github.com/custodia-labs/kalk-cli/internal/logger"
)

// Ensure CalculatorService implements the interface.
var _ driving.CalculatorService = (*CalculatorService)(nil)

// CalculatorService evaluates expressions and records successful results.
type CalculatorService struct {
	history  driven.HistoryStore
	settings driving.SettingsService
	now      func() time.Time
}

// NewCalculatorService creates a new calculator service.
// history may be nil, in which case nothing is recorded.
// settings may be nil, in which case defaults are used.
func NewCalculatorService(
	history driven.HistoryStore,
	settings driving.SettingsService,
) *CalculatorService {
	return &CalculatorService{
		history:  history,
		settings: settings,
		now:      time.Now,
	}
}

// Evaluate evaluates expr and appends the result to history.
// History failures are logged and never fail the evaluation.
func (s *CalculatorService) Evaluate(ctx context.Context, expr string) (*domain.Calculation, error) {
	logger.Debug("evaluating %q", expr)

	value, err := calc.Evaluate(expr)
	if err != nil {
		logger.Debug("evaluation of %q failed: %v", expr, err)
		return nil, err
	}

	settings := s.currentSettings()
	c := &domain.Calculation{
		ID:         uuid.New().String(),
		Expression: strings.TrimSpace(expr),
		Result:     value,
		Display:    formatValue(value, settings.Display.Grouping),
		CreatedAt:  s.now().UTC(),
	}
	logger.Debug("%s", c.String())

	if err := s.record(ctx, *c, settings.History.Limit); err != nil {
		logger.Warn("recording calculation: %v", err)
	}

	return c, nil
}

// Format renders a value using the configured display settings.
func (s *CalculatorService) Format(value float64) string {
	return formatValue(value, s.currentSettings().Display.Grouping)
}

func (s *CalculatorService) record(ctx context.Context, c domain.Calculation, limit int) error {
	if s.history == nil {
		return nil
	}
	if err := s.history.Save(ctx, c); err != nil {
		return fmt.Errorf("saving: %w", err)
	}

	removed, err := s.history.Trim(ctx, limit)
	if err != nil {
		return fmt.Errorf("trimming to %d: %w", limit, err)
	}
	if removed > 0 {
		logger.Info("trimmed %d calculations from history (limit %d)", removed, limit)
	}
	return nil
}

func (s *CalculatorService) currentSettings() domain.AppSettings {
	if s.settings == nil {
		return domain.DefaultAppSettings()
	}
	settings, err := s.settings.Get()
	if err != nil {
		logger.Warn("loading settings, using defaults: %v", err)
		return domain.DefaultAppSettings()
	}
	return *settings
}

func formatValue(value float64, grouping bool) string {
	if grouping {
		return calc.Format(value)
	}
	return calc.FormatPlain(value)
}
