package mcp

import (
	"context"
	"time"

	"github.com/custodia-labs/kalk-cli/internal/core/calc"
	"github.com/custodia-labs/kalk-cli/internal/core/domain"
)

// mockCalculatorService is a mock implementation of driving.CalculatorService
// backed by the real engine.
type mockCalculatorService struct {
	evaluated []string
}

func (m *mockCalculatorService) Evaluate(_ context.Context, expr string) (*domain.Calculation, error) {
	m.evaluated = append(m.evaluated, expr)
	value, err := calc.Evaluate(expr)
	if err != nil {
		return nil, err
	}
	return &domain.Calculation{
		ID:         "calc-1",
		Expression: expr,
		Result:     value,
		Display:    calc.Format(value),
		CreatedAt:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}, nil
}

func (m *mockCalculatorService) Format(value float64) string {
	return calc.Format(value)
}

// mockHistoryService is a mock implementation of driving.HistoryService.
type mockHistoryService struct {
	calcs     []domain.Calculation
	err       error
	lastLimit int
}

func (m *mockHistoryService) List(_ context.Context, limit int) ([]domain.Calculation, error) {
	m.lastLimit = limit
	if m.err != nil {
		return nil, m.err
	}
	if limit > 0 && limit < len(m.calcs) {
		return m.calcs[:limit], nil
	}
	return m.calcs, nil
}

func (m *mockHistoryService) Get(_ context.Context, id string) (*domain.Calculation, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.calcs {
		if m.calcs[i].ID == id {
			return &m.calcs[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockHistoryService) Delete(_ context.Context, _ string) error {
	return m.err
}

func (m *mockHistoryService) Clear(_ context.Context) error {
	return m.err
}

func sampleHistory() []domain.Calculation {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return []domain.Calculation{
		{ID: "c2", Expression: "1000*1000", Result: 1e6, Display: "1'000'000", CreatedAt: at.Add(time.Minute)},
		{ID: "c1", Expression: "1+1", Result: 2, Display: "2", CreatedAt: at},
	}
}
