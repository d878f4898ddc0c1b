package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/kalk-cli/internal/core/domain"
	"github.com/custodia-labs/kalk-cli/internal/core/ports/driven"
)

// historyStore implements driven.HistoryStore.
type historyStore struct {
	store *Store
}

var _ driven.HistoryStore = (*historyStore)(nil)

// newestFirst orders calculations by time, then by insertion order.
const newestFirst = "ORDER BY created_at DESC, rowid DESC"

// Save stores or updates a calculation.
func (h *historyStore) Save(ctx context.Context, calc domain.Calculation) error {
	_, err := h.store.db.ExecContext(ctx, `
		INSERT INTO calculations (id, expression, result, display, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			expression = excluded.expression,
			result = excluded.result,
			display = excluded.display,
			created_at = excluded.created_at
	`, calc.ID, calc.Expression, calc.Result, calc.Display, calc.CreatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("saving calculation: %w", err)
	}
	return nil
}

// Get retrieves a calculation by ID.
func (h *historyStore) Get(ctx context.Context, id string) (*domain.Calculation, error) {
	row := h.store.db.QueryRowContext(ctx, `
		SELECT id, expression, result, display, created_at
		FROM calculations WHERE id = ?
	`, id)

	calc, err := scanCalculation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning calculation: %w", err)
	}
	return calc, nil
}

// List returns up to limit calculations, newest first.
func (h *historyStore) List(ctx context.Context, limit int) ([]domain.Calculation, error) {
	// SQLite treats a negative LIMIT as unbounded.
	if limit <= 0 {
		limit = -1
	}

	rows, err := h.store.db.QueryContext(ctx, `
		SELECT id, expression, result, display, created_at
		FROM calculations `+newestFirst+` LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying calculations: %w", err)
	}
	defer rows.Close()

	calcs := make([]domain.Calculation, 0)
	for rows.Next() {
		calc, err := scanCalculation(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning calculation: %w", err)
		}
		calcs = append(calcs, *calc)
	}
	return calcs, rows.Err()
}

// Delete removes a calculation by ID.
func (h *historyStore) Delete(ctx context.Context, id string) error {
	if _, err := h.store.db.ExecContext(ctx, "DELETE FROM calculations WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting calculation: %w", err)
	}
	return nil
}

// Clear removes all calculations.
func (h *historyStore) Clear(ctx context.Context) error {
	if _, err := h.store.db.ExecContext(ctx, "DELETE FROM calculations"); err != nil {
		return fmt.Errorf("clearing calculations: %w", err)
	}
	return nil
}

// Trim removes the oldest calculations so at most keep remain.
func (h *historyStore) Trim(ctx context.Context, keep int) (int, error) {
	if keep < 0 {
		keep = 0
	}

	result, err := h.store.db.ExecContext(ctx, `
		DELETE FROM calculations WHERE id NOT IN (
			SELECT id FROM calculations `+newestFirst+` LIMIT ?
		)
	`, keep)
	if err != nil {
		return 0, fmt.Errorf("trimming calculations: %w", err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting trimmed calculations: %w", err)
	}
	return int(removed), nil
}

// Count returns the number of stored calculations.
func (h *historyStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := h.store.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM calculations").Scan(&count); err != nil {
		return 0, fmt.Errorf("counting calculations: %w", err)
	}
	return count, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanCalculation(row scanner) (*domain.Calculation, error) {
	var (
		calc      domain.Calculation
		createdAt int64
	)
	if err := row.Scan(&calc.ID, &calc.Expression, &calc.Result, &calc.Display, &createdAt); err != nil {
		return nil, err
	}
	calc.CreatedAt = time.Unix(0, createdAt).UTC()
	return &calc, nil
}
