package sqlite

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/kalk-cli/internal/core/domain"
)

var baseTime = time.Date(2025, 3, 14, 15, 9, 26, 535897932, time.UTC)

func testCalc(id string, offset int) domain.Calculation {
	return domain.Calculation{
		ID:         id,
		Expression: "2*" + id,
		Result:     1234.5,
		Display:    "1'234.5",
		CreatedAt:  baseTime.Add(time.Duration(offset) * time.Minute),
	}
}

func TestHistoryStore_SaveAndGet(t *testing.T) {
	history := setupTestStore(t).HistoryStore()
	ctx := context.Background()

	calc := testCalc("a", 0)
	require.NoError(t, history.Save(ctx, calc))

	got, err := history.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, calc.ID, got.ID)
	assert.Equal(t, calc.Expression, got.Expression)
	assert.InDelta(t, calc.Result, got.Result, 0)
	assert.Equal(t, calc.Display, got.Display)
	assert.True(t, calc.CreatedAt.Equal(got.CreatedAt))
}

func TestHistoryStore_Get_NotFound(t *testing.T) {
	history := setupTestStore(t).HistoryStore()

	_, err := history.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHistoryStore_SaveUpdate(t *testing.T) {
	history := setupTestStore(t).HistoryStore()
	ctx := context.Background()

	require.NoError(t, history.Save(ctx, testCalc("a", 0)))
	updated := testCalc("a", 0)
	updated.Display = "changed"
	require.NoError(t, history.Save(ctx, updated))

	count, err := history.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	got, err := history.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "changed", got.Display)
}

func TestHistoryStore_List(t *testing.T) {
	history := setupTestStore(t).HistoryStore()
	ctx := context.Background()

	require.NoError(t, history.Save(ctx, testCalc("b", 2)))
	require.NoError(t, history.Save(ctx, testCalc("a", 1)))
	require.NoError(t, history.Save(ctx, testCalc("c", 3)))
	require.NoError(t, history.Save(ctx, testCalc("c2", 3)))

	all, err := history.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, []string{"c2", "c", "b", "a"}, ids(all))

	limited, err := history.List(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"c2", "c"}, ids(limited))
}

func TestHistoryStore_List_Empty(t *testing.T) {
	history := setupTestStore(t).HistoryStore()

	all, err := history.List(context.Background(), 10)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestHistoryStore_DeleteAndClear(t *testing.T) {
	history := setupTestStore(t).HistoryStore()
	ctx := context.Background()

	require.NoError(t, history.Save(ctx, testCalc("a", 0)))
	require.NoError(t, history.Save(ctx, testCalc("b", 1)))

	require.NoError(t, history.Delete(ctx, "a"))
	require.NoError(t, history.Delete(ctx, "missing"))

	_, err := history.Get(ctx, "a")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, history.Clear(ctx))
	count, err := history.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestHistoryStore_Trim(t *testing.T) {
	history := setupTestStore(t).HistoryStore()
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		require.NoError(t, history.Save(ctx, testCalc(fmt.Sprintf("c%d", i), i)))
	}

	removed, err := history.Trim(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	all, err := history.List(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"c5", "c4", "c3", "c2"}, ids(all))

	removed, err = history.Trim(ctx, 100)
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestHistoryStore_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.HistoryStore().Save(ctx, testCalc("kept", 0)))
	require.NoError(t, first.Close())

	second, err := NewStore(dir)
	require.NoError(t, err)
	defer second.Close()

	got, err := second.HistoryStore().Get(ctx, "kept")
	require.NoError(t, err)
	assert.Equal(t, "2*kept", got.Expression)
}

func ids(calcs []domain.Calculation) []string {
	out := make([]string, len(calcs))
	for i, c := range calcs {
		out[i] = c.ID
	}
	return out
}
