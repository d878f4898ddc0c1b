package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/kalk-cli/internal/core/domain"
)

var baseTime = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func calcAt(id string, offset int) domain.Calculation {
	return domain.Calculation{
		ID:         id,
		Expression: "1+" + id,
		Result:     1,
		Display:    "1",
		CreatedAt:  baseTime.Add(time.Duration(offset) * time.Second),
	}
}

func TestHistoryStore_SaveAndGet(t *testing.T) {
	store := NewHistoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, calcAt("a", 0)))

	got, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "1+a", got.Expression)
}

func TestHistoryStore_Get_NotFound(t *testing.T) {
	store := NewHistoryStore()

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHistoryStore_Save_ReplacesSameID(t *testing.T) {
	store := NewHistoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, calcAt("a", 0)))
	updated := calcAt("a", 0)
	updated.Display = "2"
	require.NoError(t, store.Save(ctx, updated))

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	got, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "2", got.Display)
}

func TestHistoryStore_List_NewestFirst(t *testing.T) {
	store := NewHistoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, calcAt("b", 2)))
	require.NoError(t, store.Save(ctx, calcAt("a", 1)))
	require.NoError(t, store.Save(ctx, calcAt("c", 3)))

	all, err := store.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "c", all[0].ID)
	assert.Equal(t, "b", all[1].ID)
	assert.Equal(t, "a", all[2].ID)

	limited, err := store.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
	assert.Equal(t, "c", limited[0].ID)
}

func TestHistoryStore_List_SameTimestampUsesInsertionOrder(t *testing.T) {
	store := NewHistoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, calcAt("first", 0)))
	require.NoError(t, store.Save(ctx, calcAt("second", 0)))

	all, err := store.List(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, "second", all[0].ID)
	assert.Equal(t, "first", all[1].ID)
}

func TestHistoryStore_Delete(t *testing.T) {
	store := NewHistoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, calcAt("a", 0)))
	require.NoError(t, store.Save(ctx, calcAt("b", 1)))
	require.NoError(t, store.Save(ctx, calcAt("c", 2)))

	require.NoError(t, store.Delete(ctx, "b"))
	require.NoError(t, store.Delete(ctx, "missing"))

	_, err := store.Get(ctx, "b")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	got, err := store.Get(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, "c", got.ID)
}

func TestHistoryStore_Clear(t *testing.T) {
	store := NewHistoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, calcAt("a", 0)))
	require.NoError(t, store.Clear(ctx))

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestHistoryStore_Trim(t *testing.T) {
	store := NewHistoryStore()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, store.Save(ctx, calcAt(fmt.Sprintf("c%d", i), i)))
	}

	removed, err := store.Trim(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	all, err := store.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "c4", all[0].ID)
	assert.Equal(t, "c2", all[2].ID)

	_, err = store.Get(ctx, "c0")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	removed, err = store.Trim(ctx, 10)
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestHistoryStore_ConcurrentSave(t *testing.T) {
	store := NewHistoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = store.Save(ctx, calcAt(fmt.Sprintf("c%d", n), n))
		}(i)
	}
	wg.Wait()

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 100, count)
}
