package file

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, ConfigFile), store.Path())
	assert.NoFileExists(t, store.Path(), "nothing is written until a value is set")
}

func TestNewConfigStore_DefaultDirFromEnv(t *testing.T) {
	home := filepath.Join(t.TempDir(), "kalk-home")
	t.Setenv(HomeEnv, home)

	store, err := NewConfigStore("")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ConfigFile), store.Path())
	assert.DirExists(t, home)
}

func TestHomeDir(t *testing.T) {
	t.Run("env override", func(t *testing.T) {
		t.Setenv(HomeEnv, "/opt/kalk")
		dir, err := HomeDir()
		require.NoError(t, err)
		assert.Equal(t, "/opt/kalk", dir)
	})

	t.Run("user home", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv(HomeEnv, "")
		t.Setenv("HOME", home)
		dir, err := HomeDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".kalk"), dir)
	})
}

func TestNewConfigStore_MkdirAllError(t *testing.T) {
	store, err := NewConfigStore("/dev/null/cannot/create/dirs")

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNewConfigStore_LoadCorruptedFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ConfigFile), []byte("not toml {{[["), 0600))

	store, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("history.backend", "sqlite"))
	require.NoError(t, store.Set("history.limit", 250))
	require.NoError(t, store.Set("display.grouping", true))

	assert.Equal(t, "sqlite", store.GetString("history.backend"))
	assert.Equal(t, 250, store.GetInt("history.limit"))
	assert.True(t, store.GetBool("display.grouping"))

	assert.Empty(t, store.GetString("history.limit"))
	assert.Zero(t, store.GetInt("history.backend"))
	assert.False(t, store.GetBool("history.backend"))

	_, ok := store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("history.limit", 42))
	require.NoError(t, store.Set("display.grouping", false))

	reopened, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	// TOML integers come back as int64.
	val, ok := reopened.Get("history.limit")
	require.True(t, ok)
	assert.Equal(t, int64(42), val)
	assert.Equal(t, 42, reopened.GetInt("history.limit"))

	_, ok = reopened.Get("display.grouping")
	assert.True(t, ok)
	assert.False(t, reopened.GetBool("display.grouping"))
}

func TestConfigStore_WritesTables(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("history.limit", 10))
	require.NoError(t, store.Set("history.backend", "memory"))

	content, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(content), "[history]")
	assert.Contains(t, string(content), "limit = 10")
	assert.Contains(t, string(content), "backend = 'memory'")
}

func TestConfigStore_ReadsHandWrittenFile(t *testing.T) {
	tmpDir := t.TempDir()
	content := "[history]\nlimit = 7\nbackend = \"memory\"\n\n[display]\ngrouping = false\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ConfigFile), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, 7, store.GetInt("history.limit"))
	assert.Equal(t, "memory", store.GetString("history.backend"))
	_, ok := store.Get("display.grouping")
	assert.True(t, ok)
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("history.limit", 1))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_SetWithUnmarshallableValue(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	err = store.Set("channel", make(chan int))

	assert.Error(t, err)
}

func TestConfigStore_Load_InvalidTOMLKeepsData(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("history.limit", 3))

	require.NoError(t, os.WriteFile(store.Path(), []byte("][}{"), 0600))

	assert.Error(t, store.Load())
	assert.Equal(t, 3, store.GetInt("history.limit"))
}

func TestConfigStore_Concurrency(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			_ = store.Set("history.limit", n+1)
		}(i)
		go func() {
			defer wg.Done()
			_ = store.GetInt("history.limit")
		}()
	}
	wg.Wait()

	assert.Positive(t, store.GetInt("history.limit"))
}

func TestFlattenAndNestMap(t *testing.T) {
	nested := map[string]any{
		"history": map[string]any{"limit": int64(5), "backend": "sqlite"},
		"top":     true,
	}

	flat := flattenMap(nested, "")
	assert.Equal(t, map[string]any{
		"history.limit":   int64(5),
		"history.backend": "sqlite",
		"top":             true,
	}, flat)

	assert.Equal(t, nested, nestMap(flat))
}

func TestConfigStore_Watch_ExternalChange(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("history.limit", 100))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- store.Watch(ctx, func() { calls.Add(1) })
	}()

	// Give the watcher time to register.
	time.Sleep(100 * time.Millisecond)

	other, err := NewConfigStore(filepath.Dir(store.Path()))
	require.NoError(t, err)
	require.NoError(t, other.Set("history.limit", 5))

	assert.Eventually(t, func() bool {
		return store.GetInt("history.limit") == 5 && calls.Load() > 0
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestConfigStore_Watch_IgnoresOwnWrites(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	go func() {
		_ = store.Watch(ctx, func() { calls.Add(1) })
	}()
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, store.Set("display.grouping", false))
	time.Sleep(200 * time.Millisecond)

	assert.Zero(t, calls.Load())
}
