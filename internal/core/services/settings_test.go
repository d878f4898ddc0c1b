package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/kalk-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/kalk-cli/internal/core/domain"
)

func TestNewSettingsService(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())
	require.NotNil(t, service)
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppSettings(), *settings)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore(map[string]any{
		"history.limit":    int64(25),
		"history.backend":  "memory",
		"display.grouping": false,
	})
	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, 25, settings.History.Limit)
	assert.Equal(t, domain.HistoryBackendMemory, settings.History.Backend)
	assert.False(t, settings.Display.Grouping)
}

func TestSettingsService_Get_InvalidValuesReturnDefaults(t *testing.T) {
	store := memory.NewConfigStore(map[string]any{
		"history.limit":    -3,
		"history.backend":  "postgres",
		"display.grouping": "yes",
	})
	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultHistoryLimit, settings.History.Limit)
	assert.Equal(t, domain.HistoryBackendSQLite, settings.History.Backend)
	// Present but not a bool reads as false.
	assert.False(t, settings.Display.Grouping)
}

func TestSettingsService_Save(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	err := service.Save(&domain.AppSettings{
		History: domain.HistorySettings{Limit: 10, Backend: domain.HistoryBackendMemory},
		Display: domain.DisplaySettings{Grouping: false},
	})

	require.NoError(t, err)
	assert.Equal(t, 10, store.GetInt("history.limit"))
	assert.Equal(t, "memory", store.GetString("history.backend"))
	_, exists := store.Get("display.grouping")
	assert.True(t, exists)
	assert.False(t, store.GetBool("display.grouping"))
}

func TestSettingsService_Save_Validates(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	err := service.Save(&domain.AppSettings{
		History: domain.HistorySettings{Limit: 0, Backend: domain.HistoryBackendSQLite},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = service.Save(&domain.AppSettings{
		History: domain.HistorySettings{Limit: 5, Backend: "redis"},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsService_SetHistoryLimit(t *testing.T) {
	tests := []struct {
		name    string
		limit   int
		wantErr bool
	}{
		{"minimum", 1, false},
		{"default", domain.DefaultHistoryLimit, false},
		{"maximum", domain.MaxHistoryLimit, false},
		{"zero", 0, true},
		{"negative", -1, true},
		{"too large", domain.MaxHistoryLimit + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewConfigStore()
			service := NewSettingsService(store)

			err := service.SetHistoryLimit(tt.limit)

			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				_, exists := store.Get("history.limit")
				assert.False(t, exists)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.limit, store.GetInt("history.limit"))
		})
	}
}

func TestSettingsService_SetHistoryBackend(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NoError(t, service.SetHistoryBackend(domain.HistoryBackendMemory))
	assert.Equal(t, "memory", store.GetString("history.backend"))

	err := service.SetHistoryBackend("cloud")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "memory", store.GetString("history.backend"))
}

func TestSettingsService_SetGrouping(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NoError(t, service.SetGrouping(false))

	settings, err := service.Get()
	require.NoError(t, err)
	assert.False(t, settings.Display.Grouping)
}

func TestSettingsService_GetDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())
	assert.Equal(t, domain.DefaultAppSettings(), service.GetDefaults())
}

func TestSettingsService_ConfigPath(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())
	assert.Equal(t, ":memory:", service.ConfigPath())
}
