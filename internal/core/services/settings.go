package services

import (
	"fmt"

	"github.com/custodia-labs/kalk-cli/internal/core/domain"
	"github.com/custodia-labs/kalk-cli/internal/core/ports/driven"
	"github.com/custodia-labs/kalk-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyHistoryLimit    = "history.limit"
	keyHistoryBackend  = "history.backend"
	keyDisplayGrouping = "display.grouping"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
// Missing or invalid values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		History: domain.HistorySettings{
			Limit:   s.getLimit(defaults.History.Limit),
			Backend: s.getBackend(defaults.History.Backend),
		},
		Display: domain.DisplaySettings{
			Grouping: s.getBool(keyDisplayGrouping, defaults.Display.Grouping),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if !domain.IsValidLimit(settings.History.Limit) {
		return fmt.Errorf("%w: history limit must be between 1 and %d",
			domain.ErrInvalidInput, domain.MaxHistoryLimit)
	}
	if !settings.History.Backend.IsValid() {
		return fmt.Errorf("%w: unknown history backend %q", domain.ErrInvalidInput, settings.History.Backend)
	}

	if err := s.configStore.Set(keyHistoryLimit, settings.History.Limit); err != nil {
		return fmt.Errorf("save history limit: %w", err)
	}
	if err := s.configStore.Set(keyHistoryBackend, settings.History.Backend.String()); err != nil {
		return fmt.Errorf("save history backend: %w", err)
	}
	if err := s.configStore.Set(keyDisplayGrouping, settings.Display.Grouping); err != nil {
		return fmt.Errorf("save display grouping: %w", err)
	}

	return nil
}

// SetHistoryLimit updates the number of calculations kept.
func (s *SettingsService) SetHistoryLimit(limit int) error {
	if !domain.IsValidLimit(limit) {
		return fmt.Errorf("%w: history limit must be between 1 and %d",
			domain.ErrInvalidInput, domain.MaxHistoryLimit)
	}
	if err := s.configStore.Set(keyHistoryLimit, limit); err != nil {
		return fmt.Errorf("save history limit: %w", err)
	}
	return nil
}

// SetHistoryBackend selects where history is stored.
func (s *SettingsService) SetHistoryBackend(backend domain.HistoryBackend) error {
	if !backend.IsValid() {
		return fmt.Errorf("%w: unknown history backend %q", domain.ErrInvalidInput, backend)
	}
	if err := s.configStore.Set(keyHistoryBackend, backend.String()); err != nil {
		return fmt.Errorf("save history backend: %w", err)
	}
	return nil
}

// SetGrouping enables or disables thousands separators in results.
func (s *SettingsService) SetGrouping(enabled bool) error {
	if err := s.configStore.Set(keyDisplayGrouping, enabled); err != nil {
		return fmt.Errorf("save display grouping: %w", err)
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// ConfigPath returns where settings are persisted.
func (s *SettingsService) ConfigPath() string {
	return s.configStore.Path()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getLimit(defaultVal int) int {
	val := s.configStore.GetInt(keyHistoryLimit)
	if !domain.IsValidLimit(val) {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBackend(defaultVal domain.HistoryBackend) domain.HistoryBackend {
	val := s.configStore.GetString(keyHistoryBackend)
	if val == "" {
		return defaultVal
	}
	backend := domain.HistoryBackend(val)
	if !backend.IsValid() {
		return defaultVal
	}
	return backend
}
