package driving

import "github.com/custodia-labs/kalk-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetHistoryLimit updates the number of calculations kept.
	SetHistoryLimit(limit int) error

	// SetHistoryBackend selects where history is stored.
	SetHistoryBackend(backend domain.HistoryBackend) error

	// SetGrouping enables or disables thousands separators in results.
	SetGrouping(enabled bool) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// ConfigPath returns where settings are persisted.
	ConfigPath() string
}
