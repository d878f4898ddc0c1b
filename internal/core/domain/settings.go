package domain

const unknownDescription = "Unknown"

// History limits.
const (
	// DefaultHistoryLimit is the number of calculations kept when unconfigured.
	DefaultHistoryLimit = 1000

	// MaxHistoryLimit is the largest accepted history limit.
	MaxHistoryLimit = 100000
)

// HistoryBackend identifies where calculation history is persisted.
type HistoryBackend string

// Available history backends.
const (
	// HistoryBackendSQLite persists history in a local SQLite database.
	HistoryBackendSQLite HistoryBackend = "sqlite"

	// HistoryBackendMemory keeps history for the lifetime of the process only.
	HistoryBackendMemory HistoryBackend = "memory"
)

// IsValid returns true if the backend is recognised.
func (b HistoryBackend) IsValid() bool {
	switch b {
	case HistoryBackendSQLite, HistoryBackendMemory:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (b HistoryBackend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b HistoryBackend) Description() string {
	switch b {
	case HistoryBackendSQLite:
		return "SQLite (persistent)"
	case HistoryBackendMemory:
		return "Memory (session only)"
	default:
		return unknownDescription
	}
}

// HistorySettings controls how many calculations are kept and where.
type HistorySettings struct {
	// Limit is the maximum number of calculations retained.
	Limit int

	// Backend selects the history store.
	Backend HistoryBackend
}

// IsValidLimit reports whether limit is within the accepted range.
func IsValidLimit(limit int) bool {
	return limit >= 1 && limit <= MaxHistoryLimit
}

// DisplaySettings controls how results are rendered.
type DisplaySettings struct {
	// Grouping inserts apostrophe thousands separators into results.
	Grouping bool
}

// AppSettings holds all user-configurable settings.
type AppSettings struct {
	History HistorySettings
	Display DisplaySettings
}

// DefaultAppSettings returns the settings used when nothing is configured.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		History: HistorySettings{
			Limit:   DefaultHistoryLimit,
			Backend: HistoryBackendSQLite,
		},
		Display: DisplaySettings{
			Grouping: true,
		},
	}
}

// AllHistoryBackends returns every supported backend.
func AllHistoryBackends() []HistoryBackend {
	return []HistoryBackend{HistoryBackendSQLite, HistoryBackendMemory}
}
