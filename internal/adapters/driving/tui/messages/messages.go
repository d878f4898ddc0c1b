// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/kalk-cli/internal/core/domain"
)

// Tab identifies which tab is currently active.
type Tab int

const (
	// TabCalculator holds the expression input and result.
	TabCalculator Tab = iota
	// TabHistory lists past calculations.
	TabHistory
)

// AllTabs returns the tabs in display order.
func AllTabs() []Tab {
	return []Tab{TabCalculator, TabHistory}
}

// String returns the tab title.
func (t Tab) String() string {
	switch t {
	case TabCalculator:
		return "Calculator"
	case TabHistory:
		return "History"
	default:
		return "Unknown"
	}
}

// Next returns the tab to the right, wrapping around.
func (t Tab) Next() Tab {
	tabs := AllTabs()
	return tabs[(int(t)+1)%len(tabs)]
}

// Prev returns the tab to the left, wrapping around.
func (t Tab) Prev() Tab {
	tabs := AllTabs()
	return tabs[(int(t)+len(tabs)-1)%len(tabs)]
}

// TabChanged is sent when switching tabs.
type TabChanged struct {
	Tab Tab
}

// CalculationCompleted carries the outcome of evaluating Expression.
type CalculationCompleted struct {
	Expression  string
	Calculation *domain.Calculation
	Err         error
}

// HistoryLoaded carries calculations, newest first.
type HistoryLoaded struct {
	Calculations []domain.Calculation
	Err          error
}

// HistoryDeleted signals that a history entry was removed.
type HistoryDeleted struct {
	ID  string
	Err error
}

// ExpressionRecalled asks the Calculator tab to load an expression.
type ExpressionRecalled struct {
	Expression string
}

// SettingsChanged signals that the configuration file changed on disk.
type SettingsChanged struct{}

// StatusChanged replaces the status bar message.
type StatusChanged struct {
	Message string
	IsError bool
}

// Quit signals the application should exit.
type Quit struct{}
