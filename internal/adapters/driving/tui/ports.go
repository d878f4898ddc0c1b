// Package tui provides an interactive terminal user interface for kalk.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/kalk-cli/internal/core/ports/driven"
	"github.com/custodia-labs/kalk-cli/internal/core/ports/driving"
)

// Ports aggregates all port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Calculator evaluates expressions and records results.
	Calculator driving.CalculatorService

	// History lists and removes past calculations.
	History driving.HistoryService

	// Settings provides the history limit shown in the History tab. Optional.
	Settings driving.SettingsService

	// Clipboard backs yank and paste. Optional.
	Clipboard driven.Clipboard
}

// NewPorts creates a new Ports aggregate with the required services.
func NewPorts(calculator driving.CalculatorService, history driving.HistoryService) *Ports {
	return &Ports{
		Calculator: calculator,
		History:    history,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Calculator == nil {
		return ErrMissingCalculatorService
	}
	if p.History == nil {
		return ErrMissingHistoryService
	}
	return nil
}
