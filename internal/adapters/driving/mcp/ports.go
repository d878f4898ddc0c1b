package mcp

import (
	"github.com/custodia-labs/kalk-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Calculator evaluates expressions and formats numbers.
	Calculator driving.CalculatorService

	// History exposes past calculations. Optional.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Calculator == nil {
		return ErrMissingCalculatorService
	}
	return nil
}
