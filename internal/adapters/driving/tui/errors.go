package tui

import "errors"

// ErrMissingCalculatorService is returned when the calculator service is not provided.
var ErrMissingCalculatorService = errors.New("tui: calculator service is required")

// ErrMissingHistoryService is returned when the history service is not provided.
var ErrMissingHistoryService = errors.New("tui: history service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
