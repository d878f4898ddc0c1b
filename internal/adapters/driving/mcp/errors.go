// Package mcp provides an MCP (Model Context Protocol) server adapter for kalk.
// It lets AI assistants evaluate expressions and read calculation history.
package mcp

import "errors"

// ErrMissingCalculatorService is returned when the calculator service is not provided.
var ErrMissingCalculatorService = errors.New("mcp: calculator service is required")
