package mcp

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/kalk-cli/internal/core/domain"
)

// defaultHistoryLimit is used when the history tool is called without a limit.
const defaultHistoryLimit = 10

// EvaluateInput is the input schema for the evaluate tool.
type EvaluateInput struct {
	Expression string `json:"expression" jsonschema:"arithmetic expression using + - * / ^ and parentheses"`
}

// EvaluateOutput is the output schema for the evaluate tool.
type EvaluateOutput struct {
	ID         string  `json:"id,omitempty"`
	Expression string  `json:"expression"`
	Value      float64 `json:"value"`
	Display    string  `json:"display"`
}

// FormatInput is the input schema for the format_number tool.
type FormatInput struct {
	Value float64 `json:"value" jsonschema:"the number to format"`
}

// FormatOutput is the output schema for the format_number tool.
type FormatOutput struct {
	Display string `json:"display"`
}

// HistoryInput is the input schema for the history tool.
type HistoryInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum number of calculations to return (default 10)"`
}

// HistoryOutput is the output schema for the history tool.
type HistoryOutput struct {
	Calculations []CalculationOutput `json:"calculations"`
	Count        int                 `json:"count"`
}

// CalculationOutput represents a single stored calculation.
type CalculationOutput struct {
	ID         string  `json:"id"`
	Expression string  `json:"expression"`
	Value      float64 `json:"value"`
	Display    string  `json:"display"`
	CreatedAt  string  `json:"created_at"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "evaluate",
		Description: "Evaluate an arithmetic expression and record it in history",
	}, s.handleEvaluate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "format_number",
		Description: "Format a number with apostrophe thousands separators",
	}, s.handleFormat)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "history",
		Description: "List recent calculations, newest first",
	}, s.handleHistory)
}

// handleEvaluate handles the evaluate tool invocation.
func (s *Server) handleEvaluate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input EvaluateInput,
) (*mcp.CallToolResult, EvaluateOutput, error) {
	c, err := s.ports.Calculator.Evaluate(ctx, input.Expression)
	if err != nil {
		return nil, EvaluateOutput{}, fmt.Errorf("%s: %w", domain.UserMessage(err), err)
	}

	return nil, EvaluateOutput{
		ID:         c.ID,
		Expression: c.Expression,
		Value:      c.Result,
		Display:    c.Display,
	}, nil
}

// handleFormat handles the format_number tool invocation.
func (s *Server) handleFormat(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input FormatInput,
) (*mcp.CallToolResult, FormatOutput, error) {
	if math.IsInf(input.Value, 0) || math.IsNaN(input.Value) {
		return nil, FormatOutput{}, fmt.Errorf("%w: value must be finite", domain.ErrInvalidInput)
	}
	return nil, FormatOutput{Display: s.ports.Calculator.Format(input.Value)}, nil
}

// handleHistory handles the history tool invocation.
func (s *Server) handleHistory(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input HistoryInput,
) (*mcp.CallToolResult, HistoryOutput, error) {
	if s.ports.History == nil {
		return nil, HistoryOutput{Calculations: []CalculationOutput{}}, nil
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	calcs, err := s.ports.History.List(ctx, limit)
	if err != nil {
		return nil, HistoryOutput{}, fmt.Errorf("listing history: %w", err)
	}

	output := HistoryOutput{
		Calculations: make([]CalculationOutput, len(calcs)),
		Count:        len(calcs),
	}
	for i := range calcs {
		output.Calculations[i] = toOutput(calcs[i])
	}

	return nil, output, nil
}

func toOutput(c domain.Calculation) CalculationOutput {
	return CalculationOutput{
		ID:         c.ID,
		Expression: c.Expression,
		Value:      c.Result,
		Display:    c.Display,
		CreatedAt:  c.CreatedAt.UTC().Format(time.RFC3339),
	}
}
