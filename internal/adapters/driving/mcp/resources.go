package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/kalk-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for kalk resources.
	uriScheme = "kalk://"

	historyURI = uriScheme + "history"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         historyURI,
		Name:        "history",
		Description: "Stored calculations, newest first",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: historyURI + "/{calculationId}",
		Name:        "calculation",
		Description: "A single stored calculation",
		MIMEType:    "application/json",
	}, s.handleCalculationResource)
}

// handleHistoryResource returns every kept calculation.
func (s *Server) handleHistoryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.History == nil {
		return jsonResult(req.Params.URI, "[]"), nil
	}

	calcs, err := s.ports.History.List(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}

	infos := make([]CalculationOutput, len(calcs))
	for i := range calcs {
		infos[i] = toOutput(calcs[i])
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling history: %w", err)
	}

	return jsonResult(req.Params.URI, string(data)), nil
}

// handleCalculationResource returns one calculation by ID.
func (s *Server) handleCalculationResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.History == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	id := extractCalculationID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	c, err := s.ports.History.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting calculation: %w", err)
	}

	data, err := json.MarshalIndent(toOutput(*c), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling calculation: %w", err)
	}

	return jsonResult(req.Params.URI, string(data)), nil
}

func jsonResult(uri, text string) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     text,
		}},
	}
}

// extractCalculationID extracts the ID from a URI like kalk://history/{calculationId}.
func extractCalculationID(uri string) string {
	const prefix = historyURI + "/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
