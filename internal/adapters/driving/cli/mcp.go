package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/kalk-cli/internal/adapters/driving/mcp"
	"github.com/custodia-labs/kalk-cli/internal/core/domain"
	"github.com/custodia-labs/kalk-cli/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can use kalk.

The server exposes three tools (evaluate, format_number, history) and the
kalk://history resource. Calculations made through MCP are recorded in the
same history as the CLI and TUI.

By default the server communicates over stdio using JSON-RPC. Use --port to
serve streamable HTTP instead; HTTP requests are rate limited.

Examples:
  # Stdio mode (default, for desktop assistants)
  kalk mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  kalk mcp serve --port 8080 --rate 10

Assistant configuration:
  {
    "mcpServers": {
      "kalk": {
        "command": "/path/to/kalk",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpServeCmd.Flags().Float64("rate", mcp.DefaultRequestsPerSecond, "HTTP requests per second")
	mcpServeCmd.Flags().Int("burst", mcp.DefaultBurst, "HTTP request burst size")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	logger.Section("MCP server")

	ports := &mcp.Ports{
		Calculator: calculatorService,
		History:    historyService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if port > 0 {
		perSecond, err := cmd.Flags().GetFloat64("rate")
		if err != nil {
			return fmt.Errorf("getting rate flag: %w", err)
		}
		burst, err := cmd.Flags().GetInt("burst")
		if err != nil {
			return fmt.Errorf("getting burst flag: %w", err)
		}
		if perSecond <= 0 || burst < 1 {
			return fmt.Errorf("%w: rate and burst must be positive", domain.ErrInvalidInput)
		}
		server.WithRateLimit(perSecond, burst)

		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
