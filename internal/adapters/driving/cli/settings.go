package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/kalk-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change history and display settings.

Settings are stored in config.toml inside the kalk directory
(~/.kalk, or $KALK_HOME when set).`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsLimitCmd = &cobra.Command{
	Use:   "limit <n>",
	Short: "Set how many calculations history keeps",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsLimit,
}

var settingsBackendCmd = &cobra.Command{
	Use:   "backend [sqlite|memory]",
	Short: "Set where history is stored",
	Long: `Set where history is stored.

Available backends:
  sqlite - persisted in the kalk data directory
  memory - kept for the current session only

Without an argument you are prompted to choose.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSettingsBackend,
}

var settingsGroupingCmd = &cobra.Command{
	Use:       "grouping <on|off>",
	Short:     "Enable or disable thousands separators in results",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"on", "off"},
	RunE:      runSettingsGrouping,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsLimitCmd)
	settingsCmd.AddCommand(settingsBackendCmd)
	settingsCmd.AddCommand(settingsGroupingCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[History]")
	cmd.Printf("  Limit: %d\n", settings.History.Limit)
	cmd.Printf("  Backend: %s\n", settings.History.Backend.Description())
	cmd.Println()

	cmd.Println("[Display]")
	cmd.Printf("  Grouping: %s\n", onOff(settings.Display.Grouping))
	cmd.Println()

	cmd.Printf("Config file: %s\n", settingsService.ConfigPath())
	return nil
}

func runSettingsLimit(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	limit, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: %q is not a whole number", domain.ErrInvalidInput, args[0])
	}
	if err := settingsService.SetHistoryLimit(limit); err != nil {
		return fmt.Errorf("failed to set history limit: %w", err)
	}

	cmd.Printf("History limit set to: %d\n", limit)
	return nil
}

func runSettingsBackend(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	var selected domain.HistoryBackend
	if len(args) == 1 {
		selected = domain.HistoryBackend(strings.ToLower(args[0]))
	} else {
		reader := bufio.NewReader(cmd.InOrStdin())

		cmd.Println("Select History Backend")
		cmd.Println("----------------------")
		backends := domain.AllHistoryBackends()
		for i, b := range backends {
			cmd.Printf("  %d. %s\n", i+1, b.Description())
		}
		cmd.Print("\nEnter choice: ")
		idx := parseChoice(readLine(reader), len(backends), 0)
		if idx == 0 {
			return errors.New("invalid selection")
		}
		selected = backends[idx-1]
	}

	if err := settingsService.SetHistoryBackend(selected); err != nil {
		return fmt.Errorf("failed to set history backend: %w", err)
	}

	cmd.Printf("History backend set to: %s\n", selected.Description())
	cmd.Println("The change applies the next time kalk starts.")
	return nil
}

func runSettingsGrouping(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	enabled, err := parseOnOff(args[0])
	if err != nil {
		return err
	}
	if err := settingsService.SetGrouping(enabled); err != nil {
		return fmt.Errorf("failed to set grouping: %w", err)
	}

	cmd.Printf("Grouping: %s\n", onOff(enabled))
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

func parseOnOff(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	default:
		return false, fmt.Errorf("%w: expected on or off, got %q", domain.ErrInvalidInput, s)
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
