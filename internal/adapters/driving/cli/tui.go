package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/kalk-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/kalk-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/kalk-cli/internal/core/ports/driven"
	"github.com/custodia-labs/kalk-cli/internal/core/ports/driving"
	"github.com/custodia-labs/kalk-cli/internal/logger"
)

// LogFile is written inside the kalk home when the TUI runs with --verbose.
const LogFile = "kalk.log"

// TUIConfig holds configuration for the TUI command.
type TUIConfig struct {
	CalculatorService driving.CalculatorService
	HistoryService    driving.HistoryService
	SettingsService   driving.SettingsService
	Clipboard         driven.Clipboard

	// ConfigStore, when set, is watched so edits to the config file reach
	// a running TUI.
	ConfigStore driven.WatchableConfigStore

	// HomeDir receives the debug log.
	HomeDir string
}

// tuiConfig holds the current TUI configuration.
var tuiConfig *TUIConfig

// newProgram is replaced in tests.
var newProgram = func(model tea.Model, opts ...tea.ProgramOption) programRunner {
	return tea.NewProgram(model, opts...)
}

// programRunner is the part of tea.Program the command uses.
type programRunner interface {
	Run() (tea.Model, error)
	Send(msg tea.Msg)
}

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive calculator",
	Long: `Launch the interactive terminal calculator. This is also what runs
when kalk is started without a subcommand.

Controls:
  0-9 . + - * / ^ ( )  Type an expression (x means *, : means /)
  Enter, =             Evaluate
  Backspace            Delete last character
  Ctrl+D, Delete       Clear
  ↑/k, ↓/j             Switch focus / move through history
  y, p                 Yank result, paste
  Tab, ←/→             Switch between Calculator and History
  ?                    Toggle help
  q, Ctrl+C            Quit`,
	RunE: runTUI,
}

// SetTUIConfig sets the configuration for the TUI command.
func SetTUIConfig(config *TUIConfig) {
	tuiConfig = config
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	ports := &tui.Ports{
		Calculator: calculatorService,
		History:    historyService,
		Settings:   settingsService,
	}
	if tuiConfig != nil {
		if tuiConfig.CalculatorService != nil {
			ports.Calculator = tuiConfig.CalculatorService
		}
		if tuiConfig.HistoryService != nil {
			ports.History = tuiConfig.HistoryService
		}
		if tuiConfig.SettingsService != nil {
			ports.Settings = tuiConfig.SettingsService
		}
		ports.Clipboard = tuiConfig.Clipboard
	}

	// The alt screen owns stderr, so debug output goes to a file instead.
	if verbose && tuiConfig != nil && tuiConfig.HomeDir != "" {
		closeLog, logErr := logger.SetOutputFile(filepath.Join(tuiConfig.HomeDir, LogFile))
		if logErr != nil {
			return fmt.Errorf("opening log file: %w", logErr)
		}
		defer closeLog() //nolint:errcheck
	}

	logger.Section("TUI")

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()
	app.WithContext(ctx)

	p := newProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))

	if tuiConfig != nil && tuiConfig.ConfigStore != nil {
		store := tuiConfig.ConfigStore
		go func() {
			if watchErr := store.Watch(ctx, func() {
				logger.Debug("config changed on disk, reloading")
				p.Send(messages.SettingsChanged{})
			}); watchErr != nil {
				logger.Warn("config watcher stopped: %v", watchErr)
			}
		}()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
