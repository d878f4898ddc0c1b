package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/kalk-cli/internal/core/domain"
	"github.com/custodia-labs/kalk-cli/internal/core/ports/driving"
	"github.com/custodia-labs/kalk-cli/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// verbose enables debug logging for every command.
var verbose bool

// Services used by the commands. Nil until SetServices is called.
var (
	calculatorService driving.CalculatorService
	historyService    driving.HistoryService
	settingsService   driving.SettingsService
)

// errReported signals that a command already printed its own errors and
// only a non-zero exit status is still needed.
var errReported = errors.New("errors reported")

// Services groups the driving ports the commands depend on.
type Services struct {
	Calculator driving.CalculatorService
	History    driving.HistoryService
	Settings   driving.SettingsService
}

var rootCmd = &cobra.Command{
	Use:   "kalk",
	Short: "A terminal calculator",
	Long: `kalk evaluates arithmetic expressions with + - * / ^ and parentheses.

Numbers may use apostrophes as thousands separators (1'000'000) and results
are shown the same way. Run without a subcommand to open the interactive
calculator, or use "kalk eval" for one-off calculations.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	RunE: runTUI,
}

func init() {
	// cmd.Print* falls back to stderr; results belong on stdout.
	rootCmd.SetOut(os.Stdout)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging to stderr")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// SetServices injects the services used by the commands.
func SetServices(s Services) {
	calculatorService = s.Calculator
	historyService = s.History
	settingsService = s.Settings
}

// Execute runs the root command and prints any error to stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errReported) {
		fmt.Fprintf(os.Stderr, "Error: %s\n", domain.UserMessage(err))
	}
	return err
}
