package cli

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/kalk-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/kalk-cli/internal/core/services"
	"github.com/custodia-labs/kalk-cli/internal/logger"
)

// testEnv wires real services over in-memory stores.
type testEnv struct {
	history *memory.HistoryStore
	config  *memory.ConfigStore
}

func setupServices(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		history: memory.NewHistoryStore(),
		config:  memory.NewConfigStore(),
	}
	settings := services.NewSettingsService(env.config)
	SetServices(Services{
		Calculator: services.NewCalculatorService(env.history, settings),
		History:    services.NewHistoryService(env.history),
		Settings:   settings,
	})
	t.Cleanup(func() { SetServices(Services{}) })
	return env
}

// execute runs the root command with args and captured output.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	t.Cleanup(func() {
		rootCmd.SetOut(os.Stdout)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
		evalRaw, evalNoHistory, evalLenient = false, false, false
		historyLimit = 20
		verbose = false
		logger.SetVerbose(false)
		for _, c := range []*cobra.Command{evalCmd, formatCmd} {
			if f := c.Flags().Lookup("help"); f != nil {
				_ = f.Value.Set("false")
				f.Changed = false
			}
		}
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}
