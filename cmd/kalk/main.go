// Command kalk is a terminal calculator with history, a TUI and an MCP server.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/kalk-cli/internal/adapters/driven/clipboard"
	"github.com/custodia-labs/kalk-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/kalk-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/kalk-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/kalk-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/kalk-cli/internal/core/domain"
	"github.com/custodia-labs/kalk-cli/internal/core/ports/driven"
	"github.com/custodia-labs/kalk-cli/internal/core/services"
	"github.com/custodia-labs/kalk-cli/internal/logger"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	home, err := file.HomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: locating kalk home: %v\n", err)
		return err
	}

	configStore, err := file.NewConfigStore(home)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading config: %v\n", err)
		return err
	}
	settingsService := services.NewSettingsService(configStore)

	history, closeHistory := openHistory(home, settingsService)
	defer closeHistory()

	calculatorService := services.NewCalculatorService(history, settingsService)
	historyService := services.NewHistoryService(history)

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Calculator: calculatorService,
		History:    historyService,
		Settings:   settingsService,
	})
	cli.SetTUIConfig(&cli.TUIConfig{
		Clipboard:   clipboard.New(),
		ConfigStore: configStore,
		HomeDir:     home,
	})

	return cli.Execute()
}

// openHistory returns the configured history store. A SQLite store that
// cannot be opened falls back to memory so calculations still work.
func openHistory(home string, settings *services.SettingsService) (driven.HistoryStore, func()) {
	backend := domain.DefaultAppSettings().History.Backend
	if s, err := settings.Get(); err == nil {
		backend = s.History.Backend
	}

	if backend == domain.HistoryBackendMemory {
		return memory.NewHistoryStore(), func() {}
	}

	store, err := sqlite.NewStore(filepath.Join(home, "data"))
	if err != nil {
		logger.Warn("history database unavailable, keeping history in memory: %v", err)
		return memory.NewHistoryStore(), func() {}
	}
	return store.HistoryStore(), func() {
		if err := store.Close(); err != nil {
			logger.Warn("closing history database: %v", err)
		}
	}
}
