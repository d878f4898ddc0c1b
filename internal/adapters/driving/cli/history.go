package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/kalk-cli/internal/core/domain"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show and manage past calculations",
	RunE:  runHistoryList,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent calculations, newest first",
	RunE:  runHistoryList,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all calculations",
	RunE:  runHistoryClear,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a single calculation",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

func init() {
	historyCmd.PersistentFlags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of calculations to show (0 = all)")
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historyDeleteCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	calcs, err := historyService.List(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	if len(calcs) == 0 {
		cmd.Println("No calculations yet.")
		return nil
	}

	for i := range calcs {
		cmd.Printf("  %s  %s  %s\n",
			shortID(calcs[i].ID),
			calcs[i].CreatedAt.Local().Format("2006-01-02 15:04"),
			calcs[i].String())
	}
	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	if err := historyService.Clear(cmd.Context()); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}

	cmd.Println("History cleared.")
	return nil
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	id, err := resolveCalculationID(cmd, args[0])
	if err != nil {
		return err
	}
	if err := historyService.Delete(cmd.Context(), id); err != nil {
		return fmt.Errorf("failed to delete calculation: %w", err)
	}

	cmd.Printf("Deleted %s\n", shortID(id))
	return nil
}

// resolveCalculationID accepts a full ID or the short prefix printed by
// "history list".
func resolveCalculationID(cmd *cobra.Command, prefix string) (string, error) {
	if prefix == "" {
		return "", fmt.Errorf("%w: calculation ID is required", domain.ErrInvalidInput)
	}
	if _, err := historyService.Get(cmd.Context(), prefix); err == nil {
		return prefix, nil
	}

	calcs, err := historyService.List(cmd.Context(), 0)
	if err != nil {
		return "", fmt.Errorf("failed to list history: %w", err)
	}

	var match string
	for i := range calcs {
		if strings.HasPrefix(calcs[i].ID, prefix) {
			if match != "" {
				return "", fmt.Errorf("%w: %q matches more than one calculation", domain.ErrInvalidInput, prefix)
			}
			match = calcs[i].ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("calculation %q: %w", prefix, domain.ErrNotFound)
	}
	return match, nil
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
