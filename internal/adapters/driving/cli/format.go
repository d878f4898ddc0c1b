package cli

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/kalk-cli/internal/core/calc"
	"github.com/custodia-labs/kalk-cli/internal/core/domain"
)

var formatCmd = &cobra.Command{
	Use:   "format <number>",
	Short: "Format a number with thousands separators",
	Long: `Format a number the way kalk displays results.

Integers are grouped exactly; other numbers keep up to 10 decimal places.
Negative numbers need no quoting (kalk format -1234.5). Everything after
-- is taken as the number.`,
	DisableFlagParsing: true,
	RunE:               runFormat,
}

func init() {
	rootCmd.AddCommand(formatCmd)
}

func runFormat(cmd *cobra.Command, args []string) error {
	args, err := parseExpressionArgs(cmd, args)
	if err != nil {
		return err
	}
	if helpRequested(cmd) {
		return cmd.Help()
	}
	if err := cobra.ExactArgs(1)(cmd, args); err != nil {
		return err
	}

	text := calc.Normalize(args[0])

	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		cmd.Println(calc.FormatInt(n))
		return nil
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return fmt.Errorf("%w: %q is not a number", domain.ErrInvalidInput, args[0])
	}
	cmd.Println(calc.Format(f))
	return nil
}
