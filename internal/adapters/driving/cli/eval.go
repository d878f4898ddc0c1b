package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/kalk-cli/internal/core/calc"
	"github.com/custodia-labs/kalk-cli/internal/core/domain"
)

var (
	evalRaw       bool
	evalNoHistory bool
	evalLenient   bool
)

// stdinIsTerminal reports whether stdin is interactive. Tests replace it.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

var evalCmd = &cobra.Command{
	Use:   "eval [expression...]",
	Short: "Evaluate an expression",
	Long: `Evaluate an arithmetic expression and print the result.

Arguments are joined with spaces, so quoting is optional for expressions
without shell metacharacters. With no arguments and piped input, every
non-blank line of stdin is evaluated.

Leading minus signs are read as part of the expression, so "kalk eval -5+3"
works without quoting. Everything after -- is taken as the expression.

Examples:
  kalk eval 1'000 + 250
  kalk eval "(2+3)*4"
  kalk eval --raw -- -(-5)
  echo "2^10" | kalk eval`,
	DisableFlagParsing: true,
	RunE:               runEval,
}

func init() {
	evalCmd.Flags().BoolVar(&evalRaw, "raw", false, "print the full-precision value without grouping")
	evalCmd.Flags().BoolVar(&evalNoHistory, "no-history", false, "do not record the calculation")
	evalCmd.Flags().BoolVar(&evalLenient, "lenient", false, "drop unsupported characters and accept x and : as operators")
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	args, err := parseExpressionArgs(cmd, args)
	if err != nil {
		return err
	}
	if helpRequested(cmd) {
		return cmd.Help()
	}
	if calculatorService == nil {
		return errors.New("calculator service not configured")
	}

	if len(args) > 0 {
		out, err := evaluateOne(cmd, strings.Join(args, " "))
		if err != nil {
			return err
		}
		cmd.Println(out)
		return nil
	}

	if stdinIsTerminal() {
		return fmt.Errorf("%w: no expression given", domain.ErrInvalidInput)
	}
	return evalLines(cmd, cmd.InOrStdin())
}

// evalLines evaluates each non-blank line, reporting failures inline.
func evalLines(cmd *cobra.Command, r io.Reader) error {
	failed := false
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		out, err := evaluateOne(cmd, line)
		if err != nil {
			failed = true
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", domain.UserMessage(err))
			continue
		}
		cmd.Println(out)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	if failed {
		return errReported
	}
	return nil
}

func evaluateOne(cmd *cobra.Command, expr string) (string, error) {
	if evalLenient {
		expr = calc.FilterInput(expr)
	}

	var value float64
	if evalNoHistory {
		v, err := calc.Evaluate(expr)
		if err != nil {
			return "", err
		}
		value = v
	} else {
		c, err := calculatorService.Evaluate(cmd.Context(), expr)
		if err != nil {
			return "", err
		}
		if !evalRaw {
			return c.Display, nil
		}
		value = c.Result
	}

	if evalRaw {
		return strconv.FormatFloat(value, 'g', -1, 64), nil
	}
	return calculatorService.Format(value), nil
}
