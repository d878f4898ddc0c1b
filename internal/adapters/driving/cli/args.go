package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/kalk-cli/internal/logger"
)

// parseExpressionArgs applies the flags in args to cmd and returns the
// remaining arguments. Commands using it set DisableFlagParsing so that
// operands such as "-5+3" or "-(-5)" are not mistaken for shorthand flags.
// Only known long flags, known single-letter shorthands and "--" are
// treated as flags; everything else is kept as an operand.
func parseExpressionArgs(cmd *cobra.Command, args []string) ([]string, error) {
	var operands []string
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "--" {
			operands = append(operands, args[i+1:]...)
			break
		}

		f, value, hasValue, err := lookupFlag(cmd, arg)
		if err != nil {
			return nil, err
		}
		if f == nil {
			operands = append(operands, arg)
			continue
		}

		if !hasValue {
			if f.NoOptDefVal == "" {
				if i+1 >= len(args) {
					return nil, fmt.Errorf("flag needs an argument: %s", arg)
				}
				i++
				value = args[i]
			} else {
				value = f.NoOptDefVal
			}
		}
		if err := f.Value.Set(value); err != nil {
			return nil, fmt.Errorf("invalid argument %q for %s: %w", value, arg, err)
		}
		f.Changed = true
	}

	// PersistentPreRun ran before the flags were applied.
	logger.SetVerbose(verbose)
	return operands, nil
}

// lookupFlag resolves arg to a flag of cmd. It returns a nil flag for
// operands. Unknown long flags whose name starts with a letter are errors.
func lookupFlag(cmd *cobra.Command, arg string) (*pflag.Flag, string, bool, error) {
	if name, ok := strings.CutPrefix(arg, "--"); ok {
		if name == "" || !isLetter(name[0]) {
			return nil, "", false, nil
		}
		name, value, hasValue := strings.Cut(name, "=")
		if f := findFlag(cmd, name); f != nil {
			return f, value, hasValue, nil
		}
		return nil, "", false, fmt.Errorf("unknown flag: --%s", name)
	}

	if len(arg) == 2 && arg[0] == '-' && isLetter(arg[1]) {
		if f := findShorthand(cmd, arg[1:]); f != nil {
			return f, "", false, nil
		}
		return nil, "", false, fmt.Errorf("unknown shorthand flag: %q in %s", arg[1], arg)
	}

	return nil, "", false, nil
}

func findFlag(cmd *cobra.Command, name string) *pflag.Flag {
	if f := cmd.Flags().Lookup(name); f != nil {
		return f
	}
	return cmd.InheritedFlags().Lookup(name)
}

func findShorthand(cmd *cobra.Command, name string) *pflag.Flag {
	if f := cmd.Flags().ShorthandLookup(name); f != nil {
		return f
	}
	return cmd.InheritedFlags().ShorthandLookup(name)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// helpRequested reports whether -h or --help was given.
func helpRequested(cmd *cobra.Command) bool {
	help, err := cmd.Flags().GetBool("help")
	return err == nil && help
}
