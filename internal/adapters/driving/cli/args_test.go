package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/kalk-cli/internal/core/domain"
)

func TestEvalCmd_LeadingMinus(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{name: "negative operand", args: []string{"-5+3"}, expected: "-2\n"},
		{name: "negated group", args: []string{"-(-5)"}, expected: "5\n"},
		{name: "sign chain", args: []string{"--5"}, expected: "5\n"},
		{name: "split operands", args: []string{"-2", "*", "-3"}, expected: "6\n"},
		{name: "flag before operand", args: []string{"--raw", "-1000/4"}, expected: "-250\n"},
		{name: "flag after operand", args: []string{"-1000", "--raw"}, expected: "-1000\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupServices(t)

			out, _, err := execute(t, "", append([]string{"eval"}, tt.args...)...)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestEvalCmd_DoubleDashEndsFlags(t *testing.T) {
	setupServices(t)

	out, _, err := execute(t, "", "eval", "--", "--raw")

	assert.ErrorIs(t, err, domain.ErrInvalidNumber)
	assert.Empty(t, out)
	assert.False(t, evalRaw)
}

func TestEvalCmd_UnknownFlag(t *testing.T) {
	setupServices(t)

	_, _, err := execute(t, "", "eval", "--bogus", "1+1")
	assert.ErrorContains(t, err, "unknown flag: --bogus")

	_, _, err = execute(t, "", "eval", "-q", "1+1")
	assert.ErrorContains(t, err, "unknown shorthand flag")
}

func TestEvalCmd_Help(t *testing.T) {
	setupServices(t)

	out, _, err := execute(t, "", "eval", "--help")

	require.NoError(t, err)
	assert.Contains(t, out, "Evaluate an arithmetic expression")
	assert.Contains(t, out, "--no-history")
}

func TestEvalCmd_VerboseShorthand(t *testing.T) {
	setupServices(t)

	out, _, err := execute(t, "", "eval", "-v", "-1-1")

	require.NoError(t, err)
	assert.Equal(t, "-2\n", out)
	assert.True(t, verbose)
}

func TestFormatCmd_LeadingMinus(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{name: "negative integer", args: []string{"-1234"}, expected: "-1'234\n"},
		{name: "negative fraction", args: []string{"-1234.5"}, expected: "-1'234.5\n"},
		{name: "after double dash", args: []string{"--", "-1000000"}, expected: "-1'000'000\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, "", append([]string{"format"}, tt.args...)...)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestFormatCmd_TooManyArguments(t *testing.T) {
	_, _, err := execute(t, "", "format", "-1", "-2")

	assert.Error(t, err)
}
