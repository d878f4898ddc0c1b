package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrClipboardUnavailable", ErrClipboardUnavailable},
		{"ErrEmptyExpression", ErrEmptyExpression},
		{"ErrUnmatchedParens", ErrUnmatchedParens},
		{"ErrInvalidExpression", ErrInvalidExpression},
		{"ErrDivisionByZero", ErrDivisionByZero},
		{"ErrInvalidResult", ErrInvalidResult},
		{"ErrInvalidNumber", ErrInvalidNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

// TestErrors_Uniqueness tests that all errors are distinct
func TestErrors_Uniqueness(t *testing.T) {
	allErrors := []error{
		ErrNotFound,
		ErrInvalidInput,
		ErrClipboardUnavailable,
		ErrEmptyExpression,
		ErrUnmatchedParens,
		ErrInvalidExpression,
		ErrDivisionByZero,
		ErrInvalidResult,
		ErrInvalidNumber,
	}

	for i, a := range allErrors {
		for j, b := range allErrors {
			if i != j {
				assert.False(t, errors.Is(a, b), "%v should not match %v", a, b)
			}
		}
	}
}

func TestErrorKind_MessageAndSentinel(t *testing.T) {
	tests := []struct {
		kind     ErrorKind
		name     string
		message  string
		sentinel error
	}{
		{ErrorKindEmptyExpression, "empty_expression", "Empty expression", ErrEmptyExpression},
		{ErrorKindUnmatchedParens, "unmatched_parentheses", "Unmatched parentheses", ErrUnmatchedParens},
		{ErrorKindInvalidExpression, "invalid_expression", "Invalid expression", ErrInvalidExpression},
		{ErrorKindDivisionByZero, "division_by_zero", "Division by zero", ErrDivisionByZero},
		{ErrorKindInvalidResult, "invalid_result", "Invalid result", ErrInvalidResult},
		{ErrorKindInvalidNumber, "invalid_number", "Invalid number", ErrInvalidNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.kind.String())
			assert.Equal(t, tt.message, tt.kind.Message())
			assert.Equal(t, tt.sentinel, tt.kind.Sentinel())
		})
	}
}

func TestErrorKind_Unknown(t *testing.T) {
	var k ErrorKind
	assert.Equal(t, "unknown", k.String())
	assert.Equal(t, "Unknown error", k.Message())
	assert.Equal(t, ErrInvalidInput, k.Sentinel())
}

func TestCalcError_Error(t *testing.T) {
	err := NewCalcError(ErrorKindDivisionByZero, "1/0")
	assert.Equal(t, `division by zero: "1/0"`, err.Error())

	err = NewCalcError(ErrorKindEmptyExpression, "")
	assert.Equal(t, "empty expression", err.Error())
}

func TestCalcError_Is(t *testing.T) {
	var err error = NewCalcError(ErrorKindInvalidNumber, "abc")
	assert.True(t, errors.Is(err, ErrInvalidNumber))
	assert.False(t, errors.Is(err, ErrInvalidExpression))

	wrapped := fmt.Errorf("evaluating: %w", err)
	assert.True(t, errors.Is(wrapped, ErrInvalidNumber))
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("evaluating: %w", NewCalcError(ErrorKindUnmatchedParens, "("))

	kind, ok := KindOf(wrapped)
	require.True(t, ok)
	assert.Equal(t, ErrorKindUnmatchedParens, kind)

	_, ok = KindOf(ErrNotFound)
	assert.False(t, ok)

	_, ok = KindOf(nil)
	assert.False(t, ok)
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "", UserMessage(nil))
	assert.Equal(t, "Invalid result", UserMessage(NewCalcError(ErrorKindInvalidResult, "10^400")))
	assert.Equal(t, "not found", UserMessage(ErrNotFound))
}
