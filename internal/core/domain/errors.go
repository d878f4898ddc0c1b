package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrClipboardUnavailable indicates no system clipboard could be reached.
	ErrClipboardUnavailable = errors.New("clipboard unavailable")

	// Evaluation Errors.

	// ErrEmptyExpression indicates nothing was left to evaluate after normalisation.
	ErrEmptyExpression = errors.New("empty expression")

	// ErrUnmatchedParens indicates the expression failed the balance check.
	ErrUnmatchedParens = errors.New("unmatched parentheses")

	// ErrInvalidExpression indicates an operator without a left or right operand.
	ErrInvalidExpression = errors.New("invalid expression")

	// ErrDivisionByZero indicates a divisor whose magnitude is below machine epsilon.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInvalidResult indicates a non-finite intermediate or final value.
	ErrInvalidResult = errors.New("invalid result")

	// ErrInvalidNumber indicates a literal that could not be parsed.
	ErrInvalidNumber = errors.New("invalid number")
)

// ErrorKind classifies why an expression could not be evaluated.
type ErrorKind int

// Evaluation failure kinds.
const (
	ErrorKindEmptyExpression ErrorKind = iota + 1
	ErrorKindUnmatchedParens
	ErrorKindInvalidExpression
	ErrorKindDivisionByZero
	ErrorKindInvalidResult
	ErrorKindInvalidNumber
)

// String returns the machine-readable name of the kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrorKindEmptyExpression:
		return "empty_expression"
	case ErrorKindUnmatchedParens:
		return "unmatched_parentheses"
	case ErrorKindInvalidExpression:
		return "invalid_expression"
	case ErrorKindDivisionByZero:
		return "division_by_zero"
	case ErrorKindInvalidResult:
		return "invalid_result"
	case ErrorKindInvalidNumber:
		return "invalid_number"
	default:
		return "unknown"
	}
}

// Message returns the short user-facing text for the kind.
func (k ErrorKind) Message() string {
	switch k {
	case ErrorKindEmptyExpression:
		return "Empty expression"
	case ErrorKindUnmatchedParens:
		return "Unmatched parentheses"
	case ErrorKindInvalidExpression:
		return "Invalid expression"
	case ErrorKindDivisionByZero:
		return "Division by zero"
	case ErrorKindInvalidResult:
		return "Invalid result"
	case ErrorKindInvalidNumber:
		return "Invalid number"
	default:
		return "Unknown error"
	}
}

// Sentinel returns the package-level error matching the kind.
func (k ErrorKind) Sentinel() error {
	switch k {
	case ErrorKindEmptyExpression:
		return ErrEmptyExpression
	case ErrorKindUnmatchedParens:
		return ErrUnmatchedParens
	case ErrorKindInvalidExpression:
		return ErrInvalidExpression
	case ErrorKindDivisionByZero:
		return ErrDivisionByZero
	case ErrorKindInvalidResult:
		return ErrInvalidResult
	case ErrorKindInvalidNumber:
		return ErrInvalidNumber
	default:
		return ErrInvalidInput
	}
}

// CalcError is returned when an expression cannot be evaluated.
// It unwraps to the sentinel for its kind so callers can use errors.Is.
type CalcError struct {
	Kind       ErrorKind
	Expression string
}

// NewCalcError creates a CalcError for the given kind and (sub)expression.
func NewCalcError(kind ErrorKind, expr string) *CalcError {
	return &CalcError{Kind: kind, Expression: expr}
}

// Error implements the error interface.
func (e *CalcError) Error() string {
	if e.Expression == "" {
		return e.Kind.Sentinel().Error()
	}
	return fmt.Sprintf("%s: %q", e.Kind.Sentinel().Error(), e.Expression)
}

// Unwrap returns the sentinel error for the kind.
func (e *CalcError) Unwrap() error {
	return e.Kind.Sentinel()
}

// KindOf extracts the ErrorKind from err, reporting false if err is not a CalcError.
func KindOf(err error) (ErrorKind, bool) {
	var ce *CalcError
	if errors.As(err, &ce) {
		return ce.Kind, true
	}
	return 0, false
}

// UserMessage returns the short text a caller should show for err.
// Non-evaluation errors fall back to err.Error().
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if kind, ok := KindOf(err); ok {
		return kind.Message()
	}
	return err.Error()
}
