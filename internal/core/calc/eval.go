package calc

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/custodia-labs/kalk-cli/internal/core/domain"
)

// MachineEpsilon is the difference between 1 and the next representable float64.
const MachineEpsilon = 0x1p-52

// ThousandsSeparator groups digits in both input and output.
const ThousandsSeparator = '\''

var normalizer = strings.NewReplacer(" ", "", string(ThousandsSeparator), "")

// Normalize removes spaces and thousands separators from text.
func Normalize(text string) string {
	return normalizer.Replace(text)
}

// Evaluate normalises text, checks its parentheses and evaluates it.
// The returned value is always finite; any failure is a *domain.CalcError.
func Evaluate(text string) (float64, error) {
	expr := Normalize(text)
	if expr == "" {
		return 0, domain.NewCalcError(domain.ErrorKindEmptyExpression, "")
	}
	if !Balanced(expr) {
		return 0, domain.NewCalcError(domain.ErrorKindUnmatchedParens, expr)
	}

	v, err := eval(expr)
	if err != nil {
		return 0, err
	}
	if !isFinite(v) {
		return 0, domain.NewCalcError(domain.ErrorKindInvalidResult, expr)
	}
	return v, nil
}

// eval evaluates a normalised, balanced (sub)expression. The tiers are tried
// in a fixed order on every call because each substring must re-derive which
// one applies to it.
func eval(expr string) (float64, error) {
	if i := additiveSplit(expr); i >= 0 {
		if i+1 >= len(expr) {
			return 0, domain.NewCalcError(domain.ErrorKindInvalidExpression, expr)
		}
		left, right, err := evalOperands(expr, i)
		if err != nil {
			return 0, err
		}
		if expr[i] == '+' {
			return left + right, nil
		}
		return left - right, nil
	}

	if i := multiplicativeSplit(expr); i >= 0 {
		if i == 0 || i+1 >= len(expr) {
			return 0, domain.NewCalcError(domain.ErrorKindInvalidExpression, expr)
		}
		left, right, err := evalOperands(expr, i)
		if err != nil {
			return 0, err
		}
		if expr[i] == '*' {
			return left * right, nil
		}
		if math.Abs(right) < MachineEpsilon {
			return 0, domain.NewCalcError(domain.ErrorKindDivisionByZero, expr)
		}
		return left / right, nil
	}

	if i := powerSplit(expr); i >= 0 {
		if i == 0 || i+1 >= len(expr) {
			return 0, domain.NewCalcError(domain.ErrorKindInvalidExpression, expr)
		}
		left, right, err := evalOperands(expr, i)
		if err != nil {
			return 0, err
		}
		result := math.Pow(left, right)
		if !isFinite(result) {
			return 0, domain.NewCalcError(domain.ErrorKindInvalidResult, expr)
		}
		return result, nil
	}

	if len(expr) >= 2 && expr[0] == '(' && expr[len(expr)-1] == ')' {
		return eval(expr[1 : len(expr)-1])
	}

	if rest, ok := strings.CutPrefix(expr, "-"); ok {
		v, err := eval(rest)
		if err != nil {
			return 0, err
		}
		return -v, nil
	}

	return parseLiteral(expr)
}

// evalOperands evaluates the substrings either side of the operator at i.
func evalOperands(expr string, i int) (float64, float64, error) {
	left, err := eval(expr[:i])
	if err != nil {
		return 0, 0, err
	}
	right, err := eval(expr[i+1:])
	if err != nil {
		return 0, 0, err
	}
	return left, right, nil
}

// additiveSplit returns the index of the last top-level binary + or -, or -1.
// A candidate at index 0, or preceded by an operator or '(', is a sign and
// is skipped.
func additiveSplit(expr string) int {
	depth := 0
	for i := len(expr) - 1; i >= 0; i-- {
		switch expr[i] {
		case ')':
			depth++
		case '(':
			depth = max(depth-1, 0)
		case '+', '-':
			if depth != 0 || i == 0 {
				continue
			}
			switch expr[i-1] {
			case '+', '-', '*', '/', '(':
				continue
			}
			return i
		}
	}
	return -1
}

// multiplicativeSplit returns the index of the last top-level * or /, or -1.
func multiplicativeSplit(expr string) int {
	depth := 0
	for i := len(expr) - 1; i >= 0; i-- {
		switch expr[i] {
		case ')':
			depth++
		case '(':
			depth = max(depth-1, 0)
		case '*', '/':
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// powerSplit returns the index of the first top-level ^, or -1.
func powerSplit(expr string) int {
	depth := 0
	for i := 0; i < len(expr); i++ {
		switch expr[i] {
		case '(':
			depth++
		case ')':
			depth = max(depth-1, 0)
		case '^':
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// parseLiteral parses a plain decimal literal such as "12", "0.5", ".5",
// "+3" or "2e10". Hexadecimal forms, digit underscores, "Inf" and "NaN" are
// rejected even though strconv accepts them.
func parseLiteral(expr string) (float64, error) {
	if !isDecimalLiteral(expr) {
		return 0, domain.NewCalcError(domain.ErrorKindInvalidNumber, expr)
	}
	v, err := strconv.ParseFloat(expr, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			if math.IsInf(v, 0) {
				return 0, domain.NewCalcError(domain.ErrorKindInvalidResult, expr)
			}
			return v, nil
		}
		return 0, domain.NewCalcError(domain.ErrorKindInvalidNumber, expr)
	}
	return v, nil
}

func isDecimalLiteral(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return false
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		exp := 0
		for i < len(s) && isDigit(s[i]) {
			i++
			exp++
		}
		if exp == 0 {
			return false
		}
	}
	return i == len(s)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
