package calc

import (
	"math"
	"strconv"
	"strings"
)

// FractionDigits is the fixed fractional precision used before trailing
// zeros are trimmed.
const FractionDigits = 10

// minInt64Digits is the magnitude of math.MinInt64, which cannot be negated.
const minInt64Digits = "9223372036854775808"

// FormatInt renders n with apostrophes between groups of three digits.
func FormatInt(n int64) string {
	return formatInt(n, true)
}

// Format renders a finite f as grouped display text. Whole values are
// rendered as integers; other values keep up to FractionDigits fractional
// digits with trailing zeros removed. Only the integer part is grouped.
// Non-finite values are rendered as "NaN", "+Inf" or "-Inf".
func Format(f float64) string {
	return formatFloat(f, true)
}

// FormatPlain renders f like Format but without thousands separators.
func FormatPlain(f float64) string {
	return formatFloat(f, false)
}

func formatInt(n int64, grouped bool) string {
	var digits string
	negative := n < 0
	switch {
	case n == math.MinInt64:
		digits = minInt64Digits
	case negative:
		digits = strconv.FormatInt(-n, 10)
	default:
		digits = strconv.FormatInt(n, 10)
	}

	if grouped {
		digits = groupDigits(digits)
	}
	if negative {
		return "-" + digits
	}
	return digits
}

func formatFloat(f float64, grouped bool) string {
	if !isFinite(f) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	if _, frac := math.Modf(f); math.Abs(frac) < MachineEpsilon {
		if r := math.Round(f); r >= math.MinInt64 && r < math.MaxInt64 {
			return formatInt(int64(r), grouped)
		}
	}

	s := strconv.FormatFloat(f, 'f', FractionDigits, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	// Values that round to zero at FractionDigits keep their sign otherwise.
	if s == "-0" {
		s = "0"
	}
	if !grouped {
		return s
	}

	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	sign := ""
	if rest, ok := strings.CutPrefix(intPart, "-"); ok {
		sign, intPart = "-", rest
	}
	out := sign + groupDigits(intPart)
	if hasFrac {
		out += "." + fracPart
	}
	return out
}

// groupDigits inserts a separator before every group of three digits
// counted from the right, except before the leftmost group.
func groupDigits(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	b.Grow(len(digits) + len(digits)/3)
	for i := 0; i < len(digits); i++ {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(ThousandsSeparator)
		}
		b.WriteByte(digits[i])
	}
	return b.String()
}
