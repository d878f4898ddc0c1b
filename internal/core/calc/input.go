package calc

import "strings"

// MapKey translates a typed character into the character it contributes to
// an expression. x and X become '*', ':' becomes '/'. Spaces are not
// handled here since whether one is accepted depends on the current input.
func MapKey(r rune) (rune, bool) {
	switch {
	case r >= '0' && r <= '9':
		return r, true
	case strings.ContainsRune(".+-*/^()'", r):
		return r, true
	case r == 'x' || r == 'X':
		return '*', true
	case r == ':':
		return '/', true
	default:
		return 0, false
	}
}

// FilterInput keeps only the characters of text that can appear in an
// expression, applying the same operator aliases as MapKey. Pasted
// thousands separators are dropped.
func FilterInput(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r == ' ' {
			b.WriteRune(r)
			continue
		}
		if r == ThousandsSeparator {
			continue
		}
		if mapped, ok := MapKey(r); ok {
			b.WriteRune(mapped)
		}
	}
	return b.String()
}
