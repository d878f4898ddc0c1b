package calc

// Balanced reports whether the parentheses in s are well-formed: the depth
// never drops below zero while scanning left to right and ends at zero.
// The empty string is balanced.
func Balanced(s string) bool {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}
