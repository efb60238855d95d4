package brdoc

import "strings"

// Normalize removes the separators recognized for kind from raw. Every other
// character, digit or not, is kept in place; the result has no length
// guarantee.
func Normalize(kind Kind, raw string) string {
	seps := kind.Separators()
	if seps == "" {
		return raw
	}
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(seps, r) {
			return -1
		}
		return r
	}, raw)
}

// parseDigits converts s into its decimal digit values. Only ASCII '0'-'9'
// are accepted.
func parseDigits(s string) ([]int, error) {
	digits := make([]int, 0, len(s))
	for _, r := range s {
		if r < '0' || r > '9' {
			return nil, ErrNonDigitCharacter
		}
		digits = append(digits, int(r-'0'))
	}
	return digits, nil
}

// repeated reports whether every digit equals the first one.
func repeated(digits []int) bool {
	if len(digits) == 0 {
		return false
	}
	for _, d := range digits[1:] {
		if d != digits[0] {
			return false
		}
	}
	return true
}
