package parser

import (
	"strings"
	"unicode"
)

// Normalise lowercases raw input and keeps only its letter and digit runs,
// joined by single spaces, so "Baking-Soda" and "baking soda" compare equal.
func Normalise(raw string) string {
	words := strings.FieldsFunc(strings.ToLower(raw), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.Join(words, " ")
}
