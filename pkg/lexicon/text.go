package lexicon

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Normalize composes combining marks and trims surrounding whitespace.
func Normalize(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// ToLower lowercases with the Turkish dotted and dotless i rules (I -> ı, İ -> i).
func ToLower(s string) string {
	return cases.Lower(language.Turkish).String(s)
}

// ToUpper uppercases with the Turkish dotted and dotless i rules (i -> İ, ı -> I).
func ToUpper(s string) string {
	return cases.Upper(language.Turkish).String(s)
}
