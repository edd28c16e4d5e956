// Package numeral spells out numbers written with digits the way they are
// read in Turkish: "1.234,5" is "bin iki yüz otuz dört virgül beş".
package numeral

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

const (
	// GroupingSeparator splits thousands ("1.000").
	GroupingSeparator = "."
	// FractionSeparator starts the fraction ("3,5").
	FractionSeparator = ","

	zeroName     = "sıfır"
	hundredName  = "yüz"
	thousandName = "bin"
	commaName    = "virgül"
	minusName    = "eksi"
)

// MaxDigits is the longest integer part ToText can spell out.
const MaxDigits = 66

// ErrInvalidNumber is returned for input that is not a number in Turkish
// notation.
var ErrInvalidNumber = errors.New("invalid number")

var numberPattern = regexp.MustCompile(`^[-+]?\d+(,\d)?\d*$`)

var ones = [...]string{"sıfır", "bir", "iki", "üç", "dört", "beş", "altı", "yedi", "sekiz", "dokuz"}

var tens = [...]string{"", "on", "yirmi", "otuz", "kırk", "elli", "altmış", "yetmiş", "seksen", "doksan"}

var thousandPowers = [...]string{
	"", "bin", "milyon", "milyar", "trilyon", "katrilyon", "kentilyon", "seksilyon", "septilyon",
	"oktilyon", "nonilyon", "desilyon", "undesilyon", "dodesilyon", "tredesilyon", "katordesilyon",
	"kendesilyon", "seksdesilyon", "septendesilyon", "oktodesilyon", "novemdesilyon", "vigintilyon",
}

// ToText spells out digits. Grouping separators are dropped, a leading "-"
// reads as "eksi" unless the number is zero, and leading zeros are read out
// one by one ("007" is "sıfır sıfır yedi").
func ToText(digits string) (string, error) {
	digits = strings.ReplaceAll(strings.TrimSpace(digits), GroupingSeparator, "")
	if !numberPattern.MatchString(digits) {
		return "", fmt.Errorf("%w: %q", ErrInvalidNumber, digits)
	}

	intPart, fracPart, hasFraction := strings.Cut(digits, FractionSeparator)
	negative := strings.HasPrefix(intPart, "-")
	intPart = strings.TrimLeft(intPart, "+-")

	intWords, err := spell(intPart)
	if err != nil {
		return "", err
	}
	if negative && strings.Trim(intPart, "0") != "" {
		intWords = minusName + " " + intWords
	}
	if !hasFraction {
		return intWords, nil
	}

	fracWords, err := spell(fracPart)
	if err != nil {
		return "", err
	}
	return intWords + " " + commaName + " " + fracWords, nil
}

// spell reads a run of digits, leading zeros included.
func spell(digits string) (string, error) {
	leading := 0
	for leading < len(digits)-1 && digits[leading] == '0' {
		leading++
	}
	significant := digits[leading:]
	if len(significant) > MaxDigits {
		return "", fmt.Errorf("%w: %q has more than %d digits", ErrInvalidNumber, digits, MaxDigits)
	}

	words := strings.Repeat(zeroName+" ", leading) + natural(significant)
	return strings.Join(strings.Fields(words), " "), nil
}

// natural reads a number without leading zeros, three digits at a time.
func natural(digits string) string {
	if digits == "0" {
		return zeroName
	}

	var groups []int
	for end := len(digits); end > 0; end -= 3 {
		start := max(end-3, 0)
		n := 0
		for _, c := range digits[start:end] {
			n = n*10 + int(c-'0')
		}
		groups = append(groups, n)
	}

	var b strings.Builder
	for power := len(groups) - 1; power >= 0; power-- {
		n := groups[power]
		switch {
		case n == 0:
		case n == 1 && power == 1:
			b.WriteString(" " + thousandName)
		default:
			b.WriteString(" " + belowThousand(n))
			if power > 0 {
				b.WriteString(" " + thousandPowers[power])
			}
		}
	}
	return b.String()
}

func belowThousand(n int) string {
	var parts []string
	switch h := n / 100; h {
	case 0:
	case 1:
		parts = append(parts, hundredName)
	default:
		parts = append(parts, ones[h], hundredName)
	}
	if t := n % 100 / 10; t > 0 {
		parts = append(parts, tens[t])
	}
	if o := n % 10; o > 0 {
		parts = append(parts, ones[o])
	}
	return strings.Join(parts, " ")
}
