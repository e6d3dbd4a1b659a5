// Package nanp formats numbers for North American Numbering Plan display and
// maps countries to the numbering-plan format they use.
package nanp

import (
	"strings"

	"github.com/endorses/telnum/internal/pkg/dialchar"
)

// Length is the number of digits of a NANP number without the leading 1.
const Length = 10

// maxFormattedLength is len("+1-nnn-nnn-nnnn").
const maxFormattedLength = 15

// state is a state of the NANP formatting automaton.
type state int

const (
	stateDigit state = iota
	statePlus
	stateOne
	stateDash
)

// FormatNanpNumber inserts dashes into a NANP number: "18005551234" becomes
// "1-800-555-1234", "+18005551234" becomes "+1-800-555-1234" and "5551234"
// becomes "555-1234". Existing dashes are recomputed. Strings of five
// characters or fewer, longer than "+1-nnn-nnn-nnnn", or containing anything
// but digits, dashes and a leading '+' are returned unchanged.
func FormatNanpNumber(s string) string {
	if len(s) > maxFormattedLength || len(s) <= 5 {
		return s
	}

	text := RemoveDashes(s)

	var dashes []int
	st := stateDigit
	numDigits := 0

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '1' && (numDigits == 0 || st == statePlus):
			st = stateOne

		case c >= '0' && c <= '9':
			switch {
			case st == statePlus:
				// Only +1 numbers are NANP.
				return s
			case st == stateOne:
				dashes = append(dashes, i)
			case st != stateDash && (numDigits == 3 || numDigits == 6):
				dashes = append(dashes, i)
			}
			st = stateDigit
			numDigits++

		case c == '-':
			st = stateDash

		case c == '+' && i == 0:
			st = statePlus

		default:
			return s
		}
	}

	if numDigits == 7 && len(dashes) > 0 {
		// xxx-xxxx, not xxx-xxx-x.
		dashes = dashes[:len(dashes)-1]
	}

	var out strings.Builder
	out.Grow(len(text) + len(dashes))
	prev := 0
	for _, pos := range dashes {
		out.WriteString(text[prev:pos])
		out.WriteByte('-')
		prev = pos
	}
	out.WriteString(text[prev:])

	return strings.TrimRight(out.String(), "-")
}

// RemoveDashes returns s without '-' characters.
func RemoveDashes(s string) string {
	return strings.ReplaceAll(s, "-", "")
}

// IsNanp reports whether s is a 10 digit NANP number whose area code and
// exchange both start with 2-9.
func IsNanp(s string) bool {
	if len(s) != Length || !isTwoToNine(s[0]) || !isTwoToNine(s[3]) {
		return false
	}
	for _, c := range s[1:] {
		if !dialchar.IsISODigit(c) {
			return false
		}
	}
	return true
}

// IsOneNanp reports whether s is "1" followed by a NANP number.
func IsOneNanp(s string) bool {
	return len(s) > 1 && s[0] == '1' && IsNanp(s[1:])
}

func isTwoToNine(c byte) bool {
	return c >= '2' && c <= '9'
}
