// Package dialchar classifies the characters that can appear in a dial string.
//
// Dialable characters are the ISO digits, '*', '#', '+' and the WILD template
// character 'N'. PAUSE (',') and WAIT (';') are control characters that start
// the post-dial portion. Everything else is a separator, except that ASCII
// letters are never separators for IsSeparator.
package dialchar

import "unicode"

// Special characters of a dial string.
const (
	// Pause is a 2 second pause before dialing the rest of the string.
	Pause = ','
	// Wait waits for user confirmation before dialing the rest of the string.
	Wait = ';'
	// Wild matches any digit in stored dialing templates.
	Wild = 'N'
)

// keypadMap maps ASCII letters to the digit carrying them on a phone keypad.
var keypadMap = func() map[rune]rune {
	groups := map[rune]string{
		'2': "abc",
		'3': "def",
		'4': "ghi",
		'5': "jkl",
		'6': "mno",
		'7': "pqrs",
		'8': "tuv",
		'9': "wxyz",
	}
	m := make(map[rune]rune, 52)
	for digit, letters := range groups {
		for _, l := range letters {
			m[l] = digit
			m[unicode.ToUpper(l)] = digit
		}
	}
	return m
}()

// IsISODigit reports whether c is an ASCII digit 0-9.
func IsISODigit(c rune) bool {
	return c >= '0' && c <= '9'
}

// Is12Key reports whether c is a key of a 12-key keypad (0-9, *, #).
func Is12Key(c rune) bool {
	return IsISODigit(c) || c == '*' || c == '#'
}

// IsDialable reports whether c is 0-9, *, #, + or WILD.
func IsDialable(c rune) bool {
	return Is12Key(c) || c == '+' || c == Wild
}

// IsReallyDialable reports whether c is 0-9, *, # or +.
func IsReallyDialable(c rune) bool {
	return Is12Key(c) || c == '+'
}

// IsNonSeparator reports whether c is dialable or a PAUSE/WAIT control.
func IsNonSeparator(c rune) bool {
	return IsDialable(c) || c == Wait || c == Pause
}

// IsStartsPostDial reports whether c begins the post-dial portion.
func IsStartsPostDial(c rune) bool {
	return c == Pause || c == Wait
}

// IsPause reports whether c is a user-typed pause ('p' or 'P').
func IsPause(c rune) bool {
	return c == 'p' || c == 'P'
}

// IsToneWait reports whether c is a user-typed wait ('w' or 'W').
func IsToneWait(c rune) bool {
	return c == 'w' || c == 'W'
}

// IsSeparator reports whether c is neither dialable nor an ASCII letter.
func IsSeparator(c rune) bool {
	return !IsDialable(c) && !isASCIILetter(c)
}

func isASCIILetter(c rune) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// ISODigitValue returns the value of an ASCII digit, or -1.
func ISODigitValue(c rune) int {
	if IsISODigit(c) {
		return int(c - '0')
	}
	return -1
}

// DigitValue returns the decimal value of c for any Unicode decimal digit
// (ASCII, fullwidth, Arabic-Indic, Devanagari, ...).
func DigitValue(c rune) (int, bool) {
	if IsISODigit(c) {
		return int(c - '0'), true
	}
	if c < 0x80 || !unicode.Is(unicode.Nd, c) {
		return 0, false
	}
	// Every Nd range starts at a zero and spans whole runs of ten digits.
	for _, r := range unicode.Nd.R16 {
		if c >= rune(r.Lo) && c <= rune(r.Hi) {
			return int(c-rune(r.Lo)) % 10, true
		}
	}
	for _, r := range unicode.Nd.R32 {
		if c >= rune(r.Lo) && c <= rune(r.Hi) {
			return int(c-rune(r.Lo)) % 10, true
		}
	}
	return 0, false
}

// KeypadDigit returns the keypad digit for an ASCII letter.
func KeypadDigit(c rune) (rune, bool) {
	d, ok := keypadMap[c]
	return d, ok
}

// IsDialableString reports whether every character of s is dialable.
func IsDialableString(s string) bool {
	for _, c := range s {
		if !IsDialable(c) {
			return false
		}
	}
	return true
}
