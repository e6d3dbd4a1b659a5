// Package portion splits raw dial strings into their network and post-dial
// portions and provides the normalizations built on top of that split.
//
// The network portion is the dialable prefix of an address up to the first
// PAUSE or WAIT, with separators removed. The post-dial portion is the DTMF
// control sequence from that point on.
package portion

import (
	"strings"

	"github.com/endorses/telnum/internal/pkg/dialchar"
)

// MinMatch is the number of trailing network digits in a caller-ID key.
const MinMatch = 7

// CLIR MMI prefixes after which a '+' is still part of the network portion.
const (
	CLIROn  = "*31#"
	CLIROff = "#31#"
)

// ExtractNetworkPortion returns the dialable prefix of s up to the first
// PAUSE or WAIT. Unicode decimal digits are replaced by their ASCII form. A
// '+' is kept only as the first character or right after a CLIR prefix.
func ExtractNetworkPortion(s string) string {
	var ret strings.Builder
	ret.Grow(len(s))

	for _, c := range s {
		if d, ok := dialchar.DigitValue(c); ok {
			ret.WriteByte(byte('0' + d))
		} else if c == '+' {
			prefix := ret.String()
			if prefix == "" || prefix == CLIROn || prefix == CLIROff {
				ret.WriteRune(c)
			}
		} else if dialchar.IsDialable(c) {
			ret.WriteRune(c)
		} else if dialchar.IsStartsPostDial(c) {
			break
		}
	}

	return ret.String()
}

// ExtractNetworkPortionAlt is like ExtractNetworkPortion but keeps the first
// '+' wherever it appears and drops any later one. Unicode digits are not
// converted.
func ExtractNetworkPortionAlt(s string) string {
	var ret strings.Builder
	ret.Grow(len(s))
	seenPlus := false

	for _, c := range s {
		if c == '+' {
			if seenPlus {
				continue
			}
			seenPlus = true
		}
		if dialchar.IsDialable(c) {
			ret.WriteRune(c)
		} else if dialchar.IsStartsPostDial(c) {
			break
		}
	}

	return ret.String()
}

// IndexOfLastNetworkChar returns the byte index of the last character before
// the first PAUSE or WAIT, or len(s)-1 if there is none.
func IndexOfLastNetworkChar(s string) int {
	trim := strings.IndexAny(s, string([]rune{dialchar.Pause, dialchar.Wait}))
	if trim < 0 {
		return len(s) - 1
	}
	return trim - 1
}

// ExtractPostDialPortion returns every non-separator from the first PAUSE or
// WAIT of s to the end, the control character included.
func ExtractPostDialPortion(s string) string {
	var ret strings.Builder
	for _, c := range s[IndexOfLastNetworkChar(s)+1:] {
		if dialchar.IsNonSeparator(c) {
			ret.WriteRune(c)
		}
	}
	return ret.String()
}

// StripSeparators removes every separator from s, keeping PAUSE and WAIT.
// Unicode decimal digits are replaced by their ASCII form.
func StripSeparators(s string) string {
	var ret strings.Builder
	ret.Grow(len(s))

	for _, c := range s {
		if d, ok := dialchar.DigitValue(c); ok {
			ret.WriteByte(byte('0' + d))
		} else if dialchar.IsNonSeparator(c) {
			ret.WriteRune(c)
		}
	}

	return ret.String()
}

// ConvertKeypadLettersToDigits replaces ASCII letters with their keypad digit,
// "1-800-FLOWERS" becoming "1-800-3569377".
func ConvertKeypadLettersToDigits(s string) string {
	return strings.Map(func(c rune) rune {
		if d, ok := dialchar.KeypadDigit(c); ok {
			return d
		}
		return c
	}, s)
}

// ConvertAndStrip converts keypad letters and strips separators.
func ConvertAndStrip(s string) string {
	return StripSeparators(ConvertKeypadLettersToDigits(s))
}

// ConvertPreDial turns user-typed 'p'/'P' into PAUSE and 'w'/'W' into WAIT.
func ConvertPreDial(s string) string {
	return strings.Map(func(c rune) rune {
		switch {
		case dialchar.IsPause(c):
			return dialchar.Pause
		case dialchar.IsToneWait(c):
			return dialchar.Wait
		}
		return c
	}, s)
}

// ReplaceUnicodeDigits replaces every Unicode decimal digit with ASCII.
func ReplaceUnicodeDigits(s string) string {
	return strings.Map(func(c rune) rune {
		if d, ok := dialchar.DigitValue(c); ok {
			return rune('0' + d)
		}
		return c
	}, s)
}

// NormalizeNumber keeps the digits of s and a leading '+', translating
// keypad letters to digits and dropping everything else.
func NormalizeNumber(s string) string {
	if strings.IndexFunc(s, isASCIILetter) >= 0 {
		s = ConvertKeypadLettersToDigits(s)
	}

	var ret strings.Builder
	ret.Grow(len(s))
	for _, c := range s {
		if d, ok := dialchar.DigitValue(c); ok {
			ret.WriteByte(byte('0' + d))
		} else if c == '+' && ret.Len() == 0 {
			ret.WriteRune(c)
		}
	}
	return ret.String()
}

func isASCIILetter(c rune) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// ToCallerIDMinMatch returns the last MinMatch characters of the network
// portion of s, reversed. Numbers sharing this key are candidates for a loose
// match.
func ToCallerIDMinMatch(s string) string {
	return strippedReversed(ExtractNetworkPortionAlt(s), MinMatch)
}

// GetStrippedReversed returns the whole network portion of s, reversed.
func GetStrippedReversed(s string) string {
	np := ExtractNetworkPortionAlt(s)
	return strippedReversed(np, len(np))
}

// strippedReversed reverses the last n bytes of np. np only holds ASCII.
func strippedReversed(np string, n int) string {
	ret := make([]byte, 0, n)
	for i := len(np) - 1; i >= 0 && len(ret) < n; i-- {
		ret = append(ret, np[i])
	}
	return string(ret)
}

// IsURINumber reports whether s looks like a SIP address rather than a
// phone number.
func IsURINumber(s string) bool {
	return strings.Contains(s, "@") || strings.Contains(s, "%40")
}

// UsernameFromURINumber returns the part of a SIP address before the '@'
// (or its escaped form). Strings without one are returned unchanged.
func UsernameFromURINumber(s string) string {
	delim := strings.IndexByte(s, '@')
	if delim < 0 {
		delim = strings.Index(s, "%40")
	}
	if delim < 0 {
		return s
	}
	return s[:delim]
}

// IsWellFormedSMSAddress reports whether address has a usable, all-dialable
// network portion that is not a bare '+'.
func IsWellFormedSMSAddress(address string) bool {
	np := ExtractNetworkPortion(address)
	return np != "" && np != "+" && dialchar.IsDialableString(np)
}

// IsGlobalPhoneNumber reports whether s is an optional '+' followed by at
// least one digit, dot or dash.
func IsGlobalPhoneNumber(s string) bool {
	s = strings.TrimPrefix(s, "+")
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= '0' && c <= '9') && c != '.' && c != '-' {
			return false
		}
	}
	return true
}
