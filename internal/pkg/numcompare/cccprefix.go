package numcompare

import (
	"github.com/endorses/telnum/internal/pkg/dialchar"
)

// cccPrefix is a country calling code found at the head of a number.
type cccPrefix struct {
	code int
	// next is the rune index just past the code.
	next int
}

// cccState is a state of the forward country calling code automaton for
//
//	^[^0-9*#+]*(\+|0(0|11)|166)\d{1,3}
//
// where "166" (Thailand to the US) is only recognised on request and is
// itself the whole prefix, standing for +66. Separators are ignored in
// every state.
type cccState int

const (
	cccStart cccState = iota
	cccPlus
	cccZero
	cccZeroZero
	cccZeroOne
	cccZeroOneOne
	cccDigit1
	cccDigit2
	cccThai1
	cccThai16
)

// countryCallingCode recognises a leading international prefix and country
// calling code. The code ends as soon as the digits read so far form a
// valid code, or after three digits.
func countryCallingCode(r []rune, acceptThailandCase bool) (cccPrefix, bool) {
	state := cccStart
	ccc := 0

	for i, c := range r {
		dialable := dialchar.IsDialable(c)

		switch state {
		case cccStart:
			switch {
			case c == '+':
				state = cccPlus
			case c == '0':
				state = cccZero
			case c == '1' && acceptThailandCase:
				state = cccThai1
			case dialable:
				return cccPrefix{}, false
			}

		case cccZero:
			switch {
			case c == '0':
				state = cccZeroZero
			case c == '1':
				state = cccZeroOne
			case dialable:
				return cccPrefix{}, false
			}

		case cccZeroOne:
			switch {
			case c == '1':
				state = cccZeroOneOne
			case dialable:
				return cccPrefix{}, false
			}

		case cccPlus, cccZeroZero, cccZeroOneOne, cccDigit1, cccDigit2:
			d := dialchar.ISODigitValue(c)
			if d < 0 || (d == 0 && ccc == 0) {
				// No country calling code starts with 0.
				if dialable {
					return cccPrefix{}, false
				}
				continue
			}
			ccc = ccc*10 + d
			if ccc >= 100 || IsCountryCallingCode(ccc) {
				return cccPrefix{code: ccc, next: i + 1}, true
			}
			if state == cccDigit1 {
				state = cccDigit2
			} else {
				state = cccDigit1
			}

		case cccThai1:
			switch {
			case c == '6':
				state = cccThai16
			case dialable:
				return cccPrefix{}, false
			}

		case cccThai16:
			// No separator may split the final "66".
			if c == '6' {
				return cccPrefix{code: 66, next: i + 1}, true
			}
			return cccPrefix{}, false
		}
	}

	return cccPrefix{}, false
}
