package numcompare

import (
	"github.com/endorses/telnum/internal/pkg/dialchar"
)

// MinMatch is the number of trailing dialable characters that must agree
// before two numbers of different length can be loosely equal.
const MinMatch = 7

// CompareLoosely reports whether a and b probably denote the same number.
//
// The numbers are compared backward from their last network character,
// skipping anything not dialable; WILD matches any character. At least
// MinMatch characters must agree unless both numbers are shorter and
// identical. If neither number is exhausted, the unmatched heads must be
// international prefixes ("+", "00", "011") on both sides, or a trunk "0"
// on one side and international prefix plus country code on the other.
//
// Empty numbers are never equal.
func CompareLoosely(a, b string) bool {
	if a == "" || b == "" {
		return false
	}

	ra, rb := []rune(a), []rune(b)
	ia, ib := lastNetworkIndex(ra), lastNetworkIndex(rb)
	matched := 0
	skippedA, skippedB := 0, 0

	for ia >= 0 && ib >= 0 {
		skip := false

		ca := ra[ia]
		if !dialchar.IsDialable(ca) {
			ia--
			skip = true
			skippedA++
		}

		cb := rb[ib]
		if !dialchar.IsDialable(cb) {
			ib--
			skip = true
			skippedB++
		}

		if !skip {
			if ca != cb && ca != dialchar.Wild && cb != dialchar.Wild {
				break
			}
			ia--
			ib--
			matched++
		}
	}

	if matched < MinMatch {
		// Short numbers must be identical, e.g. "404-04" and "40404".
		effectiveA := len(ra) - skippedA
		effectiveB := len(rb) - skippedB
		return effectiveA == effectiveB && effectiveA == matched
	}

	if ia < 0 || ib < 0 {
		return true
	}

	headA, headB := ra[:ia+1], rb[:ib+1]
	switch {
	case matchIntlPrefix(headA) && matchIntlPrefix(headB):
		return true
	case matchTrunkPrefix(headA) && matchIntlPrefixAndCC(headB):
		return true
	case matchTrunkPrefix(headB) && matchIntlPrefixAndCC(headA):
		return true
	}
	return false
}

// lastNetworkIndex returns the index of the last rune before the first
// PAUSE or WAIT.
func lastNetworkIndex(r []rune) int {
	for i, c := range r {
		if dialchar.IsStartsPostDial(c) {
			return i - 1
		}
	}
	return len(r) - 1
}

// prefixState is a state of the international prefix automata:
//
//	start -+-> plus ------------------------------+-> cc1 -> cc2 -> cc3
//	       +-> zero -+-> zeroZero ----------------+
//	                 +-> zeroOne -> zeroOneOne ---+
type prefixState int

const (
	prefixStart prefixState = iota
	prefixPlus
	prefixZero
	prefixZeroZero
	prefixZeroOne
	prefixZeroOneOne
	prefixCC1
	prefixCC2
	prefixCC3
)

func (s prefixState) isIntlPrefix() bool {
	return s == prefixPlus || s == prefixZeroZero || s == prefixZeroOneOne
}

func (s prefixState) hasCountryCode() bool {
	return s == prefixCC1 || s == prefixCC2 || s == prefixCC3
}

// step advances the automaton on c. withCC lets an international prefix be
// followed by up to three ISO digits. Separators never change the state.
func (s prefixState) step(c rune, withCC bool) (prefixState, bool) {
	if !dialchar.IsNonSeparator(c) {
		return s, true
	}

	switch s {
	case prefixStart:
		switch c {
		case '+':
			return prefixPlus, true
		case '0':
			return prefixZero, true
		}
	case prefixZero:
		switch c {
		case '0':
			return prefixZeroZero, true
		case '1':
			return prefixZeroOne, true
		}
	case prefixZeroOne:
		if c == '1' {
			return prefixZeroOneOne, true
		}
	case prefixPlus, prefixZeroZero, prefixZeroOneOne:
		if withCC && dialchar.IsISODigit(c) {
			return prefixCC1, true
		}
	case prefixCC1, prefixCC2:
		if dialchar.IsISODigit(c) {
			return s + 1, true
		}
	}
	return s, false
}

// matchIntlPrefix reports whether head is exactly "+", "00" or "011" plus
// separators.
func matchIntlPrefix(head []rune) bool {
	state := prefixStart
	for _, c := range head {
		var ok bool
		if state, ok = state.step(c, false); !ok {
			return false
		}
	}
	return state.isIntlPrefix()
}

// matchIntlPrefixAndCC reports whether head is an international prefix
// followed by a one to three digit country code, plus separators.
func matchIntlPrefixAndCC(head []rune) bool {
	state := prefixStart
	for _, c := range head {
		var ok bool
		if state, ok = state.step(c, true); !ok {
			return false
		}
	}
	return state.hasCountryCode()
}

// matchTrunkPrefix reports whether head is a single "0" plus separators.
func matchTrunkPrefix(head []rune) bool {
	found := false
	for _, c := range head {
		if c == '0' && !found {
			found = true
		} else if dialchar.IsNonSeparator(c) {
			return false
		}
	}
	return found
}
