package numcompare

import (
	"github.com/endorses/telnum/internal/pkg/dialchar"
)

// strictOutcome is the result of the strict comparison before any fallback.
type strictOutcome int

const (
	strictMatch strictOutcome = iota
	strictMismatch
	// strictInvalidPrefix means the trailing digits agree but the leftover
	// head of one number is not an ignorable trunk prefix. The country code
	// detection (the Thailand "166" case in particular) may have misread it.
	strictInvalidPrefix
)

// CompareStrictly reports whether a and b are the same number once country
// calling codes and trunk prefixes are accounted for.
//
// When acceptInvalidCCCPrefix is set, "166" is accepted as the Thailand
// international prefix to the US, and a comparison rejected only because
// of an unexplained leftover prefix is retried with CompareLoosely.
//
// Empty numbers are never equal.
func CompareStrictly(a, b string, acceptInvalidCCCPrefix bool) bool {
	switch compareStrictly(a, b, acceptInvalidCCCPrefix) {
	case strictMatch:
		return true
	case strictInvalidPrefix:
		return acceptInvalidCCCPrefix && CompareLoosely(a, b)
	default:
		return false
	}
}

func compareStrictly(a, b string, acceptThailandCase bool) strictOutcome {
	if a == "" || b == "" {
		return strictMismatch
	}

	ra, rb := []rune(a), []rune(b)
	forwardA, forwardB := 0, 0
	cccA, okA := countryCallingCode(ra, acceptThailandCase)
	cccB, okB := countryCallingCode(rb, acceptThailandCase)

	bothHaveCCC := false
	okToIgnorePrefix := true
	trunkOmittedA, trunkOmittedB := false, false

	switch {
	case okA && okB:
		if cccA.code != cccB.code {
			return strictMismatch
		}
		// "+81123123" must not equal "+810123123" (+81 is Japan).
		okToIgnorePrefix = false
		bothHaveCCC = true
		forwardA, forwardB = cccA.next, cccB.next
	case !okA && !okB:
		// "123123" must not equal "0123123".
		okToIgnorePrefix = false
	default:
		if okA {
			forwardA = cccA.next
		} else if i := trunkPrefixOmittedIndex(ra); i >= 0 {
			forwardA = i
			trunkOmittedA = true
		}
		if okB {
			forwardB = cccB.next
		} else if i := trunkPrefixOmittedIndex(rb); i >= 0 {
			forwardB = i
			trunkOmittedB = true
		}
	}

	backA, backB := len(ra)-1, len(rb)-1
	for backA >= forwardA && backB >= forwardB {
		skip := false
		ca, cb := ra[backA], rb[backB]
		if dialchar.IsSeparator(ca) {
			backA--
			skip = true
		}
		if dialchar.IsSeparator(cb) {
			backB--
			skip = true
		}
		if !skip {
			if ca != cb {
				return strictMismatch
			}
			backA--
			backB--
		}
	}

	if okToIgnorePrefix {
		if (trunkOmittedA && forwardA <= backA) || !prefixIsIgnorable(ra, forwardA, backA) {
			return strictInvalidPrefix
		}
		if (trunkOmittedB && forwardB <= backB) || !prefixIsIgnorable(rb, forwardB, backB) {
			return strictInvalidPrefix
		}
		return strictMatch
	}

	// 1-650-555-1234 equals 650-555-1234 in the US, while 090-1234-1234
	// does not equal 90-1234-1234 in Japan. A single leftover '1' is ignored
	// once unless both numbers carry a country calling code, so
	// "011 1 7005554141" equals "+17005554141" and "011 11 7005554141" does not.
	maybeNANP := !bothHaveCCC
	for _, head := range [][]rune{ra[forwardA : backA+1], rb[forwardB : backB+1]} {
		for i := len(head) - 1; i >= 0; i-- {
			c := head[i]
			if !dialchar.IsDialable(c) {
				continue
			}
			if maybeNANP && dialchar.ISODigitValue(c) == 1 {
				maybeNANP = false
				continue
			}
			return strictMismatch
		}
	}
	return strictMatch
}

// prefixIsIgnorable reports whether r[forward:back+1] holds at most one
// ISO digit, the trunk prefix, and no other dialable character.
func prefixIsIgnorable(r []rune, forward, back int) bool {
	trunkRead := false
	for ; back >= forward; back-- {
		c := r[back]
		if dialchar.IsISODigit(c) {
			if trunkRead {
				return false
			}
			trunkRead = true
		} else if dialchar.IsDialable(c) {
			return false
		}
	}
	return true
}

// trunkPrefixOmittedIndex returns the index after the first ISO digit of r,
// or -1 if another dialable character comes first.
func trunkPrefixOmittedIndex(r []rune) int {
	for i, c := range r {
		if dialchar.IsISODigit(c) {
			return i + 1
		} else if dialchar.IsDialable(c) {
			return -1
		}
	}
	return -1
}
