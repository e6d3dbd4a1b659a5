package bcd

// An international TOA on a GSM MMI string (TS 22.030 §6.5.2) does not mean
// the '+' goes first: "**21*+886988171479#" is transmitted as TOA 0x91 with
// digits "**21*886988171479#". insertPlus puts the '+' back in front of the
// dialing number.
//
// The string is read as tokens {marker (* or #), other, end}:
//
//	marker ... marker run #   ->  marker ... marker + run #
//	marker marker run #       ->  marker marker run # +
//	marker ... marker run     ->  marker ... marker + run
//	anything else             ->  + s
//
// Strings with more than two inner markers are split at the last one.

func isMMIMarker(c byte) bool {
	return c == '*' || c == '#'
}

// lastMarker returns the index of the last marker in s[from:to], or -1.
func lastMarker(s string, from, to int) int {
	for i := to - 1; i >= from; i-- {
		if isMMIMarker(s[i]) {
			return i
		}
	}
	return -1
}

func insertPlus(s string) string {
	n := len(s)
	if n < 2 || !isMMIMarker(s[0]) {
		return "+" + s
	}

	if n >= 3 && s[n-1] == '#' {
		if j := lastMarker(s, 1, n-1); j >= 0 {
			if j == 1 {
				// No dialing number: "**21#".
				return s + "+"
			}
			return s[:j+1] + "+" + s[j+1:]
		}
	}

	if j := lastMarker(s, 1, n); j >= 0 {
		return s[:j+1] + "+" + s[j+1:]
	}
	return "+" + s
}
