package phonematcher

import (
	"strings"

	"github.com/endorses/telnum/internal/pkg/portion"
)

// Key returns the caller-ID min-match key of a number or SIP/tel URI:
//   - +1 650-555-1212 → 2121555
//   - sip:+16505551212@example.com;user=phone → 2121555
//   - tel:555-1212 → 2121555
func Key(number string) string {
	return portion.ToCallerIDMinMatch(ExtractUserPart(number))
}

// ExtractUserPart extracts the user part from a SIP or tel URI.
// Examples:
//   - sip:alice@domain.com → alice
//   - sips:+49123456789@domain.com;tag=xyz → +49123456789
//   - tel:+49123456789 → +49123456789
//   - alice@domain.com → alice
//   - 6505551212 → 6505551212
func ExtractUserPart(uri string) string {
	s := uri

	switch {
	case strings.HasPrefix(s, "tel:"):
		s = s[len("tel:"):]
	case strings.HasPrefix(s, "sip:"):
		s = s[len("sip:"):]
	case strings.HasPrefix(s, "sips:"):
		s = s[len("sips:"):]
	default:
		if !portion.IsURINumber(s) {
			return s
		}
	}

	s = portion.UsernameFromURINumber(s)

	// URI parameters. A ';' inside a bare number is a WAIT and stays.
	if i := strings.IndexAny(s, ";?"); i != -1 {
		s = s[:i]
	}

	return s
}
