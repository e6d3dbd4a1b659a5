package nanp

import (
	"fmt"
	"slices"
	"strings"

	"github.com/endorses/telnum/internal/pkg/intl"
)

// Format is the national dialing convention a number follows.
type Format int

const (
	FormatUnknown Format = iota
	FormatNANP
	FormatJapan
)

// countries using the North American Numbering Plan.
var countries = []string{
	"US", "CA", "AS", "AI", "AG", "BS", "BB", "BM", "VG", "KY", "DM", "DO",
	"GD", "GU", "JM", "PR", "MS", "MP", "KN", "LC", "VC", "TT", "TC", "VI",
}

// String returns the lower-case name of f.
func (f Format) String() string {
	switch f {
	case FormatUnknown:
		return "unknown"
	case FormatNANP:
		return "nanp"
	case FormatJapan:
		return "japan"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat parses the names returned by String.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "unknown":
		return FormatUnknown, nil
	case "nanp":
		return FormatNANP, nil
	case "japan", "jp":
		return FormatJapan, nil
	}
	return FormatUnknown, fmt.Errorf("unknown numbering plan format %q", s)
}

// FormatTypeForCountry returns the format used in the ISO 3166 country iso.
func FormatTypeForCountry(iso string) Format {
	iso = strings.ToUpper(iso)
	switch {
	case slices.Contains(countries, iso):
		return FormatNANP
	case iso == "JP":
		return FormatJapan
	}
	return FormatUnknown
}

// IsNanpCountry reports whether iso uses the NANP.
func IsNanpCountry(iso string) bool {
	return FormatTypeForCountry(iso) == FormatNANP
}

// FormatNumber formats s for display according to f. Unknown formats, and
// numbers the format cannot handle, are returned unchanged.
func FormatNumber(s string, f Format) string {
	switch f {
	case FormatNANP:
		return FormatNanpNumber(s)
	case FormatJapan:
		return intl.FormatJapanese(s)
	default:
		return s
	}
}
