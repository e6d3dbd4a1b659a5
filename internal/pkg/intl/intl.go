// Package intl binds the operations that need a world numbering-plan
// database to libphonenumber (github.com/nyaruka/phonenumbers).
// Country arguments are ISO 3166-1 alpha-2 codes in either case.
package intl

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// ErrUnparsable is returned for numbers that cannot be parsed or are not
// valid in any numbering plan.
var ErrUnparsable = errors.New("number cannot be parsed")

// nationalDisplayCountries show their own numbers in national format even
// when dialed with a '+'.
var nationalDisplayCountries = []string{"JP", "KR"}

func region(iso string) string {
	return strings.ToUpper(iso)
}

func isMMI(number string) bool {
	return strings.HasPrefix(number, "*") || strings.HasPrefix(number, "#")
}

func parseValid(number, iso string) (*phonenumbers.PhoneNumber, error) {
	pn, err := phonenumbers.Parse(number, region(iso))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrUnparsable, number, err)
	}
	if !phonenumbers.IsValidNumber(pn) {
		return nil, fmt.Errorf("%w: %q is not a valid number", ErrUnparsable, number)
	}
	return pn, nil
}

// FormatNumberToE164 formats number, dialed in country iso, as E.164.
func FormatNumberToE164(number, iso string) (string, error) {
	pn, err := parseValid(number, iso)
	if err != nil {
		return "", err
	}
	return phonenumbers.Format(pn, phonenumbers.E164), nil
}

// FormatNumberToRFC3966 formats number as a tel: URI.
func FormatNumberToRFC3966(number, iso string) (string, error) {
	pn, err := parseValid(number, iso)
	if err != nil {
		return "", err
	}
	return phonenumbers.Format(pn, phonenumbers.RFC3966), nil
}

// FormatNumber formats number for display in country iso, keeping the way
// it was dialed. MMI codes are returned unchanged.
func FormatNumber(number, iso string) (string, error) {
	if isMMI(number) {
		return number, nil
	}

	reg := region(iso)
	pn, err := phonenumbers.ParseAndKeepRawInput(number, reg)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrUnparsable, number, err)
	}

	if slices.Contains(nationalDisplayCountries, reg) &&
		int(pn.GetCountryCode()) == phonenumbers.GetCountryCodeForRegion(reg) &&
		pn.GetCountryCodeSource() == phonenumbers.PhoneNumber_FROM_NUMBER_WITH_PLUS_SIGN {
		return phonenumbers.Format(pn, phonenumbers.NATIONAL), nil
	}
	return phonenumbers.FormatInOriginalFormat(pn, reg), nil
}

// FormatJapanese formats a Japanese number in national format. Numbers that
// are not valid Japanese numbers are returned unchanged.
func FormatJapanese(number string) string {
	pn, err := parseValid(number, "JP")
	if err != nil || int(pn.GetCountryCode()) != phonenumbers.GetCountryCodeForRegion("JP") {
		return number
	}
	return phonenumbers.Format(pn, phonenumbers.NATIONAL)
}

// IsInternationalNumber reports whether number, dialed in country iso,
// reaches another country.
func IsInternationalNumber(number, iso string) bool {
	if number == "" || isMMI(number) {
		return false
	}
	reg := region(iso)
	pn, err := phonenumbers.ParseAndKeepRawInput(number, reg)
	if err != nil {
		return false
	}
	return int(pn.GetCountryCode()) != phonenumbers.GetCountryCodeForRegion(reg)
}

// AreSamePhoneNumber reports whether a and b, both dialed in country iso,
// are the same number according to the numbering plan.
func AreSamePhoneNumber(a, b, iso string) bool {
	reg := region(iso)
	n1, err := phonenumbers.ParseAndKeepRawInput(a, reg)
	if err != nil {
		return false
	}
	n2, err := phonenumbers.ParseAndKeepRawInput(b, reg)
	if err != nil {
		return false
	}

	switch phonenumbers.IsNumberMatchWithNumbers(n1, n2) {
	case phonenumbers.EXACT_MATCH, phonenumbers.NSN_MATCH:
		return true
	case phonenumbers.SHORT_NSN_MATCH:
		return n1.GetNationalNumber() == n2.GetNationalNumber() &&
			n1.GetCountryCode() == n2.GetCountryCode()
	default:
		return false
	}
}

// CountryCodeForRegion returns the country calling code of iso, or 0.
func CountryCodeForRegion(iso string) int {
	return phonenumbers.GetCountryCodeForRegion(region(iso))
}
