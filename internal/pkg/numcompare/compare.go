// Package numcompare decides whether two differently formatted phone numbers
// denote the same subscriber, for caller-ID and voicemail matching.
//
// CompareLoosely matches on trailing digits and tolerates unknown prefixes;
// CompareStrictly accounts for country calling codes and trunk prefixes and
// rejects anything it cannot explain.
package numcompare

import (
	"fmt"
	"slices"
	"strings"

	"github.com/endorses/telnum/internal/pkg/portion"
)

// Compare compares a and b strictly (accepting invalid country code
// prefixes) or loosely.
func Compare(a, b string, strict bool) bool {
	if strict {
		return CompareStrictly(a, b, true)
	}
	return CompareLoosely(a, b)
}

// CompareExactly reports whether a and b have the same, non-empty network
// portion.
func CompareExactly(a, b string) bool {
	na, nb := portion.ExtractNetworkPortion(a), portion.ExtractNetworkPortion(b)
	return na != "" && na == nb
}

// ParseMode parses a Mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(s)); m {
	case ModeLoose, ModeStrict, ModeExact:
		return m, nil
	}
	return "", fmt.Errorf("unknown comparison mode %q", s)
}

// IsVoiceMailNumber reports whether number reaches the voicemail number vm.
func IsVoiceMailNumber(number, vm string, strict bool) bool {
	if vm == "" {
		return false
	}
	return Compare(portion.ExtractNetworkPortionAlt(number), vm, strict)
}

// Policy selects the comparison used for the current country.
type Policy struct {
	// StrictCountries use CompareStrictly.
	StrictCountries []string `yaml:"strict_countries" mapstructure:"strict_countries"`
	// ExactMatchCountries only accept identical network portions.
	ExactMatchCountries []string `yaml:"exact_match_countries" mapstructure:"exact_match_countries"`
}

// DefaultPolicy compares loosely everywhere except Brazil, where carrier
// selection codes make trailing-digit matches unreliable.
func DefaultPolicy() Policy {
	return Policy{ExactMatchCountries: []string{"BR"}}
}

// Mode names the comparison a policy applies.
type Mode string

const (
	ModeLoose  Mode = "loose"
	ModeStrict Mode = "strict"
	ModeExact  Mode = "exact"
)

// ModeFor returns the comparison used for countryISO.
func (p Policy) ModeFor(countryISO string) Mode {
	iso := strings.ToUpper(countryISO)
	switch {
	case iso == "":
		return ModeLoose
	case slices.Contains(upper(p.ExactMatchCountries), iso):
		return ModeExact
	case slices.Contains(upper(p.StrictCountries), iso):
		return ModeStrict
	}
	return ModeLoose
}

// Compare compares a and b the way countryISO requires.
func (p Policy) Compare(a, b, countryISO string) bool {
	switch p.ModeFor(countryISO) {
	case ModeExact:
		return CompareExactly(a, b)
	case ModeStrict:
		return CompareStrictly(a, b, false)
	default:
		return CompareLoosely(a, b)
	}
}

func upper(isos []string) []string {
	out := make([]string, len(isos))
	for i, iso := range isos {
		out[i] = strings.ToUpper(iso)
	}
	return out
}
