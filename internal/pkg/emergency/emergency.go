// Package emergency matches dialed numbers against emergency number lists
// supplied by the caller.
package emergency

import (
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/endorses/telnum/internal/pkg/portion"
)

// Default lists used when none is configured.
const (
	DefaultNumbers      = "112,911"
	DefaultNoSIMNumbers = "112,911,000,08,110,118,119,999"
)

// List is an ordered set of emergency numbers.
type List []string

// ParseList splits a comma separated list such as "112,911". Blank entries
// are dropped.
func ParseList(s string) List {
	var l List
	for _, n := range strings.Split(s, ",") {
		n = strings.TrimSpace(n)
		if n != "" {
			l = append(l, n)
		}
	}
	return l
}

// UnmarshalYAML accepts a sequence or a comma separated scalar.
func (l *List) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*l = ParseList(value.Value)
		return nil
	}
	var numbers []string
	if err := value.Decode(&numbers); err != nil {
		return err
	}
	*l = ParseList(strings.Join(numbers, ","))
	return nil
}

// String joins l with commas.
func (l List) String() string {
	return strings.Join(l, ",")
}

// IsEmergencyNumber reports whether dialing number reaches an entry of list.
// With exact set the network portion must equal an entry, otherwise it only
// has to start with one, so "1125" matches 112. An empty list falls back to
// DefaultNumbers. SIP addresses are never emergency numbers.
func IsEmergencyNumber(number string, list List, exact bool) bool {
	if number == "" || portion.IsURINumber(number) {
		return false
	}
	np := portion.ExtractNetworkPortionAlt(number)
	if np == "" {
		return false
	}

	if len(list) == 0 {
		list = ParseList(DefaultNumbers)
	}
	for _, n := range list {
		if exact && np == n {
			return true
		}
		if !exact && strings.HasPrefix(np, n) {
			return true
		}
	}
	return false
}

// Checker holds the lists of a device and the countries where only exact
// matches count.
type Checker struct {
	// Numbers is the list used while a SIM is present.
	Numbers List `yaml:"numbers" mapstructure:"numbers"`
	// NoSIMNumbers is the list used without a SIM.
	NoSIMNumbers List `yaml:"no_sim_numbers" mapstructure:"no_sim_numbers"`
	// ExactMatchCountries never match by prefix.
	ExactMatchCountries []string `yaml:"exact_match_countries" mapstructure:"exact_match_countries"`
}

// NewChecker returns a Checker with the default lists. Brazil only
// matches exactly.
func NewChecker() *Checker {
	return &Checker{
		Numbers:             ParseList(DefaultNumbers),
		NoSIMNumbers:        ParseList(DefaultNoSIMNumbers),
		ExactMatchCountries: []string{"BR"},
	}
}

// IsEmergencyNumber checks number for a device in countryISO. exact forces
// exact matching everywhere.
func (c *Checker) IsEmergencyNumber(number, countryISO string, simPresent, exact bool) bool {
	list := c.Numbers
	if !simPresent {
		list = c.NoSIMNumbers
		if len(list) == 0 {
			list = ParseList(DefaultNoSIMNumbers)
		}
	}
	exact = exact || slices.ContainsFunc(c.ExactMatchCountries, func(iso string) bool {
		return strings.EqualFold(iso, countryISO)
	})
	return IsEmergencyNumber(number, list, exact)
}
