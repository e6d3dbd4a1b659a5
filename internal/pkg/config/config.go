// Package config loads the telnum configuration: the IDP strings used for
// plus-code rewriting, the per-country comparison policy, emergency number
// lists, the caller-ID watchlist and the default countries.
//
// Values come from $HOME/.config/telnum/config.yaml (or --config), then
// TELNUM_* environment variables, e.g. TELNUM_PLUS_CODE_OPERATOR_IDP=00.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/endorses/telnum/internal/pkg/emergency"
	"github.com/endorses/telnum/internal/pkg/numcompare"
	"github.com/endorses/telnum/internal/pkg/pluscode"
)

// EnvPrefix prefixes environment overrides.
const EnvPrefix = "TELNUM"

// ErrInvalidConfig is returned for configurations that fail validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Country holds the countries assumed when a command is not given any.
type Country struct {
	// Network is the country of the network the device is on.
	Network string `yaml:"network" mapstructure:"network"`
	// SIM is the home country of the subscriber.
	SIM string `yaml:"sim" mapstructure:"sim"`
}

// Config is the complete telnum configuration.
type Config struct {
	Country   Country           `yaml:"country" mapstructure:"country"`
	PlusCode  pluscode.Planner  `yaml:"plus_code" mapstructure:"plus_code"`
	Compare   numcompare.Policy `yaml:"compare" mapstructure:"compare"`
	Emergency emergency.Checker `yaml:"emergency" mapstructure:"emergency"`
	Watchlist []string          `yaml:"watchlist" mapstructure:"watchlist"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		PlusCode:  *pluscode.New(),
		Compare:   numcompare.DefaultPolicy(),
		Emergency: *emergency.NewChecker(),
	}
}

// SetDefaults registers the built-in values with v so that environment
// overrides apply to every key.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("country.network", d.Country.Network)
	v.SetDefault("country.sim", d.Country.SIM)
	v.SetDefault("plus_code.nanp_idp", d.PlusCode.NanpIDP)
	v.SetDefault("plus_code.operator_idp", d.PlusCode.OperatorIDP)
	v.SetDefault("compare.strict_countries", append([]string{}, d.Compare.StrictCountries...))
	v.SetDefault("compare.exact_match_countries", d.Compare.ExactMatchCountries)
	v.SetDefault("emergency.numbers", d.Emergency.Numbers.String())
	v.SetDefault("emergency.no_sim_numbers", d.Emergency.NoSIMNumbers.String())
	v.SetDefault("emergency.exact_match_countries", d.Emergency.ExactMatchCountries)
	v.SetDefault("watchlist", append([]string{}, d.Watchlist...))
}

// BindEnv makes v read TELNUM_* variables, nested keys joined by '_'.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// FromViper decodes the configuration held by v and validates it.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := Default()
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		stringToListHook(),
		mapstructure.StringToSliceHookFunc(","),
	))
	// Lists replace the built-in ones instead of overwriting them in place.
	zero := func(dc *mapstructure.DecoderConfig) { dc.ZeroFields = true }
	if err := v.Unmarshal(cfg, hook, zero); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads a YAML configuration file. Keys missing from the file keep
// their built-in values, as they do for FromViper.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read config file: %w", ErrInvalidConfig, err)
	}
	return Parse(data)
}

// Parse decodes a YAML document over the built-in configuration. Unknown
// keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: failed to parse config: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the IDP strings and country codes.
func (c *Config) Validate() error {
	if err := validateIDP("plus_code.nanp_idp", c.PlusCode.NanpIDP); err != nil {
		return err
	}
	if err := validateIDP("plus_code.operator_idp", c.PlusCode.OperatorIDP); err != nil {
		return err
	}

	isos := map[string][]string{
		"country.network":                 {c.Country.Network},
		"country.sim":                     {c.Country.SIM},
		"compare.strict_countries":        c.Compare.StrictCountries,
		"compare.exact_match_countries":   c.Compare.ExactMatchCountries,
		"emergency.exact_match_countries": c.Emergency.ExactMatchCountries,
	}
	for key, values := range isos {
		for _, iso := range values {
			if iso != "" && !isISOCountry(iso) {
				return fmt.Errorf("%w: %s: %q is not an ISO 3166 country code", ErrInvalidConfig, key, iso)
			}
		}
	}
	return nil
}

// validateIDP accepts "+" (leave the plus sign alone) or a digit string.
func validateIDP(key, idp string) error {
	if idp == "" || idp == "+" {
		return nil
	}
	for _, c := range idp {
		if c < '0' || c > '9' {
			return fmt.Errorf("%w: %s: %q must be digits or \"+\"", ErrInvalidConfig, key, idp)
		}
	}
	return nil
}

func isISOCountry(s string) bool {
	if len(s) != 2 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i] | 0x20
		if c < 'a' || c > 'z' {
			return false
		}
	}
	return true
}

// stringToListHook decodes "112,911" into an emergency.List.
func stringToListHook() mapstructure.DecodeHookFuncType {
	listType := reflect.TypeOf(emergency.List{})
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t != listType {
			return data, nil
		}
		return emergency.ParseList(data.(string)), nil
	}
}
