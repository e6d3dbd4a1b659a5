// Package cmdutil provides shared utilities for CLI command implementations.
package cmdutil

import (
	"github.com/spf13/viper"

	"github.com/endorses/telnum/internal/pkg/config"
)

// GetStringConfig returns the config value for key, or flagValue if the key is not set.
// Flag values take precedence over config file values.
func GetStringConfig(key, flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return viper.GetString(key)
}

// GetStringSliceConfig returns flagValue if given, else the config value for key.
func GetStringSliceConfig(key string, flagValue []string) []string {
	if len(flagValue) > 0 {
		return flagValue
	}
	// Check actual config value instead of viper.IsSet() which returns true
	// for bound flags even when config file doesn't define them
	if configValue := viper.GetStringSlice(key); len(configValue) > 0 {
		return configValue
	}
	return flagValue
}

// LoadConfig decodes the process-wide viper configuration.
func LoadConfig() (*config.Config, error) {
	return config.FromViper(viper.GetViper())
}
