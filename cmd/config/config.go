// Package config provides the config command, which checks and prints the
// telnum configuration.
package config

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/endorses/telnum/internal/pkg/cmdutil"
	telnumconfig "github.com/endorses/telnum/internal/pkg/config"
	"github.com/endorses/telnum/internal/pkg/logger"
	"github.com/endorses/telnum/internal/pkg/output"
)

// ValidateResult is the JSON output of config validate.
type ValidateResult struct {
	Path      string `json:"path"`
	Valid     bool   `json:"valid"`
	Watchlist int    `json:"watchlist"`
}

// ConfigCmd groups the configuration subcommands.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Check or print the configuration",
}

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a configuration file",
	Long: `Validate a YAML configuration file without the environment overlay.

Unknown keys, malformed values and unreadable files exit with code 2.
Without an argument the file from --config or the default search path is
checked.`,
	Example: `  telnum config validate ~/.config/telnum/config.yaml
  telnum --config ./telnum.yaml config validate`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := viper.ConfigFileUsed()
		if len(args) == 1 {
			path = args[0]
		}
		if path == "" {
			return cmdutil.Usagef("no config file found (pass one or use --config)")
		}

		res, err := Validate(path)
		if err != nil {
			return err
		}
		return output.WriteJSON(cmd.OutOrStdout(), res)
	},
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration commands run with: built-in defaults, then the
config file, then TELNUM_* environment variables and flags.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cmdutil.LoadConfig()
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("failed to write configuration: %w", err)
		}
		return enc.Close()
	},
}

func init() {
	ConfigCmd.AddCommand(validateCmd)
	ConfigCmd.AddCommand(showCmd)
}

// Validate loads the file at path strictly.
func Validate(path string) (ValidateResult, error) {
	cfg, err := telnumconfig.LoadFile(path)
	if err != nil {
		logger.Debug("Config file rejected", "path", path, "error", err)
		return ValidateResult{Path: path}, err
	}
	return ValidateResult{Path: path, Valid: true, Watchlist: len(cfg.Watchlist)}, nil
}
