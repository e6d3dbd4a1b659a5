package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/endorses/telnum/cmd/bcd"
	"github.com/endorses/telnum/cmd/compare"
	configcmd "github.com/endorses/telnum/cmd/config"
	"github.com/endorses/telnum/cmd/emergency"
	"github.com/endorses/telnum/cmd/extract"
	"github.com/endorses/telnum/cmd/format"
	"github.com/endorses/telnum/cmd/match"
	"github.com/endorses/telnum/cmd/plus"
	"github.com/endorses/telnum/internal/pkg/cmdutil"
	"github.com/endorses/telnum/internal/pkg/config"
	"github.com/endorses/telnum/internal/pkg/logger"
	"github.com/endorses/telnum/internal/pkg/version"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:           "telnum",
	Short:         "telnum takes phone numbers apart",
	Long:          fmt.Sprintf("telnum %s - Dial string parsing, BCD coding, comparison and formatting", version.Version),
	Version:       version.GetFullVersion(),
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command and exits with the code of its error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(cmdutil.WriteError(os.Stderr, err))
	}
}

func addSubCommandPalettes(root *cobra.Command) {
	root.AddCommand(extract.ExtractCmd)
	root.AddCommand(bcd.BcdCmd)
	root.AddCommand(compare.CompareCmd)
	root.AddCommand(format.FormatCmd)
	root.AddCommand(format.E164Cmd)
	root.AddCommand(plus.PlusCmd)
	root.AddCommand(emergency.EmergencyCmd)
	root.AddCommand(match.MatchCmd)
	root.AddCommand(configcmd.ConfigCmd)
	root.AddCommand(versionCmd)
}

func init() {
	cobra.OnInitialize(initConfig)

	logger.Initialize()

	addSubCommandPalettes(rootCmd)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/telnum/config.yaml)")
	rootCmd.PersistentFlags().String("network-country", "", "ISO 3166 country of the current network")
	rootCmd.PersistentFlags().String("sim-country", "", "ISO 3166 home country of the SIM")
}

func initConfig() {
	v := viper.GetViper()
	config.SetDefaults(v)
	config.BindEnv(v)
	_ = v.BindPFlag("country.network", rootCmd.PersistentFlags().Lookup("network-country"))
	_ = v.BindPFlag("country.sim", rootCmd.PersistentFlags().Lookup("sim-country"))

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// ~/.config/telnum/config.yaml, then ~/.config/telnum.yaml
		v.AddConfigPath(filepath.Join(home, ".config", "telnum"))
		v.AddConfigPath(filepath.Join(home, ".config"))
		v.SetConfigType("yaml")

		v.SetConfigName("config")
		if err := v.ReadInConfig(); err != nil {
			v.SetConfigName("telnum")
		}
	}

	if err := v.ReadInConfig(); err == nil {
		logger.Debug("Using config file", "path", v.ConfigFileUsed())
	} else if cfgFile != "" {
		logger.Warn("Failed to read config file", "path", cfgFile, "error", err)
	}
}
