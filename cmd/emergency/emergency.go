// Package emergency provides the emergency command.
package emergency

import (
	"github.com/spf13/cobra"

	"github.com/endorses/telnum/internal/pkg/cmdutil"
	"github.com/endorses/telnum/internal/pkg/emergency"
	"github.com/endorses/telnum/internal/pkg/output"
)

// Result is the JSON output for one number.
type Result struct {
	Number    string `json:"number"`
	Emergency bool   `json:"emergency"`
}

var (
	exact    bool
	noSIM    bool
	listFlag string
)

// EmergencyCmd checks numbers against the emergency number lists.
var EmergencyCmd = &cobra.Command{
	Use:   "emergency <number>...",
	Short: "Check whether numbers are emergency numbers",
	Long: `Check whether dialing a number reaches an emergency service.

The list comes from --list, else emergency.numbers (or
emergency.no_sim_numbers with --no-sim). Numbers match by prefix unless
--exact is given or the network country is one of
emergency.exact_match_countries.`,
	Example: `  telnum emergency 911 1125
  telnum emergency --exact --list 112,999 999
  telnum emergency --network-country BR 1900`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cmdutil.LoadConfig()
		if err != nil {
			return err
		}

		checker := cfg.Emergency
		if listFlag != "" {
			checker.Numbers = emergency.ParseList(listFlag)
			checker.NoSIMNumbers = checker.Numbers
		}
		country := cmdutil.GetStringConfig("country.network", "")

		results := make([]Result, 0, len(args))
		for _, arg := range args {
			results = append(results, Result{
				Number:    arg,
				Emergency: checker.IsEmergencyNumber(arg, country, !noSIM, exact),
			})
		}
		return output.WriteJSON(cmd.OutOrStdout(), results)
	},
}

func init() {
	EmergencyCmd.Flags().BoolVarP(&exact, "exact", "x", false, "Require an exact match")
	EmergencyCmd.Flags().BoolVar(&noSIM, "no-sim", false, "Use the list for devices without a SIM")
	EmergencyCmd.Flags().StringVarP(&listFlag, "list", "l", "", "Comma separated emergency numbers")
}
