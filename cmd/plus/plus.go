// Package plus provides the plus command, which rewrites the '+' of dial
// strings for CDMA networks.
package plus

import (
	"github.com/spf13/cobra"

	"github.com/endorses/telnum/internal/pkg/cmdutil"
	"github.com/endorses/telnum/internal/pkg/nanp"
	"github.com/endorses/telnum/internal/pkg/output"
	"github.com/endorses/telnum/internal/pkg/pluscode"
)

// Result is the JSON output for one dial string.
type Result struct {
	Input    string `json:"input"`
	Output   string `json:"output"`
	Current  string `json:"current_plan"`
	Home     string `json:"home_plan"`
	SMS      bool   `json:"sms,omitempty"`
	Modified bool   `json:"modified"`
}

var (
	currentPlan string
	homePlan    string
	sms         bool
)

// PlusCmd rewrites dial strings.
var PlusCmd = &cobra.Command{
	Use:   "plus <dial-string>...",
	Short: "Rewrite the '+' of dial strings for CDMA networks",
	Long: `Rewrite the '+' of dial strings for CDMA networks.

When both the current and the home plans are NANP, "+1" before a NANP
number is dropped and any other '+' becomes plus_code.nanp_idp (011).
Elsewhere '+' becomes plus_code.operator_idp, which keeps the '+' unless
configured. The plans come from --current/--home or from the network and
SIM countries. Without --current and --home, both countries must be set
and only strings that start with a digit, '*', '#' or '+' and contain no
separators are rewritten. With --sms the string is only rewritten when
both countries use the same plan.`,
	Example: `  telnum plus --current nanp --home nanp "+18475797000,+18475231753"
  telnum plus --network-country US --sim-country US +447911123456
  telnum plus --sms --network-country US --sim-country CA +18475797000`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cmdutil.LoadConfig()
		if err != nil {
			return err
		}

		network := cmdutil.GetStringConfig("country.network", "")
		sim := cmdutil.GetStringConfig("country.sim", "")

		curr, err := resolvePlan(currentPlan, network)
		if err != nil {
			return err
		}
		home, err := resolvePlan(homePlan, sim)
		if err != nil {
			return err
		}

		opts := Options{
			Current:        curr,
			Home:           home,
			ByCountry:      currentPlan == "" && homePlan == "",
			SMS:            sms,
			NetworkCountry: network,
			SIMCountry:     sim,
		}
		results := make([]Result, 0, len(args))
		for _, arg := range args {
			results = append(results, Rewrite(&cfg.PlusCode, arg, opts))
		}
		return output.WriteJSON(cmd.OutOrStdout(), results)
	},
}

func init() {
	PlusCmd.Flags().StringVar(&currentPlan, "current", "", "Plan of the current network: nanp, japan or unknown")
	PlusCmd.Flags().StringVar(&homePlan, "home", "", "Plan of the home network: nanp, japan or unknown")
	PlusCmd.Flags().BoolVar(&sms, "sms", false, "Rewrite an SMS destination address")
}

func resolvePlan(name, country string) (nanp.Format, error) {
	if name == "" {
		return nanp.FormatTypeForCountry(country), nil
	}
	f, err := nanp.ParseFormat(name)
	if err != nil {
		return nanp.FormatUnknown, cmdutil.Usagef("%v", err)
	}
	return f, nil
}

// Options select how Rewrite treats a dial string.
type Options struct {
	Current nanp.Format
	Home    nanp.Format
	// ByCountry derives the plans from the countries and leaves strings
	// with separators alone.
	ByCountry bool
	// SMS rewrites SMS destination addresses using the countries instead
	// of the plans.
	SMS            bool
	NetworkCountry string
	SIMCountry     string
}

// Rewrite runs planner over dial.
func Rewrite(planner *pluscode.Planner, dial string, opts Options) Result {
	var out string
	switch {
	case opts.SMS:
		out = planner.ProcessForSMS(dial, opts.NetworkCountry, opts.SIMCountry)
	case opts.ByCountry:
		out = planner.Process(dial, opts.NetworkCountry, opts.SIMCountry)
	default:
		out = planner.ProcessByNumberFormat(dial, opts.Current, opts.Home)
	}
	return Result{
		Input:    dial,
		Output:   out,
		Current:  opts.Current.String(),
		Home:     opts.Home.String(),
		SMS:      opts.SMS,
		Modified: dial != out,
	}
}
