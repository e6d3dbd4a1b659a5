// Package format provides the format and e164 commands.
package format

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/endorses/telnum/internal/pkg/cmdutil"
	"github.com/endorses/telnum/internal/pkg/intl"
	"github.com/endorses/telnum/internal/pkg/logger"
	"github.com/endorses/telnum/internal/pkg/nanp"
	"github.com/endorses/telnum/internal/pkg/output"
)

// Result is the JSON output of format.
type Result struct {
	Input     string `json:"input"`
	Plan      string `json:"plan"`
	Formatted string `json:"formatted"`
	// Display is the numbering-plan display form, set when a country is known.
	Display string `json:"display,omitempty"`
	// NanpCountry is set when the network country belongs to the NANP.
	NanpCountry bool `json:"nanp_country,omitempty"`
}

var planName string

// FormatCmd formats numbers for display.
var FormatCmd = &cobra.Command{
	Use:   "format <number>...",
	Short: "Format numbers for display",
	Long: `Format numbers for display.

The plan (nanp, japan or unknown) defaults to the plan of the network
country. NANP numbers get dashes, "18005551234" becoming "1-800-555-1234".
Numbers the plan cannot format are printed unchanged.`,
	Example: `  telnum format 18005551234
  telnum format --plan japan 0363849000
  telnum format --network-country US 6502530000`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		country := cmdutil.GetStringConfig("country.network", "")

		plan := nanp.FormatTypeForCountry(country)
		if planName != "" {
			var err error
			if plan, err = nanp.ParseFormat(planName); err != nil {
				return cmdutil.Usagef("%v", err)
			}
		}

		results := make([]Result, 0, len(args))
		for _, arg := range args {
			results = append(results, Format(arg, plan, country))
		}
		return output.WriteJSON(cmd.OutOrStdout(), results)
	},
}

func init() {
	FormatCmd.Flags().StringVar(&planName, "plan", "", "Numbering plan: nanp, japan or unknown (default: by country)")
}

// Format formats number according to plan and, when country is set, the
// numbering plan database.
func Format(number string, plan nanp.Format, country string) Result {
	res := Result{
		Input:     number,
		Plan:      plan.String(),
		Formatted: nanp.FormatNumber(number, plan),
	}
	if country == "" {
		return res
	}

	display, err := intl.FormatNumber(number, country)
	if err != nil {
		if !errors.Is(err, intl.ErrUnparsable) {
			logger.Warn("Failed to format number", "number", number, "error", err)
		}
		display = number
	}
	res.Display = display
	res.NanpCountry = nanp.IsNanpCountry(country)
	return res
}
