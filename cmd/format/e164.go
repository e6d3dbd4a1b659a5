package format

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/endorses/telnum/internal/pkg/cmdutil"
	"github.com/endorses/telnum/internal/pkg/intl"
	"github.com/endorses/telnum/internal/pkg/output"
)

// E164Result is the JSON output of e164.
type E164Result struct {
	Input         string `json:"input"`
	Country       string `json:"country"`
	E164          string `json:"e164"`
	RFC3966       string `json:"rfc3966"`
	International bool   `json:"international"`
}

// E164Cmd converts numbers to E.164.
var E164Cmd = &cobra.Command{
	Use:   "e164 <number>...",
	Short: "Convert numbers to E.164",
	Long: `Convert numbers dialed in the SIM country (or, if unset, the network
country) to E.164. Numbers that are not valid in their numbering plan fail
with exit code 3.`,
	Example: `  telnum e164 --sim-country US "(650) 253-0000"
  telnum e164 --sim-country GB "020 7031 3000"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		country := cmdutil.GetStringConfig("country.sim", "")
		if country == "" {
			country = cmdutil.GetStringConfig("country.network", "")
		}
		if country == "" {
			return cmdutil.Usagef("a country is required (use --sim-country or set country.sim in config)")
		}

		results := make([]E164Result, 0, len(args))
		for _, arg := range args {
			res, err := ToE164(arg, country)
			if err != nil {
				return err
			}
			results = append(results, res)
		}
		return output.WriteJSON(cmd.OutOrStdout(), results)
	},
}

// ToE164 converts number, dialed in country, to E.164 and RFC 3966 form.
func ToE164(number, country string) (E164Result, error) {
	e164, err := intl.FormatNumberToE164(number, country)
	if err != nil {
		return E164Result{}, fmt.Errorf("failed to convert to E.164: %w", err)
	}
	rfc, err := intl.FormatNumberToRFC3966(number, country)
	if err != nil {
		return E164Result{}, fmt.Errorf("failed to convert to RFC 3966: %w", err)
	}
	return E164Result{
		Input:         number,
		Country:       country,
		E164:          e164,
		RFC3966:       rfc,
		International: intl.IsInternationalNumber(number, country),
	}, nil
}
