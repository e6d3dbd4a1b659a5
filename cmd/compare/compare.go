// Package compare provides the compare command, which decides whether two
// numbers denote the same subscriber.
package compare

import (
	"github.com/spf13/cobra"

	"github.com/endorses/telnum/internal/pkg/cmdutil"
	"github.com/endorses/telnum/internal/pkg/intl"
	"github.com/endorses/telnum/internal/pkg/numcompare"
	"github.com/endorses/telnum/internal/pkg/output"
)

// Result is the JSON output of compare.
type Result struct {
	A       string          `json:"a"`
	B       string          `json:"b"`
	Mode    numcompare.Mode `json:"mode"`
	Country string          `json:"country,omitempty"`
	Match   bool            `json:"match"`
	// SameNumber is the numbering-plan verdict, set when a country is known.
	SameNumber *bool `json:"same_number,omitempty"`
}

// Options select the comparison.
type Options struct {
	// Mode overrides the country policy when set.
	Mode numcompare.Mode
	// Country selects the policy mode and enables the numbering-plan check.
	Country string
	// AcceptInvalidCCC lets strict comparison fall back to loose matching.
	AcceptInvalidCCC bool
	// VoiceMail treats b as a voicemail number.
	VoiceMail bool
}

var (
	modeName      string
	rejectInvCCC  bool
	voiceMailFlag bool
)

// CompareCmd compares two numbers.
var CompareCmd = &cobra.Command{
	Use:   "compare <a> <b>",
	Short: "Compare two phone numbers",
	Long: `Compare two phone numbers as caller-ID matching does.

Without --mode the comparison configured for the network country is used:
exact in the compare.exact_match_countries, strict in the
compare.strict_countries and loose everywhere else. --voicemail checks
whether <a> reaches the voicemail number <b> using the same mode, after
dropping any post-dial digits of <a>.`,
	Example: `  telnum compare 650-555-1212 555-1212
  telnum compare --mode strict +81312345678 0312345678
  telnum compare --network-country BR "(11) 98765-4321" 11987654321
  telnum compare --voicemail "+1 650 555 1212,123" 6505551212`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cmdutil.LoadConfig()
		if err != nil {
			return err
		}

		opts := Options{
			Country:          cmdutil.GetStringConfig("country.network", ""),
			AcceptInvalidCCC: !rejectInvCCC,
			VoiceMail:        voiceMailFlag,
		}
		if modeName != "" {
			if opts.Mode, err = numcompare.ParseMode(modeName); err != nil {
				return cmdutil.Usagef("%v", err)
			}
		}

		return output.WriteJSON(cmd.OutOrStdout(), Compare(args[0], args[1], cfg.Compare, opts))
	},
}

func init() {
	CompareCmd.Flags().StringVarP(&modeName, "mode", "m", "", "Comparison: loose, strict or exact (default: by country)")
	CompareCmd.Flags().BoolVar(&rejectInvCCC, "reject-invalid-ccc", false, "Do not fall back to loose matching on an unknown country code prefix")
	CompareCmd.Flags().BoolVar(&voiceMailFlag, "voicemail", false, "Check whether <a> reaches the voicemail number <b>")
}

// Compare compares a and b under policy and opts.
func Compare(a, b string, policy numcompare.Policy, opts Options) Result {
	mode := opts.Mode
	if mode == "" {
		mode = policy.ModeFor(opts.Country)
	}
	res := Result{A: a, B: b, Mode: mode, Country: opts.Country}

	switch {
	case mode == numcompare.ModeExact:
		res.Match = numcompare.CompareExactly(a, b)
	case opts.VoiceMail:
		res.Match = numcompare.IsVoiceMailNumber(a, b, mode == numcompare.ModeStrict)
	case mode == numcompare.ModeStrict:
		res.Match = numcompare.CompareStrictly(a, b, opts.AcceptInvalidCCC)
	default:
		res.Match = numcompare.CompareLoosely(a, b)
	}

	if opts.Country != "" {
		same := intl.AreSamePhoneNumber(a, b, opts.Country)
		res.SameNumber = &same
	}
	return res
}
