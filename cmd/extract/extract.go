// Package extract provides the extract command, which splits dial strings
// into their network and post-dial portions.
package extract

import (
	"github.com/spf13/cobra"

	"github.com/endorses/telnum/internal/pkg/dialchar"
	"github.com/endorses/telnum/internal/pkg/output"
	"github.com/endorses/telnum/internal/pkg/portion"
)

// Result is the JSON output for one dial string.
type Result struct {
	Input             string `json:"input"`
	NetworkPortion    string `json:"network_portion"`
	NetworkPortionAlt string `json:"network_portion_alt"`
	PostDialPortion   string `json:"post_dial_portion"`
	Stripped          string `json:"stripped"`
	Normalized        string `json:"normalized"`
	CallerIDMinMatch  string `json:"caller_id_min_match"`
	StrippedReversed  string `json:"stripped_reversed"`
	URI               bool   `json:"uri"`
	Username          string `json:"username,omitempty"`
	Dialable          bool   `json:"dialable"`
	GlobalNumber      bool   `json:"global_number"`
	WellFormedSMS     bool   `json:"well_formed_sms"`
}

var (
	convertKeypad  bool
	convertPreDial bool
)

// ExtractCmd prints the portions of each dial string argument.
var ExtractCmd = &cobra.Command{
	Use:   "extract <dial-string>...",
	Short: "Split dial strings into network and post-dial portions",
	Long: `Split dial strings into their network portion (the dialable prefix up to
the first pause ',' or wait ';') and their post-dial DTMF portion.

Letters are ignored unless --keypad converts them to keypad digits first.
With --pre-dial, typed 'p' and 'w' become pause and wait.`,
	Example: `  telnum extract "+1 (650) 555-1212,1234"
  telnum extract --keypad 1-800-FLOWERS
  telnum extract --pre-dial 6505551212p1234`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		results := make([]Result, 0, len(args))
		for _, arg := range args {
			results = append(results, Extract(arg, convertKeypad, convertPreDial))
		}
		return output.WriteJSON(cmd.OutOrStdout(), results)
	},
}

func init() {
	ExtractCmd.Flags().BoolVarP(&convertKeypad, "keypad", "k", false, "Convert letters to keypad digits before extracting")
	ExtractCmd.Flags().BoolVarP(&convertPreDial, "pre-dial", "p", false, "Treat p/P as pause and w/W as wait")
}

// Extract computes the Result for s.
func Extract(s string, keypad, preDial bool) Result {
	input := s
	if preDial {
		s = portion.ConvertPreDial(s)
	}
	stripped := portion.StripSeparators(s)
	if keypad {
		stripped = portion.ConvertAndStrip(s)
		s = portion.ConvertKeypadLettersToDigits(s)
	}

	np := portion.ExtractNetworkPortion(s)
	res := Result{
		Input:             input,
		NetworkPortion:    np,
		NetworkPortionAlt: portion.ExtractNetworkPortionAlt(s),
		PostDialPortion:   portion.ExtractPostDialPortion(s),
		Stripped:          stripped,
		Normalized:        portion.NormalizeNumber(s),
		CallerIDMinMatch:  portion.ToCallerIDMinMatch(s),
		StrippedReversed:  portion.GetStrippedReversed(s),
		URI:               portion.IsURINumber(s),
		Dialable:          np != "" && dialchar.IsDialableString(np),
		GlobalNumber:      portion.IsGlobalPhoneNumber(s),
		WellFormedSMS:     portion.IsWellFormedSMSAddress(s),
	}
	if res.URI {
		res.Username = portion.UsernameFromURINumber(s)
	}
	return res
}
