// Package bcd provides the bcd command, which converts numbers to and from
// the TS 24.008 Called Party BCD Number layout.
package bcd

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/endorses/telnum/internal/pkg/bcd"
	"github.com/endorses/telnum/internal/pkg/cmdutil"
	"github.com/endorses/telnum/internal/pkg/output"
)

// EncodeResult is the JSON output of bcd encode.
type EncodeResult struct {
	Input string `json:"input"`
	Hex   string `json:"hex"`
	TOA   string `json:"toa,omitempty"`
}

// DecodeResult is the JSON output of bcd decode.
type DecodeResult struct {
	Hex    string `json:"hex"`
	Number string `json:"number"`
}

var (
	extendedName   string
	withLength     bool
	networkPortion bool
	fragment       bool
)

// BcdCmd groups the BCD conversions.
var BcdCmd = &cobra.Command{
	Use:   "bcd",
	Short: "Encode and decode Called Party BCD numbers",
	Long: `Encode and decode the Called Party BCD Number layout of 3GPP TS 24.008:
a type-of-address byte (0x91 international, 0x81 unknown) followed by
digits packed low nibble first, 0xF as fill.`,
}

var encodeCmd = &cobra.Command{
	Use:   "encode <number>",
	Short: "Encode a number as BCD",
	Example: `  telnum bcd encode +16505551212
  telnum bcd encode --with-length "*21#"
  telnum bcd encode --network-portion "6505551212,1234"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ext, err := bcd.ParseExtendedType(extendedName)
		if err != nil {
			return cmdutil.Usagef("%v", err)
		}
		res, err := Encode(args[0], ext, withLength, networkPortion)
		if err != nil {
			return err
		}
		return output.WriteJSON(cmd.OutOrStdout(), res)
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode <hex>",
	Short: "Decode BCD bytes to a number",
	Example: `  telnum bcd decode 91615055152121
  telnum bcd decode --fragment 2143`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ext, err := bcd.ParseExtendedType(extendedName)
		if err != nil {
			return cmdutil.Usagef("%v", err)
		}
		res, err := Decode(args[0], ext, fragment)
		if err != nil {
			return err
		}
		return output.WriteJSON(cmd.OutOrStdout(), res)
	},
}

func init() {
	BcdCmd.PersistentFlags().StringVarP(&extendedName, "extended", "e", "ef_adn", "Meaning of nibbles 0xA-0xE: ef_adn or called_party")

	encodeCmd.Flags().BoolVarP(&withLength, "with-length", "l", false, "Prefix the bytes with their length")
	encodeCmd.Flags().BoolVarP(&networkPortion, "network-portion", "n", false, "Encode only the network portion of the input")
	decodeCmd.Flags().BoolVarP(&fragment, "fragment", "f", false, "Input has no type-of-address byte")

	BcdCmd.AddCommand(encodeCmd)
	BcdCmd.AddCommand(decodeCmd)
}

// Encode converts number to BCD.
func Encode(number string, ext bcd.ExtendedType, length, network bool) (EncodeResult, error) {
	var (
		b   []byte
		err error
	)
	switch {
	case network && length:
		b, err = bcd.NetworkPortionToCalledPartyBCDWithLength(number)
	case network:
		b, err = bcd.NetworkPortionToCalledPartyBCD(number)
	case length:
		b, err = bcd.NumberToCalledPartyBCDWithLength(number, ext)
	default:
		b, err = bcd.NumberToCalledPartyBCD(number, ext)
	}
	if err != nil {
		return EncodeResult{}, fmt.Errorf("failed to encode %q: %w", number, err)
	}

	res := EncodeResult{Input: number, Hex: hex.EncodeToString(b)}
	toaIndex := 0
	if length {
		toaIndex = 1
	}
	if len(b) > toaIndex {
		res.TOA = fmt.Sprintf("0x%02x", b[toaIndex])
	}
	return res, nil
}

// Decode converts hex encoded BCD bytes to a number.
func Decode(s string, ext bcd.ExtendedType, isFragment bool) (DecodeResult, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(strings.ToLower(s), "0x"))
	if err != nil {
		return DecodeResult{}, cmdutil.Usagef("invalid hex %q: %v", s, err)
	}

	res := DecodeResult{Hex: hex.EncodeToString(b)}
	if isFragment {
		res.Number = bcd.CalledPartyBCDFragmentToString(b, ext)
	} else {
		res.Number = bcd.CalledPartyBCDToString(b, ext)
	}
	return res, nil
}
