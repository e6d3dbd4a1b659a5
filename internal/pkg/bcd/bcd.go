// Package bcd encodes and decodes the "Called Party BCD Number" information
// element of 3GPP TS 24.008 §10.5.4.7, as carried in SMS and USSD PDUs and
// in SIM EF_ADN records.
//
// Layout: an optional length byte, one type-of-address (TOA) byte, then the
// digits packed two per byte, low nibble first. An odd digit count fills the
// last high nibble with 0xF.
package bcd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/endorses/telnum/internal/pkg/dialchar"
	"github.com/endorses/telnum/internal/pkg/portion"
)

// Type-of-address bytes.
const (
	TOAInternational byte = 0x91
	TOAUnknown       byte = 0x81

	toaTONMask byte = 0xF0
	fillNibble byte = 0x0F
)

// ErrInvalidBCDChar is returned when a character has no BCD nibble. Strings
// that went through portion.ExtractNetworkPortion never produce it.
var ErrInvalidBCDChar = errors.New("invalid character for BCD")

// ExtendedType selects the meaning of nibbles 0xA-0xE.
type ExtendedType int

const (
	// ExtendedEFADN is the SIM EF_ADN table: * # PAUSE WILD WAIT.
	ExtendedEFADN ExtendedType = iota
	// ExtendedCalledParty is TS 24.008 Table 10.5.118: * # a b c.
	ExtendedCalledParty
)

func (t ExtendedType) extended() [5]rune {
	if t == ExtendedCalledParty {
		return [5]rune{'*', '#', 'a', 'b', 'c'}
	}
	return [5]rune{'*', '#', dialchar.Pause, dialchar.Wild, dialchar.Wait}
}

// String returns the name used for the type on the command line.
func (t ExtendedType) String() string {
	switch t {
	case ExtendedEFADN:
		return "ef_adn"
	case ExtendedCalledParty:
		return "called_party"
	default:
		return fmt.Sprintf("ExtendedType(%d)", int(t))
	}
}

// ParseExtendedType parses the names returned by String.
func ParseExtendedType(s string) (ExtendedType, error) {
	switch strings.ToLower(s) {
	case "", "ef_adn", "adn":
		return ExtendedEFADN, nil
	case "called_party", "called-party":
		return ExtendedCalledParty, nil
	}
	return 0, fmt.Errorf("unknown BCD extended type %q", s)
}

func charToBCD(c rune, ext ExtendedType) (byte, error) {
	if dialchar.IsISODigit(c) {
		return byte(c - '0'), nil
	}
	for i, e := range ext.extended() {
		if c == e {
			return byte(0xA + i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidBCDChar, c)
}

// bcdToChar returns 0 for nibbles without a mapping.
func bcdToChar(b byte, ext ExtendedType) rune {
	switch {
	case b <= 9:
		return rune('0' + b)
	case b <= 0xE:
		return ext.extended()[b-0xA]
	}
	return 0
}

// NumberToCalledPartyBCD encodes number with a leading TOA byte. A '+' makes
// the number international and is not encoded. It returns nil, nil when
// there is nothing to encode.
func NumberToCalledPartyBCD(number string, ext ExtendedType) ([]byte, error) {
	return encode(number, false, ext)
}

// NumberToCalledPartyBCDWithLength is NumberToCalledPartyBCD preceded by a
// length byte counting the TOA byte and the digits.
func NumberToCalledPartyBCDWithLength(number string, ext ExtendedType) ([]byte, error) {
	return encode(number, true, ext)
}

// NetworkPortionToCalledPartyBCD encodes the network portion of s.
func NetworkPortionToCalledPartyBCD(s string) ([]byte, error) {
	return encode(portion.ExtractNetworkPortion(s), false, ExtendedEFADN)
}

// NetworkPortionToCalledPartyBCDWithLength encodes the network portion of s
// with a length byte.
func NetworkPortionToCalledPartyBCDWithLength(s string) ([]byte, error) {
	return encode(portion.ExtractNetworkPortion(s), true, ExtendedEFADN)
}

func encode(number string, includeLength bool, ext ExtendedType) ([]byte, error) {
	hasPlus := false
	digits := make([]byte, 0, len(number))
	for _, c := range number {
		if c == '+' {
			hasPlus = true
			continue
		}
		nibble, err := charToBCD(c, ext)
		if err != nil {
			return nil, err
		}
		digits = append(digits, nibble)
	}
	if len(digits) == 0 {
		return nil, nil
	}

	extra := 1
	if includeLength {
		extra++
	}
	result := make([]byte, extra+(len(digits)+1)/2)

	for i, nibble := range digits {
		shift := uint(i&1) * 4
		result[extra+(i>>1)] |= nibble << shift
	}
	if len(digits)&1 == 1 {
		result[len(result)-1] |= fillNibble << 4
	}

	offset := 0
	if includeLength {
		result[offset] = byte(len(result) - 1)
		offset++
	}
	if hasPlus {
		result[offset] = TOAInternational
	} else {
		result[offset] = TOAUnknown
	}
	return result, nil
}

// CalledPartyBCDToString decodes a TOA byte followed by packed digits. Input
// shorter than two bytes decodes to "". Decoding stops at the first nibble
// without a mapping.
func CalledPartyBCDToString(b []byte, ext ExtendedType) string {
	if len(b) < 2 {
		return ""
	}

	prependPlus := b[0]&toaTONMask == TOAInternational&toaTONMask

	var sb strings.Builder
	sb.Grow(len(b) * 2)
	fragmentToString(&sb, b[1:], ext)

	if !prependPlus {
		return sb.String()
	}
	if sb.Len() == 0 {
		return ""
	}
	return insertPlus(sb.String())
}

// CalledPartyBCDFragmentToString decodes packed digits without a TOA byte.
func CalledPartyBCDFragmentToString(b []byte, ext ExtendedType) string {
	var sb strings.Builder
	sb.Grow(len(b) * 2)
	fragmentToString(&sb, b, ext)
	return sb.String()
}

func fragmentToString(sb *strings.Builder, b []byte, ext ExtendedType) {
	for i, octet := range b {
		c := bcdToChar(octet&0x0F, ext)
		if c == 0 {
			return
		}
		sb.WriteRune(c)

		high := octet >> 4
		if high == fillNibble && i == len(b)-1 {
			return
		}
		c = bcdToChar(high, ext)
		if c == 0 {
			return
		}
		sb.WriteRune(c)
	}
}
