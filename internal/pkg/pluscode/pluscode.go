// Package pluscode rewrites the '+' of dial strings for CDMA networks, which
// cannot carry it: a leading "+1" before a NANP number is dropped when both
// the current and home networks use the NANP, any other leading '+' is
// replaced with the international dialing prefix (IDP) of the current
// network.
package pluscode

import (
	"strings"

	"github.com/endorses/telnum/internal/pkg/dialchar"
	"github.com/endorses/telnum/internal/pkg/logger"
	"github.com/endorses/telnum/internal/pkg/nanp"
	"github.com/endorses/telnum/internal/pkg/portion"
)

const (
	// DefaultNanpIDP is dialed before the country code from NANP networks.
	DefaultNanpIDP = "011"
	// DefaultOperatorIDP keeps the '+' when the operator IDP is unknown.
	DefaultOperatorIDP = "+"
)

// Planner holds the IDP strings used to replace a leading '+'.
type Planner struct {
	// NanpIDP replaces '+' when both networks use the NANP.
	NanpIDP string `yaml:"nanp_idp" mapstructure:"nanp_idp"`
	// OperatorIDP replaces '+' everywhere else.
	OperatorIDP string `yaml:"operator_idp" mapstructure:"operator_idp"`
}

// New returns a Planner with the default IDP strings.
func New() *Planner {
	return &Planner{NanpIDP: DefaultNanpIDP, OperatorIDP: DefaultOperatorIDP}
}

func (p *Planner) idp(useNanp bool) string {
	if useNanp {
		if p.NanpIDP == "" {
			return DefaultNanpIDP
		}
		return p.NanpIDP
	}
	if p.OperatorIDP == "" {
		return DefaultOperatorIDP
	}
	return p.OperatorIDP
}

// ProcessByNumberFormat rewrites the '+' in every segment of dial, where
// segments are the network portion and each dialable run after a PAUSE or
// WAIT. curr is the format of the network the device is on and def the
// format of its home network. Strings without a '+' are returned unchanged,
// as is the whole string if a segment has no network portion.
func (p *Planner) ProcessByNumberFormat(dial string, curr, def nanp.Format) string {
	if !strings.Contains(dial, "+") {
		return dial
	}

	useNanp := curr == def && curr == nanp.FormatNANP

	var out strings.Builder
	rest := dial
	for rest != "" {
		var network string
		if useNanp {
			network = portion.ExtractNetworkPortion(rest)
		} else {
			network = portion.ExtractNetworkPortionAlt(rest)
		}
		network = p.processPlus(network, useNanp)
		if network == "" {
			logger.Warn("Dial string segment has no network portion",
				"dial", dial,
				"segment", rest)
			return dial
		}
		out.WriteString(network)

		post := portion.ExtractPostDialPortion(rest)
		if post == "" {
			break
		}

		idx := dialableIndex(post)
		if idx < 1 {
			// Trailing P/W characters only.
			logger.Debug("Dropping post-dial portion without dialable characters",
				"dial", dial,
				"post_dial", post)
			break
		}
		out.WriteString(post[:idx])
		rest = post[idx:]
	}

	return out.String()
}

// ProcessForSMS rewrites the '+' of an SMS destination address. The address
// is converted only if networkISO and simISO are set and map to the same
// numbering-plan format; it must start with a dialable character and contain
// no separators.
func (p *Planner) ProcessForSMS(dial, networkISO, simISO string) string {
	if dial == "" || networkISO == "" || simISO == "" {
		return dial
	}
	if !dialchar.IsReallyDialable(rune(dial[0])) || !isNonSeparatorString(dial) {
		return dial
	}

	curr := nanp.FormatTypeForCountry(networkISO)
	def := nanp.FormatTypeForCountry(simISO)
	if curr != def {
		return dial
	}
	return p.ProcessByNumberFormat(dial, curr, def)
}

// Process rewrites the '+' of a dial string for the network and SIM
// countries. Unlike ProcessForSMS the formats may differ.
func (p *Planner) Process(dial, networkISO, simISO string) string {
	if dial == "" || networkISO == "" || simISO == "" {
		return dial
	}
	if !dialchar.IsReallyDialable(rune(dial[0])) || !isNonSeparatorString(dial) {
		return dial
	}
	return p.ProcessByNumberFormat(dial,
		nanp.FormatTypeForCountry(networkISO),
		nanp.FormatTypeForCountry(simISO))
}

func (p *Planner) processPlus(network string, useNanp bool) string {
	if len(network) <= 1 || network[0] != '+' {
		return network
	}
	rest := network[1:]
	if useNanp && nanp.IsOneNanp(rest) {
		return rest
	}
	return p.idp(useNanp) + rest
}

// dialableIndex returns the byte index of the first really dialable
// character of post, or -1.
func dialableIndex(post string) int {
	for i, c := range post {
		if dialchar.IsReallyDialable(c) {
			return i
		}
	}
	return -1
}

func isNonSeparatorString(s string) bool {
	for _, c := range s {
		if !dialchar.IsNonSeparator(c) {
			return false
		}
	}
	return true
}
