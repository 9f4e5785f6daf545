package fixture

import (
	"errors"
	"fmt"

	"github.com/Amr-9/ckfixture/pkg/protocol"
)

// ErrUnsupportedStyle is returned when a helper is asked for an address
// style it cannot produce.
var ErrUnsupportedStyle = errors.New("not supported")

// AddrStyle is the tag naming an output script style.
type AddrStyle string

// Address styles.
const (
	P2PKH      AddrStyle = "p2pkh"
	P2WPKH     AddrStyle = "p2wpkh"
	P2SH       AddrStyle = "p2sh"
	P2WSH      AddrStyle = "p2wsh"
	P2WSHP2SH  AddrStyle = "p2wsh-p2sh"
	P2WPKHP2SH AddrStyle = "p2wpkh-p2sh"

	// P2PK is pay to pubkey. It is considered obsolete and no helper
	// builds it.
	P2PK AddrStyle = "p2pk"
)

// styleInfo is everything the package knows about one style.
type styleInfo struct {
	style    AddrStyle
	addrFmt  protocol.AddrFmt
	single   bool
	multisig bool

	// fake is the template for bogus destination outputs. Wrapped styles
	// all share the plain P2SH template.
	fake template
}

var (
	p2pkhTemplate  = template{prefix: []byte{0x76, 0xa9, 0x14}, payload: 20, suffix: []byte{0x88, 0xac}}
	p2shTemplate   = template{prefix: []byte{0xa9, 0x14}, payload: 20, suffix: []byte{0x87}}
	p2wpkhTemplate = template{prefix: []byte{0x00, 0x14}, payload: 20}
	p2wshTemplate  = template{prefix: []byte{0x00, 0x20}, payload: 32}
)

// styleTable is the single source for every style list and mapping below.
// Its order is the order of AddrStyles.
var styleTable = []styleInfo{
	{style: P2WPKH, addrFmt: protocol.AFP2WPKH, single: true, fake: p2wpkhTemplate},
	{style: P2WSH, addrFmt: protocol.AFP2WSH, multisig: true, fake: p2wshTemplate},
	{style: P2SH, addrFmt: protocol.AFP2SH, multisig: true, fake: p2shTemplate},
	{style: P2PKH, addrFmt: protocol.AFClassic, single: true, fake: p2pkhTemplate},
	{style: P2WSHP2SH, addrFmt: protocol.AFP2WSHP2SH, multisig: true, fake: p2shTemplate},
	{style: P2WPKHP2SH, addrFmt: protocol.AFP2WPKHP2SH, single: true, fake: p2shTemplate},
}

var (
	// AddrStyles lists all possible address styles, including multisig.
	AddrStyles []AddrStyle

	// AddrStylesSingle lists the single-signer styles.
	AddrStylesSingle []AddrStyle

	// AddrStylesMS lists the multi-signer styles.
	AddrStylesMS []AddrStyle

	// UnmapAddrFmt maps multi-signer styles to their address format.
	UnmapAddrFmt map[AddrStyle]protocol.AddrFmt

	styles map[AddrStyle]*styleInfo
)

func init() {
	styles = make(map[AddrStyle]*styleInfo, len(styleTable))
	UnmapAddrFmt = make(map[AddrStyle]protocol.AddrFmt)

	for i := range styleTable {
		info := &styleTable[i]
		styles[info.style] = info

		AddrStyles = append(AddrStyles, info.style)
		if info.single {
			AddrStylesSingle = append(AddrStylesSingle, info.style)
		}
		if info.multisig {
			AddrStylesMS = append(AddrStylesMS, info.style)
			UnmapAddrFmt[info.style] = info.addrFmt
		}
	}
}

func lookupStyle(style AddrStyle) (*styleInfo, error) {
	info, ok := styles[style]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedStyle, style)
	}
	return info, nil
}

// ParseAddrStyle validates a style tag.
func ParseAddrStyle(s string) (AddrStyle, error) {
	info, err := lookupStyle(AddrStyle(s))
	if err != nil {
		return "", err
	}
	return info.style, nil
}

// StyleForAddrFmt returns the style tag of an address format.
func StyleForAddrFmt(f protocol.AddrFmt) (AddrStyle, error) {
	for _, info := range styleTable {
		if info.addrFmt == f {
			return info.style, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedStyle, f)
}

// AddrFmt returns the protocol address format of the style, zero when the
// style is unknown.
func (s AddrStyle) AddrFmt() protocol.AddrFmt {
	if info, ok := styles[s]; ok {
		return info.addrFmt
	}
	return 0
}

// IsSingle reports whether the style is a single-signer style.
func (s AddrStyle) IsSingle() bool {
	info, ok := styles[s]
	return ok && info.single
}

// IsMultisig reports whether the style is a multi-signer style.
func (s AddrStyle) IsMultisig() bool {
	info, ok := styles[s]
	return ok && info.multisig
}

// IsSegwit reports whether spending the style needs a witness.
func (s AddrStyle) IsSegwit() bool {
	return s.AddrFmt().IsSegwit()
}

func (s AddrStyle) String() string {
	return string(s)
}
