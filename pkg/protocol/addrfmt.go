// Package protocol defines the address-format codes shared with the wallet's
// USB protocol. A code is a set of AFC_* flag bits; the named AF_* values are
// the combinations the firmware actually accepts.
package protocol

import "fmt"

// AddrFmt is an address-format code as carried on the wire.
type AddrFmt uint32

// Address-format flag bits.
const (
	AFCPubkey  AddrFmt = 0x01 // pay to hash of a single pubkey
	AFCSegwit  AddrFmt = 0x02 // requires a witness to spend
	AFCBech32  AddrFmt = 0x04 // rendered as bech32
	AFCScript  AddrFmt = 0x08 // pay to hash of a script
	AFCWrapped AddrFmt = 0x10 // segwit program wrapped in P2SH
)

// Address formats understood by the firmware.
const (
	AFClassic    = AFCPubkey                          // 1addr
	AFP2SH       = AFCScript                          // classic multisig
	AFP2WPKH     = AFCPubkey | AFCSegwit | AFCBech32  // bc1q (20 byte)
	AFP2WSH      = AFCScript | AFCSegwit | AFCBech32  // bc1q (32 byte)
	AFP2WPKHP2SH = AFCWrapped | AFCPubkey | AFCSegwit // 3addr wrapping p2wpkh
	AFP2WSHP2SH  = AFCWrapped | AFCScript | AFCSegwit // 3addr wrapping p2wsh
)

// Has reports whether every bit of flag is set in f.
func (f AddrFmt) Has(flag AddrFmt) bool {
	return f&flag == flag
}

// IsScript reports whether the format pays to a script hash.
func (f AddrFmt) IsScript() bool {
	return f.Has(AFCScript)
}

// IsSegwit reports whether spending needs a witness.
func (f AddrFmt) IsSegwit() bool {
	return f.Has(AFCSegwit)
}

// IsWrapped reports whether a segwit program is nested inside P2SH.
func (f AddrFmt) IsWrapped() bool {
	return f.Has(AFCWrapped)
}

// String returns the address style tag of a known format.
func (f AddrFmt) String() string {
	switch f {
	case AFClassic:
		return "p2pkh"
	case AFP2SH:
		return "p2sh"
	case AFP2WPKH:
		return "p2wpkh"
	case AFP2WSH:
		return "p2wsh"
	case AFP2WPKHP2SH:
		return "p2wpkh-p2sh"
	case AFP2WSHP2SH:
		return "p2wsh-p2sh"
	default:
		return fmt.Sprintf("AddrFmt(0x%02x)", uint32(f))
	}
}
