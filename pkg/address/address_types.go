package address

import (
	"github.com/Amr-9/ckfixture/pkg/protocol"
)

// Description returns a human-readable description of an address format.
func Description(f protocol.AddrFmt) string {
	switch f {
	case protocol.AFClassic:
		return "Legacy (P2PKH)"
	case protocol.AFP2SH:
		return "Script hash (P2SH)"
	case protocol.AFP2WPKH:
		return "Native SegWit (P2WPKH)"
	case protocol.AFP2WSH:
		return "Native SegWit script (P2WSH)"
	case protocol.AFP2WPKHP2SH:
		return "Nested SegWit (P2SH-P2WPKH)"
	case protocol.AFP2WSHP2SH:
		return "Nested SegWit script (P2SH-P2WSH)"
	default:
		return "Unknown"
	}
}

// IsBech32Type returns true if the address format renders as bech32.
func IsBech32Type(f protocol.AddrFmt) bool {
	return f.Has(protocol.AFCBech32)
}

// IsBase58Type returns true if the address format renders as Base58Check.
func IsBase58Type(f protocol.AddrFmt) bool {
	switch f {
	case protocol.AFClassic, protocol.AFP2SH,
		protocol.AFP2WPKHP2SH, protocol.AFP2WSHP2SH:
		return true
	default:
		return false
	}
}
