// Package address renders output scripts as human-readable Bitcoin addresses.
// Supports P2PKH, P2SH and version 0 witness programs (P2WPKH, P2WSH).
package address

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ripemd160"
)

// ErrUnknownScript is returned for scripts that match none of the
// supported output templates.
var ErrUnknownScript = errors.New("unrecognised output script")

// FromScript renders an output script as an address for the given network.
func FromScript(script []byte, net *chaincfg.Params) (string, error) {
	switch {
	case isPubKeyHash(script):
		return Base58CheckEncode(net.PubKeyHashAddrID, script[3:23]), nil
	case isScriptHash(script):
		return Base58CheckEncode(net.ScriptHashAddrID, script[2:22]), nil
	case isWitnessV0(script):
		return encodeSegWit(net.Bech32HRPSegwit, 0, script[2:])
	default:
		return "", fmt.Errorf("%w: %x", ErrUnknownScript, script)
	}
}

// PayloadHash returns the hash carried inside a supported output script:
// the 20 byte pubkey or script hash, or the witness program.
func PayloadHash(script []byte) ([]byte, error) {
	switch {
	case isPubKeyHash(script):
		return script[3:23], nil
	case isScriptHash(script):
		return script[2:22], nil
	case isWitnessV0(script):
		return script[2:], nil
	default:
		return nil, fmt.Errorf("%w: %x", ErrUnknownScript, script)
	}
}

// OP_DUP OP_HASH160 <20> OP_EQUALVERIFY OP_CHECKSIG
func isPubKeyHash(script []byte) bool {
	return len(script) == 25 &&
		script[0] == 0x76 && script[1] == 0xa9 && script[2] == 0x14 &&
		script[23] == 0x88 && script[24] == 0xac
}

// OP_HASH160 <20> OP_EQUAL
func isScriptHash(script []byte) bool {
	return len(script) == 23 &&
		script[0] == 0xa9 && script[1] == 0x14 && script[22] == 0x87
}

// OP_0 <20|32>
func isWitnessV0(script []byte) bool {
	if len(script) != 22 && len(script) != 34 {
		return false
	}
	return script[0] == 0x00 && int(script[1]) == len(script)-2
}

// encodeSegWit creates a bech32 address from a witness version and program.
func encodeSegWit(hrp string, version byte, program []byte) (string, error) {
	// Convert to 5-bit groups for Bech32
	data, err := bech32.ConvertBits(program, 8, 5, true)
	if err != nil {
		return "", err
	}

	// Prepend the witness version
	data = append([]byte{version}, data...)

	return bech32.Encode(hrp, data)
}

// Hash160 computes RIPEMD160(SHA256(data))
func Hash160(data []byte) []byte {
	sha := sha256.Sum256(data)
	ripemd := ripemd160.New()
	ripemd.Write(sha[:])
	return ripemd.Sum(nil)
}

// Base58CheckEncode encodes version||payload with a 4-byte checksum in Base58.
func Base58CheckEncode(version byte, payload []byte) string {
	data := make([]byte, 0, 1+len(payload)+4)
	data = append(data, version)
	data = append(data, payload...)

	// Double SHA256 for checksum
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])

	// Append first 4 bytes of second hash as checksum
	data = append(data, second[:4]...)

	return base58.Encode(data)
}
