package fixture

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math/bits"
	"strings"
)

const hexCharset = "0123456789abcdefABCDEF"

// Swab32 reverses the byte order of a 32 bit value.
func Swab32(n uint32) uint32 {
	return bits.ReverseBytes32(n)
}

// XFP2Str is the standard way to show an xpub fingerprint. The fingerprint
// is really a 4 byte string, so it is shown in the little-endian byte order
// the integer was packed from, never as '0x%08x'.
func XFP2Str(xfp uint32) string {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], xfp)
	return strings.ToUpper(hex.EncodeToString(b[:]))
}

// Str2XFP parses a fingerprint shown by XFP2Str. Case is ignored.
func Str2XFP(s string) (uint32, error) {
	if invalid := InvalidHexChars(s); len(invalid) > 0 {
		return 0, fmt.Errorf("invalid characters %q in fingerprint", string(invalid))
	}
	if len(s) != 8 {
		return 0, fmt.Errorf("fingerprint must be 8 hex characters, got %d", len(s))
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// InvalidHexChars returns any characters of s that are not hex digits.
func InvalidHexChars(s string) []rune {
	var invalid []rune
	for _, c := range s {
		if !strings.ContainsRune(hexCharset, c) {
			invalid = append(invalid, c)
		}
	}
	return invalid
}
