package wallet

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
)

var (
	// ErrNullDerivationPath is returned when parsing an empty path.
	ErrNullDerivationPath = errors.New("derivation path must not be empty")
	// ErrMalformedDerivationPath is returned for paths with empty components.
	ErrMalformedDerivationPath = errors.New("malformed derivation path")
)

// DerivationPath is a list of BIP32 child indexes, applied in order starting
// from the master key.
type DerivationPath []uint32

// ParseDerivationPath converts a path like "m/84'/1'/0'/0/3" or the relative
// "12/34/567" into its binary form. Elements are decimal or 0x prefixed hex;
// hardened elements carry a ' or h suffix.
func ParseDerivationPath(strPath string) (DerivationPath, error) {
	strPath = strings.TrimSpace(strPath)
	if strPath == "" {
		return nil, ErrNullDerivationPath
	}

	elems := strings.Split(strPath, "/")
	if strings.TrimSpace(elems[0]) == "m" {
		elems = elems[1:]
	}

	path := make(DerivationPath, 0, len(elems))
	for _, elem := range elems {
		elem = strings.TrimSpace(elem)
		if elem == "" {
			return nil, ErrMalformedDerivationPath
		}

		var value uint32
		if strings.HasSuffix(elem, "'") || strings.HasSuffix(elem, "h") {
			value = hdkeychain.HardenedKeyStart
			elem = strings.TrimSpace(elem[:len(elem)-1])
		}

		bigval, ok := parseIndex(elem)
		if !ok {
			return nil, fmt.Errorf("invalid elem '%s' in path", elem)
		}

		max := math.MaxUint32 - value
		if bigval.Sign() < 0 || bigval.Cmp(big.NewInt(int64(max))) > 0 {
			if value == 0 {
				return nil, fmt.Errorf("elem %v must be in range [0, %d]", bigval, max)
			}
			return nil, fmt.Errorf("elem %v must be in hardened range [0, %d]", bigval, max)
		}
		value += uint32(bigval.Uint64())

		path = append(path, value)
	}

	return path, nil
}

// parseIndex reads a decimal or 0x prefixed hex index. A big int is used so
// overflow is caught by the range check.
func parseIndex(elem string) (*big.Int, bool) {
	base := 10
	if strings.HasPrefix(elem, "0x") || strings.HasPrefix(elem, "0X") {
		base = 16
		elem = elem[2:]
	}
	if elem == "" || strings.ContainsAny(elem, "+_") {
		return nil, false
	}
	return new(big.Int).SetString(elem, base)
}

// String converts a binary derivation path to its canonical representation.
func (path DerivationPath) String() string {
	var b strings.Builder
	b.WriteString("m")
	for _, component := range path {
		hardened := component >= hdkeychain.HardenedKeyStart
		if hardened {
			component -= hdkeychain.HardenedKeyStart
		}
		fmt.Fprintf(&b, "/%d", component)
		if hardened {
			b.WriteString("'")
		}
	}
	return b.String()
}
