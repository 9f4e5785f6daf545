package fixture

import (
	"encoding/binary"
	"fmt"

	"github.com/Amr-9/ckfixture/pkg/address"
	"github.com/Amr-9/ckfixture/pkg/wallet"
)

// FakeDestAddr makes a plausible output script for style, but its hash is
// random garbage. It cannot be used for change outputs.
func FakeDestAddr(style AddrStyle) ([]byte, error) {
	return defaultRand.FakeDestAddr(style)
}

// FakeDestAddr is the package level FakeDestAddr drawing from r.
func (r *Rand) FakeDestAddr(style AddrStyle) ([]byte, error) {
	info, err := lookupStyle(style)
	if err != nil {
		return nil, err
	}
	return info.fake.build(r.Bytes(info.fake.payload)), nil
}

// ChangeOutput is a legit-looking change output owned by a wallet.
type ChangeOutput struct {
	// RedeemScript is the output script, or the witness program for
	// P2SH wrapped styles.
	RedeemScript []byte

	// ActualScript is the P2SH script wrapping RedeemScript, nil for
	// unwrapped styles.
	ActualScript []byte

	// IsSegwit is set for native witness outputs only.
	IsSegwit bool

	// PubKey is the compressed public key of the change key.
	PubKey []byte

	// XPath is the master fingerprint followed by the derivation indexes,
	// each as a little-endian uint32.
	XPath []byte

	Path wallet.DerivationPath
}

// Script returns the script that goes in the transaction output.
func (c *ChangeOutput) Script() []byte {
	if c.ActualScript != nil {
		return c.ActualScript
	}
	return c.RedeemScript
}

// MakeChangeAddr provides the script, pubkey and key path of a change output
// at m/12/34/n for a random n in [0, 1000].
func MakeChangeAddr(w wallet.Wallet, style AddrStyle) (*ChangeOutput, error) {
	return defaultRand.MakeChangeAddr(w, style)
}

// MakeChangeAddr is the package level MakeChangeAddr drawing from r.
func (r *Rand) MakeChangeAddr(w wallet.Wallet, style AddrStyle) (*ChangeOutput, error) {
	path := wallet.DerivationPath{12, 34, uint32(r.Intn(1001))}
	return MakeChangeAddrPath(w, style, path)
}

// MakeChangeAddrPath builds a change output for the key at path.
func MakeChangeAddrPath(w wallet.Wallet, style AddrStyle, path wallet.DerivationPath) (*ChangeOutput, error) {
	switch style {
	case P2PKH, P2WPKH, P2WPKHP2SH:
	default:
		return nil, fmt.Errorf("change output of type %s: %w", style, ErrUnsupportedStyle)
	}

	dest, err := w.SubkeyForPath(path)
	if err != nil {
		return nil, err
	}

	target := dest.Hash160()
	if len(target) != 20 {
		return nil, fmt.Errorf("pubkey hash is %d bytes, want 20", len(target))
	}

	out := &ChangeOutput{
		PubKey: dest.SEC(),
		XPath:  PackXPath(w.Fingerprint(), path),
		Path:   path,
	}
	switch style {
	case P2PKH:
		out.RedeemScript = p2pkhTemplate.build(target)
	case P2WPKH:
		out.RedeemScript = p2wpkhTemplate.build(target)
		out.IsSegwit = true
	case P2WPKHP2SH:
		out.RedeemScript = p2wpkhTemplate.build(target)
		out.ActualScript = p2shTemplate.build(address.Hash160(out.RedeemScript))
	}

	log.Debugf("Change %s at %s: %x", style, path, out.Script())
	return out, nil
}

// PackXPath serializes a key origin: the fingerprint bytes followed by each
// path index as a little-endian uint32.
func PackXPath(fingerprint [4]byte, path wallet.DerivationPath) []byte {
	b := make([]byte, 4+4*len(path))
	copy(b, fingerprint[:])
	for i, idx := range path {
		binary.LittleEndian.PutUint32(b[4+4*i:], idx)
	}
	return b
}
