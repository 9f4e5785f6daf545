// Package wallet provides the wallet-like objects the fixture helpers derive
// change keys from. HDWallet wraps a BIP32 extended private key; anything
// exposing a master fingerprint and path derivation can stand in for it.
package wallet

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/tyler-smith/go-bip39"

	"github.com/Amr-9/ckfixture/pkg/address"
)

// ErrInvalidMnemonic is returned when a seed phrase fails BIP39 validation.
var ErrInvalidMnemonic = errors.New("invalid mnemonic")

// Wallet is the capability set the change-output builder needs.
type Wallet interface {
	// Fingerprint returns the 4 byte master key identifier.
	Fingerprint() [4]byte

	// SubkeyForPath derives the child key at path from the master key.
	SubkeyForPath(path DerivationPath) (Subkey, error)
}

// Subkey is a derived child key.
type Subkey interface {
	// Hash160 returns RIPEMD160(SHA256(SEC())).
	Hash160() []byte

	// SEC returns the 33 byte compressed public key.
	SEC() []byte
}

// HDWallet is a Wallet backed by a BIP32 master key.
type HDWallet struct {
	master *hdkeychain.ExtendedKey
	xfp    [4]byte
}

// NewHDWallet loads a wallet from a serialized extended private key.
func NewHDWallet(xprv string) (*HDWallet, error) {
	master, err := hdkeychain.NewKeyFromString(xprv)
	if err != nil {
		return nil, err
	}
	if !master.IsPrivate() {
		return nil, hdkeychain.ErrNotPrivExtKey
	}
	return newHDWallet(master)
}

// NewHDWalletFromSeed creates the master key for seed on net.
func NewHDWalletFromSeed(seed []byte, net *chaincfg.Params) (*HDWallet, error) {
	master, err := hdkeychain.NewMaster(seed, net)
	if err != nil {
		return nil, err
	}
	return newHDWallet(master)
}

// NewHDWalletFromMnemonic derives the BIP39 seed of words (with an optional
// passphrase) and creates its master key on net.
func NewHDWalletFromMnemonic(words, passphrase string, net *chaincfg.Params) (*HDWallet, error) {
	words = strings.Join(strings.Fields(words), " ")
	if !bip39.IsMnemonicValid(words) {
		return nil, ErrInvalidMnemonic
	}
	return NewHDWalletFromSeed(bip39.NewSeed(words, passphrase), net)
}

func newHDWallet(master *hdkeychain.ExtendedKey) (*HDWallet, error) {
	pub, err := master.ECPubKey()
	if err != nil {
		return nil, err
	}

	w := &HDWallet{master: master}
	copy(w.xfp[:], address.Hash160(pub.SerializeCompressed())[:4])
	return w, nil
}

// Fingerprint returns the first 4 bytes of the master pubkey hash.
func (w *HDWallet) Fingerprint() [4]byte {
	return w.xfp
}

// XFP returns the fingerprint packed as a little-endian integer, the form the
// firmware reports it in.
func (w *HDWallet) XFP() uint32 {
	return binary.LittleEndian.Uint32(w.xfp[:])
}

// String returns the serialized master private key.
func (w *HDWallet) String() string {
	return w.master.String()
}

// XPub returns the serialized master public key.
func (w *HDWallet) XPub() (string, error) {
	pub, err := w.master.Neuter()
	if err != nil {
		return "", err
	}
	return pub.String(), nil
}

// IsForNet reports whether the master key was serialized for net.
func (w *HDWallet) IsForNet(net *chaincfg.Params) bool {
	return w.master.IsForNet(net)
}

// SubkeyForPath derives the child at path.
func (w *HDWallet) SubkeyForPath(path DerivationPath) (Subkey, error) {
	key := w.master
	for _, step := range path {
		var err error
		key, err = key.Derive(step)
		if err != nil {
			return nil, fmt.Errorf("derive %s: %w", path, err)
		}
	}

	pub, err := key.ECPubKey()
	if err != nil {
		return nil, err
	}
	log.Debugf("Derived %s from %08x", path, w.XFP())

	return &ChildKey{Path: path, key: key, pub: pub}, nil
}

// ChildKey is a key derived by an HDWallet.
type ChildKey struct {
	Path DerivationPath

	key *hdkeychain.ExtendedKey
	pub *btcec.PublicKey
}

// Hash160 returns the hash of the compressed public key.
func (k *ChildKey) Hash160() []byte {
	return address.Hash160(k.SEC())
}

// SEC returns the compressed public key.
func (k *ChildKey) SEC() []byte {
	return k.pub.SerializeCompressed()
}

// PubKey returns the parsed public key.
func (k *ChildKey) PubKey() *btcec.PublicKey {
	return k.pub
}

// ParentFingerprint returns the fingerprint of the key this one was derived
// from, or zero for the master key.
func (k *ChildKey) ParentFingerprint() uint32 {
	return k.key.ParentFingerprint()
}
