package wallet

import (
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/tyler-smith/go-bip39"
)

// GenerateMnemonic returns a fresh 24 word BIP39 seed phrase.
func GenerateMnemonic() (string, error) {
	// 256 bits of entropy gives the 24 word phrase the device uses
	entropy, err := bip39.NewEntropy(256)
	if err != nil {
		return "", err
	}
	return bip39.NewMnemonic(entropy)
}

// NewRandomHDWallet creates a throwaway wallet from a fresh seed phrase and
// returns the phrase alongside it.
func NewRandomHDWallet(net *chaincfg.Params) (*HDWallet, string, error) {
	words, err := GenerateMnemonic()
	if err != nil {
		return nil, "", err
	}
	w, err := NewHDWalletFromMnemonic(words, "", net)
	if err != nil {
		return nil, "", err
	}
	return w, words, nil
}
