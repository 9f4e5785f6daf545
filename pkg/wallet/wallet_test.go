package wallet

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/require"
)

// BIP32 test vector 1
const vector1Seed = "000102030405060708090a0b0c0d0e0f"

func vector1Wallet(t *testing.T) *HDWallet {
	seed, err := hex.DecodeString(vector1Seed)
	require.NoError(t, err)
	w, err := NewHDWalletFromSeed(seed, &chaincfg.MainNetParams)
	require.NoError(t, err)
	return w
}

func TestHDWalletFingerprint(t *testing.T) {
	w := vector1Wallet(t)

	require.Equal(t, [4]byte{0x34, 0x42, 0x19, 0x3e}, w.Fingerprint())
	require.Equal(t, uint32(0x3e194234), w.XFP())
	require.True(t, w.IsForNet(&chaincfg.MainNetParams))
	require.True(t, strings.HasPrefix(w.String(), "xprv"))

	xpub, err := w.XPub()
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(xpub, "xpub"))
}

func TestHDWalletSubkeyForPath(t *testing.T) {
	w := vector1Wallet(t)

	sub, err := w.SubkeyForPath(DerivationPath{hdkeychain.HardenedKeyStart})
	require.NoError(t, err)

	child := sub.(*ChildKey)
	require.Equal(t, uint32(0x3442193e), child.ParentFingerprint())

	sec := sub.SEC()
	require.Len(t, sec, 33)
	require.Contains(t, []byte{0x02, 0x03}, sec[0])
	require.Equal(t, btcutil.Hash160(sec), sub.Hash160())
	require.Equal(t, child.PubKey().SerializeCompressed(), sec)

	// derivation is deterministic
	again, err := w.SubkeyForPath(DerivationPath{hdkeychain.HardenedKeyStart})
	require.NoError(t, err)
	require.Equal(t, sec, again.SEC())

	other, err := w.SubkeyForPath(DerivationPath{12, 34, 56})
	require.NoError(t, err)
	require.NotEqual(t, sec, other.SEC())
}

func TestHDWalletEmptyPathIsMaster(t *testing.T) {
	w := vector1Wallet(t)

	sub, err := w.SubkeyForPath(nil)
	require.NoError(t, err)

	fp := w.Fingerprint()
	require.Equal(t, fp[:], sub.Hash160()[:4])
}

func TestNewHDWallet(t *testing.T) {
	src := vector1Wallet(t)

	w, err := NewHDWallet(src.String())
	require.NoError(t, err)
	require.Equal(t, src.Fingerprint(), w.Fingerprint())

	xpub, err := src.XPub()
	require.NoError(t, err)
	_, err = NewHDWallet(xpub)
	require.ErrorIs(t, err, hdkeychain.ErrNotPrivExtKey)

	_, err = NewHDWallet("not a key")
	require.Error(t, err)
}

func TestNewHDWalletFromMnemonic(t *testing.T) {
	_, err := NewHDWalletFromMnemonic("wife shiver author", "", &chaincfg.TestNet3Params)
	require.ErrorIs(t, err, ErrInvalidMnemonic)

	w, words, err := NewRandomHDWallet(&chaincfg.TestNet3Params)
	require.NoError(t, err)
	require.Len(t, strings.Fields(words), 24)
	require.True(t, strings.HasPrefix(w.String(), "tprv"))

	// extra whitespace in the phrase is ignored
	again, err := NewHDWalletFromMnemonic("  "+strings.ReplaceAll(words, " ", "\n "), "", &chaincfg.TestNet3Params)
	require.NoError(t, err)
	require.Equal(t, w.Fingerprint(), again.Fingerprint())

	withPass, err := NewHDWalletFromMnemonic(words, "secret", &chaincfg.TestNet3Params)
	require.NoError(t, err)
	require.NotEqual(t, w.Fingerprint(), withPass.Fingerprint())
}
