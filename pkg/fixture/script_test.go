package fixture

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/txscript"
	"github.com/stretchr/testify/require"

	"github.com/Amr-9/ckfixture/pkg/wallet"
)

func TestFakeDestAddr(t *testing.T) {
	tests := []struct {
		style  AddrStyle
		length int
		prefix []byte
		suffix []byte
		class  txscript.ScriptClass
	}{
		{P2WPKH, 22, []byte{0x00, 0x14}, nil, txscript.WitnessV0PubKeyHashTy},
		{P2WSH, 34, []byte{0x00, 0x20}, nil, txscript.WitnessV0ScriptHashTy},
		{P2SH, 23, []byte{0xa9, 0x14}, []byte{0x87}, txscript.ScriptHashTy},
		{P2WSHP2SH, 23, []byte{0xa9, 0x14}, []byte{0x87}, txscript.ScriptHashTy},
		{P2WPKHP2SH, 23, []byte{0xa9, 0x14}, []byte{0x87}, txscript.ScriptHashTy},
		{P2PKH, 25, []byte{0x76, 0xa9, 0x14}, []byte{0x88, 0xac}, txscript.PubKeyHashTy},
	}
	for _, test := range tests {
		t.Run(string(test.style), func(t *testing.T) {
			script, err := FakeDestAddr(test.style)
			require.NoError(t, err)
			require.Len(t, script, test.length)
			require.True(t, bytes.HasPrefix(script, test.prefix))
			require.True(t, bytes.HasSuffix(script, test.suffix))
			require.Equal(t, test.class, txscript.GetScriptClass(script))
			require.True(t, MatchesStyle(script, test.style))
		})
	}
}

func TestFakeDestAddrUnsupported(t *testing.T) {
	for _, style := range []AddrStyle{P2PK, "bogus", ""} {
		script, err := FakeDestAddr(style)
		require.Nil(t, script)
		require.True(t, errors.Is(err, ErrUnsupportedStyle))
		require.Contains(t, err.Error(), "not supported")
	}
}

func TestFakeDestAddrSeeded(t *testing.T) {
	a, err := NewRand(42).FakeDestAddr(P2WSH)
	require.NoError(t, err)
	b, err := NewRand(42).FakeDestAddr(P2WSH)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestMatchesStyle(t *testing.T) {
	script, err := FakeDestAddr(P2PKH)
	require.NoError(t, err)

	require.True(t, MatchesStyle(script, P2PKH))
	require.False(t, MatchesStyle(script, P2SH))
	require.False(t, MatchesStyle(script[:24], P2PKH))
	require.False(t, MatchesStyle(script, P2PK))
}

func simulatorWallet(t *testing.T) *wallet.HDWallet {
	w, err := SimulatorWallet()
	require.NoError(t, err)
	return w
}

func TestMakeChangeAddr(t *testing.T) {
	w := simulatorWallet(t)

	for _, style := range []AddrStyle{P2PKH, P2WPKH, P2WPKHP2SH} {
		t.Run(string(style), func(t *testing.T) {
			out, err := MakeChangeAddr(w, style)
			require.NoError(t, err)

			require.Len(t, out.Path, 3)
			require.Equal(t, uint32(12), out.Path[0])
			require.Equal(t, uint32(34), out.Path[1])
			require.LessOrEqual(t, out.Path[2], uint32(1000))

			sub, err := w.SubkeyForPath(out.Path)
			require.NoError(t, err)
			require.Equal(t, sub.SEC(), out.PubKey)
			require.Len(t, out.PubKey, 33)

			require.Len(t, out.XPath, 16)
			require.Equal(t, SimulatorFixedXFP, binary.LittleEndian.Uint32(out.XPath[0:]))
			require.Equal(t, uint32(12), binary.LittleEndian.Uint32(out.XPath[4:]))
			require.Equal(t, uint32(34), binary.LittleEndian.Uint32(out.XPath[8:]))
			require.Equal(t, out.Path[2], binary.LittleEndian.Uint32(out.XPath[12:]))

			hash := btcutil.Hash160(out.PubKey)
			switch style {
			case P2PKH:
				require.Equal(t, append(append([]byte{0x76, 0xa9, 0x14}, hash...), 0x88, 0xac), out.RedeemScript)
				require.Nil(t, out.ActualScript)
				require.False(t, out.IsSegwit)
				require.Equal(t, out.RedeemScript, out.Script())
			case P2WPKH:
				require.Equal(t, append([]byte{0x00, 0x14}, hash...), out.RedeemScript)
				require.Nil(t, out.ActualScript)
				require.True(t, out.IsSegwit)
			case P2WPKHP2SH:
				require.Equal(t, append([]byte{0x00, 0x14}, hash...), out.RedeemScript)
				want := append(append([]byte{0xa9, 0x14}, btcutil.Hash160(out.RedeemScript)...), 0x87)
				require.Equal(t, want, out.ActualScript)
				require.Equal(t, out.ActualScript, out.Script())
				require.False(t, out.IsSegwit)
			}
		})
	}
}

func TestMakeChangeAddrUnsupported(t *testing.T) {
	w := simulatorWallet(t)

	for _, style := range []AddrStyle{P2SH, P2WSH, P2WSHP2SH, P2PK, "nope"} {
		out, err := MakeChangeAddr(w, style)
		require.Nil(t, out)
		require.ErrorIs(t, err, ErrUnsupportedStyle, style)
	}
}

type badKey struct{}

func (badKey) Hash160() []byte { return make([]byte, 32) }
func (badKey) SEC() []byte     { return make([]byte, 33) }

type badWallet struct{}

func (badWallet) Fingerprint() [4]byte { return [4]byte{1, 2, 3, 4} }
func (badWallet) SubkeyForPath(wallet.DerivationPath) (wallet.Subkey, error) {
	return badKey{}, nil
}

func TestMakeChangeAddrBadHash(t *testing.T) {
	_, err := MakeChangeAddrPath(badWallet{}, P2WPKH, wallet.DerivationPath{12, 34, 0})
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrUnsupportedStyle)
}

func TestMakeChangeAddrPath(t *testing.T) {
	w := simulatorWallet(t)
	path := wallet.DerivationPath{12, 34, 567}

	a, err := MakeChangeAddrPath(w, P2WPKH, path)
	require.NoError(t, err)
	b, err := MakeChangeAddrPath(w, P2WPKH, path)
	require.NoError(t, err)
	require.Equal(t, a, b)

	seeded, err := NewRand(7).MakeChangeAddr(w, P2PKH)
	require.NoError(t, err)
	again, err := NewRand(7).MakeChangeAddr(w, P2PKH)
	require.NoError(t, err)
	require.Equal(t, seeded.Path, again.Path)
}

func TestPackXPath(t *testing.T) {
	got := PackXPath([4]byte{0x0f, 0x05, 0x69, 0x43}, wallet.DerivationPath{12, 34, 0x01020304})
	require.Equal(t, []byte{
		0x0f, 0x05, 0x69, 0x43,
		0x0c, 0x00, 0x00, 0x00,
		0x22, 0x00, 0x00, 0x00,
		0x04, 0x03, 0x02, 0x01,
	}, got)

	require.Equal(t, []byte{1, 2, 3, 4}, PackXPath([4]byte{1, 2, 3, 4}, nil))
}
