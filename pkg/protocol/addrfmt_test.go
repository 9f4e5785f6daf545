package protocol

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddrFmtValues(t *testing.T) {
	tests := []struct {
		fmt  AddrFmt
		want uint32
		name string
	}{
		{AFClassic, 0x01, "p2pkh"},
		{AFP2SH, 0x08, "p2sh"},
		{AFP2WPKH, 0x07, "p2wpkh"},
		{AFP2WSH, 0x0e, "p2wsh"},
		{AFP2WPKHP2SH, 0x13, "p2wpkh-p2sh"},
		{AFP2WSHP2SH, 0x1a, "p2wsh-p2sh"},
	}
	for _, test := range tests {
		require.Equal(t, test.want, uint32(test.fmt), test.name)
		require.Equal(t, test.name, test.fmt.String())
	}
}

func TestAddrFmtFlags(t *testing.T) {
	require.True(t, AFP2WSH.IsScript())
	require.True(t, AFP2WSH.IsSegwit())
	require.False(t, AFP2WSH.IsWrapped())

	require.True(t, AFP2WPKHP2SH.IsWrapped())
	require.True(t, AFP2WPKHP2SH.IsSegwit())
	require.False(t, AFP2WPKHP2SH.IsScript())

	require.False(t, AFClassic.IsSegwit())
	require.False(t, AFP2SH.IsSegwit())
	require.True(t, AFP2SH.IsScript())

	require.False(t, AFClassic.Has(AFCPubkey|AFCBech32))
	require.True(t, AFP2WPKH.Has(AFCPubkey|AFCBech32))
}

func TestAddrFmtUnknownString(t *testing.T) {
	require.Equal(t, "AddrFmt(0x20)", AddrFmt(0x20).String())
}
