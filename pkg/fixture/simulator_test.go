package fixture

import (
	"strings"
	"testing"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/require"
)

func TestSimulatorWallet(t *testing.T) {
	w, err := SimulatorWallet()
	require.NoError(t, err)

	require.Equal(t, SimulatorFixedXFP, w.XFP())
	require.Equal(t, "0F056943", XFP2Str(w.XFP()))
	require.True(t, w.IsForNet(&chaincfg.TestNet3Params))
	require.Equal(t, SimulatorFixedXprv, w.String())
}

func TestSimulatorWordsMatchXprv(t *testing.T) {
	require.Len(t, strings.Fields(SimulatorFixedWords), 24)

	w, err := SimulatorWalletFromWords(&chaincfg.TestNet3Params)
	require.NoError(t, err)
	require.Equal(t, SimulatorFixedXprv, w.String())
	require.Equal(t, SimulatorFixedXFP, w.XFP())
}

func TestSimPath(t *testing.T) {
	require.True(t, strings.HasSuffix(SimPath, ".sock"))
}
