package fixture

import (
	"github.com/btcsuite/btcd/chaincfg"

	"github.com/Amr-9/ckfixture/pkg/wallet"
)

// SimulatorWallet loads the wallet the simulator powers up with.
func SimulatorWallet() (*wallet.HDWallet, error) {
	return wallet.NewHDWallet(SimulatorFixedXprv)
}

// SimulatorWalletFromWords rebuilds the simulator wallet from its seed
// phrase for net.
func SimulatorWalletFromWords(net *chaincfg.Params) (*wallet.HDWallet, error) {
	return wallet.NewHDWalletFromMnemonic(SimulatorFixedWords, "", net)
}
