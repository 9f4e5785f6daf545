package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Amr-9/ckfixture/internal/config"
	"github.com/Amr-9/ckfixture/internal/ui"
	"github.com/Amr-9/ckfixture/pkg/fixture"
)

const version = "0.1"

// app carries the resolved settings into the subcommands.
type app struct {
	cfg   *config.Config
	con   *ui.Console
	plain bool
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		ui.NewConsole(os.Stderr, false).PrintError(err)
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "ckfixture",
		Short:         "Fixtures for wallet simulator tests",
		Long:          `Prints the simulator wallet constants and builds throwaway output scripts, change outputs and fingerprints for wallet simulator tests.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			setLogLevels(cfg.LogLevel)
			if cfg.Seed != 0 {
				fixture.SetSeed(cfg.Seed)
			}

			a.cfg = cfg
			a.con = ui.NewConsole(cmd.OutOrStdout(), a.plain)
			ckfxLog.Debugf("Network %s, seed %d", cfg.Net.Name, cfg.Seed)
			return nil
		},
	}
	rootCmd.SetOut(out)

	flags := rootCmd.PersistentFlags()
	flags.String("network", "testnet3", "Network to render keys and addresses for (mainnet, testnet3, regtest, signet)")
	flags.String("loglevel", "info", "Logging level (trace, debug, info, warn, error, critical, off)")
	flags.Int64("seed", 0, "Seed for the fixture random source, 0 for time seeded")
	flags.BoolVar(&a.plain, "plain", false, "Disable coloured output")

	for key, name := range map[string]string{
		config.NetworkKey:  "network",
		config.LogLevelKey: "loglevel",
		config.SeedKey:     "seed",
	} {
		if err := config.BindFlag(key, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(
		a.simCmd(),
		a.stylesCmd(),
		a.fakeAddrCmd(),
		a.changeAddrCmd(),
		a.xfpCmd(),
		a.swabCmd(),
		a.satsCmd(),
		a.hexCmd(),
		a.dumpTxoCmd(),
	)
	return rootCmd
}
