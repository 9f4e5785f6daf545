package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Amr-9/ckfixture/pkg/address"
	"github.com/Amr-9/ckfixture/pkg/fixture"
	"github.com/Amr-9/ckfixture/pkg/wallet"
)

func (a *app) simCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sim",
		Short: "Show the wallet the simulator powers up with",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := fixture.SimulatorWallet()
			if err != nil {
				return err
			}
			xpub, err := w.XPub()
			if err != nil {
				return err
			}

			a.con.PrintBanner(version)
			a.con.PrintSection("Simulator")
			a.con.PrintField("socket", a.cfg.SimPath)
			a.con.PrintField("xfp", fmt.Sprintf("%s (0x%08x)", fixture.XFP2Str(w.XFP()), w.XFP()))
			a.con.PrintField("xprv", w.String())
			a.con.PrintField("xpub", xpub)
			a.con.PrintField("words", fixture.SimulatorFixedWords)
			return nil
		},
	}
}

func (a *app) stylesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List the address styles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.con.PrintSection("Address styles")
			for _, style := range fixture.AddrStyles {
				kind := "single"
				if style.IsMultisig() {
					kind = "multisig"
				}
				a.con.PrintField(string(style), fmt.Sprintf("0x%02x  %-8s %s",
					uint32(style.AddrFmt()), kind, address.Description(style.AddrFmt())))
			}
			return nil
		},
	}
}

func (a *app) fakeAddrCmd() *cobra.Command {
	var (
		styleFlag string
		style     fixture.AddrStyle
		count     int
	)
	cmd := &cobra.Command{
		Use:   "fake-addr",
		Short: "Make plausible but random destination scripts",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) (err error) {
			style, err = fixture.ParseAddrStyle(styleFlag)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a.con.PrintSection("Fake destinations (" + style.String() + ")")
			for i := 0; i < count; i++ {
				script, err := fixture.FakeDestAddr(style)
				if err != nil {
					return err
				}
				a.printScript(strconv.Itoa(i), script)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&styleFlag, "style", "s", string(fixture.P2PKH), "Address style")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of scripts")
	return cmd
}

func (a *app) changeAddrCmd() *cobra.Command {
	var (
		styleFlag string
		pathFlag  string
		xprv      string

		style fixture.AddrStyle
		path  wallet.DerivationPath
	)
	cmd := &cobra.Command{
		Use:   "change-addr",
		Short: "Make a change output owned by a wallet",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) (err error) {
			if style, err = fixture.ParseAddrStyle(styleFlag); err != nil {
				return err
			}
			if pathFlag != "" {
				path, err = wallet.ParseDerivationPath(pathFlag)
			}
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := wallet.NewHDWallet(xprv)
			if err != nil {
				return err
			}

			var out *fixture.ChangeOutput
			if path != nil {
				out, err = fixture.MakeChangeAddrPath(w, style, path)
			} else {
				out, err = fixture.MakeChangeAddr(w, style)
			}
			if err != nil {
				return err
			}

			a.con.PrintSection("Change output (" + style.String() + ")")
			a.con.PrintField("path", out.Path.String())
			a.printScript("redeem", out.RedeemScript)
			if out.ActualScript != nil {
				a.printScript("actual", out.ActualScript)
			}
			a.con.PrintField("segwit", strconv.FormatBool(out.IsSegwit))
			a.con.PrintField("pubkey", fixture.B2A(out.PubKey))
			a.con.PrintField("xpath", fixture.B2A(out.XPath))
			return nil
		},
	}
	cmd.Flags().StringVarP(&styleFlag, "style", "s", string(fixture.P2WPKH), "Address style (p2pkh, p2wpkh or p2wpkh-p2sh)")
	cmd.Flags().StringVar(&xprv, "xprv", fixture.SimulatorFixedXprv, "Extended private key of the wallet")
	cmd.Flags().StringVar(&pathFlag, "path", "", "Derivation path, random m/12/34/n when empty")
	return cmd
}

func (a *app) xfpCmd() *cobra.Command {
	var parse bool
	cmd := &cobra.Command{
		Use:   "xfp <fingerprint>",
		Short: "Show a packed fingerprint integer as its display string",
		Long:  `Show a packed fingerprint integer (decimal or 0x hex) as its display string. With --parse, convert a display string back to the integer.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if parse {
				xfp, err := fixture.Str2XFP(args[0])
				if err != nil {
					return err
				}
				a.con.PrintField("xfp", fmt.Sprintf("0x%08x (%d)", xfp, xfp))
				return nil
			}

			xfp, err := parseUint32(args[0])
			if err != nil {
				return err
			}
			a.con.PrintField("xfp", fixture.XFP2Str(xfp))
			return nil
		},
	}
	cmd.Flags().BoolVar(&parse, "parse", false, "Parse a display string instead")
	return cmd
}

func (a *app) swabCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "swab <n>",
		Short: "Reverse the byte order of a 32 bit value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseUint32(args[0])
			if err != nil {
				return err
			}
			a.con.PrintField("swab32", fmt.Sprintf("0x%08x", fixture.Swab32(n)))
			return nil
		},
	}
}

func (a *app) satsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sats <amount>",
		Short: "Convert a coin amount to satoshis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sats, err := fixture.ParseU2SAT(args[0])
			if err != nil {
				return err
			}
			a.con.PrintAmount(args[0], sats)
			return nil
		},
	}
}

func (a *app) hexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hex <text>...",
		Short: "Hex dump text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := fixture.NewHexWriterTo(cmd.OutOrStdout())
			if _, err := w.Write([]byte(strings.Join(args, " "))); err != nil {
				return err
			}
			return w.Close()
		},
	}
}

func (a *app) dumpTxoCmd() *cobra.Command {
	var outNum int
	cmd := &cobra.Command{
		Use:   "dump-txo <tx hex>",
		Short: "Show the serialized form of one transaction output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tx, err := fixture.DumpTxOutTo(cmd.OutOrStdout(), strings.TrimSpace(args[0]), outNum)
			if err != nil {
				return err
			}
			a.printScript("script", tx.TxOut[outNum].PkScript)
			a.con.PrintAmount("value", tx.TxOut[outNum].Value)
			return nil
		},
	}
	cmd.Flags().IntVarP(&outNum, "out", "o", 0, "Output index")
	return cmd
}

// printScript shows script with its address and payload hash when it has
// them.
func (a *app) printScript(label string, script []byte) {
	addr, err := address.FromScript(script, a.cfg.Net)
	if err != nil {
		ckfxLog.Debugf("No address for %x: %v", script, err)
		addr = ""
	}
	a.con.PrintScript(label, script, addr)

	if hash, err := address.PayloadHash(script); err == nil {
		a.con.PrintField("", "hash "+fixture.B2A(hash))
	}
}

func parseUint32(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid 32 bit value %q: %w", s, err)
	}
	return uint32(n), nil
}
