package fixture

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"

	"github.com/Amr-9/ckfixture/pkg/address"
)

// DumpTxOut decodes a hex transaction and logs the serialized form of
// output outNum together with the hash160 its script pays to.
func DumpTxOut(txHex string, outNum int) (*wire.MsgTx, error) {
	tx, err := decodeTx(txHex)
	if err != nil {
		return nil, err
	}
	hash, err := dumpTxOut(NewHexWriter(), tx, outNum)
	if err != nil {
		return nil, err
	}
	log.Infof("hash160: %s", hash)
	return tx, nil
}

// DumpTxOutTo is DumpTxOut reporting to out instead of the logger.
func DumpTxOutTo(out io.Writer, txHex string, outNum int) (*wire.MsgTx, error) {
	tx, err := decodeTx(txHex)
	if err != nil {
		return nil, err
	}
	hash, err := dumpTxOut(NewHexWriterTo(out), tx, outNum)
	if err != nil {
		return nil, err
	}
	if _, err := fmt.Fprintf(out, "hash160: %s\n", hash); err != nil {
		return nil, err
	}
	return tx, nil
}

func decodeTx(txHex string) (*wire.MsgTx, error) {
	raw, err := hex.DecodeString(txHex)
	if err != nil {
		return nil, fmt.Errorf("decode tx hex: %w", err)
	}

	tx := wire.NewMsgTx(wire.TxVersion)
	if err := tx.Deserialize(bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("deserialize tx: %w", err)
	}
	return tx, nil
}

func dumpTxOut(w *HexWriter, tx *wire.MsgTx, outNum int) (string, error) {
	if outNum < 0 || outNum >= len(tx.TxOut) {
		return "", fmt.Errorf("output %d out of range, tx has %d", outNum, len(tx.TxOut))
	}
	txOut := tx.TxOut[outNum]

	if err := wire.WriteTxOut(w, 0, tx.Version, txOut); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	if hash := ScriptHash160(txOut.PkScript); hash != nil {
		return B2A(hash), nil
	}
	return "none", nil
}

// ScriptHash160 returns the 20 byte hash an output script pays to, or nil
// when it has none (P2WSH, bare multisig, data carriers).
func ScriptHash160(pkScript []byte) []byte {
	class, addrs, _, err := txscript.ExtractPkScriptAddrs(pkScript, &chaincfg.MainNetParams)
	if err != nil || len(addrs) != 1 {
		return nil
	}

	switch class {
	case txscript.PubKeyTy:
		return address.Hash160(addrs[0].ScriptAddress())
	case txscript.PubKeyHashTy, txscript.ScriptHashTy, txscript.WitnessV0PubKeyHashTy:
		return addrs[0].ScriptAddress()
	default:
		return nil
	}
}
