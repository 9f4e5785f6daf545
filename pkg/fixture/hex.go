package fixture

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
)

// B2A returns the lowercase hex form of b.
func B2A(b []byte) string {
	return hex.EncodeToString(b)
}

// HexWriter collects whatever is streamed into it and reports the hex of it
// when closed:
//
//	w := fixture.NewHexWriter()
//	tx.TxOut[0].Serialize(w)  // or any other writer-based encoder
//	w.Close()                 // logs "hex: ..."
type HexWriter struct {
	buf bytes.Buffer
	out io.Writer
}

// NewHexWriter returns a HexWriter that reports to the package logger.
func NewHexWriter() *HexWriter {
	return &HexWriter{}
}

// NewHexWriterTo returns a HexWriter that reports to out.
func NewHexWriterTo(out io.Writer) *HexWriter {
	return &HexWriter{out: out}
}

// Write appends p to the buffer. It never fails.
func (h *HexWriter) Write(p []byte) (int, error) {
	return h.buf.Write(p)
}

// Bytes returns the bytes written so far.
func (h *HexWriter) Bytes() []byte {
	return h.buf.Bytes()
}

// Hex returns the hex of the bytes written so far.
func (h *HexWriter) Hex() string {
	return B2A(h.buf.Bytes())
}

// Close reports the collected bytes.
func (h *HexWriter) Close() error {
	if h.out == nil {
		log.Infof("hex: %s", h.Hex())
		return nil
	}
	_, err := fmt.Fprintf(h.out, "hex: %s\n", h.Hex())
	return err
}
