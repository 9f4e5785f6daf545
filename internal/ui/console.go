package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/Amr-9/ckfixture/pkg/fixture"
)

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorCyan   = "\033[36m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorRed    = "\033[31m"
	ColorPurple = "\033[35m"
	ColorBold   = "\033[1m"
	ColorDim    = "\033[2m"
)

// Console prints fixture results, coloured unless Plain is set.
type Console struct {
	w     io.Writer
	Plain bool
}

// NewConsole returns a Console writing to w.
func NewConsole(w io.Writer, plain bool) *Console {
	return &Console{w: w, Plain: plain}
}

func (c *Console) color(codes ...string) string {
	if c.Plain {
		return ""
	}
	return strings.Join(codes, "")
}

// PrintBanner shows the tool name and version
func (c *Console) PrintBanner(version string) {
	fmt.Fprintf(c.w, "%s%sckfixture%s %sv%s%s\n",
		c.color(ColorCyan), c.color(ColorBold), c.color(ColorReset),
		c.color(ColorDim), version, c.color(ColorReset))
}

// PrintSection shows a section heading
func (c *Console) PrintSection(title string) {
	fmt.Fprintf(c.w, "\n%s%s%s\n", c.color(ColorGreen, ColorBold), title, c.color(ColorReset))
}

// PrintField shows one labelled value
func (c *Console) PrintField(label, value string) {
	fmt.Fprintf(c.w, "    %s%-14s%s %s\n", c.color(ColorDim), label, c.color(ColorReset), value)
}

// PrintScript shows an output script and the address it renders to
func (c *Console) PrintScript(label string, script []byte, addr string) {
	c.PrintField(label, fmt.Sprintf("%s%s%s", c.color(ColorYellow), fixture.B2A(script), c.color(ColorReset)))
	if addr != "" {
		c.PrintField("", fmt.Sprintf("%s%s%s", c.color(ColorCyan, ColorBold), addr, c.color(ColorReset)))
	}
}

// PrintAmount shows a satoshi value with thousands separators
func (c *Console) PrintAmount(label string, sats int64) {
	sign := ""
	n := uint64(sats)
	if sats < 0 {
		sign = "-"
		n = uint64(-sats)
	}
	c.PrintField(label, fmt.Sprintf("%s%s%s%s sat", c.color(ColorPurple, ColorBold), sign, FormatNumber(n), c.color(ColorReset)))
}

// PrintError shows a failure
func (c *Console) PrintError(err error) {
	fmt.Fprintf(c.w, "\n    %s✗ Error: %v%s\n", c.color(ColorRed), err, c.color(ColorReset))
}

// FormatNumber adds commas to large numbers
func FormatNumber(n uint64) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	s := fmt.Sprintf("%d", n)
	result := make([]byte, 0, len(s)+(len(s)-1)/3)
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, byte(c))
	}
	return string(result)
}
