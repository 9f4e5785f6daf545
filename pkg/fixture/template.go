package fixture

import (
	"bytes"
)

// template is a fixed output script layout: opcode framing around a hash
// payload of known size.
type template struct {
	prefix  []byte
	payload int
	suffix  []byte
}

// Len returns the total script length.
func (t template) Len() int {
	return len(t.prefix) + t.payload + len(t.suffix)
}

// build frames payload, which must be exactly t.payload bytes.
func (t template) build(payload []byte) []byte {
	script := make([]byte, 0, t.Len())
	script = append(script, t.prefix...)
	script = append(script, payload...)
	return append(script, t.suffix...)
}

// matches checks length and framing of script.
func (t template) matches(script []byte) bool {
	if len(script) != t.Len() {
		return false
	}
	return bytes.HasPrefix(script, t.prefix) && bytes.HasSuffix(script, t.suffix)
}

// MatchesStyle reports whether script has the length and framing of the
// destination template for style.
func MatchesStyle(script []byte, style AddrStyle) bool {
	info, ok := styles[style]
	return ok && info.fake.matches(script)
}
