// Package fixture holds the constants of the deterministic simulator wallet
// and the helpers tests use to synthesize plausible transaction outputs.
// Nothing here is fit for real funds: fake addresses are random garbage and
// random bytes come from a non-cryptographic source.
package fixture

// SimPath is the unix socket the simulator listens on.
const SimPath = "/tmp/ckcc-simulator.sock"

// The simulator normally powers up with this wallet.
const (
	SimulatorFixedXprv = "tprv8ZgxMBicQKsPeXJHL3vPPgTAEqQ5P2FD9qDeCQT4Cp1EMY5QkwMPWFxHdxHrxZhhcVRJ2m7BNWTz9Xre68y7mX5vCdMJ5qXMUfnrZ2si2X4"

	SimulatorFixedWords = "wife shiver author away frog air rough vanish fantasy frozen noodle athlete pioneer citizen symptom firm much faith extend rare axis garment kiwi clarify"

	// SimulatorFixedXFP is the master fingerprint packed little-endian.
	SimulatorFixedXFP uint32 = 0x4369050f
)
