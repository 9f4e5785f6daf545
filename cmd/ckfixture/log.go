package main

import (
	"os"

	"github.com/btcsuite/btclog"

	"github.com/Amr-9/ckfixture/pkg/fixture"
	"github.com/Amr-9/ckfixture/pkg/wallet"
)

// Loggers per subsystem.  A single backend logger is created and all subsystem
// loggers created from it will write to the backend.  Logs go to stderr so
// they never mix with fixture output.
var (
	backendLog = btclog.NewBackend(os.Stderr)

	ckfxLog = backendLog.Logger("CKFX")
	fixtLog = backendLog.Logger("FIXT")
	wlltLog = backendLog.Logger("WLLT")
)

// Initialize package-global logger variables.
func init() {
	fixture.UseLogger(fixtLog)
	wallet.UseLogger(wlltLog)
}

// subsystemLoggers maps each subsystem identifier to its associated logger.
var subsystemLoggers = map[string]btclog.Logger{
	"CKFX": ckfxLog,
	"FIXT": fixtLog,
	"WLLT": wlltLog,
}

// setLogLevels sets the log level for all subsystem loggers to the passed
// level.
func setLogLevels(level btclog.Level) {
	for _, logger := range subsystemLoggers {
		logger.SetLevel(level)
	}
}
