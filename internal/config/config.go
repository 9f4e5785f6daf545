// Package config resolves the CLI settings. Values come from command line
// flags, then CKFIXTURE_* environment variables, then defaults.
package config

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btclog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Amr-9/ckfixture/pkg/fixture"
)

const (
	// NetworkKey is the network addresses and keys are rendered for.
	// One of mainnet, testnet3, regtest or signet.
	NetworkKey = "NETWORK"
	// LogLevelKey is the btclog level: trace, debug, info, warn, error,
	// critical or off.
	LogLevelKey = "LOG_LEVEL"
	// SeedKey seeds the fixture random source. Zero keeps it time seeded.
	SeedKey = "SEED"
	// SimPathKey is the simulator socket path.
	SimPathKey = "SIM_PATH"
)

var vip *viper.Viper

func init() {
	vip = viper.New()
	vip.SetEnvPrefix("CKFIXTURE")
	vip.AutomaticEnv()

	vip.SetDefault(NetworkKey, "testnet3")
	vip.SetDefault(LogLevelKey, "info")
	vip.SetDefault(SeedKey, 0)
	vip.SetDefault(SimPathKey, fixture.SimPath)
}

// Config holds the resolved settings.
type Config struct {
	Net      *chaincfg.Params
	LogLevel btclog.Level
	Seed     int64
	SimPath  string
}

// BindFlag makes a command line flag override key.
func BindFlag(key string, flag *pflag.Flag) error {
	return vip.BindPFlag(key, flag)
}

// Load validates and returns the current settings.
func Load() (*Config, error) {
	net, err := NetParams(vip.GetString(NetworkKey))
	if err != nil {
		return nil, err
	}

	level, ok := btclog.LevelFromString(strings.ToLower(vip.GetString(LogLevelKey)))
	if !ok {
		return nil, fmt.Errorf("invalid log level %q", vip.GetString(LogLevelKey))
	}

	return &Config{
		Net:      net,
		LogLevel: level,
		Seed:     vip.GetInt64(SeedKey),
		SimPath:  vip.GetString(SimPathKey),
	}, nil
}

// NetParams resolves a network name.
func NetParams(name string) (*chaincfg.Params, error) {
	switch strings.ToLower(name) {
	case "mainnet", "main":
		return &chaincfg.MainNetParams, nil
	case "testnet3", "testnet", "test":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	case "signet":
		return &chaincfg.SigNetParams, nil
	default:
		return nil, fmt.Errorf("unknown network %q", name)
	}
}
