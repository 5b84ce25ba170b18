// Package config loads the protocol parameters and ambient runtime
// settings the cmd/byron-validate CLI needs from the environment, the
// way the wider Cardano Go ecosystem does (envconfig, as used by
// blinklabs-io/shai), rather than a bespoke flag parser for this piece.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/cardanogo/byronvalidate/txvalidate"
)

// Config is the full set of environment-driven settings: the phase-1
// protocol numerics plus where the UTxO snapshot lives and the log level.
type Config struct {
	MinFeeConstant uint64 `envconfig:"MIN_FEE_CONSTANT" default:"7"`
	MinFeeFactor   uint64 `envconfig:"MIN_FEE_FACTOR" default:"11"`
	MaxTxSize      uint64 `envconfig:"MAX_TX_SIZE" default:"65536"`
	MinFeeFloor    uint64 `envconfig:"MIN_FEE_FLOOR" default:"0"`

	UTxODBPath string `envconfig:"UTXO_DB_PATH" default:".byron-validate/utxo.db"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads Config from the process environment, prefixed BYRON_VALIDATE_
// (e.g. BYRON_VALIDATE_MAX_TX_SIZE).
func Load() (Config, error) {
	var c Config
	if err := envconfig.Process("byron_validate", &c); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return c, nil
}

// ProtocolParams projects the loaded config onto the narrower struct the
// rule engine actually consumes.
func (c Config) ProtocolParams() txvalidate.ProtocolParams {
	return txvalidate.ProtocolParams{
		MinFeeConstant: c.MinFeeConstant,
		MinFeeFactor:   c.MinFeeFactor,
		MaxTxSize:      c.MaxTxSize,
		MinFeeFloor:    c.MinFeeFloor,
	}
}

// Validate sanity-checks the loaded config beyond what envconfig itself
// enforces, in the style of njchilds90-go-cardano-fees's
// ProtocolParams.Validate().
func (c Config) Validate() error {
	if err := c.ProtocolParams().Validate(); err != nil {
		return err
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unrecognized log level %q", c.LogLevel)
	}
	return nil
}
