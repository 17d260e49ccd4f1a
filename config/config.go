// Package config handles per-invocation configuration.
//
// Values are layered: built-in defaults, then an optional key = value file,
// then command-line flags. The resulting Config is passed explicitly to the
// batch driver; nothing here is process-wide state.
package config

import (
	"github.com/Klingon-tech/airgap/pkg/types"
)

// NetworkType names the Bitcoin network whose version bytes are used.
type NetworkType string

const (
	Mainnet NetworkType = "mainnet"
	Testnet NetworkType = "testnet"
	Regtest NetworkType = "regtest"
)

// Config holds runtime settings for one invocation.
type Config struct {
	Network NetworkType `conf:"network"`

	// Workers bounds the number of indices derived in parallel.
	Workers int `conf:"workers"`

	// Batch range defaults; flags override.
	Batch BatchConfig

	// Vault sealing parameters for --encrypt.
	Vault VaultConfig

	// Logging
	Log LogConfig
}

// BatchConfig holds the default index range.
type BatchConfig struct {
	Start uint64 `conf:"batch.start"`
	Count uint64 `conf:"batch.count"`
}

// VaultConfig holds Argon2id cost parameters for sealed output.
type VaultConfig struct {
	Memory      uint32 `conf:"vault.memory"` // in KiB
	Iterations  uint32 `conf:"vault.iterations"`
	Parallelism uint8  `conf:"vault.parallelism"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `conf:"log.level"`
	File  string `conf:"log.file"`
	JSON  bool   `conf:"log.json"`
}

// Params returns the version bytes for the configured network.
func (c *Config) Params() (types.Network, error) {
	return types.NetworkByName(string(c.Network))
}
