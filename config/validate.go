package config

import (
	"fmt"

	"github.com/Klingon-tech/airgap/internal/log"
)

// Validate checks the config for obvious operator mistakes.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if _, err := cfg.Params(); err != nil {
		return fmt.Errorf("network must be %q, %q or %q", Mainnet, Testnet, Regtest)
	}
	if cfg.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", cfg.Workers)
	}
	if cfg.Vault.Memory < 8*uint32(cfg.Vault.Parallelism) {
		return fmt.Errorf("vault.memory must be at least 8 KiB per lane")
	}
	if cfg.Vault.Iterations < 1 {
		return fmt.Errorf("vault.iterations must be at least 1")
	}
	if cfg.Vault.Parallelism < 1 {
		return fmt.Errorf("vault.parallelism must be at least 1")
	}
	if !log.ValidLevel(cfg.Log.Level) {
		return fmt.Errorf("log.level must be debug, info, warn or error")
	}
	return nil
}
