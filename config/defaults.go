package config

import "runtime"

// Default returns the built-in configuration: mainnet, one worker per CPU,
// indices [0, 10).
func Default() *Config {
	return &Config{
		Network: Mainnet,
		Workers: runtime.NumCPU(),
		Batch: BatchConfig{
			Start: 0,
			Count: 10,
		},
		Vault: VaultConfig{
			Memory:      64 * 1024, // 64 MB
			Iterations:  3,
			Parallelism: 4,
		},
		Log: LogConfig{
			Level: "info",
			JSON:  false,
		},
	}
}
