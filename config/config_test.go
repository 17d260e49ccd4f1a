package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Klingon-tech/airgap/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, Validate(cfg))
	assert.Equal(t, Mainnet, cfg.Network)
	assert.Equal(t, uint64(0), cfg.Batch.Start)
	assert.Equal(t, uint64(10), cfg.Batch.Count)
	assert.GreaterOrEqual(t, cfg.Workers, 1)

	net, err := cfg.Params()
	require.NoError(t, err)
	assert.Equal(t, types.Mainnet, net)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown network", func(c *Config) { c.Network = "signet" }},
		{"zero workers", func(c *Config) { c.Workers = 0 }},
		{"bad log level", func(c *Config) { c.Log.Level = "trace" }},
		{"zero iterations", func(c *Config) { c.Vault.Iterations = 0 }},
		{"zero parallelism", func(c *Config) { c.Vault.Parallelism = 0 }},
		{"tiny memory", func(c *Config) { c.Vault.Memory = 8 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, Validate(cfg))
		})
	}
	assert.Error(t, Validate(nil))
}

func TestLoadFile_Apply(t *testing.T) {
	path := filepath.Join(t.TempDir(), "airgap.conf")
	content := `# comment
network = "testnet"
workers = 3

batch.start = 100
batch.count = 5
vault.memory = 1024
vault.iterations = 2
vault.parallelism = 1
log.level = 'debug'
log.json = yes
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	values, err := LoadFile(path)
	require.NoError(t, err)

	cfg := Default()
	require.NoError(t, ApplyFileConfig(cfg, values))
	require.NoError(t, Validate(cfg))

	assert.Equal(t, Testnet, cfg.Network)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, uint64(100), cfg.Batch.Start)
	assert.Equal(t, uint64(5), cfg.Batch.Count)
	assert.Equal(t, VaultConfig{Memory: 1024, Iterations: 2, Parallelism: 1}, cfg.Vault)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.JSON)
}

func TestLoadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "missing.conf"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.conf")
	require.NoError(t, os.WriteFile(bad, []byte("network mainnet\n"), 0600))
	_, err = LoadFile(bad)
	assert.ErrorContains(t, err, "line 1")

	cfg := Default()
	assert.Error(t, ApplyFileConfig(cfg, map[string]string{"netwrok": "testnet"}))
	assert.Error(t, ApplyFileConfig(cfg, map[string]string{"batch.count": "-1"}))
	assert.Error(t, ApplyFileConfig(cfg, map[string]string{"vault.parallelism": "256"}))
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "airgap.conf")
	require.NoError(t, WriteDefaultConfig(path))

	values, err := LoadFile(path)
	require.NoError(t, err)
	cfg := &Config{Workers: 1}
	require.NoError(t, ApplyFileConfig(cfg, values))
	require.NoError(t, Validate(cfg))
	assert.Equal(t, Default().Vault, cfg.Vault)
	assert.Equal(t, Default().Batch, cfg.Batch)

	// Never overwrites.
	assert.Error(t, WriteDefaultConfig(path))
}
