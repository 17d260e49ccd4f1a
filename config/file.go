package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadFile loads configuration values from a .conf file.
// Format: key = value (one per line, # for comments)
func LoadFile(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	values := make(map[string]string)
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("line %d: invalid format (expected key = value)", lineNum)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		// Remove quotes if present
		if len(value) >= 2 {
			if (value[0] == '"' && value[len(value)-1] == '"') ||
				(value[0] == '\'' && value[len(value)-1] == '\'') {
				value = value[1 : len(value)-1]
			}
		}

		values[key] = value
	}

	return values, scanner.Err()
}

// ApplyFileConfig applies file configuration to a Config struct.
func ApplyFileConfig(cfg *Config, values map[string]string) error {
	for key, value := range values {
		if err := setConfigValue(cfg, key, value); err != nil {
			return fmt.Errorf("config key %q: %w", key, err)
		}
	}
	return nil
}

// setConfigValue sets a config value by key. Unknown keys are an error so a
// misspelled network cannot silently fall back to mainnet.
func setConfigValue(cfg *Config, key, value string) error {
	switch key {
	case "network":
		cfg.Network = NetworkType(strings.ToLower(value))
	case "workers":
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		cfg.Workers = n

	case "batch.start":
		n, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return err
		}
		cfg.Batch.Start = n
	case "batch.count":
		n, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return err
		}
		cfg.Batch.Count = n

	case "vault.memory":
		n, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return err
		}
		cfg.Vault.Memory = uint32(n)
	case "vault.iterations":
		n, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return err
		}
		cfg.Vault.Iterations = uint32(n)
	case "vault.parallelism":
		n, err := strconv.ParseUint(value, 10, 8)
		if err != nil {
			return err
		}
		cfg.Vault.Parallelism = uint8(n)

	case "log.level":
		cfg.Log.Level = value
	case "log.file":
		cfg.Log.File = value
	case "log.json":
		cfg.Log.JSON = parseBool(value)

	default:
		return fmt.Errorf("unknown key")
	}
	return nil
}

// parseBool parses a boolean value.
func parseBool(s string) bool {
	s = strings.ToLower(s)
	return s == "true" || s == "1" || s == "yes" || s == "on"
}

// WriteDefaultConfig writes a commented default configuration file.
func WriteDefaultConfig(path string) error {
	d := Default()
	content := `# airgap configuration
#
# Command-line flags override every value in this file.

# Network: mainnet, testnet or regtest
network = ` + string(d.Network) + `

# Indices derived in parallel (default: number of CPUs)
# workers = 4

# ============================================================================
# Default index range for wif, pubkey and address
# ============================================================================

batch.start = ` + strconv.FormatUint(d.Batch.Start, 10) + `
batch.count = ` + strconv.FormatUint(d.Batch.Count, 10) + `

# ============================================================================
# Sealed output (wif --encrypt), Argon2id cost
# ============================================================================

vault.memory = ` + strconv.FormatUint(uint64(d.Vault.Memory), 10) + `
vault.iterations = ` + strconv.FormatUint(uint64(d.Vault.Iterations), 10) + `
vault.parallelism = ` + strconv.FormatUint(uint64(d.Vault.Parallelism), 10) + `

# ============================================================================
# Logging (always stderr)
# ============================================================================

log.level = ` + d.Log.Level + `
# log.file =
log.json = false
`
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
