package main

import (
	"context"
	"io"

	"github.com/Klingon-tech/airgap/config"
	"github.com/Klingon-tech/airgap/internal/batch"
	"github.com/Klingon-tech/airgap/internal/log"
	"github.com/spf13/cobra"
)

// app carries the configuration of one invocation.
type app struct {
	cfg *config.Config

	configPath string
	network    string
	workers    int
	logLevel   string
	logJSON    bool
	logFile    string

	logCloser io.Closer
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "airgap",
		Short: "Deterministic offline Bitcoin key derivation from seed words",
		Long: `airgap derives private keys, public keys and addresses from a seed file
and an index. The same seed and index always give the same keys.

Every index i hashes "<seed words joined by spaces> <i>\n" with SHA-256; the
digest is the secp256k1 private key. Public keys and addresses are uncompressed.
Tables are headerless two-column TSV: index, value.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.load,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "Config file path")
	pf.StringVar(&a.network, "network", "", "Network: mainnet, testnet or regtest")
	pf.IntVar(&a.workers, "workers", 0, "Indices derived in parallel (default: number of CPUs)")
	pf.StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	pf.BoolVar(&a.logJSON, "log-json", false, "Output logs as JSON")
	pf.StringVar(&a.logFile, "log-file", "", "Also write JSON logs to this file")

	root.AddCommand(
		newWIFCmd(a),
		newPubKeyCmd(a),
		newAddrCmd(a),
		newAddressCmd(a),
		newInspectCmd(a),
		newOpenCmd(a),
		newSeedCmd(a),
		newConfigCmd(a),
	)
	return root
}

// load builds the invocation config: defaults, then the config file, then
// flags that were set explicitly.
func (a *app) load(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if a.configPath != "" {
		values, err := config.LoadFile(a.configPath)
		if err != nil {
			return err
		}
		if err := config.ApplyFileConfig(cfg, values); err != nil {
			return err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("network") {
		cfg.Network = config.NetworkType(a.network)
	}
	if flags.Changed("workers") {
		cfg.Workers = a.workers
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-json") {
		cfg.Log.JSON = a.logJSON
	}
	if flags.Changed("log-file") {
		cfg.Log.File = a.logFile
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	closer, err := log.Init(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File)
	if err != nil {
		return err
	}
	a.logCloser = closer
	a.cfg = cfg
	return nil
}

// execute runs the command tree with args. A failure is logged before the
// log file is released, whether or not a command ran.
func execute(ctx context.Context, a *app, args []string, out io.Writer) error {
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	if out != nil {
		cmd.SetOut(out)
	}
	err := cmd.ExecuteContext(ctx)
	if err != nil {
		log.CLI.Error().Err(err).Msg("Command failed")
	}
	if a.logCloser != nil {
		if cerr := a.logCloser.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

func (a *app) driver() *batch.Driver {
	return batch.NewDriver(a.cfg.Workers)
}

// rangeFlags are the --start/--count flags shared by the seed commands.
type rangeFlags struct {
	start uint64
	count uint64
}

func (r *rangeFlags) register(cmd *cobra.Command) {
	cmd.Flags().Uint64Var(&r.start, "start", 0, "First index to derive")
	cmd.Flags().Uint64Var(&r.count, "count", 10, "Number of indices to derive, starting from --start")
}

// resolve applies explicitly set flags over the configured range.
func (r *rangeFlags) resolve(cmd *cobra.Command, cfg *config.Config) batch.Range {
	rng := batch.Range{Start: cfg.Batch.Start, Count: cfg.Batch.Count}
	if cmd.Flags().Changed("start") {
		rng.Start = r.start
	}
	if cmd.Flags().Changed("count") {
		rng.Count = r.count
	}
	return rng
}
