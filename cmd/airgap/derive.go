package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/Klingon-tech/airgap/internal/batch"
	"github.com/Klingon-tech/airgap/internal/log"
	"github.com/Klingon-tech/airgap/internal/vault"
	"github.com/spf13/cobra"
)

// deriveCmd describes one seed-driven table command.
type deriveCmd struct {
	use   string
	short string
	long  string
	// secret tables may be sealed with --encrypt.
	secret bool
	stage  func(a *app) (batch.Stage, error)
}

func newDeriveCmd(a *app, d deriveCmd) *cobra.Command {
	var (
		rng     rangeFlags
		encrypt bool
		pass    passphraseSource
	)
	cmd := &cobra.Command{
		Use:   d.use,
		Short: d.short,
		Long:  d.long,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := rng.resolve(cmd, a.cfg)
			stage, err := d.stage(a)
			if err != nil {
				return err
			}
			seed, err := readSeed(args[0])
			if err != nil {
				return err
			}

			records, err := a.driver().DeriveRange(cmd.Context(), seed, r, stage)
			if err != nil {
				return err
			}

			if encrypt {
				return a.writeSealed(args[1], records, &pass)
			}
			if err := writeTable(args[1], records); err != nil {
				return err
			}
			log.CLI.Info().
				Str("out", args[1]).
				Uint64("start", r.Start).
				Uint64("count", r.Count).
				Msg("Table written")
			return nil
		},
	}
	rng.register(cmd)
	if d.secret {
		cmd.Flags().BoolVar(&encrypt, "encrypt", false, "Seal the output under a passphrase")
		cmd.Flags().StringVar(&pass.file, "passphrase-file", "", "Read the --encrypt passphrase from the first line of this file")
	}
	return cmd
}

func newWIFCmd(a *app) *cobra.Command {
	return newDeriveCmd(a, deriveCmd{
		use:   "wif SEED_IN WIF_OUT",
		short: "Generate WIF private keys from seed words",
		long: `Generate private keys in Wallet Import Format for a range of indices.

SEED_IN holds the seed words. WIF_OUT receives one "index<TAB>wif" row per
index. Use "-" for stdin or stdout. The keys are uncompressed.`,
		secret: true,
		stage: func(a *app) (batch.Stage, error) {
			net, err := a.cfg.Params()
			if err != nil {
				return nil, err
			}
			return batch.WIFStage(net), nil
		},
	})
}

func newPubKeyCmd(a *app) *cobra.Command {
	return newDeriveCmd(a, deriveCmd{
		use:   "pubkey SEED_IN PUBKEY_OUT",
		short: "Generate public keys from seed words",
		long: `Generate uncompressed SEC1 public keys for a range of indices.

SEED_IN holds the seed words. PUBKEY_OUT receives one "index<TAB>hex" row per
index. Use "-" for stdin or stdout. The table can be moved to an online
machine and turned into addresses with "airgap addr".`,
		stage: func(*app) (batch.Stage, error) {
			return batch.PubKeyStage(), nil
		},
	})
}

func newAddressCmd(a *app) *cobra.Command {
	return newDeriveCmd(a, deriveCmd{
		use:   "address SEED_IN ADDR_OUT",
		short: "Generate P2PKH addresses from seed words",
		long: `Generate Pay-to-PubKey-Hash addresses for a range of indices.

The result is byte-identical to running "pubkey" followed by "addr" on the
same range.`,
		stage: func(a *app) (batch.Stage, error) {
			net, err := a.cfg.Params()
			if err != nil {
				return nil, err
			}
			return batch.AddressStage(net), nil
		},
	})
}

func newAddrCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "addr PUBKEY_IN ADDR_OUT",
		Short: "Convert public keys to P2PKH addresses",
		Long: `Convert a public key table into an address table.

PUBKEY_IN holds "index<TAB>hex" rows as written by "airgap pubkey". Every row
is written to ADDR_OUT as "index<TAB>address" in the same order. No private
key material is needed.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			net, err := a.cfg.Params()
			if err != nil {
				return err
			}
			in, err := batch.OpenInput(args[0])
			if err != nil {
				return err
			}
			pubs, err := batch.ReadRecords(in)
			in.Close()
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			addrs, err := a.driver().AddressesFromPubKeys(cmd.Context(), pubs, net)
			if err != nil {
				return err
			}
			if err := writeTable(args[1], addrs); err != nil {
				return err
			}
			log.CLI.Info().Str("out", args[1]).Int("rows", len(addrs)).Msg("Table written")
			return nil
		},
	}
}

func writeTable(path string, records []batch.Record) error {
	return batch.WriteFile(path, func(w io.Writer) error {
		return batch.WriteRecords(w, records)
	})
}

func (a *app) writeSealed(path string, records []batch.Record, pass *passphraseSource) error {
	var buf bytes.Buffer
	if err := batch.WriteRecords(&buf, records); err != nil {
		return err
	}
	plain := buf.Bytes()
	defer zero(plain)

	passphrase, err := pass.readNew()
	if err != nil {
		return err
	}
	defer zero(passphrase)

	sealed, err := vault.Seal(plain, passphrase, vault.Params{
		Memory:      a.cfg.Vault.Memory,
		Iterations:  a.cfg.Vault.Iterations,
		Parallelism: a.cfg.Vault.Parallelism,
	})
	if err != nil {
		return err
	}
	err = batch.WriteFile(path, func(w io.Writer) error {
		_, err := w.Write(sealed)
		return err
	})
	if err != nil {
		return err
	}
	log.CLI.Info().Str("out", path).Int("rows", len(records)).Msg("Sealed table written")
	return nil
}
