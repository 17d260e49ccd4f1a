package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/Klingon-tech/airgap/internal/batch"
	"github.com/Klingon-tech/airgap/internal/keygen"
	"github.com/Klingon-tech/airgap/internal/log"
	"github.com/Klingon-tech/airgap/internal/phrase"
	"github.com/spf13/cobra"
)

func newSeedCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create and check seed files",
	}
	cmd.AddCommand(newSeedNewCmd(a), newSeedCheckCmd(a))
	return cmd
}

func newSeedNewCmd(*app) *cobra.Command {
	var words int
	cmd := &cobra.Command{
		Use:   "new SEED_OUT",
		Short: "Write a new random BIP-39 phrase to a seed file",
		Long: `Write a new random BIP-39 phrase to SEED_OUT with mode 0600.

An existing file is never overwritten. Keep the seed file offline: every key
derived from it can be recreated by anyone who reads it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			mnemonic, err := phrase.Generate(words)
			if err != nil {
				return err
			}
			err = batch.WriteNewFile(path, func(w io.Writer) error {
				_, err := io.WriteString(w, mnemonic+"\n")
				return err
			})
			if errors.Is(err, fs.ErrExist) {
				return fmt.Errorf("seed %s already exists: %w", path, err)
			}
			if err != nil {
				return err
			}
			log.CLI.Info().Str("out", path).Int("words", words).Msg("Seed written")
			return nil
		},
	}
	cmd.Flags().IntVar(&words, "words", phrase.DefaultWords, "Phrase length: 12, 15, 18, 21 or 24")
	return cmd
}

func newSeedCheckCmd(*app) *cobra.Command {
	return &cobra.Command{
		Use:   "check SEED_IN",
		Short: "Check a seed file without printing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args[0])
			if err != nil {
				return err
			}
			defer zero(data)

			if _, err := keygen.ParseSeed(string(data)); err != nil {
				return fmt.Errorf("seed %s: %w", args[0], err)
			}
			c := phrase.Inspect(string(data))
			log.Keygen.Debug().Int("words", c.Words).Bool("bip39", c.BIP39).Msg("Seed checked")
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "words\t%d\n", c.Words)
			fmt.Fprintf(out, "bip39\t%t\n", c.BIP39)
			if c.Words == 0 {
				log.CLI.Warn().Str("path", args[0]).Msg("Seed contains no words")
			}
			return nil
		},
	}
}
