package main

import (
	"fmt"
	"io"

	"github.com/Klingon-tech/airgap/internal/batch"
	"github.com/Klingon-tech/airgap/internal/log"
	"github.com/Klingon-tech/airgap/internal/vault"
	"github.com/spf13/cobra"
)

func newOpenCmd(*app) *cobra.Command {
	var pass passphraseSource
	cmd := &cobra.Command{
		Use:   "open SEALED_IN TSV_OUT",
		Short: "Decrypt a table written with --encrypt",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sealed, err := readInput(args[0])
			if err != nil {
				return err
			}
			if !vault.IsSealed(sealed) {
				return fmt.Errorf("%s: %w", args[0], vault.ErrNotSealed)
			}

			passphrase, err := pass.read()
			if err != nil {
				return err
			}
			plain, err := vault.Open(sealed, passphrase)
			zero(passphrase)
			if err != nil {
				return err
			}
			defer zero(plain)

			err = batch.WriteFile(args[1], func(w io.Writer) error {
				_, err := w.Write(plain)
				return err
			})
			if err != nil {
				return err
			}
			log.CLI.Info().Str("out", args[1]).Msg("Table opened")
			return nil
		},
	}
	cmd.Flags().StringVar(&pass.file, "passphrase-file", "", "Read the passphrase from the first line of this file")
	return cmd
}
