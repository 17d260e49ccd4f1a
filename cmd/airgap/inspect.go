package main

import (
	"bytes"
	"fmt"

	"github.com/Klingon-tech/airgap/internal/batch"
	"github.com/Klingon-tech/airgap/internal/keygen"
	"github.com/Klingon-tech/airgap/internal/log"
	"github.com/Klingon-tech/airgap/pkg/types"
	"github.com/spf13/cobra"
)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [WIF|-]",
		Short: "Show the public key and address of a WIF private key",
		Long: `Decode a WIF private key and print its public key and address.

With no argument or "-", the key is read from stdin, without echo when stdin
is a terminal. Passing the key as an argument leaves it in shell history.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			net, err := a.cfg.Params()
			if err != nil {
				return err
			}
			text, err := readWIF(args)
			if err != nil {
				return err
			}
			w, err := types.DecodeWIF(text)
			if err != nil {
				return err
			}
			keys, err := keygen.KeysFromWIF(w, net)
			if err != nil {
				return err
			}

			log.Keygen.Debug().
				Str("network", net.Name).
				Stringer("address", keys.Address).
				Msg("WIF decoded")

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "network\t%s\n", net)
			fmt.Fprintf(out, "pubkey\t%s\n", keys.PublicKey.Hex())
			fmt.Fprintf(out, "address\t%s\n", keys.Address)
			return nil
		},
	}
}

func readWIF(args []string) (string, error) {
	if len(args) == 1 && args[0] != batch.StdStream {
		return args[0], nil
	}
	var (
		data []byte
		err  error
	)
	if stdinIsTerminal() {
		data, err = readSecret("WIF: ")
	} else {
		data, err = readInput(batch.StdStream)
	}
	if err != nil {
		return "", err
	}
	defer zero(data)
	return string(bytes.TrimSpace(data)), nil
}
