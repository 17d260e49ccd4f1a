package main

import (
	"github.com/Klingon-tech/airgap/config"
	"github.com/Klingon-tech/airgap/internal/log"
	"github.com/spf13/cobra"
)

func newConfigCmd(*app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration files",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init FILE",
		Short: "Write a commented default configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.WriteDefaultConfig(args[0]); err != nil {
				return err
			}
			log.CLI.Info().Str("path", args[0]).Msg("Config written")
			return nil
		},
	})
	return cmd
}
