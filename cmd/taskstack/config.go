package main

import (
	"fmt"

	"github.com/metalagman/taskstack/internal/config"
	"github.com/metalagman/taskstack/internal/logging"
	"github.com/spf13/cobra"
)

func configCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the taskstack config",
	}
	cmd.AddCommand(configInitCmd(opts))
	cmd.AddCommand(configShowCmd(opts))
	return cmd
}

func configInitCmd(opts *rootOptions) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		Args:  cobra.NoArgs,
		// The file being replaced may not load, so skip the root hook.
		PersistentPreRun: func(*cobra.Command, []string) {
			logging.Init(opts.debug, "")
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.WriteDefault(opts.cfgFile, force); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "config written to %s\n", opts.cfgFile)
			return err
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return cmd
}

func configShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := config.MarshalYAML(opts.cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
