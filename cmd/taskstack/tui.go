package main

import (
	"github.com/metalagman/taskstack/internal/shell"
	"github.com/metalagman/taskstack/internal/ui"
	"github.com/spf13/cobra"
)

func tuiCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the full-screen task menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd.Context(), opts.cfg, shell.Options{}, func(s *shell.Session) error {
				return ui.Run(cmd.Context(), s, cmd.InOrStdin(), cmd.OutOrStdout())
			})
		},
	}
}
