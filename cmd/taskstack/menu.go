package main

import (
	"fmt"
	"io"
	"os"

	"github.com/metalagman/taskstack/internal/shell"
	"github.com/spf13/cobra"
)

type menuOptions struct {
	input    string
	noBanner bool
}

func menuCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the numbered task menu (default command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mo := menuOptionsFrom(cmd)
			var in io.Reader = cmd.InOrStdin()
			if mo.input != "" {
				f, err := os.Open(mo.input)
				if err != nil {
					return fmt.Errorf("open input: %w", err)
				}
				defer f.Close()
				in = f
			}
			return withSession(cmd.Context(), opts.cfg, shell.Options{NoBanner: mo.noBanner}, func(s *shell.Session) error {
				return s.Run(cmd.Context(), in, cmd.OutOrStdout())
			})
		},
	}
}

func menuFlags(cmd *cobra.Command) {
	cmd.Flags().String("input", "", "read menu answers from a file instead of stdin")
	cmd.Flags().Bool("no-banner", false, "do not print the menu before each prompt")
}

func menuOptionsFrom(cmd *cobra.Command) menuOptions {
	input, _ := cmd.Flags().GetString("input")
	noBanner, _ := cmd.Flags().GetBool("no-banner")
	return menuOptions{input: input, noBanner: noBanner}
}
