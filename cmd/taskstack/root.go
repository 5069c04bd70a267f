package main

import (
	"context"
	"fmt"
	"os"

	"github.com/metalagman/taskstack/internal/config"
	"github.com/metalagman/taskstack/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type rootOptions struct {
	cfgFile string
	debug   bool
	cfg     config.Config
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	menu := menuCmd(opts)
	cmd := &cobra.Command{
		Use:           "taskstack",
		Short:         "taskstack is an interactive task tracker with an urgent stack",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          menu.RunE,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load()
		},
	}
	cmd.PersistentFlags().StringVar(&opts.cfgFile, "config", config.DefaultPath, "config file path")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	menuFlags(menu)
	menuFlags(cmd)
	cmd.AddCommand(menu)
	cmd.AddCommand(tuiCmd(opts))
	cmd.AddCommand(configCmd(opts))
	return cmd
}

func (o *rootOptions) load() error {
	logging.Init(o.debug, "")
	cfg, err := config.Load(viper.GetViper(), o.cfgFile)
	if err != nil {
		return err
	}
	o.cfg = cfg
	logging.Init(o.debug, cfg.Log.Level)
	return nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
}
