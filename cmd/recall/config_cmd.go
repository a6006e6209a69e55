package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/recall/internal/config"
	"github.com/raphi011/recall/internal/log"
	"github.com/raphi011/recall/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage recall configuration",
		GroupID: GroupConfig,
	}

	cmd.AddCommand(newConfigPathCmd())
	cmd.AddCommand(newConfigInitCmd())

	return cmd
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			path, err := config.Path()
			if err != nil {
				return err
			}
			out.Println(path)
			return nil
		},
	}
}

func newConfigInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a sample config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.FromContext(cmd.Context())

			path, err := config.Init()
			if err != nil {
				return err
			}
			logger.Printf("Wrote %s\n", path)
			return nil
		},
	}
}
