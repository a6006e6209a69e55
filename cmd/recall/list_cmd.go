package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/raphi011/recall/internal/config"
	"github.com/raphi011/recall/internal/output"
	"github.com/raphi011/recall/internal/ui"
)

func newListCmd() *cobra.Command {
	var (
		cacheName string
		jsonFlag  bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List valid cached entries",
		Aliases: []string{"ls"},
		GroupID: GroupCache,
		Long:    `List the non-expired entries of a cache, newest first.`,
		Example: `  recall list
  recall list --cache webfetch
  recall list --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			svc, err := newService(cacheName)
			if err != nil {
				return err
			}

			entries := svc.Entries()

			if jsonFlag {
				return out.JSON(entries)
			}

			if len(entries) == 0 {
				out.Println("No cached entries")
				return nil
			}
			out.Print(ui.EntriesTable(entries, time.Now()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&cacheName, "cache", "c", config.CacheExploration, "Cache instance to list")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Print entries as JSON")

	return cmd
}
