package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/recall/internal/config"
	"github.com/raphi011/recall/internal/output"
	"github.com/raphi011/recall/internal/ui"
)

func newBrowseCmd() *cobra.Command {
	var cacheName string

	cmd := &cobra.Command{
		Use:     "browse",
		Short:   "Interactively browse cached results",
		GroupID: GroupCache,
		Long: `Open an interactive fuzzy-filtered browser over a cache's entries.
The UI renders on stderr; selecting an entry prints its summary on
stdout, so the selection can be piped. Ctrl+y copies the highlighted
summary to the clipboard.`,
		Example: `  recall browse
  recall browse --cache webfetch
  recall browse | less`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			svc, err := newService(cacheName)
			if err != nil {
				return err
			}

			res, err := ui.Browse(svc.Entries())
			if err != nil {
				return err
			}
			if res.Cancelled {
				return nil
			}

			out.Println(res.Entry.Summary)
			return nil
		},
	}

	cmd.Flags().StringVarP(&cacheName, "cache", "c", config.CacheExploration, "Cache instance to browse")

	return cmd
}
