package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/recall/internal/config"
	"github.com/raphi011/recall/internal/log"
)

func newClearCmd() *cobra.Command {
	var (
		cacheName string
		all       bool
	)

	cmd := &cobra.Command{
		Use:     "clear",
		Short:   "Remove all entries from a cache",
		GroupID: GroupCache,
		Long:    `Remove every entry from a cache. Statistics are reset as well.`,
		Example: `  recall clear
  recall clear --cache webfetch
  recall clear --all`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.FromContext(cmd.Context())

			names := []string{cacheName}
			if all {
				names = cfg.CacheNames()
			}

			for _, name := range names {
				svc, err := newService(name)
				if err != nil {
					return err
				}
				svc.Clear()
				logger.Printf("Cleared %s cache\n", name)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&cacheName, "cache", "c", config.CacheExploration, "Cache instance to clear")
	cmd.Flags().BoolVar(&all, "all", false, "Clear every configured cache")
	cmd.MarkFlagsMutuallyExclusive("cache", "all")

	return cmd
}
