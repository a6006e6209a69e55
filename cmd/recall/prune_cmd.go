package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/recall/internal/config"
	"github.com/raphi011/recall/internal/log"
)

func newPruneCmd() *cobra.Command {
	var (
		cacheName string
		all       bool
	)

	cmd := &cobra.Command{
		Use:     "prune",
		Short:   "Drop expired and over-bound entries",
		GroupID: GroupCache,
		Long: `Rewrite a cache's snapshot without its expired entries and without
entries beyond the size bound. Lookups already ignore stale entries, so
pruning only reclaims disk space.`,
		Example: `  recall prune
  recall prune --all`,
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
				removed := svc.Prune()
				logger.Printf("Pruned %d entries from %s cache\n", removed, name)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&cacheName, "cache", "c", config.CacheExploration, "Cache instance to prune")
	cmd.Flags().BoolVar(&all, "all", false, "Prune every configured cache")
	cmd.MarkFlagsMutuallyExclusive("cache", "all")

	return cmd
}
