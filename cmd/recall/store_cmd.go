package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/recall/internal/config"
	"github.com/raphi011/recall/internal/log"
)

func newStoreCmd() *cobra.Command {
	var (
		cacheName string
		scope     string
	)

	cmd := &cobra.Command{
		Use:     "store <query> [summary]",
		Short:   "Store a result under a query",
		GroupID: GroupCache,
		Args:    cobra.RangeArgs(1, 2),
		Long: `Store a result so later lookups for the same or a similar query are
answered from cache. The summary comes from the second argument or from
piped stdin:

  expensive-exploration | recall store "find the auth middleware"

Storing the same query again replaces the previous result and resets its
age. Results larger than the cache's size limit are silently skipped.`,
		Example: `  recall store "find the auth middleware" "it lives in internal/auth/middleware.go"
  grep -rn TODO . | recall store "list open todos"
  recall store --cache webfetch --scope https://example.com "summarize" "..."`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := log.FromContext(ctx)

			query := args[0]

			var summary string
			if len(args) == 2 {
				summary = args[1]
			} else {
				piped, err := readStdinIfPiped()
				if err != nil {
					return err
				}
				summary = piped
			}
			if summary == "" {
				return fmt.Errorf("no summary given: pass it as an argument or pipe it on stdin")
			}

			svc, err := newService(cacheName)
			if err != nil {
				return err
			}

			sc, err := resolveScope(scope)
			if err != nil {
				return err
			}

			svc.Store(query, sc, summary)
			logger.Debug("stored", "cache", cacheName, "scope", sc, "bytes", len(summary))
			logger.Printf("Stored in %s cache\n", cacheName)
			return nil
		},
	}

	cmd.Flags().StringVarP(&cacheName, "cache", "c", config.CacheExploration, "Cache instance to store into")
	cmd.Flags().StringVarP(&scope, "scope", "s", "", "Scope to store under (default: working directory)")

	return cmd
}
