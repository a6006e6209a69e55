package main

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/raphi011/recall/internal/config"
	"github.com/raphi011/recall/internal/log"
	"github.com/raphi011/recall/internal/output"
)

func newLookupCmd() *cobra.Command {
	var (
		cacheName string
		scope     string
		copyFlag  bool
		jsonFlag  bool
	)

	cmd := &cobra.Command{
		Use:     "lookup <query>...",
		Short:   "Look up a cached result for a query",
		GroupID: GroupCache,
		Args:    cobra.MinimumNArgs(1),
		Long: `Look up a cached result. The query matches exactly or fuzzily against
cached entries in the same scope; a hit prints the stored summary on
stdout. A miss prints nothing and exits with code 1, so lookups compose
in shell scripts:

  recall lookup "find the auth middleware" || run-the-expensive-thing`,
		Example: `  recall lookup "find the auth middleware"
  recall lookup --cache webfetch --scope https://example.com/docs "summarize install steps"
  recall lookup --json "find config files"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := log.FromContext(ctx)
			out := output.FromContext(ctx)

			query := strings.Join(args, " ")

			svc, err := newService(cacheName)
			if err != nil {
				return err
			}

			sc, err := resolveScope(scope)
			if err != nil {
				return err
			}

			entry, ok := svc.Lookup(query, sc)
			if !ok {
				logger.Debug("cache miss", "cache", cacheName, "scope", sc)
				return errMiss
			}

			logger.Debug("cache hit", "cache", cacheName, "hits", entry.HitCount)

			if copyFlag {
				if err := clipboard.WriteAll(entry.Summary); err != nil {
					logger.Printf("Warning: copy to clipboard failed: %v\n", err)
				}
			}

			if jsonFlag {
				return out.JSON(entry)
			}
			out.Println(entry.Summary)
			return nil
		},
	}

	cmd.Flags().StringVarP(&cacheName, "cache", "c", config.CacheExploration, "Cache instance to query")
	cmd.Flags().StringVarP(&scope, "scope", "s", "", "Scope to search in (default: working directory)")
	cmd.Flags().BoolVar(&copyFlag, "copy", false, "Copy the result to the clipboard")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Print the full entry as JSON")

	return cmd
}
