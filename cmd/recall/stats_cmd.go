package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/recall/internal/output"
	"github.com/raphi011/recall/internal/ui"
)

func newStatsCmd() *cobra.Command {
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:     "stats",
		Short:   "Show hit/miss statistics for all caches",
		GroupID: GroupCache,
		Example: `  recall stats
  recall stats --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			type cacheStats struct {
				Cache   string  `json:"cache"`
				Entries int     `json:"entries"`
				Hits    int     `json:"hits"`
				Misses  int     `json:"misses"`
				Saves   int     `json:"saves"`
				HitRate float64 `json:"hit_rate"`
			}

			var all []cacheStats
			for _, name := range cfg.CacheNames() {
				svc, err := newService(name)
				if err != nil {
					return err
				}
				st := svc.Stats()
				all = append(all, cacheStats{
					Cache:   name,
					Entries: len(svc.Entries()),
					Hits:    st.Hits,
					Misses:  st.Misses,
					Saves:   st.Saves,
					HitRate: st.HitRate(),
				})
			}

			if jsonFlag {
				return out.JSON(all)
			}

			rows := make([][]string, 0, len(all))
			for _, s := range all {
				rows = append(rows, []string{
					s.Cache,
					fmt.Sprintf("%d", s.Entries),
					fmt.Sprintf("%d", s.Hits),
					fmt.Sprintf("%d", s.Misses),
					fmt.Sprintf("%d", s.Saves),
					fmt.Sprintf("%.0f%%", s.HitRate*100),
				})
			}
			out.Print(ui.RenderTable([]string{"CACHE", "ENTRIES", "HITS", "MISSES", "SAVES", "HIT RATE"}, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Print stats as JSON")

	return cmd
}
