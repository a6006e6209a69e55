package cache

import "sort"

// evict bounds entries to maxEntries, keeping the most recently created.
// This is deliberately a creation-recency policy, not LRU: hit counts and
// access times never influence which entries survive. Ties on CreatedAt
// break on fingerprint order so the result is deterministic.
func evict(entries map[string]*Entry, maxEntries int) map[string]*Entry {
	if maxEntries <= 0 || len(entries) <= maxEntries {
		return entries
	}

	type keyed struct {
		key   string
		entry *Entry
	}

	sorted := make([]keyed, 0, len(entries))
	for k, e := range entries {
		sorted = append(sorted, keyed{key: k, entry: e})
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].entry.CreatedAt != sorted[j].entry.CreatedAt {
			return sorted[i].entry.CreatedAt > sorted[j].entry.CreatedAt
		}
		return sorted[i].key < sorted[j].key
	})

	kept := make(map[string]*Entry, maxEntries)
	for _, ke := range sorted[:maxEntries] {
		kept[ke.key] = ke.entry
	}
	return kept
}
