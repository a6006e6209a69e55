package cache

import "time"

// maxStoredQueryLen bounds the query text kept in the snapshot.
// The fingerprint is computed from the full query before truncation.
const maxStoredQueryLen = 500

// Entry is a single cached result.
type Entry struct {
	// Query is the original request text, truncated for storage economy.
	Query string `json:"query"`

	// Summary is the cached result payload.
	Summary string `json:"summary"`

	// Scope partitions matching (working directory or canonicalized URL).
	// Entries never match across scopes.
	Scope string `json:"scope"`

	// CreatedAt is the creation time in unix seconds. Immutable after
	// creation; drives both TTL expiry and recency eviction.
	CreatedAt int64 `json:"created_at"`

	// HitCount counts lookups satisfied by this entry. Observability
	// only, it never influences eviction.
	HitCount int `json:"hit_count"`
}

// IsValid reports whether the entry is still within its TTL at the
// given time. Validity is always evaluated against now, never cached.
func (e *Entry) IsValid(now time.Time, ttl time.Duration) bool {
	age := now.Unix() - e.CreatedAt
	return age < int64(ttl.Seconds())
}

// Age returns the entry's age at the given time.
func (e *Entry) Age(now time.Time) time.Duration {
	return time.Duration(now.Unix()-e.CreatedAt) * time.Second
}

// Stats holds monotonic counters persisted alongside the entries.
type Stats struct {
	Hits   int `json:"hits"`
	Misses int `json:"misses"`
	Saves  int `json:"saves"`
}

// HitRate returns hits / (hits + misses), or 0 when no lookups happened.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Store is the snapshot structure persisted per cache instance.
type Store struct {
	Entries map[string]*Entry `json:"entries"`
	Stats   Stats             `json:"stats"`
}

// newStore returns an empty store with initialized maps.
func newStore() *Store {
	return &Store{Entries: make(map[string]*Entry)}
}

// truncate shortens s to at most n bytes.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
