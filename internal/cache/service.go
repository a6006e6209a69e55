package cache

import (
	"sort"
	"strings"
	"time"

	"github.com/raphi011/recall/internal/storage"
)

// Default configuration values. Each cache instance can override them
// via config; see internal/config.
const (
	DefaultTTL            = time.Hour
	DefaultMaxEntries     = 50
	DefaultMaxContentSize = 10 * 1024
	DefaultThreshold      = 0.6
)

// Config fixes a cache instance's behavior at construction.
// There is no runtime reconfiguration.
type Config struct {
	// Path is the snapshot file for this instance.
	Path string

	// TTL is the maximum entry age before it stops matching.
	TTL time.Duration

	// MaxEntries bounds the store; oldest entries are evicted beyond it.
	MaxEntries int

	// MaxContentSize bounds stored summaries in bytes. Oversized results
	// are not cached at all.
	MaxContentSize int

	// Threshold is the similarity floor for fuzzy matches, strict.
	Threshold float64
}

// withDefaults fills zero fields with the package defaults.
func (c Config) withDefaults() Config {
	if c.TTL <= 0 {
		c.TTL = DefaultTTL
	}
	if c.MaxEntries <= 0 {
		c.MaxEntries = DefaultMaxEntries
	}
	if c.MaxContentSize <= 0 {
		c.MaxContentSize = DefaultMaxContentSize
	}
	if c.Threshold <= 0 {
		c.Threshold = DefaultThreshold
	}
	return c
}

// Service is one logical cache instance (e.g. exploration results).
// Multiple caches are separate Service values with isolated snapshots,
// not partitions of one store.
type Service struct {
	cfg Config
	now func() time.Time // overridden in tests
}

// New creates a cache service. Zero config fields fall back to defaults;
// only Path is required.
func New(cfg Config) *Service {
	return &Service{cfg: cfg.withDefaults(), now: time.Now}
}

// Path returns the snapshot file path for this instance.
func (s *Service) Path() string { return s.cfg.Path }

// TTL returns the configured expiry window.
func (s *Service) TTL() time.Duration { return s.cfg.TTL }

// lockPath returns the advisory lock file guarding the snapshot.
func (s *Service) lockPath() string { return s.cfg.Path + ".lock" }

// withLock runs fn under the advisory file lock. If the lock cannot be
// acquired the cycle runs unlocked: losing a rare concurrent update is
// an accepted trade-off, blocking the caller is not.
func (s *Service) withLock(fn func()) {
	lock := NewFileLock(s.lockPath())
	if err := lock.Lock(); err == nil {
		defer func() { _ = lock.Unlock() }()
	}
	fn()
}

// Lookup finds a cached entry for query within scope. It increments the
// matched entry's hit count and the store's hit/miss counters, and
// persists the updated stats even on a miss so hit-rate telemetry
// survives process restarts.
func (s *Service) Lookup(query, scope string) (*Entry, bool) {
	var (
		entry *Entry
		found bool
	)

	s.withLock(func() {
		now := s.now()
		store := load(s.cfg.Path, now, s.cfg.TTL)

		m := findMatch(store, query, scope, now, s.cfg.TTL, s.cfg.Threshold)
		if m != nil {
			m.entry.HitCount++
			store.Stats.Hits++
			entry, found = m.entry, true
		} else {
			store.Stats.Misses++
		}

		_ = save(s.cfg.Path, store)
	})

	return entry, found
}

// Store caches a result for query within scope, replacing any existing
// entry for the same fingerprint. Oversized results are silently
// dropped. Fire-and-forget: callers must not depend on completion.
func (s *Service) Store(query, scope, summary string) {
	if len(summary) > s.cfg.MaxContentSize {
		return
	}

	s.withLock(func() {
		now := s.now()
		store := load(s.cfg.Path, now, s.cfg.TTL)

		store.Entries[Fingerprint(query, scope)] = &Entry{
			Query:     truncate(strings.TrimSpace(query), maxStoredQueryLen),
			Summary:   summary,
			Scope:     scope,
			CreatedAt: now.Unix(),
		}
		store.Entries = evict(store.Entries, s.cfg.MaxEntries)
		store.Stats.Saves++

		_ = save(s.cfg.Path, store)
	})
}

// Entries returns the TTL-valid entries, most recent first.
func (s *Service) Entries() []*Entry {
	var entries []*Entry

	s.withLock(func() {
		store := load(s.cfg.Path, s.now(), s.cfg.TTL)
		for _, e := range store.Entries {
			entries = append(entries, e)
		}
	})

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].CreatedAt != entries[j].CreatedAt {
			return entries[i].CreatedAt > entries[j].CreatedAt
		}
		return entries[i].Query < entries[j].Query
	})
	return entries
}

// Stats returns the persisted counters.
func (s *Service) Stats() Stats {
	var stats Stats
	s.withLock(func() {
		stats = load(s.cfg.Path, s.now(), s.cfg.TTL).Stats
	})
	return stats
}

// Clear resets the snapshot to an empty store, dropping entries and
// stats alike.
func (s *Service) Clear() {
	s.withLock(func() {
		_ = save(s.cfg.Path, newStore())
	})
}

// Prune drops expired entries and re-applies the eviction bound,
// persisting the result. Returns the number of entries removed.
func (s *Service) Prune() int {
	removed := 0

	s.withLock(func() {
		now := s.now()

		// Count everything physically present first; load prunes expired.
		var raw Store
		before := 0
		if err := storage.LoadJSON(s.cfg.Path, &raw); err == nil {
			before = len(raw.Entries)
		}

		store := load(s.cfg.Path, now, s.cfg.TTL)
		store.Entries = evict(store.Entries, s.cfg.MaxEntries)
		removed = before - len(store.Entries)

		_ = save(s.cfg.Path, store)
	})

	if removed < 0 {
		removed = 0
	}
	return removed
}
