package cache

import (
	"time"

	"github.com/raphi011/recall/internal/storage"
)

// load reads the snapshot at path and prunes entries already past their
// TTL. Pruning on read keeps the rest of the pipeline working on
// provisionally-valid entries only; it is not a miss and touches no
// stats. A missing, corrupt, or unreadable snapshot yields an empty
// store: persistence failure is never fatal here.
func load(path string, now time.Time, ttl time.Duration) *Store {
	var store Store
	if err := storage.LoadJSON(path, &store); err != nil {
		return newStore()
	}
	if store.Entries == nil {
		store.Entries = make(map[string]*Entry)
	}

	for key, e := range store.Entries {
		if !e.IsValid(now, ttl) {
			delete(store.Entries, key)
		}
	}

	return &store
}

// save writes the snapshot atomically (temp file + rename). Best-effort:
// the error is returned for optional diagnostics but callers treat a
// failed save as a dropped mutation, not a failure.
func save(path string, store *Store) error {
	return storage.SaveJSON(path, store)
}
