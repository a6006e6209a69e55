// Package cache implements the fuzzy result cache behind recall.
//
// Each cache instance owns a single JSON snapshot file (e.g.
// ~/.recall/exploration.json) holding entries keyed by a fingerprint of
// the normalized query plus a scope string (working directory or URL).
// Entries expire after a configurable TTL and the store is bounded to a
// maximum entry count by creation-recency eviction.
//
// # Matching
//
// Lookup first tries an exact fingerprint match, then falls back to
// token-overlap (Jaccard) scoring across TTL-valid entries in the same
// scope. A candidate wins only if its score strictly exceeds the
// configured threshold. Entries never match across scopes.
//
// # Concurrency
//
// Callers are short-lived processes: every operation is a fresh
// load-mutate-save cycle. An advisory flock around the cycle prevents
// lost updates between concurrent invocations; snapshot writes go
// through a temp file and atomic rename so readers never observe a
// half-written file.
//
// # Failure model
//
// The cache is an optimization, never a dependency. A missing, corrupt,
// or unreadable snapshot loads as an empty store; a failed save is
// dropped silently. No operation surfaces an I/O error to the caller.
package cache
