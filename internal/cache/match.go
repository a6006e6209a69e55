package cache

import (
	"sort"
	"strings"
	"time"
)

// minPrefixLen is the minimum token length for prefix-tolerant matching.
// "config" matches "configuration", but "to" does not match "token".
const minPrefixLen = 4

// match is the result of a lookup against the store.
type match struct {
	key   string
	entry *Entry
	score float64 // 1.0 for exact fingerprint matches
	exact bool
}

// findMatch returns the best match for query within scope, or nil.
// Exact fingerprint match wins outright; otherwise the TTL-valid,
// same-scope candidate with the highest token-overlap score is returned,
// provided the score strictly exceeds threshold. Candidates are visited
// in fingerprint order and the first best score wins ties.
func findMatch(store *Store, query, scope string, now time.Time, ttl time.Duration, threshold float64) *match {
	fp := Fingerprint(query, scope)
	if e, ok := store.Entries[fp]; ok && e.Scope == scope && e.IsValid(now, ttl) {
		return &match{key: fp, entry: e, score: 1.0, exact: true}
	}

	queryTokens := tokenize(query)
	if len(queryTokens) == 0 {
		return nil
	}

	keys := make([]string, 0, len(store.Entries))
	for k := range store.Entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var best *match
	for _, k := range keys {
		e := store.Entries[k]
		if e.Scope != scope || !e.IsValid(now, ttl) {
			continue
		}
		score := overlapScore(queryTokens, tokenize(e.Query))
		if score <= threshold {
			continue
		}
		if best == nil || score > best.score {
			best = &match{key: k, entry: e, score: score}
		}
	}
	return best
}

// tokenize splits text into sorted, de-duplicated lower-case tokens.
func tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	if len(fields) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(fields))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		tokens = append(tokens, f)
	}
	sort.Strings(tokens)
	return tokens
}

// overlapScore computes a Jaccard-style score over two token sets:
// matched pairs divided by the size of the union. Token pairs match on
// equality or on a prefix relation ("config" / "configuration"), so
// minor wording variations still overlap. Empty sets score 0, never NaN.
func overlapScore(a, b []string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}

	matched := 0
	used := make([]bool, len(b))
	for _, ta := range a {
		for j, tb := range b {
			if used[j] {
				continue
			}
			if tokensMatch(ta, tb) {
				used[j] = true
				matched++
				break
			}
		}
	}

	union := len(a) + len(b) - matched
	if union == 0 {
		return 0
	}
	return float64(matched) / float64(union)
}

// tokensMatch reports whether two tokens count as overlapping.
func tokensMatch(a, b string) bool {
	if a == b {
		return true
	}
	if len(a) > len(b) {
		a, b = b, a
	}
	return len(a) >= minPrefixLen && strings.HasPrefix(b, a)
}
