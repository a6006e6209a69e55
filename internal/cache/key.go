package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// fingerprintLen is the number of hex characters kept from the digest.
// Collision risk is immaterial at cache sizes in the tens to low hundreds.
const fingerprintLen = 16

// Fingerprint returns a deterministic cache key for a query within a scope.
// The query is lower-cased and trimmed first, so requests differing only
// in case or surrounding whitespace collide. The scope is combined as-is.
func Fingerprint(query, scope string) string {
	normalized := strings.ToLower(strings.TrimSpace(query))

	h := sha256.New()
	h.Write([]byte(normalized))
	h.Write([]byte{0})
	h.Write([]byte(scope))

	return hex.EncodeToString(h.Sum(nil))[:fingerprintLen]
}
