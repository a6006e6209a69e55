package cache

import "testing"

func TestFingerprint_Deterministic(t *testing.T) {
	t.Parallel()

	a := Fingerprint("find config files", "/project")
	b := Fingerprint("find config files", "/project")
	if a != b {
		t.Errorf("same inputs produced different fingerprints: %q vs %q", a, b)
	}
}

func TestFingerprint_Normalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		a, b  string
		equal bool
	}{
		{"case insensitive", "Test X", "test x", true},
		{"surrounding whitespace", "  find files  ", "find files", true},
		{"different queries", "a", "b", false},
		{"inner whitespace is significant", "a b", "ab", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fa := Fingerprint(tt.a, "/scope")
			fb := Fingerprint(tt.b, "/scope")
			if (fa == fb) != tt.equal {
				t.Errorf("Fingerprint(%q) == Fingerprint(%q) is %v, want %v", tt.a, tt.b, fa == fb, tt.equal)
			}
		})
	}
}

func TestFingerprint_ScopePartitions(t *testing.T) {
	t.Parallel()

	a := Fingerprint("find config files", "/project-a")
	b := Fingerprint("find config files", "/project-b")
	if a == b {
		t.Error("same query in different scopes must not share a fingerprint")
	}
}

func TestFingerprint_Length(t *testing.T) {
	t.Parallel()

	fp := Fingerprint("query", "scope")
	if len(fp) != fingerprintLen {
		t.Errorf("fingerprint length = %d, want %d", len(fp), fingerprintLen)
	}
	for _, c := range fp {
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f') {
			t.Errorf("fingerprint %q contains non-hex character %q", fp, c)
		}
	}
}
