package cache

import (
	"testing"
	"time"
)

func TestEntry_IsValid(t *testing.T) {
	t.Parallel()

	now := time.Now()
	ttl := time.Hour

	tests := []struct {
		name      string
		createdAt int64
		want      bool
	}{
		{"fresh", now.Unix(), true},
		{"just inside ttl", now.Add(-ttl + time.Second).Unix(), true},
		{"exactly at ttl", now.Add(-ttl).Unix(), false},
		{"just past ttl", now.Add(-ttl - time.Second).Unix(), false},
		{"far past ttl", now.Add(-24 * time.Hour).Unix(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := &Entry{CreatedAt: tt.createdAt}
			if got := e.IsValid(now, ttl); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEntry_Age(t *testing.T) {
	t.Parallel()

	now := time.Now()
	e := &Entry{CreatedAt: now.Add(-90 * time.Second).Unix()}
	if got := e.Age(now); got != 90*time.Second {
		t.Errorf("Age() = %v, want 90s", got)
	}
}

func TestStats_HitRate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		stats Stats
		want  float64
	}{
		{"no lookups", Stats{}, 0},
		{"all hits", Stats{Hits: 4}, 1},
		{"half", Stats{Hits: 2, Misses: 2}, 0.5},
		{"saves ignored", Stats{Hits: 1, Misses: 3, Saves: 100}, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.stats.HitRate(); got != tt.want {
				t.Errorf("HitRate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"short stays", "abc", 10, "abc"},
		{"exact stays", "abc", 3, "abc"},
		{"long cut", "abcdef", 3, "abc"},
		{"empty", "", 5, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := truncate(tt.in, tt.n); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
			}
		})
	}
}
