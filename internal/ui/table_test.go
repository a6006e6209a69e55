package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/raphi011/recall/internal/cache"
)

func TestRenderTable(t *testing.T) {
	t.Parallel()

	out := RenderTable([]string{"A", "B"}, [][]string{{"one", "two"}, {"three", "four"}})
	for _, want := range []string{"A", "B", "one", "four"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderTable() missing %q in:\n%s", want, out)
		}
	}
}

func TestRenderTable_Empty(t *testing.T) {
	t.Parallel()

	if out := RenderTable([]string{"A"}, nil); out != "" {
		t.Errorf("RenderTable() with no rows = %q, want empty", out)
	}
}

func TestEntriesTable(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	entries := []*cache.Entry{
		{Query: "find auth handlers", Scope: "/proj", CreatedAt: now.Add(-5 * time.Minute).Unix(), HitCount: 3},
	}

	out := EntriesTable(entries, now)
	for _, want := range []string{"QUERY", "find auth handlers", "5m", "3", "/proj"} {
		if !strings.Contains(out, want) {
			t.Errorf("EntriesTable() missing %q in:\n%s", want, out)
		}
	}
}

func TestFormatAge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		d    time.Duration
		want string
	}{
		{30 * time.Second, "30s"},
		{90 * time.Second, "1m"},
		{45 * time.Minute, "45m"},
		{3 * time.Hour, "3h"},
		{50 * time.Hour, "2d"},
	}

	for _, tt := range tests {
		if got := FormatAge(tt.d); got != tt.want {
			t.Errorf("FormatAge(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestClip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		s    string
		n    int
		want string
	}{
		{"short unchanged", "abc", 10, "abc"},
		{"long clipped", "abcdefghij", 5, "abcd…"},
		{"newlines flattened", "a\nb", 10, "a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := clip(tt.s, tt.n); got != tt.want {
				t.Errorf("clip(%q, %d) = %q, want %q", tt.s, tt.n, got, tt.want)
			}
		})
	}
}
