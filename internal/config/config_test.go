package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// writeConfig writes a config file into a fake home directory and points
// HOME at it so Load() picks it up.
func writeConfig(t *testing.T, content string) {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "recall")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()

	exp, ok := cfg.Caches[CacheExploration]
	if !ok {
		t.Fatal("Default() missing exploration cache")
	}
	if exp.TTL != "1h" {
		t.Errorf("exploration ttl = %q, want 1h", exp.TTL)
	}
	if exp.MaxEntries != 50 {
		t.Errorf("exploration max_entries = %d, want 50", exp.MaxEntries)
	}

	wf, ok := cfg.Caches[CacheWebFetch]
	if !ok {
		t.Fatal("Default() missing webfetch cache")
	}
	if wf.TTL != "15m" {
		t.Errorf("webfetch ttl = %q, want 15m", wf.TTL)
	}
	if wf.MaxEntries != 100 {
		t.Errorf("webfetch max_entries = %d, want 100", wf.MaxEntries)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg.Caches) != 2 {
		t.Errorf("Load() caches = %d, want 2 defaults", len(cfg.Caches))
	}
}

func TestLoad_PartialOverride(t *testing.T) {
	writeConfig(t, `
[caches.exploration]
ttl = "2h"
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	exp := cfg.Caches[CacheExploration]
	if exp.TTL != "2h" {
		t.Errorf("ttl = %q, want 2h", exp.TTL)
	}
	// Untouched fields keep their defaults.
	if exp.MaxEntries != 50 {
		t.Errorf("max_entries = %d, want default 50", exp.MaxEntries)
	}
	if exp.Threshold != 0.6 {
		t.Errorf("similarity_threshold = %v, want default 0.6", exp.Threshold)
	}
}

func TestLoad_UserDefinedCache(t *testing.T) {
	writeConfig(t, `
[caches.builds]
ttl = "30m"
max_entries = 20
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	b, ok := cfg.Caches["builds"]
	if !ok {
		t.Fatal("user-defined cache not loaded")
	}
	if b.TTL != "30m" || b.MaxEntries != 20 {
		t.Errorf("builds cache = %+v", b)
	}
	if len(cfg.Caches) != 3 {
		t.Errorf("caches = %d, want 3", len(cfg.Caches))
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	writeConfig(t, `[caches.exploration`)

	if _, err := Load(); err == nil {
		t.Error("Load() with invalid TOML should return error")
	}
}

func TestLoad_InvalidTTL(t *testing.T) {
	writeConfig(t, `
[caches.exploration]
ttl = "soon"
`)

	if _, err := Load(); err == nil {
		t.Error("Load() with unparseable ttl should return error")
	}
}

func TestLoad_InvalidThreshold(t *testing.T) {
	writeConfig(t, `
[caches.exploration]
similarity_threshold = 1.5
`)

	_, err := Load()
	if err == nil {
		t.Fatal("Load() with out-of-range threshold should return error")
	}
	if !strings.Contains(err.Error(), "similarity_threshold") {
		t.Errorf("error = %v, want mention of similarity_threshold", err)
	}
}

func TestLoad_RelativeDataDir(t *testing.T) {
	writeConfig(t, `data_dir = "./cache"`)

	if _, err := Load(); err == nil {
		t.Error("Load() with relative data_dir should return error")
	}
}

func TestLoad_ExpandsDataDir(t *testing.T) {
	writeConfig(t, `data_dir = "~/recall-data"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	home := os.Getenv("HOME")
	if want := filepath.Join(home, "recall-data"); cfg.DataDir != want {
		t.Errorf("DataDir = %q, want %q", cfg.DataDir, want)
	}
}

func TestCacheNames(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Caches["builds"] = CacheConfig{}

	want := []string{"builds", "exploration", "webfetch"}
	got := cfg.CacheNames()
	if len(got) != len(want) {
		t.Fatalf("CacheNames() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("CacheNames()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestServiceConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("RECALL_DIR", dir)

	cfg := Default()

	sc, err := cfg.ServiceConfig(CacheWebFetch)
	if err != nil {
		t.Fatalf("ServiceConfig() error = %v", err)
	}
	if want := filepath.Join(dir, "webfetch.json"); sc.Path != want {
		t.Errorf("Path = %q, want %q", sc.Path, want)
	}
	if sc.TTL != 15*time.Minute {
		t.Errorf("TTL = %v, want 15m", sc.TTL)
	}
	if sc.MaxEntries != 100 {
		t.Errorf("MaxEntries = %d, want 100", sc.MaxEntries)
	}
	if sc.Threshold != 0.6 {
		t.Errorf("Threshold = %v, want 0.6", sc.Threshold)
	}
}

func TestServiceConfig_DataDirOverride(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.DataDir = "/var/lib/recall"

	sc, err := cfg.ServiceConfig(CacheExploration)
	if err != nil {
		t.Fatalf("ServiceConfig() error = %v", err)
	}
	if want := filepath.Join("/var/lib/recall", "exploration.json"); sc.Path != want {
		t.Errorf("Path = %q, want %q", sc.Path, want)
	}
}

func TestServiceConfig_UnknownCache(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if _, err := cfg.ServiceConfig("nope"); err == nil {
		t.Error("ServiceConfig() with unknown name should return error")
	}
}

func TestServiceConfig_DefaultFile(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.DataDir = "/data"
	cfg.Caches["builds"] = CacheConfig{TTL: "1h"}

	sc, err := cfg.ServiceConfig("builds")
	if err != nil {
		t.Fatalf("ServiceConfig() error = %v", err)
	}
	if want := filepath.Join("/data", "builds.json"); sc.Path != want {
		t.Errorf("Path = %q, want %q", sc.Path, want)
	}
}

func TestInit(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path, err := Init()
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "[caches.exploration]") {
		t.Error("sample config missing exploration section")
	}

	// The sample must parse and validate.
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() of sample config error = %v", err)
	}
	if cfg.Caches[CacheExploration].TTL != "1h" {
		t.Errorf("sample exploration ttl = %q", cfg.Caches[CacheExploration].TTL)
	}

	// Second init refuses to overwrite.
	if _, err := Init(); err == nil {
		t.Error("Init() over existing config should return error")
	}
}
