// Package config loads recall configuration from ~/.config/recall/config.toml.
//
// Every cache instance is a [caches.NAME] section; the built-in
// "exploration" and "webfetch" caches exist with sensible defaults even
// without a config file, and users can declare additional caches by
// adding sections.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/raphi011/recall/internal/cache"
	"github.com/raphi011/recall/internal/storage"
)

// Built-in cache instance names.
const (
	CacheExploration = "exploration"
	CacheWebFetch    = "webfetch"
)

// CacheConfig holds the per-instance knobs from a [caches.NAME] section.
// Zero fields fall back to the instance defaults.
type CacheConfig struct {
	TTL            string  `toml:"ttl"`                  // duration string, e.g. "1h" or "15m"
	MaxEntries     int     `toml:"max_entries"`          // eviction bound
	MaxContentSize int     `toml:"max_content_size"`     // bytes; larger results are not cached
	Threshold      float64 `toml:"similarity_threshold"` // strict fuzzy-match floor
	File           string  `toml:"file"`                 // snapshot filename within the data dir
}

// Config holds the recall configuration.
type Config struct {
	DataDir string                 `toml:"data_dir"` // overrides ~/.recall
	Caches  map[string]CacheConfig `toml:"caches"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Caches: map[string]CacheConfig{
			CacheExploration: {
				TTL:            "1h",
				MaxEntries:     50,
				MaxContentSize: cache.DefaultMaxContentSize,
				Threshold:      cache.DefaultThreshold,
				File:           "exploration.json",
			},
			CacheWebFetch: {
				TTL:            "15m",
				MaxEntries:     100,
				MaxContentSize: cache.DefaultMaxContentSize,
				Threshold:      cache.DefaultThreshold,
				File:           "webfetch.json",
			},
		},
	}
}

// Path returns the path to the config file.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "recall", "config.toml"), nil
}

// Load reads the config file and merges it over Default().
// Returns Default() if the file doesn't exist (no error).
// Returns an error only if the file exists but is invalid.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded Config
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg := merge(Default(), loaded)

	if err := cfg.validate(); err != nil {
		return Default(), err
	}

	// Expand ~ in data_dir (shell doesn't expand in config files)
	if cfg.DataDir != "" {
		expanded, err := expandPath(cfg.DataDir)
		if err != nil {
			return Default(), fmt.Errorf("expand data_dir: %w", err)
		}
		cfg.DataDir = expanded
	}

	return cfg, nil
}

// merge layers user settings over the defaults. Per-cache sections merge
// field-wise so a section only overriding ttl keeps the default bounds.
func merge(base, override Config) Config {
	if override.DataDir != "" {
		base.DataDir = override.DataDir
	}
	for name, oc := range override.Caches {
		bc := base.Caches[name] // zero value for user-defined caches
		if oc.TTL != "" {
			bc.TTL = oc.TTL
		}
		if oc.MaxEntries != 0 {
			bc.MaxEntries = oc.MaxEntries
		}
		if oc.MaxContentSize != 0 {
			bc.MaxContentSize = oc.MaxContentSize
		}
		if oc.Threshold != 0 {
			bc.Threshold = oc.Threshold
		}
		if oc.File != "" {
			bc.File = oc.File
		}
		base.Caches[name] = bc
	}
	return base
}

// validate checks every cache section for parseable and sane values.
func (c Config) validate() error {
	if err := validatePath(c.DataDir, "data_dir"); err != nil {
		return err
	}
	for name, cc := range c.Caches {
		if cc.TTL != "" {
			if _, err := time.ParseDuration(cc.TTL); err != nil {
				return fmt.Errorf("invalid ttl %q for cache %q: %w", cc.TTL, name, err)
			}
		}
		if cc.MaxEntries < 0 {
			return fmt.Errorf("invalid max_entries %d for cache %q: must be positive", cc.MaxEntries, name)
		}
		if cc.MaxContentSize < 0 {
			return fmt.Errorf("invalid max_content_size %d for cache %q: must be positive", cc.MaxContentSize, name)
		}
		if cc.Threshold < 0 || cc.Threshold >= 1 {
			return fmt.Errorf("invalid similarity_threshold %v for cache %q: must be in [0, 1)", cc.Threshold, name)
		}
	}
	return nil
}

// CacheNames returns the configured cache names, sorted.
func (c Config) CacheNames() []string {
	names := make([]string, 0, len(c.Caches))
	for name := range c.Caches {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ServiceConfig resolves a cache name to a cache.Config, joining the
// snapshot filename onto the data directory.
func (c Config) ServiceConfig(name string) (cache.Config, error) {
	cc, ok := c.Caches[name]
	if !ok {
		return cache.Config{}, fmt.Errorf("unknown cache %q (configured: %v)", name, c.CacheNames())
	}

	dir := c.DataDir
	if dir == "" {
		d, err := storage.RecallDir()
		if err != nil {
			return cache.Config{}, fmt.Errorf("resolve data dir: %w", err)
		}
		dir = d
	}

	var ttl time.Duration
	if cc.TTL != "" {
		d, err := time.ParseDuration(cc.TTL)
		if err != nil {
			return cache.Config{}, fmt.Errorf("invalid ttl %q for cache %q: %w", cc.TTL, name, err)
		}
		ttl = d
	}

	file := cc.File
	if file == "" {
		file = name + ".json"
	}

	return cache.Config{
		Path:           filepath.Join(dir, file),
		TTL:            ttl,
		MaxEntries:     cc.MaxEntries,
		MaxContentSize: cc.MaxContentSize,
		Threshold:      cc.Threshold,
	}, nil
}

const sampleConfig = `# recall configuration
#
# data_dir = "~/.recall"

[caches.exploration]
ttl = "1h"
max_entries = 50
max_content_size = 10240
similarity_threshold = 0.6

[caches.webfetch]
ttl = "15m"
max_entries = 100
max_content_size = 10240
similarity_threshold = 0.6
`

// Init writes a sample config file, failing if one already exists.
// Returns the path it wrote to.
func Init() (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(path); err == nil {
		return path, fmt.Errorf("config file already exists at %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return "", fmt.Errorf("write config file: %w", err)
	}
	return path, nil
}

// validatePath checks that the path is absolute or starts with ~.
// Returns an error if the path is relative (like "." or "..").
func validatePath(path, fieldName string) error {
	if path == "" {
		return nil // Empty is allowed (means not configured)
	}
	if path[0] == '~' {
		return nil
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}
