package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/raphi011/recall/internal/cache"
)

// newService resolves a cache name against the loaded config.
func newService(name string) (*cache.Service, error) {
	sc, err := cfg.ServiceConfig(name)
	if err != nil {
		return nil, err
	}
	return cache.New(sc), nil
}

// defaultScope returns the working directory, the scope exploration
// queries partition on.
func defaultScope() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return wd, nil
}

// resolveScope returns the --scope flag value, falling back to the
// working directory.
func resolveScope(scope string) (string, error) {
	if scope != "" {
		return scope, nil
	}
	return defaultScope()
}

// readStdinIfPiped reads all content from stdin if it's piped (not a TTY).
// Returns empty string and nil if stdin is a TTY (interactive).
func readStdinIfPiped() (string, error) {
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return "", nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}
