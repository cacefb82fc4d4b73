// Package config manages twmerge configuration files and their locations.
//
// Custom rules live in YAML rule files. The global file is
// ~/.twmerge/rules.yaml; a project can carry its own .twmerge.yaml, found by
// walking up from the working directory. Locations can be overridden with
// environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// EnvRoot overrides the global configuration directory.
	EnvRoot = "TWMERGE_ROOT"

	// EnvRules points at a rule file, bypassing discovery.
	EnvRules = "TWMERGE_RULES"

	// LocalRulesFile is the project rule file name.
	LocalRulesFile = ".twmerge.yaml"
)

// Paths contains the filesystem paths used by twmerge.
type Paths struct {
	// Root is the base directory for global configuration (default: ~/.twmerge)
	Root string

	// Rules is the path to the global rule file
	Rules string
}

// DefaultPaths returns the default paths for twmerge.
// Paths can be overridden with environment variables:
// - TWMERGE_ROOT: Override the root directory
func DefaultPaths() (*Paths, error) {
	root := os.Getenv(EnvRoot)
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		root = filepath.Join(home, ".twmerge")
	}

	return &Paths{
		Root:  root,
		Rules: filepath.Join(root, "rules.yaml"),
	}, nil
}

// FindRulesFile locates the rule file to use for start, in order:
// TWMERGE_RULES, the nearest .twmerge.yaml in start or a parent directory,
// then the global rule file if it exists. It returns "" when there is none.
func FindRulesFile(start string) (string, error) {
	if p := os.Getenv(EnvRules); p != "" {
		return p, nil
	}

	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", start, err)
	}
	for {
		candidate := filepath.Join(dir, LocalRulesFile)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}
	if info, err := os.Stat(paths.Rules); err == nil && !info.IsDir() {
		return paths.Rules, nil
	}

	return "", nil
}
