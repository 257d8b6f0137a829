// Package config provides hierarchical configuration management for nextver
// using koanf. Configuration is loaded with priority: environment variables >
// project config (.nextver.yml) > user config (~/.config/nextver/config.yml)
// > defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/raveheart1/nextver/internal/version"
)

// envPrefix namespaces environment overrides, e.g. NEXTVER_SCHEME=calver.
const envPrefix = "NEXTVER_"

// Configuration holds the nextver settings.
type Configuration struct {
	// Scheme selects the versioning convention: "semver" or "calver".
	Scheme string `koanf:"scheme"`

	// TagPrefix is stripped from release tags when parsing and prepended
	// when formatting. Defaults to "v".
	TagPrefix string `koanf:"tag_prefix"`

	// IncludeHash appends short commit hashes to changelog entries.
	IncludeHash bool `koanf:"include_hash"`

	// IgnorePatterns lists substrings; commits whose message contains one
	// are excluded from version resolution and the changelog.
	IgnorePatterns []string `koanf:"ignore_patterns"`

	// Strict fails the run on non-conventional commits instead of
	// classifying them as "other".
	Strict bool `koanf:"strict"`
}

// VersionScheme returns the validated scheme.
func (c *Configuration) VersionScheme() (version.Scheme, error) {
	return version.ParseScheme(c.Scheme)
}

// Load loads configuration from user, project, and environment sources.
// Priority: environment variables > project config > user config > defaults.
// projectConfigPath overrides the default project config location when
// non-empty (used by the --config flag and tests).
func Load(projectConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	loadDefaults(k)

	if path, err := UserConfigPath(); err == nil && fileExists(path) {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading user config %s: %w", path, err)
		}
	}

	projectPath := projectConfigPath
	if projectPath == "" {
		projectPath = ProjectConfigPath()
	}
	if fileExists(projectPath) {
		if err := k.Load(file.Provider(projectPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading project config %s: %w", projectPath, err)
		}
	} else if projectConfigPath != "" {
		return nil, fmt.Errorf("config file %s does not exist", projectConfigPath)
	}

	if err := k.Load(env.Provider(envPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("loading environment config: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if _, err := cfg.VersionScheme(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// envTransform maps NEXTVER_TAG_PREFIX to tag_prefix. Nested keys would use
// a double underscore, though the current schema is flat.
func envTransform(s string) string {
	s = strings.TrimPrefix(s, envPrefix)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "__", ".")
}

// UserConfigPath returns the XDG-compliant user config location.
func UserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".config", "nextver", "config.yml"), nil
}

// ProjectConfigPath returns the default project config location relative to
// the working directory.
func ProjectConfigPath() string {
	return ".nextver.yml"
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
