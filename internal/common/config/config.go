package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported config format: use .yaml, .yml or .toml")
	ErrUnknownKeys       = errors.New("unknown config keys")
	ErrInvalidTimeout    = errors.New("timeout must not be negative")
)

// Config is the optional user configuration. Every field has a zero value
// meaning "use the built-in default of the running binary".
type Config struct {
	DNF      DNFConfig     `yaml:"dnf" toml:"dnf"`
	Flatpak  FlatpakConfig `yaml:"flatpak" toml:"flatpak"`
	Timeout  time.Duration `yaml:"timeout" toml:"timeout"`
	Parallel bool          `yaml:"parallel" toml:"parallel"`
	LogFile  string        `yaml:"log_file" toml:"log_file"`
}

// DNFConfig holds DNF settings
type DNFConfig struct {
	Binary  string `yaml:"binary" toml:"binary"`
	Refresh *bool  `yaml:"refresh" toml:"refresh"`
}

// FlatpakConfig holds Flatpak settings
type FlatpakConfig struct {
	Binary   string `yaml:"binary" toml:"binary"`
	Fallback *bool  `yaml:"fallback" toml:"fallback"`
}

// ConfigPaths returns all possible config file paths in priority order
// 1. $XDG_CONFIG_HOME/update-status/config.yaml
// 2. $XDG_CONFIG_HOME/update-status/config.toml
// 3. ~/.update-status/config.yaml (legacy fallback)
func ConfigPaths() ([]string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}

	return []string{
		filepath.Join(xdgConfig, "update-status", "config.yaml"),
		filepath.Join(xdgConfig, "update-status", "config.toml"),
		filepath.Join(home, ".update-status", "config.yaml"),
	}, nil
}

// FindConfigPath returns the first existing config file path, or "" if there is none
func FindConfigPath() (string, error) {
	paths, err := ConfigPaths()
	if err != nil {
		return "", err
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}

// Load reads the first available config file. A missing file is not an
// error: an empty Config is returned and nothing is written to disk.
func Load() (*Config, error) {
	path, err := FindConfigPath()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return &Config{}, nil
	}
	return LoadFrom(path)
}

// LoadFrom reads configuration from a specific file path.
// The format is chosen by extension; unknown keys are rejected.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = decodeYAML(data, &cfg)
	case ".toml":
		err = decodeTOML(data, &cfg)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		// empty or comment-only file
		if errors.Is(err, io.EOF) {
			return nil
		}
		if strings.Contains(err.Error(), "not found in type") {
			return errors.Join(ErrUnknownKeys, err)
		}
		return err
	}
	return nil
}

func decodeTOML(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return fmt.Errorf("%w: %s", ErrUnknownKeys, strings.Join(keys, ", "))
	}
	return nil
}

// Validate checks field values
func (c *Config) Validate() error {
	if c.Timeout < 0 {
		return ErrInvalidTimeout
	}
	return nil
}

// TimeoutOr returns the configured timeout, or def when none is set
func (c *Config) TimeoutOr(def time.Duration) time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return def
}

// DNFRefresh returns whether dnf should refresh metadata, or def when unset
func (c *Config) DNFRefresh(def bool) bool {
	if c.DNF.Refresh != nil {
		return *c.DNF.Refresh
	}
	return def
}

// FlatpakFallback returns whether the dry-run fallback is enabled, or def when unset
func (c *Config) FlatpakFallback(def bool) bool {
	if c.Flatpak.Fallback != nil {
		return *c.Flatpak.Fallback
	}
	return def
}
