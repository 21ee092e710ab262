// Package config loads navconfig definition files.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/navconfig/internal/foundation/errors"
	"git.home.luguber.info/inful/navconfig/internal/logfields"
	"git.home.luguber.info/inful/navconfig/internal/site"
)

// SchemaVersion is the only definition file version understood.
const SchemaVersion = "1.0"

// Config is a navconfig definition file.
type Config struct {
	Version string          `yaml:"version"`
	Site    site.Definition `yaml:"site"`
	// Icons overrides the recognised social icon identifiers.
	Icons   []string      `yaml:"icons,omitempty"`
	Package PackageConfig `yaml:"package,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Watch   WatchConfig   `yaml:"watch,omitempty"`

	// BaseDir is the directory relative paths are resolved against.
	BaseDir string `yaml:"-"`
}

// PackageConfig locates the version string shown in the top navigation.
type PackageConfig struct {
	// Manifest is the package.json the version is read from.
	Manifest string `yaml:"manifest,omitempty"`
	// Version, when set, is used instead of the manifest.
	Version string `yaml:"version,omitempty"`
}

// WatchConfig tunes the watch command.
type WatchConfig struct {
	Debounce    string `yaml:"debounce,omitempty"`
	MetricsAddr string `yaml:"metrics_addr,omitempty"`
}

// DebounceDuration parses Debounce; defaults have already been applied by Load.
func (w WatchConfig) DebounceDuration() time.Duration {
	d, err := time.ParseDuration(w.Debounce)
	if err != nil || d <= 0 {
		return defaultDebounce
	}
	return d
}

// Load reads, expands, normalizes and defaults the definition file at path.
// Navigation content is not validated here; site.Build does that.
func Load(path string) (*Config, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, ferrors.FileSystemError("failed to resolve config path").WithCause(err).Build()
	}
	dir := filepath.Dir(absPath)

	if envFile, err := loadEnvFiles(dir); err != nil {
		slog.Warn("Failed to load env file", logfields.Error(err))
	} else if envFile != "" {
		slog.Debug("Loaded environment variables", logfields.ConfigPath(envFile))
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ferrors.NotFoundError("configuration file not found").
				WithContext("path", path).Build()
		}
		return nil, ferrors.FileSystemError("failed to read config file").
			WithCause(err).WithContext("path", path).Build()
	}

	cfg, err := Parse(bytes.NewReader([]byte(os.ExpandEnv(string(data)))))
	if err != nil {
		return nil, err
	}
	cfg.BaseDir = dir
	return cfg, nil
}

// Parse decodes a definition from r and applies normalization and defaults.
// Unknown keys are rejected.
func Parse(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ferrors.ConfigError("configuration file is empty").Build()
		}
		return nil, ferrors.ConfigError("failed to parse configuration").WithCause(err).Build()
	}
	if cfg.Version != SchemaVersion {
		return nil, ferrors.ConfigError("unsupported configuration version").
			WithContext("version", cfg.Version).
			WithContext("expected", SchemaVersion).
			Build()
	}

	if err := normalize(&cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

// Resolve returns p unchanged when absolute, otherwise joined with BaseDir.
func (c *Config) Resolve(p string) string {
	if p == "" || filepath.IsAbs(p) || c.BaseDir == "" {
		return p
	}
	return filepath.Join(c.BaseDir, p)
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
