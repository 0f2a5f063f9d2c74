package config

import (
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"bookshelf/src/internal/schema"
	"bookshelf/src/internal/store"
)

const (
	// DefaultPath is the optional config file looked up in the working directory.
	DefaultPath = ".shelf.yaml"
	// EnvSnapshot overrides the snapshot path from the config file.
	EnvSnapshot = "SHELF_SNAPSHOT"
)

// Config represents the application configuration.
type Config struct {
	SnapshotPath string `yaml:"snapshot_path"`
	IDPrefix     string `yaml:"id_prefix"`
	LogLevel     string `yaml:"log_level"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		SnapshotPath: store.DefaultSnapshotPath,
		IDPrefix:     schema.DefaultIDPrefix,
		LogLevel:     "info",
	}
}

// Load reads the YAML config at filePath. A missing file is not an error and
// yields Default(). Empty fields fall back to defaults, then EnvSnapshot is
// applied.
func Load(filePath string) (*Config, error) {
	cfg := Default()
	b, err := os.ReadFile(filePath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		var fileCfg Config
		if err := yaml.Unmarshal(b, &fileCfg); err != nil {
			return nil, fmt.Errorf("unable to parse YAML config file %s: %w", filePath, err)
		}
		merge(cfg, &fileCfg)
	}
	if v := strings.TrimSpace(os.Getenv(EnvSnapshot)); v != "" {
		cfg.SnapshotPath = v
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func merge(dst, src *Config) {
	dst.SnapshotPath = cmp.Or(strings.TrimSpace(src.SnapshotPath), dst.SnapshotPath)
	// An explicit empty prefix cannot be told apart from an absent one.
	if src.IDPrefix != "" {
		dst.IDPrefix = src.IDPrefix
	}
	dst.LogLevel = strings.ToLower(cmp.Or(strings.TrimSpace(src.LogLevel), dst.LogLevel))
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.SnapshotPath) == "" {
		return errors.New("snapshot_path is missing")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level: %s", c.LogLevel)
	}
	return nil
}
