package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"nkeyid/internal/domain"
)

const (
	// EnvLogLevel overrides the configured log level.
	EnvLogLevel = "NKEYID_LOG_LEVEL"
	// EnvKind overrides the configured default kind.
	EnvKind = "NKEYID_KIND"

	configDirName  = ".nkeyid"
	configFileName = "config.yaml"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	LogLevel string    // logrus level name, e.g. "warn"
	Kind     string    // default kind for commands that create keys
	Rand     io.Reader // optional; defaults to crypto/rand.Reader
	LogOut   io.Writer // optional; defaults to os.Stderr
}

// fileConfig is the on-disk YAML shape.
type fileConfig struct {
	LogLevel string `yaml:"logLevel"`
	Kind     string `yaml:"kind"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{LogLevel: "warn", Kind: "user"}
}

// DefaultConfigPath is $HOME/.nkeyid/config.yaml.
func DefaultConfigPath() (string, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configDirName, configFileName), nil
}

// LoadConfig merges the YAML file at path (or the default path when empty)
// and environment overrides onto DefaultConfig. A missing default file is
// not an error; a missing explicit file is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		p, err := DefaultConfigPath()
		if err != nil {
			return cfg, err
		}
		path = p
	}

	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist) && !explicit:
	case err != nil:
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	default:
		var fc fileConfig
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
		merge(&cfg, fc)
	}

	applyEnv(&cfg)
	return cfg, cfg.Validate()
}

// Validate checks that the level and kind parse.
func (c Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := domain.ParseKind(c.Kind); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// DefaultKind returns the parsed default kind.
func (c Config) DefaultKind() (domain.Kind, error) { return domain.ParseKind(c.Kind) }

func merge(dst *Config, src fileConfig) {
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
	if src.Kind != "" {
		dst.Kind = src.Kind
	}
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvKind); v != "" {
		cfg.Kind = v
	}
}
