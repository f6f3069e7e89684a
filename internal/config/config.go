// internal/config/config.go
//
// Layered configuration for the wordle command.
//
// Precedence (lowest first):
//   1. Defaults (embedded word list, clock seed, auto color, info logging).
//   2. YAML file: the path given with --config, or ./wordle.yaml if present.
//   3. Environment (after .env has been loaded by main):
//        WORDS_FILE, WORDLE_SEED, WORDLE_COLOR, WORDLE_DAILY,
//        LOG_LEVEL, LOG_FILE, DAILY_SALT
//   4. Command-line flags, applied by the caller on the returned Config.

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file read when no path is given.
const DefaultPath = "wordle.yaml"

// Config holds every setting of the command.
type Config struct {
	WordsFile string `yaml:"words_file"` // empty: embedded list
	Seed      uint64 `yaml:"seed"`       // 0: seed from the clock
	Color     string `yaml:"color"`      // auto | always | never
	Daily     bool   `yaml:"daily"`      // pick the word of the day
	DailySalt string `yaml:"daily_salt"`
	LogLevel  string `yaml:"log_level"`
	LogFile   string `yaml:"log_file"` // empty: console only
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Color:     "auto",
		DailySalt: "local_dev_salt",
		LogLevel:  "info",
	}
}

// Load builds a Config from defaults, the YAML file at path and the process
// environment. An empty path reads DefaultPath only if it exists.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// ApplyEnv overrides fields from environment variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	str("WORDS_FILE", &c.WordsFile)
	str("WORDLE_COLOR", &c.Color)
	str("DAILY_SALT", &c.DailySalt)
	str("LOG_LEVEL", &c.LogLevel)
	str("LOG_FILE", &c.LogFile)

	if v, ok := lookup("WORDLE_SEED"); ok && v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config: WORDLE_SEED: %w", err)
		}
		c.Seed = n
	}
	if v, ok := lookup("WORDLE_DAILY"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: WORDLE_DAILY: %w", err)
		}
		c.Daily = b
	}
	return nil
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	switch strings.ToLower(c.Color) {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("config: color must be auto, always or never, got %q", c.Color)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: log_level: %w", err)
	}
	return nil
}
