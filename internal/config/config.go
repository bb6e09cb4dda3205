package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	theme "github.com/goliatone/go-theme"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-pairfinder/pkg/controller"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "PAIRFINDER_"

// RateLimitConfig indicates how many requests are allowed within a given interval.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

// UnmarshalYAML accepts the "<requests>/<unit>" shorthand.
func (r *RateLimitConfig) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParseRateLimit(raw)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// LogConfig selects the zap preset and level.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ThemeConfig feeds the page theme.
type ThemeConfig struct {
	Name    string            `yaml:"name"`
	Variant string            `yaml:"variant"`
	Tokens  map[string]string `yaml:"tokens"`
}

// Config aggregates the settings of every binary.
type Config struct {
	Endpoint  string          `yaml:"endpoint"`
	Listen    string          `yaml:"listen"`
	Timeout   time.Duration   `yaml:"timeout"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Log       LogConfig       `yaml:"log"`
	Theme     ThemeConfig     `yaml:"theme"`
}

// Default returns the configuration used when nothing overrides it. The
// endpoint is left at the placeholder so searches are refused until it is set.
func Default() Config {
	return Config{
		Endpoint:  controller.UnsetEndpoint,
		Listen:    ":8080",
		RateLimit: RateLimitConfig{Requests: 30, Interval: time.Minute},
		Log:       LogConfig{Level: "info", Format: "json"},
	}
}

// Options controls where Load looks for settings.
type Options struct {
	// File is an optional YAML file. A missing file is an error only when
	// the path was set explicitly.
	File string
	// EnvFiles are loaded with godotenv before reading the environment.
	// Missing files are ignored. Values already in the environment win.
	EnvFiles []string
	// Lookup replaces os.LookupEnv, mainly for tests.
	Lookup func(string) (string, bool)
}

// Load builds a Config from defaults, then the YAML file, then the
// environment.
func Load(opts Options) (Config, error) {
	cfg := Default()

	for _, file := range opts.EnvFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("config: load env file %s: %w", file, err)
		}
	}

	if opts.File != "" {
		data, err := os.ReadFile(opts.File)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", opts.File, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", opts.File, err)
		}
	}

	lookup := opts.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if err := applyEnv(&cfg, lookup); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		val, ok := lookup(EnvPrefix + key)
		val = strings.TrimSpace(val)
		return val, ok && val != ""
	}

	if v, ok := get("ENDPOINT"); ok {
		cfg.Endpoint = v
	}
	if v, ok := get("LISTEN"); ok {
		cfg.Listen = v
	}
	if v, ok := get("TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: invalid %sTIMEOUT: %w", EnvPrefix, err)
		}
		cfg.Timeout = d
	}
	if v, ok := get("RATE_LIMIT"); ok {
		rl, err := ParseRateLimit(v)
		if err != nil {
			return fmt.Errorf("config: invalid %sRATE_LIMIT: %w", EnvPrefix, err)
		}
		cfg.RateLimit = rl
	}
	if v, ok := get("LOG_LEVEL"); ok {
		cfg.Log.Level = v
	}
	if v, ok := get("LOG_FORMAT"); ok {
		cfg.Log.Format = v
	}
	return nil
}

// Validate checks values that would otherwise fail later at startup. An
// unset endpoint is valid; it is reported per search instead.
func (c Config) Validate() error {
	if c.Timeout < 0 {
		return fmt.Errorf("config: timeout must not be negative")
	}
	if c.RateLimit.Requests <= 0 || c.RateLimit.Interval <= 0 {
		return fmt.Errorf("config: rate limit must be positive")
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config: unsupported log format %q", c.Log.Format)
	}
	return nil
}

// Controller returns the controller configuration.
func (c Config) Controller() controller.Config {
	return controller.Config{Endpoint: c.Endpoint}
}

// RendererTheme converts the theme settings for the HTML renderer. It returns
// nil when no theme is configured.
func (c Config) RendererTheme() *theme.RendererConfig {
	t := c.Theme
	if t.Name == "" && t.Variant == "" && len(t.Tokens) == 0 {
		return nil
	}
	return &theme.RendererConfig{
		Theme:   t.Name,
		Variant: t.Variant,
		Tokens:  t.Tokens,
	}
}

// ParseRateLimit parses "<requests>/<unit>" such as "30/min".
func ParseRateLimit(value string) (RateLimitConfig, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return RateLimitConfig{}, fmt.Errorf("expected format <requests>/<interval>, got %q", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || requests <= 0 {
		return RateLimitConfig{}, fmt.Errorf("invalid request count: %v", parts[0])
	}

	unit := strings.ToLower(strings.TrimSpace(parts[1]))
	var interval time.Duration
	switch unit {
	case "s", "sec", "second", "seconds":
		interval = time.Second
	case "m", "min", "minute", "minutes":
		interval = time.Minute
	case "h", "hr", "hour", "hours":
		interval = time.Hour
	default:
		return RateLimitConfig{}, fmt.Errorf("unsupported interval unit: %s", unit)
	}

	return RateLimitConfig{Requests: requests, Interval: interval}, nil
}
