// Package config loads application configuration from a YAML file, a .env
// file and environment variables, in increasing order of precedence.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is used when CONFIG_PATH is not set.
const DefaultPath = "configs/config.yaml"

// Config holds all application configuration.
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Marketstack struct {
		BaseURL   string        `yaml:"base_url"`
		APIPrefix string        `yaml:"api_prefix"`
		AccessKey string        `yaml:"access_key"`
		Timeout   time.Duration `yaml:"timeout"`
	} `yaml:"marketstack"`
	Chart struct {
		Symbol   string `yaml:"symbol"`
		DateFrom string `yaml:"date_from"`
		Limit    int    `yaml:"limit"`
		// RefreshLimit caps manual refreshes per minute; negative disables the cap.
		RefreshLimit int `yaml:"refresh_limit"`
	} `yaml:"chart"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// Path returns the config file path, honouring CONFIG_PATH.
func Path() string {
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		return v
	}
	return DefaultPath
}

// Load reads config from a YAML file, then applies .env and environment
// variable overrides and fills defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug(".env not found; using process environment")
	}

	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("MARKETSTACK_BASE_URL"); v != "" {
		c.Marketstack.BaseURL = v
	}
	if v := os.Getenv("MARKETSTACK_API_PREFIX"); v != "" {
		c.Marketstack.APIPrefix = v
	}
	if v := os.Getenv("MARKETSTACK_ACCESS_KEY"); v != "" {
		c.Marketstack.AccessKey = v
	}
	if v := os.Getenv("MARKETSTACK_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("MARKETSTACK_TIMEOUT: %w", err)
		}
		c.Marketstack.Timeout = d
	}
	if v := os.Getenv("CHART_SYMBOL"); v != "" {
		c.Chart.Symbol = v
	}
	if v := os.Getenv("CHART_DATE_FROM"); v != "" {
		c.Chart.DateFrom = v
	}
	if v := os.Getenv("CHART_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("CHART_LIMIT: %w", err)
		}
		c.Chart.Limit = n
	}
	if v := os.Getenv("CHART_REFRESH_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("CHART_REFRESH_LIMIT: %w", err)
		}
		c.Chart.RefreshLimit = n
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Marketstack.APIPrefix == "" {
		c.Marketstack.APIPrefix = "/api"
	}
	if c.Marketstack.Timeout < 0 {
		c.Marketstack.Timeout = 0
	}
	if c.Chart.Symbol == "" {
		c.Chart.Symbol = "AAPL"
	}
	if c.Chart.DateFrom == "" {
		c.Chart.DateFrom = "2020-01-01"
	}
	if c.Chart.Limit == 0 {
		c.Chart.Limit = 1000
	}
	if c.Chart.RefreshLimit == 0 {
		c.Chart.RefreshLimit = 6
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate checks that all required fields are set and well-formed.
// An empty access key is allowed; the upstream rejects such requests.
func (c *Config) Validate() error {
	if c.Marketstack.BaseURL == "" {
		return fmt.Errorf("marketstack.base_url is required")
	}
	if _, err := time.Parse("2006-01-02", c.Chart.DateFrom); err != nil {
		return fmt.Errorf("chart.date_from must be YYYY-MM-DD: %w", err)
	}
	if c.Chart.Limit < 0 {
		return fmt.Errorf("chart.limit must not be negative")
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// ParseLevel converts a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("log.level %q is not one of debug, info, warn, error", s)
}
