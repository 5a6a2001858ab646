package config

import (
	"encoding/json"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/Lumos-Labs-HQ/winegen/internal/dataset"
	"github.com/spf13/viper"
)

const FileName = "winegen.config.json"

type Config struct {
	Count       int            `json:"count" mapstructure:"count"`
	Seed        int64          `json:"seed" mapstructure:"seed"`
	OutputDir   string         `json:"output_dir" mapstructure:"output_dir"`
	Format      string         `json:"format" mapstructure:"format"`
	Delimiter   string         `json:"delimiter" mapstructure:"delimiter"`
	Batch       int            `json:"batch" mapstructure:"batch"`
	Recreate    bool           `json:"recreate" mapstructure:"recreate"`
	MetricsFile string         `json:"metrics_file,omitempty" mapstructure:"metrics_file"`
	Database    Database       `json:"database" mapstructure:"database"`
	Log         Log            `json:"log" mapstructure:"log"`
	Bounds      dataset.Bounds `json:"bounds" mapstructure:"bounds"`
}

type Database struct {
	Provider string `json:"provider" mapstructure:"provider"`
	URLEnv   string `json:"url_env" mapstructure:"url_env"`
}

type Log struct {
	Level       string `json:"level" mapstructure:"level"`
	Environment string `json:"environment" mapstructure:"environment"`
}

func DefaultConfig() *Config {
	return &Config{
		Count:     1000,
		OutputDir: "data",
		Format:    "csv",
		Delimiter: "|",
		Batch:     500,
		Database: Database{
			Provider: "postgresql",
			URLEnv:   "DATABASE_URL",
		},
		Log: Log{
			Level:       "info",
			Environment: "development",
		},
		Bounds: dataset.DefaultBounds(),
	}
}

// Load decodes viper's merged settings over DefaultConfig, so keys missing
// from the file keep their defaults.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Database.Provider == "" {
		cfg.Database.Provider = "postgresql"
	}
	if cfg.Database.URLEnv == "" {
		cfg.Database.URLEnv = "DATABASE_URL"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "data"
	}

	return cfg, nil
}

func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
	}
	return dbURL, nil
}

// DelimiterRune returns the configured CSV delimiter as a single rune.
func (c *Config) DelimiterRune() (rune, error) {
	r, size := utf8.DecodeRuneInString(c.Delimiter)
	if size == 0 || size != len(c.Delimiter) {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", c.Delimiter)
	}
	if r == '\n' || r == '\r' || r == '"' || r == utf8.RuneError {
		return 0, fmt.Errorf("invalid delimiter %q", c.Delimiter)
	}
	return r, nil
}

func (c *Config) Validate() error {
	supportedProviders := []string{"postgresql", "postgres", "mysql", "sqlite", "sqlite3"}
	supported := false
	for _, provider := range supportedProviders {
		if c.Database.Provider == provider {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported database provider: %s. Supported providers: %v", c.Database.Provider, supportedProviders)
	}

	if c.Format != "csv" && c.Format != "json" {
		return fmt.Errorf("unsupported format: %s. Supported formats: [csv json]", c.Format)
	}
	if c.Format == "csv" {
		if _, err := c.DelimiterRune(); err != nil {
			return err
		}
	}

	if c.Count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", c.Count)
	}
	if c.Batch < 1 {
		return fmt.Errorf("batch must be at least 1, got %d", c.Batch)
	}

	if err := c.Bounds.Validate(); err != nil {
		return err
	}
	// every wine draws its offers from distinct suppliers
	if c.Bounds.OfferCount.Max > c.Count {
		return fmt.Errorf("bounds.offer_count: max %d exceeds the %d suppliers available", c.Bounds.OfferCount.Max, c.Count)
	}

	return nil
}

// WriteFile stores the config as indented JSON, the format Load reads.
func (c *Config) WriteFile(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
