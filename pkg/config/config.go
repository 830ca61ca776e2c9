package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"SynthTick/pkg/util"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"log"`
	Market struct {
		Tickers   []string `yaml:"tickers"`
		Days      int      `yaml:"days"`
		Seed      int64    `yaml:"seed"`
		BasePrice int      `yaml:"base_price"`
	} `yaml:"market"`
	Export struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
		Format  string `yaml:"format"`
	} `yaml:"export"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// Validate required fields
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	// Override with environment variables
	if v := os.Getenv("TICKERS"); v != "" {
		c.Market.Tickers = strings.Split(v, ",")
	}
	if v := os.Getenv("DAYS"); v != "" {
		c.Market.Days = util.ParseIntDefault(v, c.Market.Days)
	}
	if v := os.Getenv("SEED"); v != "" {
		c.Market.Seed = util.ParseInt64Default(v, c.Market.Seed)
	}
	if v := os.Getenv("EXPORT_PATH"); v != "" {
		c.Export.Path = v
	}
	if v := os.Getenv("EXPORT_FORMAT"); v != "" {
		c.Export.Format = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = util.ParseIntDefault(v, c.Server.Port)
	}

	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if len(c.Market.Tickers) == 0 {
		return fmt.Errorf("market.tickers cannot be empty")
	}
	if c.Market.Days <= 0 {
		return fmt.Errorf("market.days must be positive, got %d", c.Market.Days)
	}
	if c.Export.Enabled {
		if c.Export.Path == "" {
			return fmt.Errorf("export.path is required when export is enabled")
		}
		if c.Export.Format != "xlsx" && c.Export.Format != "csv" {
			return fmt.Errorf("export.format must be 'xlsx' or 'csv', got '%s'", c.Export.Format)
		}
	}
	return nil
}
