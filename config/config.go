package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the full configuration.
type Config struct {
	Dataset DatasetConfig `yaml:"dataset"`
	Server  ServerConfig  `yaml:"server"`
	Export  ExportConfig  `yaml:"export"`
}

// DatasetConfig bounds generation: the seed and the date window.
type DatasetConfig struct {
	Seed        int64  `yaml:"seed"`
	WindowStart string `yaml:"window_start"`
	WindowEnd   string `yaml:"window_end"`
}

// ServerConfig holds the dashboard HTTP settings.
type ServerConfig struct {
	Address        string  `yaml:"address"`
	RateLimitRPS   float64 `yaml:"rate_limit_rps"`
	RateLimitBurst int     `yaml:"rate_limit_burst"`
}

// ExportConfig holds the flat-file export settings.
type ExportConfig struct {
	Dir    string `yaml:"dir"`
	Format string `yaml:"format"` // csv|xlsx
}

func defaults() Config {
	return Config{
		Dataset: DatasetConfig{
			Seed:        42,
			WindowStart: "2024-01-01",
			WindowEnd:   "2025-06-24",
		},
		Server: ServerConfig{
			Address:        ":8080",
			RateLimitRPS:   20,
			RateLimitBurst: 40,
		},
		Export: ExportConfig{
			Dir:    "data",
			Format: "csv",
		},
	}
}

// LoadConfig loads the configuration from a YAML file, falling back to
// defaults when the file is missing, then applies env-var overrides.
func LoadConfig(filename string) (*Config, error) {
	cfg := defaults()

	if data, err := os.ReadFile(filename); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// --- OVERRIDE WITH ENV VARS IF PRESENT ---
	if v := os.Getenv("SPORTSPHERE_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid SPORTSPHERE_SEED %q: %w", v, err)
		}
		cfg.Dataset.Seed = seed
	}
	if v := os.Getenv("SPORTSPHERE_ADDRESS"); v != "" {
		cfg.Server.Address = v
	}
	if v := os.Getenv("SPORTSPHERE_EXPORT_DIR"); v != "" {
		cfg.Export.Dir = v
	}

	if _, _, err := cfg.Window(); err != nil {
		return nil, err
	}
	if cfg.Export.Format != "csv" && cfg.Export.Format != "xlsx" {
		return nil, fmt.Errorf("invalid export format %q (want csv or xlsx)", cfg.Export.Format)
	}
	return &cfg, nil
}

// Window parses the configured date range.
func (c *Config) Window() (start, end time.Time, err error) {
	start, err = time.ParseInLocation("2006-01-02", c.Dataset.WindowStart, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid window_start %q: %w", c.Dataset.WindowStart, err)
	}
	end, err = time.ParseInLocation("2006-01-02", c.Dataset.WindowEnd, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid window_end %q: %w", c.Dataset.WindowEnd, err)
	}
	return start, end, nil
}
