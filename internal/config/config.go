package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/claude/wgerfetch/internal/models"
)

type Config struct {
	API      APIConfig      `yaml:"api"`
	Output   OutputConfig   `yaml:"output"`
	Database DatabaseConfig `yaml:"database"`
}

type APIConfig struct {
	BaseURL   string        `yaml:"base_url"`
	Language  int           `yaml:"language"`
	UserAgent string        `yaml:"user_agent"`
	Timeout   time.Duration `yaml:"timeout"`
}

type OutputConfig struct {
	Path   string `yaml:"path"`
	SQLite string `yaml:"sqlite"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
}

// Enabled reports whether a Postgres export is configured.
func (d DatabaseConfig) Enabled() bool {
	return d.Host != ""
}

// DSN returns a PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	sslmode := d.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, sslmode)
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:   "https://wger.de/api/v2",
			Language:  models.LanguageEnglish,
			UserAgent: "curlsapp-exercise-fetcher/1.0",
			Timeout:   60 * time.Second,
		},
		Output: OutputConfig{
			Path: "wger_exercises.json",
		},
		Database: DatabaseConfig{
			Port:    5432,
			Name:    "curlsapp",
			User:    "curlsapp",
			SSLMode: "disable",
		},
	}
}

// Load starts from Default, overlays the YAML file at path (if path is not
// empty), then applies environment variable overrides.
// Env vars use the prefix WGER_ and underscore-separated paths:
//
//	WGER_API_BASE_URL, WGER_API_LANGUAGE, WGER_API_USER_AGENT, WGER_API_TIMEOUT,
//	WGER_OUTPUT_PATH, WGER_OUTPUT_SQLITE,
//	WGER_DB_HOST, WGER_DB_PORT, WGER_DB_NAME,
//	WGER_DB_USER, WGER_DB_PASSWORD, WGER_DB_SSLMODE
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("WGER_API_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("WGER_API_LANGUAGE"); v != "" {
		if lang, err := strconv.Atoi(v); err == nil {
			cfg.API.Language = lang
		}
	}
	if v := os.Getenv("WGER_API_USER_AGENT"); v != "" {
		cfg.API.UserAgent = v
	}
	if v := os.Getenv("WGER_API_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.API.Timeout = d
		}
	}
	if v := os.Getenv("WGER_OUTPUT_PATH"); v != "" {
		cfg.Output.Path = v
	}
	if v := os.Getenv("WGER_OUTPUT_SQLITE"); v != "" {
		cfg.Output.SQLite = v
	}
	if v := os.Getenv("WGER_DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("WGER_DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Database.Port = port
		}
	}
	if v := os.Getenv("WGER_DB_NAME"); v != "" {
		cfg.Database.Name = v
	}
	if v := os.Getenv("WGER_DB_USER"); v != "" {
		cfg.Database.User = v
	}
	if v := os.Getenv("WGER_DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("WGER_DB_SSLMODE"); v != "" {
		cfg.Database.SSLMode = v
	}
}

func (c *Config) validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	if c.API.Language <= 0 {
		return fmt.Errorf("api.language must be a positive wger language id")
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("api.timeout must not be negative")
	}
	if c.Output.Path == "" {
		return fmt.Errorf("output.path is required")
	}
	if c.Database.Enabled() {
		if c.Database.Port == 0 {
			return fmt.Errorf("database.port is required")
		}
		if c.Database.Name == "" {
			return fmt.Errorf("database.name is required")
		}
		if c.Database.User == "" {
			return fmt.Errorf("database.user is required")
		}
	}
	return nil
}
