// Package config loads the wastewise configuration from YAML, .env and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the config file is looked up when no path is given.
const DefaultPath = "configs/config.yaml"

// Config represents the application configuration
type Config struct {
	LogLevel  string          `yaml:"log_level"`
	Server    ServerConfig    `yaml:"server"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Database  DatabaseConfig  `yaml:"database"`
	Assistant AssistantConfig `yaml:"assistant"`
	Auth      AuthConfig      `yaml:"auth"`
	Remote    RemoteConfig    `yaml:"remote"`
}

// ServerConfig holds the API listener settings.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// MetricsConfig holds the prometheus listener settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Port    int    `yaml:"port"`
	Path    string `yaml:"path"`
}

// DatabaseConfig selects the gorm dialect and connection string.
type DatabaseConfig struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
	Seed   bool   `yaml:"seed"`
	Debug  bool   `yaml:"debug"`
}

// AssistantConfig tunes the analyzer and chat assistant.
type AssistantConfig struct {
	ChatDelay     time.Duration `yaml:"chat_delay"`
	Seed          int64         `yaml:"seed"`
	Deterministic bool          `yaml:"deterministic"`
}

// AuthConfig enables JWT bearer auth when JWTSecret is set.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret"`
}

// RemoteConfig points the data provider at another wastewise API.
type RemoteConfig struct {
	URL     string        `yaml:"url"`
	Token   string        `yaml:"token"`
	Timeout time.Duration `yaml:"timeout"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		LogLevel: "info",
		Server:   ServerConfig{Port: 8080},
		Metrics: MetricsConfig{
			Enabled: true,
			Port:    9090,
			Path:    "/metrics",
		},
		Database: DatabaseConfig{
			Driver: "sqlite3",
			DSN:    "wastewise.db",
			Seed:   true,
		},
		Assistant: AssistantConfig{ChatDelay: time.Second},
		Remote:    RemoteConfig{Timeout: 10 * time.Second},
	}
}

// Load reads the config file at path, returning defaults if it doesn't
// exist. A .env file in the working directory is loaded first and the
// environment overrides file values.
func Load(path string) (Config, error) {
	cfg := Default()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("loading .env: %w", err)
	}

	if path == "" {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	case os.IsNotExist(err):
	default:
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("WASTEWISE_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("WASTEWISE_PORT: %w", err)
		}
		c.Server.Port = port
	}
	if v := os.Getenv("WASTEWISE_DB_DRIVER"); v != "" {
		c.Database.Driver = v
	}
	if v := os.Getenv("WASTEWISE_DB_DSN"); v != "" {
		c.Database.DSN = v
	}
	if v := os.Getenv("WASTEWISE_JWT_SECRET"); v != "" {
		c.Auth.JWTSecret = v
	}
	if v := os.Getenv("WASTEWISE_REMOTE_URL"); v != "" {
		c.Remote.URL = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	return nil
}

// Validate rejects settings the server cannot start with.
func (c Config) Validate() error {
	switch c.Database.Driver {
	case "sqlite3", "postgres":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Server.Port <= 0 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Metrics.Enabled && c.Metrics.Port <= 0 {
		return fmt.Errorf("invalid metrics port %d", c.Metrics.Port)
	}
	if c.Assistant.ChatDelay < 0 {
		return fmt.Errorf("negative chat delay %s", c.Assistant.ChatDelay)
	}
	return nil
}
