package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the service configuration settings.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Postgres PostgresConfig `yaml:"postgres"`
	JWT      JWTConfig      `yaml:"jwt"`
}

// HTTPConfig holds the listen address of the API server.
type HTTPConfig struct {
	Addr string `yaml:"addr"`
}

// PostgresConfig holds Postgres configuration. An empty DSN selects the
// in-memory store, which is what local development and tests run against.
type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

// JWTConfig holds session-token configuration.
type JWTConfig struct {
	Secret     string        `yaml:"secret"`
	SessionTTL time.Duration `yaml:"session_ttl"`
}

// Load reads the configuration from a YAML file. If the file does not
// exist, configuration is taken from environment variables instead. Any
// other read failure is an error: a file the operator pointed at must
// not be silently ignored.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return loadFromEnv()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func loadFromEnv() (*Config, error) {
	cfg := Config{
		HTTP:     HTTPConfig{Addr: os.Getenv("HTTP_ADDR")},
		Postgres: PostgresConfig{DSN: os.Getenv("POSTGRES_DSN")},
		JWT:      JWTConfig{Secret: os.Getenv("JWT_SECRET")},
	}
	if ttl := os.Getenv("JWT_SESSION_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_SESSION_TTL: %w", err)
		}
		cfg.JWT.SessionTTL = d
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.HTTP.Addr == "" {
		c.HTTP.Addr = ":8080"
	}
	if c.JWT.SessionTTL == 0 {
		c.JWT.SessionTTL = 24 * time.Hour
	}
}

// Validate reports configuration that cannot be defaulted.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("jwt secret is required")
	}
	return nil
}
