package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"gopkg.in/yaml.v3"
)

// Supported DB_DRIVER values.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// Config holds the environment driven configuration for the wellbore service.
type Config struct {
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"wellbore-api"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	HTTPPort        int           `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	EnableTracing   bool          `env:"ENABLE_TRACING" envDefault:"false"`
	OTLPEndpoint    string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	APIBasePath     string        `env:"API_BASE_PATH" envDefault:"/WellBore/api"`

	DBDriver       string        `env:"DB_DRIVER" envDefault:"sqlite"`
	DatabaseURL    string        `env:"DB_DSN" envDefault:"../home/WellBore.db"`
	DBMaxIdleConns int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	DBMaxOpenConns int           `env:"DB_MAX_OPEN_CONNS" envDefault:"15"`
	DBConnLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`

	UsageSnapshotPath   string        `env:"USAGE_SNAPSHOT_PATH" envDefault:"../home/history.json"`
	UsageBackupInterval time.Duration `env:"USAGE_BACKUP_INTERVAL" envDefault:"5m"`
	UsageRetentionDays  int           `env:"USAGE_RETENTION_DAYS" envDefault:"0"`
}

// Load parses configuration into Config.
//
// Loading order (highest to lowest priority):
//  1. Environment variables (a .env file is loaded into the environment by main)
//  2. The YAML file named by CONFIG_FILE, a flat map of the same keys
//  3. Default values from struct tags
func Load() (*Config, error) {
	values, err := environment(os.Getenv("CONFIG_FILE"), os.Environ())
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: values}); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func environment(configFile string, environ []string) (map[string]string, error) {
	values := make(map[string]string)
	if strings.TrimSpace(configFile) != "" {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &values); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", configFile, err)
		}
	}
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if ok {
			values[key] = value
		}
	}
	return values, nil
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case DriverPostgres, DriverSQLite:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return fmt.Errorf("DB_DSN is required when DB_DRIVER is %s", c.DBDriver)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("HTTP_PORT %d is out of range", c.HTTPPort)
	}
	if c.UsageBackupInterval <= 0 {
		return fmt.Errorf("USAGE_BACKUP_INTERVAL must be positive")
	}
	if c.UsageRetentionDays < 0 {
		return fmt.Errorf("USAGE_RETENTION_DAYS must not be negative")
	}
	if !strings.HasPrefix(c.APIBasePath, "/") {
		return fmt.Errorf("API_BASE_PATH must start with /")
	}
	return nil
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
