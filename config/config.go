// Package config holds the connection configuration the adapter reads at
// startup: host, credentials, database name, pool sizing and timeout
// policy, combined into a single dialect-native connection descriptor.
//
// Configuration can be loaded from a YAML file, from the environment, or
// both (file first, environment overrides):
//
//	cfg, err := config.Load("config/database.yml")
//	if err != nil {
//	    log.Fatal(err)
//	}
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Defaults applied where a field is unset.
const (
	DefaultMaxPoolSize     = 5
	DefaultMaxIdlePoolSize = 1
	DefaultInitialPoolSize = 1
	DefaultRetryAttempts   = 3
	DefaultRetryDelay      = 100 * time.Millisecond
	DefaultCheckoutTimeout = 5 * time.Second
)

// Config describes one database connection.
type Config struct {
	Adapter  string `yaml:"adapter" envconfig:"ADAPTER"`
	Host     string `yaml:"host" envconfig:"HOST"`
	Port     int    `yaml:"port" envconfig:"PORT"`
	User     string `yaml:"user" envconfig:"USER"`
	Password string `yaml:"password" envconfig:"PASSWORD"`
	Database string `yaml:"database" envconfig:"DATABASE"`

	MaxPoolSize     int `yaml:"max_pool_size" envconfig:"MAX_POOL_SIZE"`
	MaxIdlePoolSize int `yaml:"max_idle_pool_size" envconfig:"MAX_IDLE_POOL_SIZE"`
	InitialPoolSize int `yaml:"initial_pool_size" envconfig:"INITIAL_POOL_SIZE"`

	RetryAttempts   int           `yaml:"retry_attempts" envconfig:"RETRY_ATTEMPTS"`
	RetryDelay      time.Duration `yaml:"retry_delay" envconfig:"RETRY_DELAY"`
	CheckoutTimeout time.Duration `yaml:"checkout_timeout" envconfig:"CHECKOUT_TIMEOUT"`
}

// New returns a Config with defaults applied.
func New() *Config {
	return &Config{
		Adapter:         "mysql",
		Host:            "localhost",
		MaxPoolSize:     DefaultMaxPoolSize,
		MaxIdlePoolSize: DefaultMaxIdlePoolSize,
		InitialPoolSize: DefaultInitialPoolSize,
		RetryAttempts:   DefaultRetryAttempts,
		RetryDelay:      DefaultRetryDelay,
		CheckoutTimeout: DefaultCheckoutTimeout,
	}
}

// Load reads a YAML configuration file and applies environment overrides
// with the DB_ prefix on top of it.
func Load(path string) (*Config, error) {
	cfg := New()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := envconfig.Process("DB", cfg); err != nil {
		return nil, fmt.Errorf("config: environment: %w", err)
	}
	return cfg, cfg.Validate()
}

// FromEnv builds a Config from environment variables with the given
// prefix, on top of the defaults.
func FromEnv(prefix string) (*Config, error) {
	cfg := New()
	if err := envconfig.Process(prefix, cfg); err != nil {
		return nil, fmt.Errorf("config: environment: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate checks the configuration for values the adapter cannot work
// with.
func (c *Config) Validate() error {
	if c.Adapter == "" {
		return fmt.Errorf("config: adapter is required")
	}
	if c.Database == "" {
		return fmt.Errorf("config: database is required")
	}
	if c.MaxPoolSize < 1 {
		return fmt.Errorf("config: max_pool_size must be positive, got %d", c.MaxPoolSize)
	}
	if c.InitialPoolSize > c.MaxPoolSize {
		return fmt.Errorf("config: initial_pool_size %d exceeds max_pool_size %d", c.InitialPoolSize, c.MaxPoolSize)
	}
	return nil
}

// DSN renders the dialect-native connection descriptor string.
func (c *Config) DSN() (string, error) {
	switch c.Adapter {
	case "mysql":
		mc := mysql.NewConfig()
		mc.User = c.User
		mc.Passwd = c.Password
		mc.Net = "tcp"
		mc.Addr = c.addr(3306)
		mc.DBName = c.Database
		mc.ParseTime = true
		return mc.FormatDSN(), nil
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%d dbname=%s sslmode=disable", c.host(), c.port(5432), c.Database)
		if c.User != "" {
			dsn += " user=" + c.User
		}
		if c.Password != "" {
			dsn += " password=" + c.Password
		}
		return dsn, nil
	case "sqlite":
		return "file:" + c.Database, nil
	default:
		return "", fmt.Errorf("config: unknown adapter %q", c.Adapter)
	}
}

func (c *Config) host() string {
	if c.Host == "" {
		return "localhost"
	}
	return c.Host
}

func (c *Config) port(def int) int {
	if c.Port == 0 {
		return def
	}
	return c.Port
}

func (c *Config) addr(def int) string {
	return fmt.Sprintf("%s:%d", c.host(), c.port(def))
}
