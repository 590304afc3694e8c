// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/codr1/designtokens/internal/hexcolor"
)

const (
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
)

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
	Password string `yaml:"-"` // Loaded from environment
}

type DatabaseConfig struct {
	Driver   string      `yaml:"driver"`
	Filename string      `yaml:"filename"`
	Redis    RedisConfig `yaml:"redis"`
}

type Config struct {
	App struct {
		Name                   string `yaml:"name"`
		Environment            string `yaml:"environment"`
		Port                   int    `yaml:"port"`
		BaseURL                string `yaml:"base_url"`
		StaticDir              string `yaml:"static_dir"`
		AccentColor            string `yaml:"accent_color"`
		ShutdownTimeoutSeconds int    `yaml:"shutdown_timeout_seconds"`
	} `yaml:"app"`

	Database DatabaseConfig `yaml:"database"`

	Features struct {
		EnableMetrics bool `yaml:"enable_metrics"`
		EnableDebug   bool `yaml:"enable_debug"`
	} `yaml:"features"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	var cfg Config
	cfg.App.Name = "Design Tokens"
	cfg.App.Environment = "development"
	cfg.App.Port = 8080
	cfg.App.BaseURL = "http://localhost:8080"
	cfg.App.ShutdownTimeoutSeconds = 30
	cfg.App.AccentColor = "#2563EB"
	cfg.Database.Driver = DriverSQLite
	cfg.Database.Filename = filepath.Join("data", "designtokens.db")
	cfg.Database.Redis.Addr = "localhost:6379"
	cfg.Database.Redis.Prefix = "designtokens"
	cfg.Features.EnableMetrics = true
	return &cfg
}

// Load loads both .env and yaml configuration
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists
	envPath := filepath.Join(filepath.Dir(configPath), ".env")
	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	// Read and parse YAML config
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	applyEnv(cfg)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault behaves like Load but falls back to Default when configPath
// does not exist.
func LoadOrDefault(configPath string) (*Config, error) {
	cfg, err := Load(configPath)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	cfg = Default()
	applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// applyEnv loads sensitive values and deployment overrides from environment.
func applyEnv(cfg *Config) {
	cfg.Database.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if driver := os.Getenv("DATABASE_DRIVER"); driver != "" {
		cfg.Database.Driver = driver
	}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.Database.Redis.Addr = addr
	}
	if dir := os.Getenv("STATIC_DIR"); dir != "" {
		cfg.App.StaticDir = dir
	}
}

func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app name is required")
	}
	if c.App.Port == 0 {
		return fmt.Errorf("app port is required")
	}
	if c.App.AccentColor != "" && !hexcolor.IsValid(c.App.AccentColor) {
		return fmt.Errorf("app accent_color must be a 6 or 8 digit hex color")
	}
	if c.Database.Driver == "" {
		return fmt.Errorf("database driver is required")
	}

	// Validate based on database driver
	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.Filename == "" {
			return fmt.Errorf("database filename is required for sqlite")
		}
	case DriverRedis:
		if c.Database.Redis.Addr == "" {
			return fmt.Errorf("database redis addr is required for redis")
		}
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}
