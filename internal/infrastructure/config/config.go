package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Log      LogConfig
	HTTP     HTTPConfig
	Printing PrintingConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
	Port string
	// DefaultExchangeRate seeds the Bs/USD rate on a fresh install
	DefaultExchangeRate float64
}

// DatabaseConfig holds the embedded database settings
type DatabaseConfig struct {
	// Path to the SQLite file; ":memory:" for tests
	Path string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// HTTPConfig holds HTTP server configuration
type HTTPConfig struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	MaxBodySize  int64
}

// PrintingConfig holds PDF rendering settings
type PrintingConfig struct {
	// RemoteChromeURL points at a remote Chrome instance; empty launches
	// a local browser.
	RemoteChromeURL string
	NoSandbox       bool
	RenderTimeout   time.Duration
}

// Load reads configuration from an optional config file and environment
// variables prefixed with POS (POS_APP_PORT, POS_DATABASE_PATH, ...).
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// No config file is fine, defaults and env vars cover everything
	}

	v.SetEnvPrefix("POS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	cfg := &Config{
		App: AppConfig{
			Name:                v.GetString("app.name"),
			Env:                 v.GetString("app.env"),
			Port:                v.GetString("app.port"),
			DefaultExchangeRate: v.GetFloat64("app.default_exchange_rate"),
		},
		Database: DatabaseConfig{
			Path: v.GetString("database.path"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		HTTP: HTTPConfig{
			ReadTimeout:  v.GetDuration("http.read_timeout"),
			WriteTimeout: v.GetDuration("http.write_timeout"),
			IdleTimeout:  v.GetDuration("http.idle_timeout"),
			MaxBodySize:  v.GetInt64("http.max_body_size"),
		},
		Printing: PrintingConfig{
			RemoteChromeURL: v.GetString("printing.remote_chrome_url"),
			NoSandbox:       v.GetBool("printing.no_sandbox"),
			RenderTimeout:   v.GetDuration("printing.render_timeout"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "emtienda-pos")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("app.default_exchange_rate", 45.00)

	v.SetDefault("database.path", "emtienda.db")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stdout")

	v.SetDefault("http.read_timeout", 15*time.Second)
	v.SetDefault("http.write_timeout", 60*time.Second)
	v.SetDefault("http.idle_timeout", 120*time.Second)
	v.SetDefault("http.max_body_size", int64(10<<20)) // backups can be a few MB

	v.SetDefault("printing.remote_chrome_url", "")
	v.SetDefault("printing.no_sandbox", false)
	v.SetDefault("printing.render_timeout", 30*time.Second)
}

// Validate checks the configuration for obvious mistakes
func (c *Config) Validate() error {
	if c.App.Port == "" {
		return fmt.Errorf("app.port cannot be empty")
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database.path cannot be empty")
	}
	if c.App.DefaultExchangeRate <= 0 {
		return fmt.Errorf("app.default_exchange_rate must be positive")
	}
	return nil
}

// IsProduction reports whether the app runs in production mode
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
