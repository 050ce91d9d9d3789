package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure for the userdata report tool.
// All sections can be loaded from YAML and overridden by environment
// variables.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Logging  LoggingConfig  `yaml:"logging"`
	Report   ReportConfig   `yaml:"report"`
}

// DatabaseConfig contains relational database connection settings.
type DatabaseConfig struct {
	// Driver selects the database/sql driver: "mysql" or "sqlite3".
	Driver string `yaml:"driver"`

	// Host, Port, Username, Password and Name configure the mysql driver.
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`

	// Path is the database file for the sqlite3 driver.
	Path string `yaml:"path"`

	// ConnectTimeout is the connection verification timeout (seconds).
	ConnectTimeout int `yaml:"connect_timeout"`
}

// LoggingConfig contains operational logging settings.
type LoggingConfig struct {
	Level  string            `yaml:"level"`
	Format string            `yaml:"format"`
	Output string            `yaml:"output"`
	File   FileLoggingConfig `yaml:"file"`
}

// FileLoggingConfig contains rotating log file settings, used when
// logging.output is "file".
type FileLoggingConfig struct {
	Path       string `yaml:"path"`
	MaxSize    int    `yaml:"max_size"`    // megabytes
	MaxBackups int    `yaml:"max_backups"` // rotated files to keep
	MaxAge     int    `yaml:"max_age"`     // days
	Compress   bool   `yaml:"compress"`
}

// ReportConfig contains row-report settings.
type ReportConfig struct {
	// Redact routes report lines through the redacting user_data logger.
	// Set false to reproduce the raw reference output, PII included.
	Redact bool `yaml:"redact"`
}

// Load reads configuration from a YAML file and applies environment
// variable overrides.
//
// An empty path skips the file layer entirely: defaults plus environment
// variables, which is how the tool runs when no config file is present.
//
// Returns the loaded configuration, or an error if the file cannot be read
// or parsed, or if validation fails.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

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

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns a Config with the reference defaults.
func defaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver:         "mysql",
			Host:           "localhost",
			Port:           3306,
			Username:       "root",
			Password:       "",
			ConnectTimeout: 5,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stdout",
		},
		Report: ReportConfig{
			Redact: true,
		},
	}
}

// applyEnvOverrides applies environment variable overrides.
//
// The PERSONAL_DATA_DB_* names and defaults come from the original tool.
// LookupEnv is used rather than Getenv so that a variable explicitly set to
// the empty string still overrides a file value, matching environ.get
// semantics.
func applyEnvOverrides(cfg *Config) {
	if v, ok := os.LookupEnv("PERSONAL_DATA_DB_USERNAME"); ok {
		cfg.Database.Username = v
	}
	if v, ok := os.LookupEnv("PERSONAL_DATA_DB_PASSWORD"); ok {
		cfg.Database.Password = v
	}
	if v, ok := os.LookupEnv("PERSONAL_DATA_DB_HOST"); ok {
		cfg.Database.Host = v
	}
	if v, ok := os.LookupEnv("PERSONAL_DATA_DB_NAME"); ok {
		cfg.Database.Name = v
	}
}

// Validate checks the configuration for errors.
//
// Returns a description of every validation failure, or nil if valid.
func (c *Config) Validate() error {
	var errs []string

	switch c.Database.Driver {
	case "mysql":
		if c.Database.Name == "" {
			errs = append(errs, "database.name is required (set PERSONAL_DATA_DB_NAME)")
		}
		if c.Database.Host == "" {
			errs = append(errs, "database.host is required")
		}
		if c.Database.Port < 1 || c.Database.Port > 65535 {
			errs = append(errs, "database.port must be between 1 and 65535")
		}
	case "sqlite3":
		if c.Database.Path == "" {
			errs = append(errs, "database.path is required for the sqlite3 driver")
		}
	default:
		errs = append(errs, fmt.Sprintf("database.driver must be mysql or sqlite3, got %q", c.Database.Driver))
	}

	if c.Database.ConnectTimeout < 1 {
		errs = append(errs, "database.connect_timeout must be at least 1 second")
	}

	if c.Logging.Output == "file" && c.Logging.File.Path == "" {
		errs = append(errs, "logging.file.path is required when logging.output is file")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}

// GetConnectTimeout returns the connection timeout as a Duration.
func (c *Config) GetConnectTimeout() time.Duration {
	return time.Duration(c.Database.ConnectTimeout) * time.Second
}
