// userdata reports the rows of a users table with personally identifiable
// fields redacted.
//
// The tool connects to a relational database configured through the
// PERSONAL_DATA_DB_* environment variables (or an optional YAML config
// file), runs a fixed query over the users table, and prints one
// semicolon-delimited key=value line per row. By default every line passes
// through the redacting user_data logger, so name, email, phone, ssn and
// password values reach stdout as "***".
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/holberton-tools/userdata/internal/infrastructure/config"
	"github.com/holberton-tools/userdata/internal/infrastructure/database"
	"github.com/holberton-tools/userdata/internal/infrastructure/logging"
	"github.com/holberton-tools/userdata/internal/users"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
)

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for testability.
//
// Parameters:
//   - ctx: Context for cancellation and shutdown signals
//
// Returns:
//   - error: nil on a clean report, or error describing the failure
func run(ctx context.Context) error {
	// Use default logger until config is loaded
	log := logging.Default()
	log.Info("starting userdata report",
		"version", version,
		"commit", commit,
	)

	// Load configuration; an empty path means environment-only operation
	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if configPath != "" {
		log.Info("configuration loaded", "path", configPath)
	}

	// Reinitialise logger with config settings
	log = logging.New(cfg.Logging, version)

	// Open database
	db, err := database.Open(ctx, database.Config{
		Driver:         cfg.Database.Driver,
		Host:           cfg.Database.Host,
		Port:           cfg.Database.Port,
		Username:       cfg.Database.Username,
		Password:       cfg.Database.Password,
		Name:           cfg.Database.Name,
		Path:           cfg.Database.Path,
		ConnectTimeout: cfg.GetConnectTimeout(),
	})
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			log.Error("error closing database", "error", closeErr)
		}
	}()
	log.Info("database connected", "driver", db.Driver())

	// Report users
	reporter := users.NewReporter(
		users.NewRepository(db.DB),
		logging.NewUserData(),
		os.Stdout,
		cfg.Report.Redact,
	)
	count, err := reporter.Run(ctx)
	if err != nil {
		return fmt.Errorf("reporting users: %w", err)
	}

	log.Info("report complete", "rows", count, "redacted", cfg.Report.Redact)
	return nil
}

// getConfigPath returns the configuration file path.
//
// The USERDATA_CONFIG environment variable takes precedence. The default
// path is used only when it exists; otherwise the tool runs from
// environment variables alone.
func getConfigPath() string {
	if path := os.Getenv("USERDATA_CONFIG"); path != "" {
		return path
	}
	if _, err := os.Stat(defaultConfigPath); err == nil {
		return defaultConfigPath
	}
	return ""
}
