package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

const (
	// defaultConnectTimeout bounds connection verification when the
	// configuration does not set one.
	defaultConnectTimeout = 5 * time.Second

	// connMaxLifetime refreshes pooled connections hourly.
	connMaxLifetime = time.Hour
)

// DB wraps a sql.DB connection.
type DB struct {
	*sql.DB
	driver string
}

// Config contains database connection options. These map to the database
// section of config.yaml.
type Config struct {
	// Driver selects the database/sql driver: "mysql" or "sqlite3".
	Driver string

	// Host, Port, Username, Password and Name configure the mysql driver.
	Host     string
	Port     int
	Username string
	Password string
	Name     string

	// Path is the database file for the sqlite3 driver. ":memory:" opens
	// an in-memory database.
	Path string

	// ConnectTimeout bounds the connection verification ping.
	ConnectTimeout time.Duration
}

// Open establishes a database connection with the specified configuration.
//
// It builds the driver-specific DSN, opens the connection, configures the
// pool, and verifies connectivity with a ping. Authentication failures,
// unreachable hosts and unknown databases surface here; no retry is
// attempted.
//
// Parameters:
//   - ctx: Context for the verification ping
//   - cfg: Database configuration
//
// Returns:
//   - *DB: Connected database wrapper; the caller must Close it
//   - error: If the DSN cannot be built or the connection fails
func Open(ctx context.Context, cfg Config) (*DB, error) {
	driver, dsn, err := buildDSN(cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	if driver == "sqlite3" {
		// SQLite only supports one writer
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	}

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close() //nolint:errcheck // Best effort cleanup on error path
		return nil, fmt.Errorf("verifying database connection: %w", err)
	}

	return &DB{
		DB:     sqlDB,
		driver: driver,
	}, nil
}

// buildDSN returns the driver name and data source name for the
// configuration.
func buildDSN(cfg Config) (driver, dsn string, err error) {
	switch cfg.Driver {
	case "mysql":
		mc := mysql.NewConfig()
		mc.User = cfg.Username
		mc.Passwd = cfg.Password
		mc.Net = "tcp"
		mc.Addr = fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
		mc.DBName = cfg.Name
		mc.Timeout = cfg.ConnectTimeout
		return "mysql", mc.FormatDSN(), nil
	case "sqlite3":
		return "sqlite3", cfg.Path, nil
	default:
		return "", "", fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Close closes the database connection gracefully.
func (db *DB) Close() error {
	if db.DB == nil {
		return nil
	}
	if err := db.DB.Close(); err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	return nil
}

// Driver returns the name of the driver in use.
func (db *DB) Driver() string {
	return db.driver
}

// HealthCheck verifies the database is accessible and functioning.
//
// Parameters:
//   - ctx: Context for timeout/cancellation
//
// Returns:
//   - error: nil if healthy, error describing the issue otherwise
func (db *DB) HealthCheck(ctx context.Context) error {
	var result int
	if err := db.QueryRowContext(ctx, "SELECT 1").Scan(&result); err != nil {
		return fmt.Errorf("database health check failed: %w", err)
	}
	return nil
}

// Stats returns database connection pool statistics.
func (db *DB) Stats() sql.DBStats {
	return db.DB.Stats()
}
