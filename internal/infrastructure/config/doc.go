// Package config provides configuration loading for the userdata report
// tool.
//
// Configuration is layered:
//  1. Default values (hardcoded)
//  2. YAML file values (override defaults, file optional)
//  3. Environment variables (override file values)
//
// The database connection honours the reference environment variables:
//
//	PERSONAL_DATA_DB_USERNAME   connection username (default "root")
//	PERSONAL_DATA_DB_PASSWORD   connection password (default "")
//	PERSONAL_DATA_DB_HOST       connection host (default "localhost")
//	PERSONAL_DATA_DB_NAME       database name (required for mysql)
//
// A config file is only needed for the non-default knobs (sqlite3 driver,
// file logging, disabling row redaction); the tool runs from environment
// variables alone.
package config
