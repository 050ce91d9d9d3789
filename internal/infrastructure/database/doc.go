// Package database provides relational database connectivity for the
// userdata report tool.
//
// Two database/sql drivers are supported:
//
//   - mysql (github.com/go-sql-driver/mysql): the primary driver; the DSN
//     is built from the host, port, credentials and database name.
//   - sqlite3 (github.com/mattn/go-sqlite3): a local file or in-memory
//     database, used for development and tests.
//
// Connections are verified with a ping at open time and fail fast; there is
// no retry. The caller owns the connection and must Close it, normally via
// defer in main.
//
// Security Considerations:
//   - All queries use parameterised statements or fixed literals
//   - Credentials come from configuration, never from query strings
package database
