package users

import (
	"context"
	"database/sql"
	"fmt"
)

// listQuery selects every column of every user. Columns are trusted
// positionally: the table must carry the eight columns in the order the
// User struct declares them.
const listQuery = "SELECT * FROM users;"

// Repository reads users from a relational database.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a Repository over an open connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// List returns every row of the users table.
//
// The cursor is closed on all paths. Query and scan failures are returned
// wrapped; no retry is attempted.
func (r *Repository) List(ctx context.Context) ([]User, error) {
	rows, err := r.db.QueryContext(ctx, listQuery)
	if err != nil {
		return nil, fmt.Errorf("querying users: %w", err)
	}
	defer rows.Close() //nolint:errcheck // Read-only cursor

	var list []User
	for rows.Next() {
		var u User
		if err := rows.Scan(
			&u.Name, &u.Email, &u.Phone, &u.SSN,
			&u.Password, &u.IP, &u.LastLogin, &u.UserAgent,
		); err != nil {
			return nil, fmt.Errorf("scanning user row: %w", err)
		}
		list = append(list, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating user rows: %w", err)
	}

	return list, nil
}
