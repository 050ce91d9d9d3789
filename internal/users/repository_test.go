package users

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/holberton-tools/userdata/internal/infrastructure/database"
	"github.com/holberton-tools/userdata/internal/infrastructure/logging"
	"github.com/holberton-tools/userdata/internal/redact"
)

// annLine is the raw report line for the seeded test row.
const annLine = "name=Ann; email=ann@x.com; phone=555-1234; ssn=000-00-0000; password=pw1; ip=1.2.3.4; last_login=2024-01-01; user_agent=curl/8;"

// openUsersDB opens a throwaway SQLite database with a users table.
func openUsersDB(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.Open(context.Background(), database.Config{
		Driver:         "sqlite3",
		Path:           filepath.Join(t.TempDir(), "users.db"),
		ConnectTimeout: 5 * time.Second,
	})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.ExecContext(context.Background(), `
		CREATE TABLE users (
			name TEXT,
			email TEXT,
			phone TEXT,
			ssn TEXT,
			password TEXT,
			ip TEXT,
			last_login TEXT,
			user_agent TEXT
		)`)
	if err != nil {
		t.Fatalf("creating users table: %v", err)
	}

	return db
}

// seedAnn inserts the canonical test row.
func seedAnn(t *testing.T, db *database.DB) {
	t.Helper()

	_, err := db.ExecContext(context.Background(),
		`INSERT INTO users VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		"Ann", "ann@x.com", "555-1234", "000-00-0000", "pw1", "1.2.3.4", "2024-01-01", "curl/8")
	if err != nil {
		t.Fatalf("inserting test row: %v", err)
	}
}

func TestRepository_List(t *testing.T) {
	db := openUsersDB(t)
	seedAnn(t, db)

	list, err := NewRepository(db.DB).List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if len(list) != 1 {
		t.Fatalf("List() returned %d rows, want 1", len(list))
	}
	if list[0].Name != "Ann" {
		t.Errorf("Name = %q, want %q", list[0].Name, "Ann")
	}
	if list[0].SSN != "000-00-0000" {
		t.Errorf("SSN = %q, want %q", list[0].SSN, "000-00-0000")
	}
	if list[0].UserAgent != "curl/8" {
		t.Errorf("UserAgent = %q, want %q", list[0].UserAgent, "curl/8")
	}
}

func TestRepository_List_Empty(t *testing.T) {
	db := openUsersDB(t)

	list, err := NewRepository(db.DB).List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 0 {
		t.Errorf("List() returned %d rows, want 0", len(list))
	}
}

func TestRepository_List_MissingTable(t *testing.T) {
	db, err := database.Open(context.Background(), database.Config{
		Driver:         "sqlite3",
		Path:           filepath.Join(t.TempDir(), "empty.db"),
		ConnectTimeout: 5 * time.Second,
	})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer db.Close() //nolint:errcheck // Test cleanup

	if _, err := NewRepository(db.DB).List(context.Background()); err == nil {
		t.Error("List() expected error for missing table")
	}
}

func TestReporter_Raw(t *testing.T) {
	db := openUsersDB(t)
	seedAnn(t, db)

	var buf bytes.Buffer
	reporter := NewReporter(NewRepository(db.DB), logging.NewUserData(), &buf, false)

	count, err := reporter.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if count != 1 {
		t.Errorf("Run() count = %d, want 1", count)
	}
	if got := strings.TrimRight(buf.String(), "\n"); got != annLine {
		t.Errorf("raw line = %q, want %q", got, annLine)
	}
}

func TestReporter_Redacted(t *testing.T) {
	db := openUsersDB(t)
	seedAnn(t, db)

	var buf bytes.Buffer
	log := &logging.Logger{
		Logger: slog.New(logging.NewRedactingHandler(&buf, "user_data", redact.PIIFields, slog.LevelInfo)),
	}
	reporter := NewReporter(NewRepository(db.DB), log, &buf, true)

	if _, err := reporter.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	line := strings.TrimRight(buf.String(), "\n")
	if !strings.HasPrefix(line, "[HOLBERTON] user_data INFO ") {
		t.Errorf("line = %q, want [HOLBERTON] user_data INFO prefix", line)
	}
	want := "name=***; email=***; phone=***; ssn=***; password=***; ip=1.2.3.4; last_login=2024-01-01; user_agent=curl/8;"
	if !strings.HasSuffix(line, want) {
		t.Errorf("line = %q, want suffix %q", line, want)
	}
	if strings.Contains(line, "pw1") || strings.Contains(line, "ann@x.com") {
		t.Errorf("line = %q, PII survived redaction", line)
	}
}

func TestReporter_EmptyTable(t *testing.T) {
	db := openUsersDB(t)

	var buf bytes.Buffer
	reporter := NewReporter(NewRepository(db.DB), logging.NewUserData(), &buf, false)

	count, err := reporter.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if count != 0 {
		t.Errorf("Run() count = %d, want 0", count)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}
