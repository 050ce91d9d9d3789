package users

import (
	"context"
	"fmt"
	"io"

	"github.com/holberton-tools/userdata/internal/infrastructure/logging"
)

// Reporter walks the users table and emits one line per row.
//
// With redaction enabled (the default), lines are logged through the
// redacting user_data logger, so the watched PII fields come out as "***".
// With redaction disabled, raw lines are written to the writer exactly as
// the original tool printed them.
type Reporter struct {
	repo   *Repository
	log    *logging.Logger
	out    io.Writer
	redact bool
}

// NewReporter creates a Reporter.
//
// Parameters:
//   - repo: Source of user rows
//   - log: Redacting logger used when redaction is enabled
//   - out: Raw destination used when redaction is disabled
//   - redact: Whether report lines pass through the redacting logger
func NewReporter(repo *Repository, log *logging.Logger, out io.Writer, redact bool) *Reporter {
	return &Reporter{
		repo:   repo,
		log:    log,
		out:    out,
		redact: redact,
	}
}

// Run reports every user row and returns the number of rows emitted.
func (r *Reporter) Run(ctx context.Context) (int, error) {
	list, err := r.repo.List(ctx)
	if err != nil {
		return 0, err
	}

	for _, u := range list {
		line := Format(u)
		if r.redact {
			r.log.Info(line)
		} else {
			fmt.Fprintln(r.out, line)
		}
	}

	return len(list), nil
}
