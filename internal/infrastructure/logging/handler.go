package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/holberton-tools/userdata/internal/redact"
)

// userDataName is the fixed name of the redacting logger.
const userDataName = "user_data"

// lineTemplate is the fixed output template: name, level, timestamp, message.
const lineTemplate = "[HOLBERTON] %s %s %s: %s"

// RedactingHandler is a slog.Handler that renders records with the fixed
// [HOLBERTON] template and redacts watched PII fields from the rendered line
// before writing it.
//
// Structured attributes are appended to the message as "key=value;" segments
// so their values participate in redaction. Groups are ignored: output is a
// flat line, not a nested structure.
type RedactingHandler struct {
	name   string
	fields []string
	level  slog.Leveler
	attrs  []slog.Attr

	mu  *sync.Mutex
	out io.Writer
}

// NewRedactingHandler creates a handler writing redacted lines to out.
//
// Parameters:
//   - out: Destination writer
//   - name: Logger name rendered into every line
//   - fields: Field names whose values are redacted
//   - level: Minimum record level (nil means info)
func NewRedactingHandler(out io.Writer, name string, fields []string, level slog.Leveler) *RedactingHandler {
	return &RedactingHandler{
		name:   name,
		fields: fields,
		level:  level,
		mu:     &sync.Mutex{},
		out:    out,
	}
}

// Enabled reports whether records at the given level are emitted.
func (h *RedactingHandler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.level != nil {
		minLevel = h.level.Level()
	}
	return level >= minLevel
}

// Handle renders the record, redacts it, and writes one line.
func (h *RedactingHandler) Handle(_ context.Context, r slog.Record) error {
	var msg strings.Builder
	msg.WriteString(r.Message)
	for _, a := range h.attrs {
		appendAttr(&msg, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&msg, a)
		return true
	})

	line := fmt.Sprintf(lineTemplate, h.name, r.Level.String(), formatTimestamp(r.Time), msg.String())
	line = redact.Filter(h.fields, redact.Redaction, line, redact.Separator)

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintln(h.out, line)
	return err
}

// WithAttrs returns a handler that renders the given attributes on every
// record, after the message.
func (h *RedactingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	clone := *h
	clone.attrs = append(clone.attrs[:len(clone.attrs):len(clone.attrs)], attrs...)
	return &clone
}

// WithGroup returns the handler unchanged; the line format is flat.
func (h *RedactingHandler) WithGroup(string) slog.Handler {
	return h
}

// appendAttr renders an attribute as a " key=value;" segment.
func appendAttr(msg *strings.Builder, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	msg.WriteString(" ")
	msg.WriteString(a.Key)
	msg.WriteString("=")
	msg.WriteString(a.Value.Resolve().String())
	msg.WriteString(redact.Separator)
}

// formatTimestamp renders a record time as date/time plus milliseconds,
// e.g. "2024-01-01 12:00:00,123".
func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return fmt.Sprintf("%s,%03d", t.Format("2006-01-02 15:04:05"), t.Nanosecond()/int(time.Millisecond))
}

// NewUserData returns the redacting logger: name "user_data", minimum level
// info, one handler, stdout, watching the PII field set.
//
// Each call returns an independent instance. There is no process-wide logger
// registry, so repeated calls cannot accumulate handlers or duplicate
// output.
func NewUserData() *Logger {
	return &Logger{
		Logger: slog.New(NewRedactingHandler(os.Stdout, userDataName, redact.PIIFields, slog.LevelInfo)),
	}
}
