// Package redact replaces the values of sensitive key=value fields in
// free-text messages with a fixed marker.
//
// A message is assumed to contain zero or more "key=value;" segments. For
// each watched field, the value (everything up to the next separator) is
// replaced with the redaction marker:
//
//	redact.Filter([]string{"email"}, "***", "email=bob@bob.com;level=9;", ";")
//	// "email=***;level=9;"
//
// Field names are matched literally: metacharacters in a field name do not
// act as pattern syntax. Fields that do not appear in the message leave it
// unchanged, and redaction is idempotent.
package redact
