// Package logging provides structured logging for the userdata report tool.
//
// This package wraps Go's standard log/slog package and comes in two
// flavours:
//
//   - New returns the tool's operational logger: JSON or text output,
//     level filtering, default fields, optional rotating file output.
//   - NewUserData returns the redacting logger: a fixed-template handler
//     that pipes every rendered line through the PII redactor before it
//     reaches stdout.
//
// # Redacting output
//
// The user_data logger renders records as
//
//	[HOLBERTON] user_data INFO 2024-01-01 12:00:00,123: name=***;email=***;
//
// with every watched PII field (see the redact package) replaced by "***".
// Structured attributes are appended to the message as "key=value;"
// segments, so attribute values are redacted the same way as message text.
//
// # Configuration
//
// Operational logging is configured via the logging section of config.yaml:
//
//	logging:
//	  level: "info"      # debug, info, warn, error
//	  format: "text"     # json, text
//	  output: "stdout"   # stdout, stderr, file
//	  file:
//	    path: "./log/userdata.log"
//	    max_size: 10     # megabytes before rotation
//	    max_backups: 3
//	    max_age: 28      # days
//	    compress: true
//
// Every NewUserData call returns an independent logger instance; there is
// no shared name-keyed registry, so repeated calls never duplicate output.
package logging
