package redact

import "regexp"

const (
	// Redaction is the marker substituted for every redacted value.
	Redaction = "***"

	// Separator terminates each key=value segment in a message.
	Separator = ";"
)

// PIIFields are the personally identifiable fields watched by the user_data
// logger and the users report. Order is fixed for deterministic output.
var PIIFields = []string{"name", "email", "phone", "ssn", "password"}

// Filter returns message with the value of every named field redacted.
//
// For each field, every occurrence of "<field>=<value><separator>" becomes
// "<field>=<redaction><separator>". The value is matched lazily, so it ends
// at the first separator and cannot itself contain one. Fields are processed
// sequentially in the order given; a field that does not occur in the
// message leaves it unchanged.
//
// Field names and the separator are quoted before compilation, so names
// containing pattern metacharacters match literally.
func Filter(fields []string, redaction, message, separator string) string {
	sep := regexp.QuoteMeta(separator)
	for _, field := range fields {
		pattern := regexp.MustCompile(regexp.QuoteMeta(field) + "=.*?" + sep)
		message = pattern.ReplaceAllLiteralString(message, field+"="+redaction+separator)
	}
	return message
}
