// Package users reads rows from the users table and reports them as
// semicolon-delimited key=value lines.
//
// The report line mirrors the table's column order:
//
//	name=Ann; email=ann@x.com; phone=555-1234; ssn=000-00-0000; password=pw1; ip=1.2.3.4; last_login=2024-01-01; user_agent=curl/8;
//
// By default the Reporter emits each line through the redacting user_data
// logger, so PII values reach stdout as "***". Redaction can be disabled for
// compatibility with the original tool, which printed rows raw.
package users
