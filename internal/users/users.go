package users

import "fmt"

// User is one row of the users table, in column order. All values are
// treated as text; the table schema is owned by the audited application,
// not by this tool.
type User struct {
	Name      string
	Email     string
	Phone     string
	SSN       string
	Password  string
	IP        string
	LastLogin string
	UserAgent string
}

// Format renders a user as the report line: "key=value; " segments in
// column order, with a trailing separator after the last field.
func Format(u User) string {
	return fmt.Sprintf(
		"name=%s; email=%s; phone=%s; ssn=%s; password=%s; ip=%s; last_login=%s; user_agent=%s;",
		u.Name, u.Email, u.Phone, u.SSN, u.Password, u.IP, u.LastLogin, u.UserAgent,
	)
}
