package utils

import "strings"

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505), optionally on a specific constraint name.
func IsUniqueViolation(err error, constraint string) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	if !strings.Contains(msg, "23505") && !strings.Contains(msg, "duplicate key value violates unique constraint") {
		return false
	}
	if constraint == "" {
		return true
	}
	return strings.Contains(msg, constraint)
}
