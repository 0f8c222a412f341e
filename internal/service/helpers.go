package service

import "strings"

// isUniqueViolation reports whether a DB error is a unique constraint
// violation, for both PostgreSQL (SQLSTATE 23505) and SQLite wording.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505")
}
