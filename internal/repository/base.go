// Package repository implements the data access layer for the application.
//
// Every mutating operation is atomic at the store's transaction boundary and
// failures are translated into the application error taxonomy: constraint
// violations become Conflict, absent rows become NotFound, anything else
// becomes Internal.
package repository

import "strings"

// isConstraintViolation checks if a DB error is a uniqueness or foreign key
// constraint violation.
func isConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	// PostgreSQL unique violation 23505, FK violation 23503; sqlite reports
	// "UNIQUE constraint failed" / "FOREIGN KEY constraint failed".
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "foreign key constraint") ||
		strings.Contains(msg, "23505") ||
		strings.Contains(msg, "23503")
}
