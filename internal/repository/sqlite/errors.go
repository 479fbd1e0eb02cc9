package sqlite

import (
	"database/sql"
	"errors"
	"strings"
)

// isNoRowsError checks if error is a "no rows" error
func isNoRowsError(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// isStorageError checks if error indicates the database itself is
// unavailable (locked, out of space, disk I/O) rather than a logic error
func isStorageError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "disk I/O error") ||
		strings.Contains(msg, "database or disk is full")
}
