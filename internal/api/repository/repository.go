package repository

import "strings"

// isUniqueViolation reports whether err came from a SQLite UNIQUE
// constraint. The driver exposes no typed constraint error, so the
// message is the contract.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
