package service

import (
	"path/filepath"
	"testing"

	"bookatlas/book-discovery/internal/db"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// Services are tested against real repositories on a throwaway SQLite
// file, so the SQL and constraints are exercised too.
func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	pool, err := db.Connect(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })
	return pool
}

func strptr(s string) *string {
	return &s
}
