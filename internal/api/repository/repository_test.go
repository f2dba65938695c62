package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"bookatlas/book-discovery/internal/api/models"
	"bookatlas/book-discovery/internal/db"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	pool, err := db.Connect(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })
	return pool
}

// newTestUser inserts a user row so favorite/history rows have a valid
// foreign key to hang off.
func newTestUser(t *testing.T, pool *sqlx.DB, username string) int64 {
	t.Helper()
	user := &models.User{
		Username:  username,
		Password:  "$2a$10$notarealhashnotarealhashnotarealhashnotarealhash",
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, NewUserRepository(pool).Create(context.Background(), user))
	return user.ID
}

func strptr(s string) *string {
	return &s
}
