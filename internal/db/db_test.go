package db

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConnect_CreatesSchema(t *testing.T) {
	pool, err := Connect(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer pool.Close()

	var tables []string
	err = pool.Select(&tables, `SELECT name FROM sqlite_master WHERE type = 'table' AND name IN ('user', 'favorite', 'search_history') ORDER BY name`)
	require.NoError(t, err)
	require.Equal(t, []string{"favorite", "search_history", "user"}, tables)
}

func TestConnect_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	first, err := Connect(path)
	require.NoError(t, err)
	_, err = first.Exec(`INSERT INTO user (username, password, is_admin, created_at) VALUES (?, ?, ?, ?)`,
		"alice", "hash", false, time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, first.Close())

	// Reconnecting must not wipe existing data.
	second, err := Connect(path)
	require.NoError(t, err)
	defer second.Close()

	var count int
	require.NoError(t, second.Get(&count, `SELECT COUNT(*) FROM user`))
	require.Equal(t, 1, count)
}

func TestConnect_EnforcesForeignKeys(t *testing.T) {
	pool, err := Connect(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer pool.Close()

	_, err = pool.Exec(`INSERT INTO favorite (user_id, book_id, title, added_at) VALUES (?, ?, ?, ?)`,
		999, "OL1M", "Orphan", time.Now().UTC())
	require.Error(t, err)
	require.Contains(t, err.Error(), "FOREIGN KEY constraint failed")
}

func TestConnect_EnforcesForeignKeysOnEveryConnection(t *testing.T) {
	pool, err := Connect(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer pool.Close()
	ctx := context.Background()

	// Pin two physical connections; the pragma must hold on both, not
	// just the one the schema ran on.
	first, err := pool.Conn(ctx)
	require.NoError(t, err)
	defer first.Close()
	second, err := pool.Conn(ctx)
	require.NoError(t, err)
	defer second.Close()

	for _, conn := range []*sql.Conn{first, second} {
		var enabled int
		require.NoError(t, conn.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&enabled))
		require.Equal(t, 1, enabled)

		_, err = conn.ExecContext(ctx, `INSERT INTO favorite (user_id, book_id, title, added_at) VALUES (?, ?, ?, ?)`,
			999, "OL1M", "Orphan", time.Now().UTC())
		require.Error(t, err)
		require.Contains(t, err.Error(), "FOREIGN KEY constraint failed")
	}
}

func TestConnect_CascadeDelete(t *testing.T) {
	pool, err := Connect(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer pool.Close()

	now := time.Now().UTC()
	res, err := pool.Exec(`INSERT INTO user (username, password, is_admin, created_at) VALUES (?, ?, ?, ?)`,
		"alice", "hash", false, now)
	require.NoError(t, err)
	userID, err := res.LastInsertId()
	require.NoError(t, err)

	_, err = pool.Exec(`INSERT INTO favorite (user_id, book_id, title, added_at) VALUES (?, ?, ?, ?)`,
		userID, "OL1M", "Dune", now)
	require.NoError(t, err)
	_, err = pool.Exec(`INSERT INTO search_history (user_id, search_query, search_type, searched_at) VALUES (?, ?, ?, ?)`,
		userID, "dune", "book", now)
	require.NoError(t, err)

	_, err = pool.Exec(`DELETE FROM user WHERE id = ?`, userID)
	require.NoError(t, err)

	var favorites, searches int
	require.NoError(t, pool.Get(&favorites, `SELECT COUNT(*) FROM favorite`))
	require.NoError(t, pool.Get(&searches, `SELECT COUNT(*) FROM search_history`))
	require.Zero(t, favorites)
	require.Zero(t, searches)
}
