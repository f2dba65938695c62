package db

import (
	"fmt"

	_ "github.com/glebarez/go-sqlite"
	"github.com/jmoiron/sqlx"
)

// schema is applied at connection time; there is no migration tooling.
// The history table names its query column search_query from the start.
const schema = `
CREATE TABLE IF NOT EXISTS user (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL,
	is_admin BOOLEAN NOT NULL DEFAULT 0,
	created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS favorite (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL REFERENCES user(id) ON DELETE CASCADE,
	book_id TEXT NOT NULL,
	title TEXT NOT NULL,
	author TEXT,
	cover_url TEXT,
	added_at TIMESTAMP NOT NULL,
	UNIQUE (user_id, book_id)
);

CREATE TABLE IF NOT EXISTS search_history (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL REFERENCES user(id) ON DELETE CASCADE,
	search_query TEXT NOT NULL,
	search_type TEXT,
	searched_at TIMESTAMP NOT NULL
);
`

// Connect opens the SQLite database at dbPath, enables foreign keys and
// ensures the schema exists. The returned handle is passed explicitly to
// every repository; there is no package-level connection.
//
// foreign_keys is per-connection state in SQLite, so it goes in the DSN:
// the driver then applies it to every connection the pool opens, not
// just the first.
func Connect(dbPath string) (*sqlx.DB, error) {
	pool, err := sqlx.Open("sqlite", dbPath+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if _, err := pool.Exec(schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return pool, nil
}
