// Package database opens the SQLite credential store and bootstraps its
// schema. The refresh_tokens table keys on user_id, which is what gives the
// store its upsert-one-record-per-user semantics.
package database

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
	"github.com/pkg/errors"
)

const (
	dirPermissions    = 0750
	connectionTimeout = 5 * time.Second
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	name          TEXT NOT NULL,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	created_at    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS refresh_tokens (
	user_id    TEXT PRIMARY KEY REFERENCES users(id),
	token      TEXT NOT NULL,
	created_at TEXT NOT NULL
);
`

// Open connects to the SQLite database at path, creating the file and its
// directory if needed, and ensures the schema exists.
func Open(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			return nil, errors.Wrap(err, "[database.Open] creating database directory")
		}
	}

	db, err := sql.Open("sqlite3", "file:"+path+"?_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, errors.Wrap(err, "[database.Open] sql.Open")
	}
	// SQLite serializes writes; a single connection also keeps :memory:
	// databases stable across the pool.
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), connectionTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "[database.Open] ping")
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "[database.Open] creating schema")
	}

	return db, nil
}
