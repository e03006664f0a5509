// Package repository persists processing runs and their segments in
// SQLite.
package repository

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps the sqlite handle used by the run store.
type DB struct {
	*sql.DB
	path string
}

// Open opens or creates the SQLite database at the given path and makes
// sure the schema exists. Use ":memory:" for an ephemeral store.
func Open(path string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	db := &DB{DB: sqlDB, path: path}
	if err := db.InitSchema(); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// InitSchema creates the tables if they do not exist.
func (db *DB) InitSchema() error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("initialize schema: %w", err)
	}
	return nil
}

// Path returns the database file path.
func (db *DB) Path() string {
	return db.path
}
