// Package storage holds one run's scored data in an in-memory SQLite database
// so it can be queried with SQL. Nothing outlives the process.
package storage

import (
	"database/sql"
	_ "embed"
	"fmt"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// DB wraps a sql.DB for the run store.
type DB struct {
	conn *sql.DB
}

// Open opens the SQLite database at the given path and applies the schema.
// The CLI always passes ":memory:".
func Open(path string) (*DB, error) {
	dsn := "file:" + path
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// Each connection to :memory: is its own database.
	conn.SetMaxOpenConns(1)
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &DB{conn: conn}, nil
}

// Close closes the underlying connection.
func (db *DB) Close() error {
	return db.conn.Close()
}
