package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// dbConn is the query surface shared by *sql.DB and *sql.Tx, so the same
// repository code runs inside and outside a transaction.
type dbConn interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
}

// rowScanner is the subset of *sql.Rows the scan helpers need.
type rowScanner interface {
	Next() bool
	Scan(dest ...interface{}) error
}

type DB struct {
	conn *sql.DB
}

// New opens the SQLite file and applies the session pragmas the schema
// relies on. busy_timeout makes concurrent calendar reads queue behind an
// override write instead of failing with SQLITE_BUSY.
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := conn.Exec(pragma); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}

	return &DB{conn: conn}, nil
}

// DB exposes the underlying handle for the migrator.
func (db *DB) DB() *sql.DB {
	return db.conn
}

func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) Begin() (*sql.Tx, error) {
	return db.conn.Begin()
}
