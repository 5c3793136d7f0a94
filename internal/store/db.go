package store

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

var (
	// ErrNotFound is returned when a row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a write would break a uniqueness rule.
	ErrConflict = errors.New("conflict")

	// ErrInvalid is returned when a write payload breaks a field constraint.
	ErrInvalid = errors.New("invalid input")
)

// DB is the sqlite-backed process catalog.
type DB struct {
	sql *sql.DB
	now func() time.Time
}

// Open connects to the sqlite database at path and creates missing tables.
func Open(path string) (*DB, error) {
	conn, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open catalog db: %w", err)
	}
	// sqlite serializes writers anyway; one connection keeps :memory: databases shared.
	conn.SetMaxOpenConns(1)

	db := &DB{sql: conn, now: func() time.Time { return time.Now().UTC() }}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, err
	}
	log.Printf("🗄️  Catalog database ready at %s", path)
	return db, nil
}

// Close releases the connection.
func (db *DB) Close() error {
	return db.sql.Close()
}

func (db *DB) migrate() error {
	processTable := `
	CREATE TABLE IF NOT EXISTS processes (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		active INTEGER NOT NULL DEFAULT 1,
		created_at DATETIME,
		updated_at DATETIME
	);
	`
	subProcessTable := `
	CREATE TABLE IF NOT EXISTS sub_processes (
		id TEXT PRIMARY KEY,
		process_id TEXT NOT NULL REFERENCES processes(id),
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		created_at DATETIME,
		updated_at DATETIME
	);
	`
	productivityTable := `
	CREATE TABLE IF NOT EXISTS productivity (
		id TEXT PRIMARY KEY,
		process_id TEXT NOT NULL UNIQUE REFERENCES processes(id),
		target_per_hour REAL NOT NULL,
		fatigue_factor REAL NOT NULL,
		displacement_time_minutes REAL NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);
	`

	for _, stmt := range []string{processTable, subProcessTable, productivityTable} {
		if _, err := db.sql.Exec(stmt); err != nil {
			return fmt.Errorf("migrate catalog db: %w", err)
		}
	}
	return nil
}

// notFound maps sql.ErrNoRows to ErrNotFound.
func notFound(err error, what, id string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", what, id, ErrNotFound)
	}
	return err
}

func checkAffected(res sql.Result, what, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", what, id, ErrNotFound)
	}
	return nil
}
