package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// Status describes the state of the database handle as seen by the
// diagnostics endpoint.
type Status int

const (
	// StatusUnavailable means opening or pinging the database failed.
	StatusUnavailable Status = iota
	// StatusUninitialized means no connection was configured at startup.
	StatusUninitialized
	// StatusConnected means the handle answered a ping at startup.
	StatusConnected
)

// Prober is the read-only view of the database used by diagnostics.
type Prober interface {
	Status() Status
	ListTables(ctx context.Context, limit int) ([]string, error)
}

// Database wraps the sql handle together with the outcome of the startup
// probe, so callers can distinguish "never configured" from "broken".
type Database struct {
	db      *sql.DB
	openErr error
}

// Open resolves the database handle from the connection string. It never
// fails the process: an empty DSN yields an uninitialized handle and a
// connection failure is recorded and reported through Status.
func Open(dsn string) *Database {
	if dsn == "" {
		return &Database{}
	}

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return &Database{openErr: err}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return &Database{openErr: fmt.Errorf("failed to connect to database: %w", err)}
	}

	if err := ensureSchema(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return &Database{openErr: fmt.Errorf("failed creating schema resources: %w", err)}
	}

	return &Database{db: sqlDB}
}

// ensureSchema creates the contactmessage table on first start.
func ensureSchema(ctx context.Context, sqlDB *sql.DB) error {
	_, err := sqlDB.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS contactmessage (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			phone      TEXT NOT NULL,
			email      TEXT,
			message    TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	return err
}

// Status reports the startup probe outcome.
func (d *Database) Status() Status {
	switch {
	case d == nil || d.openErr != nil:
		return StatusUnavailable
	case d.db == nil:
		return StatusUninitialized
	default:
		return StatusConnected
	}
}

// Conn returns the underlying sql handle, or nil when the database is not
// connected.
func (d *Database) Conn() *sql.DB {
	if d == nil {
		return nil
	}
	return d.db
}

// Err returns the startup error, if any.
func (d *Database) Err() error {
	if d == nil {
		return nil
	}
	return d.openErr
}

// ListTables returns up to limit table names from the public schema.
func (d *Database) ListTables(ctx context.Context, limit int) ([]string, error) {
	if d == nil || d.db == nil {
		return nil, fmt.Errorf("database not initialized")
	}

	rows, err := d.db.QueryContext(ctx, `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = 'public'
		ORDER BY table_name
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tables := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}

// Close closes the underlying handle.
func (d *Database) Close() error {
	if d == nil || d.db == nil {
		return nil
	}
	return d.db.Close()
}
