// Package storage is the persistence gateway: parameterized reads and writes
// against SQLite, one connection checkout per statement.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"logbook/internal/core"

	"modernc.org/sqlite"
)

// SQLite extended result code for UNIQUE constraint violations
// (SQLITE_CONSTRAINT_UNIQUE).
const sqliteConstraintUnique = 2067

// Store runs single statements against the database. Every call pins one
// connection, runs exactly one statement, and releases the connection on
// every exit path. No state is cached between calls.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the SQLite database at dbPath and applies
// pending migrations.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Select runs one read-only statement. scan is invoked once per row and must
// fully materialize the row before returning; the connection is released
// before Select returns, success or failure.
func (s *Store) Select(ctx context.Context, query string, scan func(*sql.Rows) error, args ...any) error {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return &core.StorageError{Op: "acquire", Err: err}
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return &core.StorageError{Op: "select", Err: err}
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return &core.StorageError{Op: "scan", Err: err}
		}
	}
	if err := rows.Err(); err != nil {
		return &core.StorageError{Op: "select", Err: err}
	}
	return nil
}

// Execute runs one parameterized write. For INSERT statements it returns the
// generated id, otherwise the affected-row count.
func (s *Store) Execute(ctx context.Context, query string, args ...any) (int64, error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return 0, &core.StorageError{Op: "acquire", Err: err}
	}
	defer conn.Close()

	res, err := conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, &core.StorageError{Op: "execute", Err: err}
	}

	if strings.HasPrefix(strings.ToUpper(strings.TrimSpace(query)), "INSERT") {
		id, err := res.LastInsertId()
		if err != nil {
			return 0, &core.StorageError{Op: "execute", Err: err}
		}
		return id, nil
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, &core.StorageError{Op: "execute", Err: err}
	}
	return n, nil
}

// isUniqueViolation reports whether err was caused by a UNIQUE constraint,
// looking through the StorageError wrapper.
func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	return errors.As(err, &se) && se.Code() == sqliteConstraintUnique
}
