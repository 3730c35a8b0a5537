// Package db runs queries against SQLite databases.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite" // SQL driver registration.
)

// Store is a SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// Each connection to :memory: is a distinct database.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON;"); err != nil {
		db.Close() //nolint:errcheck // Already returning an error.
		return nil, fmt.Errorf("set pragmas: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying database connection for direct queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// A Result is the columns and rows returned by a query. Every row has one
// value per column. Values are whatever the driver scanned: int64, float64,
// string, []byte, or nil for NULL.
type Result struct {
	Columns []string
	Rows    [][]any
}

// Query runs the supplied SQL and reads every row it returns.
func (s *Store) Query(ctx context.Context, query string, args ...any) (*Result, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close() //nolint:errcheck // Errors surface in rows.Err.

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("get columns: %w", err)
	}

	r := &Result{Columns: cols, Rows: [][]any{}}
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		r.Rows = append(r.Rows, values)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return r, nil
}

// A Table is a table or view in the database.
type Table struct {
	Name string
	Type string // 'table' or 'view'.
	Rows int64
}

// ListTables returns the tables and views in the database, sorted by name,
// with the number of rows in each. SQLite's internal tables are omitted.
func (s *Store) ListTables(ctx context.Context) ([]Table, error) {
	r, err := s.Query(ctx, `
		SELECT name, type FROM sqlite_master
		WHERE type IN ('table', 'view') AND name NOT LIKE 'sqlite_%'
		ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}

	tables := make([]Table, 0, len(r.Rows))
	for _, row := range r.Rows {
		t := Table{Name: fmt.Sprint(row[0]), Type: fmt.Sprint(row[1])}

		count := "SELECT COUNT(*) FROM " + quote(t.Name)
		if err := s.db.QueryRowContext(ctx, count).Scan(&t.Rows); err != nil {
			return nil, fmt.Errorf("count rows in %s: %w", t.Name, err)
		}
		tables = append(tables, t)
	}

	return tables, nil
}

// quote returns name as a quoted SQL identifier.
func quote(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
