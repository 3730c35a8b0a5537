// Package query implements the query command.
package query

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/negz/texttable/internal/db"
	"github.com/negz/texttable/internal/output"
)

// Command runs SQL queries against a SQLite database.
type Command struct {
	DB string `env:"TEXTTABLE_DB" help:"Path to the SQLite database." required:"" short:"d" type:"existingfile"`

	SQL string `arg:"" help:"SQL query to execute."`
}

// Run executes the query command.
func (c *Command) Run(log *slog.Logger, w io.Writer) error {
	ctx := context.Background()

	store, err := db.Open(ctx, c.DB)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer store.Close() //nolint:errcheck // Nothing to do with error on program exit.

	log.Debug("Running query", "db", c.DB, "sql", c.SQL)
	r, err := store.Query(ctx, c.SQL)
	if err != nil {
		return err
	}
	log.Debug("Query complete", "columns", len(r.Columns), "rows", len(r.Rows))

	if err := output.Table(w, r.Columns, output.FormatValues(r.Rows)); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}
