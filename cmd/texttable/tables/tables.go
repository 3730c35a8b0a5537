// Package tables implements the tables command.
package tables

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/negz/texttable/internal/db"
	"github.com/negz/texttable/internal/output"
)

// Command lists the tables and views in a SQLite database.
type Command struct {
	DB string `env:"TEXTTABLE_DB" help:"Path to the SQLite database." required:"" short:"d" type:"existingfile"`
}

// Run executes the tables command.
func (c *Command) Run(w io.Writer) error {
	ctx := context.Background()

	store, err := db.Open(ctx, c.DB)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer store.Close() //nolint:errcheck // Nothing to do with error on program exit.

	tables, err := store.ListTables(ctx)
	if err != nil {
		return err
	}

	if len(tables) == 0 {
		_, err := fmt.Fprintf(w, "No tables in %s\n", c.DB)
		return err
	}

	rows := make([][]string, len(tables))
	for i, t := range tables {
		rows[i] = []string{t.Name, t.Type, strconv.FormatInt(t.Rows, 10)}
	}

	return output.Table(w, []string{"Name", "Type", "Rows"}, rows)
}
