// Package demo implements the demo command.
package demo

import (
	"fmt"
	"io"
	"time"

	"github.com/negz/texttable"
)

// Command renders sample tables.
type Command struct{}

// Run executes the demo command.
func (c *Command) Run(w io.Writer) error {
	if err := texttable.Render(w, [][]string{{"A", "2x2"}, {"pretty", "table"}}); err != nil {
		return fmt.Errorf("write text table: %w", err)
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	if err := texttable.RenderValues(w, [][]any{
		{"machine", "year", "rating"},
		{"The Addams Family", 1992, 8.5},
		{"Twilight Zone", 1993, 8.25},
	}); err != nil {
		return fmt.Errorf("write value table: %w", err)
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	if err := texttable.RenderCells(w, [][]texttable.Cell{
		{texttable.Text("timeout"), texttable.Value(1500 * time.Millisecond)},
		{texttable.Text("retries"), texttable.Value(3)},
	}); err != nil {
		return fmt.Errorf("write cell table: %w", err)
	}

	return nil
}
