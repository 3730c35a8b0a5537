// Package output provides formatted output helpers for CLI commands.
package output

import (
	"io"

	"github.com/negz/texttable"
)

// Table renders a header row followed by rows as a bordered ASCII table.
func Table(w io.Writer, headers []string, rows [][]string) error {
	all := make([][]string, 0, len(rows)+1)
	all = append(all, headers)
	all = append(all, rows...)
	return texttable.Render(w, all)
}
