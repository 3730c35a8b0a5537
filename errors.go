package texttable

import "fmt"

// A RaggedRowError describes a row whose length differs from the first row's.
// Render panics with a *RaggedRowError before writing anything when it is
// given a ragged table.
type RaggedRowError struct {
	Row  int // Index of the offending row.
	Got  int // Number of cells in the offending row.
	Want int // Number of cells in the first row.
}

func (e *RaggedRowError) Error() string {
	return fmt.Sprintf("texttable: row %d has %d cells, want %d: rows must be the same length", e.Row, e.Got, e.Want)
}
