package texttable

// Widths returns the length in bytes of the longest cell in each column. It
// returns nil if there are no rows.
//
// Widths panics with a *RaggedRowError if any row's length differs from the
// first row's.
func Widths(rows [][]string) []int {
	return widths(rows, identity)
}

func widths[C any](rows [][]C, text func(C) string) []int {
	if len(rows) == 0 {
		return nil
	}

	cols := len(rows[0])
	w := make([]int, cols)
	for i, row := range rows {
		if len(row) != cols {
			panic(&RaggedRowError{Row: i, Got: len(row), Want: cols})
		}
		for col, c := range row {
			w[col] = max(w[col], len(text(c)))
		}
	}
	return w
}
