package texttable

import "io"

// Render writes rows of text cells to w as a bordered table. Each row is
// preceded and followed by a border line, so n rows produce 2n+1 lines. A
// table with no rows or no columns produces no output.
//
// Render returns the first error returned by w, and writes nothing after it.
// It panics with a *RaggedRowError, before writing anything, if the rows are
// not all the same length.
func Render(w io.Writer, rows [][]string) error {
	return render(w, rows, identity)
}

// RenderCells writes rows of cells to w as a bordered table. It behaves like
// Render, rendering each cell with its String method.
func RenderCells[C Cell](w io.Writer, rows [][]C) error {
	return render(w, rows, stringer[C])
}

// RenderValues writes rows of arbitrary values to w as a bordered table. It
// behaves like Render, rendering each value using fmt's default format. Rows
// may mix types, e.g. strings and numbers.
func RenderValues(w io.Writer, rows [][]any) error {
	return render(w, rows, sprint)
}

func render[C any](w io.Writer, rows [][]C, text func(C) string) error {
	cols := widths(rows, text)

	l := &lineWriter{w: w}
	l.border(cols)
	for _, row := range rows {
		if l.err != nil {
			break
		}
		content(l, cols, row, text)
		l.border(cols)
	}
	return l.err
}
