package texttable

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter/tw"
)

const (
	space   = " "
	newline = "\n"
)

// Border glyphs follow tablewriter's ASCII style: '+' corners, '-' rows and
// '|' columns.
var (
	ascii      = tw.NewSymbols(tw.StyleASCII) //nolint:gochecknoglobals // Immutable glyph set.
	corner     = ascii.Center()               //nolint:gochecknoglobals // Immutable glyph.
	horizontal = ascii.Row()                  //nolint:gochecknoglobals // Immutable glyph.
	vertical   = ascii.Column()               //nolint:gochecknoglobals // Immutable glyph.
)

// A lineWriter writes table lines to an io.Writer. After the first failed
// write every subsequent write is a no-op and err holds the failure.
type lineWriter struct {
	w   io.Writer
	err error
}

func (l *lineWriter) write(s string) {
	if l.err != nil {
		return
	}
	_, l.err = io.WriteString(l.w, s)
}

// blank reports whether lines for the supplied widths should be omitted. A
// table with no columns, or whose first column is empty, renders nothing.
func blank(widths []int) bool {
	return len(widths) == 0 || widths[0] == 0
}

// border writes a horizontal rule, e.g. "+--------+-------+".
func (l *lineWriter) border(widths []int) {
	if blank(widths) {
		return
	}
	l.write(corner)
	for _, w := range widths {
		l.write(strings.Repeat(horizontal, w+2))
		l.write(corner)
	}
	l.write(newline)
}

// content writes one row of padded cells, e.g. "| single | line  |". The row
// must have one cell per width.
func content[C any](l *lineWriter, widths []int, row []C, text func(C) string) {
	if blank(widths) {
		return
	}
	l.write(vertical)
	for i, w := range widths {
		s := text(row[i])
		extra := w - len(s)
		if extra < 0 {
			panic(fmt.Sprintf("texttable: cell %q in column %d is %d bytes, wider than the column's measured width of %d", s, i, len(s), w))
		}
		l.write(space)
		l.write(s)
		l.write(strings.Repeat(space, extra+1))
		l.write(vertical)
	}
	l.write(newline)
}
