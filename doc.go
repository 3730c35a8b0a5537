// Package texttable renders rows of cells as a bordered monospace ASCII
// table.
//
// Rendering makes two passes over the rows. The first measures the widest
// cell of each column, the second streams border and content lines to the
// writer:
//
//	+--------+-------+
//	| single | line  |
//	+--------+-------+
//	| second | lines |
//	+--------+-------+
//
// Every line is written as a sequence of small writes. Wrap the writer in a
// bufio.Writer when it is backed by a file or network connection.
//
// Column widths are measured in bytes of the rendered cell text, so cells
// containing multi-byte UTF-8 characters are padded as if they were wider
// than they display.
//
// The border glyphs are tablewriter's ASCII style symbols, so tables rendered
// here match tablewriter's ASCII tables elsewhere in a program.
package texttable
