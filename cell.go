package texttable

import "fmt"

// A Cell is anything that can render itself as table text. Rendering must be
// deterministic: a cell is rendered once to measure its column and again to
// write it.
type Cell interface {
	String() string
}

// Text is a Cell holding pre-rendered text.
type Text string

// String returns the text unchanged.
func (t Text) String() string {
	return string(t)
}

// A Scalar is a Cell that renders an arbitrary value using fmt's default
// format, e.g. numbers, booleans, or durations.
type Scalar struct {
	V any
}

// Value returns a Cell that renders v using fmt's default format.
func Value(v any) Scalar {
	return Scalar{V: v}
}

// String renders the wrapped value.
func (s Scalar) String() string {
	return fmt.Sprint(s.V)
}

func identity(s string) string { return s }

func stringer[C Cell](c C) string { return c.String() }

func sprint(v any) string { return fmt.Sprint(v) }
