package output

import (
	"fmt"
	"strconv"
	"time"
)

// FormatValue formats a value scanned from a database column for display.
// NULL renders as an empty string, and byte slices render as text.
func FormatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case time.Time:
		return FormatTime(v)
	default:
		return fmt.Sprint(v)
	}
}

// FormatValues formats each row of values using FormatValue.
func FormatValues(rows [][]any) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = make([]string, len(row))
		for j, v := range row {
			out[i][j] = FormatValue(v)
		}
	}
	return out
}

// FormatTime formats a timestamp to the second, in its own time zone.
func FormatTime(t time.Time) string {
	return t.Format(time.DateTime)
}
