package output

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestFormatValue(t *testing.T) {
	type args struct {
		v any
	}
	type want struct {
		result string
	}
	cases := map[string]struct {
		reason string
		args   args
		want   want
	}{
		"Nil": {
			reason: "A NULL value should be formatted as an empty string.",
			args:   args{v: nil},
			want:   want{result: ""},
		},
		"String": {
			reason: "A string should be formatted unchanged.",
			args:   args{v: "The Addams Family"},
			want:   want{result: "The Addams Family"},
		},
		"Bytes": {
			reason: "A byte slice should be formatted as text.",
			args:   args{v: []byte("blob")},
			want:   want{result: "blob"},
		},
		"Integer": {
			reason: "An integer should be formatted in base 10.",
			args:   args{v: int64(-42)},
			want:   want{result: "-42"},
		},
		"Float": {
			reason: "A float should be formatted without an exponent or trailing zeros.",
			args:   args{v: 1234567.5},
			want:   want{result: "1234567.5"},
		},
		"Float32": {
			reason: "A float32 should be formatted at its own precision.",
			args:   args{v: float32(0.1)},
			want:   want{result: "0.1"},
		},
		"Bool": {
			reason: "A bool should be formatted as true or false.",
			args:   args{v: true},
			want:   want{result: "true"},
		},
		"Time": {
			reason: "A timestamp should be formatted to the second.",
			args:   args{v: time.Date(2024, 1, 15, 19, 30, 5, 999, time.UTC)},
			want:   want{result: "2024-01-15 19:30:05"},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := FormatValue(tc.args.v)
			if diff := cmp.Diff(tc.want.result, got); diff != "" {
				t.Errorf("\n%s\nFormatValue(...): -want, +got:\n%s", tc.reason, diff)
			}
		})
	}
}

func TestFormatValues(t *testing.T) {
	type args struct {
		rows [][]any
	}
	type want struct {
		rows [][]string
	}
	cases := map[string]struct {
		reason string
		args   args
		want   want
	}{
		"NoRows": {
			reason: "No rows should be formatted as no rows.",
			args:   args{rows: [][]any{}},
			want:   want{rows: [][]string{}},
		},
		"MixedRows": {
			reason: "Every value in every row should be formatted.",
			args:   args{rows: [][]any{{int64(1), "TAF", nil}, {int64(2), "TZ", 1.5}}},
			want:   want{rows: [][]string{{"1", "TAF", ""}, {"2", "TZ", "1.5"}}},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := FormatValues(tc.args.rows)
			if diff := cmp.Diff(tc.want.rows, got); diff != "" {
				t.Errorf("\n%s\nFormatValues(...): -want, +got:\n%s", tc.reason, diff)
			}
		})
	}
}
