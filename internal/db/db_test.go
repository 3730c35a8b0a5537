package db

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// newTestStore returns an in-memory Store seeded with a small fixture:
//
//	Table machines (key, name, year) with TAF, TZ, and MM. MM has no year.
//	Table "odd ""name""" with one row, to exercise identifier quoting.
//	View recent over machines released after 1992.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	ctx := context.Background()
	s, err := Open(ctx, ":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	for _, stmt := range []string{
		`CREATE TABLE machines (key TEXT PRIMARY KEY, name TEXT NOT NULL, year INTEGER, rating REAL)`,
		`INSERT INTO machines VALUES ('TAF', 'The Addams Family', 1992, 8.5)`,
		`INSERT INTO machines VALUES ('TZ', 'Twilight Zone', 1993, 8.25)`,
		`INSERT INTO machines VALUES ('MM', 'Medieval Madness', NULL, NULL)`,
		`CREATE TABLE "odd ""name""" (id INTEGER)`,
		`INSERT INTO "odd ""name""" VALUES (1)`,
		`CREATE VIEW recent AS SELECT key FROM machines WHERE year > 1992`,
	} {
		if _, err := s.DB().ExecContext(ctx, stmt); err != nil {
			t.Fatalf("Exec %q: %v", stmt, err)
		}
	}

	return s
}

func TestQuery(t *testing.T) {
	type args struct {
		query string
		args  []any
	}
	type want struct {
		result *Result
		err    error
	}
	cases := map[string]struct {
		reason string
		args   args
		want   want
	}{
		"AllColumns": {
			reason: "A query should return its columns and every row, with NULLs as nil.",
			args:   args{query: "SELECT key, name, year, rating FROM machines ORDER BY key"},
			want: want{result: &Result{
				Columns: []string{"key", "name", "year", "rating"},
				Rows: [][]any{
					{"MM", "Medieval Madness", nil, nil},
					{"TAF", "The Addams Family", int64(1992), 8.5},
					{"TZ", "Twilight Zone", int64(1993), 8.25},
				},
			}},
		},
		"Args": {
			reason: "Query arguments should be bound to placeholders.",
			args:   args{query: "SELECT name FROM machines WHERE key = ?", args: []any{"TZ"}},
			want: want{result: &Result{
				Columns: []string{"name"},
				Rows:    [][]any{{"Twilight Zone"}},
			}},
		},
		"NoRows": {
			reason: "A query that matches nothing should return its columns and no rows.",
			args:   args{query: "SELECT key FROM machines WHERE year > 3000"},
			want: want{result: &Result{
				Columns: []string{"key"},
				Rows:    [][]any{},
			}},
		},
		"BadSQL": {
			reason: "Invalid SQL should return an error.",
			args:   args{query: "SELECT FROM WHERE"},
			want:   want{err: cmpopts.AnyError},
		},
	}

	s := newTestStore(t)

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := s.Query(context.Background(), tc.args.query, tc.args.args...)
			if diff := cmp.Diff(tc.want.err, err, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("\n%s\nQuery(...): -want error, +got error:\n%s", tc.reason, diff)
			}
			if diff := cmp.Diff(tc.want.result, got); diff != "" {
				t.Errorf("\n%s\nQuery(...): -want, +got:\n%s", tc.reason, diff)
			}
		})
	}
}

func TestListTables(t *testing.T) {
	s := newTestStore(t)

	got, err := s.ListTables(context.Background())
	if err != nil {
		t.Fatalf("ListTables(...): unexpected error: %v", err)
	}

	want := []Table{
		{Name: "machines", Type: "table", Rows: 3},
		{Name: `odd "name"`, Type: "table", Rows: 1},
		{Name: "recent", Type: "view", Rows: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ListTables(...): -want, +got:\n%s", diff)
	}
}
