// Package main implements the texttable CLI for rendering data as ASCII tables.
package main

import (
	"bufio"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/negz/texttable/cmd/texttable/commits"
	"github.com/negz/texttable/cmd/texttable/demo"
	"github.com/negz/texttable/cmd/texttable/query"
	"github.com/negz/texttable/cmd/texttable/tables"
	"github.com/negz/texttable/internal/version"
)

type cli struct {
	Debug   bool             `env:"TEXTTABLE_DEBUG" help:"Log debug output, including git progress, to stderr."`
	Version kong.VersionFlag `help:"Print the version and exit."`

	Demo   demo.Command    `cmd:"" help:"Render sample tables."`
	Query  query.Command   `cmd:"" help:"Run a SQL query against a SQLite database."`
	Tables tables.Command  `cmd:"" help:"List the tables in a SQLite database."`
	Log    commits.Command `cmd:"" help:"Show a git repository's commit history."`
}

func main() {
	// Tables are written in many small writes.
	out := bufio.NewWriter(os.Stdout)

	c := &cli{}
	ctx := kong.Parse(c,
		kong.Name("texttable"),
		kong.Description("Render data as bordered ASCII tables."),
		kong.UsageOnError(),
		kong.Vars{"version": version.Version},
		kong.BindTo(out, (*io.Writer)(nil)),
	)

	err := ctx.Run(newLogger(os.Stderr, c.Debug))
	ctx.FatalIfErrorf(flush(out, err))
}

// newLogger returns a text logger that writes to w at info level, or at debug
// level if debug is true.
func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// A flusher buffers output until it is flushed.
type flusher interface {
	Flush() error
}

// flush flushes f. It returns err if it is non-nil, otherwise any error
// flushing f.
func flush(f flusher, err error) error {
	if ferr := f.Flush(); err == nil {
		return ferr
	}
	return err
}
