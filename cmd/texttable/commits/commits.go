// Package commits implements the log command.
package commits

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/negz/texttable/internal/gitlog"
	"github.com/negz/texttable/internal/output"
)

// Command shows a git repository's commit history.
type Command struct {
	Repo  string `arg:""     default:"."                             help:"Repository path, or remote URL to clone." optional:""`
	Limit int    `default:"20" help:"Maximum number of commits to show, or 0 for all." short:"n"`
}

// Run executes the log command.
func (c *Command) Run(log *slog.Logger, w io.Writer) error {
	ctx := context.Background()

	r, err := gitlog.NewClient(gitlog.WithLogger(log)).Open(ctx, c.Repo)
	if err != nil {
		return err
	}

	commits, err := gitlog.Log(r, c.Limit)
	if err != nil {
		return err
	}

	if err := output.Table(w, headers(), commitsToRows(commits)); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}

func headers() []string {
	return []string{"Commit", "Author", "Date", "Subject"}
}

func commitsToRows(commits []gitlog.Commit) [][]string {
	rows := make([][]string, len(commits))
	for i, c := range commits {
		rows[i] = []string{
			c.ShortHash(),
			c.Author,
			output.FormatTime(c.When),
			c.Subject,
		}
	}
	return rows
}
