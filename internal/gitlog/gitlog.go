// Package gitlog reads commit history from git repositories.
package gitlog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"

	"github.com/negz/texttable/internal/cache"
)

// A Commit is a summary of a git commit.
type Commit struct {
	Hash    string
	Author  string
	When    time.Time
	Subject string // First line of the commit message.
}

// ShortHash returns the commit hash abbreviated to seven characters.
func (c Commit) ShortHash() string {
	if len(c.Hash) <= 7 {
		return c.Hash
	}
	return c.Hash[:7]
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithLogger sets the logger for progress output.
func WithLogger(l *slog.Logger) ClientOption {
	return func(c *Client) {
		c.log = l
	}
}

// WithCacheDir sets the directory remote repositories are cloned into.
func WithCacheDir(dir string) ClientOption {
	return func(c *Client) {
		c.cacheDir = dir
	}
}

// Client opens local git repositories, and keeps clones of remote ones.
type Client struct {
	cacheDir string
	log      *slog.Logger
}

// NewClient creates a new git client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		cacheDir: cache.Dir(),
		log:      slog.New(slog.DiscardHandler),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// IsRemote reports whether repo looks like a remote URL rather than a local
// path.
func IsRemote(repo string) bool {
	return strings.Contains(repo, "://") || strings.HasPrefix(repo, "git@")
}

// Open opens the supplied repository. A local path may point anywhere inside
// a worktree. A remote URL is cloned into the cache directory on first use,
// and pulled on subsequent uses.
func (c *Client) Open(ctx context.Context, repo string) (*git.Repository, error) {
	if !IsRemote(repo) {
		r, err := git.PlainOpenWithOptions(repo, &git.PlainOpenOptions{DetectDotGit: true})
		if err != nil {
			return nil, fmt.Errorf("open repo %s: %w", repo, err)
		}
		return r, nil
	}

	path := cache.RepoDir(c.cacheDir, repo)
	if err := c.pull(ctx, repo, path); err != nil {
		return nil, fmt.Errorf("sync %s: %w", repo, err)
	}

	r, err := git.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("open repo: %w", err)
	}
	return r, nil
}

// pull clones or updates a clone of url at path.
func (c *Client) pull(ctx context.Context, url, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	var progress io.Writer
	if c.log.Enabled(ctx, slog.LevelDebug) {
		progress = os.Stderr
	}

	if _, err := os.Stat(filepath.Join(path, ".git")); err == nil {
		c.log.Info("Updating repository", "url", url)
		r, err := git.PlainOpen(path)
		if err != nil {
			return fmt.Errorf("open repo: %w", err)
		}
		w, err := r.Worktree()
		if err != nil {
			return fmt.Errorf("get worktree: %w", err)
		}
		if err := w.Reset(&git.ResetOptions{Mode: git.HardReset}); err != nil {
			return fmt.Errorf("reset worktree: %w", err)
		}
		if err := w.PullContext(ctx, &git.PullOptions{Progress: progress}); err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
			return err
		}
		return nil
	}

	c.log.Info("Cloning repository", "url", url)
	_, err := git.PlainCloneContext(ctx, path, false, &git.CloneOptions{
		URL:          url,
		SingleBranch: true,
		Progress:     progress,
	})
	return err
}

// Log returns up to limit commits reachable from HEAD, newest first. A limit
// of zero or less returns every commit.
func Log(r *git.Repository, limit int) ([]Commit, error) {
	iter, err := r.Log(&git.LogOptions{})
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	defer iter.Close()

	var commits []Commit
	err = iter.ForEach(func(c *object.Commit) error {
		if limit > 0 && len(commits) >= limit {
			return storer.ErrStop
		}
		commits = append(commits, Commit{
			Hash:    c.Hash.String(),
			Author:  c.Author.Name,
			When:    c.Author.When,
			Subject: subject(c.Message),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk commits: %w", err)
	}

	return commits, nil
}

// subject returns the first line of a commit message.
func subject(msg string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(msg), "\n")
	return strings.TrimSpace(line)
}
