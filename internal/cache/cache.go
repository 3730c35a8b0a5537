// Package cache manages the local texttable cache.
package cache

import (
	"os"
	"path/filepath"
	"strings"
)

// Dir returns the texttable cache directory.
//
// It uses os.UserCacheDir, which respects XDG_CACHE_HOME on Linux, uses
// ~/Library/Caches on macOS, and %LocalAppData% on Windows. If the user cache
// directory can't be determined it falls back to the system temp directory.
func Dir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "texttable")
	}
	return filepath.Join(base, "texttable")
}

// RepoDir returns the directory under dir that holds a clone of the git
// remote at url. Equivalent HTTPS and SSH remotes share a directory, e.g.
// https://github.com/negz/texttable.git and git@github.com:negz/texttable
// both map to dir/repos/github.com_negz_texttable.
func RepoDir(dir, url string) string {
	name := url
	if i := strings.Index(name, "://"); i >= 0 {
		name = name[i+len("://"):]
	}

	// Drop userinfo, e.g. git@.
	at := strings.Index(name, "@")
	slash := strings.Index(name, "/")
	if at >= 0 && (slash < 0 || at < slash) {
		name = name[at+1:]
	}

	name = strings.TrimSuffix(name, "/")
	name = strings.TrimSuffix(name, ".git")
	name = strings.NewReplacer(":", "_", "/", "_", "\\", "_").Replace(name)

	return filepath.Join(dir, "repos", name)
}
