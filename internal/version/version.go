// Package version reports the texttable build version.
package version

// Version is the texttable version, overridden via ldflags when releasing.
var Version = "v0.0.0-dev" //nolint:gochecknoglobals // Set by ldflags at build time.
