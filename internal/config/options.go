// Package config holds the run options assembled from command-line flags.
// There is no config file and no environment lookup.
package config

import (
	"path/filepath"
	"strings"

	"github.com/lakshaymaurya-felt/rust-cleanup/internal/project"
)

// DefaultPath is the scan root used when --path is not given.
const DefaultPath = "."

// Options controls a single sweep.
type Options struct {
	// Path is the directory the scan starts from.
	Path string

	// AutoClean lists the project types cleaned without prompting.
	AutoClean project.AutoClean

	// DryRun reports what would be cleaned without prompting or running
	// any clean command.
	DryRun bool

	// Summary prints counts and reclaimed disk space after the run.
	Summary bool

	// Debug enables debug-level logs on stderr.
	Debug bool
}

// Default returns Options with every field at its default.
func Default() Options {
	return Options{Path: DefaultPath}
}

// Normalize fills in defaults and cleans the path. The path keeps its
// relative form so printed project paths match what the user typed.
func (o Options) Normalize() Options {
	p := strings.TrimSpace(o.Path)
	if p == "" {
		p = DefaultPath
	}
	o.Path = filepath.Clean(p)
	return o
}
