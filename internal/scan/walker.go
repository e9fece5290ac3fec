// Package scan enumerates every directory under a root.
package scan

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/lakshaymaurya-felt/rust-cleanup/internal/logging"
)

// maxWarnings caps the number of unreadable entries remembered per walk.
const maxWarnings = 500

// VisitFunc is called once per directory, the root included. A non-nil
// error stops the walk and is returned from Walk unchanged.
type VisitFunc func(dir string) error

// RootError reports that the scan root itself could not be read.
type RootError struct {
	Path string
	Err  error
}

func (e *RootError) Error() string {
	return fmt.Sprintf("cannot access %s: %v", e.Path, e.Err)
}

func (e *RootError) Unwrap() error {
	return e.Err
}

// Walker performs a sequential, depth-first directory walk. Unreadable
// entries below the root are recorded as warnings and skipped.
type Walker struct {
	log      *slog.Logger
	warnings []string
	visited  int
}

// NewWalker returns a Walker logging through the "scan" component.
func NewWalker() *Walker {
	return &Walker{log: logging.New("scan")}
}

// Warnings returns the entries skipped during the last walk.
func (w *Walker) Warnings() []string {
	return append([]string(nil), w.warnings...)
}

// Visited returns how many directories were passed to the visitor.
func (w *Walker) Visited() int {
	return w.visited
}

func (w *Walker) addWarning(path string, err error) {
	w.log.Debug("skipping unreadable entry", "path", path, "error", err)
	if len(w.warnings) < maxWarnings {
		w.warnings = append(w.warnings, path+": "+err.Error())
	}
}

// Walk calls visit for root and every directory beneath it in lexical
// order. Symbolic links below the root are not followed; a root that is
// itself a link to a directory is entered.
func (w *Walker) Walk(ctx context.Context, root string, visit VisitFunc) error {
	w.warnings = nil
	w.visited = 0

	start, err := resolveRoot(root)
	if err != nil {
		return err
	}

	err = filepath.WalkDir(start, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == start {
				return &RootError{Path: root, Err: err}
			}
			w.addWarning(path, err)
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if !d.IsDir() {
			return nil
		}
		w.visited++
		return visit(path)
	})

	w.log.Debug("walk finished", "root", root, "directories", w.visited, "skipped", len(w.warnings))
	return err
}

// resolveRoot checks that root is reachable. When root is a symbolic link
// to a directory a trailing separator is added so WalkDir descends into it.
func resolveRoot(root string) (string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return "", &RootError{Path: root, Err: err}
	}
	linfo, err := os.Lstat(root)
	if err != nil {
		return "", &RootError{Path: root, Err: err}
	}
	if info.IsDir() && linfo.Mode()&fs.ModeSymlink != 0 && !strings.HasSuffix(root, string(filepath.Separator)) {
		return root + string(filepath.Separator), nil
	}
	return root, nil
}

// Walk runs a fresh Walker over root.
func Walk(ctx context.Context, root string, visit VisitFunc) error {
	return NewWalker().Walk(ctx, root, visit)
}
