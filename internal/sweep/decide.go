// Package sweep drives a cleanup run: walk, classify, decide, clean and
// report.
package sweep

import (
	"context"

	"github.com/lakshaymaurya-felt/rust-cleanup/internal/clean"
	"github.com/lakshaymaurya-felt/rust-cleanup/internal/project"
)

// Action is what happens to a visited directory.
type Action int

const (
	// Ignore leaves the directory alone without any output.
	Ignore Action = iota
	// Clean runs the project's clean command.
	Clean
	// Skip records the project as declined by the user.
	Skip
)

func (a Action) String() string {
	switch a {
	case Clean:
		return "clean"
	case Skip:
		return "skip"
	default:
		return "ignore"
	}
}

// Confirmer asks the user whether a project should be cleaned.
type Confirmer interface {
	Confirm(path, displayName string) (bool, error)
}

// Cleaner runs a clean command inside a project directory.
type Cleaner interface {
	Run(ctx context.Context, dir string, c project.Command) clean.Result
}

// Decide picks the action for t. Regular directories are ignored without
// consulting c. Projects whose type is covered by flags are cleaned
// without asking. Otherwise c decides; if it fails to produce an answer
// the project is ignored and the error is returned for the caller to
// record.
func Decide(t project.Target, flags project.AutoClean, c Confirmer) (Action, error) {
	if !t.Type.IsProject() {
		return Ignore, nil
	}
	if t.Type.ShouldAutoClean(flags) {
		return Clean, nil
	}

	ok, err := c.Confirm(t.Path, t.Type.DisplayName())
	if err != nil {
		return Ignore, err
	}
	if ok {
		return Clean, nil
	}
	return Skip, nil
}
