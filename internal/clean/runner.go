// Package clean runs a project's clean command in its root directory.
package clean

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"

	"github.com/lakshaymaurya-felt/rust-cleanup/internal/logging"
	"github.com/lakshaymaurya-felt/rust-cleanup/internal/project"
	"github.com/lakshaymaurya-felt/rust-cleanup/internal/ui"
)

// Outcome classifies a clean attempt.
type Outcome int

const (
	// Succeeded means the command ran and exited with status 0.
	Succeeded Outcome = iota
	// Failed means the command ran and exited with a non-zero status.
	Failed
	// LaunchError means the command could not be started.
	LaunchError
)

func (o Outcome) String() string {
	switch o {
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	case LaunchError:
		return "launch-error"
	default:
		return "unknown"
	}
}

// Result describes one clean attempt.
type Result struct {
	Path     string
	Command  project.Command
	Outcome  Outcome
	ExitCode int
	Err      error
}

// OK reports whether the clean succeeded.
func (r Result) OK() bool {
	return r.Outcome == Succeeded
}

// Runner executes clean commands. The child process shares Stdin, Stdout
// and Stderr, so its own output reaches the user as it is produced.
// Failure messages are written to Stdout.
type Runner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	log *slog.Logger
}

// NewRunner returns a Runner wired to the process's standard streams.
func NewRunner() *Runner {
	return &Runner{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run executes c with dir as working directory and waits for it. A
// failure is reported to the user and returned in the Result; it never
// aborts the caller.
func (r *Runner) Run(ctx context.Context, dir string, c project.Command) Result {
	if r.log == nil {
		r.log = logging.New("clean")
	}
	res := Result{Path: dir, Command: c}
	out := ui.NewPrinter(r.Stdout)

	if c.Program == "" {
		res.Outcome = LaunchError
		res.Err = errors.New("empty command")
		out.Println(ui.StyleError, "There was an error cleaning %s: %v", dir, res.Err)
		return res
	}

	r.log.Debug("running clean command", "dir", dir, "command", c.String())

	cmd := exec.CommandContext(ctx, c.Program, c.Args...)
	cmd.Dir = dir
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	cmd.Env = os.Environ()

	err := cmd.Run()
	if err == nil {
		res.Outcome = Succeeded
		r.log.Debug("clean command succeeded", "dir", dir)
		return res
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.Outcome = Failed
		res.ExitCode = exitErr.ExitCode()
		res.Err = fmt.Errorf("%s exited with code %d: %w", c.String(), res.ExitCode, err)
		r.log.Debug("clean command failed", "dir", dir, "exit_code", res.ExitCode)
		out.Println(ui.StyleError, "Command has a nonzero exit code while trying to clean %s", dir)
		return res
	}

	res.Outcome = LaunchError
	res.Err = err
	r.log.Debug("clean command did not start", "dir", dir, "error", err)
	out.Println(ui.StyleError, "There was an error cleaning %s: %v", dir, err)
	return res
}
