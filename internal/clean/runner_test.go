package clean

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakshaymaurya-felt/rust-cleanup/internal/project"
)

func newTestRunner(out *bytes.Buffer) *Runner {
	return &Runner{Stdin: strings.NewReader(""), Stdout: out, Stderr: out}
}

func skipWithoutShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("uses a POSIX shell")
	}
}

func TestRun_SuccessRunsInProjectDir(t *testing.T) {
	skipWithoutShell(t)
	dir := t.TempDir()
	var out bytes.Buffer

	res := newTestRunner(&out).Run(context.Background(), dir,
		project.Command{Program: "sh", Args: []string{"-c", "touch cleaned"}})

	require.True(t, res.OK(), "error: %v", res.Err)
	assert.Equal(t, Succeeded, res.Outcome)
	assert.NoError(t, res.Err)
	assert.Empty(t, out.String())
	assert.FileExists(t, filepath.Join(dir, "cleaned"))
}

func TestRun_ChildOutputIsPassedThrough(t *testing.T) {
	skipWithoutShell(t)
	var out bytes.Buffer

	res := newTestRunner(&out).Run(context.Background(), t.TempDir(),
		project.Command{Program: "sh", Args: []string{"-c", "echo Removed 12 files"}})

	require.True(t, res.OK())
	assert.Equal(t, "Removed 12 files\n", out.String())
}

func TestRun_NonZeroExit(t *testing.T) {
	skipWithoutShell(t)
	dir := t.TempDir()
	var out bytes.Buffer

	res := newTestRunner(&out).Run(context.Background(), dir,
		project.Command{Program: "sh", Args: []string{"-c", "exit 1"}})

	assert.Equal(t, Failed, res.Outcome)
	assert.Equal(t, 1, res.ExitCode)
	assert.Error(t, res.Err)
	assert.Equal(t, "Command has a nonzero exit code while trying to clean "+dir+"\n", out.String())
}

func TestRun_MissingExecutable(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	res := newTestRunner(&out).Run(context.Background(), dir,
		project.Command{Program: "rust-cleanup-no-such-tool-xyz", Args: []string{"clean"}})

	assert.Equal(t, LaunchError, res.Outcome)
	require.Error(t, res.Err)
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "There was an error cleaning "+dir+": "))
	assert.Contains(t, lines[0], res.Err.Error())
}

func TestRun_MissingDirectory(t *testing.T) {
	skipWithoutShell(t)
	dir := filepath.Join(t.TempDir(), "vanished")
	var out bytes.Buffer

	res := newTestRunner(&out).Run(context.Background(), dir,
		project.Command{Program: "sh", Args: []string{"-c", "true"}})

	assert.Equal(t, LaunchError, res.Outcome)
	assert.True(t, strings.HasPrefix(out.String(), "There was an error cleaning "+dir+": "))
}

func TestRun_EmptyCommand(t *testing.T) {
	var out bytes.Buffer

	res := newTestRunner(&out).Run(context.Background(), "/tmp/x", project.Command{})

	assert.Equal(t, LaunchError, res.Outcome)
	assert.Equal(t, "There was an error cleaning /tmp/x: empty command\n", out.String())
}

func TestNewRunner_UsesProcessStreams(t *testing.T) {
	r := NewRunner()
	assert.Equal(t, os.Stdin, r.Stdin)
	assert.Equal(t, os.Stdout, r.Stdout)
	assert.Equal(t, os.Stderr, r.Stderr)
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "succeeded", Succeeded.String())
	assert.Equal(t, "failed", Failed.String())
	assert.Equal(t, "launch-error", LaunchError.String())
	assert.Equal(t, "unknown", Outcome(42).String())
}
