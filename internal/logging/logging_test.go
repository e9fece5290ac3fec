package logging

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetup_DebugLevel(t *testing.T) {
	t.Cleanup(func() { Setup(os.Stderr, false) })

	var buf bytes.Buffer
	Setup(&buf, true)

	New("walker").Debug("skipping entry", "path", "/tmp/x")

	assert.True(t, DebugEnabled())
	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "component=walker")
	assert.Contains(t, out, "path=/tmp/x")
}

func TestSetup_InfoLevelHidesDebug(t *testing.T) {
	t.Cleanup(func() { Setup(os.Stderr, false) })

	var buf bytes.Buffer
	Setup(&buf, false)

	New("walker").Debug("hidden")
	Logger().Info("shown")

	assert.False(t, DebugEnabled())
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestSetup_NilWriterFallsBackToStderr(t *testing.T) {
	t.Cleanup(func() { Setup(os.Stderr, false) })

	Setup(nil, false)
	assert.NotNil(t, Logger())
}
