package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_LevelPrefixes(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, true)

	l.Infof("sent to %d recipients", 2)
	l.Warn("slow relay")
	l.Error("boom")
	l.Debug("details")

	out := buf.String()
	assert.Contains(t, out, "INFO:  ")
	assert.Contains(t, out, "sent to 2 recipients")
	assert.Contains(t, out, "WARN:  ")
	assert.Contains(t, out, "ERROR: ")
	assert.Contains(t, out, "DEBUG: ")
}

func TestLogger_DebugSuppressed(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)

	l.Debugf("hidden %s", "line")

	assert.Empty(t, buf.String())
}

func TestNewFile_AppendsAndTees(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "pigeon.log")
	var tee bytes.Buffer

	l, err := NewFile(path, false, &tee)
	require.NoError(t, err)
	l.Info("first")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "first")
	assert.Contains(t, tee.String(), "first")
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Info("nothing")
	assert.NoError(t, l.Close())
}
