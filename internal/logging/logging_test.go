package logging

import (
	stdlog "log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setup(t *testing.T, debug bool, path string) *zap.Logger {
	t.Helper()
	logger, undo, err := Setup(debug, path)
	require.NoError(t, err)
	t.Cleanup(undo)
	return logger
}

func TestSetupDisabledWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "waterbar.log")
	logger := setup(t, false, path)

	assert.Same(t, logger, L())
	Info("dropped")
	stdlog.Println("dropped too")

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "no log file without debug")
}

func TestSetupEnabledWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "waterbar.log")
	logger := setup(t, true, path)

	Debug("phase changed", zap.String("to", "running"))
	stdlog.Printf("legacy %d", 42)
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "phase changed")
	assert.Contains(t, string(data), "running")
	assert.Contains(t, string(data), "legacy 42", "standard logger goes through zap")
}

func TestSetupUndoRestoresPrevious(t *testing.T) {
	before := L()
	_, undo, err := Setup(true, filepath.Join(t.TempDir(), "waterbar.log"))
	require.NoError(t, err)
	assert.NotSame(t, before, L())

	undo()
	assert.Same(t, before, L())
}

func TestSetupRotatesLargeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "waterbar.log")
	require.NoError(t, os.WriteFile(path, make([]byte, MaxSize+1), 0o644))

	setup(t, true, path)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	rotated := 0
	for _, e := range entries {
		if e.Name() != "waterbar.log" && filepath.Ext(e.Name()) == ".log" {
			rotated++
		}
	}
	assert.Equal(t, 1, rotated)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Less(t, info.Size(), int64(MaxSize))
}

func TestSetupUnwritableDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	_, _, err := Setup(true, filepath.Join(file, "waterbar.log"))
	assert.Error(t, err)
}
