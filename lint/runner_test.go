package lint

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner_CapturesCombinedOutput(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell syntax differs on windows")
	}

	runner := NewRunner(t.TempDir())

	output, exitCode, err := runner.Run(context.Background(), "echo out; echo err 1>&2")
	require.NoError(t, err)
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, output, "out")
	assert.Contains(t, output, "err")
}

func TestRunner_NonZeroExitIsNotAnError(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell syntax differs on windows")
	}

	runner := NewRunner(t.TempDir())

	_, exitCode, err := runner.Run(context.Background(), "exit 3")
	require.NoError(t, err)
	assert.Equal(t, 3, exitCode)
}

func TestRunner_WorkDirIsPinned(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell syntax differs on windows")
	}

	workDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(workDir, "marker.txt"), []byte("x"), 0644))

	runner := NewRunner(workDir)

	output, exitCode, err := runner.Run(context.Background(), "ls")
	require.NoError(t, err)
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, output, "marker.txt")
}

func TestRunner_RejectsEmptyCommand(t *testing.T) {
	runner := NewRunner(t.TempDir())

	_, _, err := runner.Run(context.Background(), "")
	assert.Error(t, err)
}

func TestRunner_RejectsDangerousCommand(t *testing.T) {
	runner := NewRunner(t.TempDir())

	_, _, err := runner.Run(context.Background(), "rm -rf / --no-preserve-root")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "dangerous")
}
