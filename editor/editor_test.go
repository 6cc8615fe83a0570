package editor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditor_ApplyWritesOnlyOnChange(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "a.ts")
	require.NoError(t, os.WriteFile(path, []byte("import { foo } from './x.js';\nconst y = 1;\n"), 0644))

	fileEditor := NewEditor(false, "dracula")

	changed, err := fileEditor.Apply(path, func(content string) string {
		return RemoveFromImports(content, "foo")
	})
	require.NoError(t, err)
	assert.True(t, changed)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "const y = 1;\n", string(data))

	// Second run over the already-fixed file is a no-op
	changed, err = fileEditor.Apply(path, func(content string) string {
		return RemoveFromImports(content, "foo")
	})
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestEditor_DryRunLeavesFileUntouched(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "a.ts")
	original := "import { foo } from './x.js';\n"
	require.NoError(t, os.WriteFile(path, []byte(original), 0644))

	fileEditor := NewEditor(true, "dracula")

	changed, err := fileEditor.Apply(path, func(content string) string {
		return RemoveFromImports(content, "foo")
	})
	require.NoError(t, err)
	assert.True(t, changed)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, string(data))
}

func TestEditor_ApplyMissingFile(t *testing.T) {
	fileEditor := NewEditor(false, "dracula")

	_, err := fileEditor.Apply(filepath.Join(t.TempDir(), "missing.ts"), func(content string) string {
		return content
	})
	assert.Error(t, err)
}

func TestRenderDiff_ShowsRemovedAndAddedLines(t *testing.T) {
	before := "import { foo } from './x.js';\nconst y = 1;\n"
	after := "const y = 1;\n"

	var sb strings.Builder
	err := RenderDiff(&sb, "/tmp/a.ts", before, after, "dracula")
	require.NoError(t, err)

	out := sb.String()
	assert.Contains(t, out, "--- /tmp/a.ts")
	assert.Contains(t, out, "- import { foo } from './x.js';")
}
