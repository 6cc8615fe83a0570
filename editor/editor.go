package editor

import (
	"fmt"
	"os"

	"github.com/zeebo/xxh3"
)

// Editor applies textual transforms to files on disk, writing back only when
// the content actually changed. In dry-run mode nothing is written; a
// highlighted diff is printed instead.
type Editor struct {
	dryRun bool
	theme  string
}

// NewEditor creates an editor. theme selects the chroma style used for
// dry-run diff previews.
func NewEditor(dryRun bool, theme string) *Editor {
	return &Editor{dryRun: dryRun, theme: theme}
}

// DryRun reports whether the editor is in preview mode.
func (e *Editor) DryRun() bool {
	return e.dryRun
}

// Apply reads path, runs transform over its content and writes the result
// back if it differs from the original. It returns whether the content
// changed (or, in dry-run mode, would have changed).
func (e *Editor) Apply(path string, transform func(content string) string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}

	original := string(data)
	updated := transform(original)

	if xxh3.HashString(updated) == xxh3.HashString(original) {
		return false, nil
	}

	if e.dryRun {
		if err := RenderDiff(os.Stdout, path, original, updated, e.theme); err != nil {
			return true, fmt.Errorf("failed to render diff for %s: %w", path, err)
		}
		return true, nil
	}

	info, err := os.Stat(path)
	mode := os.FileMode(0644)
	if err == nil {
		mode = info.Mode()
	}

	if err := os.WriteFile(path, []byte(updated), mode); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}

	return true, nil
}
