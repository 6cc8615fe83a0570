package editor

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// RenderDiff prints a line-based diff of a pending edit. Removed lines are
// shown in red, added lines are syntax highlighted as TypeScript with the
// configured theme, unchanged lines are elided.
func RenderDiff(w io.Writer, path, before, after, theme string) error {
	fmt.Fprintf(w, "--- %s\n", path)

	dmp := diffmatchpatch.New()
	src, dst, lineArray := dmp.DiffLinesToRunes(before, after)
	diffs := dmp.DiffMainRunes(src, dst, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	for _, d := range diffs {
		if d.Type == diffmatchpatch.DiffEqual {
			continue
		}
		for _, line := range splitDiffLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffDelete:
				fmt.Fprint(w, "\x1b[91m- "+line+"\x1b[0m\n")
			case diffmatchpatch.DiffInsert:
				// Use a buffer to capture the highlight output
				var buf bytes.Buffer
				if err := quick.Highlight(&buf, line, "typescript", "terminal256", theme); err != nil {
					return err
				}
				fmt.Fprint(w, "\x1b[92m+ \x1b[0m"+buf.String()+"\n")
			}
		}
	}

	return nil
}

func splitDiffLines(text string) []string {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	return lines
}
