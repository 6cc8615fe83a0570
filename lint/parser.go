package lint

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// Finding is one unused-symbol diagnostic reported by the linter.
type Finding struct {
	Line   int
	Symbol string
}

// FileFindings groups the findings of a single source file, in report order.
type FileFindings struct {
	Path     string
	Findings []Finding
}

const unusedPhrase = "is defined but never used"

var (
	quotedSymbolRe = regexp.MustCompile(`'([^']+)'`)
	lineNumberRe   = regexp.MustCompile(`^\s*(\d+):`)
)

// ParseUnused scans lint output in the stylish text format and collects the
// unused-symbol findings per file. A trimmed line that is a bare absolute path
// sets the current file; subsequent diagnostic lines containing a quoted
// symbol and the unused phrase are attributed to it. Diagnostics seen before
// any path line, or without a leading line number, are dropped.
func ParseUnused(output string) []FileFindings {
	var (
		results     []FileFindings
		indexByPath = make(map[string]int)
		currentFile string
	)

	for _, line := range strings.Split(output, "\n") {
		trimmed := strings.TrimSpace(line)

		if trimmed != "" && filepath.IsAbs(trimmed) && !strings.Contains(trimmed, " ") {
			currentFile = trimmed
			continue
		}

		if currentFile == "" || !strings.Contains(line, "'") || !strings.Contains(line, unusedPhrase) {
			continue
		}

		symbolMatch := quotedSymbolRe.FindStringSubmatch(line)
		if symbolMatch == nil {
			continue
		}
		lineMatch := lineNumberRe.FindStringSubmatch(line)
		if lineMatch == nil {
			continue
		}

		lineNum, err := strconv.Atoi(lineMatch[1])
		if err != nil {
			continue
		}

		idx, seen := indexByPath[currentFile]
		if !seen {
			idx = len(results)
			indexByPath[currentFile] = idx
			results = append(results, FileFindings{Path: currentFile})
		}
		results[idx].Findings = append(results[idx].Findings, Finding{Line: lineNum, Symbol: symbolMatch[1]})
	}

	return results
}

// TotalFindings returns the number of findings across all files.
func TotalFindings(files []FileFindings) int {
	total := 0
	for _, f := range files {
		total += len(f.Findings)
	}
	return total
}
