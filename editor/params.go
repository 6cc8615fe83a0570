package editor

import (
	"regexp"
	"strings"
)

var functionTokens = []string{"function", "async", "=>"}

// broad trailing-annotation collapse; known to overreach on multi-parameter
// signatures (kept as-is from the one-shot original, see DESIGN.md)
var annotationCollapseRe = regexp.MustCompile(`:\s*[^,)]+,\s*`)

// HasFunctionTokens reports whether the content looks like it declares
// functions at all, the precondition for attempting parameter removal.
func HasFunctionTokens(content string) bool {
	for _, token := range functionTokens {
		if strings.Contains(content, token) {
			return true
		}
	}
	return false
}

// RemoveParameter strips a same-named typed parameter from whatever function
// signature occupies the given 1-based line. Lines out of range are left
// alone. Like the import stripping this is regex surgery on one line of text,
// not a parse of the signature.
func RemoveParameter(content, param string, lineNum int) string {
	lines := strings.Split(content, "\n")
	if lineNum <= 0 || lineNum > len(lines) {
		return content
	}

	p := regexp.QuoteMeta(param)
	line := lines[lineNum-1]
	line = regexp.MustCompile(`,\s*` + p + `\s*:`).ReplaceAllString(line, ",")
	line = regexp.MustCompile(`\(\s*` + p + `\s*:`).ReplaceAllString(line, "(")
	line = annotationCollapseRe.ReplaceAllString(line, ": ")
	lines[lineNum-1] = line

	return strings.Join(lines, "\n")
}
