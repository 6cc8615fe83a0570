package editor

import "regexp"

// collapse now-empty import statements left behind by symbol removal
var emptyImportRe = regexp.MustCompile(`import\s+\{\s*\}\s+from\s+['"][^'"]+['"];\s*\n`)

// RemoveFromImports strips a symbol from destructured import lists: the
// single-symbol form becomes an empty list, multi-symbol forms drop the name
// and one adjacent comma, and imports left with an empty list are removed
// entirely. Purely textual; a symbol that also appears outside an import is
// still touched wherever the patterns match.
func RemoveFromImports(content, symbol string) string {
	sym := regexp.QuoteMeta(symbol)

	// Remove from destructured imports: { symbol }
	content = regexp.MustCompile(`\{\s*` + sym + `\s*\}`).ReplaceAllString(content, "{}")
	// Remove from multi-symbol imports: symbol,  or , symbol
	content = regexp.MustCompile(`,\s*` + sym + `\s*[,}]`).ReplaceAllString(content, ",")
	content = regexp.MustCompile(`\{\s*` + sym + `\s*,`).ReplaceAllString(content, "{")
	// Clean up empty imports
	content = emptyImportRe.ReplaceAllString(content, "")

	return content
}
