package engine

import (
	"os"
	"regexp"
	"sort"

	"go.uber.org/zap"
)

// fileImportPatterns is the wider import-regex family used for ad hoc
// dependency listing on matched files. Each pattern captures the import
// source in its first group. This family is broader than the analyzer's
// scoring regex on purpose: the downstream prompt builder wants every
// dependency mention, including style imports.
var fileImportPatterns = []*regexp.Regexp{
	regexp.MustCompile(`import\s+\{[^}]+\}\s+from\s+['"]([^'"]+)['"]`), // ES6 named
	regexp.MustCompile(`import\s+\w+\s+from\s+['"]([^'"]+)['"]`),       // default import
	regexp.MustCompile(`from\s+['"]([^'"]+)['"]`),                      // bare from clause
	regexp.MustCompile(`require\(['"]([^'"]+)['"]\)`),                  // CommonJS
	regexp.MustCompile(`@import\s+['"]([^'"]+)['"]`),                   // SCSS/CSS
}

// FileImports re-reads the file and extracts the deduplicated, sorted list
// of import sources. Used by the downstream consumer to annotate top results
// with dependency information; it does not touch the corpus. Read failures
// are logged and yield an empty list, matching the per-file recovery policy
// of loading.
func (e *Engine) FileImports(path string) []string {
	content, err := os.ReadFile(path)
	if err != nil {
		e.logger.Warn("failed to read file for import analysis",
			zap.String("path", path), zap.Error(err))
		return nil
	}

	seen := make(map[string]struct{})
	for _, re := range fileImportPatterns {
		for _, m := range re.FindAllStringSubmatch(string(content), -1) {
			if m[1] != "" {
				seen[m[1]] = struct{}{}
			}
		}
	}

	imports := make([]string, 0, len(seen))
	for imp := range seen {
		imports = append(imports, imp)
	}
	sort.Strings(imports)
	return imports
}
