package analyzer

import (
	"regexp"
	"strings"

	"github.com/nileshkumar-sf/kt-agent/pkg/types"
)

// importPattern is a single alternation covering three import styles:
// destructured-import-from-source, default-import-from-source, and
// require-call. Submatch groups: 1-2 named imports + source, 3-4 default
// import + source, 5 require source.
var importPattern = regexp.MustCompile(
	`import\s+\{([^}]+)\}\s+from\s+['"]([^'"]+)['"]` +
		`|import\s+(\w+)\s+from\s+['"]([^'"]+)['"]` +
		`|require\(['"]([^'"]+)['"]\)`,
)

// dependencyHeuristic extracts import/dependency edges.
type dependencyHeuristic struct{}

func (dependencyHeuristic) Name() string { return "dependencies" }

func (dependencyHeuristic) Analyze(content string, result *types.TechnicalAnalysis) {
	for _, m := range importPattern.FindAllStringSubmatch(content, -1) {
		var dep types.Dependency
		switch {
		case m[1] != "": // named imports
			dep.Source = m[2]
			for _, name := range strings.Split(m[1], ",") {
				dep.Imports = append(dep.Imports, strings.TrimSpace(name))
			}
		case m[3] != "": // default import
			dep.Source = m[4]
			dep.Imports = []string{m[3]}
		default: // require call
			dep.Source = m[5]
			dep.Imports = []string{"*"}
		}
		result.Dependencies = append(result.Dependencies, dep)
	}
}
