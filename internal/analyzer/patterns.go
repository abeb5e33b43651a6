package analyzer

import (
	"regexp"

	"github.com/nileshkumar-sf/kt-agent/pkg/types"
)

// namedPattern pairs a pattern name with its detection regex. A slice keeps
// the detection order fixed across runs.
type namedPattern struct {
	name string
	re   *regexp.Regexp
}

var patternDefinitions = []namedPattern{
	{"singleton", regexp.MustCompile(`private\s+static\s+\w+\s+instance`)},
	{"factory", regexp.MustCompile(`create\w+|factory`)},
	{"observer", regexp.MustCompile(`subscribe|observer|addEventListener`)},
	{"dependency_injection", regexp.MustCompile(`constructor\s*\([^)]+\)`)},
	{"decorator", regexp.MustCompile(`@\w+`)},
	{"async_pattern", regexp.MustCompile(`async|await|Promise|Observable`)},
}

// patternHeuristic detects implementation-pattern hints. A pattern is
// "present" if its regex matches anywhere; every match offset is recorded.
type patternHeuristic struct{}

func (patternHeuristic) Name() string { return "patterns" }

func (patternHeuristic) Analyze(content string, result *types.TechnicalAnalysis) {
	for _, def := range patternDefinitions {
		locs := def.re.FindAllStringIndex(content, -1)
		if len(locs) == 0 {
			continue
		}
		hit := types.PatternHit{Name: def.name, Locations: make([]int, len(locs))}
		for i, loc := range locs {
			hit.Locations[i] = loc[0]
		}
		result.Patterns = append(result.Patterns, hit)
	}
}
