// Package analyzer extracts heuristic structural signals from source text.
//
// Four independent sub-analyses run per file: implementation-pattern
// detection, a complexity estimate, import/dependency extraction, and
// data-flow hints. Each is a pure function of one file's full text and each
// is explicitly approximate: the signals feed a relevance score, not a
// compiler, so false positives and negatives are acceptable and expected.
// Replacing the regex heuristics with real parsing would change behavior
// under the scoring fixtures and is deliberately avoided.
package analyzer

import "github.com/nileshkumar-sf/kt-agent/pkg/types"

// Heuristic produces one best-effort signal from a file's full text and
// records it on the analysis. Implementations must be pure and deterministic.
type Heuristic interface {
	Name() string
	Analyze(content string, result *types.TechnicalAnalysis)
}

// Default returns the standard heuristic set in its fixed run order.
func Default() []Heuristic {
	return []Heuristic{
		patternHeuristic{},
		complexityHeuristic{},
		dependencyHeuristic{},
		dataFlowHeuristic{},
	}
}

// Run applies the heuristics to one file's text and returns the combined
// analysis.
func Run(content string, heuristics ...Heuristic) types.TechnicalAnalysis {
	var result types.TechnicalAnalysis
	for _, h := range heuristics {
		h.Analyze(content, &result)
	}
	return result
}

// Analyze runs the default heuristic set.
func Analyze(content string) types.TechnicalAnalysis {
	return Run(content, Default()...)
}
