package analyzer

import (
	"regexp"
	"strings"

	"github.com/nileshkumar-sf/kt-agent/pkg/types"
)

var controlKeywords = regexp.MustCompile(`\b(if|else|for|while|do|switch|case|catch)\b`)

// complexityHeuristic estimates complexity at line granularity.
//
// The cyclomatic proxy counts control-flow keywords plus a baseline of one.
// The cognitive proxy adds the maximum nesting depth seen, where depth rises
// on any line containing an opening bracket and falls on any line containing
// a closing one. Bracket kinds are not paired and the counter can go
// negative across multi-line constructs; the inaccuracy is accepted because
// downstream score thresholds depend on the current magnitudes.
type complexityHeuristic struct{}

func (complexityHeuristic) Name() string { return "complexity" }

func (complexityHeuristic) Analyze(content string, result *types.TechnicalAnalysis) {
	control := len(controlKeywords.FindAllString(content, -1))

	depth, maxDepth := 0, 0
	for _, line := range strings.Split(content, "\n") {
		if strings.ContainsAny(line, "{([") {
			depth++
			if depth > maxDepth {
				maxDepth = depth
			}
		}
		if strings.ContainsAny(line, "})]") {
			depth--
		}
	}

	cyclomatic := control + 1
	cognitive := control + maxDepth
	result.Complexity = types.Complexity{
		Cyclomatic: cyclomatic,
		Cognitive:  cognitive,
		Score:      (cyclomatic + cognitive) / 2,
	}
}
