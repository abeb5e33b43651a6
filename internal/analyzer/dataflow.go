package analyzer

import (
	"regexp"

	"github.com/nileshkumar-sf/kt-agent/pkg/types"
)

// flowPattern pairs a data-flow idiom with its kind. Only class-property
// assignment captures a variable name.
type flowPattern struct {
	re   *regexp.Regexp
	kind types.FlowKind
}

var flowPatterns = []flowPattern{
	{regexp.MustCompile(`this\.(\w+)\s*=`), types.FlowClassProperty},
	{regexp.MustCompile(`useState\([^)]*\)`), types.FlowReactState},
	{regexp.MustCompile(`new\s+Subject\([^)]*\)`), types.FlowRxSubject},
	{regexp.MustCompile(`@Input\([^)]*\)`), types.FlowAngularInput},
	{regexp.MustCompile(`@Output\([^)]*\)`), types.FlowAngularOutput},
}

// dataFlowHeuristic identifies state-mutation and binding idioms.
type dataFlowHeuristic struct{}

func (dataFlowHeuristic) Name() string { return "data_flow" }

func (dataFlowHeuristic) Analyze(content string, result *types.TechnicalAnalysis) {
	for _, fp := range flowPatterns {
		for _, idx := range fp.re.FindAllStringSubmatchIndex(content, -1) {
			flow := types.DataFlow{Kind: fp.kind, Offset: idx[0]}
			if fp.kind == types.FlowClassProperty && idx[2] >= 0 {
				flow.Variable = content[idx[2]:idx[3]]
			}
			result.DataFlows = append(result.DataFlows, flow)
		}
	}
}
