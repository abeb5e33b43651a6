package types

// PatternHit records one detected implementation pattern and every character
// offset at which its regex matched.
type PatternHit struct {
	Name      string
	Locations []int // byte offsets into the file text
}

// Complexity is a line-granularity complexity estimate. The nesting counter
// behind Cognitive does not pair bracket kinds and can drift across multi-line
// constructs; downstream score thresholds depend on the current magnitudes, so
// the approximation is kept as-is.
type Complexity struct {
	Cyclomatic int // control-flow keyword count + 1
	Cognitive  int // control-flow keyword count + max nesting depth seen
	Score      int // floor average of the two
}

// Dependency is one import edge extracted from the file text.
type Dependency struct {
	Source  string   // module specifier
	Imports []string // imported symbol names; ["*"] for bare require calls
}

// FlowKind identifies a data-flow idiom matched in the file text.
type FlowKind string

const (
	FlowClassProperty FlowKind = "class_property"
	FlowReactState    FlowKind = "react_state"
	FlowRxSubject     FlowKind = "rxjs_subject"
	FlowAngularInput  FlowKind = "angular_input"
	FlowAngularOutput FlowKind = "angular_output"
)

// DataFlow records one data-flow hint.
type DataFlow struct {
	Kind     FlowKind
	Offset   int    // byte offset of the match
	Variable string // captured variable name; empty except for class properties
}

// TechnicalAnalysis bundles the four independent heuristic findings for one
// file. Every field is best-effort; false positives and negatives are expected.
type TechnicalAnalysis struct {
	Patterns     []PatternHit
	Complexity   Complexity
	Dependencies []Dependency
	DataFlows    []DataFlow
}

// TechnicalScore is the scoring contribution of the analysis:
// 2 per pattern, the complexity combined score, 3 per dependency edge,
// and 2 per data-flow hint.
func (a TechnicalAnalysis) TechnicalScore() int {
	return len(a.Patterns)*2 + a.Complexity.Score + len(a.Dependencies)*3 + len(a.DataFlows)*2
}
