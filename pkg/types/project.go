package types

// ProjectType classifies a codebase into a framework profile. Detection is
// best-effort: anything without a recognized indicator is ProjectUnknown.
type ProjectType string

const (
	ProjectAngular ProjectType = "angular"
	ProjectReact   ProjectType = "react"
	ProjectVue     ProjectType = "vue"
	ProjectUnknown ProjectType = "unknown"
)

// Recognized reports whether the type maps to a known framework profile.
func (t ProjectType) Recognized() bool {
	switch t {
	case ProjectAngular, ProjectReact, ProjectVue:
		return true
	default:
		return false
	}
}

// PatternGroup names one of the five ordered regex groups a framework
// profile carries.
type PatternGroup string

const (
	GroupComponent PatternGroup = "component"
	GroupService   PatternGroup = "service"
	GroupTemplate  PatternGroup = "template"
	GroupModule    PatternGroup = "module"
	GroupRouting   PatternGroup = "routing"
)
