package project

import (
	"regexp"
	"strings"

	"github.com/nileshkumar-sf/kt-agent/pkg/types"
)

// SuffixBonus awards a fixed score when a file's basename carries a
// framework naming convention.
type SuffixBonus struct {
	Suffix string
	Bonus  int
}

// Profile is the fixed bundle of file extensions and regex pattern groups
// selected by project type. Selected once at construction and passed by
// value thereafter; immutable for the lifetime of the engine.
type Profile struct {
	Type       types.ProjectType
	Extensions []string
	Suffixes   []SuffixBonus

	Component []*regexp.Regexp
	Service   []*regexp.Regexp
	Template  []*regexp.Regexp
	Module    []*regexp.Regexp
	Routing   []*regexp.Regexp
}

var angularProfile = Profile{
	Type:       types.ProjectAngular,
	Extensions: []string{".ts", ".html"},
	Suffixes: []SuffixBonus{
		{Suffix: ".component.ts", Bonus: 10},
		{Suffix: ".service.ts", Bonus: 8},
		{Suffix: ".module.ts", Bonus: 6},
	},
	Component: compileAll(
		`@Component\s*\(\s*\{[^}]*\}\s*\)`,
		`@Injectable\s*\(\s*\{[^}]*\}\s*\)`,
		`@Directive\s*\(\s*\{[^}]*\}\s*\)`,
		`@Pipe\s*\(\s*\{[^}]*\}\s*\)`,
		`@NgModule\s*\(\s*\{[^}]*\}\s*\)`,
	),
	Service: compileAll(
		`class\s+\w+Service`,
		`constructor\s*\([^)]*\)`,
		`@Injectable`,
	),
	Template: compileAll(
		`\*ngFor`,
		`\*ngIf`,
		`\[(ngModel)\]`,
		`\(click\)`,
		`\{\{[^}]*\}\}`,
	),
	Module: compileAll(
		`imports\s*:`,
		`declarations\s*:`,
		`providers\s*:`,
		`exports\s*:`,
	),
	Routing: compileAll(
		`RouterModule`,
		`Routes`,
		`@RouteConfig`,
	),
}

var reactProfile = Profile{
	Type:       types.ProjectReact,
	Extensions: []string{".jsx", ".tsx", ".js", ".ts"},
}

var vueProfile = Profile{
	Type:       types.ProjectVue,
	Extensions: []string{".vue", ".js", ".ts"},
}

var unknownProfile = Profile{
	Type:       types.ProjectUnknown,
	Extensions: []string{".ts", ".html"},
}

// ProfileFor returns the fixed profile for a project type.
func ProfileFor(t types.ProjectType) Profile {
	switch t {
	case types.ProjectAngular:
		return angularProfile
	case types.ProjectReact:
		return reactProfile
	case types.ProjectVue:
		return vueProfile
	default:
		return unknownProfile
	}
}

// Group returns the named pattern group.
func (p Profile) Group(g types.PatternGroup) []*regexp.Regexp {
	switch g {
	case types.GroupComponent:
		return p.Component
	case types.GroupService:
		return p.Service
	case types.GroupTemplate:
		return p.Template
	case types.GroupModule:
		return p.Module
	case types.GroupRouting:
		return p.Routing
	default:
		return nil
	}
}

// AllPatterns returns the union of every pattern group, in group order.
func (p Profile) AllPatterns() []*regexp.Regexp {
	var all []*regexp.Regexp
	all = append(all, p.Component...)
	all = append(all, p.Service...)
	all = append(all, p.Template...)
	all = append(all, p.Module...)
	all = append(all, p.Routing...)
	return all
}

// PatternsForQuery selects the pattern group matching a keyword in the query,
// or the union of all groups when no keyword matches. Keyword checks run in a
// fixed order so overlapping queries resolve deterministically.
func (p Profile) PatternsForQuery(query string) []*regexp.Regexp {
	q := strings.ToLower(query)
	switch {
	case strings.Contains(q, "component"):
		return p.Component
	case strings.Contains(q, "service"):
		return p.Service
	case strings.Contains(q, "module"):
		return p.Module
	case strings.Contains(q, "template"), strings.Contains(q, "html"):
		return p.Template
	case strings.Contains(q, "routing"):
		return p.Routing
	default:
		return p.AllPatterns()
	}
}

// MatchesExtension reports whether the file name ends with one of the
// profile's active extensions.
func (p Profile) MatchesExtension(name string) bool {
	for _, ext := range p.Extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

func compileAll(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile(p)
	}
	return compiled
}
