package project_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nileshkumar-sf/kt-agent/internal/project"
	"github.com/nileshkumar-sf/kt-agent/pkg/types"
)

func writeFile(t *testing.T, root, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte(content), 0o644))
}

func TestDetectAngularManifest(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "angular.json", `{"projects": {}}`)

	assert.Equal(t, types.ProjectAngular, project.Detect(root))
}

func TestDetectFromPackageDependencies(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		want     types.ProjectType
	}{
		{
			"angular scoped dependency",
			`{"dependencies": {"@angular/core": "^17.0.0", "rxjs": "^7.8.0"}}`,
			types.ProjectAngular,
		},
		{
			"react dependency",
			`{"dependencies": {"react": "^18.2.0", "react-dom": "^18.2.0"}}`,
			types.ProjectReact,
		},
		{
			"vue dependency",
			`{"dependencies": {"vue": "^3.4.0"}}`,
			types.ProjectVue,
		},
		{
			"angular wins over react",
			`{"dependencies": {"react": "^18.2.0", "@angular/core": "^17.0.0"}}`,
			types.ProjectAngular,
		},
		{
			"no recognized dependency",
			`{"dependencies": {"express": "^4.18.0"}}`,
			types.ProjectUnknown,
		},
		{
			"no dependencies key",
			`{"name": "plain"}`,
			types.ProjectUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeFile(t, root, "package.json", tt.manifest)
			assert.Equal(t, tt.want, project.Detect(root))
		})
	}
}

func TestDetectMalformedManifest(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "package.json", `{not json at all`)

	// Parse errors are swallowed, never fatal.
	assert.Equal(t, types.ProjectUnknown, project.Detect(root))
}

func TestDetectNoManifests(t *testing.T) {
	assert.Equal(t, types.ProjectUnknown, project.Detect(t.TempDir()))
}

func TestProfileFor(t *testing.T) {
	angular := project.ProfileFor(types.ProjectAngular)
	assert.Equal(t, []string{".ts", ".html"}, angular.Extensions)
	assert.NotEmpty(t, angular.Component)
	assert.NotEmpty(t, angular.Routing)
	assert.Len(t, angular.Suffixes, 3)

	unknown := project.ProfileFor(types.ProjectUnknown)
	assert.Equal(t, []string{".ts", ".html"}, unknown.Extensions)
	assert.Empty(t, unknown.AllPatterns())
	assert.Empty(t, unknown.Suffixes)

	react := project.ProfileFor(types.ProjectReact)
	assert.Contains(t, react.Extensions, ".tsx")
}

func TestPatternsForQuery(t *testing.T) {
	p := project.ProfileFor(types.ProjectAngular)

	assert.Equal(t, p.Component, p.PatternsForQuery("how does the login component render"))
	assert.Equal(t, p.Service, p.PatternsForQuery("where is the auth Service"))
	assert.Equal(t, p.Module, p.PatternsForQuery("app module imports"))
	assert.Equal(t, p.Template, p.PatternsForQuery("the html layout"))
	assert.Equal(t, p.Routing, p.PatternsForQuery("routing setup"))

	// No keyword: union of every group.
	all := p.PatternsForQuery("authentication flow")
	assert.Len(t, all, len(p.AllPatterns()))
}

func TestAngularPatternsMatch(t *testing.T) {
	p := project.ProfileFor(types.ProjectAngular)

	componentSrc := `@Component({ selector: 'app-root' })
export class AppComponent {}`
	matched := false
	for _, re := range p.Component {
		if re.MatchString(componentSrc) {
			matched = true
			break
		}
	}
	assert.True(t, matched, "component decorator should match the component group")

	templateSrc := `<div *ngFor="let item of items">{{ item.name }}</div>`
	matched = false
	for _, re := range p.Template {
		if re.MatchString(templateSrc) {
			matched = true
			break
		}
	}
	assert.True(t, matched, "ngFor should match the template group")
}

func TestMatchesExtension(t *testing.T) {
	p := project.ProfileFor(types.ProjectAngular)
	assert.True(t, p.MatchesExtension("app.component.ts"))
	assert.True(t, p.MatchesExtension("index.html"))
	assert.False(t, p.MatchesExtension("style.css"))
}
