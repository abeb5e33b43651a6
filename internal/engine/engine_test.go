package engine_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nileshkumar-sf/kt-agent/internal/engine"
	"github.com/nileshkumar-sf/kt-agent/internal/project"
	"github.com/nileshkumar-sf/kt-agent/pkg/types"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func newAngularProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"angular.json": `{"projects": {}}`,
		"src/app/a.component.ts": `import { Component } from '@angular/core';

@Component({ selector: 'app-a' })
export class AppComponent {
  constructor(private svc: Service) {}
}`,
		"src/app/user.service.ts": `import { Injectable } from '@angular/core';

@Injectable()
export class UserService {
  load() { return this.http.get('/api/users'); }
}`,
	})
	return root
}

func TestNewMissingRoot(t *testing.T) {
	_, err := engine.New(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.ErrorIs(t, err, engine.ErrNoProject)
}

func TestNewRootIsFile(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "f")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	_, err := engine.New(file)
	assert.ErrorIs(t, err, engine.ErrNoProject)
}

func TestNewEagerLoad(t *testing.T) {
	e, err := engine.New(newAngularProject(t))
	require.NoError(t, err)

	status := e.Status()
	assert.True(t, status.Loaded)
	assert.Equal(t, 2, status.Files)
	assert.Equal(t, types.ProjectAngular, status.ProjectType)
}

func TestDeferredLoad(t *testing.T) {
	e, err := engine.New(newAngularProject(t), engine.WithDeferredLoad())
	require.NoError(t, err)
	assert.False(t, e.Status().Loaded)

	// First search triggers the load.
	_, err = e.Search("component")
	require.NoError(t, err)
	assert.True(t, e.Status().Loaded)
}

func TestSearchComponentScenario(t *testing.T) {
	e, err := engine.New(newAngularProject(t))
	require.NoError(t, err)

	results, err := e.Search("component")
	require.NoError(t, err)
	require.NotEmpty(t, results)

	assert.Contains(t, results[0].File, "a.component.ts")
	for _, r := range results {
		require.NoError(t, r.Validate())
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	e, err := engine.New(newAngularProject(t))
	require.NoError(t, err)

	// Stop-words only: no usable terms, defined empty outcome.
	results, err := e.Search("what is the")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchEmptyCorpus(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"data.csv": "a,b,c"})

	e, err := engine.New(root)
	require.NoError(t, err)

	results, err := e.Search("anything relevant")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchAtMostThreeFiles(t *testing.T) {
	root := t.TempDir()
	files := map[string]string{}
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		files["src/"+name+".ts"] = "export const needle = 1;"
	}
	writeTree(t, root, files)

	e, err := engine.New(root)
	require.NoError(t, err)

	results, err := e.Search("needle")
	require.NoError(t, err)
	require.NotEmpty(t, results)

	distinct := map[string]struct{}{}
	for _, r := range results {
		distinct[r.File] = struct{}{}
	}
	assert.LessOrEqual(t, len(distinct), 3)
}

func TestSearchIdempotent(t *testing.T) {
	e, err := engine.New(newAngularProject(t))
	require.NoError(t, err)

	first, err := e.Search("user service")
	require.NoError(t, err)
	second, err := e.Search("user service")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSearchCacheHit(t *testing.T) {
	e, err := engine.New(newAngularProject(t))
	require.NoError(t, err)

	first, stats1, err := e.SearchWithStats("user service")
	require.NoError(t, err)
	assert.False(t, stats1.CacheHit)

	second, stats2, err := e.SearchWithStats("user service")
	require.NoError(t, err)
	assert.True(t, stats2.CacheHit)
	assert.Equal(t, first, second)
}

func TestSearchCachedResultsAreIsolated(t *testing.T) {
	e, err := engine.New(newAngularProject(t))
	require.NoError(t, err)

	first, err := e.Search("user service")
	require.NoError(t, err)
	require.NotEmpty(t, first)

	// Mutating a returned result must not leak into the cache.
	first[0].Content = "tampered"
	if len(first[0].MatchedTerms) > 0 {
		first[0].MatchedTerms[0] = "tampered"
	}

	second, err := e.Search("user service")
	require.NoError(t, err)
	assert.NotEqual(t, "tampered", second[0].Content)
	if len(second[0].MatchedTerms) > 0 {
		assert.NotEqual(t, "tampered", second[0].MatchedTerms[0])
	}
}

func TestWithProfileOverride(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"src/app.tsx": "export const App = () => useState(0);"})

	e, err := engine.New(root, engine.WithProfile(project.ProfileFor(types.ProjectReact)))
	require.NoError(t, err)

	assert.Equal(t, types.ProjectReact, e.ProjectType())
	assert.Equal(t, 1, e.Status().Files)
}

func TestWithExtraIgnorePatterns(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"src/app.ts":     "export const a = 1;",
		"src/legacy.ts":  "export const b = 2;",
	})

	e, err := engine.New(root, engine.WithExtraIgnorePatterns("legacy.ts"))
	require.NoError(t, err)
	assert.Equal(t, 1, e.Status().Files)
}

func TestFileImports(t *testing.T) {
	root := t.TempDir()
	src := `import { Component } from '@angular/core';
import styles from './app.css';
const legacy = require('legacy-lib');
@import 'theme';`
	writeTree(t, root, map[string]string{"src/app.ts": src})

	e, err := engine.New(root)
	require.NoError(t, err)

	imports := e.FileImports(filepath.Join(root, "src", "app.ts"))
	assert.Contains(t, imports, "@angular/core")
	assert.Contains(t, imports, "./app.css")
	assert.Contains(t, imports, "legacy-lib")
	assert.Contains(t, imports, "theme")

	// Sorted and deduplicated.
	assert.IsNonDecreasing(t, imports)
}

func TestFileImportsUnreadable(t *testing.T) {
	e, err := engine.New(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, e.FileImports("/does/not/exist.ts"))
}
