// Package project classifies a codebase into a framework profile.
//
// Detection runs once at engine construction and inspects root-level
// configuration only: a framework-specific manifest (angular.json) selects
// the type directly; otherwise the generic package manifest's declared
// dependency names are checked against known framework packages in a fixed
// priority order. Anything else, including a malformed manifest, is
// ProjectUnknown, never an error.
package project

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/nileshkumar-sf/kt-agent/pkg/types"
)

const (
	angularManifest = "angular.json"
	packageManifest = "package.json"
)

// packageJSON is the subset of the package manifest used for detection.
type packageJSON struct {
	Dependencies map[string]string `json:"dependencies"`
}

// Detect classifies the project at root. Best-effort: manifest read or parse
// failures are swallowed and treated as "no match".
func Detect(root string) types.ProjectType {
	if _, err := os.Stat(filepath.Join(root, angularManifest)); err == nil {
		return types.ProjectAngular
	}

	data, err := os.ReadFile(filepath.Join(root, packageManifest))
	if err != nil {
		return types.ProjectUnknown
	}

	var pkg packageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return types.ProjectUnknown
	}

	return detectFromDependencies(pkg.Dependencies)
}

// detectFromDependencies checks declared dependency names against known
// framework packages. Priority order: angular, react, vue.
func detectFromDependencies(deps map[string]string) types.ProjectType {
	if len(deps) == 0 {
		return types.ProjectUnknown
	}

	for name := range deps {
		if name == "@angular" || strings.HasPrefix(name, "@angular/") {
			return types.ProjectAngular
		}
	}
	if _, ok := deps["react"]; ok {
		return types.ProjectReact
	}
	if _, ok := deps["vue"]; ok {
		return types.ProjectVue
	}
	return types.ProjectUnknown
}
