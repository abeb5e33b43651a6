package analyzer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nileshkumar-sf/kt-agent/internal/analyzer"
	"github.com/nileshkumar-sf/kt-agent/pkg/types"
)

func patternNames(hits []types.PatternHit) []string {
	names := make([]string, len(hits))
	for i, h := range hits {
		names[i] = h.Name
	}
	return names
}

func TestPatternDetection(t *testing.T) {
	src := `@Injectable()
export class UserService {
  constructor(private http: HttpClient) {}

  load(): Observable<User[]> {
    return this.http.get<User[]>('/api/users');
  }
}`

	result := analyzer.Analyze(src)
	names := patternNames(result.Patterns)

	assert.Contains(t, names, "dependency_injection")
	assert.Contains(t, names, "decorator")
	assert.Contains(t, names, "async_pattern") // Observable

	// Every hit records its match offsets.
	for _, hit := range result.Patterns {
		assert.NotEmpty(t, hit.Locations, "pattern %q has no locations", hit.Name)
	}
}

func TestPatternDetectionSingleton(t *testing.T) {
	src := `class Config {
  private static Config instance;
}`
	result := analyzer.Analyze(src)
	assert.Contains(t, patternNames(result.Patterns), "singleton")
}

func TestComplexityEstimate(t *testing.T) {
	src := `function demo(items) {
  for (const item of items) {
    if (item.active) {
      handle(item);
    } else {
      skip(item);
    }
  }
}`

	result := analyzer.Analyze(src)
	c := result.Complexity

	// 3 control keywords (for, if, else) + 1 baseline.
	assert.Equal(t, 4, c.Cyclomatic)
	// Lines holding both an opener and a closer cancel out, so the running
	// depth peaks at 1.
	assert.Equal(t, 3+1, c.Cognitive)
	assert.Equal(t, (c.Cyclomatic+c.Cognitive)/2, c.Score)
}

func TestComplexityEmptyFile(t *testing.T) {
	c := analyzer.Analyze("").Complexity
	assert.Equal(t, 1, c.Cyclomatic)
	assert.Equal(t, 0, c.Cognitive)
	assert.Equal(t, 0, c.Score)
}

func TestComplexityUnbalancedBracketsTolerated(t *testing.T) {
	// Closers without openers drive the counter negative; the estimate stays
	// defined and the max depth never drops below what was actually seen.
	src := ")\n)\n{\n"
	c := analyzer.Analyze(src).Complexity
	assert.Equal(t, 1, c.Cyclomatic)
	assert.GreaterOrEqual(t, c.Cognitive, 0)
}

func TestDependencyExtraction(t *testing.T) {
	src := `import { Foo } from 'bar';
import React from 'react';
const fs = require('fs');`

	deps := analyzer.Analyze(src).Dependencies
	require.Len(t, deps, 3)

	assert.Equal(t, "bar", deps[0].Source)
	assert.Equal(t, []string{"Foo"}, deps[0].Imports)

	assert.Equal(t, "react", deps[1].Source)
	assert.Equal(t, []string{"React"}, deps[1].Imports)

	assert.Equal(t, "fs", deps[2].Source)
	assert.Equal(t, []string{"*"}, deps[2].Imports)
}

func TestDependencyExtractionNamedList(t *testing.T) {
	src := `import { Component, OnInit , Input } from '@angular/core';`
	deps := analyzer.Analyze(src).Dependencies
	require.Len(t, deps, 1)
	assert.Equal(t, "@angular/core", deps[0].Source)
	assert.Equal(t, []string{"Component", "OnInit", "Input"}, deps[0].Imports)
}

func TestDataFlowExtraction(t *testing.T) {
	src := `class Widget {
  @Input() label;
  @Output() changed;
  constructor() {
    this.count = 0;
    this.stream = new Subject();
  }
}
const [state, setState] = useState(0);`

	flows := analyzer.Analyze(src).DataFlows

	kinds := map[types.FlowKind]int{}
	for _, f := range flows {
		kinds[f.Kind]++
	}
	assert.Equal(t, 2, kinds[types.FlowClassProperty])
	assert.Equal(t, 1, kinds[types.FlowReactState])
	assert.Equal(t, 1, kinds[types.FlowRxSubject])
	assert.Equal(t, 1, kinds[types.FlowAngularInput])
	assert.Equal(t, 1, kinds[types.FlowAngularOutput])

	// Only class-property flows carry a variable name.
	for _, f := range flows {
		if f.Kind == types.FlowClassProperty {
			assert.NotEmpty(t, f.Variable)
		} else {
			assert.Empty(t, f.Variable)
		}
	}
}

func TestTechnicalScoreContribution(t *testing.T) {
	src := `import { Foo } from 'bar';`
	a := analyzer.Analyze(src)

	// One dependency edge is worth 3 points.
	require.Len(t, a.Dependencies, 1)
	base := len(a.Patterns)*2 + a.Complexity.Score + len(a.DataFlows)*2
	assert.Equal(t, base+3, a.TechnicalScore())
}

func TestAnalyzeDeterministic(t *testing.T) {
	src := `import { A } from 'a';
class S { constructor(d) { this.d = d; } }`
	first := analyzer.Analyze(src)
	second := analyzer.Analyze(src)
	assert.Equal(t, first, second)
}
