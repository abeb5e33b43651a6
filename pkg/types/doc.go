// Package types provides shared type definitions for the kt-agent retrieval engine.
//
// This package defines the value types passed between the engine's components:
// project classification, per-file scoring records, heuristic analysis findings,
// and the externally visible search results.
//
// # Core Types
//
// SearchResult is the engine's sole output: one ranked, citable snippet per
// recorded line match in a retained file:
//
//	result := types.SearchResult{
//	    File:       "/project/src/app.component.ts",
//	    Content:    snippet,
//	    Context:    "class AppComponent {\n",
//	    Relevance:  42,
//	    LineNumber: 17,
//	}
//
// FileScore accumulates the scoring signals for a single file. Its TotalScore
// is strictly the sum of its components and defines the ranking order:
//
//	total = FilenameExact + FilenamePartial + 2*len(Matches) + TechnicalScore
//
// TechnicalAnalysis holds the four independent heuristic findings produced by
// the structural analyzer: implementation patterns, a complexity estimate,
// import edges, and data-flow hints. All four are best-effort signals derived
// from regular expressions, never parser-accurate facts.
//
// # Immutability
//
// Every type here is a plain value. Results are created fresh per query and
// never mutated after creation; scoring records are built once per file and
// summed via pure functions.
package types
