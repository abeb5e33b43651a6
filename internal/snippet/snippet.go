// Package snippet assembles bounded context windows around scored line
// matches.
//
// Every recorded line match of a retained file, not just one per file,
// produces one SearchResult: a window of 5 lines before to 6 lines after
// the match, plus a structural-context string found by scanning upward for
// the nearest enclosing definition. The upward scan assumes indentation marks
// nesting and aborts at a non-indented, non-blank line; behavior on files
// using other structural conventions is deliberately left unspecified.
package snippet

import (
	"sort"
	"strings"

	"github.com/nileshkumar-sf/kt-agent/internal/scorer"
	"github.com/nileshkumar-sf/kt-agent/pkg/types"
)

// Window bounds around a match line, clipped to file bounds.
const (
	linesBefore = 5
	linesAfter  = 6
)

// definition prefixes recognized by the upward scan, checked against the
// stripped line text.
var definitionPrefixes = []string{"def ", "class ", "async def "}

// Assemble produces the final ranked result list for the retained files.
// Results are sorted by relevance score descending, with the
// is-technical-match flag breaking equal scores.
func Assemble(top []scorer.Ranked) []types.SearchResult {
	var results []types.SearchResult

	for _, file := range top {
		for _, match := range file.Score.Matches {
			start := match.LineNum - linesBefore
			if start < 0 {
				start = 0
			}
			end := match.LineNum + linesAfter
			if end > len(file.Lines) {
				end = len(file.Lines)
			}

			results = append(results, types.SearchResult{
				File:             file.Path,
				Content:          strings.Join(file.Lines[start:end], "\n"),
				Context:          StructuralContext(file.Lines, match.LineNum),
				Relevance:        file.Score.TotalScore,
				LineNumber:       match.LineNum + 1,
				MatchedTerms:     match.Terms,
				IsTechnicalMatch: match.IsTechnical,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Relevance != results[j].Relevance {
			return results[i].Relevance > results[j].Relevance
		}
		return results[i].IsTechnicalMatch && !results[j].IsTechnicalMatch
	})

	return results
}

// StructuralContext scans upward from the match line for the nearest
// enclosing definition. When the enclosing line opens a class, the immediate
// method definitions between it and the match are collected as indented
// context entries. Returns "" when no definition is found before the scan
// aborts.
func StructuralContext(lines []string, matchLine int) string {
	if matchLine >= len(lines) {
		return ""
	}

	var context []string

	for i := matchLine; i >= 0; i-- {
		raw := lines[i]
		stripped := strings.TrimSpace(raw)

		if hasDefinitionPrefix(stripped) {
			context = append(context, stripped)
			if strings.HasPrefix(stripped, "class ") {
				for j := i + 1; j < matchLine; j++ {
					method := strings.TrimSpace(lines[j])
					if strings.HasPrefix(method, "def ") || strings.HasPrefix(method, "async def ") {
						context = append(context, "  "+method)
					}
				}
			}
			break
		}

		// A non-indented, non-blank line means we left the enclosing block.
		if stripped != "" && !strings.HasPrefix(raw, " ") && !strings.HasPrefix(raw, "\t") {
			break
		}
	}

	if len(context) == 0 {
		return ""
	}
	return strings.Join(context, "\n") + "\n"
}

func hasDefinitionPrefix(stripped string) bool {
	for _, p := range definitionPrefixes {
		if strings.HasPrefix(stripped, p) {
			return true
		}
	}
	return false
}
