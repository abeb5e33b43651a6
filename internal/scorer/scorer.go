// Package scorer ranks corpus files against a search term set.
//
// Each file gets one explicit FileScore record combining filename matches,
// per-line term matches, structural-definition density, framework-convention
// bonuses, and the structural analyzer's findings. The total is strictly the
// sum of its components; ranking is descending by total with ties broken by
// corpus walk order, and only the top files feed context assembly.
package scorer

import (
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/nileshkumar-sf/kt-agent/internal/analyzer"
	"github.com/nileshkumar-sf/kt-agent/internal/loader"
	"github.com/nileshkumar-sf/kt-agent/internal/project"
	"github.com/nileshkumar-sf/kt-agent/pkg/types"
)

// MaxTopFiles bounds how many distinct files reach context assembly,
// regardless of how many scored above zero.
const MaxTopFiles = 3

// Scoring weights.
const (
	filenameExactWeight   = 20
	filenamePartialWeight = 5
	definitionLineBonus   = 5
	frameworkPatternBonus = 5
)

// definitionLines match structural-definition openers; each matching line is
// worth definitionLineBonus.
var definitionLines = []*regexp.Regexp{
	regexp.MustCompile(`class\s+\w+`),
	regexp.MustCompile(`def\s+\w+`),
	regexp.MustCompile(`function\s+\w+`),
	regexp.MustCompile(`import\s+\w+`),
	regexp.MustCompile(`from\s+\w+\s+import`),
	regexp.MustCompile(`require\(`),
	regexp.MustCompile(`export\s+`),
	regexp.MustCompile(`@\w+`),
}

// technicalLine flags a line as a structural definition for LineMatch records.
var technicalLine = regexp.MustCompile(`(class|def|function|import|export|require|@)\s+\w+`)

// Ranked carries one scored file forward to context assembly.
type Ranked struct {
	Path     string
	Lines    []string
	Score    types.FileScore
	Analysis types.TechnicalAnalysis
}

// Scorer scores files against a fixed framework profile.
type Scorer struct {
	profile    project.Profile
	heuristics []analyzer.Heuristic
}

// New creates a Scorer using the default heuristic set.
func New(profile project.Profile) *Scorer {
	return &Scorer{profile: profile, heuristics: analyzer.Default()}
}

// Score evaluates every corpus file and returns those with a positive total,
// in corpus walk order. The query is consulted only to select the framework
// pattern group; literal matching uses the term set.
func (s *Scorer) Score(corpus *loader.Corpus, set types.TermSet, query string) []Ranked {
	if len(set) == 0 {
		return nil
	}

	var patterns []*regexp.Regexp
	if s.profile.Type.Recognized() {
		patterns = s.profile.PatternsForQuery(query)
	}

	sorted := set.Sorted()
	var ranked []Ranked
	for _, path := range corpus.Paths() {
		content, ok := corpus.Content(path)
		if !ok {
			continue
		}
		r := s.scoreFile(path, content, sorted, patterns)
		if r.Score.TotalScore > 0 {
			ranked = append(ranked, r)
		}
	}
	return ranked
}

// scoreFile builds the FileScore record for one file.
func (s *Scorer) scoreFile(path, content string, sortedTerms []string, patterns []*regexp.Regexp) Ranked {
	base := strings.ToLower(filepath.Base(path))
	segments := strings.Split(base, ".")
	lines := strings.Split(content, "\n")

	var score types.FileScore
	for _, term := range sortedTerms {
		for _, seg := range segments {
			if term == seg {
				score.FilenameExact += filenameExactWeight
				break
			}
		}
		if strings.Contains(base, term) {
			score.FilenamePartial += filenamePartialWeight
		}
	}

	technical := s.frameworkScore(base, content, patterns)

	for i, line := range lines {
		if matchesAnyDefinition(line) {
			technical += definitionLineBonus
		}

		lower := strings.ToLower(line)
		var matched []string
		for _, term := range sortedTerms {
			if strings.Contains(lower, term) {
				matched = append(matched, term)
			}
		}
		if len(matched) > 0 {
			score.Matches = append(score.Matches, types.LineMatch{
				LineNum:     i,
				Terms:       matched,
				Line:        line,
				IsTechnical: technicalLine.MatchString(line),
			})
		}
	}

	analysis := analyzer.Run(content, s.heuristics...)
	technical += analysis.TechnicalScore()

	score.TechnicalScore = technical
	score.TotalScore = score.Sum()

	return Ranked{Path: path, Lines: lines, Score: score, Analysis: analysis}
}

// frameworkScore awards filename-suffix bonuses and pattern-group hits for
// recognized framework types. Zero for unknown projects.
func (s *Scorer) frameworkScore(base, content string, patterns []*regexp.Regexp) int {
	if !s.profile.Type.Recognized() {
		return 0
	}

	score := 0
	for _, sb := range s.profile.Suffixes {
		if strings.HasSuffix(base, sb.Suffix) {
			score += sb.Bonus
			break
		}
	}
	for _, re := range patterns {
		if re.MatchString(content) {
			score += frameworkPatternBonus
		}
	}
	return score
}

// Top returns at most n files ranked by descending total score. The stable
// sort preserves corpus walk order between equal totals.
func Top(ranked []Ranked, n int) []Ranked {
	out := append([]Ranked(nil), ranked...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score.TotalScore > out[j].Score.TotalScore
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func matchesAnyDefinition(line string) bool {
	for _, re := range definitionLines {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}
