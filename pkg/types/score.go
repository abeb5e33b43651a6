package types

import "sort"

// TermSet is a set of normalized search terms derived from a query.
// Terms are lowercase, at least 3 characters long, and never stop-words;
// the extractor enforces those invariants before a set reaches the scorer.
type TermSet map[string]struct{}

// NewTermSet builds a set from the given terms without normalizing them.
func NewTermSet(terms ...string) TermSet {
	s := make(TermSet, len(terms))
	for _, t := range terms {
		s[t] = struct{}{}
	}
	return s
}

// Add inserts a term into the set.
func (s TermSet) Add(term string) { s[term] = struct{}{} }

// Has reports whether the term is in the set.
func (s TermSet) Has(term string) bool {
	_, ok := s[term]
	return ok
}

// Sorted returns the terms in lexicographic order. Scoring iterates terms in
// this order so that matched-term lists and result ordering are deterministic.
func (s TermSet) Sorted() []string {
	terms := make([]string, 0, len(s))
	for t := range s {
		terms = append(terms, t)
	}
	sort.Strings(terms)
	return terms
}

// LineMatch records one corpus line containing at least one search term.
type LineMatch struct {
	LineNum     int      // zero-based index into the file's lines
	Terms       []string // matched terms, sorted
	Line        string   // raw line text
	IsTechnical bool     // line looks like a structural definition
}

// FileScore is the composite scoring record for a single file.
type FileScore struct {
	FilenameExact   int // 20 per term equal to a dot-separated basename segment
	FilenamePartial int // 5 per term that is a substring of the basename
	Matches         []LineMatch
	TechnicalScore  int
	TotalScore      int
}

// Sum recomputes the total from the component signals. The total is
// monotonically derived: it never decreases as matching signals are added.
func (f *FileScore) Sum() int {
	return f.FilenameExact + f.FilenamePartial + 2*len(f.Matches) + f.TechnicalScore
}
