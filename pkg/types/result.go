package types

import "errors"

// SearchResult is one ranked, citable snippet handed to the downstream
// explanation layer. Results are created fresh per query and never mutated.
type SearchResult struct {
	File             string   `json:"file"`
	Content          string   `json:"content"`
	Context          string   `json:"context,omitempty"`
	Relevance        int      `json:"relevance"`
	LineNumber       int      `json:"line_number"` // 1-based
	MatchedTerms     []string `json:"matched_terms"`
	IsTechnicalMatch bool     `json:"is_technical_match"`
}

// Validate performs basic integrity checks on the result.
func (r *SearchResult) Validate() error {
	if r.File == "" {
		return errors.New("result file path is required")
	}
	if r.LineNumber <= 0 {
		return errors.New("result line number must be 1-based")
	}
	if r.Relevance <= 0 {
		return errors.New("result relevance must be positive")
	}
	return nil
}

// Clone returns a deep copy of the result. The query cache stores and serves
// copies so cached entries can never be mutated through a returned slice.
func (r SearchResult) Clone() SearchResult {
	c := r
	c.MatchedTerms = append([]string(nil), r.MatchedTerms...)
	return c
}
