// Package terms converts a free-text query into a set of normalized search
// terms.
//
// Two extraction passes are unioned: a code-pattern pass capturing call
// syntax, dotted access, identifier casings, generics, decorators, sigils and
// backtick spans; and a generic tokenization pass over alphanumeric runs.
// Every term is lowercased; terms of length 2 or less and English stop-words
// are dropped. An empty resulting set short-circuits the search upstream.
package terms

import (
	"regexp"
	"strings"

	"github.com/nileshkumar-sf/kt-agent/pkg/types"
)

// codePatterns capture code-shaped tokens that plain word splitting would
// mangle, such as calls and decorators.
var codePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\w+\(\)`),        // function calls
	regexp.MustCompile(`\w+\.\w+`),       // method/property access
	regexp.MustCompile(`[A-Z]\w+`),       // CamelCase names
	regexp.MustCompile(`\w+_\w+`),        // snake_case names
	regexp.MustCompile(`[a-z]+[A-Z]\w*`), // camelCase names
	regexp.MustCompile(`<\w+>`),          // generic types
	regexp.MustCompile(`\w+\[\w+\]`),     // array/generic syntax
	regexp.MustCompile(`@\w+`),           // decorators
	regexp.MustCompile(`\$\w+`),          // sigil-prefixed variables
	regexp.MustCompile(`#\w+`),           // hash references
	regexp.MustCompile("`[^`]+`"),        // code in backticks
}

var wordPattern = regexp.MustCompile(`\b\w+\b`)

// stopWords is the fixed English stop-word set, including question words
// common in queries ("explain", "show", "find") that carry no signal.
var stopWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"the", "be", "to", "of", "and", "a", "in", "that", "have", "i",
		"it", "for", "not", "on", "with", "he", "as", "you", "do", "at",
		"this", "but", "his", "by", "from", "they", "we", "say", "her",
		"she", "or", "an", "will", "my", "one", "all", "would", "there",
		"their", "what", "so", "up", "out", "if", "about", "who", "get",
		"which", "go", "me", "when", "make", "can", "like", "time", "no",
		"just", "him", "know", "take", "people", "into", "year", "your",
		"good", "some", "could", "them", "see", "other", "than", "then",
		"now", "look", "only", "come", "its", "over", "think", "also",
		"back", "after", "use", "two", "how", "our", "work", "first",
		"well", "way", "even", "new", "want", "because", "any", "these",
		"give", "day", "most", "us", "is", "are", "was", "were", "been",
		"has", "had", "where", "why", "explain",
		"tell", "show", "find", "help", "need", "using", "used", "done",
	} {
		stopWords[w] = struct{}{}
	}
}

// IsStopWord reports whether the lowercased word is in the stop-word set.
func IsStopWord(word string) bool {
	_, ok := stopWords[word]
	return ok
}

// Extract derives the search term set from a query. The returned set may be
// empty, which callers treat as "nothing to search for".
func Extract(query string) types.TermSet {
	set := make(types.TermSet)

	for _, re := range codePatterns {
		for _, m := range re.FindAllString(query, -1) {
			addTerm(set, m)
		}
	}
	for _, w := range wordPattern.FindAllString(query, -1) {
		addTerm(set, w)
	}

	return set
}

// addTerm normalizes and filters a candidate term before insertion.
func addTerm(set types.TermSet, term string) {
	term = strings.ToLower(term)
	if len(term) <= 2 {
		return
	}
	if IsStopWord(term) {
		return
	}
	set.Add(term)
}
