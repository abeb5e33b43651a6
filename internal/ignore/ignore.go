// Package ignore decides whether a filesystem path is excluded from indexing.
//
// A Filter combines a built-in default pattern list with project-specific
// rules read from a root-level ignore file (.gitignore format: line-oriented,
// blank lines and #-comments skipped). A path is ignored as soon as any
// pattern matches; the first match short-circuits.
//
// Matching semantics by pattern class:
//   - patterns ending in "/" exclude that directory and everything beneath
//     it, glob-matched against the path's leading segments
//   - patterns containing no separator match against the individual path
//     segments (so "build" excludes build/x.ts without help from traversal
//     pruning)
//   - all other patterns match against the whole root-relative path using
//     shell-glob semantics
package ignore

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPatterns excludes build artifacts, dependency directories, caches,
// media and binary assets, lockfiles, docs, and IDE metadata.
var DefaultPatterns = []string{
	// Build and dependency directories
	"node_modules",
	"dist",
	"build",
	"out",
	".next",

	// Python specific
	"__pycache__",
	"*.pyc",
	"venv",
	".env",
	"*.egg-info",

	// Assets and media
	"assets",
	"images",
	"media",
	"*.jpg",
	"*.jpeg",
	"*.png",
	"*.gif",
	"*.svg",
	"*.ico",
	"*.pdf",

	// IDE and editor files
	".idea",
	".vscode",
	".DS_Store",

	// Package files
	"package-lock.json",
	"yarn.lock",

	// Log and cache files
	"logs",
	"*.log",
	".cache",

	// Test coverage
	"coverage",
	".coverage",

	// Documentation
	"docs",
	"*.md",

	// Config files
	"*.config.js",
	"*.conf",
	"*.lock",
}

// IgnoreFileName is the project-root file additional patterns are read from.
const IgnoreFileName = ".gitignore"

// Filter holds an ordered pattern list and matches root-relative paths
// against it. Immutable after construction.
type Filter struct {
	patterns []string
}

// New creates a Filter from the default patterns plus any extra patterns.
func New(extra ...string) *Filter {
	patterns := make([]string, 0, len(DefaultPatterns)+len(extra))
	patterns = append(patterns, DefaultPatterns...)
	patterns = append(patterns, extra...)
	return &Filter{patterns: patterns}
}

// FromProject creates a Filter from the defaults unioned with the patterns in
// the project's ignore file. A missing or unreadable ignore file is fine; the
// defaults still apply.
func FromProject(root string, extra ...string) *Filter {
	f := New(extra...)

	file, err := os.Open(filepath.Join(root, IgnoreFileName))
	if err != nil {
		return f
	}
	defer func() { _ = file.Close() }()

	f.appendFrom(file)
	return f
}

// appendFrom parses ignore-file lines from r, skipping blanks and comments.
func (f *Filter) appendFrom(r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		f.patterns = append(f.patterns, line)
	}
}

// Patterns returns a copy of the active pattern list.
func (f *Filter) Patterns() []string {
	return append([]string(nil), f.patterns...)
}

// Match reports whether the root-relative path is ignored. The path must use
// forward slashes; callers convert with filepath.ToSlash. Applied both to
// directory names during traversal (pruning whole subtrees) and to individual
// file candidates.
func (f *Filter) Match(rel string) bool {
	rel = strings.Trim(rel, "/")
	if rel == "" || rel == "." {
		return false
	}

	segments := strings.Split(rel, "/")

	for _, pattern := range f.patterns {
		if matchPattern(pattern, rel, segments) {
			return true
		}
	}
	return false
}

// matchPattern applies one pattern using its class-specific semantics.
func matchPattern(pattern, rel string, segments []string) bool {
	// Directory patterns ignore the named directory and everything beneath
	// it: the pattern is glob-matched against each leading segment prefix of
	// the path, so "secrets/" excludes secrets, secrets/key.ts, and deeper.
	if strings.HasSuffix(pattern, "/") {
		dir := strings.TrimSuffix(pattern, "/")
		for i := range segments {
			if ok, _ := doublestar.Match(dir, strings.Join(segments[:i+1], "/")); ok {
				return true
			}
		}
		return false
	}

	// Separator-free patterns apply to every path segment, so a directory
	// pattern like "build" also excludes files beneath it.
	if !strings.Contains(pattern, "/") {
		for _, seg := range segments {
			if ok, _ := doublestar.Match(pattern, seg); ok {
				return true
			}
		}
		return false
	}

	ok, _ := doublestar.Match(pattern, rel)
	return ok
}
