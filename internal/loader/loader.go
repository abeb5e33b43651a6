// Package loader walks a project tree and builds the in-memory corpus.
//
// Traversal is top-down: ignored subdirectories are pruned before descent so
// excluded trees are never opened, and only files matching the active
// profile's extensions are read. Per-file read failures are logged and
// skipped; they never abort the walk. No size limit is enforced; that is a
// known scalability bound, not a defect.
package loader

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/nileshkumar-sf/kt-agent/internal/ignore"
	"github.com/nileshkumar-sf/kt-agent/internal/project"
)

// Corpus maps absolute file paths to full file text, preserving the
// filesystem-walk order of insertion. Built once per engine instance and
// immutable after load; walk order breaks ranking ties downstream.
type Corpus struct {
	paths []string
	files map[string]string
}

// NewCorpus creates an empty corpus.
func NewCorpus() *Corpus {
	return &Corpus{files: make(map[string]string)}
}

// Add records a file. First insertion fixes the path's position in walk order.
func (c *Corpus) Add(path, content string) {
	if _, ok := c.files[path]; !ok {
		c.paths = append(c.paths, path)
	}
	c.files[path] = content
}

// Paths returns the file paths in walk order.
func (c *Corpus) Paths() []string {
	return append([]string(nil), c.paths...)
}

// Content returns a file's text.
func (c *Corpus) Content(path string) (string, bool) {
	content, ok := c.files[path]
	return content, ok
}

// Len returns the number of loaded files.
func (c *Corpus) Len() int { return len(c.paths) }

// Loader reads a project tree into a Corpus.
type Loader struct {
	root    string
	filter  *ignore.Filter
	profile project.Profile
	logger  *zap.Logger
}

// New creates a Loader. The root must already be validated by the caller.
func New(root string, filter *ignore.Filter, profile project.Profile, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{root: root, filter: filter, profile: profile, logger: logger}
}

// Load walks the tree and returns the corpus. Only a failure to walk the root
// itself is an error; individual unreadable files are skipped with a
// diagnostic and loading continues.
func (l *Loader) Load() (*Corpus, error) {
	corpus := NewCorpus()

	err := filepath.WalkDir(l.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == l.root {
				return err
			}
			l.logger.Warn("skipping unreadable entry", zap.String("path", path), zap.Error(err))
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		rel, relErr := filepath.Rel(l.root, path)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			// Prune ignored subtrees before descending.
			if path != l.root && l.filter.Match(rel) {
				return fs.SkipDir
			}
			return nil
		}

		if !l.profile.MatchesExtension(d.Name()) {
			return nil
		}
		if l.filter.Match(rel) {
			return nil
		}

		content, readErr := os.ReadFile(path)
		if readErr != nil {
			l.logger.Warn("skipping unreadable file", zap.String("path", path), zap.Error(readErr))
			return nil
		}

		abs, absErr := filepath.Abs(path)
		if absErr != nil {
			abs = path
		}
		corpus.Add(abs, string(content))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk project tree: %w", err)
	}

	l.logger.Debug("corpus loaded", zap.Int("files", corpus.Len()), zap.String("root", l.root))
	return corpus, nil
}
