// Package engine ties the retrieval pipeline together behind one facade.
//
// An Engine owns the corpus for a single project root. Construction detects
// the project type, builds the ignore filter, and (by default) eagerly loads
// the corpus; construction fails only when the root does not exist. After
// that there is no unrecoverable failure mode: queries with no usable terms
// or no scoring files return an empty result list, never an error.
//
// A query runs the full pipeline synchronously on the calling goroutine:
// term extraction, scoring, top-file selection, context assembly. The corpus
// and profile are immutable after load, so concurrent Search calls are safe;
// repeated identical queries are served from a bounded LRU cache of
// deep-copied result lists.
package engine

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/nileshkumar-sf/kt-agent/internal/ignore"
	"github.com/nileshkumar-sf/kt-agent/internal/loader"
	"github.com/nileshkumar-sf/kt-agent/internal/project"
	"github.com/nileshkumar-sf/kt-agent/internal/scorer"
	"github.com/nileshkumar-sf/kt-agent/internal/snippet"
	"github.com/nileshkumar-sf/kt-agent/internal/terms"
	"github.com/nileshkumar-sf/kt-agent/pkg/types"
)

// ErrNoProject is returned when the project root does not exist or is not a
// directory.
var ErrNoProject = errors.New("project root does not exist")

// DefaultCacheSize bounds the query result cache.
const DefaultCacheSize = 256

// Engine is the retrieval engine for one project root.
type Engine struct {
	root        string
	projectType types.ProjectType
	profile     project.Profile
	filter      *ignore.Filter
	scorer      *scorer.Scorer
	logger      *zap.Logger
	cache       *lru.Cache[[32]byte, []types.SearchResult]

	mu     sync.Mutex // guards corpus during deferred load
	corpus *loader.Corpus
}

// Stats reports what one Search call did.
type Stats struct {
	FilesScored   int
	FilesRetained int
	Results       int
	Duration      time.Duration
	CacheHit      bool
}

// Status describes the engine's loaded state.
type Status struct {
	Root        string            `json:"root"`
	ProjectType types.ProjectType `json:"project_type"`
	Files       int               `json:"files"`
	Loaded      bool              `json:"loaded"`
}

type options struct {
	logger       *zap.Logger
	extraIgnores []string
	profile      *project.Profile
	cacheSize    int
	deferLoad    bool
}

// Option configures an Engine at construction. All configuration is explicit
// and immutable afterwards; there is no process-wide state.
type Option func(*options)

// WithLogger sets the engine logger. Default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithExtraIgnorePatterns appends patterns to the default + project ignore
// rules.
func WithExtraIgnorePatterns(patterns ...string) Option {
	return func(o *options) { o.extraIgnores = append(o.extraIgnores, patterns...) }
}

// WithProfile overrides project-type detection with a fixed profile.
func WithProfile(p project.Profile) Option {
	return func(o *options) { o.profile = &p }
}

// WithCacheSize sets the query cache capacity.
func WithCacheSize(n int) Option {
	return func(o *options) { o.cacheSize = n }
}

// WithDeferredLoad postpones the corpus walk until Load or the first Search.
func WithDeferredLoad() Option {
	return func(o *options) { o.deferLoad = true }
}

// New constructs an Engine for the project root. The root must exist; that is
// the only fatal condition. By default the corpus is loaded eagerly.
func New(root string, opts ...Option) (*Engine, error) {
	o := options{cacheSize: DefaultCacheSize}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root %q: %w", root, err)
	}
	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNoProject, abs)
	}

	var profile project.Profile
	projectType := types.ProjectUnknown
	if o.profile != nil {
		profile = *o.profile
		projectType = profile.Type
	} else {
		projectType = project.Detect(abs)
		profile = project.ProfileFor(projectType)
	}

	cache, err := lru.New[[32]byte, []types.SearchResult](o.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create query cache: %w", err)
	}

	e := &Engine{
		root:        abs,
		projectType: projectType,
		profile:     profile,
		filter:      ignore.FromProject(abs, o.extraIgnores...),
		scorer:      scorer.New(profile),
		logger:      o.logger,
		cache:       cache,
	}

	e.logger.Info("engine created",
		zap.String("root", abs),
		zap.String("project_type", string(projectType)))

	if !o.deferLoad {
		if err := e.Load(); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Load builds the corpus from the filesystem. Idempotent: once loaded, later
// calls are no-ops. The corpus is never updated incrementally; a fresh view
// requires a fresh engine.
func (e *Engine) Load() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.corpus != nil {
		return nil
	}

	l := loader.New(e.root, e.filter, e.profile, e.logger)
	corpus, err := l.Load()
	if err != nil {
		return err
	}
	e.corpus = corpus
	e.logger.Info("corpus loaded", zap.Int("files", corpus.Len()))
	return nil
}

// ProjectType returns the detected (or overridden) project type.
func (e *Engine) ProjectType() types.ProjectType { return e.projectType }

// Status reports the engine's current state.
func (e *Engine) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := Status{Root: e.root, ProjectType: e.projectType}
	if e.corpus != nil {
		s.Loaded = true
		s.Files = e.corpus.Len()
	}
	return s
}

// Search runs one query and returns the ranked snippet list. An empty list
// is a valid response meaning "no relevant code found".
func (e *Engine) Search(query string) ([]types.SearchResult, error) {
	results, _, err := e.SearchWithStats(query)
	return results, err
}

// SearchWithStats is Search plus per-call statistics.
func (e *Engine) SearchWithStats(query string) ([]types.SearchResult, Stats, error) {
	start := time.Now()

	if err := e.Load(); err != nil {
		return nil, Stats{}, err
	}

	set := terms.Extract(query)
	if len(set) == 0 {
		e.logger.Debug("no usable search terms", zap.String("query", query))
		return nil, Stats{Duration: time.Since(start)}, nil
	}

	key := queryKey(query)
	if cached, ok := e.cache.Get(key); ok {
		results := copyResults(cached)
		return results, Stats{
			Results:  len(results),
			Duration: time.Since(start),
			CacheHit: true,
		}, nil
	}

	ranked := e.scorer.Score(e.corpus, set, query)
	top := scorer.Top(ranked, scorer.MaxTopFiles)
	results := snippet.Assemble(top)

	e.cache.Add(key, copyResults(results))

	stats := Stats{
		FilesScored:   len(ranked),
		FilesRetained: len(top),
		Results:       len(results),
		Duration:      time.Since(start),
	}
	e.logger.Debug("search completed",
		zap.String("query", query),
		zap.Int("files_scored", stats.FilesScored),
		zap.Int("results", stats.Results),
		zap.Duration("duration", stats.Duration))

	return results, stats, nil
}

// queryKey hashes a query for the result cache.
func queryKey(query string) [32]byte {
	return sha256.Sum256([]byte(query))
}

// copyResults deep-copies a result list so cached entries can never be
// mutated through a returned slice.
func copyResults(src []types.SearchResult) []types.SearchResult {
	if src == nil {
		return nil
	}
	dst := make([]types.SearchResult, len(src))
	for i, r := range src {
		dst[i] = r.Clone()
	}
	return dst
}
