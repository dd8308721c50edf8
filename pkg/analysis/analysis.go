// Package analysis orchestrates a full run: file discovery, concurrent
// per-file scanning, aggregation, and principle scoring.
package analysis

import (
	"github.com/augurtools/augur/internal/fileproc"
	"github.com/augurtools/augur/internal/scanner"
	"github.com/augurtools/augur/pkg/config"
	"github.com/augurtools/augur/pkg/metrics"
	"github.com/augurtools/augur/pkg/principles"
	"github.com/augurtools/augur/pkg/source"
)

// Analysis is the complete result of one run.
type Analysis struct {
	Files      []metrics.FileMetrics        `json:"files"`
	Summary    metrics.Summary              `json:"summary"`
	SOLID      *principles.SOLIDScores      `json:"solid_scores,omitempty"`
	Functional *principles.FunctionalScores `json:"functional_scores,omitempty"`
}

// Runner executes analyses with a fixed configuration.
type Runner struct {
	cfg        *config.Config
	src        source.ContentSource
	onProgress fileproc.ProgressFunc
}

// Option configures a Runner.
type Option func(*Runner)

// WithProgress registers a callback fired once per processed file.
func WithProgress(fn fileproc.ProgressFunc) Option {
	return func(r *Runner) { r.onProgress = fn }
}

// WithSource overrides where file content is read from.
func WithSource(src source.ContentSource) Option {
	return func(r *Runner) { r.src = src }
}

// New creates a Runner. A nil config uses defaults.
func New(cfg *config.Config, opts ...Option) *Runner {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	r := &Runner{cfg: cfg, src: source.NewFilesystem()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ListFiles enumerates the source files under root. A non-empty
// extensions list overrides the configured extension filter. The root
// must be an existing directory.
func (r *Runner) ListFiles(root string, extensions []string) ([]string, error) {
	s := scanner.NewScanner(r.cfg)
	if len(extensions) > 0 {
		s.SetExtensions(extensions)
	}
	return s.ScanDir(root)
}

// AnalyzeFiles scans the given files concurrently and scores the result.
// Unreadable files are skipped; their paths simply drop out of the
// result. Principle scores are computed only when at least one file
// survived the scan, so an empty run carries no scores.
func (r *Runner) AnalyzeFiles(files []string) *Analysis {
	results, _ := fileproc.ForEachFileIndexed(files, r.cfg.Analysis.Workers,
		func(path string) (*metrics.FileMetrics, error) {
			return metrics.ScanSource(r.src, path)
		}, r.onProgress)

	// Compact failed slots while keeping discovery order. Principle
	// scoring below depends on that order.
	records := make([]metrics.FileMetrics, 0, len(results))
	for _, fm := range results {
		if fm != nil {
			records = append(records, *fm)
		}
	}

	a := &Analysis{
		Files:   records,
		Summary: metrics.Summarize(records),
	}
	if len(records) > 0 {
		solid := principles.EvaluateSOLID(records, r.src)
		functional := principles.EvaluateFunctional(records, r.src)
		a.SOLID = &solid
		a.Functional = &functional
	}
	return a
}

// Run discovers and analyzes the files under root in one step.
func (r *Runner) Run(root string, extensions []string) (*Analysis, error) {
	files, err := r.ListFiles(root, extensions)
	if err != nil {
		return nil, err
	}
	return r.AnalyzeFiles(files), nil
}
