package workflow

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"time"

	"tm-migrator/internal/config"
	"tm-migrator/internal/metrics"
	"tm-migrator/internal/report"
	"tm-migrator/internal/source"
	"tm-migrator/internal/storage"
)

// Stage names used in logs and metrics.
const (
	StageAnalyze   = "analyze"
	StageValidate  = "validate"
	StageTransform = "transform"
	StageResolve   = "resolve"
)

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger passed down to every stage.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMetrics records stage durations and per-stage counters.
func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Runner) {
		r.metrics = m
	}
}

// Runner executes stages. Every stage creates its own contexts, so a
// Runner can run several stages in sequence.
type Runner struct {
	fs      storage.ReadWriter
	cfg     *config.Config
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New creates a Runner over fs. A nil cfg means config.Default.
func New(fsys storage.ReadWriter, cfg *config.Config, opts ...Option) *Runner {
	if cfg == nil {
		cfg = config.Default()
	}

	r := &Runner{
		fs:     fsys,
		cfg:    cfg,
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

func (r *Runner) reportPath(name string) string {
	return path.Join(r.cfg.Output.ReportsDir, name)
}

func (r *Runner) outputPath(name string) string {
	return path.Join(r.cfg.Output.Dir, name)
}

func (r *Runner) sourceOptions() source.Options {
	return source.Options{
		MetadataDir: r.cfg.Source.MetadataDir,
		DataDir:     r.cfg.Source.DataDir,
		Objects:     r.cfg.Source.Objects,
	}
}

func (r *Runner) newSource() *source.Context {
	return source.New(r.fs,
		source.WithLogger(r.logger),
		source.WithErrorMode(r.cfg.ErrorMode.ErrorMode),
		source.WithMetrics(r.metrics),
	)
}

// ready turns a trapped lifecycle failure back into a stage error.
func ready(src *source.Context, err error) error {
	if err != nil {
		return err
	}

	if src.Failed() {
		return src.Err()
	}

	return nil
}

// loadAnalysis reads the analysis snapshot. A missing snapshot yields nil.
func (r *Runner) loadAnalysis() (*report.AnalysisReport, error) {
	name := r.reportPath(report.AnalysisFile)

	ok, err := r.fs.Exists(name)
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, nil
	}

	return report.Load[report.AnalysisReport](r.fs, name)
}

func (r *Runner) timed(stage string, fn func() error) error {
	start := time.Now()
	r.logger.Info("stage started", "stage", stage)

	err := fn()

	r.metrics.ObserveStage(stage, time.Since(start))

	if err != nil {
		r.logger.Error("stage failed", "stage", stage, "error", err)
		return fmt.Errorf("%s: %w", stage, err)
	}

	r.logger.Info("stage finished", "stage", stage, "duration", time.Since(start))

	return nil
}

var errNoAnalysis = fmt.Errorf("no %s snapshot: %w", report.AnalysisFile, fs.ErrNotExist)

// IsMissingAnalysis reports whether err means the analyze stage never ran.
func IsMissingAnalysis(err error) bool {
	return errors.Is(err, errNoAnalysis)
}
