package source

import (
	"log/slog"

	"tm-migrator/internal/lifecycle"
	"tm-migrator/internal/metadata"
	"tm-migrator/internal/metrics"
	"tm-migrator/internal/storage"
)

// Options are the inputs of Build and Load. They are replayed on Refresh.
type Options struct {
	// MetadataDir holds sharingRules/<Object>.sharingRules files.
	MetadataDir string `json:"metadataDir"`
	// DataDir holds the tabular extracts.
	DataDir string `json:"dataDir"`
	// Objects whose sharing rules are read. Empty means metadata.DefaultObjects.
	Objects []string `json:"objects,omitempty"`
	// SnapshotPath is read by Load.
	SnapshotPath string `json:"snapshotPath,omitempty"`

	// allowEmpty accepts a header-only Territory extract. Only set when
	// validating, where an empty extract is a count to report.
	allowEmpty bool
}

func (o Options) objects() []string {
	if len(o.Objects) == 0 {
		return metadata.DefaultObjects
	}

	return o.Objects
}

// Option configures a Context.
type Option func(*Context)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Context) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithErrorMode selects trap or raise handling of Build and Load failures.
func WithErrorMode(mode lifecycle.ErrorMode) Option {
	return func(c *Context) {
		c.mode = mode
	}
}

// WithMetrics records parse and naming counters.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Context) {
		c.metrics = m
	}
}

// Context is the indexed source extract.
type Context struct {
	src     storage.Source
	logger  *slog.Logger
	metrics *metrics.Metrics
	mode    lifecycle.ErrorMode

	life *lifecycle.Lifecycle[Options]
	data *extract
}

// New creates an unready Context reading from src.
func New(src storage.Source, opts ...Option) *Context {
	c := &Context{
		src:    src,
		logger: slog.New(slog.DiscardHandler),
		mode:   lifecycle.Raise,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.life = lifecycle.New(
		lifecycle.Hooks[Options]{
			Build: c.build,
			Load:  c.load,
		},
		lifecycle.WithName("source context"),
		lifecycle.WithErrorMode(c.mode),
		lifecycle.WithLogger(c.logger),
	)

	return c
}

// Prepare builds a Context from the extracts under metadataDir and dataDir.
func Prepare(src storage.Source, metadataDir, dataDir string, opts ...Option) (*Context, error) {
	c := New(src, opts...)

	if err := c.Build(Options{MetadataDir: metadataDir, DataDir: dataDir}); err != nil {
		return nil, err
	}

	return c, nil
}

// Build parses the extracts described by opts.
func (c *Context) Build(opts Options) error { return c.life.Build(opts) }

// Load restores the Context from the snapshot at opts.SnapshotPath.
func (c *Context) Load(opts Options) error { return c.life.Load(opts) }

// Refresh repeats the last successful Build or Load.
func (c *Context) Refresh() error { return c.life.Refresh() }

// MarkStale flags the extract as out of date until the next Refresh.
func (c *Context) MarkStale() { c.life.MarkStale() }

// Status returns the lifecycle flags.
func (c *Context) Status() lifecycle.Status { return c.life.Status() }

func (c *Context) Built() bool  { return c.life.Built() }
func (c *Context) Loaded() bool { return c.life.Loaded() }
func (c *Context) Ready() bool  { return c.life.Ready() }
func (c *Context) Failed() bool { return c.life.Failed() }
func (c *Context) Stale() bool  { return c.life.Stale() }

// Err returns the error that failed the Context, if any.
func (c *Context) Err() error { return c.life.Err() }
