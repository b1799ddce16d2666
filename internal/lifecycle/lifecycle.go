package lifecycle

import (
	"fmt"
	"log/slog"

	"tm-migrator/internal/sentinel"
)

// ErrorMode decides what happens to an error returned by a hook.
type ErrorMode int

const (
	// Raise records the error and returns it to the caller.
	Raise ErrorMode = iota
	// Trap records the error and returns nil; callers inspect Failed and Err.
	Trap
)

// String returns the mode name used in configuration files.
func (m ErrorMode) String() string {
	switch m {
	case Raise:
		return "raise"
	case Trap:
		return "trap"
	default:
		return fmt.Sprintf("ErrorMode(%d)", int(m))
	}
}

// ParseErrorMode converts a configuration value into an ErrorMode.
func ParseErrorMode(s string) (ErrorMode, error) {
	switch s {
	case "", "raise":
		return Raise, nil
	case "trap":
		return Trap, nil
	default:
		return Raise, fmt.Errorf("error mode %q: %w", s, sentinel.ErrType)
	}
}

// Hooks are the domain-specific initialisers driven by a Lifecycle.
// A nil hook means the operation is unsupported by the owner.
type Hooks[O any] struct {
	Build func(O) error
	Load  func(O) error
}

type method int

const (
	methodNone method = iota
	methodBuild
	methodLoad
)

func (m method) String() string {
	switch m {
	case methodBuild:
		return "build"
	case methodLoad:
		return "load"
	default:
		return "none"
	}
}

// Status is a point-in-time copy of the lifecycle flags.
type Status struct {
	Built  bool `json:"built"`
	Loaded bool `json:"loaded"`
	Ready  bool `json:"ready"`
	Failed bool `json:"failed"`
	Stale  bool `json:"stale"`
}

// Option configures a Lifecycle.
type Option func(*settings)

type settings struct {
	name   string
	mode   ErrorMode
	logger *slog.Logger
}

// WithErrorMode selects trap or raise behaviour for this instance.
func WithErrorMode(mode ErrorMode) Option {
	return func(s *settings) {
		s.mode = mode
	}
}

// WithLogger sets the logger used for state transitions.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithName labels the owner in errors and log lines.
func WithName(name string) Option {
	return func(s *settings) {
		s.name = name
	}
}

// Lifecycle is not safe for concurrent use.
type Lifecycle[O any] struct {
	hooks    Hooks[O]
	settings settings

	status Status
	err    error
	last   method
	opts   O
}

// New creates an unready Lifecycle around hooks.
func New[O any](hooks Hooks[O], opts ...Option) *Lifecycle[O] {
	s := settings{
		name:   "object",
		mode:   Raise,
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(&s)
	}

	return &Lifecycle[O]{
		hooks:    hooks,
		settings: s,
	}
}

// Build initialises the owner from raw inputs.
func (l *Lifecycle[O]) Build(opts O) error {
	return l.start(methodBuild, opts)
}

// Load initialises the owner from persisted state.
func (l *Lifecycle[O]) Load(opts O) error {
	return l.start(methodLoad, opts)
}

// Refresh re-runs whichever of Build or Load succeeded, with the same options.
func (l *Lifecycle[O]) Refresh() error {
	if !l.status.Ready {
		return fmt.Errorf("%s: refresh: %w", l.settings.name, sentinel.ErrNotReady)
	}

	l.settings.logger.Debug("refreshing", "object", l.settings.name, "via", l.last.String())

	if err := l.hook(l.last)(l.opts); err != nil {
		return l.fail(l.last, err)
	}

	l.status.Stale = false

	return nil
}

// MarkStale flags the current state as out of date without invalidating it.
func (l *Lifecycle[O]) MarkStale() {
	if l.status.Ready {
		l.status.Stale = true
	}
}

// Guard returns ErrNotReady unless the owner is ready. Accessors call it first.
func (l *Lifecycle[O]) Guard() error {
	if l.status.Ready {
		return nil
	}

	if l.status.Failed {
		return fmt.Errorf("%s: %w: %w", l.settings.name, sentinel.ErrNotReady, l.err)
	}

	return fmt.Errorf("%s: %w", l.settings.name, sentinel.ErrNotReady)
}

// Status returns a copy of the current flags.
func (l *Lifecycle[O]) Status() Status { return l.status }

// Built reports whether the ready state came from Build.
func (l *Lifecycle[O]) Built() bool { return l.status.Built }

// Loaded reports whether the ready state came from Load.
func (l *Lifecycle[O]) Loaded() bool { return l.status.Loaded }

// Ready reports whether accessors may be used.
func (l *Lifecycle[O]) Ready() bool { return l.status.Ready }

// Failed reports whether a hook failed. Failed instances stay failed.
func (l *Lifecycle[O]) Failed() bool { return l.status.Failed }

// Stale reports whether MarkStale was called since the last successful hook.
func (l *Lifecycle[O]) Stale() bool { return l.status.Stale }

// Err returns the error that moved the instance to Failed, if any.
func (l *Lifecycle[O]) Err() error { return l.err }

func (l *Lifecycle[O]) start(m method, opts O) error {
	if l.status.Ready {
		return fmt.Errorf("%s: %s: %w", l.settings.name, m, sentinel.ErrAlreadyReady)
	}

	if l.status.Failed {
		return fmt.Errorf("%s: %s: %w: %w", l.settings.name, m, sentinel.ErrFailed, l.err)
	}

	hook := l.hook(m)
	if hook == nil {
		return fmt.Errorf("%s: %s is not supported: %w", l.settings.name, m, sentinel.ErrType)
	}

	if err := hook(opts); err != nil {
		return l.fail(m, err)
	}

	l.last = m
	l.opts = opts
	l.status = Status{
		Built:  m == methodBuild,
		Loaded: m == methodLoad,
		Ready:  true,
	}

	l.settings.logger.Debug("ready", "object", l.settings.name, "via", m.String())

	return nil
}

func (l *Lifecycle[O]) hook(m method) func(O) error {
	switch m {
	case methodBuild:
		return l.hooks.Build
	case methodLoad:
		return l.hooks.Load
	default:
		return nil
	}
}

func (l *Lifecycle[O]) fail(m method, err error) error {
	err = fmt.Errorf("%s: %s: %w", l.settings.name, m, err)

	l.err = err
	l.status = Status{Failed: true}

	l.settings.logger.Error("lifecycle failed", "object", l.settings.name, "via", m.String(), "error", err)

	if l.settings.mode == Trap {
		return nil
	}

	return err
}
