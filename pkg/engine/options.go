// Package engine is the blocking/generalization engine and frame-advance
// driver (spec components C6-C8): the outer IC3/PDR loop that drives
// pkg/frames to either a Proof or a CTX result.
package engine

import (
	"math/rand"
	"time"

	"github.com/sirandreww/ic3pdr/internal/ic3log"
)

// Algorithm selects which blocking-loop flavor strengthen uses: both share
// the frame store, SAT abstraction, and generalization routine.
type Algorithm int

const (
	// IC3 is the push-generalization flavor (spec.md §4.6.5).
	IC3 Algorithm = iota
	// PDR is the rec_block_cube flavor (spec.md §4.6.6).
	PDR
)

func (a Algorithm) String() string {
	switch a {
	case IC3:
		return "ic3"
	case PDR:
		return "pdr"
	default:
		return "unknown"
	}
}

// Options configures a Run, mirroring the teacher's solver.Option /
// solver.New(options ...Option) pattern: every constructor returns a
// function mutating an *Options, applied over a zero-value default.
type Options struct {
	Verbose          bool
	AssumeOutputsBad bool
	Algorithm        Algorithm
	Logger           ic3log.Logger
	Rand             *rand.Rand
}

// Option mutates an Options being built by NewOptions.
type Option func(*Options)

// WithVerbose raises the default logger to DebugLevel, so the driver's
// Debug progress lines (depth pre-checks, frame allocation) are printed.
// It has no effect on a logger injected via WithLogger.
func WithVerbose() Option {
	return func(o *Options) { o.Verbose = true }
}

// WithAssumeOutputsBad sets Options.AssumeOutputsBad. The engine does not
// read this field: New takes an already-built fsts.System, and outputs
// count as bad signals only when that System was built with
// fsts.Build(a, true).
func WithAssumeOutputsBad() Option {
	return func(o *Options) { o.AssumeOutputsBad = true }
}

// WithAlgorithm selects the blocking-loop flavor.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) { o.Algorithm = a }
}

// WithLogger injects a custom logger in place of the verbose-gated
// logrus default.
func WithLogger(l ic3log.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithRand injects a *rand.Rand for deterministic literal-drop ordering
// in tests; default is a fresh source seeded from the current time.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.Rand = r }
}

// NewOptions applies opts over a ready-to-run zero value, filling in a
// default logger and RNG when the caller left them unset.
func NewOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = ic3log.Default(o.Verbose)
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return o
}
