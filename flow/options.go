package flow

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// Option customizes a max-flow run by mutating its config.
type Option func(*config)

type config struct {
	ctx             context.Context
	logger          *log.Logger
	pruneDead       bool
	checkInvariants bool
}

// newConfig applies opts over the defaults: background context, discard
// logger, no pruning, no invariant checks.
func newConfig(opts ...Option) config {
	cfg := config{
		ctx:    context.Background(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithContext sets the context checked between phases and between
// augmentations. Panics on nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("flow: WithContext(nil)")
	}
	return func(c *config) { c.ctx = ctx }
}

// WithLogger routes per-phase and per-augmentation debug lines to l.
// Panics on nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("flow: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithDeadVertexPruning marks a vertex dead for the rest of a phase once a
// scan from it finds no path, so later scans skip it.
func WithDeadVertexPruning() Option {
	return func(c *config) { c.pruneDead = true }
}

// WithInvariantChecks runs network.CheckInvariants after every phase.
func WithInvariantChecks() Option {
	return func(c *config) { c.checkInvariants = true }
}
