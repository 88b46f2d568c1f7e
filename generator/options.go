// SPDX-License-Identifier: MIT
// Package: densflow/generator
//
// options.go — functional options for Generate.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//   • Randomness is explicit: WithSeed or WithRand; there is no global source.

package generator

import "math/rand"

// Default capacity range for generated edges, inclusive.
const (
	DefaultMinCapacity int64 = 1
	DefaultMaxCapacity int64 = 10
)

// Option customizes Generate.
type Option func(*config)

type config struct {
	rng    *rand.Rand
	lo, hi int64
}

func newConfig(opts ...Option) config {
	cfg := config{lo: DefaultMinCapacity, hi: DefaultMaxCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithRand supplies the random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed creates a deterministic source from seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithCapacityRange sets the inclusive range edge capacities are drawn from.
// Panics when lo < 1 or hi < lo.
func WithCapacityRange(lo, hi int64) Option {
	if lo < 1 || hi < lo {
		panic("generator: WithCapacityRange: need 1 <= lo <= hi")
	}
	return func(c *config) { c.lo, c.hi = lo, hi }
}
