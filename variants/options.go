// SPDX-License-Identifier: MIT
// Package: diagramkit/variants
//
// options.go - functional options for Generate.
//
// Contract:
//   - Option constructors validate and panic on meaningless inputs.
//     Generate itself never panics.
//   - Options apply in order; later ones override earlier ones.

package variants

import (
	"runtime"

	"github.com/katalvlaran/diagramkit/diagram"
)

// Option customises one Generate call.
type Option func(*config)

type config struct {
	workers  int
	cache    *diagram.Cache
	progress func(done, total int)
}

func newConfig(opts ...Option) config {
	cfg := config{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithWorkers bounds the number of entries assembled at once. Panics if
// n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("variants: WithWorkers(n<1)")
	}
	return func(c *config) { c.workers = n }
}

// WithCache routes assembly through c, so repeated descriptors across
// calls are built once. Panics on nil.
func WithCache(c *diagram.Cache) Option {
	if c == nil {
		panic("variants: WithCache(nil)")
	}
	return func(cfg *config) { cfg.cache = c }
}

// WithProgress registers fn to be called after each entry is assembled.
// Calls may come from several goroutines but never concurrently. Panics on
// nil.
func WithProgress(fn func(done, total int)) Option {
	if fn == nil {
		panic("variants: WithProgress(nil)")
	}
	return func(c *config) { c.progress = fn }
}
