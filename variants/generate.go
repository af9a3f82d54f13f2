// SPDX-License-Identifier: MIT
// Package: diagramkit/variants
//
// generate.go - concurrent batch assembly.
//
// Contract:
//   - out[i] is the diagram of entries[i], whatever order workers finish in.
//   - At most WithWorkers entries are assembled at once.
//   - Once ctx is done no further entry is scheduled and ctx.Err() is
//     returned with no diagrams.
//   - A bad entry (unknown family, mismatched config) yields an empty
//     diagram for that entry only.

package variants

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/diagramkit/diagram"
)

// Generate assembles every entry.
func Generate(ctx context.Context, entries []Entry, opts ...Option) ([]diagram.Diagram, error) {
	cfg := newConfig(opts...)
	assemble := diagram.Assemble
	if cfg.cache != nil {
		assemble = cfg.cache.Get
	}

	out := make([]diagram.Diagram, len(entries))
	var (
		mu   sync.Mutex
		done int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	for i, e := range entries {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = assemble(e.Descriptor)
			if cfg.progress != nil {
				mu.Lock()
				done++
				cfg.progress(done, len(entries))
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
