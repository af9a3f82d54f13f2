// SPDX-License-Identifier: MIT
// Package: diagramkit/diagram
//
// cache.go - explicit memoisation of Assemble keyed by Descriptor.Key.
//
// Generators hold no state; the cache is the only shared structure and it
// lives with the caller. Concurrent misses on one key assemble once.

package diagram

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache memoises assembled diagrams. The zero value is ready to use and
// safe for concurrent use.
type Cache struct {
	mu     sync.RWMutex
	byKey  map[string]Diagram
	flight singleflight.Group
	hits   int
	misses int
}

// Get returns the diagram for d, assembling it on first use.
func (c *Cache) Get(d Descriptor) Diagram {
	key := d.Key()

	c.mu.RLock()
	out, ok := c.byKey[key]
	c.mu.RUnlock()
	if ok {
		c.mu.Lock()
		c.hits++
		c.mu.Unlock()
		return out
	}

	v, _, _ := c.flight.Do(key, func() (interface{}, error) {
		c.mu.Lock()
		if have, found := c.byKey[key]; found {
			c.hits++
			c.mu.Unlock()
			return have, nil
		}
		c.mu.Unlock()

		built := Assemble(d)

		c.mu.Lock()
		if c.byKey == nil {
			c.byKey = make(map[string]Diagram)
		}
		c.byKey[key] = built
		c.misses++
		c.mu.Unlock()
		return built, nil
	})
	return v.(Diagram)
}

// Len returns the number of cached diagrams.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.byKey)
}

// Stats returns the hit and miss counts.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}

// Reset drops every cached diagram and the counters.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byKey = nil
	c.hits, c.misses = 0, 0
}
