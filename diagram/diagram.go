// SPDX-License-Identifier: MIT
// Package: diagramkit/diagram
//
// diagram.go - Assemble: descriptor in, self-contained diagram out.
//
// Contract:
//   • Assemble never returns an error and never panics. An unknown family,
//     a config of the wrong type or a layout without room on the canvas
//     yields Empty.
//   • The output is a pure function of the descriptor: equal descriptors
//     give equal IDs and byte-identical SVG.
//   • Gradient and filter ids are prefixed with the diagram ID, so several
//     diagrams can share one page.

package diagram

import (
	"io"

	"github.com/katalvlaran/diagramkit/render"
	"github.com/katalvlaran/diagramkit/scene"
)

// EmptyID is the ID of every empty diagram.
const EmptyID = "empty"

// Diagram is the assembled output. It is never mutated after Assemble
// returns; Scene is shared by every copy.
type Diagram struct {
	ID      string
	Family  Family
	Width   float64
	Height  float64
	Scene   *scene.Scene
	SVG     string
	Overlay scene.Overlay
}

// IsEmpty reports whether d is a fail-closed placeholder.
func (d Diagram) IsEmpty() bool { return d.ID == EmptyID }

// Render writes d's scene through backend b.
func (d Diagram) Render(w io.Writer, b render.Backend) error {
	return b.Render(w, d.Scene)
}

// markup renders the inline SVG fragment.
var markup = render.SVG{Inline: true}

// Assemble dispatches d to its family's generator.
func Assemble(d Descriptor) Diagram {
	e, ok := table[d.Family]
	if !ok {
		return Empty(d.Family, d.Canvas)
	}
	cfg := d.Config
	if cfg == nil {
		cfg = e.defaults()
		d.Config = cfg
	}
	if fits(cfg, d.Canvas) != nil {
		return Empty(d.Family, d.Canvas)
	}
	s, ok := e.build(cfg, d.Canvas)
	if !ok || s == nil {
		return Empty(d.Family, d.Canvas)
	}
	id := d.ID()
	s.IDPrefix = id
	return Diagram{
		ID:      id,
		Family:  d.Family,
		Width:   s.Width,
		Height:  s.Height,
		Scene:   s,
		SVG:     markup.String(s),
		Overlay: s.Overlay,
	}
}

// Empty returns the minimal diagram: a blank canvas of the resolved size.
func Empty(family Family, cv scene.Canvas) Diagram {
	cv = cv.Resolve(scene.DefaultWidth, scene.DefaultHeight)
	s := scene.New(cv.Width, cv.Height)
	return Diagram{
		ID:     EmptyID,
		Family: family,
		Width:  s.Width,
		Height: s.Height,
		Scene:  s,
		SVG:    markup.String(s),
	}
}
