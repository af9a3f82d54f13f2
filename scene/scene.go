// SPDX-License-Identifier: MIT
// Package: diagramkit/scene
//
// scene.go - the Scene root: size, local definitions, fragments, overlay.
//
// Contract:
//   - Definitions (gradients, filters) are deduplicated by local id and kept
//     in first-definition order, so emission is deterministic.
//   - Nodes are emitted in insertion order; Walk visits them depth-first in
//     exactly that order.

package scene

import (
	"math"
	"strconv"
	"strings"
)

// Stop is one gradient colour stop. Offset is a fraction in [0,1].
type Stop struct {
	Offset  float64
	Color   string
	Opacity float64 // 0 means opaque
}

// Gradient is a linear or radial gradient definition. All coordinates are
// fractions of the filled shape's bounding box.
type Gradient struct {
	ID     string
	Radial bool

	// Linear: vector (X1,Y1)→(X2,Y2).
	X1, Y1, X2, Y2 float64

	// Radial: centre (CX,CY), radius R, focal point (FX,FY).
	CX, CY, R, FX, FY float64

	Stops []Stop
}

// Filter is a soft drop-shadow / blur definition.
type Filter struct {
	ID   string
	Blur float64 // Gaussian standard deviation in pixels
	DX   float64 // shadow offset
	DY   float64
}

// Scene is the complete, self-contained output of one generator call.
type Scene struct {
	Width  float64
	Height float64

	// IDPrefix namespaces every local id when rendered. The assembler sets
	// it to the diagram ID.
	IDPrefix string

	Title      string
	Background string

	Gradients []Gradient
	Filters   []Filter
	Nodes     []*Node

	Overlay Overlay
}

// New returns an empty scene of the given pixel size.
func New(width, height float64) *Scene {
	return &Scene{Width: width, Height: height}
}

// Add appends top-level fragments, skipping nil nodes.
func (s *Scene) Add(nodes ...*Node) {
	for _, n := range nodes {
		if n != nil {
			s.Nodes = append(s.Nodes, n)
		}
	}
}

// DefineGradient registers g unless a gradient with the same id exists and
// returns the id.
func (s *Scene) DefineGradient(g Gradient) string {
	for _, have := range s.Gradients {
		if have.ID == g.ID {
			return g.ID
		}
	}
	s.Gradients = append(s.Gradients, g)
	return g.ID
}

// DefineFilter registers f unless a filter with the same id exists and
// returns the id.
func (s *Scene) DefineFilter(f Filter) string {
	for _, have := range s.Filters {
		if have.ID == f.ID {
			return f.ID
		}
	}
	s.Filters = append(s.Filters, f)
	return f.ID
}

// Ref returns the rendered id for a local id.
func (s *Scene) Ref(local string) string {
	if s.IDPrefix == "" || local == "" {
		return local
	}
	return s.IDPrefix + "-" + local
}

// Walk visits every node depth-first in emission order. Returning false from
// fn skips the node's children.
func (s *Scene) Walk(fn func(n *Node, depth int) bool) {
	var visit func(n *Node, depth int)
	visit = func(n *Node, depth int) {
		if !fn(n, depth) {
			return
		}
		for _, c := range n.Children {
			visit(c, depth+1)
		}
	}
	for _, n := range s.Nodes {
		visit(n, 0)
	}
}

// Find returns every node of the given class in emission order.
func (s *Scene) Find(class string) []*Node {
	var out []*Node
	s.Walk(func(n *Node, _ int) bool {
		if n.Class == class {
			out = append(out, n)
		}
		return true
	})
	return out
}

// Count returns the number of nodes of the given class.
func (s *Scene) Count(class string) int { return len(s.Find(class)) }

// Format renders v with at most prec decimals, trimming trailing zeros and
// normalising negative zero. Exact ties round half to even, so 10.125 is
// "10.12". Non-finite values render as "0".
func Format(v float64, prec int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	s := strconv.FormatFloat(v, 'f', prec, 64)
	if strings.IndexByte(s, '.') >= 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}
