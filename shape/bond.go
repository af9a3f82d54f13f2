// SPDX-License-Identifier: MIT
// Package: diagramkit/shape
//
// bond.go - multi-bond offset geometry.
//
// Algorithm:
//   u = unit(b − a); n = perp(u)
//   single → [a,b]
//   double → [a±n·s/2, b±n·s/2]
//   triple → [a−n·s, b−n·s], [a,b], [a+n·s, b+n·s]
// A zero-length bond uses u = (1,0); a non-positive or NaN spacing becomes
// MinBondSpacing. Orders outside 1..3 are clamped.

package shape

import (
	"github.com/katalvlaran/diagramkit/geom"
	"github.com/katalvlaran/diagramkit/scene"
)

// MinBondSpacing is the smallest gap between parallel bond lines, in pixels.
const MinBondSpacing = 2.0

// DefaultBondSpacing is the gap used when a generator has no preference.
const DefaultBondSpacing = 6.0

// BondOrder is single, double or triple.
type BondOrder int

const (
	Single BondOrder = 1
	Double BondOrder = 2
	Triple BondOrder = 3
)

// Clamp limits o to Single..Triple.
func (o BondOrder) Clamp() BondOrder {
	switch {
	case o < Single:
		return Single
	case o > Triple:
		return Triple
	}
	return o
}

// Segment is one straight bond line.
type Segment struct {
	A, B geom.Point
}

// BondSegments returns the parallel segments of a bond of the given order
// between a and b.
func BondSegments(a, b geom.Point, order BondOrder, spacing float64) []Segment {
	spacing = geom.Positive(spacing, MinBondSpacing)
	if spacing < MinBondSpacing {
		spacing = MinBondSpacing
	}
	n := b.Sub(a).Perp()

	var offsets []float64
	switch order.Clamp() {
	case Single:
		offsets = []float64{0}
	case Double:
		offsets = []float64{-spacing / 2, spacing / 2}
	default:
		offsets = []float64{-spacing, 0, spacing}
	}

	out := make([]Segment, len(offsets))
	for i, k := range offsets {
		d := n.Scale(k)
		out[i] = Segment{A: a.Add(d), B: b.Add(d)}
	}
	return out
}

// Bond returns a "bond" group of line nodes.
func Bond(a, b geom.Point, order BondOrder, spacing float64, color string, width float64) *scene.Node {
	g := scene.Group("bond")
	st := scene.Stroked(color, geom.Positive(width, 2))
	st.LineCap = "round"
	for _, s := range BondSegments(a, b, order, spacing) {
		g.Append(scene.Line(s.A, s.B, st))
	}
	return g
}
