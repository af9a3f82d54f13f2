// SPDX-License-Identifier: MIT
// Package: diagramkit/shape
//
// arrow.go - arrows, springs, blocks and point charges.

package shape

import (
	"math"

	"github.com/katalvlaran/diagramkit/geom"
	"github.com/katalvlaran/diagramkit/scene"
)

// Arrowhead defaults, in pixels.
const (
	DefaultHeadLength = 10.0
	DefaultHeadWidth  = 8.0
)

// Arrowhead returns the filled triangle whose tip is at tip and which points
// along dir.
func Arrowhead(tip, dir geom.Point, length, width float64, color string) *scene.Node {
	length = geom.Positive(length, DefaultHeadLength)
	width = geom.Positive(width, DefaultHeadWidth)
	u := dir.Unit()
	n := u.Perp().Scale(width / 2)
	base := tip.Sub(u.Scale(length))
	return scene.Polygon([]geom.Point{tip, base.Add(n), base.Sub(n)}, scene.Filled(color)).WithClass("arrowhead")
}

// Arrow returns an "arrow" group: a shaft from → to (stopping at the head's
// base) and an arrowhead at to. Arrows shorter than the head draw the head
// only.
func Arrow(from, to geom.Point, color string, width float64) *scene.Node {
	d := to.Sub(from)
	head := math.Max(DefaultHeadLength, 3*width)
	g := scene.Group("arrow")
	if d.Len() > head {
		shaftEnd := to.Sub(d.Unit().Scale(head * 0.8))
		g.Append(scene.Line(from, shaftEnd, scene.Stroked(color, geom.Positive(width, 2))))
	}
	g.Append(Arrowhead(to, d, head, head*0.8, color))
	return g
}

// DoubleArrow is an arrow with heads at both ends (dimension markers).
func DoubleArrow(a, b geom.Point, color string, width float64) *scene.Node {
	d := b.Sub(a)
	st := scene.Stroked(color, geom.Positive(width, 1))
	return scene.Group("dimension",
		scene.Line(a, b, st),
		Arrowhead(a, d.Scale(-1), 7, 6, color),
		Arrowhead(b, d, 7, 6, color),
	)
}

// Spring returns a zig-zag from a to b with the given number of coils and
// lateral amplitude. Straight leads take 10% of the length on each end.
func Spring(a, b geom.Point, coils int, amplitude float64, color string) *scene.Node {
	if coils < 1 {
		coils = 1
	}
	amplitude = geom.Positive(amplitude, 6)
	d := b.Sub(a)
	n := d.Perp().Scale(amplitude)
	lead := 0.1
	pts := []geom.Point{a, geom.Lerp(a, b, lead)}
	steps := 2 * coils
	for i := 0; i < steps; i++ {
		t := lead + (1-2*lead)*(float64(i)+0.5)/float64(steps)
		side := n
		if i%2 == 1 {
			side = n.Scale(-1)
		}
		pts = append(pts, geom.Lerp(a, b, t).Add(side))
	}
	pts = append(pts, geom.Lerp(a, b, 1-lead), b)
	st := scene.Stroked(color, 1.5)
	st.LineJoin = "round"
	return scene.Polyline(pts, st).WithClass("spring")
}

// Block returns a labelled box of size w×h centred on c and rotated by deg
// (clockwise on screen) about its centre.
func Block(defs Defs, c geom.Point, w, h, deg float64, color, label string) *scene.Node {
	w = geom.Positive(w, 40)
	h = geom.Positive(h, 30)
	grad := defs.DefineGradient(VerticalShade(color, 0.25))
	st := scene.Outlined("", Shade(color, -0.45), 1.5)
	st.FillGradient = grad
	g := scene.Group("block",
		scene.RoundRect(geom.Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}, 3, st),
	)
	if label != "" {
		g.Append(scene.Text(c, label, scene.Label(Contrast(color), geom.Clamp(h*0.4, 9, 16))))
	}
	if deg != 0 {
		g.Rotated(deg, c)
	}
	return g
}

// Charge returns a point charge: red with "+" for q > 0, blue with "−" for
// q < 0, grey for neutral.
func Charge(defs Defs, c geom.Point, r, q float64) *scene.Node {
	color, sign := "#9ca3af", "0"
	switch {
	case q > 0:
		color, sign = "#dc2626", "+"
	case q < 0:
		color, sign = "#2563eb", "−"
	}
	r = geom.Positive(r, 12)
	g := scene.Group("charge", Sphere(defs, c, r, color))
	g.Append(scene.Text(c, sign, scene.Label(LightText, r*1.2)))
	return g
}

// Dot returns a small filled marker circle.
func Dot(c geom.Point, r float64, color string) *scene.Node {
	return scene.Circle(c, geom.Positive(r, 3), scene.Filled(color)).WithClass("point")
}
