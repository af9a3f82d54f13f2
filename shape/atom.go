// SPDX-License-Identifier: MIT
// Package: diagramkit/shape
//
// atom.go - the atom/sphere primitive.
//
// An atom is three fragments in a fixed order: a soft shadow ellipse under
// the sphere, the sphere itself filled with the element's radial gradient,
// and an optional centred label whose colour contrasts with the fill.

package shape

import (
	"github.com/katalvlaran/diagramkit/geom"
	"github.com/katalvlaran/diagramkit/scene"
)

// AtomSpec describes one atom to draw. Zero Radius/Color/Label fall back to
// the element defaults; Scale multiplies the default radius only.
type AtomSpec struct {
	Element   string
	At        geom.Point
	Radius    float64
	Color     string
	Label     string
	Scale     float64
	ShowLabel bool
}

// Atom builds an "atom" group and registers its gradient in defs.
func Atom(defs Defs, a AtomSpec) *scene.Node {
	info, _ := Element(a.Element)
	r := a.Radius
	if !(r > 0) {
		r = info.Radius * geom.Positive(a.Scale, 1)
	}
	color := a.Color
	if color == "" {
		color = info.Color
	}
	label := a.Label
	if label == "" {
		label = info.Symbol
	}

	g := scene.Group("atom").WithName(info.Symbol)
	g.Append(Sphere(defs, a.At, r, color))
	if a.ShowLabel {
		st := scene.Label(Contrast(color), geom.Clamp(r*0.9, 8, 28))
		st.FontWeight = "bold"
		g.Append(scene.Text(a.At, label, st))
	}
	return g
}

// Sphere returns the shadow ellipse and gradient circle of a ball of radius
// r, without a label.
func Sphere(defs Defs, c geom.Point, r float64, color string) *scene.Node {
	r = geom.Positive(r, 1)
	grad := defs.DefineGradient(SphereGradient(color))

	shadowStyle := scene.Filled("#000000")
	shadowStyle.Opacity = 0.18
	shadow := scene.Ellipse(geom.Pt(c.X+r*0.15, c.Y+r*0.92), r*0.85, r*0.28, shadowStyle)

	body := scene.Outlined("", Shade(color, -0.5), 1)
	body.FillGradient = grad
	return scene.Group("sphere", shadow, scene.Circle(c, r, body))
}
