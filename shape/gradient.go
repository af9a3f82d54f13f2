// SPDX-License-Identifier: MIT
// Package: diagramkit/shape
//
// gradient.go - gradient and filter definitions shared by the generators.
//
// Ids are local and derived from the inputs only, so the same colour always
// maps to the same definition and a scene never holds two copies of it.

package shape

import "github.com/katalvlaran/diagramkit/scene"

// ShadowFilterID is the local id of the soft drop-shadow filter.
const ShadowFilterID = "soft-shadow"

// Defs is where builders register the definitions their fragments reference.
// *scene.Scene implements it.
type Defs interface {
	DefineGradient(g scene.Gradient) string
	DefineFilter(f scene.Filter) string
}

// SphereGradient returns a radial gradient that makes a flat circle of the
// given colour read as a lit sphere: highlight top-left, shaded rim.
func SphereGradient(color string) scene.Gradient {
	return scene.Gradient{
		ID:     "sphere-" + colorKey(color),
		Radial: true,
		CX:     0.35, CY: 0.35, R: 0.65, FX: 0.3, FY: 0.3,
		Stops: []scene.Stop{
			{Offset: 0, Color: Shade(color, 0.7)},
			{Offset: 0.45, Color: Canonical(color)},
			{Offset: 1, Color: Shade(color, -0.45)},
		},
	}
}

// LinearFill returns a top-to-bottom linear gradient from → to.
func LinearFill(from, to string) scene.Gradient {
	return scene.Gradient{
		ID: "fill-" + colorKey(from) + "-" + colorKey(to),
		X1: 0, Y1: 0, X2: 0, Y2: 1,
		Stops: []scene.Stop{
			{Offset: 0, Color: Canonical(from)},
			{Offset: 1, Color: Canonical(to)},
		},
	}
}

// VerticalShade is LinearFill from a lightened to a darkened color.
func VerticalShade(color string, amount float64) scene.Gradient {
	return LinearFill(Shade(color, amount), Shade(color, -amount))
}

// ShadowFilter returns the shared soft drop shadow.
func ShadowFilter() scene.Filter {
	return scene.Filter{ID: ShadowFilterID, Blur: 2, DX: 1.5, DY: 2}
}
