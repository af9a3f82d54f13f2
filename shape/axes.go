// SPDX-License-Identifier: MIT
// Package: diagramkit/shape
//
// axes.go - grid lines, axes, ticks and tick labels for a geom.Frame.

package shape

import (
	"github.com/katalvlaran/diagramkit/geom"
	"github.com/katalvlaran/diagramkit/scene"
)

// Axis styling defaults.
const (
	GridColor  = "#e5e7eb"
	AxisColor  = "#374151"
	TickLength = 4.0
	MaxTicks   = 11
	TickFont   = 10.0
)

// Grid returns a "grid" group with a light line at every major tick.
func Grid(f geom.Frame) *scene.Node {
	g := scene.Group("grid")
	st := scene.Stroked(GridColor, 1)
	for _, x := range f.Ticks(geom.AxisX, MaxTicks) {
		px := f.PixelX(x)
		g.Append(scene.Line(geom.Pt(px, f.Rect.Y), geom.Pt(px, f.Rect.Bottom()), st))
	}
	for _, y := range f.Ticks(geom.AxisY, MaxTicks) {
		py := f.PixelY(y)
		g.Append(scene.Line(geom.Pt(f.Rect.X, py), geom.Pt(f.Rect.Right(), py), st))
	}
	return g
}

// Axes returns an "axes" group. Each axis sits on the logical zero line when
// it is visible and on the frame's bottom/left edge otherwise. Tick labels
// are added when labels is true; the origin label is skipped on the x axis
// when both axes cross there.
func Axes(f geom.Frame, labels bool) *scene.Node {
	g := scene.Group("axes")
	st := scene.Stroked(AxisColor, 1.5)

	ay := f.Rect.Bottom()
	if f.AxisVisible(false) {
		ay = f.PixelY(0)
	}
	ax := f.Rect.X
	if f.AxisVisible(true) {
		ax = f.PixelX(0)
	}

	g.Append(
		scene.Line(geom.Pt(f.Rect.X, ay), geom.Pt(f.Rect.Right(), ay), st).WithClass("axis-x"),
		scene.Line(geom.Pt(ax, f.Rect.Y), geom.Pt(ax, f.Rect.Bottom()), st).WithClass("axis-y"),
	)

	tick := scene.Stroked(AxisColor, 1)
	label := scene.Label(AxisColor, TickFont)
	crossAtZero := f.AxisVisible(true) && f.AxisVisible(false)
	for _, x := range f.Ticks(geom.AxisX, MaxTicks) {
		px := f.PixelX(x)
		g.Append(scene.Line(geom.Pt(px, ay-TickLength), geom.Pt(px, ay+TickLength), tick))
		if labels && !(crossAtZero && x == 0) {
			g.Append(scene.Text(geom.Pt(px, ay+TickLength+8), scene.Format(x, 3), label).WithClass("tick-label"))
		}
	}
	yl := label
	yl.Anchor = "end"
	for _, y := range f.Ticks(geom.AxisY, MaxTicks) {
		py := f.PixelY(y)
		g.Append(scene.Line(geom.Pt(ax-TickLength, py), geom.Pt(ax+TickLength, py), tick))
		if labels {
			g.Append(scene.Text(geom.Pt(ax-TickLength-3, py), scene.Format(y, 3), yl).WithClass("tick-label"))
		}
	}
	return g
}
