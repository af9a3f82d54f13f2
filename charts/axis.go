// SPDX-License-Identifier: MIT
// Package: diagramkit/charts
//
// axis.go - chart frames and single-axis decorations.

package charts

import (
	"github.com/aclements/go-moremath/stats"

	"github.com/katalvlaran/diagramkit/geom"
	"github.com/katalvlaran/diagramkit/scene"
	"github.com/katalvlaran/diagramkit/shape"
)

// Chart layout constants, in pixels.
const (
	MarginLeft   = 44.0
	MarginRight  = 18.0
	MarginTop    = 30.0
	MarginBottom = 36.0
	padFraction  = 0.08
)

// plotRect returns the area inside the chart margins.
func plotRect(w, h float64) geom.Rect {
	return geom.Rect{X: MarginLeft, Y: MarginTop, W: w - MarginLeft - MarginRight, H: h - MarginTop - MarginBottom}
}

// padded returns [lo, hi] of xs widened by padFraction on each side. Empty
// input yields [0, 1]; a single distinct value is widened by ±1.
func padded(xs []float64) (lo, hi float64) {
	if len(xs) == 0 {
		return 0, 1
	}
	lo, hi = stats.Bounds(xs)
	if hi-lo < geom.Eps {
		return lo - 1, hi + 1
	}
	pad := padFraction * (hi - lo)
	return lo - pad, hi + pad
}

// valueAxis draws horizontal grid lines and labels at the y ticks plus the
// left axis line.
func valueAxis(f geom.Frame, grid, labels bool) *scene.Node {
	g := scene.Group("axes")
	line := scene.Stroked(shape.GridColor, 1)
	label := scene.Label(shape.AxisColor, shape.TickFont)
	label.Anchor = "end"
	for _, y := range f.Ticks(geom.AxisY, shape.MaxTicks) {
		py := f.PixelY(y)
		if grid {
			g.Append(scene.Line(geom.Pt(f.Rect.X, py), geom.Pt(f.Rect.Right(), py), line))
		}
		if labels {
			g.Append(scene.Text(geom.Pt(f.Rect.X-shape.TickLength-3, py), scene.Format(y, 3), label).WithClass("tick-label"))
		}
	}
	g.Append(scene.Line(geom.Pt(f.Rect.X, f.Rect.Y), geom.Pt(f.Rect.X, f.Rect.Bottom()), scene.Stroked(shape.AxisColor, 1.5)).WithClass("axis-y"))
	return g
}

// numberLine draws a horizontal axis at pixel y with ticks at the x ticks.
func numberLine(f geom.Frame, y float64, labels bool) *scene.Node {
	g := scene.Group("axes")
	g.Append(scene.Line(geom.Pt(f.Rect.X, y), geom.Pt(f.Rect.Right(), y), scene.Stroked(shape.AxisColor, 1.5)).WithClass("axis-x"))
	tick := scene.Stroked(shape.AxisColor, 1)
	label := scene.Label(shape.AxisColor, shape.TickFont)
	for _, x := range f.Ticks(geom.AxisX, shape.MaxTicks) {
		px := f.PixelX(x)
		g.Append(scene.Line(geom.Pt(px, y-shape.TickLength), geom.Pt(px, y+shape.TickLength), tick))
		if labels {
			g.Append(scene.Text(geom.Pt(px, y+shape.TickLength+8), scene.Format(x, 3), label).WithClass("tick-label"))
		}
	}
	return g
}

// title adds the chart title above the plot area.
func title(s *scene.Scene, text string) {
	st := scene.Label(shape.DarkText, 14)
	st.FontWeight = "bold"
	s.Add(scene.Text(geom.Pt(s.Width/2, MarginTop/2), text, st).WithClass("title"))
}
