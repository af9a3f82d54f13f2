// SPDX-License-Identifier: MIT
// Package: diagramkit/graphs
//
// plot.go - the function-graph generator shared by every curve family.
//
// Emission order: background, grid (ShowGrid), axes, asymptote guides,
// curve branches (one "branch" path each), key-point markers, equation
// label (ShowLabels). The frame is the canvas inset by PlotMargin.

package graphs

import (
	"math"

	"github.com/katalvlaran/diagramkit/curve"
	"github.com/katalvlaran/diagramkit/geom"
	"github.com/katalvlaran/diagramkit/scene"
	"github.com/katalvlaran/diagramkit/shape"
)

// Layout constants, in pixels.
const (
	PlotMargin   = 30.0
	CurveWidth   = 2.5
	EquationFont = 14.0
	GuideColor   = "#9ca3af"
)

// Frame returns the coordinate frame Plot uses for fn on a w×h canvas.
func Frame(fn Function, w, h float64) geom.Frame {
	return geom.NewFrame(fn.Range(), geom.Rect{W: w, H: h}.Inset(PlotMargin))
}

// Plot draws fn on the canvas.
func Plot(fn Function, cv scene.Canvas) *scene.Scene {
	cv = cv.Resolve(scene.DefaultWidth, scene.DefaultHeight)
	s := scene.New(cv.Width, cv.Height)
	s.Background = "#ffffff"
	f := Frame(fn, cv.Width, cv.Height)

	if cv.ShowGrid {
		s.Add(shape.Grid(f))
	}
	s.Add(shape.Axes(f, cv.ShowLabels))

	if g := guides(fn, f); len(g.Children) > 0 {
		s.Add(g)
	}

	spec := fn.Spec()
	curves := scene.Group("curve")
	for _, b := range curve.Sample(spec, f) {
		st := scene.Stroked(branchColor(cv.Color, b.Curve), CurveWidth)
		st.LineJoin = "round"
		st.LineCap = "round"
		curves.Append(scene.PathNode(scene.PolylinePath(b.Points), st).WithClass("branch"))
	}
	s.Add(curves)

	for _, kp := range fn.KeyPoints() {
		p := f.ToPixel(kp.X, kp.Y)
		if !f.InPixelRect(p) {
			continue
		}
		s.Add(shape.Dot(p, 4, shape.Shade(cv.Color, -0.3)).WithName(kp.Name))
		s.Overlay.Points = append(s.Overlay.Points, scene.OverlayPoint{Name: kp.Name, At: p})
	}

	if cv.ShowLabels {
		st := scene.Label(shape.Shade(cv.Color, -0.35), EquationFont)
		st.Anchor = "start"
		st.FontWeight = "bold"
		s.Add(scene.Text(geom.Pt(f.Rect.X+8, f.Rect.Y+12), fn.Equation(), st).WithClass("equation"))
	}
	s.Title = fn.Equation()
	return s
}

// branchColor varies the stroke of ODE solution curves by index.
func branchColor(base string, i int) string {
	if i == 0 {
		return base
	}
	amt := 0.18 * float64((i+1)/2)
	if i%2 == 1 {
		amt = -amt
	}
	return shape.Shade(base, geom.Clamp(amt, -0.7, 0.7))
}

// guides returns dashed asymptote lines for the families that have them.
func guides(fn Function, f geom.Frame) *scene.Node {
	g := scene.Group("asymptotes")
	st := scene.Stroked(GuideColor, 1.2)
	st.Dash = "6 4"

	vertical := func(x float64) {
		if x < f.Range.XMin || x > f.Range.XMax {
			return
		}
		px := f.PixelX(x)
		g.Append(scene.Line(geom.Pt(px, f.Rect.Y), geom.Pt(px, f.Rect.Bottom()), st).WithClass("asymptote"))
	}
	slanted := func(m, c float64) {
		if a, b, ok := clipLine(f.Range, m, c); ok {
			g.Append(scene.Line(f.ToPixel(a, m*a+c), f.ToPixel(b, m*b+c), st).WithClass("asymptote"))
		}
	}

	switch c := fn.(type) {
	case Reciprocal:
		vertical(c.H)
		slanted(0, c.K)
	case Hyperbola:
		a, b := math.Abs(c.A), math.Abs(c.B)
		if a > 0 && b > 0 {
			slanted(b/a, 0)
			slanted(-b/a, 0)
		}
	case Trig:
		spec := c.Spec()
		for _, x := range spec.Discontinuities(f.Range.XMin, f.Range.XMax) {
			vertical(x)
		}
	}
	return g
}

// clipLine returns the x interval on which y = m·x + c stays inside r.
func clipLine(r geom.Range, m, c float64) (float64, float64, bool) {
	lo, hi := r.XMin, r.XMax
	if m == 0 {
		return lo, hi, c >= r.YMin && c <= r.YMax
	}
	a, b := (r.YMin-c)/m, (r.YMax-c)/m
	if a > b {
		a, b = b, a
	}
	lo, hi = math.Max(lo, a), math.Min(hi, b)
	return lo, hi, lo < hi
}
