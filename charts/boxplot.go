// SPDX-License-Identifier: MIT
// Package: diagramkit/charts
//
// boxplot.go - horizontal box-and-whisker plot.
//
// Quartiles come from stats.Sample.Quantile (R8 interpolation). Whiskers
// reach the sample minimum and maximum. Every marker's x is the linear
// interpolation of its value between the declared Min and Max; without a
// declared span the padded data bounds are used.

package charts

import (
	"slices"

	"github.com/aclements/go-moremath/stats"

	"github.com/katalvlaran/diagramkit/geom"
	"github.com/katalvlaran/diagramkit/scene"
	"github.com/katalvlaran/diagramkit/shape"
)

// FiveNumber is the box-plot summary of a sample.
type FiveNumber struct {
	Min, Q1, Median, Q3, Max float64
}

// Summarize computes the five-number summary of the finite values. ok is
// false for an empty sample.
func Summarize(values []float64) (FiveNumber, bool) {
	xs := finiteValues(values)
	if len(xs) == 0 {
		return FiveNumber{}, false
	}
	slices.Sort(xs)
	s := stats.Sample{Xs: xs, Sorted: true}
	return FiveNumber{
		Min:    xs[0],
		Q1:     s.Quantile(0.25),
		Median: s.Quantile(0.5),
		Q3:     s.Quantile(0.75),
		Max:    xs[len(xs)-1],
	}, true
}

// BoxPlot draws one sample's five-number summary.
type BoxPlot struct {
	Values []float64 `yaml:"values" json:"values"`
	Min    float64   `yaml:"min" json:"min"`
	Max    float64   `yaml:"max" json:"max"`
	Title  string    `yaml:"title" json:"title"`
}

// DefaultBoxPlot returns an empty box plot.
func DefaultBoxPlot() BoxPlot { return BoxPlot{} }

// Validate checks the values and span.
func (c BoxPlot) Validate() error {
	if err := checkValues(MethodBoxPlot, "values", c.Values); err != nil {
		return err
	}
	if !geom.AllFinite(c.Min, c.Max) {
		return wrapf(MethodBoxPlot, ErrInvalidParameter, "min and max must be finite")
	}
	if c.Min > c.Max {
		return wrapf(MethodBoxPlot, ErrInvalidParameter, "min %v exceeds max %v", c.Min, c.Max)
	}
	return nil
}

// Span returns the declared span, or the padded data bounds.
func (c BoxPlot) Span() (lo, hi float64) {
	if c.Min < c.Max && geom.AllFinite(c.Min, c.Max) {
		return c.Min, c.Max
	}
	return padded(finiteValues(c.Values))
}

// DrawBoxPlot builds the box-plot scene.
func DrawBoxPlot(c BoxPlot, cv scene.Canvas) *scene.Scene {
	cv = cv.Resolve(scene.DefaultWidth, scene.DefaultHeight)
	s := scene.New(cv.Width, cv.Height)
	s.Background = "#ffffff"
	lo, hi := c.Span()
	f := geom.NewFrame(geom.Range{XMin: lo, XMax: hi, YMin: 0, YMax: 1}, plotRect(cv.Width, cv.Height))
	if cv.ShowGrid {
		g := scene.Group("grid")
		line := scene.Stroked(shape.GridColor, 1)
		for _, x := range f.Ticks(geom.AxisX, shape.MaxTicks) {
			g.Append(scene.Line(geom.Pt(f.PixelX(x), f.Rect.Y), geom.Pt(f.PixelX(x), f.Rect.Bottom()), line))
		}
		s.Add(g)
	}
	s.Add(numberLine(f, f.Rect.Bottom(), cv.ShowLabels))

	sum, ok := Summarize(c.Values)
	if ok {
		mid := f.PixelY(0.5)
		half := 0.18 * f.Rect.H
		x := func(v float64) float64 { return f.PixelX(geom.Clamp(v, lo, hi)) }
		ink := shape.Shade(cv.Color, -0.35)
		line := scene.Stroked(ink, 1.5)

		box := scene.Group("box")
		box.Append(
			scene.Line(geom.Pt(x(sum.Min), mid), geom.Pt(x(sum.Q1), mid), line).WithClass("whisker"),
			scene.Line(geom.Pt(x(sum.Q3), mid), geom.Pt(x(sum.Max), mid), line).WithClass("whisker"),
			scene.Line(geom.Pt(x(sum.Min), mid-half/2), geom.Pt(x(sum.Min), mid+half/2), line).WithClass("whisker-cap"),
			scene.Line(geom.Pt(x(sum.Max), mid-half/2), geom.Pt(x(sum.Max), mid+half/2), line).WithClass("whisker-cap"),
		)
		fill := scene.Outlined("", ink, 1.5)
		fill.FillGradient = s.DefineGradient(shape.VerticalShade(cv.Color, 0.35))
		box.Append(scene.Rect(geom.Rect{X: x(sum.Q1), Y: mid - half, W: x(sum.Q3) - x(sum.Q1), H: 2 * half}, fill).WithClass("quartiles"))
		box.Append(scene.Line(geom.Pt(x(sum.Median), mid-half), geom.Pt(x(sum.Median), mid+half), scene.Stroked(ink, 2.5)).WithClass("median"))
		s.Add(box)

		named := []struct {
			name string
			v    float64
		}{{"min", sum.Min}, {"q1", sum.Q1}, {"median", sum.Median}, {"q3", sum.Q3}, {"max", sum.Max}}
		for _, n := range named {
			s.Overlay.Points = append(s.Overlay.Points, scene.OverlayPoint{Name: n.name, At: geom.Pt(x(n.v), mid)})
		}
		if cv.ShowLabels {
			st := scene.Label(shape.DarkText, 10)
			for _, n := range named {
				s.Add(scene.Text(geom.Pt(x(n.v), mid-half-10), scene.Format(n.v, 2), st).WithClass("value-label"))
			}
		}
	}
	if c.Title != "" && cv.ShowLabels {
		title(s, c.Title)
	}
	s.Title = firstNonEmpty(c.Title, "Box plot")
	return s
}
