// SPDX-License-Identifier: MIT
// Package: diagramkit/charts
//
// bar.go - categorical bar chart.

package charts

import (
	"math"

	"github.com/katalvlaran/diagramkit/geom"
	"github.com/katalvlaran/diagramkit/scene"
	"github.com/katalvlaran/diagramkit/shape"
)

// Bar chart limits.
const (
	MaxBars   = 50
	BarFill   = 0.7
	barShades = 4
)

// Bar draws one bar per value, labelled by the matching entry of Labels.
// Negative values hang below the baseline.
type Bar struct {
	Labels []string  `yaml:"labels" json:"labels"`
	Values []float64 `yaml:"values" json:"values"`
	Title  string    `yaml:"title" json:"title"`
}

// DefaultBar returns an empty bar chart.
func DefaultBar() Bar { return Bar{} }

// Validate checks sizes and values.
func (c Bar) Validate() error {
	if len(c.Values) > MaxBars {
		return wrapf(MethodBar, ErrInvalidParameter, "at most %d bars, got %d", MaxBars, len(c.Values))
	}
	if len(c.Labels) != 0 && len(c.Labels) != len(c.Values) {
		return wrapf(MethodBar, ErrLengthMismatch, "%d labels vs %d values", len(c.Labels), len(c.Values))
	}
	return checkValues(MethodBar, "values", c.Values)
}

// BarFrame returns the frame: one logical unit per bar horizontally and the
// value range, always including zero, vertically.
func (c Bar) BarFrame(w, h float64) geom.Frame {
	n := min(len(c.Values), MaxBars)
	lo, hi := 0.0, 0.0
	for _, v := range c.Values[:n] {
		v = geom.Or(v, 0)
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	if hi-lo < geom.Eps {
		hi = 1
	}
	pad := padFraction * (hi - lo)
	if lo < 0 {
		lo -= pad
	}
	if hi > 0 {
		hi += pad
	}
	return geom.NewFrame(geom.Range{XMin: 0, XMax: float64(max(n, 1)), YMin: lo, YMax: hi}, plotRect(w, h))
}

// DrawBar builds the bar-chart scene.
func DrawBar(c Bar, cv scene.Canvas) *scene.Scene {
	cv = cv.Resolve(scene.DefaultWidth, scene.DefaultHeight)
	s := scene.New(cv.Width, cv.Height)
	s.Background = "#ffffff"
	f := c.BarFrame(cv.Width, cv.Height)
	s.Add(valueAxis(f, cv.ShowGrid, cv.ShowLabels))

	base := f.PixelY(0)
	bars := scene.Group("bars")
	label := scene.Label(shape.DarkText, 10)
	n := min(len(c.Values), MaxBars)
	for i, v := range c.Values[:n] {
		v = geom.Or(v, 0)
		name := ""
		if i < len(c.Labels) {
			name = c.Labels[i]
		}
		x0 := f.PixelX(float64(i) + (1-BarFill)/2)
		x1 := f.PixelX(float64(i) + (1+BarFill)/2)
		top := f.PixelY(v)
		y, hgt := math.Min(top, base), math.Abs(base-top)
		color := shape.Shade(cv.Color, 0.15*float64(i%barShades))
		st := scene.Outlined(color, shape.Shade(color, -0.3), 1)
		bars.Append(scene.Rect(geom.Rect{X: x0, Y: y, W: x1 - x0, H: hgt}, st).WithClass("bar").WithName(name))
		s.Overlay.Points = append(s.Overlay.Points, scene.OverlayPoint{Name: name, At: geom.Pt((x0+x1)/2, top)})
		if cv.ShowLabels {
			bars.Append(scene.Text(geom.Pt((x0+x1)/2, f.Rect.Bottom()+12), name, label).WithClass("category-label"))
			off := -8.0
			if v < 0 {
				off = 8
			}
			bars.Append(scene.Text(geom.Pt((x0+x1)/2, top+off), scene.Format(v, 2), label).WithClass("value-label"))
		}
	}
	s.Add(bars)
	s.Add(scene.Line(geom.Pt(f.Rect.X, base), geom.Pt(f.Rect.Right(), base), scene.Stroked(shape.AxisColor, 1.5)).WithClass("baseline"))
	if c.Title != "" && cv.ShowLabels {
		title(s, c.Title)
	}
	s.Title = firstNonEmpty(c.Title, "Bar chart")
	return s
}
