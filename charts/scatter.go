// SPDX-License-Identifier: MIT
// Package: diagramkit/charts
//
// scatter.go - scatter plot with an ordinary-least-squares trend line.
//
//   slope     = (nΣxy − ΣxΣy) / (nΣx² − (Σx)²)
//   intercept = (Σy − slope·Σx) / n
// No fit exists for n < 2 or a zero denominator (all x equal).

package charts

import (
	"fmt"
	"math"

	"github.com/katalvlaran/diagramkit/geom"
	"github.com/katalvlaran/diagramkit/scene"
	"github.com/katalvlaran/diagramkit/shape"
)

const trendColor = "#dc2626"

// Fit is a least-squares line y = Slope·x + Intercept with its coefficient
// of determination.
type Fit struct {
	Slope     float64
	Intercept float64
	R2        float64
}

// At evaluates the line.
func (f Fit) At(x float64) float64 { return f.Slope*x + f.Intercept }

// LeastSquares fits a line to the paired samples. ok is false when no line
// is defined. Extra elements of the longer slice are ignored.
func LeastSquares(xs, ys []float64) (fit Fit, ok bool) {
	n := min(len(xs), len(ys))
	if n < 2 {
		return Fit{}, false
	}
	var sx, sy, sxy, sxx, syy float64
	for i := 0; i < n; i++ {
		x, y := xs[i], ys[i]
		sx += x
		sy += y
		sxy += x * y
		sxx += x * x
		syy += y * y
	}
	fn := float64(n)
	den := fn*sxx - sx*sx
	if den == 0 {
		return Fit{}, false
	}
	fit.Slope = (fn*sxy - sx*sy) / den
	fit.Intercept = (sy - fit.Slope*sx) / fn

	// r² = (nΣxy − ΣxΣy)² / ((nΣx² − (Σx)²)(nΣy² − (Σy)²)); a flat y fits
	// perfectly.
	fit.R2 = 1
	if deny := fn*syy - sy*sy; deny > 0 {
		num := fn*sxy - sx*sy
		fit.R2 = geom.Clamp(num*num/(den*deny), 0, 1)
	}
	return fit, true
}

// Scatter plots the points (Xs[i], Ys[i]).
type Scatter struct {
	Xs        []float64 `yaml:"xs" json:"xs"`
	Ys        []float64 `yaml:"ys" json:"ys"`
	ShowTrend bool      `yaml:"showTrend" json:"showTrend"`
	Title     string    `yaml:"title" json:"title"`
}

// DefaultScatter returns an empty scatter with the trend line enabled.
func DefaultScatter() Scatter { return Scatter{ShowTrend: true} }

// Validate checks that both slices are finite and equally long.
func (c Scatter) Validate() error {
	if len(c.Xs) != len(c.Ys) {
		return wrapf(MethodScatter, ErrLengthMismatch, "%d xs vs %d ys", len(c.Xs), len(c.Ys))
	}
	if err := checkValues(MethodScatter, "xs", c.Xs); err != nil {
		return err
	}
	return checkValues(MethodScatter, "ys", c.Ys)
}

// points returns the finite pairs.
func (c Scatter) points() []geom.Point {
	n := min(len(c.Xs), len(c.Ys))
	out := make([]geom.Point, 0, n)
	for i := 0; i < n; i++ {
		if p := geom.Pt(c.Xs[i], c.Ys[i]); p.Finite() {
			out = append(out, p)
		}
	}
	return out
}

// ScatterFrame returns the padded data frame on a w×h canvas.
func (c Scatter) ScatterFrame(w, h float64) geom.Frame {
	pts := c.points()
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = p.X, p.Y
	}
	x0, x1 := padded(xs)
	y0, y1 := padded(ys)
	return geom.NewFrame(geom.Range{XMin: x0, XMax: x1, YMin: y0, YMax: y1}, plotRect(w, h))
}

// DrawScatter builds the scatter scene.
func DrawScatter(c Scatter, cv scene.Canvas) *scene.Scene {
	cv = cv.Resolve(scene.DefaultWidth, scene.DefaultHeight)
	s := scene.New(cv.Width, cv.Height)
	s.Background = "#ffffff"
	f := c.ScatterFrame(cv.Width, cv.Height)
	if cv.ShowGrid {
		s.Add(shape.Grid(f))
	}
	s.Add(shape.Axes(f, cv.ShowLabels))

	pts := c.points()
	dots := scene.Group("points")
	for i, p := range pts {
		at := f.ToPixel(p.X, p.Y)
		name := fmt.Sprintf("p%d", i+1)
		dots.Append(shape.Dot(at, 4, cv.Color).WithName(name))
		s.Overlay.Points = append(s.Overlay.Points, scene.OverlayPoint{Name: name, At: at})
	}
	s.Add(dots)

	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = p.X, p.Y
	}
	if fit, ok := LeastSquares(xs, ys); ok && c.ShowTrend {
		if a, b, visible := clipFit(fit, f.Range); visible {
			st := scene.Stroked(trendColor, 2)
			st.Dash = "6 4"
			s.Add(scene.Line(f.ToPixel(a.X, a.Y), f.ToPixel(b.X, b.Y), st).WithClass("trend"))
		}
		if cv.ShowLabels {
			text := fmt.Sprintf("y = %sx %s, r² = %s", scene.Format(fit.Slope, 3), signed(fit.Intercept), scene.Format(fit.R2, 3))
			st := scene.Label(trendColor, 12)
			st.Anchor = "end"
			s.Add(scene.Text(geom.Pt(f.Rect.Right()-4, f.Rect.Y+12), text, st).WithClass("trend-label"))
		}
	}
	if c.Title != "" && cv.ShowLabels {
		title(s, c.Title)
	}
	s.Title = firstNonEmpty(c.Title, "Scatter plot")
	return s
}

// clipFit returns the visible segment of the fit line inside r.
func clipFit(fit Fit, r geom.Range) (a, b geom.Point, ok bool) {
	lo, hi := r.XMin, r.XMax
	if fit.Slope != 0 {
		// x where the line meets y = YMin and y = YMax.
		x0 := (r.YMin - fit.Intercept) / fit.Slope
		x1 := (r.YMax - fit.Intercept) / fit.Slope
		lo = math.Max(lo, math.Min(x0, x1))
		hi = math.Min(hi, math.Max(x0, x1))
	} else if fit.Intercept < r.YMin || fit.Intercept > r.YMax {
		return a, b, false
	}
	if hi <= lo {
		return a, b, false
	}
	return geom.Pt(lo, fit.At(lo)), geom.Pt(hi, fit.At(hi)), true
}

func signed(v float64) string {
	if v < 0 {
		return "− " + scene.Format(-v, 3)
	}
	return "+ " + scene.Format(v, 3)
}

func firstNonEmpty(s ...string) string {
	for _, v := range s {
		if v != "" {
			return v
		}
	}
	return ""
}
