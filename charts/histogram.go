// SPDX-License-Identifier: MIT
// Package: diagramkit/charts
//
// histogram.go - equal-width histogram.
//
// Bins span [Min, Max] (data bounds when Min ≥ Max). A value equal to Max
// lands in the last bin; values outside the span are counted in Outside and
// not drawn. Bar edges are placed by linear interpolation between Min and
// Max.

package charts

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"

	"github.com/katalvlaran/diagramkit/geom"
	"github.com/katalvlaran/diagramkit/scene"
	"github.com/katalvlaran/diagramkit/shape"
)

// Histogram limits.
const (
	DefaultBins = 10
	MaxBins     = 100
)

// Histogram counts Values into Bins equal-width bins over [Min, Max].
type Histogram struct {
	Values []float64 `yaml:"values" json:"values"`
	Bins   int       `yaml:"bins" json:"bins"`
	Min    float64   `yaml:"min" json:"min"`
	Max    float64   `yaml:"max" json:"max"`
	Title  string    `yaml:"title" json:"title"`
}

// DefaultHistogram returns an empty ten-bin histogram.
func DefaultHistogram() Histogram { return Histogram{Bins: DefaultBins} }

// Validate checks the values, bin count and span.
func (c Histogram) Validate() error {
	if err := checkValues(MethodHistogram, "values", c.Values); err != nil {
		return err
	}
	if c.Bins < 0 || c.Bins > MaxBins {
		return wrapf(MethodHistogram, ErrInvalidParameter, "bins must be in [0,%d], got %d", MaxBins, c.Bins)
	}
	if !geom.AllFinite(c.Min, c.Max) {
		return wrapf(MethodHistogram, ErrInvalidParameter, "min and max must be finite")
	}
	return nil
}

// Binned is the result of counting.
type Binned struct {
	Min, Max float64
	Counts   []int
	Outside  int
}

// Width returns the bin width.
func (b Binned) Width() float64 { return (b.Max - b.Min) / float64(len(b.Counts)) }

// Edge returns the lower edge of bin i (Edge(len) is Max).
func (b Binned) Edge(i int) float64 {
	return b.Min + (b.Max-b.Min)*float64(i)/float64(len(b.Counts))
}

// Span returns the resolved [min, max] of the bins.
func (c Histogram) Span() (lo, hi float64) {
	lo, hi = c.Min, c.Max
	if lo < hi && geom.AllFinite(lo, hi) {
		return lo, hi
	}
	vals := finiteValues(c.Values)
	if len(vals) == 0 {
		return 0, 1
	}
	lo, hi = stats.Bounds(vals)
	if hi-lo < geom.Eps {
		return lo - 0.5, hi + 0.5
	}
	return lo, hi
}

// Count bins the values.
func (c Histogram) Count() Binned {
	n := c.Bins
	if n <= 0 {
		n = DefaultBins
	}
	if n > MaxBins {
		n = MaxBins
	}
	lo, hi := c.Span()
	h := stats.NewLinearHist(lo, hi, n)
	// Values in the last bin's upper half are pinned to its centre so that
	// rounding in the bin index never pushes Max into the overflow.
	lastCenter := h.BinToValue(float64(n) - 0.5)
	out := Binned{Min: lo, Max: hi}
	for _, v := range finiteValues(c.Values) {
		if v < lo || v > hi {
			out.Outside++
			continue
		}
		h.Add(math.Min(v, lastCenter))
	}
	_, bins, _ := h.Counts()
	out.Counts = make([]int, len(bins))
	for i, b := range bins {
		out.Counts[i] = int(b)
	}
	return out
}

func finiteValues(xs []float64) []float64 {
	out := make([]float64, 0, len(xs))
	for _, v := range xs {
		if geom.AllFinite(v) {
			out = append(out, v)
		}
	}
	return out
}

// DrawHistogram builds the histogram scene.
func DrawHistogram(c Histogram, cv scene.Canvas) *scene.Scene {
	cv = cv.Resolve(scene.DefaultWidth, scene.DefaultHeight)
	s := scene.New(cv.Width, cv.Height)
	s.Background = "#ffffff"
	b := c.Count()
	peak := 1
	for _, n := range b.Counts {
		peak = max(peak, n)
	}
	f := geom.NewFrame(geom.Range{XMin: b.Min, XMax: b.Max, YMin: 0, YMax: 1.15 * float64(peak)}, plotRect(cv.Width, cv.Height))
	if cv.ShowGrid {
		s.Add(shape.Grid(f))
	}

	bars := scene.Group("bars")
	st := scene.Outlined(shape.Shade(cv.Color, 0.35), shape.Shade(cv.Color, -0.3), 1)
	for i, n := range b.Counts {
		x0, x1 := f.PixelX(b.Edge(i)), f.PixelX(b.Edge(i+1))
		top := f.PixelY(float64(n))
		name := fmt.Sprintf("bin%d", i+1)
		bars.Append(scene.Rect(geom.Rect{X: x0, Y: top, W: x1 - x0, H: f.PixelY(0) - top}, st).WithClass("bar").WithName(name))
		s.Overlay.Points = append(s.Overlay.Points, scene.OverlayPoint{Name: name, At: geom.Pt((x0+x1)/2, top)})
		if cv.ShowLabels && n > 0 {
			bars.Append(scene.Text(geom.Pt((x0+x1)/2, top-8), fmt.Sprint(n), scene.Label(shape.DarkText, 10)).WithClass("count-label"))
		}
	}
	s.Add(bars)
	s.Add(shape.Axes(f, cv.ShowLabels))
	if c.Title != "" && cv.ShowLabels {
		title(s, c.Title)
	}
	s.Title = firstNonEmpty(c.Title, "Histogram")
	return s
}
