// SPDX-License-Identifier: MIT
// Package: diagramkit/geom
//
// frame.go - the CoordinateFrame: logical range ↔ pixel rectangle.
//
// Contract:
//   - NewFrame never fails. Bad ranges degrade to the minimal valid frame:
//     NaN/Inf bounds → [-1,1], reversed bounds are swapped, extents below
//     MinExtent are widened symmetrically about their centre.
//   - ScaleX and ScaleY are strictly positive and finite.
//   - XMin ↦ Rect.X, XMax ↦ Rect.X+Rect.W, YMax ↦ Rect.Y, YMin ↦ Rect.Y+Rect.H.

package geom

import (
	"math"

	"github.com/aclements/go-moremath/scale"
)

// MinExtent is the smallest logical width/height a Frame accepts.
const MinExtent = 1e-9

// minPixels is the smallest pixel width/height a Frame accepts.
const minPixels = 1.0

// Range is a logical window [XMin,XMax]×[YMin,YMax].
type Range struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Symmetric returns the window [-hx,hx]×[-hy,hy].
func Symmetric(hx, hy float64) Range {
	return Range{XMin: -hx, XMax: hx, YMin: -hy, YMax: hy}
}

// Width returns XMax-XMin.
func (r Range) Width() float64 { return r.XMax - r.XMin }

// Height returns YMax-YMin.
func (r Range) Height() float64 { return r.YMax - r.YMin }

// Normalized returns r with every degenerate axis repaired.
func (r Range) Normalized() Range {
	r.XMin, r.XMax = fixAxis(r.XMin, r.XMax)
	r.YMin, r.YMax = fixAxis(r.YMin, r.YMax)
	return r
}

func fixAxis(lo, hi float64) (float64, float64) {
	if !finite(lo) || !finite(hi) {
		return -1, 1
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	if hi-lo < MinExtent {
		mid := lo/2 + hi/2
		lo, hi = mid-MinExtent/2, mid+MinExtent/2
	}
	return lo, hi
}

// Rect is a pixel rectangle with its top-left corner at (X,Y).
type Rect struct {
	X, Y float64
	W, H float64
}

// Inset returns r shrunk by m pixels on every side. Insets larger than the
// rectangle collapse it to its centre line.
func (r Rect) Inset(m float64) Rect {
	w := math.Max(r.W-2*m, 0)
	h := math.Max(r.H-2*m, 0)
	return Rect{X: r.X + (r.W-w)/2, Y: r.Y + (r.H-h)/2, W: w, H: h}
}

// Center returns the centre of r.
func (r Rect) Center() Point { return Point{r.X + r.W/2, r.Y + r.H/2} }

// Bottom returns the y of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Right returns the x of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Contains reports whether p lies inside r, bounds included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Frame maps a logical Range onto a pixel Rect with the y axis inverted.
type Frame struct {
	Range Range
	Rect  Rect

	// OriginX/OriginY is the pixel position of logical (0,0), which may lie
	// outside Rect.
	OriginX float64
	OriginY float64

	// ScaleX/ScaleY are pixels per logical unit; always > 0 and finite.
	ScaleX float64
	ScaleY float64
}

// NewFrame builds the frame for r drawn into px.
func NewFrame(r Range, px Rect) Frame {
	r = r.Normalized()
	if !finite(px.X) {
		px.X = 0
	}
	if !finite(px.Y) {
		px.Y = 0
	}
	px.W = Positive(px.W, minPixels)
	px.H = Positive(px.H, minPixels)

	sx := px.W / r.Width()
	sy := px.H / r.Height()
	if !finite(sx) {
		sx = math.MaxFloat32
	}
	if !finite(sy) {
		sy = math.MaxFloat32
	}

	return Frame{
		Range:   r,
		Rect:    px,
		OriginX: px.X - r.XMin*sx,
		OriginY: px.Y + r.YMax*sy,
		ScaleX:  sx,
		ScaleY:  sy,
	}
}

// ToPixel maps logical (x,y) to pixel space.
func (f Frame) ToPixel(x, y float64) Point {
	return Point{f.OriginX + x*f.ScaleX, f.OriginY - y*f.ScaleY}
}

// PixelX maps a logical x.
func (f Frame) PixelX(x float64) float64 { return f.OriginX + x*f.ScaleX }

// PixelY maps a logical y.
func (f Frame) PixelY(y float64) float64 { return f.OriginY - y*f.ScaleY }

// ToLogical is the inverse of ToPixel.
func (f Frame) ToLogical(p Point) (x, y float64) {
	return (p.X - f.OriginX) / f.ScaleX, (f.OriginY - p.Y) / f.ScaleY
}

// Origin returns the pixel position of logical (0,0).
func (f Frame) Origin() Point { return Point{f.OriginX, f.OriginY} }

// InPixelRect reports whether a pixel point lies in the frame rectangle,
// bounds included.
func (f Frame) InPixelRect(p Point) bool { return p.Finite() && f.Rect.Contains(p) }

// AxisVisible reports whether the logical axis line x=0 (vertical) or y=0
// (horizontal) crosses the frame.
func (f Frame) AxisVisible(vertical bool) bool {
	if vertical {
		return f.Range.XMin <= 0 && f.Range.XMax >= 0
	}
	return f.Range.YMin <= 0 && f.Range.YMax >= 0
}

// Axis selects the logical axis for Ticks.
type Axis int

const (
	// AxisX selects the horizontal range.
	AxisX Axis = iota
	// AxisY selects the vertical range.
	AxisY
)

// Ticks returns at most max "nice" major tick values (1, 2, 5 × 10ⁿ steps)
// inside the frame's range on the given axis.
func (f Frame) Ticks(a Axis, max int) []float64 {
	if max < 1 {
		return nil
	}
	s := scale.Linear{Min: f.Range.XMin, Max: f.Range.XMax}
	if a == AxisY {
		s = scale.Linear{Min: f.Range.YMin, Max: f.Range.YMax}
	}
	major, _ := s.Ticks(scale.TickOptions{Max: max})
	out := make([]float64, 0, len(major))
	for _, v := range major {
		if v < s.Min-MinExtent || v > s.Max+MinExtent {
			continue
		}
		if math.Abs(v) < 1e-12 {
			v = 0
		}
		out = append(out, v)
	}
	return out
}
