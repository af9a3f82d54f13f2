// SPDX-License-Identifier: MIT
// Package: diagramkit/geom
//
// point.go - planar points and the small vector algebra used by layouts.
//
// Contract:
//   - Values, not pointers; every operation returns a new Point.
//   - Unit and Perp never divide by zero: a degenerate vector maps to the
//     fallback direction (1,0) and its perpendicular (0,1).

package geom

import "math"

// Eps is the tolerance used for "is this length zero" decisions.
const Eps = 1e-9

// Point is a 2D point or vector. Depending on context it is expressed in
// logical (mathematical) units or in pixels.
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p*k.
func (p Point) Scale(k float64) Point { return Point{p.X * k, p.Y * k} }

// Dot returns the dot product p·q.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Len returns the Euclidean length of p.
func (p Point) Len() float64 { return math.Hypot(p.X, p.Y) }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 { return q.Sub(p).Len() }

// Finite reports whether both coordinates are finite numbers.
func (p Point) Finite() bool { return finite(p.X) && finite(p.Y) }

// Unit returns p scaled to length 1. A zero-length or non-finite vector
// yields (1,0).
func (p Point) Unit() Point {
	l := p.Len()
	if l < Eps || !finite(l) {
		return Point{1, 0}
	}
	return Point{p.X / l, p.Y / l}
}

// Perp returns the unit vector perpendicular to p, rotated +90°
// (counter-clockwise in a y-up frame).
func (p Point) Perp() Point {
	u := p.Unit()
	return Point{-u.Y, u.X}
}

// Rotate rotates p about the origin by deg degrees, counter-clockwise in a
// y-up frame.
func (p Point) Rotate(deg float64) Point {
	s, c := math.Sincos(Rad(deg))
	return Point{p.X*c - p.Y*s, p.X*s + p.Y*c}
}

// RotateAbout rotates p about centre c by deg degrees.
func (p Point) RotateAbout(c Point, deg float64) Point {
	return p.Sub(c).Rotate(deg).Add(c)
}

// Lerp returns the point a fraction t of the way from a to b.
func Lerp(a, b Point, t float64) Point {
	return Point{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}

// Polar returns the point at distance r and angle deg (degrees) from c.
// Angles follow pixel space: 0° points right, 90° points down.
func Polar(c Point, r, deg float64) Point {
	s, co := math.Sincos(Rad(deg))
	return Point{c.X + r*co, c.Y + r*s}
}

// Rad converts degrees to radians.
func Rad(deg float64) float64 { return deg * math.Pi / 180 }

// Deg converts radians to degrees.
func Deg(rad float64) float64 { return rad * 180 / math.Pi }

// Clamp limits v to [lo, hi]. NaN maps to lo.
func Clamp(v, lo, hi float64) float64 {
	switch {
	case math.IsNaN(v), v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}

// Or returns v when it is finite and def otherwise.
func Or(v, def float64) float64 {
	if !finite(v) {
		return def
	}
	return v
}

// Positive returns v when it is finite and strictly positive, def otherwise.
func Positive(v, def float64) float64 {
	if !finite(v) || v <= 0 {
		return def
	}
	return v
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// AllFinite reports whether every value is a finite number.
func AllFinite(vs ...float64) bool {
	for _, v := range vs {
		if !finite(v) {
			return false
		}
	}
	return true
}
