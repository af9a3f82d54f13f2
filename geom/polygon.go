// SPDX-License-Identifier: MIT
// Package: diagramkit/geom
//
// polygon.go - regular polygon placement (benzene rings, cube faces, n-gons).
//
// Vertex i sits at angle i·(360°/n) − 90° around the centre, so vertex 0 is
// straight up in pixel space and the walk is clockwise on screen. Every vertex
// lies at exactly the declared radius (up to float rounding).

package geom

// MinPolygonSides is the fewest sides RegularPolygon will produce.
const MinPolygonSides = 3

// RegularPolygon returns the n vertices of a regular polygon of radius r
// centred on c. n below MinPolygonSides is raised to it; a negative or NaN
// radius becomes 0.
func RegularPolygon(c Point, r float64, n int) []Point {
	if n < MinPolygonSides {
		n = MinPolygonSides
	}
	if !finite(r) || r < 0 {
		r = 0
	}
	step := 360.0 / float64(n)
	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		pts[i] = Polar(c, r, float64(i)*step-90)
	}
	return pts
}

// Centroid returns the arithmetic mean of pts, or the zero Point for none.
func Centroid(pts []Point) Point {
	if len(pts) == 0 {
		return Point{}
	}
	var sx, sy float64
	for _, p := range pts {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(pts))
	return Point{sx / n, sy / n}
}

// Translate returns pts shifted by d.
func Translate(pts []Point, d Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = p.Add(d)
	}
	return out
}

// Bounds returns the smallest Rect containing pts.
func Bounds(pts []Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}
