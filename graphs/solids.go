// SPDX-License-Identifier: MIT
// Package: diagramkit/graphs
//
// solids.go - regular polygons and the oblique cube projection.

package graphs

import (
	"fmt"
	"math"

	"github.com/katalvlaran/diagramkit/geom"
	"github.com/katalvlaran/diagramkit/scene"
	"github.com/katalvlaran/diagramkit/shape"
)

// Polygon limits.
const (
	MaxPolygonSides   = 24
	polygonFillFactor = 0.38
)

// vertexNames labels polygon and cube vertices in order.
const vertexNames = "ABCDEFGHIJKLMNOPQRSTUVWX"

// RegularPolygon is an n-gon of the given pixel radius centred on the canvas.
// Radius 0 sizes it to the canvas.
type RegularPolygon struct {
	Sides  int     `yaml:"sides" json:"sides"`
	Radius float64 `yaml:"radius" json:"radius"`
}

// DefaultRegularPolygon returns a hexagon.
func DefaultRegularPolygon() RegularPolygon { return RegularPolygon{Sides: 6} }

// Validate checks the side count and radius.
func (c RegularPolygon) Validate() error {
	if c.Sides < geom.MinPolygonSides || c.Sides > MaxPolygonSides {
		return invalidf(MethodPolygon, "sides must be in [%d,%d], got %d", geom.MinPolygonSides, MaxPolygonSides, c.Sides)
	}
	if !geom.AllFinite(c.Radius) || c.Radius < 0 {
		return invalidf(MethodPolygon, "radius must be ≥ 0, got %v", c.Radius)
	}
	return nil
}

// InteriorAngle returns the interior angle in degrees.
func (c RegularPolygon) InteriorAngle() float64 {
	n := float64(clampSides(c.Sides))
	return (n - 2) * 180 / n
}

func clampSides(n int) int {
	if n < geom.MinPolygonSides {
		return geom.MinPolygonSides
	}
	if n > MaxPolygonSides {
		return MaxPolygonSides
	}
	return n
}

// Polygon draws the regular polygon with vertex markers and, with labels,
// vertex letters and a caption.
func Polygon(c RegularPolygon, cv scene.Canvas) *scene.Scene {
	cv = cv.Resolve(scene.DefaultWidth, scene.DefaultHeight)
	s := scene.New(cv.Width, cv.Height)
	s.Background = "#ffffff"

	n := clampSides(c.Sides)
	center := geom.Pt(cv.Width/2, cv.Height/2)
	r := c.Radius
	if !(r > 0) || math.IsInf(r, 0) {
		r = polygonFillFactor * math.Min(cv.Width, cv.Height)
	}

	st := scene.Outlined(shape.Shade(cv.Color, 0.8), cv.Color, 2.5)
	st.LineJoin = "round"
	poly := shape.RegularPolygon(center, r, n, st)
	s.Add(poly)
	if cv.ShowGrid {
		s.Add(scene.Circle(center, r, withDash(scene.Stroked(GuideColor, 1), "4 4")).WithClass("circumcircle"))
	}

	labelStyle := scene.Label(shape.Shade(cv.Color, -0.4), 13)
	for i, v := range poly.Points {
		name := vertexNames[i : i+1]
		s.Add(shape.Dot(v, 3.5, cv.Color).WithName(name))
		s.Overlay.Points = append(s.Overlay.Points, scene.OverlayPoint{Name: name, At: v})
		if cv.ShowLabels {
			s.Add(scene.Text(geom.Lerp(center, v, 1+16/r), name, labelStyle).WithClass("vertex-label"))
		}
	}
	if cv.ShowLabels {
		caption := fmt.Sprintf("n = %d, interior angle %s°", n, scene.Format(c.InteriorAngle(), 2))
		s.Add(scene.Text(geom.Pt(cv.Width/2, cv.Height-12), caption, scene.Label(shape.DarkText, 13)).WithClass("caption"))
	}
	s.Title = fmt.Sprintf("Regular %d-gon", n)
	return s
}

// Cube is an oblique projection: a front square of side Size and a back
// square shifted by Depth·Size along Angle (degrees, counter-clockwise from
// the +x axis on screen). Zero values select the defaults.
type Cube struct {
	Size  float64 `yaml:"size" json:"size"`
	Depth float64 `yaml:"depth" json:"depth"`
	Angle float64 `yaml:"angle" json:"angle"`
}

// Cube defaults.
const (
	DefaultCubeDepth = 0.5
	DefaultCubeAngle = 45.0
	cubeFillFactor   = 0.45
)

// DefaultCube returns the canvas-sized cube at 45°.
func DefaultCube() Cube { return Cube{Depth: DefaultCubeDepth, Angle: DefaultCubeAngle} }

// Validate checks size, depth and angle.
func (c Cube) Validate() error {
	if !geom.AllFinite(c.Size, c.Depth, c.Angle) {
		return invalidf(MethodCube, "size, depth and angle must be finite")
	}
	if c.Size < 0 {
		return invalidf(MethodCube, "size must be ≥ 0, got %v", c.Size)
	}
	if c.Depth < 0 || c.Depth > 1 {
		return invalidf(MethodCube, "depth must be in [0,1], got %v", c.Depth)
	}
	return nil
}

// Vertices returns the front face (top-left clockwise) followed by the back
// face in the same order, laid out to fit a w×h canvas.
func (c Cube) Vertices(w, h float64) [8]geom.Point {
	size := c.Size
	if !(size > 0) {
		size = cubeFillFactor * math.Min(w, h)
	}
	depth := c.Depth
	if !(depth > 0) || depth > 1 {
		depth = DefaultCubeDepth
	}
	angle := geom.Or(c.Angle, DefaultCubeAngle)
	if c.Angle == 0 {
		angle = DefaultCubeAngle
	}
	off := geom.Polar(geom.Point{}, depth*size, -angle)

	// Centre the bounding box of both faces on the canvas.
	bw, bh := size+math.Abs(off.X), size+math.Abs(off.Y)
	x0 := (w-bw)/2 + math.Max(0, -off.X)
	y0 := (h-bh)/2 + math.Max(0, -off.Y)

	var v [8]geom.Point
	front := [4]geom.Point{{X: x0, Y: y0}, {X: x0 + size, Y: y0}, {X: x0 + size, Y: y0 + size}, {X: x0, Y: y0 + size}}
	for i, p := range front {
		v[i] = p
		v[i+4] = p.Add(off)
	}
	return v
}

// CubeDiagram draws the projection: hidden edges dashed, visible faces
// shaded, vertices lettered A–H when labels are on.
func CubeDiagram(c Cube, cv scene.Canvas) *scene.Scene {
	cv = cv.Resolve(scene.DefaultWidth, scene.DefaultHeight)
	s := scene.New(cv.Width, cv.Height)
	s.Background = "#ffffff"
	v := c.Vertices(cv.Width, cv.Height)
	off := v[4].Sub(v[0])

	// The back vertex hidden behind the front face sits opposite the offset.
	hidden := 4
	switch {
	case off.X >= 0 && off.Y <= 0:
		hidden = 7 // bottom-left
	case off.X < 0 && off.Y <= 0:
		hidden = 6 // bottom-right
	case off.X < 0 && off.Y > 0:
		hidden = 5 // top-right
	}
	dashed := withDash(scene.Stroked(shape.Shade(cv.Color, 0.3), 1.5), "5 4")
	hiddenEdges := scene.Group("hidden-edges")
	for _, j := range []int{4 + (hidden-4+1)%4, 4 + (hidden-4+3)%4, hidden - 4} {
		hiddenEdges.Append(scene.Line(v[hidden], v[j], dashed))
	}
	s.Add(hiddenEdges)

	faces := scene.Group("faces")
	face := func(idx [4]int, shade float64) {
		pts := []geom.Point{v[idx[0]], v[idx[1]], v[idx[2]], v[idx[3]]}
		st := scene.Outlined(shape.Shade(cv.Color, shade), cv.Color, 2)
		st.LineJoin = "round"
		faces.Append(scene.Polygon(pts, st).WithClass("face"))
	}
	if off.Y <= 0 {
		face([4]int{0, 1, 5, 4}, 0.55)
	} else {
		face([4]int{3, 2, 6, 7}, 0.55)
	}
	if off.X >= 0 {
		face([4]int{1, 2, 6, 5}, 0.35)
	} else {
		face([4]int{0, 3, 7, 4}, 0.35)
	}
	face([4]int{0, 1, 2, 3}, 0.75)
	s.Add(faces)

	labelStyle := scene.Label(shape.DarkText, 12)
	center := geom.Centroid(v[:])
	for i, p := range v {
		name := vertexNames[i : i+1]
		s.Overlay.Points = append(s.Overlay.Points, scene.OverlayPoint{Name: name, At: p})
		if cv.ShowLabels {
			out := p.Sub(center).Unit().Scale(12)
			s.Add(scene.Text(p.Add(out), name, labelStyle).WithClass("vertex-label"))
		}
	}
	s.Title = "Cube (oblique projection)"
	return s
}

func withDash(st scene.Style, dash string) scene.Style {
	st.Dash = dash
	return st
}
