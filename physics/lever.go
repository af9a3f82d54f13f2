// SPDX-License-Identifier: MIT
// Package: diagramkit/physics
//
// lever.go - a beam on a fulcrum with hanging loads.

package physics

import (
	"math"

	"github.com/katalvlaran/diagramkit/geom"
	"github.com/katalvlaran/diagramkit/scene"
	"github.com/katalvlaran/diagramkit/shape"
)

// Lever limits.
const (
	MaxLoads     = 6
	leverMargin  = 40.0
	beamColor    = "#78716c"
	fulcrumColor = "#57534e"
)

// Load hangs Mass kilograms at Position along the beam (0 = left end,
// 1 = right end).
type Load struct {
	Position float64 `yaml:"position" json:"position"`
	Mass     float64 `yaml:"mass" json:"mass"`
}

// Lever is a beam of Length metres resting on a fulcrum at Fulcrum (a
// fraction of the length).
type Lever struct {
	Length  float64 `yaml:"length" json:"length"`
	Fulcrum float64 `yaml:"fulcrum" json:"fulcrum"`
	Loads   []Load  `yaml:"loads" json:"loads"`
}

// DefaultLever returns a balanced 2 m seesaw.
func DefaultLever() Lever {
	return Lever{Length: 2, Fulcrum: 0.5, Loads: []Load{{Position: 0.1, Mass: 3}, {Position: 0.8, Mass: 4}}}
}

// Validate checks length, fulcrum and loads.
func (c Lever) Validate() error {
	if !geom.AllFinite(c.Length, c.Fulcrum) || c.Length <= 0 {
		return wrapf(MethodLever, ErrInvalidParameter, "length must be > 0")
	}
	if c.Fulcrum < 0 || c.Fulcrum > 1 {
		return wrapf(MethodLever, ErrInvalidParameter, "fulcrum must be in [0,1], got %v", c.Fulcrum)
	}
	if len(c.Loads) > MaxLoads {
		return wrapf(MethodLever, ErrInvalidParameter, "at most %d loads", MaxLoads)
	}
	for i, l := range c.Loads {
		if !geom.AllFinite(l.Position, l.Mass) || l.Position < 0 || l.Position > 1 || l.Mass <= 0 {
			return wrapf(MethodLever, ErrInvalidParameter, "load %d needs position in [0,1] and mass > 0", i)
		}
	}
	return nil
}

// Torques returns each load's moment about the fulcrum in N·m, positive
// clockwise (loads right of the fulcrum), and their sum.
func (c Lever) Torques() (each []float64, net float64) {
	length := geom.Positive(c.Length, 2)
	fulcrum := geom.Clamp(c.Fulcrum, 0, 1)
	each = make([]float64, len(c.Loads))
	for i, l := range c.Loads {
		arm := (geom.Clamp(l.Position, 0, 1) - fulcrum) * length
		each[i] = math.Max(geom.Or(l.Mass, 0), 0) * StandardGravity * arm
		net += each[i]
	}
	return each, net
}

// DrawLever builds the lever scene. The beam stays horizontal; the caption
// states which way the net moment turns it.
func DrawLever(c Lever, cv scene.Canvas) *scene.Scene {
	cv = cv.Resolve(scene.DefaultWidth, scene.DefaultHeight)
	s := scene.New(cv.Width, cv.Height)
	s.Background = "#ffffff"

	x0, x1 := leverMargin, cv.Width-leverMargin
	y := 0.42 * cv.Height
	at := func(frac float64) geom.Point { return geom.Pt(x0+geom.Clamp(frac, 0, 1)*(x1-x0), y) }
	pivot := at(c.Fulcrum)

	tri := 0.1 * cv.Height
	s.Add(scene.Polygon([]geom.Point{pivot.Add(geom.Pt(0, 5)), pivot.Add(geom.Pt(-tri*0.7, tri+5)), pivot.Add(geom.Pt(tri*0.7, tri+5))},
		scene.Outlined(shape.Shade(fulcrumColor, 0.4), fulcrumColor, 1.5)).WithClass("fulcrum"))
	beam := scene.Outlined(shape.Shade(beamColor, 0.5), beamColor, 1.5)
	beam.FillGradient = s.DefineGradient(shape.VerticalShade(beamColor, 0.35))
	s.Add(scene.RoundRect(geom.Rect{X: x0, Y: y - 5, W: x1 - x0, H: 10}, 3, beam).WithClass("beam"))

	each, net := c.Torques()
	loads := scene.Group("loads")
	maxMass := 0.0
	for _, l := range c.Loads {
		maxMass = math.Max(maxMass, l.Mass)
	}
	for i, l := range c.Loads {
		hook := at(l.Position)
		side := 18 + 16*math.Sqrt(geom.Positive(l.Mass, 1)/geom.Positive(maxMass, 1))
		top := hook.Add(geom.Pt(0, 30))
		loads.Append(scene.Line(hook.Add(geom.Pt(0, 5)), top, scene.Stroked(fulcrumColor, 1.2)))
		label := ""
		if cv.ShowLabels {
			label = scene.Format(l.Mass, 2) + " kg"
		}
		center := top.Add(geom.Pt(0, side/2))
		loads.Append(shape.Block(s, center, side*1.3, side, 0, cv.Color, label))
		w := l.Mass * StandardGravity
		s.Overlay.Forces = append(s.Overlay.Forces, scene.Force{Name: "load", Origin: center, Vector: geom.Pt(0, 40), Magnitude: w})
		s.Overlay.Moments = append(s.Overlay.Moments, scene.Moment{Name: "load", Center: pivot, Magnitude: math.Abs(each[i]), Clockwise: each[i] > 0})
	}
	s.Add(loads)
	s.Overlay.Points = append(s.Overlay.Points, scene.OverlayPoint{Name: "fulcrum", At: pivot})

	if cv.ShowLabels {
		caption := "balanced"
		switch {
		case net > 1e-9:
			caption = "net moment " + scene.Format(net, 2) + " N·m clockwise"
		case net < -1e-9:
			caption = "net moment " + scene.Format(-net, 2) + " N·m anticlockwise"
		}
		s.Add(scene.Text(geom.Pt(cv.Width/2, cv.Height-16), caption, scene.Label(shape.DarkText, 13)).WithClass("caption"))
	}
	s.Title = "Lever"
	return s
}
