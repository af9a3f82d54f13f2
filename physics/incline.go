// SPDX-License-Identifier: MIT
// Package: diagramkit/physics
//
// incline.go - a block resting on an inclined plane.
//
// Layout:
//   - The ramp is a right triangle rising to the right: foot at the
//     bottom-left, right angle at the bottom-right. Its base is as wide as
//     the canvas allows, shortened when the height would not fit.
//   - The block sits on the slope at BlockPosition of the ramp length,
//     rotated to lie flat on the surface.
//
// Forces (g = StandardGravity):
//   W = m·g straight down
//   N = m·g·cos θ along the outward surface normal
//   f = min(μ·N, m·g·sin θ) up the slope (static friction never exceeds
//       the pull down the slope)
// Arrow lengths are proportional to magnitude; the largest is
// MaxForceLength pixels.

package physics

import (
	"math"

	"github.com/katalvlaran/diagramkit/geom"
	"github.com/katalvlaran/diagramkit/scene"
	"github.com/katalvlaran/diagramkit/shape"
)

// Incline layout constants.
const (
	DefaultInclineAngle = 30.0
	DefaultMass         = 2.0
	MinInclineAngle     = 1.0
	MaxInclineAngle     = 89.0
	BlockPosition       = 0.55
	MaxForceLength      = 70.0
	inclineMargin       = 36.0
	rampColor           = "#a8a29e"
)

// Force arrow colours.
const (
	WeightColor   = "#dc2626"
	NormalColor   = "#16a34a"
	FrictionColor = "#d97706"
)

// Incline is a block of Mass kilograms on a plane inclined at AngleDeg with
// friction coefficient Friction.
type Incline struct {
	AngleDeg   float64 `yaml:"angle" json:"angle"`
	Mass       float64 `yaml:"mass" json:"mass"`
	Friction   float64 `yaml:"friction" json:"friction"`
	ShowForces bool    `yaml:"showForces" json:"showForces"`
}

// DefaultIncline returns a 30° incline with a 2 kg block and force arrows.
func DefaultIncline() Incline {
	return Incline{AngleDeg: DefaultInclineAngle, Mass: DefaultMass, Friction: 0.2, ShowForces: true}
}

// Validate checks angle, mass and friction.
func (c Incline) Validate() error {
	if !geom.AllFinite(c.AngleDeg, c.Mass, c.Friction) {
		return wrapf(MethodIncline, ErrInvalidParameter, "angle, mass and friction must be finite")
	}
	if c.AngleDeg < MinInclineAngle || c.AngleDeg > MaxInclineAngle {
		return wrapf(MethodIncline, ErrInvalidParameter, "angle must be in [%v,%v], got %v", MinInclineAngle, MaxInclineAngle, c.AngleDeg)
	}
	if c.Mass <= 0 {
		return wrapf(MethodIncline, ErrInvalidParameter, "mass must be > 0, got %v", c.Mass)
	}
	if c.Friction < 0 {
		return wrapf(MethodIncline, ErrInvalidParameter, "friction must be ≥ 0, got %v", c.Friction)
	}
	return nil
}

func (c Incline) angle() float64 {
	return geom.Clamp(geom.Or(c.AngleDeg, DefaultInclineAngle), MinInclineAngle, MaxInclineAngle)
}

func (c Incline) mass() float64 { return geom.Positive(c.Mass, DefaultMass) }

// Forces returns the magnitudes of weight, normal reaction and friction in
// newtons.
func (c Incline) Forces() (weight, normal, friction float64) {
	s, co := math.Sincos(geom.Rad(c.angle()))
	weight = c.mass() * StandardGravity
	normal = weight * co
	mu := math.Max(geom.Or(c.Friction, 0), 0)
	friction = math.Min(mu*normal, weight*s)
	return weight, normal, friction
}

// Acceleration returns the block's acceleration down the slope in m/s².
func (c Incline) Acceleration() float64 {
	w, _, f := c.Forces()
	a := (w*math.Sin(geom.Rad(c.angle())) - f) / c.mass()
	if a < 1e-12 {
		return 0
	}
	return a
}

// Ramp returns the ramp's foot, right-angle corner and top on a w×h canvas.
func (c Incline) Ramp(w, h float64) (foot, corner, top geom.Point) {
	t := math.Tan(geom.Rad(c.angle()))
	base := w - 2*inclineMargin
	maxRise := h - 2*inclineMargin - 20
	if base*t > maxRise {
		base = maxRise / t
	}
	x0 := (w - base) / 2
	y0 := h - inclineMargin
	foot = geom.Pt(x0, y0)
	corner = geom.Pt(x0+base, y0)
	top = geom.Pt(x0+base, y0-base*t)
	return foot, corner, top
}

// DrawIncline builds the incline scene.
func DrawIncline(c Incline, cv scene.Canvas) *scene.Scene {
	cv = cv.Resolve(scene.DefaultWidth, scene.DefaultHeight)
	s := scene.New(cv.Width, cv.Height)
	s.Background = "#ffffff"
	theta := c.angle()
	foot, corner, top := c.Ramp(cv.Width, cv.Height)

	ground := scene.Stroked("#57534e", 2)
	s.Add(scene.Line(geom.Pt(inclineMargin/2, foot.Y), geom.Pt(cv.Width-inclineMargin/2, foot.Y), ground).WithClass("ground"))
	ramp := scene.Outlined(shape.Shade(rampColor, 0.55), shape.Shade(rampColor, -0.35), 2)
	ramp.LineJoin = "round"
	s.Add(scene.Polygon([]geom.Point{foot, corner, top}, ramp).WithClass("ramp"))

	// Angle arc at the foot.
	const arcR = 34.0
	var arc scene.Path
	arc.MoveTo(geom.Pt(foot.X+arcR, foot.Y)).ArcTo(arcR, arcR, false, false, geom.Polar(foot, arcR, -theta))
	s.Add(scene.PathNode(arc, scene.Stroked(shape.DarkText, 1.5)).WithClass("angle-arc"))
	if cv.ShowLabels {
		at := geom.Polar(foot, arcR+14, -theta/2)
		s.Add(scene.Text(at, "θ = "+scene.Format(theta, 1)+"°", withAnchor(scene.Label(shape.DarkText, 12), "start")).WithClass("angle-label"))
	}

	along := top.Sub(foot).Unit()
	outward := along.Perp().Scale(-1)
	if outward.Y > 0 {
		outward = outward.Scale(-1)
	}
	slopeLen := top.Dist(foot)
	bw := geom.Clamp(0.22*slopeLen, 28, 70)
	bh := bw * 0.7
	contact := geom.Lerp(foot, top, BlockPosition)
	center := contact.Add(outward.Scale(bh / 2))
	label := ""
	if cv.ShowLabels {
		label = scene.Format(c.mass(), 2) + " kg"
	}
	s.Add(shape.Block(s, center, bw, bh, -theta, cv.Color, label))

	s.Overlay.Points = append(s.Overlay.Points,
		scene.OverlayPoint{Name: "foot", At: foot},
		scene.OverlayPoint{Name: "corner", At: corner},
		scene.OverlayPoint{Name: "top", At: top},
		scene.OverlayPoint{Name: "block", At: center},
	)

	weight, normal, friction := c.Forces()
	px := MaxForceLength / weight
	forces := []scene.Force{
		{Name: "weight", Origin: center, Vector: geom.Pt(0, weight*px), Magnitude: weight},
		{Name: "normal", Origin: center, Vector: outward.Scale(normal * px), Magnitude: normal},
	}
	if friction > 0 {
		forces = append(forces, scene.Force{Name: "friction", Origin: contact, Vector: along.Scale(friction * px), Magnitude: friction})
	}
	s.Overlay.Forces = forces

	if c.ShowForces {
		colors := map[string]string{"weight": WeightColor, "normal": NormalColor, "friction": FrictionColor}
		symbols := map[string]string{"weight": "W", "normal": "N", "friction": "f"}
		g := scene.Group("forces")
		for _, f := range forces {
			end := f.Origin.Add(f.Vector)
			g.Append(shape.Arrow(f.Origin, end, colors[f.Name], 2.5).WithName(f.Name))
			if cv.ShowLabels {
				at := end.Add(f.Vector.Unit().Scale(12))
				text := symbols[f.Name] + " = " + scene.Format(f.Magnitude, 1) + " N"
				g.Append(scene.Text(at, text, scene.Label(colors[f.Name], 11)).WithClass("force-label"))
			}
		}
		s.Add(g)
	}

	if cv.ShowLabels {
		caption := "a = " + scene.Format(c.Acceleration(), 2) + " m/s²"
		if c.Acceleration() == 0 {
			caption = "block at rest"
		}
		s.Add(scene.Text(geom.Pt(cv.Width/2, 16), caption, scene.Label(shape.DarkText, 13)).WithClass("caption"))
	}
	s.Title = "Inclined plane at " + scene.Format(theta, 1) + "°"
	return s
}

func withAnchor(st scene.Style, anchor string) scene.Style {
	st.Anchor = anchor
	return st
}
