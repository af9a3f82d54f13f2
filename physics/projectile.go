// SPDX-License-Identifier: MIT
// Package: diagramkit/physics
//
// projectile.go - drag-free projectile launched from the origin.
//
//   x(t) = v·cos θ·t          T = 2v·sin θ / g
//   y(t) = v·sin θ·t − g·t²/2  R = v²·sin 2θ / g,  H = v²·sin² θ / (2g)
// The frame is square in metres per pixel so the parabola is not distorted.

package physics

import (
	"math"

	"github.com/aclements/go-moremath/vec"

	"github.com/katalvlaran/diagramkit/geom"
	"github.com/katalvlaran/diagramkit/scene"
	"github.com/katalvlaran/diagramkit/shape"
)

// Projectile defaults and limits.
const (
	DefaultSpeed      = 20.0
	DefaultLaunch     = 45.0
	TrajectorySamples = 100
	projectileMargin  = 34.0
	velocityColor     = "#16a34a"
)

// Projectile is a launch at Speed m/s and AngleDeg above the horizontal
// under gravity Gravity m/s² (0 selects StandardGravity).
type Projectile struct {
	Speed    float64 `yaml:"speed" json:"speed"`
	AngleDeg float64 `yaml:"angle" json:"angle"`
	Gravity  float64 `yaml:"gravity" json:"gravity"`
}

// DefaultProjectile returns a 20 m/s launch at 45°.
func DefaultProjectile() Projectile {
	return Projectile{Speed: DefaultSpeed, AngleDeg: DefaultLaunch, Gravity: StandardGravity}
}

// Validate checks speed, angle and gravity.
func (c Projectile) Validate() error {
	if !geom.AllFinite(c.Speed, c.AngleDeg, c.Gravity) {
		return wrapf(MethodProjectile, ErrInvalidParameter, "speed, angle and gravity must be finite")
	}
	if c.Speed <= 0 {
		return wrapf(MethodProjectile, ErrInvalidParameter, "speed must be > 0, got %v", c.Speed)
	}
	if c.AngleDeg <= 0 || c.AngleDeg >= 90 {
		return wrapf(MethodProjectile, ErrInvalidParameter, "angle must be in (0,90), got %v", c.AngleDeg)
	}
	if c.Gravity < 0 {
		return wrapf(MethodProjectile, ErrInvalidParameter, "gravity must be ≥ 0, got %v", c.Gravity)
	}
	return nil
}

func (c Projectile) params() (v, theta, g float64) {
	v = geom.Positive(c.Speed, DefaultSpeed)
	theta = geom.Rad(geom.Clamp(geom.Or(c.AngleDeg, DefaultLaunch), 0.5, 89.5))
	g = geom.Positive(c.Gravity, StandardGravity)
	return v, theta, g
}

// FlightTime returns T in seconds.
func (c Projectile) FlightTime() float64 {
	v, th, g := c.params()
	return 2 * v * math.Sin(th) / g
}

// Range returns the horizontal distance R in metres.
func (c Projectile) Range() float64 {
	v, th, g := c.params()
	return v * v * math.Sin(2*th) / g
}

// MaxHeight returns the apex height H in metres.
func (c Projectile) MaxHeight() float64 {
	v, th, g := c.params()
	s := math.Sin(th)
	return v * v * s * s / (2 * g)
}

// Position returns (x, y) at time t.
func (c Projectile) Position(t float64) geom.Point {
	v, th, g := c.params()
	s, co := math.Sincos(th)
	return geom.Pt(v*co*t, v*s*t-g*t*t/2)
}

// Trajectory samples the flight at TrajectorySamples instants from launch
// to landing inclusive.
func (c Projectile) Trajectory() []geom.Point {
	ts := vec.Linspace(0, c.FlightTime(), TrajectorySamples)
	out := make([]geom.Point, len(ts))
	for i, t := range ts {
		out[i] = c.Position(t)
	}
	// Pin the landing point to the ground.
	out[len(out)-1] = geom.Pt(c.Range(), 0)
	return out
}

// ProjectileFrame returns the equal-scale frame for a w×h canvas.
func (c Projectile) ProjectileFrame(w, h float64) geom.Frame {
	px := geom.Rect{W: w, H: h}.Inset(projectileMargin)
	rx := 1.1 * c.Range()
	ry := 1.25 * c.MaxHeight()
	// Widen whichever extent is short so metres per pixel match.
	if rx/px.W > ry/px.H {
		ry = rx * px.H / px.W
	} else {
		rx = ry * px.W / px.H
	}
	left := 0.04 * rx
	return geom.NewFrame(geom.Range{XMin: -left, XMax: rx - left, YMin: -0.04 * ry, YMax: 0.96 * ry}, px)
}

// DrawProjectile builds the trajectory scene.
func DrawProjectile(c Projectile, cv scene.Canvas) *scene.Scene {
	cv = cv.Resolve(scene.DefaultWidth, scene.DefaultHeight)
	s := scene.New(cv.Width, cv.Height)
	s.Background = "#ffffff"
	f := c.ProjectileFrame(cv.Width, cv.Height)
	if cv.ShowGrid {
		s.Add(shape.Grid(f))
	}
	s.Add(shape.Axes(f, cv.ShowLabels))

	path := c.Trajectory()
	px := make([]geom.Point, len(path))
	for i, p := range path {
		px[i] = f.ToPixel(p.X, p.Y)
	}
	st := scene.Stroked(cv.Color, 2.5)
	st.Dash = "7 4"
	st.LineCap = "round"
	s.Add(scene.PathNode(scene.PolylinePath(px), st).WithClass("trajectory"))

	v, th, _ := c.params()
	launch := f.ToPixel(0, 0)
	apex := f.ToPixel(c.Range()/2, c.MaxHeight())
	landing := f.ToPixel(c.Range(), 0)

	// Launch velocity: 0.3 of the range on screen.
	vlen := 0.3 * (landing.X - launch.X)
	tip := geom.Polar(launch, vlen, -geom.Deg(th))
	s.Add(shape.Arrow(launch, tip, velocityColor, 2).WithName("velocity"))
	comp := withDash(scene.Stroked(velocityColor, 1), "3 3")
	s.Add(scene.Group("components",
		scene.Line(launch, geom.Pt(tip.X, launch.Y), comp),
		scene.Line(geom.Pt(tip.X, launch.Y), tip, comp),
	))

	s.Add(shape.Dot(apex, 4, shape.Shade(cv.Color, -0.3)).WithName("apex"))
	s.Add(shape.Dot(landing, 4, shape.Shade(cv.Color, -0.3)).WithName("landing"))
	s.Overlay.Points = append(s.Overlay.Points,
		scene.OverlayPoint{Name: "launch", At: launch},
		scene.OverlayPoint{Name: "apex", At: apex},
		scene.OverlayPoint{Name: "landing", At: landing},
	)

	if cv.ShowLabels {
		ink := shape.DarkText
		s.Add(scene.Text(tip.Add(geom.Pt(6, -8)), "v = "+scene.Format(v, 1)+" m/s", withAnchor(scene.Label(velocityColor, 11), "start")).WithClass("velocity-label"))
		s.Add(scene.Text(apex.Add(geom.Pt(0, -14)), "H = "+scene.Format(c.MaxHeight(), 2)+" m", scene.Label(ink, 11)).WithClass("apex-label"))
		s.Add(scene.Text(landing.Add(geom.Pt(0, 14)), "R = "+scene.Format(c.Range(), 2)+" m", scene.Label(ink, 11)).WithClass("range-label"))
	}
	s.Title = "Projectile at " + scene.Format(geom.Deg(th), 1) + "°"
	return s
}

func withDash(st scene.Style, dash string) scene.Style {
	st.Dash = dash
	return st
}
