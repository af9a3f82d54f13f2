// SPDX-License-Identifier: MIT
// Package: diagramkit/chem
//
// beaker.go - a graduated beaker with liquid.
//
// The liquid's top edge sits at bottom − (fill/capacity)·(bottom − top),
// where top and bottom are the beaker body's declared pixel bounds. Fill is
// clamped to [0, capacity]; a non-positive capacity falls back to
// DefaultCapacity.

package chem

import (
	"github.com/katalvlaran/diagramkit/geom"
	"github.com/katalvlaran/diagramkit/scene"
	"github.com/katalvlaran/diagramkit/shape"
)

// Beaker defaults.
const (
	DefaultCapacity    = 250.0
	DefaultGraduations = 5
	MaxGraduations     = 20
	DefaultLiquid      = "#60a5fa"
	glassColor         = "#64748b"
)

// Beaker is a beaker of Capacity millilitres holding FillLevel millilitres.
type Beaker struct {
	Capacity    float64 `yaml:"capacity" json:"capacity"`
	FillLevel   float64 `yaml:"fillLevel" json:"fillLevel"`
	LiquidColor string  `yaml:"liquidColor" json:"liquidColor"`
	Graduations int     `yaml:"graduations" json:"graduations"`
}

// DefaultBeaker returns a 250 mL beaker filled to 150 mL.
func DefaultBeaker() Beaker {
	return Beaker{Capacity: DefaultCapacity, FillLevel: 150, LiquidColor: DefaultLiquid, Graduations: DefaultGraduations}
}

// Validate checks capacity, fill and graduation count.
func (c Beaker) Validate() error {
	if !geom.AllFinite(c.Capacity, c.FillLevel) {
		return wrapf(MethodBeaker, ErrInvalidParameter, "capacity and fill must be finite")
	}
	if c.Capacity <= 0 {
		return wrapf(MethodBeaker, ErrInvalidParameter, "capacity must be > 0, got %v", c.Capacity)
	}
	if c.FillLevel < 0 || c.FillLevel > c.Capacity {
		return wrapf(MethodBeaker, ErrInvalidParameter, "fill must be in [0,%v], got %v", c.Capacity, c.FillLevel)
	}
	if c.Graduations < 0 || c.Graduations > MaxGraduations {
		return wrapf(MethodBeaker, ErrInvalidParameter, "graduations must be in [0,%d], got %d", MaxGraduations, c.Graduations)
	}
	return nil
}

func (c Beaker) capacity() float64 { return geom.Positive(c.Capacity, DefaultCapacity) }

// Fraction returns the clamped fill fraction in [0,1].
func (c Beaker) Fraction() float64 {
	return geom.Clamp(geom.Or(c.FillLevel, 0), 0, c.capacity()) / c.capacity()
}

// Body returns the beaker body's pixel rectangle on a w×h canvas.
func (c Beaker) Body(w, h float64) geom.Rect {
	bw := 0.42 * w
	return geom.Rect{X: (w - bw) / 2, Y: 0.16 * h, W: bw, H: 0.7 * h}
}

// LiquidTop returns the pixel y of the liquid surface between the body's
// top and bottom bounds.
func (c Beaker) LiquidTop(top, bottom float64) float64 {
	return bottom - c.Fraction()*(bottom-top)
}

// DrawBeaker builds the beaker scene: liquid, glass outline, graduations.
func DrawBeaker(c Beaker, cv scene.Canvas) *scene.Scene {
	cv = cv.Resolve(scene.DefaultWidth, scene.DefaultHeight)
	s := scene.New(cv.Width, cv.Height)
	s.Background = "#ffffff"
	body := c.Body(cv.Width, cv.Height)
	top, bottom := body.Y, body.Bottom()
	level := c.LiquidTop(top, bottom)

	liquidColor := c.LiquidColor
	if liquidColor == "" {
		liquidColor = DefaultLiquid
	}
	if level < bottom {
		fill := scene.Filled("")
		fill.FillGradient = s.DefineGradient(shape.VerticalShade(liquidColor, 0.15))
		fill.Opacity = 0.85
		s.Add(scene.Rect(geom.Rect{X: body.X, Y: level, W: body.W, H: bottom - level}, fill).WithClass("liquid"))
		surface := scene.Stroked(shape.Shade(liquidColor, -0.25), 1.5)
		s.Add(scene.Line(geom.Pt(body.X, level), geom.Pt(body.Right(), level), surface).WithClass("meniscus"))
	}

	// Glass: open top with a lip on the left, rounded bottom corners.
	const corner, lip = 8.0, 10.0
	var p scene.Path
	p.MoveTo(geom.Pt(body.X-lip, top-lip/2)).
		LineTo(geom.Pt(body.X, top)).
		LineTo(geom.Pt(body.X, bottom-corner)).
		QuadTo(geom.Pt(body.X, bottom), geom.Pt(body.X+corner, bottom)).
		LineTo(geom.Pt(body.Right()-corner, bottom)).
		QuadTo(geom.Pt(body.Right(), bottom), geom.Pt(body.Right(), bottom-corner)).
		LineTo(geom.Pt(body.Right(), top))
	glass := scene.Stroked(glassColor, 3)
	glass.LineJoin = "round"
	glass.LineCap = "round"
	s.Add(scene.PathNode(p, glass).WithClass("glass"))

	n := c.Graduations
	if n <= 0 {
		n = DefaultGraduations
	}
	if n > MaxGraduations {
		n = MaxGraduations
	}
	marks := scene.Group("graduations")
	tick := scene.Stroked(glassColor, 1.5)
	label := scene.Label(glassColor, 11)
	label.Anchor = "start"
	for i := 1; i <= n; i++ {
		vol := c.capacity() * float64(i) / float64(n)
		y := bottom - float64(i)/float64(n)*(bottom-top)
		marks.Append(scene.Line(geom.Pt(body.Right()-body.W*0.25, y), geom.Pt(body.Right(), y), tick))
		if cv.ShowLabels {
			marks.Append(scene.Text(geom.Pt(body.Right()+6, y), scene.Format(vol, 1)+" mL", label))
		}
	}
	s.Add(marks)

	s.Overlay.Points = append(s.Overlay.Points,
		scene.OverlayPoint{Name: "liquid-level", At: geom.Pt(body.Center().X, level)},
	)
	if cv.ShowLabels {
		fillText := scene.Format(c.Fraction()*c.capacity(), 1) + " / " + scene.Format(c.capacity(), 1) + " mL"
		s.Add(scene.Text(geom.Pt(cv.Width/2, cv.Height-14), fillText, scene.Label(shape.DarkText, 13)).WithClass("caption"))
	}
	s.Title = "Beaker"
	return s
}
