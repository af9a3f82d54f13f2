// SPDX-License-Identifier: MIT
// Package: diagramkit/scene
//
// canvas.go - diagram-level style options and the interactive overlay.

package scene

import "github.com/katalvlaran/diagramkit/geom"

// Canvas defaults.
const (
	DefaultWidth  = 400.0
	DefaultHeight = 300.0
	DefaultColor  = "#2563eb"
	MaxDimension  = 4096.0
)

// Canvas carries the style options every descriptor shares.
type Canvas struct {
	Width      float64 `yaml:"width" json:"width"`
	Height     float64 `yaml:"height" json:"height"`
	Color      string  `yaml:"color" json:"color"`
	ShowLabels bool    `yaml:"showLabels" json:"showLabels"`
	ShowGrid   bool    `yaml:"showGrid" json:"showGrid"`
}

// DefaultCanvas returns the canvas used when a descriptor names none.
func DefaultCanvas() Canvas {
	return Canvas{Width: DefaultWidth, Height: DefaultHeight, Color: DefaultColor, ShowLabels: true, ShowGrid: true}
}

// Resolve fills unset or invalid dimensions with defW/defH (clamped to
// MaxDimension) and an empty colour with DefaultColor.
func (c Canvas) Resolve(defW, defH float64) Canvas {
	c.Width = geom.Clamp(geom.Positive(c.Width, defW), 1, MaxDimension)
	c.Height = geom.Clamp(geom.Positive(c.Height, defH), 1, MaxDimension)
	if c.Color == "" {
		c.Color = DefaultColor
	}
	return c
}

// Bounds returns the full canvas rectangle.
func (c Canvas) Bounds() geom.Rect { return geom.Rect{W: c.Width, H: c.Height} }

// OverlayPoint is a named annotation anchor in pixel space.
type OverlayPoint struct {
	Name string
	At   geom.Point
}

// Force is a named force arrow: it starts at Origin and its pixel
// displacement is Vector. Magnitude is in the diagram's physical units.
type Force struct {
	Name      string
	Origin    geom.Point
	Vector    geom.Point
	Magnitude float64
}

// Moment is a named torque about Center.
type Moment struct {
	Name      string
	Center    geom.Point
	Magnitude float64
	Clockwise bool
}

// Overlay lists the structured annotations a host may make interactive.
type Overlay struct {
	Points  []OverlayPoint
	Forces  []Force
	Moments []Moment
}

// Empty reports whether the overlay carries nothing.
func (o Overlay) Empty() bool {
	return len(o.Points) == 0 && len(o.Forces) == 0 && len(o.Moments) == 0
}
