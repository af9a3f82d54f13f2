// SPDX-License-Identifier: MIT
// Package: diagramkit/physics
//
// field.go - electric field lines of point charges.
//
// Algorithm:
//   - Charges live in a logical frame of half-width FieldExtent, aspect
//     matched to the canvas.
//   - Lines start on a small circle around each seed charge, evenly spaced
//     in angle. Seeds are the positive charges; with none, the negative
//     charges seed lines traced against the field.
//   - Each line follows the unit field direction with a fixed-step RK2
//     (midpoint) integrator: p' = p + h·d(p + h/2·d(p)).
//   - A line stops when it leaves the frame (with a small margin), enters
//     another charge's circle, reaches a null point, or after
//     MaxFieldSteps steps.
// The integration is a pure function of the configuration, so identical
// inputs produce identical lines.

package physics

import (
	"github.com/katalvlaran/diagramkit/geom"
	"github.com/katalvlaran/diagramkit/scene"
	"github.com/katalvlaran/diagramkit/shape"
)

// Field constants. Distances are logical units.
const (
	FieldExtent         = 5.0
	DefaultLines        = 12
	MaxLinesPerCharge   = 32
	MaxCharges          = 8
	MaxFieldSteps       = 600
	FieldStep           = 0.04
	chargeRadiusPx      = 13.0
	fieldLineColor      = "#64748b"
	minFieldMagnitude   = 1e-9
	frameSlack          = 0.5
	arrowEveryNthSample = 45
)

// Charge is a point charge at (X, Y) with charge Q (arbitrary units).
type Charge struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
	Q float64 `yaml:"q" json:"q"`
}

// ElectricField draws field lines for a set of charges.
type ElectricField struct {
	Charges        []Charge `yaml:"charges" json:"charges"`
	LinesPerCharge int      `yaml:"linesPerCharge" json:"linesPerCharge"`
}

// DefaultElectricField returns a dipole.
func DefaultElectricField() ElectricField {
	return ElectricField{Charges: []Charge{{X: -2, Q: 1}, {X: 2, Q: -1}}, LinesPerCharge: DefaultLines}
}

// Validate checks charge count, positions and line count.
func (c ElectricField) Validate() error {
	if len(c.Charges) == 0 || len(c.Charges) > MaxCharges {
		return wrapf(MethodElectricField, ErrInvalidParameter, "charges must number 1..%d, got %d", MaxCharges, len(c.Charges))
	}
	for i, q := range c.Charges {
		if !geom.AllFinite(q.X, q.Y, q.Q) {
			return wrapf(MethodElectricField, ErrInvalidParameter, "charge %d is not finite", i)
		}
	}
	if c.LinesPerCharge < 0 || c.LinesPerCharge > MaxLinesPerCharge {
		return wrapf(MethodElectricField, ErrInvalidParameter, "linesPerCharge must be in [0,%d], got %d", MaxLinesPerCharge, c.LinesPerCharge)
	}
	return nil
}

// FieldFrame returns the logical frame for a w×h canvas.
func FieldFrame(w, h float64) geom.Frame {
	hy := FieldExtent
	hx := FieldExtent
	if w >= h {
		hx = FieldExtent * w / h
	} else {
		hy = FieldExtent * h / w
	}
	return geom.NewFrame(geom.Symmetric(hx, hy), geom.Rect{W: w, H: h})
}

// charges drops non-finite entries and caps the count.
func (c ElectricField) charges() []Charge {
	out := make([]Charge, 0, len(c.Charges))
	for _, q := range c.Charges {
		if geom.AllFinite(q.X, q.Y, q.Q) && len(out) < MaxCharges {
			out = append(out, q)
		}
	}
	return out
}

// E returns the field at p: Σ qᵢ·(p − pᵢ)/|p − pᵢ|³.
func E(charges []Charge, p geom.Point) geom.Point {
	var e geom.Point
	for _, q := range charges {
		d := p.Sub(geom.Pt(q.X, q.Y))
		r := d.Len()
		if r < geom.Eps {
			continue
		}
		e = e.Add(d.Scale(q.Q / (r * r * r)))
	}
	return e
}

// FieldLines traces every line in logical coordinates.
func (c ElectricField) FieldLines(f geom.Frame) [][]geom.Point {
	qs := c.charges()
	n := c.LinesPerCharge
	if n <= 0 {
		n = DefaultLines
	}
	if n > MaxLinesPerCharge {
		n = MaxLinesPerCharge
	}
	seedSign := 1.0
	if !hasSign(qs, 1) {
		seedSign = -1
	}
	r0 := chargeRadiusPx / f.ScaleX
	var lines [][]geom.Point
	for i, q := range qs {
		if q.Q*seedSign <= 0 {
			continue
		}
		center := geom.Pt(q.X, q.Y)
		for k := 0; k < n; k++ {
			start := center.Add(geom.Pt(1, 0).Rotate(360 * float64(k) / float64(n)).Scale(r0))
			line := traceLine(qs, i, start, seedSign, r0, f.Range)
			if len(line) >= 2 {
				lines = append(lines, line)
			}
		}
	}
	return lines
}

func hasSign(qs []Charge, sign float64) bool {
	for _, q := range qs {
		if q.Q*sign > 0 {
			return true
		}
	}
	return false
}

// traceLine integrates from start along sign·E/|E|.
func traceLine(qs []Charge, seed int, start geom.Point, sign, r0 float64, rng geom.Range) []geom.Point {
	dir := func(p geom.Point) (geom.Point, bool) {
		e := E(qs, p)
		if e.Len() < minFieldMagnitude {
			return geom.Point{}, false
		}
		return e.Unit().Scale(sign), true
	}
	pts := []geom.Point{start}
	p := start
	for step := 0; step < MaxFieldSteps; step++ {
		d1, ok := dir(p)
		if !ok {
			break
		}
		d2, ok := dir(p.Add(d1.Scale(FieldStep / 2)))
		if !ok {
			break
		}
		p = p.Add(d2.Scale(FieldStep))
		pts = append(pts, p)
		if p.X < rng.XMin-frameSlack || p.X > rng.XMax+frameSlack || p.Y < rng.YMin-frameSlack || p.Y > rng.YMax+frameSlack {
			break
		}
		if absorbed(qs, seed, p, r0) {
			break
		}
	}
	return pts
}

func absorbed(qs []Charge, seed int, p geom.Point, r0 float64) bool {
	for j, q := range qs {
		if j != seed && p.Dist(geom.Pt(q.X, q.Y)) < r0 {
			return true
		}
	}
	return false
}

// DrawField builds the field-line scene: lines first, then the charges.
func DrawField(c ElectricField, cv scene.Canvas) *scene.Scene {
	cv = cv.Resolve(scene.DefaultWidth, scene.DefaultHeight)
	s := scene.New(cv.Width, cv.Height)
	s.Background = "#ffffff"
	f := FieldFrame(cv.Width, cv.Height)
	if cv.ShowGrid {
		s.Add(shape.Grid(f))
	}

	st := scene.Stroked(fieldLineColor, 1.4)
	st.LineJoin = "round"
	lines := scene.Group("field-lines")
	for _, line := range c.FieldLines(f) {
		px := make([]geom.Point, len(line))
		for i, p := range line {
			px[i] = f.ToPixel(p.X, p.Y)
		}
		lines.Append(scene.PathNode(scene.PolylinePath(px), st).WithClass("field-line"))
		// Direction markers point along +E whatever the seed sign.
		for i := arrowEveryNthSample; i < len(px)-1; i += 2 * arrowEveryNthSample {
			lp := line[i]
			e := E(c.charges(), lp)
			tip := f.ToPixel(lp.X, lp.Y)
			lines.Append(shape.Arrowhead(tip, geom.Pt(e.X, -e.Y), 8, 6, fieldLineColor))
		}
	}
	s.Add(lines)

	charges := scene.Group("charges")
	for i, q := range c.charges() {
		at := f.ToPixel(q.X, q.Y)
		charges.Append(shape.Charge(s, at, chargeRadiusPx, q.Q))
		name := "q" + scene.Format(float64(i+1), 0)
		s.Overlay.Points = append(s.Overlay.Points, scene.OverlayPoint{Name: name, At: at})
		if cv.ShowLabels {
			text := name + " = " + scene.Format(q.Q, 2)
			charges.Append(scene.Text(at.Add(geom.Pt(0, chargeRadiusPx+12)), text, scene.Label(shape.DarkText, 11)).WithClass("charge-label"))
		}
	}
	s.Add(charges)
	s.Title = "Electric field"
	return s
}
