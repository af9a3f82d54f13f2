// SPDX-License-Identifier: MIT
// Package: diagramkit/chem
//
// element.go - periodic-table element tile.

package chem

import (
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/diagramkit/geom"
	"github.com/katalvlaran/diagramkit/scene"
	"github.com/katalvlaran/diagramkit/shape"
)

// MaxAtomicNumber bounds Element.Number.
const MaxAtomicNumber = 118

// categoryColors tints tiles by element category.
var categoryColors = map[string]string{
	"alkali metal":          "#fca5a5",
	"alkaline earth metal":  "#fdba74",
	"transition metal":      "#fcd34d",
	"post-transition metal": "#a7f3d0",
	"metalloid":             "#86efac",
	"nonmetal":              "#93c5fd",
	"halogen":               "#c4b5fd",
	"noble gas":             "#f0abfc",
	"unknown":               "#e5e7eb",
}

// Element is a periodic-table tile. Empty fields are filled from the element
// table, looked up by Symbol first and then by Number.
type Element struct {
	Number   int     `yaml:"number" json:"number"`
	Symbol   string  `yaml:"symbol" json:"symbol"`
	Name     string  `yaml:"name" json:"name"`
	Mass     float64 `yaml:"mass" json:"mass"`
	Category string  `yaml:"category" json:"category"`
}

// DefaultElement returns carbon.
func DefaultElement() Element { return Element{Symbol: "C"} }

// Validate checks the atomic number and mass.
func (c Element) Validate() error {
	if c.Number < 0 || c.Number > MaxAtomicNumber {
		return wrapf(MethodElement, ErrInvalidParameter, "number must be in [0,%d], got %d", MaxAtomicNumber, c.Number)
	}
	if !geom.AllFinite(c.Mass) || c.Mass < 0 {
		return wrapf(MethodElement, ErrInvalidParameter, "mass must be ≥ 0, got %v", c.Mass)
	}
	if c.Number == 0 && strings.TrimSpace(c.Symbol) == "" {
		return wrapf(MethodElement, ErrInvalidParameter, "number or symbol is required")
	}
	return nil
}

// Resolved fills empty fields from the element table and normalises the
// symbol's case.
func (c Element) Resolved() Element {
	info, ok := shape.Element(c.Symbol)
	if !ok && c.Number > 0 {
		if byNum, found := shape.ElementByNumber(c.Number); found {
			info = byNum
		}
	}
	if c.Number == 0 {
		c.Number = info.Number
	}
	c.Symbol = info.Symbol
	if c.Name == "" {
		c.Name = info.Name
	}
	if c.Mass == 0 {
		c.Mass = info.Mass
	}
	if c.Category == "" {
		c.Category = info.Category
	}
	return c
}

// DrawElement builds the tile: number top-left, symbol centred, name and
// mass underneath, background tinted by category.
func DrawElement(c Element, cv scene.Canvas) *scene.Scene {
	cv = cv.Resolve(scene.DefaultWidth, scene.DefaultHeight)
	s := scene.New(cv.Width, cv.Height)
	e := c.Resolved()

	side := 0.8 * math.Min(cv.Width, cv.Height)
	box := geom.Rect{X: (cv.Width - side) / 2, Y: (cv.Height - side) / 2, W: side, H: side}
	tint, ok := categoryColors[strings.ToLower(e.Category)]
	if !ok {
		tint = categoryColors["unknown"]
	}
	st := scene.Outlined("", shape.Shade(tint, -0.45), 2)
	st.FillGradient = s.DefineGradient(shape.VerticalShade(tint, 0.2))
	st.Filter = s.DefineFilter(shape.ShadowFilter())
	s.Add(scene.RoundRect(box, side*0.06, st).WithClass("tile"))

	ink := shape.DarkText
	num := scene.Label(ink, side*0.11)
	num.Anchor = "start"
	if e.Number > 0 {
		s.Add(scene.Text(geom.Pt(box.X+side*0.08, box.Y+side*0.12), strconv.Itoa(e.Number), num).WithClass("number"))
	}
	sym := scene.Label(ink, side*0.36)
	sym.FontWeight = "bold"
	s.Add(scene.Text(geom.Pt(box.Center().X, box.Y+side*0.45), e.Symbol, sym).WithClass("element-symbol"))
	if cv.ShowLabels {
		s.Add(scene.Text(geom.Pt(box.Center().X, box.Y+side*0.74), e.Name, scene.Label(ink, side*0.09)).WithClass("name"))
		if e.Mass > 0 {
			s.Add(scene.Text(geom.Pt(box.Center().X, box.Y+side*0.87), scene.Format(e.Mass, 3), scene.Label("#4b5563", side*0.08)).WithClass("mass"))
		}
	}
	s.Title = e.Name
	return s
}
