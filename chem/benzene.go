// SPDX-License-Identifier: MIT
// Package: diagramkit/chem
//
// benzene.go - the benzene ring.

package chem

import (
	"math"

	"github.com/katalvlaran/diagramkit/geom"
	"github.com/katalvlaran/diagramkit/scene"
)

// Benzene draws C₆H₆ as a regular hexagon of radius Radius pixels (0 fits
// the canvas). Kekule alternates single and double bonds; otherwise an inner
// circle marks the delocalised ring. Hydrogens adds the six H atoms.
type Benzene struct {
	Radius    float64 `yaml:"radius" json:"radius"`
	Kekule    bool    `yaml:"kekule" json:"kekule"`
	Hydrogens bool    `yaml:"hydrogens" json:"hydrogens"`
}

// DefaultBenzene returns the Kekulé structure with hydrogens.
func DefaultBenzene() Benzene { return Benzene{Kekule: true, Hydrogens: true} }

// Validate checks the radius.
func (c Benzene) Validate() error {
	if !geom.AllFinite(c.Radius) || c.Radius < 0 {
		return wrapf(MethodBenzene, ErrInvalidParameter, "radius must be ≥ 0, got %v", c.Radius)
	}
	return nil
}

// ringSides is the number of carbons in the ring.
const ringSides = 6

// Molecule returns the ring as a Molecule in ring-radius units: carbons
// 0..5 clockwise from the top, hydrogens 6..11 outside them.
func (c Benzene) Molecule() Molecule {
	var m Molecule
	ring := geom.RegularPolygon(geom.Point{}, 1, ringSides)
	for _, p := range ring {
		m.Atoms = append(m.Atoms, Atom{Element: "C", X: p.X, Y: p.Y})
	}
	for i := 0; i < ringSides; i++ {
		order := 1
		if c.Kekule && i%2 == 0 {
			order = 2
		}
		m.Bonds = append(m.Bonds, Bond{From: i, To: (i + 1) % ringSides, Order: order})
	}
	if c.Hydrogens {
		for i, p := range ring {
			h := p.Scale(1.65)
			m.Atoms = append(m.Atoms, Atom{Element: "H", X: h.X, Y: h.Y})
			m.Bonds = append(m.Bonds, Bond{From: i, To: ringSides + i, Order: 1})
		}
	}
	return m
}

// DrawBenzene builds the benzene scene.
func DrawBenzene(c Benzene, cv scene.Canvas) *scene.Scene {
	cv = cv.Resolve(scene.DefaultWidth, scene.DefaultHeight)
	m := c.Molecule()
	r := c.Radius
	if !(r > 0) || math.IsInf(r, 0) {
		extent := 1.0
		if c.Hydrogens {
			extent = 1.65
		}
		r = fitFraction * math.Min(cv.Width, cv.Height) / extent
	}
	m.Scale = r
	s := Draw(m, cv)
	if !c.Kekule {
		// The aromatic circle sits between the bonds and the atoms.
		center := geom.Pt(cv.Width/2, cv.Height/2)
		ring := scene.Circle(center, 0.62*r, scene.Stroked(bondColor, bondWidth)).WithClass("aromatic-ring")
		s.Nodes = append(s.Nodes[:1], append([]*scene.Node{ring}, s.Nodes[1:]...)...)
	}
	s.Title = "Benzene (C₆H₆)"
	return s
}
