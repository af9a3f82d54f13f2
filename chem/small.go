// SPDX-License-Identifier: MIT
// Package: diagramkit/chem
//
// small.go - fixed layouts for common small molecules.
//
// Each kind maps through a closed table to a central atom, its ligands at
// fixed angles (degrees, pixel convention: 0° right, 90° down) and the bond
// angle printed beside it. Out-of-plane ligands of the pyramidal and
// tetrahedral shapes are projected with a shortened bond.

package chem

import (
	"math"
	"strings"

	"github.com/katalvlaran/diagramkit/geom"
	"github.com/katalvlaran/diagramkit/scene"
	"github.com/katalvlaran/diagramkit/shape"
)

// MoleculeKind is a closed set of small molecules.
type MoleculeKind int

const (
	CO2 MoleculeKind = iota
	H2O
	NH3
	CH4
	H2
	O2
	N2
	HCl
	numKinds
)

// Geometry names the VSEPR shape of a small molecule.
type Geometry string

const (
	GeometryLinear      Geometry = "linear"
	GeometryBent        Geometry = "bent"
	GeometryPyramidal   Geometry = "trigonal pyramidal"
	GeometryTetrahedral Geometry = "tetrahedral"
	GeometryDiatomic    Geometry = "diatomic"
)

type ligand struct {
	element string
	angle   float64
	length  float64
	order   int
}

type smallLayout struct {
	name      string
	formula   string
	geometry  Geometry
	center    string // "" for diatomics
	ligands   []ligand
	bondAngle float64 // 0 when not annotated
}

var smallTable = [numKinds]smallLayout{
	CO2: {"CO2", "CO₂", GeometryLinear, "C", []ligand{{"O", 180, 1, 2}, {"O", 0, 1, 2}}, 180},
	H2O: {"H2O", "H₂O", GeometryBent, "O", []ligand{{"H", 90 + 104.5/2, 1, 1}, {"H", 90 - 104.5/2, 1, 1}}, 104.5},
	NH3: {"NH3", "NH₃", GeometryPyramidal, "N", []ligand{{"H", 90 + 107.0/2, 1, 1}, {"H", 90 - 107.0/2, 1, 1}, {"H", 90, 0.6, 1}}, 107},
	CH4: {"CH4", "CH₄", GeometryTetrahedral, "C", []ligand{{"H", -90, 1, 1}, {"H", -90 + 109.5, 1, 1}, {"H", -90 - 109.5, 1, 1}, {"H", 90, 0.55, 1}}, 109.5},
	H2:  {"H2", "H₂", GeometryDiatomic, "", []ligand{{"H", 180, 0.5, 1}, {"H", 0, 0.5, 1}}, 0},
	O2:  {"O2", "O₂", GeometryDiatomic, "", []ligand{{"O", 180, 0.5, 2}, {"O", 0, 0.5, 2}}, 0},
	N2:  {"N2", "N₂", GeometryDiatomic, "", []ligand{{"N", 180, 0.5, 3}, {"N", 0, 0.5, 3}}, 0},
	HCl: {"HCl", "HCl", GeometryDiatomic, "", []ligand{{"H", 180, 0.5, 1}, {"Cl", 0, 0.5, 1}}, 0},
}

// String returns the ASCII formula ("H2O").
func (k MoleculeKind) String() string {
	if k < 0 || k >= numKinds {
		return "unknown"
	}
	return smallTable[k].name
}

// Geometry returns the molecule's shape name.
func (k MoleculeKind) Geometry() Geometry {
	if k < 0 || k >= numKinds {
		return ""
	}
	return smallTable[k].geometry
}

// ParseMoleculeKind resolves "h2o", "H2O" or "water".
func ParseMoleculeKind(s string) (MoleculeKind, bool) {
	t := strings.ToLower(strings.TrimSpace(s))
	for i, l := range smallTable {
		if strings.ToLower(l.name) == t {
			return MoleculeKind(i), true
		}
	}
	k, ok := commonNames[t]
	return k, ok
}

var commonNames = map[string]MoleculeKind{
	"carbon dioxide":    CO2,
	"water":             H2O,
	"ammonia":           NH3,
	"methane":           CH4,
	"hydrogen":          H2,
	"oxygen":            O2,
	"nitrogen":          N2,
	"hydrogen chloride": HCl,
}

// SmallMolecule selects one molecule from the table by name.
type SmallMolecule struct {
	Kind string `yaml:"kind" json:"kind"`
}

// DefaultSmallMolecule returns water.
func DefaultSmallMolecule() SmallMolecule { return SmallMolecule{Kind: "H2O"} }

// Validate checks that Kind names a known molecule.
func (c SmallMolecule) Validate() error {
	if _, ok := ParseMoleculeKind(c.Kind); !ok {
		return wrapf(MethodSmallMolecule, ErrUnknownMolecule, "kind %q", c.Kind)
	}
	return nil
}

// Molecule expands the table entry into atoms and bonds. Unknown kinds
// yield an empty molecule.
func (k MoleculeKind) Molecule() Molecule {
	if k < 0 || k >= numKinds {
		return Molecule{}
	}
	l := smallTable[k]
	var m Molecule
	if l.center == "" {
		for _, lg := range l.ligands {
			p := geom.Polar(geom.Point{}, lg.length, lg.angle)
			m.Atoms = append(m.Atoms, Atom{Element: lg.element, X: p.X, Y: p.Y})
		}
		m.Bonds = []Bond{{From: 0, To: 1, Order: l.ligands[0].order}}
		return m
	}
	m.Atoms = append(m.Atoms, Atom{Element: l.center})
	for i, lg := range l.ligands {
		p := geom.Polar(geom.Point{}, lg.length, lg.angle)
		m.Atoms = append(m.Atoms, Atom{Element: lg.element, X: p.X, Y: p.Y})
		m.Bonds = append(m.Bonds, Bond{From: 0, To: i + 1, Order: lg.order})
	}
	return m
}

// DrawSmall draws a small molecule with its formula, shape name and bond
// angle when labels are on.
func DrawSmall(c SmallMolecule, cv scene.Canvas) *scene.Scene {
	k, ok := ParseMoleculeKind(c.Kind)
	if !ok {
		k = H2O
	}
	cv = cv.Resolve(scene.DefaultWidth, scene.DefaultHeight)
	m := k.Molecule()
	m.Scale = 0.28 * math.Min(cv.Width, cv.Height)
	s := Draw(m, cv)
	l := smallTable[k]
	s.Title = l.formula

	if cv.ShowLabels {
		title := scene.Label(shape.DarkText, 18)
		title.FontWeight = "bold"
		s.Add(scene.Text(geom.Pt(cv.Width/2, 22), l.formula, title).WithClass("formula"))
		s.Add(scene.Text(geom.Pt(cv.Width/2, cv.Height-16), string(l.geometry), scene.Label("#6b7280", 13)).WithClass("caption"))
		if l.bondAngle > 0 && len(l.ligands) >= 2 {
			pts := m.Layout(cv.Width, cv.Height)
			mid := (l.ligands[0].angle + l.ligands[1].angle) / 2
			if l.geometry == GeometryLinear {
				mid = -90
			}
			at := geom.Polar(pts[0], 0.45*m.Scale, mid)
			s.Add(scene.Text(at, scene.Format(l.bondAngle, 1)+"°", scene.Label("#b45309", 12)).WithClass("bond-angle"))
		}
	}
	return s
}
