// SPDX-License-Identifier: MIT
// Package: diagramkit/chem
//
// molecule.go - the general molecule composer.
//
// Contract:
//   - Atom positions are in bond-length units relative to the molecule's
//     own origin, y pointing down the page. The composer centres the
//     molecule on the canvas and scales it by Scale pixels per unit
//     (0 → fit to the canvas, at most DefaultScale).
//   - Every bond fragment is emitted before every atom fragment.
//   - Bonds whose endpoints are missing or identical are skipped.

package chem

import (
	"math"

	"github.com/katalvlaran/diagramkit/geom"
	"github.com/katalvlaran/diagramkit/scene"
	"github.com/katalvlaran/diagramkit/shape"
)

// Composer defaults.
const (
	DefaultScale  = 70.0
	fitFraction   = 0.36
	bondColor     = "#4b5563"
	bondWidth     = 3.0
	maxMoleculeSz = 256
)

// Atom is one atom of a Molecule. X and Y are in bond-length units and are
// scaled by Layout; Radius is in pixels and drawn as given. Radius 0 and
// Label "" use the element's defaults, which shrink with short bonds.
type Atom struct {
	Element string  `yaml:"element" json:"element"`
	X       float64 `yaml:"x" json:"x"`
	Y       float64 `yaml:"y" json:"y"`
	Radius  float64 `yaml:"radius" json:"radius"`
	Label   string  `yaml:"label" json:"label"`
}

// Bond joins atoms From and To with the given order (1..3). Order 0 is a
// single bond.
type Bond struct {
	From  int `yaml:"from" json:"from"`
	To    int `yaml:"to" json:"to"`
	Order int `yaml:"order" json:"order"`
}

// Molecule is an arbitrary atom list plus bond list.
type Molecule struct {
	Atoms []Atom  `yaml:"atoms" json:"atoms"`
	Bonds []Bond  `yaml:"bonds" json:"bonds"`
	Scale float64 `yaml:"scale" json:"scale"`
}

// DefaultMolecule returns a single carbon atom.
func DefaultMolecule() Molecule { return Molecule{Atoms: []Atom{{Element: "C"}}} }

// Validate checks coordinates, sizes and bond endpoints.
func (m Molecule) Validate() error {
	if len(m.Atoms) > maxMoleculeSz || len(m.Bonds) > maxMoleculeSz {
		return wrapf(MethodMolecule, ErrInvalidParameter, "at most %d atoms and bonds", maxMoleculeSz)
	}
	if !geom.AllFinite(m.Scale) || m.Scale < 0 {
		return wrapf(MethodMolecule, ErrInvalidParameter, "scale must be ≥ 0, got %v", m.Scale)
	}
	for i, a := range m.Atoms {
		if !geom.AllFinite(a.X, a.Y, a.Radius) || a.Radius < 0 {
			return wrapf(MethodMolecule, ErrInvalidParameter, "atom %d has a non-finite position or radius", i)
		}
	}
	for i, b := range m.Bonds {
		if !m.validBond(b) {
			return wrapf(MethodMolecule, ErrBadBond, "bond %d (%d→%d, order %d)", i, b.From, b.To, b.Order)
		}
	}
	return nil
}

func (m Molecule) validBond(b Bond) bool {
	return b.From >= 0 && b.To >= 0 && b.From < len(m.Atoms) && b.To < len(m.Atoms) && b.From != b.To &&
		b.Order >= 0 && b.Order <= int(shape.Triple)
}

// Layout returns the pixel position of every atom on a w×h canvas.
func (m Molecule) Layout(w, h float64) []geom.Point {
	pts := make([]geom.Point, len(m.Atoms))
	for i, a := range m.Atoms {
		pts[i] = geom.Pt(geom.Or(a.X, 0), geom.Or(a.Y, 0))
	}
	b := geom.Bounds(pts)
	mid := b.Center()

	scale := m.Scale
	if !(scale > 0) || math.IsInf(scale, 0) {
		scale = DefaultScale
		if ext := math.Max(b.W, b.H) / 2; ext > geom.Eps {
			scale = math.Min(DefaultScale, fitFraction*math.Min(w, h)/ext)
		}
	}
	center := geom.Pt(w/2, h/2)
	for i, p := range pts {
		pts[i] = center.Add(p.Sub(mid).Scale(scale))
	}
	return pts
}

// Draw builds the molecule scene.
func Draw(m Molecule, cv scene.Canvas) *scene.Scene {
	cv = cv.Resolve(scene.DefaultWidth, scene.DefaultHeight)
	s := scene.New(cv.Width, cv.Height)
	s.Background = "#ffffff"
	pts := m.Layout(cv.Width, cv.Height)
	atomScale := atomScaleFor(m, pts)

	bonds := scene.Group("bonds")
	for _, b := range m.Bonds {
		if !m.validBond(b) {
			continue
		}
		bonds.Append(shape.Bond(pts[b.From], pts[b.To], shape.BondOrder(b.Order), shape.DefaultBondSpacing*atomScale, bondColor, bondWidth*atomScale))
	}
	s.Add(bonds)

	atoms := scene.Group("atoms")
	for i, a := range m.Atoms {
		atoms.Append(shape.Atom(s, shape.AtomSpec{
			Element:   a.Element,
			At:        pts[i],
			Radius:    a.Radius,
			Label:     a.Label,
			Scale:     atomScale,
			ShowLabel: cv.ShowLabels,
		}))
		info, _ := shape.Element(a.Element)
		s.Overlay.Points = append(s.Overlay.Points, scene.OverlayPoint{Name: info.Symbol, At: pts[i]})
	}
	s.Add(atoms)
	return s
}

// atomScaleFor shrinks default atom radii when the shortest bond would let
// two default-sized atoms swallow it.
func atomScaleFor(m Molecule, pts []geom.Point) float64 {
	shortest := math.Inf(1)
	for _, b := range m.Bonds {
		if m.validBond(b) {
			shortest = math.Min(shortest, pts[b.From].Dist(pts[b.To]))
		}
	}
	if math.IsInf(shortest, 1) {
		return 1
	}
	return geom.Clamp(shortest/(2*24*0.8), 0.4, 1)
}
