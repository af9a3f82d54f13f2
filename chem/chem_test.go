package chem_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/diagramkit/chem"
	"github.com/katalvlaran/diagramkit/scene"
)

// assertBondsFirst fails if any "atom" fragment precedes a "bond" fragment.
func assertBondsFirst(t *testing.T, s *scene.Scene) {
	t.Helper()
	seenAtom := false
	s.Walk(func(n *scene.Node, _ int) bool {
		switch n.Class {
		case "atom":
			seenAtom = true
		case "bond":
			assert.False(t, seenAtom, "bond emitted after an atom")
		}
		return true
	})
}

// TestDraw_SingleAtom: one carbon, no bonds.
func TestDraw_SingleAtom(t *testing.T) {
	s := chem.Draw(chem.Molecule{Atoms: []chem.Atom{{Element: "C"}}}, scene.DefaultCanvas())
	assert.Equal(t, 1, s.Count("atom"))
	assert.Equal(t, 0, s.Count("bond"))
	require.Len(t, s.Overlay.Points, 1)
	assert.Equal(t, 200.0, s.Overlay.Points[0].At.X)
	assert.Equal(t, 150.0, s.Overlay.Points[0].At.Y)
}

// TestDraw_ZOrder holds for every small molecule, benzene and a custom one.
func TestDraw_ZOrder(t *testing.T) {
	cv := scene.DefaultCanvas()
	for _, k := range []string{"CO2", "H2O", "NH3", "CH4", "H2", "O2", "N2", "HCl"} {
		s := chem.DrawSmall(chem.SmallMolecule{Kind: k}, cv)
		assert.Positive(t, s.Count("bond"), k)
		assertBondsFirst(t, s)
	}
	assertBondsFirst(t, chem.DrawBenzene(chem.DefaultBenzene(), cv))
	assertBondsFirst(t, chem.DrawBenzene(chem.Benzene{}, cv))

	m := chem.Molecule{
		Atoms: []chem.Atom{{Element: "O"}, {Element: "C", X: 1}, {Element: "O", X: 2}},
		Bonds: []chem.Bond{{From: 1, To: 0, Order: 2}, {From: 1, To: 2, Order: 2}},
	}
	assertBondsFirst(t, chem.Draw(m, cv))
}

// TestDraw_SkipsBadBonds ignores missing endpoints and self-bonds.
func TestDraw_SkipsBadBonds(t *testing.T) {
	m := chem.Molecule{
		Atoms: []chem.Atom{{Element: "H"}, {Element: "H", X: 1}},
		Bonds: []chem.Bond{{From: 0, To: 1, Order: 1}, {From: 0, To: 5}, {From: 1, To: 1}, {From: -1, To: 0}},
	}
	s := chem.Draw(m, scene.DefaultCanvas())
	assert.Equal(t, 1, s.Count("bond"))
	err := m.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, chem.ErrBadBond))
}

// TestMolecule_BondOrder rejects orders past triple and draws a zero order
// as single.
func TestMolecule_BondOrder(t *testing.T) {
	atoms := []chem.Atom{{Element: "N"}, {Element: "N", X: 1}}
	tests := []struct {
		name  string
		order int
		lines int
		bad   bool
	}{
		{"zero is single", 0, 1, false},
		{"triple", 3, 3, false},
		{"seven", 7, 0, true},
		{"negative", -1, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := chem.Molecule{Atoms: atoms, Bonds: []chem.Bond{{From: 0, To: 1, Order: tt.order}}}
			err := m.Validate()
			if tt.bad {
				assert.ErrorIs(t, err, chem.ErrBadBond)
			} else {
				assert.NoError(t, err)
			}
			bonds := chem.Draw(m, scene.DefaultCanvas()).Find("bond")
			if tt.lines == 0 {
				assert.Empty(t, bonds)
				return
			}
			require.Len(t, bonds, 1)
			assert.Len(t, bonds[0].Children, tt.lines)
		})
	}
}

// TestMolecule_RadiusInPixels keeps an explicit radius while positions scale.
func TestMolecule_RadiusInPixels(t *testing.T) {
	near := chem.Molecule{Atoms: []chem.Atom{{Element: "C", Radius: 12}, {Element: "C", X: 1, Radius: 12}}, Bonds: []chem.Bond{{From: 0, To: 1}}}
	far := near
	far.Scale = 2 * chem.DefaultScale

	a := near.Layout(400, 300)
	b := far.Layout(400, 300)
	assert.InDelta(t, 2*a[0].Dist(a[1]), b[0].Dist(b[1]), 1e-9)

	for _, m := range []chem.Molecule{near, far} {
		var radii []float64
		chem.Draw(m, scene.DefaultCanvas()).Walk(func(n *scene.Node, _ int) bool {
			if n.Kind == scene.KindCircle {
				radii = append(radii, n.R)
			}
			return true
		})
		assert.Equal(t, []float64{12, 12}, radii)
	}
}

// TestSmallMolecule_Angles checks the water bond angle and CO2 linearity.
func TestSmallMolecule_Angles(t *testing.T) {
	w := chem.H2O.Molecule()
	require.Len(t, w.Atoms, 3)
	a1 := math.Atan2(w.Atoms[1].Y, w.Atoms[1].X)
	a2 := math.Atan2(w.Atoms[2].Y, w.Atoms[2].X)
	assert.InDelta(t, 104.5, math.Abs(a1-a2)*180/math.Pi, 1e-9)

	c := chem.CO2.Molecule()
	require.Len(t, c.Bonds, 2)
	assert.InDelta(t, 0, c.Atoms[1].Y, 1e-12)
	assert.InDelta(t, 0, c.Atoms[2].Y, 1e-12)
	assert.Equal(t, 2, c.Bonds[0].Order)

	n2 := chem.N2.Molecule()
	require.Len(t, n2.Bonds, 1)
	assert.Equal(t, 3, n2.Bonds[0].Order)

	k, ok := chem.ParseMoleculeKind("water")
	require.True(t, ok)
	assert.Equal(t, chem.H2O, k)
	assert.Equal(t, chem.GeometryTetrahedral, chem.CH4.Geometry())
	assert.True(t, errors.Is(chem.SmallMolecule{Kind: "XeF4"}.Validate(), chem.ErrUnknownMolecule))
}

// TestBenzene_Ring: six carbons on the ring radius, alternating orders.
func TestBenzene_Ring(t *testing.T) {
	m := chem.Benzene{Kekule: true}.Molecule()
	require.Len(t, m.Atoms, 6)
	require.Len(t, m.Bonds, 6)
	for i, a := range m.Atoms {
		assert.InDelta(t, 1, math.Hypot(a.X, a.Y), 1e-12)
		want := 1
		if i%2 == 0 {
			want = 2
		}
		assert.Equal(t, want, m.Bonds[i].Order)
	}
	assert.InDelta(t, -1, m.Atoms[0].Y, 1e-12, "first carbon on top")

	aromatic := chem.DrawBenzene(chem.Benzene{}, scene.DefaultCanvas())
	assert.Equal(t, 1, aromatic.Count("aromatic-ring"))
	assert.Equal(t, 6, aromatic.Count("atom"))
	assert.Equal(t, 12, chem.DrawBenzene(chem.DefaultBenzene(), scene.DefaultCanvas()).Count("atom"))
}

// TestBeaker_HalfFull: 125 of 250 mL puts the surface halfway up the body.
func TestBeaker_HalfFull(t *testing.T) {
	cv := scene.DefaultCanvas()
	b := chem.Beaker{Capacity: 250, FillLevel: 125}
	s := chem.DrawBeaker(b, cv)
	liquid := s.Find("liquid")
	require.Len(t, liquid, 1)

	body := b.Body(cv.Width, cv.Height)
	assert.InDelta(t, (body.Y+body.Bottom())/2, liquid[0].Box.Y, 1e-9)
	assert.InDelta(t, body.Bottom(), liquid[0].Box.Y+liquid[0].Box.H, 1e-9)
}

// TestBeaker_Clamps fill and capacity.
func TestBeaker_Clamps(t *testing.T) {
	assert.Equal(t, 1.0, chem.Beaker{Capacity: 100, FillLevel: 400}.Fraction())
	assert.Equal(t, 0.0, chem.Beaker{Capacity: 100, FillLevel: -5}.Fraction())
	assert.Equal(t, 0.5, chem.Beaker{Capacity: -1, FillLevel: 125}.Fraction())
	assert.Equal(t, 0.0, chem.Beaker{Capacity: 100, FillLevel: math.NaN()}.Fraction())

	empty := chem.DrawBeaker(chem.Beaker{Capacity: 100}, scene.DefaultCanvas())
	assert.Zero(t, empty.Count("liquid"))
	assert.Equal(t, 1, empty.Count("glass"))

	assert.True(t, errors.Is(chem.Beaker{Capacity: 0}.Validate(), chem.ErrInvalidParameter))
	assert.NoError(t, chem.DefaultBeaker().Validate())
}

// TestElement_Tile resolves defaults from the table.
func TestElement_Tile(t *testing.T) {
	e := chem.Element{Number: 8}.Resolved()
	assert.Equal(t, "O", e.Symbol)
	assert.Equal(t, "Oxygen", e.Name)
	assert.Equal(t, "nonmetal", e.Category)

	s := chem.DrawElement(chem.Element{Symbol: "na"}, scene.DefaultCanvas())
	syms := s.Find("element-symbol")
	require.Len(t, syms, 1)
	assert.Equal(t, "Na", syms[0].Text)
	assert.Equal(t, 1, s.Count("mass"))
	assert.Len(t, s.Filters, 1)

	placeholder := chem.Element{Number: 99}.Resolved()
	assert.Equal(t, "?", placeholder.Symbol)
	assert.Equal(t, 99, placeholder.Number)
	assert.Error(t, chem.Element{}.Validate())
}
