// SPDX-License-Identifier: MIT
// Package: diagramkit/physics

package physics_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/diagramkit/geom"
	"github.com/katalvlaran/diagramkit/physics"
	"github.com/katalvlaran/diagramkit/scene"
)

func overlayPoint(t *testing.T, s *scene.Scene, name string) geom.Point {
	t.Helper()
	for _, p := range s.Overlay.Points {
		if p.Name == name {
			return p.At
		}
	}
	t.Fatalf("overlay point %q not found", name)
	return geom.Point{}
}

func TestSeriesCircuit_FixedPitch(t *testing.T) {
	c := physics.SeriesCircuit{Components: []string{"battery", "resistor", "bulb"}}
	s := physics.DrawSeries(c, scene.DefaultCanvas())

	syms := s.Find("symbol")
	require.Len(t, syms, 3)
	assert.Equal(t, "battery", syms[0].Name)
	assert.Equal(t, "resistor", syms[1].Name)
	assert.Equal(t, "bulb", syms[2].Name)

	places, _ := c.Layout(scene.DefaultWidth, scene.DefaultHeight)
	require.Len(t, places, 3)
	for i := 1; i < len(places); i++ {
		assert.InDelta(t, physics.ComponentPitch, places[i].At.Dist(places[i-1].At), 1e-9)
	}
	assert.InDelta(t, physics.ComponentPitch, overlayPoint(t, s, "resistor").X-overlayPoint(t, s, "battery").X, 1e-9)
}

func TestSeriesCircuit_UnknownTokenTakesNoSlot(t *testing.T) {
	with := physics.SeriesCircuit{Components: []string{"battery", "flux-capacitor", "resistor"}}
	without := physics.SeriesCircuit{Components: []string{"battery", "resistor"}}

	a, _ := with.Layout(400, 300)
	b, _ := without.Layout(400, 300)
	assert.Equal(t, b, a)
	assert.Equal(t, 2, physics.DrawSeries(with, scene.DefaultCanvas()).Count("symbol"))

	err := with.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, physics.ErrUnknownComponent)
}

func TestSeriesCircuit_OverflowWrapsToBottomWire(t *testing.T) {
	c := physics.SeriesCircuit{Components: []string{"cell", "cell", "cell", "resistor", "bulb"}}
	places, loop := c.Layout(400, 300)
	require.Len(t, places, 5)
	for _, p := range places[:3] {
		assert.Equal(t, loop.Y, p.At.Y)
	}
	for _, p := range places[3:] {
		assert.Equal(t, loop.Bottom(), p.At.Y)
	}
	assert.InDelta(t, physics.ComponentPitch, places[3].At.X-places[4].At.X, 1e-9)
}

func TestSeriesCircuit_Fits(t *testing.T) {
	seven := physics.SeriesCircuit{Components: []string{"battery", "resistor", "bulb", "switch", "ammeter", "capacitor", "diode"}}
	require.NoError(t, seven.Validate())

	err := seven.Fits(400, 300)
	require.Error(t, err)
	assert.ErrorIs(t, err, physics.ErrInvalidParameter)

	// 600 px holds five per wire, so all seven are placed.
	require.NoError(t, seven.Fits(600, 300))
	places, loop := seven.Layout(600, 300)
	require.Len(t, places, 7)
	for i, p := range places {
		assert.GreaterOrEqual(t, p.At.X, 0.0, "component %d", i)
		assert.LessOrEqual(t, p.At.X, 600.0, "component %d", i)
	}
	assert.Equal(t, loop.Bottom(), places[6].At.Y)

	// Unknown tokens take no slot, so they never count against the room.
	six := physics.SeriesCircuit{Components: []string{"cell", "cell", "cell", "nope", "bulb", "bulb", "bulb"}}
	assert.NoError(t, six.Fits(400, 300))
}

func TestParallelCircuit_Fits(t *testing.T) {
	long := physics.ParallelCircuit{Source: "battery", Branches: [][]string{
		{"resistor", "resistor", "resistor", "resistor", "resistor", "resistor", "resistor", "resistor"},
	}}
	require.NoError(t, long.Validate())
	assert.ErrorIs(t, long.Fits(400, 300), physics.ErrInvalidParameter)
	require.NoError(t, long.Fits(1000, 300))

	for _, w := range []float64{400, 1000} {
		_, branches, rails := long.Layout(w, 300)
		assert.GreaterOrEqual(t, rails.X, 0.0)
		assert.LessOrEqual(t, rails.Right(), w)
		for _, p := range branches[0] {
			assert.Greater(t, p.At.X, rails.X, "width %v", w)
			assert.Less(t, p.At.X, rails.Right(), "width %v", w)
		}
	}
	_, branches, _ := long.Layout(400, 300)
	assert.Len(t, branches[0], 2)
}

func TestParallelCircuit_Layout(t *testing.T) {
	c := physics.ParallelCircuit{Source: "cell", Branches: [][]string{{"bulb", "switch"}, {"resistor"}, {}}}
	require.NoError(t, c.Validate())
	src, branches, rails := c.Layout(400, 300)
	assert.True(t, src.Vertical)
	assert.Equal(t, rails.X, src.At.X)
	require.Len(t, branches, 3)
	assert.Len(t, branches[0], 2)
	assert.InDelta(t, physics.ComponentPitch, branches[0][1].At.X-branches[0][0].At.X, 1e-9)
	assert.Less(t, branches[0][0].At.Y, branches[1][0].At.Y)

	s := physics.DrawParallel(c, scene.DefaultCanvas())
	assert.Equal(t, 4, s.Count("symbol"))

	assert.ErrorIs(t, physics.ParallelCircuit{}.Validate(), physics.ErrInvalidParameter)
}

func TestIncline_Forces(t *testing.T) {
	c := physics.Incline{AngleDeg: 30, Mass: 2, Friction: 0.1, ShowForces: true}
	w, n, f := c.Forces()
	assert.InDelta(t, 19.6, w, 1e-9)
	assert.InDelta(t, 19.6*math.Cos(math.Pi/6), n, 1e-9)
	assert.InDelta(t, 0.1*n, f, 1e-9)
	assert.Greater(t, c.Acceleration(), 0.0)

	s := physics.DrawIncline(c, scene.DefaultCanvas())
	require.Len(t, s.Overlay.Forces, 3)
	names := []string{s.Overlay.Forces[0].Name, s.Overlay.Forces[1].Name, s.Overlay.Forces[2].Name}
	assert.Equal(t, []string{"weight", "normal", "friction"}, names)

	weight := s.Overlay.Forces[0]
	assert.InDelta(t, 0, weight.Vector.X, 1e-9)
	assert.InDelta(t, physics.MaxForceLength, weight.Vector.Y, 1e-9)
	// Normal is perpendicular to the slope and points up.
	foot, top := overlayPoint(t, s, "foot"), overlayPoint(t, s, "top")
	normal := s.Overlay.Forces[1].Vector
	assert.InDelta(t, 0, normal.Dot(top.Sub(foot)), 1e-6)
	assert.Less(t, normal.Y, 0.0)
	assert.Equal(t, 1, s.Count("block"))
	assert.Equal(t, 1, s.Count("forces"))
}

func TestIncline_StaticFrictionCapped(t *testing.T) {
	c := physics.Incline{AngleDeg: 10, Mass: 1, Friction: 0.9}
	w, _, f := c.Forces()
	assert.InDelta(t, w*math.Sin(10*math.Pi/180), f, 1e-9)
	assert.Equal(t, 0.0, c.Acceleration())

	s := physics.DrawIncline(c, scene.DefaultCanvas())
	assert.Equal(t, 0, s.Count("forces"))
	assert.Len(t, s.Overlay.Forces, 3)
}

func TestIncline_Validate(t *testing.T) {
	tests := []struct {
		name string
		cfg  physics.Incline
		ok   bool
	}{
		{"default", physics.DefaultIncline(), true},
		{"flat", physics.Incline{AngleDeg: 0, Mass: 1}, false},
		{"vertical", physics.Incline{AngleDeg: 90, Mass: 1}, false},
		{"massless", physics.Incline{AngleDeg: 20}, false},
		{"negative friction", physics.Incline{AngleDeg: 20, Mass: 1, Friction: -1}, false},
		{"nan", physics.Incline{AngleDeg: math.NaN(), Mass: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, physics.ErrInvalidParameter)
		})
	}
}

func TestElectricField_Dipole(t *testing.T) {
	c := physics.DefaultElectricField()
	f := physics.FieldFrame(400, 300)
	lines := c.FieldLines(f)
	require.Len(t, lines, physics.DefaultLines)

	plus := geom.Pt(-2, 0)
	r0 := 13.0 / f.ScaleX
	for _, l := range lines {
		assert.InDelta(t, r0, l[0].Dist(plus), 1e-9)
	}
	// The line leaving straight towards the negative charge ends on it.
	toward := lines[0]
	assert.Less(t, toward[len(toward)-1].Dist(geom.Pt(2, 0)), r0+physics.FieldStep)

	s := physics.DrawField(c, scene.DefaultCanvas())
	assert.Equal(t, physics.DefaultLines, s.Count("field-line"))
	assert.Equal(t, 2, s.Count("charge"))
}

func TestElectricField_NegativeOnlySeedsLines(t *testing.T) {
	c := physics.ElectricField{Charges: []physics.Charge{{Q: -1}}, LinesPerCharge: 8}
	lines := c.FieldLines(physics.FieldFrame(400, 400))
	require.Len(t, lines, 8)
	for _, l := range lines {
		// Traced against the field, away from the lone negative charge.
		assert.Greater(t, l[len(l)-1].Len(), l[0].Len())
	}
}

func TestElectricField_Deterministic(t *testing.T) {
	c := physics.ElectricField{Charges: []physics.Charge{{X: -1, Y: 1, Q: 2}, {X: 2, Y: -1, Q: -1}, {X: 0, Y: -2, Q: 1}}}
	a := c.FieldLines(physics.FieldFrame(400, 300))
	b := c.FieldLines(physics.FieldFrame(400, 300))
	assert.Equal(t, a, b)
}

func TestWave_Extrema(t *testing.T) {
	w := physics.Wave{Amplitude: 1.5, Wavelength: 2, Cycles: 2}
	crests, troughs := w.Extrema()
	assert.InDeltaSlice(t, []float64{0.5, 2.5}, crests, 1e-9)
	assert.InDeltaSlice(t, []float64{1.5, 3.5}, troughs, 1e-9)
	assert.InDelta(t, 1.5, w.Y(0.5), 1e-9)

	pts := w.Samples()
	assert.Len(t, pts, 2*physics.SamplesPerCycle+1)
	assert.InDelta(t, 0, pts[0].Y, 1e-12)
	assert.InDelta(t, 4, pts[len(pts)-1].X, 1e-12)
	for _, p := range pts {
		assert.InDelta(t, w.Y(p.X), p.Y, 1e-9)
	}
}

func TestWave_Markers(t *testing.T) {
	s := physics.DrawWave(physics.DefaultWave(), scene.DefaultCanvas())
	assert.Equal(t, 1, s.Count("wave"))
	assert.Equal(t, 2, s.Count("dimension"))
	labels := s.Find("marker-label")
	require.Len(t, labels, 2)
	assert.Equal(t, "λ = 2", labels[0].Text)
	assert.Equal(t, "A = 1", labels[1].Text)

	cv := scene.DefaultCanvas()
	cv.ShowLabels = false
	assert.Equal(t, 0, physics.DrawWave(physics.DefaultWave(), cv).Count("markers"))
}

func TestProjectile_Trajectory(t *testing.T) {
	p := physics.Projectile{Speed: 20, AngleDeg: 45, Gravity: 10}
	assert.InDelta(t, 40, p.Range(), 1e-9)
	assert.InDelta(t, 10, p.MaxHeight(), 1e-9)
	assert.InDelta(t, 2*math.Sqrt2, p.FlightTime(), 1e-9)

	path := p.Trajectory()
	require.Len(t, path, physics.TrajectorySamples)
	assert.Equal(t, geom.Point{}, path[0])
	assert.Equal(t, geom.Pt(40, 0), path[len(path)-1])

	s := physics.DrawProjectile(p, scene.DefaultCanvas())
	f := p.ProjectileFrame(scene.DefaultWidth, scene.DefaultHeight)
	assert.InDelta(t, f.ScaleX, f.ScaleY, 1e-9)
	apex := overlayPoint(t, s, "apex")
	landing := overlayPoint(t, s, "landing")
	launch := overlayPoint(t, s, "launch")
	assert.InDelta(t, f.PixelX(20), apex.X, 1e-9)
	assert.InDelta(t, f.PixelY(10), apex.Y, 1e-9)
	assert.InDelta(t, launch.Y, landing.Y, 1e-9)
	assert.True(t, f.InPixelRect(apex))
}

func TestLever_Torques(t *testing.T) {
	each, net := physics.DefaultLever().Torques()
	require.Len(t, each, 2)
	assert.Less(t, each[0], 0.0)
	assert.Greater(t, each[1], 0.0)
	assert.InDelta(t, 0, net, 1e-9)

	s := physics.DrawLever(physics.Lever{Length: 1, Fulcrum: 0.5, Loads: []physics.Load{{Position: 1, Mass: 2}}}, scene.DefaultCanvas())
	require.Len(t, s.Overlay.Moments, 1)
	assert.True(t, s.Overlay.Moments[0].Clockwise)
	assert.InDelta(t, 9.8, s.Overlay.Moments[0].Magnitude, 1e-9)
	caption := s.Find("caption")
	require.Len(t, caption, 1)
	assert.Equal(t, "net moment 9.8 N·m clockwise", caption[0].Text)
}
