package graphs_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/diagramkit/geom"
	"github.com/katalvlaran/diagramkit/graphs"
	"github.com/katalvlaran/diagramkit/scene"
)

// TestPlot_Parabola: one branch, vertex overlay at the origin.
func TestPlot_Parabola(t *testing.T) {
	cv := scene.DefaultCanvas()
	s := graphs.Plot(graphs.DefaultParabola(), cv)
	assert.Equal(t, 1, s.Count("branch"))
	assert.Equal(t, 1, s.Count("grid"))
	assert.Equal(t, 1, s.Count("equation"))

	f := graphs.Frame(graphs.DefaultParabola(), cv.Width, cv.Height)
	require.Len(t, s.Overlay.Points, 1)
	assert.Equal(t, "vertex", s.Overlay.Points[0].Name)
	assert.InDelta(t, f.OriginX, s.Overlay.Points[0].At.X, 1e-9)
	assert.InDelta(t, f.OriginY, s.Overlay.Points[0].At.Y, 1e-9)
}

// TestPlot_HyperbolaBranches: two disjoint branches plus two asymptotes.
func TestPlot_HyperbolaBranches(t *testing.T) {
	s := graphs.Plot(graphs.Hyperbola{A: 2, B: 2}, scene.DefaultCanvas())
	branches := s.Find("branch")
	require.Len(t, branches, 2)
	assert.Equal(t, 1, branches[0].Path.Subpaths())
	assert.Equal(t, 2, s.Count("asymptote"))
}

// TestPlot_CanvasFlags hides grid and labels.
func TestPlot_CanvasFlags(t *testing.T) {
	s := graphs.Plot(graphs.DefaultLinear(), scene.Canvas{Width: 200, Height: 150})
	assert.Zero(t, s.Count("grid"))
	assert.Zero(t, s.Count("equation"))
	assert.Zero(t, s.Count("tick-label"))
	assert.Equal(t, 200.0, s.Width)
	assert.Equal(t, 150.0, s.Height)
}

// TestPlot_Deterministic: identical configs yield identical scenes.
func TestPlot_Deterministic(t *testing.T) {
	fns := []graphs.Function{
		graphs.DefaultLinear(), graphs.DefaultParabola(), graphs.DefaultCubic(),
		graphs.DefaultHyperbola(), graphs.DefaultReciprocal(), graphs.DefaultExponential(),
		graphs.DefaultTrig(), graphs.DefaultNormal(), graphs.DefaultODE(),
		graphs.Trig{Func: "tan", Amplitude: 1, Frequency: 1},
	}
	for _, fn := range fns {
		require.NoError(t, fn.Validate(), fn.Equation())
		a := graphs.Plot(fn, scene.DefaultCanvas())
		b := graphs.Plot(fn, scene.DefaultCanvas())
		assert.Equal(t, a, b)
		assert.Positive(t, a.Count("branch"), fn.Equation())
	}
}

// TestPlot_ODEOneBranchSetPerConstant.
func TestPlot_ODEOneBranchSetPerConstant(t *testing.T) {
	cfg := graphs.ODE{Kind: "polynomial", K: 0.5, Constants: []float64{-2, 0, 2}}
	s := graphs.Plot(cfg, scene.DefaultCanvas())
	branches := s.Find("branch")
	require.Len(t, branches, 3)
	assert.NotEqual(t, branches[0].Style.Stroke, branches[1].Style.Stroke)
}

// TestNormal_DefaultWindow spans μ±4σ and 1.2·peak.
func TestNormal_DefaultWindow(t *testing.T) {
	n := graphs.Normal{Mu: 10, Sigma: 2}
	r := n.Range()
	assert.Equal(t, 2.0, r.XMin)
	assert.Equal(t, 18.0, r.XMax)
	assert.Equal(t, 0.0, r.YMin)
	assert.InDelta(t, 1.2/(2*math.Sqrt(2*math.Pi)), r.YMax, 1e-12)
}

// TestEquations formats coefficients conventionally.
func TestEquations(t *testing.T) {
	cases := []struct {
		fn   graphs.Function
		want string
	}{
		{graphs.Linear{M: 2, B: -1}, "y = 2x − 1"},
		{graphs.Linear{}, "y = 0"},
		{graphs.Parabola{A: 1}, "y = x²"},
		{graphs.Parabola{A: -1, B: 0.5, C: 3}, "y = −x² + 0.5x + 3"},
		{graphs.Cubic{A: 1, D: -8}, "y = x³ − 8"},
		{graphs.Reciprocal{A: 1, H: 2, K: -1}, "y = 1/(x − 2) − 1"},
		{graphs.Hyperbola{A: 2, B: 3}, "x²/4 − y²/9 = 1"},
		{graphs.Exponential{A: 1, K: 0.5}, "y = e^(0.5x)"},
		{graphs.Trig{Func: "cos", Amplitude: 2, Frequency: 1, Phase: -1}, "y = 2cos(x − 1)"},
		{graphs.ODE{Kind: "growth", K: 0.5}, "dy/dx = 0.5y"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.fn.Equation())
	}
}

// TestValidate rejects non-finite and out-of-domain values.
func TestValidate(t *testing.T) {
	bad := []interface{ Validate() error }{
		graphs.Linear{M: math.NaN()},
		graphs.Parabola{A: math.Inf(1)},
		graphs.Hyperbola{A: 0, B: 1},
		graphs.Normal{Sigma: 0},
		graphs.Trig{Func: "sec", Amplitude: 1},
		graphs.ODE{Kind: "chaos"},
		graphs.Exponential{A: 1, K: 500},
		graphs.Linear{M: 1, Window: graphs.Window{XMin: 2, XMax: 1, YMin: 0, YMax: 1}},
		graphs.RegularPolygon{Sides: 2},
		graphs.Cube{Depth: 3},
	}
	for _, cfg := range bad {
		err := cfg.Validate()
		require.Error(t, err, "%#v", cfg)
		assert.True(t, errors.Is(err, graphs.ErrInvalidParameter))
	}
	assert.NoError(t, graphs.DefaultRegularPolygon().Validate())
	assert.NoError(t, graphs.DefaultCube().Validate())
}

// TestPolygon_VerticesOnCircle checks every overlay vertex sits at the radius.
func TestPolygon_VerticesOnCircle(t *testing.T) {
	cv := scene.DefaultCanvas()
	for n := 3; n <= 12; n++ {
		s := graphs.Polygon(graphs.RegularPolygon{Sides: n, Radius: 80}, cv)
		require.Len(t, s.Overlay.Points, n)
		c := geom.Pt(cv.Width/2, cv.Height/2)
		for _, p := range s.Overlay.Points {
			assert.InDelta(t, 80, p.At.Dist(c), 1e-9)
		}
	}
	assert.InDelta(t, 120, graphs.DefaultRegularPolygon().InteriorAngle(), 1e-12)
}

// TestCube_Projection: three dashed hidden edges, three faces, eight vertices
// that fit the canvas.
func TestCube_Projection(t *testing.T) {
	cv := scene.DefaultCanvas()
	s := graphs.CubeDiagram(graphs.DefaultCube(), cv)
	hidden := s.Find("hidden-edges")
	require.Len(t, hidden, 1)
	assert.Len(t, hidden[0].Children, 3)
	assert.Equal(t, 3, s.Count("face"))
	require.Len(t, s.Overlay.Points, 8)
	for _, p := range s.Overlay.Points {
		assert.True(t, cv.Bounds().Contains(p.At))
	}

	v := graphs.DefaultCube().Vertices(cv.Width, cv.Height)
	assert.InDelta(t, v[0].Dist(v[1]), v[1].Dist(v[2]), 1e-9, "front face is square")
	off := v[4].Sub(v[0])
	assert.Greater(t, off.X, 0.0)
	assert.Less(t, off.Y, 0.0, "45° recedes up and to the right")
}
