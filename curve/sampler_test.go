package curve_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/diagramkit/curve"
	"github.com/katalvlaran/diagramkit/geom"
)

func testFrame() geom.Frame {
	return geom.NewFrame(geom.Symmetric(5, 5), geom.Rect{X: 20, Y: 20, W: 360, H: 260})
}

// TestSample_ParabolaMinimumAtOrigin: y = x² bottoms out at the origin's
// pixel x.
func TestSample_ParabolaMinimumAtOrigin(t *testing.T) {
	f := testFrame()
	branches := curve.Sample(curve.Spec{Family: curve.Parabola, Params: curve.Params{A: 1}}, f)
	require.Len(t, branches, 1)

	low := branches[0].Points[0]
	for _, p := range branches[0].Points {
		if p.Y > low.Y {
			low = p
		}
	}
	assert.InDelta(t, f.OriginX, low.X, 1e-9)
	assert.InDelta(t, f.OriginY, low.Y, 1e-9)
}

// TestSample_HyperbolaTwoBranches: a=b=2 gives two branches, each with
// |x| ≥ a, one on either side of the y axis.
func TestSample_HyperbolaTwoBranches(t *testing.T) {
	f := testFrame()
	branches := curve.Sample(curve.Spec{Family: curve.Hyperbola, Params: curve.Params{A: 2, B: 2}}, f)
	require.Len(t, branches, 2)

	for i, b := range branches {
		require.GreaterOrEqual(t, len(b.Points), 2)
		for _, p := range b.Points {
			x, _ := f.ToLogical(p)
			assert.GreaterOrEqual(t, math.Abs(x), 2-1e-9)
			if i == 0 {
				assert.Positive(t, x)
			} else {
				assert.Negative(t, x)
			}
		}
	}
}

// assertNoCrossing checks every segment stays on one side of every pole.
func assertNoCrossing(t *testing.T, f geom.Frame, branches []curve.Branch, poles []float64) {
	t.Helper()
	for _, b := range branches {
		for i := 1; i < len(b.Points); i++ {
			x0, _ := f.ToLogical(b.Points[i-1])
			x1, _ := f.ToLogical(b.Points[i])
			for _, p := range poles {
				assert.False(t, (x0-p)*(x1-p) < 0, "segment %v→%v crosses pole %v", x0, x1, p)
			}
		}
	}
}

// TestSample_AsymptoteSafety covers reciprocal and tangent families over
// several parameter sets.
func TestSample_AsymptoteSafety(t *testing.T) {
	f := geom.NewFrame(geom.Range{XMin: -6, XMax: 6, YMin: -1000, YMax: 1000}, geom.Rect{W: 400, H: 300})

	specs := []curve.Spec{
		{Family: curve.Reciprocal, Params: curve.Params{A: 1}},
		{Family: curve.Reciprocal, Params: curve.Params{A: -3, H: 1.5, K: 2}},
		{Family: curve.Reciprocal, Params: curve.Params{A: 1, H: 0.01}, Samples: 7},
		{Family: curve.Trig, Params: curve.Params{Func: curve.Tan, Amplitude: 1, Frequency: 1}},
		{Family: curve.Trig, Params: curve.Params{Func: curve.Tan, Amplitude: 2, Frequency: -2.5, Phase: 0.3}},
	}
	for _, s := range specs {
		branches := curve.Sample(s, f)
		poles := s.Discontinuities(f.Range.XMin, f.Range.XMax)
		require.NotEmpty(t, poles)
		assert.GreaterOrEqual(t, len(branches), len(poles)+1, "%v", s)
		assertNoCrossing(t, f, branches, poles)
	}

	// The y=1/x frame can hold every sample; the split alone prevents the joint.
	recip := curve.Sample(curve.Spec{Family: curve.Reciprocal, Params: curve.Params{A: 1}}, f)
	assert.Len(t, recip, 2)
}

// TestSample_DenseTangent: past MaxPoles poles the domain is cut short
// rather than sampled across the remaining asymptotes.
func TestSample_DenseTangent(t *testing.T) {
	f := testFrame()
	for _, freq := range []float64{50, 400, -1000} {
		s := curve.Spec{Family: curve.Trig, Params: curve.Params{Func: curve.Tan, Amplitude: 1, Frequency: freq}}
		branches := curve.Sample(s, f)
		require.NotEmpty(t, branches, "freq %v", freq)

		// Index of the pole interval holding logical x.
		interval := func(x float64) float64 {
			return math.Floor((freq*x - math.Pi/2) / math.Pi)
		}
		for _, b := range branches {
			for i := 1; i < len(b.Points); i++ {
				x0, _ := f.ToLogical(b.Points[i-1])
				x1, _ := f.ToLogical(b.Points[i])
				assert.Equal(t, interval(x0), interval(x1), "freq %v: segment %v→%v spans a pole", freq, x0, x1)
			}
		}
		if freq == 400 {
			poles := s.Discontinuities(-5, 5)
			assert.Len(t, poles, curve.MaxPoles)
			last := branches[len(branches)-1].Points
			x, _ := f.ToLogical(last[len(last)-1])
			assert.Less(t, x, poles[len(poles)-1])
		}
	}
}

// TestSample_TanPoles lists the poles of tan(x) on [-6, 6].
func TestSample_TanPoles(t *testing.T) {
	s := curve.Spec{Family: curve.Trig, Params: curve.Params{Func: curve.Tan, Amplitude: 1, Frequency: 1}}
	poles := s.Discontinuities(-6, 6)
	want := []float64{-3 * math.Pi / 2, -math.Pi / 2, math.Pi / 2, 3 * math.Pi / 2}
	require.Len(t, poles, len(want))
	for i := range want {
		assert.InDelta(t, want[i], poles[i], 1e-12)
	}
	assert.Empty(t, curve.Spec{Family: curve.Trig, Params: curve.Params{Func: curve.Sin, Frequency: 1}}.Discontinuities(-6, 6))
}

// TestSample_OffFrameDropped: every emitted point lies in the pixel rect.
func TestSample_OffFrameDropped(t *testing.T) {
	f := testFrame()
	s := curve.Spec{Family: curve.Cubic, Params: curve.Params{A: 1, C: -3}}
	for _, b := range curve.Sample(s, f) {
		for _, p := range b.Points {
			assert.True(t, f.InPixelRect(p))
		}
	}
}

// TestSample_ODEFamily tags branches with their constant index.
func TestSample_ODEFamily(t *testing.T) {
	f := testFrame()
	s := curve.Spec{Family: curve.ODE, Params: curve.Params{ODE: curve.Polynomial, K: 0.5, Constants: []float64{-2, 0, 2}}}
	branches := curve.Sample(s, f)
	require.Len(t, branches, 3)
	for i, b := range branches {
		assert.Equal(t, i, b.Curve)
	}
}

// TestSample_Resolution: defaults and clamps.
func TestSample_Resolution(t *testing.T) {
	f := geom.NewFrame(geom.Range{XMin: -5, XMax: 5, YMin: -100, YMax: 100}, geom.Rect{W: 400, H: 300})
	count := func(n int) int {
		b := curve.Sample(curve.Spec{Family: curve.Linear, Params: curve.Params{A: 1}, Samples: n}, f)
		require.Len(t, b, 1)
		return len(b[0].Points)
	}
	assert.Equal(t, 40, count(0))
	assert.Equal(t, 2, count(1))
	assert.Equal(t, curve.MaxSamples, count(5000))
	assert.Equal(t, 121, curve.DefaultSamples(curve.Normal))
}

// TestSample_Normal peaks at the mean.
func TestSample_Normal(t *testing.T) {
	s := curve.Spec{Family: curve.Normal, Params: curve.Params{Mu: 1, Sigma: 0.5}}
	peak := s.Eval(1, 0)
	assert.InDelta(t, 1/(0.5*math.Sqrt(2*math.Pi)), peak, 1e-12)
	assert.Less(t, s.Eval(2, 0), peak)
	assert.True(t, math.IsNaN(curve.Spec{Family: curve.Hyperbola}.Eval(1, 0)))
}
