package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/diagramkit/geom"
)

const tol = 1e-9

// TestFrame_EdgeMapping checks that the logical bounds land on the pixel
// rectangle edges and that logical (0,0) lands on the origin.
func TestFrame_EdgeMapping(t *testing.T) {
	t.Parallel()

	r := geom.Range{XMin: -3, XMax: 7, YMin: -2, YMax: 8}
	px := geom.Rect{X: 40, Y: 20, W: 300, H: 200}
	f := geom.NewFrame(r, px)

	assert.InDelta(t, px.X, f.ToPixel(r.XMin, 0).X, tol, "xmin maps to left edge")
	assert.InDelta(t, px.X+px.W, f.ToPixel(r.XMax, 0).X, tol, "xmax maps to right edge")
	assert.InDelta(t, px.Y, f.ToPixel(0, r.YMax).Y, tol, "ymax maps to top edge")
	assert.InDelta(t, px.Y+px.H, f.ToPixel(0, r.YMin).Y, tol, "ymin maps to bottom edge")

	o := f.ToPixel(0, 0)
	assert.InDelta(t, f.OriginX, o.X, tol)
	assert.InDelta(t, f.OriginY, o.Y, tol)
	assert.InDelta(t, 30.0, f.ScaleX, tol)
	assert.InDelta(t, 20.0, f.ScaleY, tol)
}

// TestFrame_YInverted checks that increasing logical y decreases pixel y.
func TestFrame_YInverted(t *testing.T) {
	t.Parallel()

	f := geom.NewFrame(geom.Symmetric(5, 5), geom.Rect{W: 100, H: 100})
	assert.Less(t, f.ToPixel(0, 1).Y, f.ToPixel(0, 0).Y)
	assert.Greater(t, f.ToPixel(1, 0).X, f.ToPixel(0, 0).X)
}

// TestFrame_RoundTrip verifies ToLogical inverts ToPixel.
func TestFrame_RoundTrip(t *testing.T) {
	t.Parallel()

	f := geom.NewFrame(geom.Range{XMin: -1.5, XMax: 2.5, YMin: 0, YMax: 0.4}, geom.Rect{X: 10, Y: 10, W: 380, H: 280})
	for _, p := range []geom.Point{{X: 0, Y: 0}, {X: -1.5, Y: 0.4}, {X: 2.25, Y: 0.1}} {
		x, y := f.ToLogical(f.ToPixel(p.X, p.Y))
		assert.InDelta(t, p.X, x, 1e-9)
		assert.InDelta(t, p.Y, y, 1e-9)
	}
}

// TestFrame_DegenerateRanges checks that bad input degrades to a finite,
// strictly positive frame instead of failing.
func TestFrame_DegenerateRanges(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		r    geom.Range
		px   geom.Rect
	}{
		{"zero width", geom.Range{XMin: 2, XMax: 2, YMin: -1, YMax: 1}, geom.Rect{W: 100, H: 100}},
		{"zero height", geom.Range{XMin: -1, XMax: 1, YMin: 3, YMax: 3}, geom.Rect{W: 100, H: 100}},
		{"reversed", geom.Range{XMin: 5, XMax: -5, YMin: 5, YMax: -5}, geom.Rect{W: 100, H: 100}},
		{"nan", geom.Range{XMin: math.NaN(), XMax: 1, YMin: math.Inf(1), YMax: 1}, geom.Rect{W: 100, H: 100}},
		{"empty pixels", geom.Symmetric(1, 1), geom.Rect{W: 0, H: -4}},
		{"all zero", geom.Range{}, geom.Rect{}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			f := geom.NewFrame(tc.r, tc.px)
			require.Greater(t, f.ScaleX, 0.0)
			require.Greater(t, f.ScaleY, 0.0)
			require.False(t, math.IsInf(f.ScaleX, 0) || math.IsNaN(f.ScaleX))
			require.False(t, math.IsInf(f.ScaleY, 0) || math.IsNaN(f.ScaleY))
			p := f.ToPixel(f.Range.XMin, f.Range.YMin)
			assert.True(t, p.Finite())
			assert.GreaterOrEqual(t, f.Range.Width(), geom.MinExtent*0.999)
			assert.GreaterOrEqual(t, f.Range.Height(), geom.MinExtent*0.999)
		})
	}
}

// TestFrame_ReversedRangeIsSwapped confirms that a reversed window behaves
// like its ordered counterpart.
func TestFrame_ReversedRangeIsSwapped(t *testing.T) {
	t.Parallel()

	px := geom.Rect{W: 200, H: 100}
	a := geom.NewFrame(geom.Range{XMin: 4, XMax: -4, YMin: 2, YMax: -2}, px)
	b := geom.NewFrame(geom.Range{XMin: -4, XMax: 4, YMin: -2, YMax: 2}, px)
	assert.Equal(t, b, a)
}

// TestFrame_Ticks checks nice tick generation stays inside the range.
func TestFrame_Ticks(t *testing.T) {
	t.Parallel()

	f := geom.NewFrame(geom.Symmetric(5, 5), geom.Rect{W: 100, H: 100})
	ticks := f.Ticks(geom.AxisX, 11)
	require.NotEmpty(t, ticks)
	assert.LessOrEqual(t, len(ticks), 11)
	assert.Contains(t, ticks, 0.0)
	for i, v := range ticks {
		assert.GreaterOrEqual(t, v, -5.0)
		assert.LessOrEqual(t, v, 5.0)
		if i > 0 {
			assert.Greater(t, v, ticks[i-1])
		}
	}
	assert.Nil(t, f.Ticks(geom.AxisY, 0))
}

// TestRect_Inset covers ordinary and collapsing insets.
func TestRect_Inset(t *testing.T) {
	t.Parallel()

	r := geom.Rect{X: 0, Y: 0, W: 100, H: 50}
	assert.Equal(t, geom.Rect{X: 10, Y: 10, W: 80, H: 30}, r.Inset(10))
	c := r.Inset(40)
	assert.Equal(t, 0.0, c.H)
	assert.Equal(t, 25.0, c.Y)
}
