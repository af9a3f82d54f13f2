package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/diagramkit/geom"
)

// TestRegularPolygon_VerticesOnCircle verifies every vertex lies at the
// declared radius for a range of side counts.
func TestRegularPolygon_VerticesOnCircle(t *testing.T) {
	t.Parallel()

	c := geom.Pt(123.5, -42.25)
	for n := 3; n <= 12; n++ {
		for _, r := range []float64{0.5, 30, 1e4} {
			pts := geom.RegularPolygon(c, r, n)
			require.Len(t, pts, n)
			for i, p := range pts {
				assert.InDelta(t, r, p.Dist(c), r*1e-12+1e-12, "n=%d r=%g vertex %d", n, r, i)
			}
		}
	}
}

// TestRegularPolygon_FirstVertexUp checks the −90° start angle and the
// clockwise-on-screen order.
func TestRegularPolygon_FirstVertexUp(t *testing.T) {
	t.Parallel()

	pts := geom.RegularPolygon(geom.Pt(0, 0), 10, 4)
	assert.InDelta(t, 0.0, pts[0].X, 1e-9)
	assert.InDelta(t, -10.0, pts[0].Y, 1e-9)
	assert.InDelta(t, 10.0, pts[1].X, 1e-9)
	assert.InDelta(t, 0.0, pts[1].Y, 1e-9)
}

// TestRegularPolygon_Clamps covers too few sides and bad radii.
func TestRegularPolygon_Clamps(t *testing.T) {
	t.Parallel()

	assert.Len(t, geom.RegularPolygon(geom.Pt(0, 0), 1, 1), geom.MinPolygonSides)
	for _, p := range geom.RegularPolygon(geom.Pt(5, 5), math.NaN(), 6) {
		assert.Equal(t, geom.Pt(5, 5), p)
	}
}

// TestPoint_UnitAndPerp covers the zero-length fallback.
func TestPoint_UnitAndPerp(t *testing.T) {
	t.Parallel()

	assert.Equal(t, geom.Pt(1, 0), geom.Pt(0, 0).Unit())
	assert.Equal(t, geom.Pt(0, 1), geom.Pt(0, 0).Perp())
	u := geom.Pt(3, 4).Unit()
	assert.InDelta(t, 1.0, u.Len(), 1e-12)
	p := geom.Pt(3, 4).Perp()
	assert.InDelta(t, 0.0, p.Dot(u), 1e-12)
}

// TestPoint_Rotate checks a quarter turn.
func TestPoint_Rotate(t *testing.T) {
	t.Parallel()

	r := geom.Pt(1, 0).Rotate(90)
	assert.InDelta(t, 0.0, r.X, 1e-12)
	assert.InDelta(t, 1.0, r.Y, 1e-12)
	q := geom.Pt(2, 1).RotateAbout(geom.Pt(1, 1), 180)
	assert.InDelta(t, 0.0, q.X, 1e-12)
	assert.InDelta(t, 1.0, q.Y, 1e-12)
}

// TestBoundsAndCentroid covers the small helpers.
func TestBoundsAndCentroid(t *testing.T) {
	t.Parallel()

	pts := []geom.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 2}, {X: 0, Y: 2}}
	assert.Equal(t, geom.Rect{X: 0, Y: 0, W: 4, H: 2}, geom.Bounds(pts))
	assert.Equal(t, geom.Pt(2, 1), geom.Centroid(pts))
	assert.Equal(t, geom.Point{}, geom.Centroid(nil))
	assert.Equal(t, 0.0, geom.Clamp(math.NaN(), 0, 1))
	assert.Equal(t, 3.0, geom.Positive(-1, 3))
}
