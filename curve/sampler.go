// SPDX-License-Identifier: MIT
// Package: diagramkit/curve
//
// sampler.go - CurveSampler: families → ordered pixel branches.
//
// Contract:
//   - A Branch is a contiguous run of pixel samples; no segment between two
//     consecutive points of a Branch crosses a vertical asymptote.
//   - Asymptotes are split analytically (reciprocal at x=H, tangent at its
//     poles, hyperbola via two disjoint parametric intervals). The
//     discontinuity itself is never sampled. Beyond the MaxPoles-th pole
//     nothing is sampled.
//   - Samples that are NaN/Inf or fall outside the frame's pixel rectangle
//     (bounds inclusive) are dropped and end the current branch.
//   - Each sample is visited once, so it lands in at most one branch.
//   - Runs shorter than two points cannot form a segment and are discarded.

package curve

import (
	"math"

	"github.com/aclements/go-moremath/vec"

	"github.com/katalvlaran/diagramkit/geom"
)

// openGap is the fraction of the domain kept clear on each side of a
// discontinuity so the pole itself is never evaluated.
const openGap = 1e-4

// hyperbolaGap is the parametric margin δ (radians) kept from t = ±π/2.
const hyperbolaGap = 1e-3

// Branch is one contiguous sampled run belonging to curve index Curve
// (always 0 except for ODE families, where it indexes Params.Constants).
type Branch struct {
	Curve  int
	Points []geom.Point
}

// Sample evaluates s inside frame f and returns its branches in order of
// increasing curve index and then increasing parameter.
func Sample(s Spec, f geom.Frame) []Branch {
	lo, hi := s.domain(f)
	n := s.samples()

	switch s.Family {
	case Hyperbola:
		return sampleHyperbola(s.Params, n, f)
	case ODE:
		var out []Branch
		for i := range s.Params.Constants {
			out = append(out, sampleExplicit(s, i, lo, hi, n, f)...)
		}
		return out
	case Linear, Parabola, Cubic, Reciprocal, Exponential, Trig, Normal:
		return sampleExplicit(s, 0, lo, hi, n, f)
	}
	return nil
}

// domain resolves the sampled x interval.
func (s Spec) domain(f geom.Frame) (float64, float64) {
	lo, hi := s.XMin, s.XMax
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo >= hi {
		return f.Range.XMin, f.Range.XMax
	}
	return lo, hi
}

// sampleExplicit samples y = Eval(x) over [lo,hi], split at every
// discontinuity into open sub-intervals that share the resolution by length.
func sampleExplicit(s Spec, curve int, lo, hi float64, n int, f geom.Frame) []Branch {
	cuts, complete := s.poles(lo, hi)
	bounds := make([]float64, 0, len(cuts)+2)
	bounds = append(bounds, lo)
	bounds = append(bounds, cuts...)
	if complete {
		bounds = append(bounds, hi)
	}

	gap := (hi - lo) * openGap
	t := tracer{frame: f, curve: curve}
	for k := 0; k+1 < len(bounds); k++ {
		a, b := bounds[k], bounds[k+1]
		if k > 0 {
			a += gap
		}
		if k < len(cuts) {
			b -= gap
		}
		if a >= b {
			continue
		}
		m := int(math.Round(float64(n) * (b - a) / (hi - lo)))
		if m < MinSamples {
			m = MinSamples
		}
		for _, x := range vec.Linspace(a, b, m) {
			t.add(x, s.Eval(x, curve))
		}
		t.cut()
	}
	return t.out
}

// sampleHyperbola walks x = A·sec t, y = B·tan t over the right branch
// (−π/2, π/2) and the left branch (π/2, 3π/2), n samples each.
func sampleHyperbola(p Params, n int, f geom.Frame) []Branch {
	a := semiAxis(p.A)
	b := semiAxis(p.B)
	t := tracer{frame: f}
	for _, start := range []float64{-math.Pi / 2, math.Pi / 2} {
		for _, u := range vec.Linspace(start+hyperbolaGap, start+math.Pi-hyperbolaGap, n) {
			t.add(a/math.Cos(u), b*math.Tan(u))
		}
		t.cut()
	}
	return t.out
}

// semiAxis maps a hyperbola parameter to a usable positive semi-axis.
func semiAxis(v float64) float64 {
	v = math.Abs(v)
	if !(v > geom.Eps) || math.IsInf(v, 0) {
		return 1
	}
	return v
}

// tracer accumulates pixel samples into branches, cutting on invalid ones.
type tracer struct {
	frame geom.Frame
	curve int
	cur   []geom.Point
	out   []Branch
}

func (t *tracer) add(x, y float64) {
	p := t.frame.ToPixel(x, y)
	if math.IsNaN(y) || math.IsInf(y, 0) || !t.frame.InPixelRect(p) {
		t.cut()
		return
	}
	t.cur = append(t.cur, p)
}

func (t *tracer) cut() {
	if len(t.cur) >= MinSamples {
		t.out = append(t.out, Branch{Curve: t.curve, Points: t.cur})
	}
	t.cur = nil
}
