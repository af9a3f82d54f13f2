// SPDX-License-Identifier: MIT
// Package: diagramkit/curve
//
// family.go - function families, their parameters and sampling resolutions.

package curve

import (
	"math"

	"github.com/aclements/go-moremath/stats"
)

// Family identifies a sampled function family.
type Family int

const (
	// Linear is y = A·x + B.
	Linear Family = iota
	// Parabola is y = A·x² + B·x + C.
	Parabola
	// Cubic is y = A·x³ + B·x² + C·x + D.
	Cubic
	// Hyperbola is x²/A² − y²/B² = 1 (two branches).
	Hyperbola
	// Reciprocal is y = A/(x−H) + K.
	Reciprocal
	// Exponential is y = A·e^(K·x).
	Exponential
	// Trig is y = Amplitude·f(Frequency·x + Phase) for f in sin, cos, tan.
	Trig
	// Normal is the normal density with mean Mu and deviation Sigma.
	Normal
	// ODE is a family of solution curves, one per entry of Constants.
	ODE
)

var familyNames = [...]string{
	Linear:      "linear",
	Parabola:    "parabola",
	Cubic:       "cubic",
	Hyperbola:   "hyperbola",
	Reciprocal:  "reciprocal",
	Exponential: "exponential",
	Trig:        "trig",
	Normal:      "normal",
	ODE:         "ode",
}

// String returns the family name.
func (f Family) String() string {
	if f < 0 || int(f) >= len(familyNames) {
		return "unknown"
	}
	return familyNames[f]
}

// defaultSamples is the per-family resolution; hyperbola counts per branch.
var defaultSamples = [...]int{
	Linear:      40,
	Parabola:    101,
	Cubic:       121,
	Hyperbola:   80,
	Reciprocal:  150,
	Exponential: 100,
	Trig:        150,
	Normal:      121,
	ODE:         100,
}

// Resolution bounds for explicit sample counts.
const (
	MinSamples = 2
	MaxSamples = 1000
)

// DefaultSamples returns the family's default resolution.
func DefaultSamples(f Family) int {
	if f < 0 || int(f) >= len(defaultSamples) {
		return defaultSamples[Linear]
	}
	return defaultSamples[f]
}

// TrigFunc selects the trigonometric function of a Trig curve.
type TrigFunc int

const (
	Sin TrigFunc = iota
	Cos
	Tan
)

var trigNames = [...]string{Sin: "sin", Cos: "cos", Tan: "tan"}

// String returns "sin", "cos" or "tan".
func (t TrigFunc) String() string {
	if t < 0 || int(t) >= len(trigNames) {
		return "sin"
	}
	return trigNames[t]
}

// ODEKind selects the differential equation an ODE curve family solves.
type ODEKind int

const (
	// Growth solves dy/dx = K·y: y = C·e^(K·x).
	Growth ODEKind = iota
	// Polynomial solves dy/dx = K·x: y = K·x²/2 + C.
	Polynomial
)

// Params carries the coefficients of every family. Each family reads only
// the fields documented on its constant.
type Params struct {
	A, B, C, D float64
	H, K       float64

	Func      TrigFunc
	Amplitude float64
	Frequency float64
	Phase     float64

	Mu, Sigma float64

	ODE       ODEKind
	Constants []float64
}

// Spec is a CurveSpec: family, parameters, resolution and domain.
// Samples 0 selects the family default; XMin ≥ XMax selects the frame's
// logical x range.
type Spec struct {
	Family  Family
	Params  Params
	Samples int
	XMin    float64
	XMax    float64
}

// samples resolves the effective resolution.
func (s Spec) samples() int {
	if s.Samples == 0 {
		return DefaultSamples(s.Family)
	}
	if s.Samples < MinSamples {
		return MinSamples
	}
	if s.Samples > MaxSamples {
		return MaxSamples
	}
	return s.Samples
}

// Eval returns y(x) for the explicit families and, for ODE, for the
// constant Constants[curve]. Hyperbola and out-of-range curves yield NaN.
func (s Spec) Eval(x float64, curve int) float64 {
	p := s.Params
	switch s.Family {
	case Linear:
		return p.A*x + p.B
	case Parabola:
		return (p.A*x+p.B)*x + p.C
	case Cubic:
		return ((p.A*x+p.B)*x+p.C)*x + p.D
	case Reciprocal:
		if x == p.H {
			return math.NaN()
		}
		return p.A/(x-p.H) + p.K
	case Exponential:
		return p.A * math.Exp(p.K*x)
	case Trig:
		arg := p.Frequency*x + p.Phase
		switch p.Func {
		case Cos:
			return p.Amplitude * math.Cos(arg)
		case Tan:
			return p.Amplitude * math.Tan(arg)
		default:
			return p.Amplitude * math.Sin(arg)
		}
	case Normal:
		sigma := p.Sigma
		if !(sigma > 0) || math.IsInf(sigma, 0) {
			sigma = 1
		}
		return stats.NormalDist{Mu: p.Mu, Sigma: sigma}.PDF(x)
	case ODE:
		if curve < 0 || curve >= len(p.Constants) {
			return math.NaN()
		}
		c := p.Constants[curve]
		if p.ODE == Polynomial {
			return p.K*x*x/2 + c
		}
		return c * math.Exp(p.K*x)
	}
	return math.NaN()
}

// MaxPoles bounds the asymptotes split per domain. Past it the curve is
// not sampled at all.
const MaxPoles = MaxSamples

// Discontinuities returns the sorted x positions inside the open interval
// (lo, hi) where the curve has a vertical asymptote, at most MaxPoles of
// them counted from lo.
func (s Spec) Discontinuities(lo, hi float64) []float64 {
	cuts, _ := s.poles(lo, hi)
	return cuts
}

// poles is Discontinuities plus whether the list reaches hi.
func (s Spec) poles(lo, hi float64) ([]float64, bool) {
	p := s.Params
	switch {
	case s.Family == Reciprocal:
		if p.H > lo && p.H < hi {
			return []float64{p.H}, true
		}
	case s.Family == Trig && p.Func == Tan:
		return tanPoles(p.Frequency, p.Phase, lo, hi)
	}
	return nil, true
}

// tanPoles lists x = (π/2 + nπ − phase)/freq inside (lo, hi) in increasing
// x. complete is false when the list stopped at MaxPoles.
func tanPoles(freq, phase, lo, hi float64) (out []float64, complete bool) {
	if freq == 0 || math.IsNaN(freq) || math.IsInf(freq, 0) {
		return nil, true
	}
	// Poles in argument space u = freq·x + phase.
	ua, ub := freq*lo+phase, freq*hi+phase
	if ua > ub {
		ua, ub = ub, ua
	}
	nlo := math.Ceil((ua - math.Pi/2) / math.Pi)
	nhi := math.Floor((ub - math.Pi/2) / math.Pi)
	for k := 0.0; k <= nhi-nlo; k++ {
		if len(out) >= MaxPoles {
			return out, false
		}
		n := nlo + k
		if freq < 0 {
			n = nhi - k
		}
		x := (math.Pi/2 + n*math.Pi - phase) / freq
		if x > lo && x < hi {
			out = append(out, x)
		}
	}
	return out, true
}
