// SPDX-License-Identifier: MIT
// Package: diagramkit/graphs
//
// function.go - one explicit, fully-defaulted configuration per function
// family.
//
// Each config knows its curve.Spec, its default logical window, its printed
// equation and the key points worth annotating. Zero windows mean "use the
// family default".

package graphs

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/diagramkit/curve"
	"github.com/katalvlaran/diagramkit/geom"
	"github.com/katalvlaran/diagramkit/scene"
)

// DefaultHalfExtent is the half-width of the default symmetric window.
const DefaultHalfExtent = 5.0

// MaxODECurves caps the number of solution curves in one ODE diagram.
const MaxODECurves = 12

// Window is an optional logical window; the zero value selects the default.
type Window struct {
	XMin float64 `yaml:"xmin" json:"xmin"`
	XMax float64 `yaml:"xmax" json:"xmax"`
	YMin float64 `yaml:"ymin" json:"ymin"`
	YMax float64 `yaml:"ymax" json:"ymax"`
}

// IsZero reports whether w is unset.
func (w Window) IsZero() bool { return w == Window{} }

// Or returns w as a Range, or def when w is unset.
func (w Window) Or(def geom.Range) geom.Range {
	if w.IsZero() {
		return def
	}
	return geom.Range{XMin: w.XMin, XMax: w.XMax, YMin: w.YMin, YMax: w.YMax}
}

// KeyPoint is a named logical point worth annotating.
type KeyPoint struct {
	Name string
	X, Y float64
}

// Function is implemented by every plottable family config.
type Function interface {
	Spec() curve.Spec
	Range() geom.Range
	Equation() string
	KeyPoints() []KeyPoint
	Validate() error
}

var defaultRange = geom.Symmetric(DefaultHalfExtent, DefaultHalfExtent)

// Linear is y = M·x + B.
type Linear struct {
	M      float64 `yaml:"m" json:"m"`
	B      float64 `yaml:"b" json:"b"`
	Window Window  `yaml:"window" json:"window"`
}

// DefaultLinear returns y = x.
func DefaultLinear() Linear { return Linear{M: 1} }

func (c Linear) Spec() curve.Spec {
	return curve.Spec{Family: curve.Linear, Params: curve.Params{A: c.M, B: c.B}}
}
func (c Linear) Range() geom.Range { return c.Window.Or(defaultRange) }
func (c Linear) Equation() string  { return "y = " + polynomial(c.M, c.B) }
func (c Linear) KeyPoints() []KeyPoint {
	return []KeyPoint{{Name: "y-intercept", X: 0, Y: c.B}}
}
func (c Linear) Validate() error {
	if err := checkFinite(MethodLinear, "mb", c.M, c.B); err != nil {
		return err
	}
	return checkWindow(MethodLinear, c.Window)
}

// Parabola is y = A·x² + B·x + C.
type Parabola struct {
	A      float64 `yaml:"a" json:"a"`
	B      float64 `yaml:"b" json:"b"`
	C      float64 `yaml:"c" json:"c"`
	Window Window  `yaml:"window" json:"window"`
}

// DefaultParabola returns y = x².
func DefaultParabola() Parabola { return Parabola{A: 1} }

func (c Parabola) Spec() curve.Spec {
	return curve.Spec{Family: curve.Parabola, Params: curve.Params{A: c.A, B: c.B, C: c.C}}
}
func (c Parabola) Range() geom.Range { return c.Window.Or(defaultRange) }
func (c Parabola) Equation() string  { return "y = " + polynomial(c.A, c.B, c.C) }
func (c Parabola) KeyPoints() []KeyPoint {
	if c.A == 0 {
		return nil
	}
	x := -c.B / (2 * c.A)
	return []KeyPoint{{Name: "vertex", X: x, Y: c.Spec().Eval(x, 0)}}
}
func (c Parabola) Validate() error {
	if err := checkFinite(MethodParabola, "abc", c.A, c.B, c.C); err != nil {
		return err
	}
	return checkWindow(MethodParabola, c.Window)
}

// Cubic is y = A·x³ + B·x² + C·x + D.
type Cubic struct {
	A      float64 `yaml:"a" json:"a"`
	B      float64 `yaml:"b" json:"b"`
	C      float64 `yaml:"c" json:"c"`
	D      float64 `yaml:"d" json:"d"`
	Window Window  `yaml:"window" json:"window"`
}

// DefaultCubic returns y = x³/4 − 2x, which shows both turning points.
func DefaultCubic() Cubic { return Cubic{A: 0.25, C: -2} }

func (c Cubic) Spec() curve.Spec {
	return curve.Spec{Family: curve.Cubic, Params: curve.Params{A: c.A, B: c.B, C: c.C, D: c.D}}
}
func (c Cubic) Range() geom.Range { return c.Window.Or(defaultRange) }
func (c Cubic) Equation() string  { return "y = " + polynomial(c.A, c.B, c.C, c.D) }
func (c Cubic) KeyPoints() []KeyPoint {
	if c.A == 0 {
		return nil
	}
	x := -c.B / (3 * c.A)
	return []KeyPoint{{Name: "inflection", X: x, Y: c.Spec().Eval(x, 0)}}
}
func (c Cubic) Validate() error {
	if err := checkFinite(MethodCubic, "abcd", c.A, c.B, c.C, c.D); err != nil {
		return err
	}
	return checkWindow(MethodCubic, c.Window)
}

// Hyperbola is x²/A² − y²/B² = 1.
type Hyperbola struct {
	A      float64 `yaml:"a" json:"a"`
	B      float64 `yaml:"b" json:"b"`
	Window Window  `yaml:"window" json:"window"`
}

// DefaultHyperbola returns a = b = 2.
func DefaultHyperbola() Hyperbola { return Hyperbola{A: 2, B: 2} }

func (c Hyperbola) Spec() curve.Spec {
	return curve.Spec{Family: curve.Hyperbola, Params: curve.Params{A: c.A, B: c.B}}
}
func (c Hyperbola) Range() geom.Range { return c.Window.Or(defaultRange) }
func (c Hyperbola) Equation() string {
	return fmt.Sprintf("x²/%s − y²/%s = 1", scene.Format(c.A*c.A, 2), scene.Format(c.B*c.B, 2))
}
func (c Hyperbola) KeyPoints() []KeyPoint {
	a := math.Abs(c.A)
	return []KeyPoint{{Name: "vertex", X: -a}, {Name: "vertex", X: a}}
}
func (c Hyperbola) Validate() error {
	if err := checkFinite(MethodHyperbola, "ab", c.A, c.B); err != nil {
		return err
	}
	if c.A == 0 || c.B == 0 {
		return invalidf(MethodHyperbola, "semi-axes must be non-zero, got a=%v b=%v", c.A, c.B)
	}
	return checkWindow(MethodHyperbola, c.Window)
}

// Reciprocal is y = A/(x − H) + K.
type Reciprocal struct {
	A      float64 `yaml:"a" json:"a"`
	H      float64 `yaml:"h" json:"h"`
	K      float64 `yaml:"k" json:"k"`
	Window Window  `yaml:"window" json:"window"`
}

// DefaultReciprocal returns y = 1/x.
func DefaultReciprocal() Reciprocal { return Reciprocal{A: 1} }

func (c Reciprocal) Spec() curve.Spec {
	return curve.Spec{Family: curve.Reciprocal, Params: curve.Params{A: c.A, H: c.H, K: c.K}}
}
func (c Reciprocal) Range() geom.Range { return c.Window.Or(defaultRange) }
func (c Reciprocal) Equation() string {
	s := "y = " + scene.Format(c.A, 2) + "/" + shifted("x", c.H)
	if c.K != 0 {
		s += signed(c.K)
	}
	return s
}
func (c Reciprocal) KeyPoints() []KeyPoint {
	return []KeyPoint{{Name: "center", X: c.H, Y: c.K}}
}
func (c Reciprocal) Validate() error {
	if err := checkFinite(MethodReciprocal, "ahk", c.A, c.H, c.K); err != nil {
		return err
	}
	return checkWindow(MethodReciprocal, c.Window)
}

// Exponential is y = A·e^(K·x).
type Exponential struct {
	A      float64 `yaml:"a" json:"a"`
	K      float64 `yaml:"k" json:"k"`
	Window Window  `yaml:"window" json:"window"`
}

// DefaultExponential returns y = e^(0.5x).
func DefaultExponential() Exponential { return Exponential{A: 1, K: 0.5} }

func (c Exponential) Spec() curve.Spec {
	return curve.Spec{Family: curve.Exponential, Params: curve.Params{A: c.A, K: c.K}}
}
func (c Exponential) Range() geom.Range { return c.Window.Or(defaultRange) }
func (c Exponential) Equation() string {
	return "y = " + coef(c.A) + "e^(" + coef(c.K) + "x)"
}
func (c Exponential) KeyPoints() []KeyPoint {
	return []KeyPoint{{Name: "y-intercept", Y: c.A}}
}
func (c Exponential) Validate() error {
	if err := checkFinite(MethodExponential, "ak", c.A, c.K); err != nil {
		return err
	}
	if math.Abs(c.K) > 50 {
		return invalidf(MethodExponential, "rate k must be within ±50, got %v", c.K)
	}
	return checkWindow(MethodExponential, c.Window)
}

// Trig is y = Amplitude·f(Frequency·x + Phase), f ∈ {sin, cos, tan}.
type Trig struct {
	Func      string  `yaml:"func" json:"func"`
	Amplitude float64 `yaml:"amplitude" json:"amplitude"`
	Frequency float64 `yaml:"frequency" json:"frequency"`
	Phase     float64 `yaml:"phase" json:"phase"`
	Window    Window  `yaml:"window" json:"window"`
}

// DefaultTrig returns y = 2·sin(x) over [−2π, 2π]×[−3, 3].
func DefaultTrig() Trig { return Trig{Func: "sin", Amplitude: 2, Frequency: 1} }

var trigFuncs = map[string]curve.TrigFunc{"sin": curve.Sin, "cos": curve.Cos, "tan": curve.Tan}

// fn resolves Func; unknown names fall back to sin.
func (c Trig) fn() curve.TrigFunc {
	if f, ok := trigFuncs[strings.ToLower(c.Func)]; ok {
		return f
	}
	return curve.Sin
}

func (c Trig) Spec() curve.Spec {
	return curve.Spec{Family: curve.Trig, Params: curve.Params{
		Func: c.fn(), Amplitude: c.Amplitude, Frequency: c.Frequency, Phase: c.Phase,
	}}
}
func (c Trig) Range() geom.Range {
	h := math.Max(math.Abs(c.Amplitude)*1.5, 1)
	if c.fn() == curve.Tan {
		h = math.Max(math.Abs(c.Amplitude)*4, 2)
	}
	return c.Window.Or(geom.Range{XMin: -2 * math.Pi, XMax: 2 * math.Pi, YMin: -h, YMax: h})
}
func (c Trig) Equation() string {
	arg := coef(c.Frequency) + "x"
	if c.Phase != 0 {
		arg += signed(c.Phase)
	}
	return "y = " + coef(c.Amplitude) + c.fn().String() + "(" + arg + ")"
}
func (c Trig) KeyPoints() []KeyPoint { return nil }
func (c Trig) Validate() error {
	if _, ok := trigFuncs[strings.ToLower(c.Func)]; !ok {
		return invalidf(MethodTrig, "func must be sin, cos or tan, got %q", c.Func)
	}
	if err := checkFinite(MethodTrig, "afp", c.Amplitude, c.Frequency, c.Phase); err != nil {
		return err
	}
	return checkWindow(MethodTrig, c.Window)
}

// Normal is the normal density N(Mu, Sigma²).
type Normal struct {
	Mu     float64 `yaml:"mu" json:"mu"`
	Sigma  float64 `yaml:"sigma" json:"sigma"`
	Window Window  `yaml:"window" json:"window"`
}

// DefaultNormal returns the standard normal.
func DefaultNormal() Normal { return Normal{Sigma: 1} }

func (c Normal) sigma() float64 { return geom.Positive(c.Sigma, 1) }

// Peak is the density at the mean.
func (c Normal) Peak() float64 { return 1 / (c.sigma() * math.Sqrt(2*math.Pi)) }

func (c Normal) Spec() curve.Spec {
	return curve.Spec{Family: curve.Normal, Params: curve.Params{Mu: c.Mu, Sigma: c.sigma()}}
}
func (c Normal) Range() geom.Range {
	s := c.sigma()
	return c.Window.Or(geom.Range{XMin: c.Mu - 4*s, XMax: c.Mu + 4*s, YMin: 0, YMax: 1.2 * c.Peak()})
}
func (c Normal) Equation() string {
	return fmt.Sprintf("N(μ=%s, σ=%s)", scene.Format(c.Mu, 2), scene.Format(c.sigma(), 2))
}
func (c Normal) KeyPoints() []KeyPoint {
	return []KeyPoint{{Name: "mean", X: c.Mu, Y: c.Peak()}}
}
func (c Normal) Validate() error {
	if err := checkFinite(MethodNormal, "ms", c.Mu, c.Sigma); err != nil {
		return err
	}
	if !(c.Sigma > 0) {
		return invalidf(MethodNormal, "sigma must be > 0, got %v", c.Sigma)
	}
	return checkWindow(MethodNormal, c.Window)
}

// ODE plots one solution curve per constant of dy/dx = K·y ("growth") or
// dy/dx = K·x ("polynomial").
type ODE struct {
	Kind      string    `yaml:"kind" json:"kind"`
	K         float64   `yaml:"k" json:"k"`
	Constants []float64 `yaml:"constants" json:"constants"`
	Window    Window    `yaml:"window" json:"window"`
}

// DefaultODE returns the growth family with k = 0.5 and C ∈ {−2,−1,1,2}.
func DefaultODE() ODE {
	return ODE{Kind: "growth", K: 0.5, Constants: []float64{-2, -1, 1, 2}}
}

var odeKinds = map[string]curve.ODEKind{"growth": curve.Growth, "polynomial": curve.Polynomial}

func (c ODE) kind() curve.ODEKind { return odeKinds[strings.ToLower(c.Kind)] }

// constants returns the finite constants, capped at MaxODECurves.
func (c ODE) constants() []float64 {
	out := make([]float64, 0, len(c.Constants))
	for _, v := range c.Constants {
		if geom.AllFinite(v) && len(out) < MaxODECurves {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		out = append(out, 1)
	}
	return out
}

func (c ODE) Spec() curve.Spec {
	return curve.Spec{Family: curve.ODE, Params: curve.Params{ODE: c.kind(), K: c.K, Constants: c.constants()}}
}
func (c ODE) Range() geom.Range { return c.Window.Or(defaultRange) }
func (c ODE) Equation() string {
	if c.kind() == curve.Polynomial {
		return "dy/dx = " + coef(c.K) + "x"
	}
	return "dy/dx = " + coef(c.K) + "y"
}
func (c ODE) KeyPoints() []KeyPoint { return nil }
func (c ODE) Validate() error {
	if _, ok := odeKinds[strings.ToLower(c.Kind)]; !ok {
		return invalidf(MethodODE, "kind must be growth or polynomial, got %q", c.Kind)
	}
	if err := checkFinite(MethodODE, "k", c.K); err != nil {
		return err
	}
	if len(c.Constants) > MaxODECurves {
		return invalidf(MethodODE, "at most %d constants, got %d", MaxODECurves, len(c.Constants))
	}
	for _, v := range c.Constants {
		if err := checkFinite(MethodODE, "C", v); err != nil {
			return err
		}
	}
	return checkWindow(MethodODE, c.Window)
}

// polynomial prints Σ cs[i]·x^(n−1−i) with the usual sign and unit-coefficient
// conventions: polynomial(1, 0, -2) → "x² − 2".
func polynomial(cs ...float64) string {
	var b strings.Builder
	deg := len(cs) - 1
	for i, c := range cs {
		if c == 0 {
			continue
		}
		p := deg - i
		mag := math.Abs(c)
		switch {
		case b.Len() == 0 && c < 0:
			b.WriteString("−")
		case b.Len() > 0 && c < 0:
			b.WriteString(" − ")
		case b.Len() > 0:
			b.WriteString(" + ")
		}
		if mag != 1 || p == 0 {
			b.WriteString(scene.Format(mag, 2))
		}
		switch p {
		case 0:
		case 1:
			b.WriteString("x")
		case 2:
			b.WriteString("x²")
		case 3:
			b.WriteString("x³")
		default:
			fmt.Fprintf(&b, "x^%d", p)
		}
	}
	if b.Len() == 0 {
		return "0"
	}
	return b.String()
}

// coef prints a multiplicative coefficient, omitting 1 and writing −1 as "−".
func coef(v float64) string {
	switch v {
	case 1:
		return ""
	case -1:
		return "−"
	}
	return scene.Format(v, 2)
}

// signed prints " + v" or " − |v|".
func signed(v float64) string {
	if v < 0 {
		return " − " + scene.Format(-v, 2)
	}
	return " + " + scene.Format(v, 2)
}

// shifted prints "(x − h)" or just "x".
func shifted(x string, h float64) string {
	if h == 0 {
		return x
	}
	return "(" + x + signed(-h) + ")"
}
