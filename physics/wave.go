// SPDX-License-Identifier: MIT
// Package: diagramkit/physics
//
// wave.go - a transverse sinusoidal wave with wavelength and amplitude
// markers.
//
// Model, with x sampled uniformly over [0, Cycles·λ]:
//   θ₀   = φ
//   θᵢ₊₁ = θᵢ + τ·Δx/λ           (phase accumulator, τ = 2π)
//   yᵢ   = A·e^(−γ·xᵢ)·sin(θᵢ)
// Crests sit where θ = π/2 (mod τ), troughs where θ = 3π/2 (mod τ).

package physics

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/vec"

	"github.com/katalvlaran/diagramkit/geom"
	"github.com/katalvlaran/diagramkit/scene"
	"github.com/katalvlaran/diagramkit/shape"
)

const tau = 2 * math.Pi

// Wave constants.
const (
	DefaultAmplitude  = 1.0
	DefaultWavelength = 2.0
	DefaultCycles     = 2.5
	MaxCycles         = 20.0
	SamplesPerCycle   = 64
	maxWaveSamples    = 1000
	waveMargin        = 30.0
	markerColor       = "#b45309"
)

// Wave is A·e^(−Damping·x)·sin(2πx/Wavelength + Phase) drawn over Cycles
// wavelengths. Phase is in radians.
type Wave struct {
	Amplitude  float64 `yaml:"amplitude" json:"amplitude"`
	Wavelength float64 `yaml:"wavelength" json:"wavelength"`
	Cycles     float64 `yaml:"cycles" json:"cycles"`
	Phase      float64 `yaml:"phase" json:"phase"`
	Damping    float64 `yaml:"damping" json:"damping"`
}

// DefaultWave returns an undamped wave of amplitude 1 and wavelength 2 over
// two and a half cycles.
func DefaultWave() Wave {
	return Wave{Amplitude: DefaultAmplitude, Wavelength: DefaultWavelength, Cycles: DefaultCycles}
}

// Validate checks every parameter.
func (c Wave) Validate() error {
	if !geom.AllFinite(c.Amplitude, c.Wavelength, c.Cycles, c.Phase, c.Damping) {
		return wrapf(MethodWave, ErrInvalidParameter, "parameters must be finite")
	}
	if c.Amplitude <= 0 || c.Wavelength <= 0 {
		return wrapf(MethodWave, ErrInvalidParameter, "amplitude and wavelength must be > 0")
	}
	if c.Cycles <= 0 || c.Cycles > MaxCycles {
		return wrapf(MethodWave, ErrInvalidParameter, "cycles must be in (0,%v], got %v", MaxCycles, c.Cycles)
	}
	if c.Damping < 0 {
		return wrapf(MethodWave, ErrInvalidParameter, "damping must be ≥ 0, got %v", c.Damping)
	}
	return nil
}

func (c Wave) resolved() Wave {
	c.Amplitude = geom.Positive(c.Amplitude, DefaultAmplitude)
	c.Wavelength = geom.Positive(c.Wavelength, DefaultWavelength)
	c.Cycles = math.Min(geom.Positive(c.Cycles, DefaultCycles), MaxCycles)
	c.Phase = geom.Or(c.Phase, 0)
	c.Damping = math.Max(geom.Or(c.Damping, 0), 0)
	return c
}

// Length returns the drawn x extent Cycles·λ.
func (c Wave) Length() float64 {
	r := c.resolved()
	return r.Cycles * r.Wavelength
}

// Samples returns the wave's logical points.
func (c Wave) Samples() []geom.Point {
	r := c.resolved()
	n := int(math.Ceil(r.Cycles*SamplesPerCycle)) + 1
	if n > maxWaveSamples {
		n = maxWaveSamples
	}
	xs := vec.Linspace(0, r.Length(), n)
	dx := r.Length() / float64(n-1)

	out := make([]geom.Point, n)
	theta := r.Phase
	for i, x := range xs {
		out[i] = geom.Pt(x, r.Amplitude*math.Exp(-r.Damping*x)*math.Sin(theta))
		theta += tau * dx / r.Wavelength
	}
	return out
}

// Extrema returns the x positions of crests and troughs inside the drawn
// extent, ascending.
func (c Wave) Extrema() (crests, troughs []float64) {
	r := c.resolved()
	first := func(target float64) float64 {
		// Smallest x ≥ 0 with φ + τx/λ ≡ target (mod τ).
		k := math.Ceil((r.Phase - target) / tau)
		return (target + k*tau - r.Phase) * r.Wavelength / tau
	}
	end := r.Length() + 1e-9
	for x := first(math.Pi / 2); x <= end; x += r.Wavelength {
		crests = append(crests, x)
	}
	for x := first(3 * math.Pi / 2); x <= end; x += r.Wavelength {
		troughs = append(troughs, x)
	}
	return crests, troughs
}

// Y evaluates the wave at x.
func (c Wave) Y(x float64) float64 {
	r := c.resolved()
	return r.Amplitude * math.Exp(-r.Damping*x) * math.Sin(r.Phase+tau*x/r.Wavelength)
}

// WaveFrame returns the logical frame used on a w×h canvas.
func (c Wave) WaveFrame(w, h float64) geom.Frame {
	r := c.resolved()
	rng := geom.Range{XMin: 0, XMax: r.Length(), YMin: -1.45 * r.Amplitude, YMax: 1.45 * r.Amplitude}
	return geom.NewFrame(rng, geom.Rect{W: w, H: h}.Inset(waveMargin))
}

// DrawWave builds the wave scene.
func DrawWave(c Wave, cv scene.Canvas) *scene.Scene {
	cv = cv.Resolve(scene.DefaultWidth, scene.DefaultHeight)
	s := scene.New(cv.Width, cv.Height)
	s.Background = "#ffffff"
	r := c.resolved()
	f := c.WaveFrame(cv.Width, cv.Height)
	if cv.ShowGrid {
		s.Add(shape.Grid(f))
	}
	s.Add(shape.Axes(f, false))

	pts := c.Samples()
	px := make([]geom.Point, len(pts))
	for i, p := range pts {
		px[i] = f.ToPixel(p.X, p.Y)
	}
	st := scene.Stroked(cv.Color, 2.5)
	st.LineJoin = "round"
	s.Add(scene.PathNode(scene.PolylinePath(px), st).WithClass("wave"))

	crests, troughs := c.Extrema()
	for i, x := range crests {
		at := f.ToPixel(x, c.Y(x))
		s.Overlay.Points = append(s.Overlay.Points, scene.OverlayPoint{Name: fmt.Sprintf("crest%d", i+1), At: at})
	}
	for i, x := range troughs {
		at := f.ToPixel(x, c.Y(x))
		s.Overlay.Points = append(s.Overlay.Points, scene.OverlayPoint{Name: fmt.Sprintf("trough%d", i+1), At: at})
	}

	if cv.ShowLabels && len(crests) > 0 {
		markers := scene.Group("markers")
		x0 := crests[0]
		if len(crests) > 1 {
			y := f.PixelY(1.25 * r.Amplitude)
			a, b := geom.Pt(f.PixelX(x0), y), geom.Pt(f.PixelX(crests[1]), y)
			markers.Append(shape.DoubleArrow(a, b, markerColor, 1.2).WithName("wavelength"))
			markers.Append(scene.Text(geom.Lerp(a, b, 0.5).Add(geom.Pt(0, -10)), "λ = "+scene.Format(r.Wavelength, 2), scene.Label(markerColor, 12)).WithClass("marker-label"))
		}
		base, crest := f.ToPixel(x0, 0), f.ToPixel(x0, c.Y(x0))
		markers.Append(shape.DoubleArrow(base, crest, markerColor, 1.2).WithName("amplitude"))
		markers.Append(scene.Text(geom.Lerp(base, crest, 0.5).Add(geom.Pt(8, 0)), "A = "+scene.Format(r.Amplitude, 2), withAnchor(scene.Label(markerColor, 12), "start")).WithClass("marker-label"))
		s.Add(markers)
	}
	s.Title = "Wave, λ = " + scene.Format(r.Wavelength, 2)
	return s
}
