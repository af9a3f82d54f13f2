// SPDX-License-Identifier: MIT
// Package: diagramkit/variants
//
// sweep.go - numeric sweeps and the built-in bulk variants.

package variants

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/vec"

	"github.com/katalvlaran/diagramkit/chem"
	"github.com/katalvlaran/diagramkit/diagram"
	"github.com/katalvlaran/diagramkit/graphs"
	"github.com/katalvlaran/diagramkit/physics"
	"github.com/katalvlaran/diagramkit/scene"
)

// MaxSweep caps the number of values one sweep may produce.
const MaxSweep = 10000

// Built-in sweep ranges.
const (
	InclineFrom = 5.0
	InclineTo   = 85.0
	InclineStep = 5.0

	// ElementCount is the number of periodic-table placeholders, Z = 1…30.
	ElementCount = 30
)

// sweepTolerance absorbs rounding when (to-from)/step is meant to be whole.
const sweepTolerance = 1e-9

// DefaultParabolaCoefficients are the leading coefficients of ParabolaSweep
// when none are given.
var DefaultParabolaCoefficients = []float64{-2, -1, -0.5, -0.25, 0.25, 0.5, 1, 2}

// Entry is one named descriptor of a batch.
type Entry struct {
	Name       string
	Descriptor diagram.Descriptor
}

// Sweep returns from, from+step, … up to and including to. The last value
// is exactly to when (to-from)/step is whole (within 1e-9 steps).
func Sweep(from, to, step float64) ([]float64, error) {
	if math.IsNaN(from) || math.IsNaN(to) || math.IsNaN(step) || math.IsInf(from, 0) || math.IsInf(to, 0) || math.IsInf(step, 0) {
		return nil, wrapf(MethodSweep, ErrInvalidSweep, "bounds and step must be finite")
	}
	if step <= 0 {
		return nil, wrapf(MethodSweep, ErrInvalidSweep, "step must be > 0, got %v", step)
	}
	if from > to {
		return nil, wrapf(MethodSweep, ErrInvalidSweep, "from %v exceeds to %v", from, to)
	}
	steps := math.Floor((to-from)/step + sweepTolerance)
	if steps+1 > MaxSweep {
		return nil, wrapf(MethodSweep, ErrInvalidSweep, "more than %d values", MaxSweep)
	}
	n := int(steps) + 1
	return vec.Linspace(from, from+steps*step, n), nil
}

// InclineSweep returns one incline per angle from 5° to 85° in 5° steps
// (17 entries). Every other field comes from base.
func InclineSweep(base physics.Incline, cv scene.Canvas) []Entry {
	angles, _ := Sweep(InclineFrom, InclineTo, InclineStep)
	out := make([]Entry, len(angles))
	for i, a := range angles {
		cfg := base
		cfg.AngleDeg = a
		out[i] = Entry{
			Name:       fmt.Sprintf("incline-%02.0f", a),
			Descriptor: diagram.Descriptor{Family: diagram.Incline, Config: cfg, Canvas: cv},
		}
	}
	return out
}

// ParabolaSweep returns y = a·x² for each a in coeffs, or for
// DefaultParabolaCoefficients when coeffs is empty.
func ParabolaSweep(coeffs []float64, cv scene.Canvas) []Entry {
	if len(coeffs) == 0 {
		coeffs = DefaultParabolaCoefficients
	}
	out := make([]Entry, len(coeffs))
	for i, a := range coeffs {
		out[i] = Entry{
			Name:       fmt.Sprintf("parabola-%02d", i+1),
			Descriptor: diagram.Descriptor{Family: diagram.Parabola, Config: graphs.Parabola{A: a}, Canvas: cv},
		}
	}
	return out
}

// ElementPlaceholders returns one periodic-table tile per element from
// hydrogen to zinc.
func ElementPlaceholders(cv scene.Canvas) []Entry {
	out := make([]Entry, ElementCount)
	for i := range out {
		z := i + 1
		out[i] = Entry{
			Name:       fmt.Sprintf("element-%02d", z),
			Descriptor: diagram.Descriptor{Family: diagram.Element, Config: chem.Element{Number: z}, Canvas: cv},
		}
	}
	return out
}

// Descriptors wraps plain descriptors as entries named by position and
// family ("003-beaker").
func Descriptors(ds []diagram.Descriptor) []Entry {
	out := make([]Entry, len(ds))
	for i, d := range ds {
		out[i] = Entry{Name: fmt.Sprintf("%03d-%s", i, d.Family), Descriptor: d}
	}
	return out
}
