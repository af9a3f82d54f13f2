// SPDX-License-Identifier: MIT
// Package: diagramkit/graphs
//
// errors.go - sentinel errors for graph configurations.
//
// Validate methods return ErrInvalidParameter wrapped with the config name
// ("Parabola: coefficient a is NaN: graphs: invalid parameter"); callers
// branch with errors.Is. Generators never return errors: they repair values
// the same way Validate would reject them.

package graphs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/diagramkit/geom"
)

// ErrInvalidParameter indicates a non-finite or out-of-domain value.
var ErrInvalidParameter = errors.New("graphs: invalid parameter")

// Config names used as error prefixes.
const (
	MethodLinear      = "Linear"
	MethodParabola    = "Parabola"
	MethodCubic       = "Cubic"
	MethodHyperbola   = "Hyperbola"
	MethodReciprocal  = "Reciprocal"
	MethodExponential = "Exponential"
	MethodTrig        = "Trig"
	MethodNormal      = "Normal"
	MethodODE         = "ODE"
	MethodPolygon     = "RegularPolygon"
	MethodCube        = "Cube"
)

// invalidf wraps ErrInvalidParameter with method context.
func invalidf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), ErrInvalidParameter)
}

// checkFinite rejects NaN/Inf and absurdly large coefficients. names holds
// one letter per value ("abc" for a, b, c).
func checkFinite(method string, names string, vals ...float64) error {
	for i, v := range vals {
		if v != v || v > maxCoeff || v < -maxCoeff {
			name := "?"
			if i < len(names) {
				name = names[i : i+1]
			}
			return invalidf(method, "coefficient %s is not a finite value, got %v", name, v)
		}
	}
	return nil
}

// maxCoeff bounds coefficients so sampling stays in float range.
const maxCoeff = 1e9

// checkWindow accepts the zero window (use default) or a non-degenerate one.
func checkWindow(method string, w Window) error {
	if w.IsZero() {
		return nil
	}
	if !geom.AllFinite(w.XMin, w.XMax, w.YMin, w.YMax) {
		return invalidf(method, "window bounds must be finite, got %+v", w)
	}
	if w.XMin >= w.XMax || w.YMin >= w.YMax {
		return invalidf(method, "window must satisfy xmin<xmax and ymin<ymax, got %v", w)
	}
	return nil
}
