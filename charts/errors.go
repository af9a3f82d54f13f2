// SPDX-License-Identifier: MIT
// Package: diagramkit/charts
//
// errors.go - sentinel errors for chart configurations.

package charts

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/diagramkit/geom"
)

var (
	// ErrInvalidParameter indicates a non-finite value or a bad size.
	ErrInvalidParameter = errors.New("charts: invalid parameter")

	// ErrLengthMismatch indicates paired slices of different lengths.
	ErrLengthMismatch = errors.New("charts: length mismatch")
)

// Config names used as error prefixes.
const (
	MethodScatter   = "Scatter"
	MethodHistogram = "Histogram"
	MethodBoxPlot   = "BoxPlot"
	MethodBar       = "Bar"
)

// MaxPoints bounds every data slice.
const MaxPoints = 5000

func wrapf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}

func checkValues(method, name string, xs []float64) error {
	if len(xs) > MaxPoints {
		return wrapf(method, ErrInvalidParameter, "%s: at most %d values, got %d", name, MaxPoints, len(xs))
	}
	for i, v := range xs {
		if !geom.AllFinite(v) {
			return wrapf(method, ErrInvalidParameter, "%s[%d] is not a finite value", name, i)
		}
	}
	return nil
}
