// SPDX-License-Identifier: MIT
// Package: diagramkit/variants
//
// errors.go - sentinel errors for sweeps.
//
// Option constructors panic on meaningless values; everything else returns
// these sentinels wrapped with method context.

package variants

import (
	"errors"
	"fmt"
)

// ErrInvalidSweep indicates a sweep with a non-positive or non-finite step,
// reversed bounds or too many values.
var ErrInvalidSweep = errors.New("variants: invalid sweep")

// Method names used as error prefixes.
const (
	MethodSweep    = "Sweep"
	MethodGenerate = "Generate"
)

func wrapf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
