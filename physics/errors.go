// SPDX-License-Identifier: MIT
// Package: diagramkit/physics
//
// errors.go - sentinel errors for physics configurations.

package physics

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter indicates a non-finite or out-of-domain value.
var ErrInvalidParameter = errors.New("physics: invalid parameter")

// ErrUnknownComponent indicates a circuit token outside the symbol table.
// Generators skip such tokens; only Validate reports them.
var ErrUnknownComponent = errors.New("physics: unknown circuit component")

// Config names used as error prefixes.
const (
	MethodIncline         = "Incline"
	MethodSeriesCircuit   = "SeriesCircuit"
	MethodParallelCircuit = "ParallelCircuit"
	MethodElectricField   = "ElectricField"
	MethodWave            = "Wave"
	MethodProjectile      = "Projectile"
	MethodLever           = "Lever"
)

// StandardGravity is g in m/s².
const StandardGravity = 9.8

// wrapf attaches method context to a sentinel.
func wrapf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
