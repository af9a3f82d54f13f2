// SPDX-License-Identifier: MIT
// Package: diagramkit/chem
//
// errors.go - sentinel errors for chemistry configurations.

package chem

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter indicates a non-finite or out-of-domain value.
var ErrInvalidParameter = errors.New("chem: invalid parameter")

// ErrBadBond indicates a bond whose endpoints are missing or identical, or
// whose order is outside 1..3.
var ErrBadBond = errors.New("chem: bad bond")

// ErrUnknownMolecule indicates a SmallMolecule kind outside the table.
var ErrUnknownMolecule = errors.New("chem: unknown molecule")

// Config names used as error prefixes.
const (
	MethodMolecule      = "Molecule"
	MethodSmallMolecule = "SmallMolecule"
	MethodBenzene       = "Benzene"
	MethodBeaker        = "Beaker"
	MethodElement       = "Element"
)

// wrapf attaches method context to a sentinel.
func wrapf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
