// SPDX-License-Identifier: MIT
// Package: diagramkit/diagram
//
// errors.go - sentinel errors for descriptors and decoding.
//
// Assemble never returns an error: unknown families and mismatched configs
// degrade to Empty. These sentinels are reported only where a caller can
// still fix the input (NewDescriptor, Decode).

package diagram

import (
	"errors"
	"fmt"
)

// ErrUnknownFamily indicates a family tag outside the dispatch table.
var ErrUnknownFamily = errors.New("diagram: unknown family")

// ErrConfigMismatch indicates a config whose type does not belong to the
// descriptor's family.
var ErrConfigMismatch = errors.New("diagram: config does not match family")

// ErrInvalidParameter indicates an invalid canvas or family config. Config
// errors from the domain packages are joined to it, so both sentinels match
// errors.Is.
var ErrInvalidParameter = errors.New("diagram: invalid parameter")

// Method names used as error prefixes.
const (
	MethodNewDescriptor = "NewDescriptor"
	MethodDecode        = "Decode"
)

func wrapf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
