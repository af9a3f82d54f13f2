// SPDX-License-Identifier: MIT
// Package: diagramkit/diagram
//
// descriptor.go - the immutable input naming a family, its config and the
// canvas style options.

package diagram

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/diagramkit/geom"
	"github.com/katalvlaran/diagramkit/scene"
	"github.com/katalvlaran/diagramkit/shape"
)

// idHashLen is the number of hex digits of the content hash kept in an ID.
const idHashLen = 10

// Descriptor fully determines one diagram. A nil Config means the family
// defaults.
type Descriptor struct {
	Family Family
	Config Config
	Canvas scene.Canvas
}

// NewDescriptor checks that family is known, that cfg belongs to it and is
// valid, and that the canvas is usable. A nil cfg selects the defaults.
func NewDescriptor(family Family, cfg Config, canvas scene.Canvas) (Descriptor, error) {
	e, ok := table[family]
	if !ok {
		return Descriptor{}, wrapf(MethodNewDescriptor, ErrUnknownFamily, "%q", family)
	}
	if cfg == nil {
		cfg = e.defaults()
	}
	if !e.accepts(cfg) {
		return Descriptor{}, wrapf(MethodNewDescriptor, ErrConfigMismatch, "%s does not take %T", family, cfg)
	}
	if err := cfg.Validate(); err != nil {
		return Descriptor{}, fmt.Errorf("%s: %s: %w", MethodNewDescriptor, family, errors.Join(ErrInvalidParameter, err))
	}
	if err := ValidateCanvas(canvas); err != nil {
		return Descriptor{}, err
	}
	if err := fits(cfg, canvas); err != nil {
		return Descriptor{}, fmt.Errorf("%s: %s: %w", MethodNewDescriptor, family, errors.Join(ErrInvalidParameter, err))
	}
	return Descriptor{Family: family, Config: cfg, Canvas: canvas}, nil
}

// ValidateCanvas rejects non-finite or oversized dimensions and colours
// that do not parse. Zero dimensions and an empty colour are valid and mean
// the defaults.
func ValidateCanvas(c scene.Canvas) error {
	if !geom.AllFinite(c.Width, c.Height) || c.Width < 0 || c.Height < 0 {
		return wrapf(MethodNewDescriptor, ErrInvalidParameter, "canvas size must be finite and ≥ 0, got %v×%v", c.Width, c.Height)
	}
	if c.Width > scene.MaxDimension || c.Height > scene.MaxDimension {
		return wrapf(MethodNewDescriptor, ErrInvalidParameter, "canvas size must be ≤ %v, got %v×%v", scene.MaxDimension, c.Width, c.Height)
	}
	if c.Color != "" {
		if _, ok := shape.ParseColor(c.Color); !ok {
			return wrapf(MethodNewDescriptor, ErrInvalidParameter, "colour %q", c.Color)
		}
	}
	return nil
}

// fitter is implemented by configs whose layout needs room on the canvas.
type fitter interface {
	Fits(w, h float64) error
}

// fits checks cfg against the resolved canvas.
func fits(cfg Config, canvas scene.Canvas) error {
	f, ok := cfg.(fitter)
	if !ok {
		return nil
	}
	cv := canvas.Resolve(scene.DefaultWidth, scene.DefaultHeight)
	return f.Fits(cv.Width, cv.Height)
}

// keyDoc is the canonical form hashed into Key.
type keyDoc struct {
	Family Family       `yaml:"family"`
	Canvas scene.Canvas `yaml:"canvas"`
	Params Config       `yaml:"params"`
}

// Key returns the canonical text of d: its family, canvas and config
// serialised as YAML with fields in declaration order. Equal descriptors
// have equal keys.
func (d Descriptor) Key() string {
	out, err := yaml.Marshal(keyDoc{Family: d.Family, Canvas: d.Canvas, Params: d.Config})
	if err != nil {
		return fmt.Sprintf("%s|%#v|%#v", d.Family, d.Canvas, d.Config)
	}
	return string(out)
}

// ID returns the family followed by a short content hash of Key, e.g.
// "parabola-3f2a9c01be".
func (d Descriptor) ID() string {
	sum := sha256.Sum256([]byte(d.Key()))
	return string(d.Family) + "-" + hex.EncodeToString(sum[:])[:idHashLen]
}
