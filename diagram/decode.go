// SPDX-License-Identifier: MIT
// Package: diagramkit/diagram
//
// decode.go - descriptors from YAML or JSON.
//
// Input is one or more YAML documents; each document is either a single
// descriptor mapping or a sequence of them. JSON is accepted as the YAML
// subset it is. A descriptor document looks like
//
//	family: parabola
//	canvas: {width: 400, height: 300, showLabels: true}
//	params: {a: 1, b: 0, c: -2}
//
// Canvas and params start from their defaults, so omitted keys keep the
// default values.

package diagram

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/diagramkit/scene"
)

type document struct {
	Family Family    `yaml:"family"`
	Canvas yaml.Node `yaml:"canvas"`
	Params yaml.Node `yaml:"params"`
}

// Decode reads every descriptor in r. Each one is checked the way
// NewDescriptor checks it; the first failure aborts the read and names the
// descriptor's position (0-based) in the input.
func Decode(r io.Reader) ([]Descriptor, error) {
	dec := yaml.NewDecoder(r)
	var out []Descriptor
	for {
		var root yaml.Node
		err := dec.Decode(&root)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, wrapf(MethodDecode, ErrInvalidParameter, "descriptor %d: %v", len(out), err)
		}
		node := &root
		if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
			node = node.Content[0]
		}
		if node.Kind == 0 {
			continue
		}
		items := []*yaml.Node{node}
		if node.Kind == yaml.SequenceNode {
			items = node.Content
		}
		for _, item := range items {
			d, err := decodeOne(item)
			if err != nil {
				return nil, wrapf(MethodDecode, err, "descriptor %d", len(out))
			}
			out = append(out, d)
		}
	}
}

// DecodeOne reads exactly one descriptor.
func DecodeOne(r io.Reader) (Descriptor, error) {
	ds, err := Decode(r)
	if err != nil {
		return Descriptor{}, err
	}
	if len(ds) != 1 {
		return Descriptor{}, wrapf(MethodDecode, ErrInvalidParameter, "want 1 descriptor, got %d", len(ds))
	}
	return ds[0], nil
}

func decodeOne(n *yaml.Node) (Descriptor, error) {
	if n.Kind != yaml.MappingNode {
		return Descriptor{}, fmt.Errorf("line %d: want a mapping: %w", n.Line, ErrInvalidParameter)
	}
	var doc document
	if err := n.Decode(&doc); err != nil {
		return Descriptor{}, fmt.Errorf("line %d: %v: %w", n.Line, err, ErrInvalidParameter)
	}
	e, ok := table[doc.Family]
	if !ok {
		return Descriptor{}, fmt.Errorf("line %d: %q: %w", n.Line, doc.Family, ErrUnknownFamily)
	}
	cv := scene.DefaultCanvas()
	if doc.Canvas.Kind != 0 {
		if err := doc.Canvas.Decode(&cv); err != nil {
			return Descriptor{}, fmt.Errorf("line %d: canvas: %v: %w", doc.Canvas.Line, err, ErrInvalidParameter)
		}
	}
	cfg, err := e.decode(&doc.Params)
	if err != nil {
		return Descriptor{}, fmt.Errorf("line %d: %s params: %v: %w", doc.Params.Line, doc.Family, err, ErrInvalidParameter)
	}
	return NewDescriptor(doc.Family, cfg, cv)
}
