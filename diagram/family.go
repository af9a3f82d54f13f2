// SPDX-License-Identifier: MIT
// Package: diagramkit/diagram
//
// family.go - the closed family enum and its dispatch table.
//
// Every Family maps to exactly one entry: a default-config factory, a typed
// build function and a YAML decoder that starts from the defaults. The
// table is built once at init and never mutated.

package diagram

import (
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/diagramkit/charts"
	"github.com/katalvlaran/diagramkit/chem"
	"github.com/katalvlaran/diagramkit/graphs"
	"github.com/katalvlaran/diagramkit/physics"
	"github.com/katalvlaran/diagramkit/scene"
)

// Family tags a diagram kind.
type Family string

// Mathematics.
const (
	Linear      Family = "linear"
	Parabola    Family = "parabola"
	Cubic       Family = "cubic"
	Hyperbola   Family = "hyperbola"
	Reciprocal  Family = "reciprocal"
	Exponential Family = "exponential"
	Trig        Family = "trig"
	Normal      Family = "normal"
	ODE         Family = "ode"
	Polygon     Family = "polygon"
	Cube        Family = "cube"
)

// Chemistry.
const (
	Molecule      Family = "molecule"
	SmallMolecule Family = "smallMolecule"
	Benzene       Family = "benzene"
	Beaker        Family = "beaker"
	Element       Family = "element"
)

// Physics.
const (
	Incline         Family = "incline"
	SeriesCircuit   Family = "seriesCircuit"
	ParallelCircuit Family = "parallelCircuit"
	ElectricField   Family = "electricField"
	Wave            Family = "wave"
	Projectile      Family = "projectile"
	Lever           Family = "lever"
)

// Statistics.
const (
	Scatter   Family = "scatter"
	Histogram Family = "histogram"
	BoxPlot   Family = "boxplot"
	Bar       Family = "bar"
)

// Config is one family's explicit parameter struct.
type Config interface {
	Validate() error
}

type entry struct {
	defaults func() Config
	accepts  func(Config) bool
	build    func(Config, scene.Canvas) (*scene.Scene, bool)
	decode   func(*yaml.Node) (Config, error)
}

// bind adapts a typed generator to the table. build reports false when cfg
// is not a C.
func bind[C Config](defaults func() C, draw func(C, scene.Canvas) *scene.Scene) entry {
	return entry{
		defaults: func() Config { return defaults() },
		accepts: func(cfg Config) bool {
			_, ok := cfg.(C)
			return ok
		},
		build: func(cfg Config, cv scene.Canvas) (*scene.Scene, bool) {
			c, ok := cfg.(C)
			if !ok {
				return nil, false
			}
			return draw(c, cv), true
		},
		decode: func(n *yaml.Node) (Config, error) {
			c := defaults()
			if n != nil && n.Kind != 0 {
				if err := n.Decode(&c); err != nil {
					return nil, err
				}
			}
			return c, nil
		},
	}
}

// plot lifts graphs.Plot to a typed generator.
func plot[C graphs.Function](c C, cv scene.Canvas) *scene.Scene { return graphs.Plot(c, cv) }

var table = map[Family]entry{
	Linear:      bind(graphs.DefaultLinear, plot[graphs.Linear]),
	Parabola:    bind(graphs.DefaultParabola, plot[graphs.Parabola]),
	Cubic:       bind(graphs.DefaultCubic, plot[graphs.Cubic]),
	Hyperbola:   bind(graphs.DefaultHyperbola, plot[graphs.Hyperbola]),
	Reciprocal:  bind(graphs.DefaultReciprocal, plot[graphs.Reciprocal]),
	Exponential: bind(graphs.DefaultExponential, plot[graphs.Exponential]),
	Trig:        bind(graphs.DefaultTrig, plot[graphs.Trig]),
	Normal:      bind(graphs.DefaultNormal, plot[graphs.Normal]),
	ODE:         bind(graphs.DefaultODE, plot[graphs.ODE]),
	Polygon:     bind(graphs.DefaultRegularPolygon, graphs.Polygon),
	Cube:        bind(graphs.DefaultCube, graphs.CubeDiagram),

	Molecule:      bind(chem.DefaultMolecule, chem.Draw),
	SmallMolecule: bind(chem.DefaultSmallMolecule, chem.DrawSmall),
	Benzene:       bind(chem.DefaultBenzene, chem.DrawBenzene),
	Beaker:        bind(chem.DefaultBeaker, chem.DrawBeaker),
	Element:       bind(chem.DefaultElement, chem.DrawElement),

	Incline:         bind(physics.DefaultIncline, physics.DrawIncline),
	SeriesCircuit:   bind(physics.DefaultSeriesCircuit, physics.DrawSeries),
	ParallelCircuit: bind(physics.DefaultParallelCircuit, physics.DrawParallel),
	ElectricField:   bind(physics.DefaultElectricField, physics.DrawField),
	Wave:            bind(physics.DefaultWave, physics.DrawWave),
	Projectile:      bind(physics.DefaultProjectile, physics.DrawProjectile),
	Lever:           bind(physics.DefaultLever, physics.DrawLever),

	Scatter:   bind(charts.DefaultScatter, charts.DrawScatter),
	Histogram: bind(charts.DefaultHistogram, charts.DrawHistogram),
	BoxPlot:   bind(charts.DefaultBoxPlot, charts.DrawBoxPlot),
	Bar:       bind(charts.DefaultBar, charts.DrawBar),
}

// Known reports whether f is in the dispatch table.
func (f Family) Known() bool {
	_, ok := table[f]
	return ok
}

// Families returns every known family, sorted.
func Families() []Family {
	out := make([]Family, 0, len(table))
	for f := range table {
		out = append(out, f)
	}
	slices.Sort(out)
	return out
}

// Defaults returns the default config for f, or nil for unknown families.
func Defaults(f Family) Config {
	e, ok := table[f]
	if !ok {
		return nil
	}
	return e.defaults()
}
