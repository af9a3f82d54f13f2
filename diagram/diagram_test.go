// SPDX-License-Identifier: MIT
// Package: diagramkit/diagram_test
//
// diagram_test.go - dispatch, descriptors, memoisation and decoding.

package diagram_test

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/diagramkit/chem"
	"github.com/katalvlaran/diagramkit/diagram"
	"github.com/katalvlaran/diagramkit/graphs"
	"github.com/katalvlaran/diagramkit/physics"
	"github.com/katalvlaran/diagramkit/scene"
)

func TestAssemble_EveryFamily(t *testing.T) {
	families := diagram.Families()
	require.Len(t, families, 27)
	for _, f := range families {
		f := f
		t.Run(string(f), func(t *testing.T) {
			t.Parallel()
			d := diagram.Assemble(diagram.Descriptor{Family: f, Canvas: scene.DefaultCanvas()})
			require.False(t, d.IsEmpty())
			assert.Equal(t, f, d.Family)
			assert.True(t, strings.HasPrefix(d.ID, string(f)+"-"), d.ID)
			assert.Equal(t, scene.DefaultWidth, d.Width)
			assert.Equal(t, scene.DefaultHeight, d.Height)
			assert.True(t, strings.HasPrefix(d.SVG, "<svg"), "inline markup starts at the root element")
			assert.True(t, strings.HasSuffix(strings.TrimSpace(d.SVG), "</svg>"))
			assert.Equal(t, d.ID, d.Scene.IDPrefix)
		})
	}
}

func TestAssemble_Deterministic(t *testing.T) {
	desc, err := diagram.NewDescriptor(diagram.Hyperbola, graphs.Hyperbola{A: 2, B: 2}, scene.DefaultCanvas())
	require.NoError(t, err)
	a, b := diagram.Assemble(desc), diagram.Assemble(desc)
	assert.Equal(t, a.ID, b.ID)
	assert.Equal(t, a.SVG, b.SVG)

	other := desc
	other.Config = graphs.Hyperbola{A: 3, B: 2}
	assert.NotEqual(t, a.ID, diagram.Assemble(other).ID)
}

func TestAssemble_SelfContainedIDs(t *testing.T) {
	d := diagram.Assemble(diagram.Descriptor{Family: diagram.Beaker, Canvas: scene.DefaultCanvas()})
	require.NotEmpty(t, d.Scene.Gradients)
	for _, g := range d.Scene.Gradients {
		ref := d.ID + "-" + g.ID
		assert.Contains(t, d.SVG, `id="`+ref+`"`)
		assert.Contains(t, d.SVG, "url(#"+ref+")")
	}
}

func TestAssemble_FailsClosed(t *testing.T) {
	unknown := diagram.Assemble(diagram.Descriptor{Family: "spirograph"})
	assert.True(t, unknown.IsEmpty())
	assert.Equal(t, scene.DefaultWidth, unknown.Width)
	assert.Empty(t, unknown.Scene.Nodes)
	assert.True(t, strings.HasPrefix(unknown.SVG, "<svg"))

	mismatch := diagram.Assemble(diagram.Descriptor{Family: diagram.Parabola, Config: chem.DefaultBeaker()})
	assert.True(t, mismatch.IsEmpty())
	assert.Equal(t, diagram.Parabola, mismatch.Family)
}

func TestAssemble_SeriesCircuitScenario(t *testing.T) {
	desc, err := diagram.NewDescriptor(diagram.SeriesCircuit,
		physics.SeriesCircuit{Components: []string{"battery", "resistor", "bulb"}}, scene.DefaultCanvas())
	require.NoError(t, err)
	d := diagram.Assemble(desc)
	require.Len(t, d.Overlay.Points, 3)
	for i := 1; i < 3; i++ {
		gap := d.Overlay.Points[i].At.Dist(d.Overlay.Points[i-1].At)
		assert.InDelta(t, physics.ComponentPitch, gap, 1e-9)
	}
}

func TestAssemble_CircuitNeedsRoom(t *testing.T) {
	seven := physics.SeriesCircuit{Components: []string{"battery", "resistor", "bulb", "switch", "ammeter", "capacitor", "diode"}}

	_, err := diagram.NewDescriptor(diagram.SeriesCircuit, seven, scene.DefaultCanvas())
	require.Error(t, err)
	assert.ErrorIs(t, err, diagram.ErrInvalidParameter)
	assert.ErrorIs(t, err, physics.ErrInvalidParameter)

	raw := diagram.Assemble(diagram.Descriptor{Family: diagram.SeriesCircuit, Config: seven, Canvas: scene.DefaultCanvas()})
	assert.True(t, raw.IsEmpty())

	wide := scene.DefaultCanvas()
	wide.Width = 600
	desc, err := diagram.NewDescriptor(diagram.SeriesCircuit, seven, wide)
	require.NoError(t, err)
	assert.Len(t, diagram.Assemble(desc).Overlay.Points, 7)
}

func TestNewDescriptor(t *testing.T) {
	cases := []struct {
		name   string
		family diagram.Family
		cfg    diagram.Config
		canvas scene.Canvas
		want   error
	}{
		{"defaults", diagram.Wave, nil, scene.Canvas{}, nil},
		{"typed config", diagram.Incline, physics.Incline{AngleDeg: 20, Mass: 1}, scene.DefaultCanvas(), nil},
		{"unknown family", "spirograph", nil, scene.Canvas{}, diagram.ErrUnknownFamily},
		{"wrong config", diagram.Incline, graphs.DefaultLinear(), scene.Canvas{}, diagram.ErrConfigMismatch},
		{"invalid config", diagram.Incline, physics.Incline{AngleDeg: 95, Mass: 1}, scene.Canvas{}, diagram.ErrInvalidParameter},
		{"negative width", diagram.Wave, nil, scene.Canvas{Width: -1}, diagram.ErrInvalidParameter},
		{"oversize canvas", diagram.Wave, nil, scene.Canvas{Height: scene.MaxDimension + 1}, diagram.ErrInvalidParameter},
		{"bad colour", diagram.Wave, nil, scene.Canvas{Color: "not-a-colour"}, diagram.ErrInvalidParameter},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			d, err := diagram.NewDescriptor(tc.family, tc.cfg, tc.canvas)
			if tc.want == nil {
				require.NoError(t, err)
				assert.NotNil(t, d.Config)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), err.Error())
		})
	}
}

func TestNewDescriptor_KeepsDomainSentinel(t *testing.T) {
	_, err := diagram.NewDescriptor(diagram.Incline, physics.Incline{AngleDeg: 95, Mass: 1}, scene.Canvas{})
	require.Error(t, err)
	assert.ErrorIs(t, err, diagram.ErrInvalidParameter)
	assert.ErrorIs(t, err, physics.ErrInvalidParameter)
}

func TestCache(t *testing.T) {
	var c diagram.Cache
	desc := diagram.Descriptor{Family: diagram.Benzene, Canvas: scene.DefaultCanvas()}

	var wg sync.WaitGroup
	ids := make([]string, 8)
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i] = c.Get(desc).ID
		}(i)
	}
	wg.Wait()
	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
	assert.Equal(t, 1, c.Len())

	again := c.Get(desc)
	assert.Equal(t, diagram.Assemble(desc).SVG, again.SVG)
	hits, misses := c.Stats()
	assert.Equal(t, 1, misses)
	assert.GreaterOrEqual(t, hits, 1)

	c.Reset()
	assert.Zero(t, c.Len())
}

const batch = `
family: parabola
canvas: {width: 200, height: 100}
params: {a: 2, c: -1}
---
- family: beaker
  params: {fillLevel: 125}
- {"family": "seriesCircuit", "params": {"components": ["battery", "resistor"]}}
`

func TestDecode(t *testing.T) {
	ds, err := diagram.Decode(strings.NewReader(batch))
	require.NoError(t, err)
	require.Len(t, ds, 3)

	assert.Equal(t, diagram.Parabola, ds[0].Family)
	assert.Equal(t, graphs.Parabola{A: 2, C: -1}, ds[0].Config)
	assert.Equal(t, 200.0, ds[0].Canvas.Width)
	assert.Equal(t, scene.DefaultColor, ds[0].Canvas.Color, "omitted canvas keys keep defaults")
	assert.True(t, ds[0].Canvas.ShowLabels)

	beaker, ok := ds[1].Config.(chem.Beaker)
	require.True(t, ok)
	assert.Equal(t, chem.DefaultCapacity, beaker.Capacity)
	assert.Equal(t, 125.0, beaker.FillLevel)
	assert.Equal(t, scene.DefaultCanvas(), ds[1].Canvas)

	assert.Equal(t, physics.SeriesCircuit{Components: []string{"battery", "resistor"}}, ds[2].Config)
}

func TestDecode_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"unknown family", "family: spirograph\n", diagram.ErrUnknownFamily},
		{"not a mapping", "- 3\n", diagram.ErrInvalidParameter},
		{"bad params", "family: parabola\nparams: {a: [1]}\n", diagram.ErrInvalidParameter},
		{"invalid value", "family: incline\nparams: {angle: 120}\n", diagram.ErrInvalidParameter},
		{"bad yaml", "family: [\n", diagram.ErrInvalidParameter},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := diagram.Decode(strings.NewReader(tc.in))
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestDecode_Empty(t *testing.T) {
	ds, err := diagram.Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, ds)

	_, err = diagram.DecodeOne(strings.NewReader(""))
	assert.ErrorIs(t, err, diagram.ErrInvalidParameter)
}
