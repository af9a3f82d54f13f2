// SPDX-License-Identifier: MIT
// Package: diagramkit/physics
//
// circuit.go - series and parallel circuit composers.
//
// Contract:
//   - Tokens resolve through shape.ParseComponent. Unknown tokens are
//     dropped before layout: they draw nothing and take no slot, and the
//     rest of the sequence is still placed.
//   - Successive symbols on one wire are exactly ComponentPitch pixels
//     apart, centre to centre.
//   - Wire is drawn only between symbols; each symbol carries its own leads
//     across shape.SymbolSpan.

package physics

import (
	"math"
	"slices"
	"strings"

	"github.com/katalvlaran/diagramkit/geom"
	"github.com/katalvlaran/diagramkit/scene"
	"github.com/katalvlaran/diagramkit/shape"
)

// Circuit layout constants, in pixels.
const (
	ComponentPitch    = 90.0
	MaxComponents     = 16
	MaxBranches       = 4
	circuitMargin     = 40.0
	wireWidth         = 2.0
	junctionRadius    = 3.5
	defaultParallelOn = "battery"
)

// Placement is one laid-out component.
type Placement struct {
	Component shape.Component
	At        geom.Point
	Vertical  bool
}

// resolve keeps the recognised tokens in order.
func resolve(tokens []string) []shape.Component {
	out := make([]shape.Component, 0, len(tokens))
	for _, t := range tokens {
		if c, ok := shape.ParseComponent(t); ok {
			out = append(out, c)
		}
	}
	return out
}

func validateTokens(method string, tokens []string) error {
	if len(tokens) > MaxComponents {
		return wrapf(method, ErrInvalidParameter, "at most %d components, got %d", MaxComponents, len(tokens))
	}
	for i, t := range tokens {
		if _, ok := shape.ParseComponent(t); !ok {
			return wrapf(method, ErrUnknownComponent, "component %d %q", i, t)
		}
	}
	return nil
}

// SeriesCircuit is a single loop of components.
type SeriesCircuit struct {
	Components []string `yaml:"components" json:"components"`
}

// DefaultSeriesCircuit returns battery, resistor and bulb.
func DefaultSeriesCircuit() SeriesCircuit {
	return SeriesCircuit{Components: []string{"battery", "resistor", "bulb"}}
}

// Validate reports unknown tokens and oversize circuits.
func (c SeriesCircuit) Validate() error { return validateTokens(MethodSeriesCircuit, c.Components) }

// seriesPerWire is the number of symbols one horizontal wire holds.
func seriesPerWire(w float64) int {
	return int(math.Max(1, math.Floor((w-2*circuitMargin)/ComponentPitch)))
}

// Fits reports whether every recognised component has a slot on a w×h
// canvas: two wires of seriesPerWire symbols each.
func (c SeriesCircuit) Fits(w, h float64) error {
	if n, room := len(resolve(c.Components)), 2*seriesPerWire(w); n > room {
		return wrapf(MethodSeriesCircuit, ErrInvalidParameter, "%d components need more than %v px: room for %d", n, w, room)
	}
	return nil
}

// Layout places the recognised components on a w×h canvas. The top wire
// takes as many as fit at ComponentPitch; the rest continue right to left
// along the bottom wire. Components past what Fits allows are not placed.
// It also returns the loop rectangle.
func (c SeriesCircuit) Layout(w, h float64) ([]Placement, geom.Rect) {
	comps := resolve(c.Components)
	if len(comps) > MaxComponents {
		comps = comps[:MaxComponents]
	}
	perWire := seriesPerWire(w)
	top := comps
	var bottom []shape.Component
	if len(comps) > perWire {
		top, bottom = comps[:perWire], comps[perWire:]
		if len(bottom) > perWire {
			bottom = bottom[:perWire]
		}
	}
	span := float64(max(len(top), len(bottom))) * ComponentPitch
	loopW := math.Max(span, 0.6*(w-2*circuitMargin))
	loop := geom.Rect{X: (w - loopW) / 2, Y: 0.28 * h, W: loopW, H: 0.46 * h}

	out := make([]Placement, 0, len(top)+len(bottom))
	x0 := loop.Center().X - float64(len(top))*ComponentPitch/2 + ComponentPitch/2
	for i, k := range top {
		out = append(out, Placement{Component: k, At: geom.Pt(x0+float64(i)*ComponentPitch, loop.Y)})
	}
	xb := loop.Center().X + float64(len(bottom))*ComponentPitch/2 - ComponentPitch/2
	for i, k := range bottom {
		out = append(out, Placement{Component: k, At: geom.Pt(xb-float64(i)*ComponentPitch, loop.Bottom())})
	}
	return out, loop
}

// DrawSeries builds the series circuit scene.
func DrawSeries(c SeriesCircuit, cv scene.Canvas) *scene.Scene {
	cv = cv.Resolve(scene.DefaultWidth, scene.DefaultHeight)
	s := scene.New(cv.Width, cv.Height)
	s.Background = "#ffffff"
	places, loop := c.Layout(cv.Width, cv.Height)
	ink := shape.Shade(cv.Color, -0.5)

	var topX, bottomX []float64
	for _, p := range places {
		if p.At.Y == loop.Y {
			topX = append(topX, p.At.X)
		} else {
			bottomX = append(bottomX, p.At.X)
		}
	}
	wire := scene.Group("wire")
	st := wireStyle(ink)
	wire.Append(horizontalWire(loop.X, loop.Right(), loop.Y, topX, st)...)
	wire.Append(horizontalWire(loop.X, loop.Right(), loop.Bottom(), bottomX, st)...)
	wire.Append(
		scene.Line(geom.Pt(loop.X, loop.Y), geom.Pt(loop.X, loop.Bottom()), st),
		scene.Line(geom.Pt(loop.Right(), loop.Y), geom.Pt(loop.Right(), loop.Bottom()), st),
	)
	s.Add(wire)

	s.Add(placeSymbols(s, places, ink, cv.ShowLabels))
	if cv.ShowLabels {
		mid := geom.Pt(loop.Right(), loop.Center().Y)
		s.Add(shape.Arrowhead(mid.Add(geom.Pt(0, 6)), geom.Pt(0, 1), 10, 8, ink))
		s.Add(scene.Text(mid.Add(geom.Pt(14, 0)), "I", withAnchor(scene.Label(ink, 13), "start")).WithClass("current-label"))
	}
	s.Title = "Series circuit: " + tokenList(places)
	return s
}

// ParallelCircuit is a source on the left rail feeding branches stacked
// between the two rails. An empty branch is a plain wire.
type ParallelCircuit struct {
	Source   string     `yaml:"source" json:"source"`
	Branches [][]string `yaml:"branches" json:"branches"`
}

// DefaultParallelCircuit returns a battery feeding two bulbs in parallel.
func DefaultParallelCircuit() ParallelCircuit {
	return ParallelCircuit{Source: defaultParallelOn, Branches: [][]string{{"bulb"}, {"bulb"}}}
}

// Validate checks the branch count and every token.
func (c ParallelCircuit) Validate() error {
	if len(c.Branches) == 0 || len(c.Branches) > MaxBranches {
		return wrapf(MethodParallelCircuit, ErrInvalidParameter, "branches must be in [1,%d], got %d", MaxBranches, len(c.Branches))
	}
	if c.Source != "" {
		if _, ok := shape.ParseComponent(c.Source); !ok {
			return wrapf(MethodParallelCircuit, ErrUnknownComponent, "source %q", c.Source)
		}
	}
	for _, b := range c.Branches {
		if err := validateTokens(MethodParallelCircuit, b); err != nil {
			return err
		}
	}
	return nil
}

// parallelPerRung is the number of symbols one branch holds between the
// rails; one pitch is kept for the junction columns.
func parallelPerRung(w float64) int {
	return max(1, int(math.Floor((w-2*circuitMargin)/ComponentPitch))-1)
}

// Fits reports whether every branch fits between the rails of a w×h
// canvas.
func (c ParallelCircuit) Fits(w, h float64) error {
	room := parallelPerRung(w)
	for i, b := range c.Branches {
		if n := len(resolve(b)); n > room {
			return wrapf(MethodParallelCircuit, ErrInvalidParameter, "branch %d has %d components, room for %d at %v px", i, n, room, w)
		}
	}
	return nil
}

// Layout places the source and every branch's components. Branch k's
// components share the rung's y and are ComponentPitch apart. A branch
// longer than Fits allows is cut to the rung.
func (c ParallelCircuit) Layout(w, h float64) (source Placement, branches [][]Placement, rails geom.Rect) {
	n := len(c.Branches)
	if n > MaxBranches {
		n = MaxBranches
	}
	if n < 1 {
		n = 1
	}
	room := parallelPerRung(w)
	rungs := make([][]shape.Component, n)
	widest := 1
	for i := 0; i < n && i < len(c.Branches); i++ {
		rungs[i] = resolve(c.Branches[i])
		if len(rungs[i]) > room {
			rungs[i] = rungs[i][:room]
		}
		widest = max(widest, len(rungs[i]))
	}
	railW := math.Max(float64(widest)*ComponentPitch+ComponentPitch, 0.6*(w-2*circuitMargin))
	rails = geom.Rect{X: (w - railW) / 2, Y: 0.2 * h, W: railW, H: 0.62 * h}

	src, ok := shape.ParseComponent(c.Source)
	if !ok {
		src = shape.Battery
	}
	source = Placement{Component: src, At: geom.Pt(rails.X, rails.Center().Y), Vertical: true}

	ys := branchY(rails, n)
	cx := rails.Center().X + ComponentPitch/4
	branches = make([][]Placement, n)
	for i, rung := range rungs {
		y := ys[i]
		x0 := cx - float64(len(rung))*ComponentPitch/2 + ComponentPitch/2
		for j, k := range rung {
			branches[i] = append(branches[i], Placement{Component: k, At: geom.Pt(x0+float64(j)*ComponentPitch, y)})
		}
	}
	return source, branches, rails
}

// branchY returns the rung heights for n branches inside rails.
func branchY(rails geom.Rect, n int) []float64 {
	ys := make([]float64, n)
	gap := rails.H / float64(n)
	for i := range ys {
		ys[i] = rails.Y + gap*(float64(i)+0.5)
	}
	return ys
}

// DrawParallel builds the parallel circuit scene.
func DrawParallel(c ParallelCircuit, cv scene.Canvas) *scene.Scene {
	cv = cv.Resolve(scene.DefaultWidth, scene.DefaultHeight)
	s := scene.New(cv.Width, cv.Height)
	s.Background = "#ffffff"
	source, branches, rails := c.Layout(cv.Width, cv.Height)
	ink := shape.Shade(cv.Color, -0.5)
	st := wireStyle(ink)
	ys := branchY(rails, len(branches))
	rightX := rails.Right()
	leftJoin := rails.X + ComponentPitch*0.6

	// The source's top terminal feeds the left junction column; its bottom
	// terminal returns along the bottom wire to the right column.
	wire := scene.Group("wire")
	wire.Append(
		scene.Line(geom.Pt(rails.X, rails.Y), geom.Pt(rails.X, source.At.Y-shape.SymbolSpan/2), st),
		scene.Line(geom.Pt(rails.X, source.At.Y+shape.SymbolSpan/2), geom.Pt(rails.X, rails.Bottom()), st),
		scene.Line(geom.Pt(rails.X, rails.Y), geom.Pt(leftJoin, rails.Y), st),
		scene.Line(geom.Pt(leftJoin, rails.Y), geom.Pt(leftJoin, ys[len(ys)-1]), st),
		scene.Line(geom.Pt(rightX, ys[0]), geom.Pt(rightX, rails.Bottom()), st),
		scene.Line(geom.Pt(rails.X, rails.Bottom()), geom.Pt(rightX, rails.Bottom()), st),
	)
	for i, b := range branches {
		xs := make([]float64, len(b))
		for j, p := range b {
			xs[j] = p.At.X
		}
		wire.Append(horizontalWire(leftJoin, rightX, ys[i], xs, st)...)
	}
	s.Add(wire)

	junctions := scene.Group("junctions")
	for _, y := range ys {
		junctions.Append(
			scene.Circle(geom.Pt(leftJoin, y), junctionRadius, scene.Filled(ink)),
			scene.Circle(geom.Pt(rightX, y), junctionRadius, scene.Filled(ink)),
		)
	}
	s.Add(junctions)

	all := []Placement{source}
	for _, b := range branches {
		all = append(all, b...)
	}
	s.Add(placeSymbols(s, all, ink, cv.ShowLabels))
	s.Title = "Parallel circuit with " + scene.Format(float64(len(branches)), 0) + " branches"
	return s
}

// placeSymbols emits one symbol per placement plus its overlay point. A
// vertical placement turns the symbol 90° about its centre.
func placeSymbols(s *scene.Scene, places []Placement, ink string, labels bool) *scene.Node {
	g := scene.Group("components")
	for _, p := range places {
		sym := shape.Symbol(p.Component, p.At, ink)
		if sym == nil {
			continue
		}
		labelAt := p.At.Add(geom.Pt(0, -22))
		if p.Vertical {
			sym.Rotated(90, p.At)
			labelAt = p.At.Add(geom.Pt(-26, 0))
		}
		g.Append(sym)
		s.Overlay.Points = append(s.Overlay.Points, scene.OverlayPoint{Name: p.Component.String(), At: p.At})
		if labels {
			st := scene.Label("#6b7280", 10)
			if p.Vertical {
				st.Anchor = "end"
			}
			g.Append(scene.Text(labelAt, p.Component.String(), st).WithClass("component-label"))
		}
	}
	return g
}

// horizontalWire draws wire from x0 to x1 at y, leaving a SymbolSpan gap
// centred on every x in gaps.
func horizontalWire(x0, x1, y float64, gaps []float64, st scene.Style) []*scene.Node {
	sorted := slices.Clone(gaps)
	slices.Sort(sorted)
	var out []*scene.Node
	cur := x0
	for _, g := range sorted {
		left := g - shape.SymbolSpan/2
		if left > cur {
			out = append(out, scene.Line(geom.Pt(cur, y), geom.Pt(left, y), st))
		}
		cur = math.Max(cur, g+shape.SymbolSpan/2)
	}
	if x1 > cur {
		out = append(out, scene.Line(geom.Pt(cur, y), geom.Pt(x1, y), st))
	}
	return out
}

func wireStyle(ink string) scene.Style {
	st := scene.Stroked(ink, wireWidth)
	st.LineCap = "round"
	return st
}

func tokenList(places []Placement) string {
	names := make([]string, len(places))
	for i, p := range places {
		names[i] = p.Component.String()
	}
	return strings.Join(names, ", ")
}

