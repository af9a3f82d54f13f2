// SPDX-License-Identifier: MIT
// Package: diagramkit/shape
//
// circuit.go - circuit component symbols.
//
// Contract:
//   - Component is a closed enum; ParseComponent maps tokens to it through a
//     fixed table and reports ok=false for anything else.
//   - Every symbol is drawn horizontally, centred on its anchor, and spans
//     exactly SymbolSpan pixels of wire (lead to lead). Callers rotate the
//     returned group for vertical runs.

package shape

import (
	"strings"

	"github.com/katalvlaran/diagramkit/geom"
	"github.com/katalvlaran/diagramkit/scene"
)

// SymbolSpan is the wire length a symbol occupies, in pixels.
const SymbolSpan = 44.0

// Component is a circuit element kind.
type Component int

const (
	Battery Component = iota
	Cell
	Resistor
	Bulb
	Switch
	Capacitor
	Ammeter
	Voltmeter
	Diode
	LED
	numComponents
)

var componentNames = [numComponents]string{
	Battery:   "battery",
	Cell:      "cell",
	Resistor:  "resistor",
	Bulb:      "bulb",
	Switch:    "switch",
	Capacitor: "capacitor",
	Ammeter:   "ammeter",
	Voltmeter: "voltmeter",
	Diode:     "diode",
	LED:       "led",
}

var componentAliases = map[string]Component{
	"lamp":  Bulb,
	"light": Bulb,
}

// String returns the canonical token.
func (c Component) String() string {
	if c < 0 || c >= numComponents {
		return "unknown"
	}
	return componentNames[c]
}

// ParseComponent resolves a token case-insensitively.
func ParseComponent(token string) (Component, bool) {
	t := strings.ToLower(strings.TrimSpace(token))
	for i, name := range componentNames {
		if name == t {
			return Component(i), true
		}
	}
	c, ok := componentAliases[t]
	return c, ok
}

type symbolFunc func(g *scene.Node, c geom.Point, st scene.Style)

var symbolTable = [numComponents]symbolFunc{
	Battery:   drawBattery,
	Cell:      drawCell,
	Resistor:  drawResistor,
	Bulb:      drawBulb,
	Switch:    drawSwitch,
	Capacitor: drawCapacitor,
	Ammeter:   meter("A"),
	Voltmeter: meter("V"),
	Diode:     drawDiode(false),
	LED:       drawDiode(true),
}

// Symbol returns the "symbol" group for c centred on at. Unknown components
// return nil.
func Symbol(c Component, at geom.Point, color string) *scene.Node {
	if c < 0 || c >= numComponents {
		return nil
	}
	g := scene.Group("symbol").WithName(c.String())
	st := scene.Stroked(color, 2)
	st.LineCap = "round"
	symbolTable[c](g, at, st)
	return g
}

// leads draws wire from the span ends to ±half around c.
func leads(g *scene.Node, c geom.Point, half float64, st scene.Style) {
	g.Append(
		scene.Line(geom.Pt(c.X-SymbolSpan/2, c.Y), geom.Pt(c.X-half, c.Y), st),
		scene.Line(geom.Pt(c.X+half, c.Y), geom.Pt(c.X+SymbolSpan/2, c.Y), st),
	)
}

func drawCell(g *scene.Node, c geom.Point, st scene.Style) {
	leads(g, c, 4, st)
	thick := st
	thick.StrokeWidth = 4
	g.Append(
		scene.Line(geom.Pt(c.X-4, c.Y-14), geom.Pt(c.X-4, c.Y+14), st),
		scene.Line(geom.Pt(c.X+4, c.Y-7), geom.Pt(c.X+4, c.Y+7), thick),
	)
}

func drawBattery(g *scene.Node, c geom.Point, st scene.Style) {
	leads(g, c, 12, st)
	thick := st
	thick.StrokeWidth = 4
	for _, x := range []float64{-12, 4} {
		g.Append(
			scene.Line(geom.Pt(c.X+x, c.Y-14), geom.Pt(c.X+x, c.Y+14), st),
			scene.Line(geom.Pt(c.X+x+8, c.Y-7), geom.Pt(c.X+x+8, c.Y+7), thick),
		)
	}
}

func drawResistor(g *scene.Node, c geom.Point, st scene.Style) {
	leads(g, c, 14, st)
	box := st
	box.Fill = "#ffffff"
	g.Append(scene.Rect(geom.Rect{X: c.X - 14, Y: c.Y - 6, W: 28, H: 12}, box))
}

func drawBulb(g *scene.Node, c geom.Point, st scene.Style) {
	const r = 11.0
	leads(g, c, r, st)
	body := st
	body.Fill = "#fef9c3"
	d := r * 0.7071
	g.Append(
		scene.Circle(c, r, body),
		scene.Line(geom.Pt(c.X-d, c.Y-d), geom.Pt(c.X+d, c.Y+d), st),
		scene.Line(geom.Pt(c.X-d, c.Y+d), geom.Pt(c.X+d, c.Y-d), st),
	)
}

func drawSwitch(g *scene.Node, c geom.Point, st scene.Style) {
	leads(g, c, 12, st)
	g.Append(
		scene.Circle(geom.Pt(c.X-12, c.Y), 2, scene.Filled(st.Stroke)),
		scene.Circle(geom.Pt(c.X+12, c.Y), 2, scene.Filled(st.Stroke)),
		scene.Line(geom.Pt(c.X-12, c.Y), geom.Pt(c.X+10, c.Y-12), st),
	)
}

func drawCapacitor(g *scene.Node, c geom.Point, st scene.Style) {
	leads(g, c, 4, st)
	g.Append(
		scene.Line(geom.Pt(c.X-4, c.Y-12), geom.Pt(c.X-4, c.Y+12), st),
		scene.Line(geom.Pt(c.X+4, c.Y-12), geom.Pt(c.X+4, c.Y+12), st),
	)
}

func meter(letter string) symbolFunc {
	return func(g *scene.Node, c geom.Point, st scene.Style) {
		const r = 12.0
		leads(g, c, r, st)
		body := st
		body.Fill = "#ffffff"
		label := scene.Label(st.Stroke, 13)
		label.FontWeight = "bold"
		g.Append(scene.Circle(c, r, body), scene.Text(c, letter, label))
	}
}

func drawDiode(emitting bool) symbolFunc {
	return func(g *scene.Node, c geom.Point, st scene.Style) {
		leads(g, c, 8, st)
		tri := st
		tri.Fill = st.Stroke
		g.Append(
			scene.Polygon([]geom.Point{{X: c.X - 8, Y: c.Y - 9}, {X: c.X - 8, Y: c.Y + 9}, {X: c.X + 8, Y: c.Y}}, tri),
			scene.Line(geom.Pt(c.X+8, c.Y-9), geom.Pt(c.X+8, c.Y+9), st),
		)
		if !emitting {
			return
		}
		thin := st
		thin.StrokeWidth = 1.2
		for _, dx := range []float64{-2, 5} {
			from := geom.Pt(c.X+dx, c.Y-12)
			to := geom.Pt(c.X+dx+7, c.Y-19)
			g.Append(scene.Line(from, to, thin), Arrowhead(to, to.Sub(from), 4, 4, st.Stroke))
		}
	}
}
