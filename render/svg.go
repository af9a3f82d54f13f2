// SPDX-License-Identifier: MIT
// Package: diagramkit/render
//
// svg.go - SVG serialisation through ajstarks/svgo (float variant).
//
// Contract:
//   - Output is byte-identical for identical scenes: attributes are written
//     in a fixed order and numbers with a fixed number of decimals.
//   - Every gradient and filter id is rendered through Scene.Ref, so two
//     diagrams inlined into one page never collide.
//   - Node attributes are passed to svgo as raw name="value" pairs; values
//     are XML-escaped here.

package render

import (
	"bytes"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo/float"

	"github.com/katalvlaran/diagramkit/scene"
)

// DefaultDecimals is the coordinate precision of SVG output.
const DefaultDecimals = 2

// SVG renders scenes as SVG documents. Inline drops the XML prolog and the
// generator comment so the markup can be embedded in HTML.
type SVG struct {
	Decimals int
	Inline   bool
}

// Ext implements Backend.
func (SVG) Ext() string { return "svg" }

// MediaType implements Backend.
func (SVG) MediaType() string { return "image/svg+xml" }

// String renders s and returns the markup; rendering into memory cannot
// fail, so errors are not reported.
func (b SVG) String(s *scene.Scene) string {
	out, _ := Bytes(b, s)
	return string(out)
}

// Render implements Backend.
func (b SVG) Render(w io.Writer, s *scene.Scene) error {
	if s == nil {
		return ErrNilScene
	}
	dec := b.Decimals
	if dec <= 0 {
		dec = DefaultDecimals
	}

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Decimals = dec
	canvas.Startview(s.Width, s.Height, 0, 0, s.Width, s.Height)
	if s.Title != "" {
		canvas.Title(s.Title)
	}
	writeDefs(canvas, s)
	if s.Background != "" {
		canvas.Rect(0, 0, s.Width, s.Height, attrs(pair("class", "background"), pair("fill", s.Background)))
	}
	r := svgWriter{canvas: canvas, scene: s, dec: dec}
	for _, n := range s.Nodes {
		r.node(n)
	}
	canvas.End()

	out := buf.Bytes()
	if b.Inline {
		if i := bytes.Index(out, []byte("<svg")); i > 0 {
			out = out[i:]
		}
	}
	ew := &errWriter{w: w}
	_, _ = ew.Write(out)
	return ew.err
}

func writeDefs(canvas *svg.SVG, s *scene.Scene) {
	if len(s.Gradients) == 0 && len(s.Filters) == 0 {
		return
	}
	canvas.Def()
	for _, g := range s.Gradients {
		stops := make([]svg.Offcolor, len(g.Stops))
		for i, st := range g.Stops {
			op := st.Opacity
			if op <= 0 {
				op = 1
			}
			stops[i] = svg.Offcolor{Offset: percent(st.Offset), Color: st.Color, Opacity: op}
		}
		id := s.Ref(g.ID)
		if g.Radial {
			canvas.RadialGradient(id, percent(g.CX), percent(g.CY), percent(g.R), percent(g.FX), percent(g.FY), stops)
			continue
		}
		canvas.LinearGradient(id, percent(g.X1), percent(g.Y1), percent(g.X2), percent(g.Y2), stops)
	}
	for _, f := range s.Filters {
		canvas.Filter(s.Ref(f.ID), attrs(pair("x", "-20%"), pair("y", "-20%"), pair("width", "140%"), pair("height", "140%")))
		canvas.FeGaussianBlur(svg.Filterspec{In: "SourceAlpha", Result: "blur"}, f.Blur, f.Blur)
		canvas.FeOffset(svg.Filterspec{In: "blur", Result: "offset"}, int(math.Round(f.DX)), int(math.Round(f.DY)))
		canvas.FeMerge([]string{"offset", "SourceGraphic"})
		canvas.Fend()
	}
	canvas.DefEnd()
}

// percent converts a [0,1] fraction to a whole percentage.
func percent(f float64) uint8 {
	if !(f > 0) {
		return 0
	}
	if f >= 1 {
		return 100
	}
	return uint8(math.Round(f * 100))
}

type svgWriter struct {
	canvas *svg.SVG
	scene  *scene.Scene
	dec    int
}

func (r svgWriter) num(v float64) string { return scene.Format(v, r.dec) }

func (r svgWriter) node(n *scene.Node) {
	if n == nil {
		return
	}
	a := r.attrs(n)
	c := r.canvas
	switch n.Kind {
	case scene.KindGroup:
		if a == "" {
			c.Group()
		} else {
			c.Group(a)
		}
		for _, child := range n.Children {
			r.node(child)
		}
		c.Gend()
		return
	case scene.KindPath:
		if n.Path.Empty() {
			return
		}
		c.Path(n.Path.Data(r.dec), a)
	case scene.KindCircle:
		c.Circle(n.Center.X, n.Center.Y, n.R, a)
	case scene.KindEllipse:
		c.Ellipse(n.Center.X, n.Center.Y, n.RX, n.RY, a)
	case scene.KindLine:
		if len(n.Points) < 2 {
			return
		}
		c.Line(n.Points[0].X, n.Points[0].Y, n.Points[1].X, n.Points[1].Y, a)
	case scene.KindPolyline, scene.KindPolygon:
		if len(n.Points) == 0 {
			return
		}
		xs := make([]float64, len(n.Points))
		ys := make([]float64, len(n.Points))
		for i, p := range n.Points {
			xs[i], ys[i] = p.X, p.Y
		}
		if n.Kind == scene.KindPolygon {
			c.Polygon(xs, ys, a)
		} else {
			c.Polyline(xs, ys, a)
		}
	case scene.KindRect:
		b := n.Box
		if n.Corner > 0 {
			c.Roundrect(b.X, b.Y, b.W, b.H, n.Corner, n.Corner, a)
		} else {
			c.Rect(b.X, b.Y, b.W, b.H, a)
		}
	case scene.KindText:
		c.Text(n.At.X, n.At.Y, n.Text, a)
	}
}

// attrs returns the node's attributes in a fixed order.
func (r svgWriter) attrs(n *scene.Node) string {
	st := n.Style
	var kv []string
	add := func(k, v string) {
		if v != "" {
			kv = append(kv, pair(k, v))
		}
	}
	if n.ID != "" {
		add("id", r.scene.Ref(n.ID))
	}
	add("class", n.Class)
	add("data-name", n.Name)
	if st.FillGradient != "" {
		add("fill", "url(#"+r.scene.Ref(st.FillGradient)+")")
	} else {
		add("fill", st.Fill)
	}
	add("stroke", st.Stroke)
	if st.StrokeWidth > 0 {
		add("stroke-width", r.num(st.StrokeWidth))
	}
	if st.Opacity > 0 && st.Opacity < 1 {
		add("opacity", r.num(st.Opacity))
	}
	add("stroke-dasharray", st.Dash)
	add("stroke-linecap", st.LineCap)
	add("stroke-linejoin", st.LineJoin)
	if st.Filter != "" {
		add("filter", "url(#"+r.scene.Ref(st.Filter)+")")
	}
	if st.FontSize > 0 {
		add("font-size", r.num(st.FontSize))
	}
	add("font-weight", st.FontWeight)
	add("font-family", st.FontFamily)
	add("text-anchor", st.Anchor)
	add("dominant-baseline", st.Baseline)
	if n.Rotate != 0 {
		add("transform", "rotate("+r.num(n.Rotate)+" "+r.num(n.Pivot.X)+" "+r.num(n.Pivot.Y)+")")
	}
	return strings.Join(kv, " ")
}

var attrEscaper = strings.NewReplacer(`&`, "&amp;", `<`, "&lt;", `>`, "&gt;", `"`, "&quot;")

func pair(k, v string) string { return k + `="` + attrEscaper.Replace(v) + `"` }

func attrs(kv ...string) string { return strings.Join(kv, " ") }
