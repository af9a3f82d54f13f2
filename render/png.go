// SPDX-License-Identifier: MIT
// Package: diagramkit/render
//
// png.go - raster preview through golang.org/x/image/vector.
//
// The PNG backend is a preview, not a second renderer of record:
//   - Fills and strokes are rasterised with anti-aliasing; strokes are
//     expanded into one quad per segment plus round caps at the joints.
//   - Gradients are approximated by the stop nearest their midpoint;
//     filters and dash patterns are ignored.
//   - Text uses the fixed 7×13 bitmap face, unscaled, ASCII only.
//   - Rotations are applied to coordinates before rasterising.

package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/katalvlaran/diagramkit/geom"
	"github.com/katalvlaran/diagramkit/scene"
	"github.com/katalvlaran/diagramkit/shape"
)

// PNG limits.
const (
	DefaultPNGScale = 1.0
	MaxPNGScale     = 4.0
	curveSteps      = 16
	circleSteps     = 48
)

// PNG renders scenes as PNG images at Scale device pixels per scene pixel.
type PNG struct {
	Scale float64
}

// Ext implements Backend.
func (PNG) Ext() string { return "png" }

// MediaType implements Backend.
func (PNG) MediaType() string { return "image/png" }

// Rasterize draws s into a new RGBA image.
func (b PNG) Rasterize(s *scene.Scene) (*image.RGBA, error) {
	if s == nil {
		return nil, ErrNilScene
	}
	k := geom.Clamp(geom.Positive(b.Scale, DefaultPNGScale), 0.1, MaxPNGScale)
	w := int(math.Ceil(s.Width * k))
	h := int(math.Ceil(s.Height * k))
	img := image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	if c, ok := paint(s.Background, 1); ok {
		draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	}
	p := &painter{img: img, scene: s, k: k}
	ident := func(q geom.Point) geom.Point { return q }
	for _, n := range s.Nodes {
		p.node(n, ident, 1)
	}
	return img, nil
}

// Render implements Backend.
func (b PNG) Render(w io.Writer, s *scene.Scene) error {
	img, err := b.Rasterize(s)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

type xform func(geom.Point) geom.Point

type painter struct {
	img   *image.RGBA
	scene *scene.Scene
	k     float64
}

func (p *painter) node(n *scene.Node, t xform, alpha float64) {
	if n == nil {
		return
	}
	if n.Rotate != 0 {
		outer, deg, pivot := t, n.Rotate, n.Pivot
		t = func(q geom.Point) geom.Point { return outer(q.RotateAbout(pivot, deg)) }
	}
	if op := n.Style.Opacity; op > 0 && op < 1 {
		alpha *= op
	}
	st := n.Style

	switch n.Kind {
	case scene.KindGroup:
		for _, c := range n.Children {
			p.node(c, t, alpha)
		}
	case scene.KindPath:
		for _, sub := range flatten(n.Path) {
			closed := sub.closed
			p.fill(st, sub.pts, t, alpha)
			p.stroke(st, sub.pts, closed, t, alpha)
		}
	case scene.KindCircle:
		pts := ellipsePoints(n.Center, n.R, n.R)
		p.fill(st, pts, t, alpha)
		p.stroke(st, pts, true, t, alpha)
	case scene.KindEllipse:
		pts := ellipsePoints(n.Center, n.RX, n.RY)
		p.fill(st, pts, t, alpha)
		p.stroke(st, pts, true, t, alpha)
	case scene.KindLine, scene.KindPolyline:
		p.stroke(st, n.Points, false, t, alpha)
	case scene.KindPolygon:
		p.fill(st, n.Points, t, alpha)
		p.stroke(st, n.Points, true, t, alpha)
	case scene.KindRect:
		b := n.Box
		pts := []geom.Point{{X: b.X, Y: b.Y}, {X: b.Right(), Y: b.Y}, {X: b.Right(), Y: b.Bottom()}, {X: b.X, Y: b.Bottom()}}
		p.fill(st, pts, t, alpha)
		p.stroke(st, pts, true, t, alpha)
	case scene.KindText:
		p.text(n, t, alpha)
	}
}

// fillColor resolves the style's fill, approximating gradients.
func (p *painter) fillColor(st scene.Style) string {
	if st.FillGradient != "" {
		for _, g := range p.scene.Gradients {
			if g.ID == st.FillGradient && len(g.Stops) > 0 {
				best := g.Stops[0]
				for _, s := range g.Stops[1:] {
					if math.Abs(s.Offset-0.5) < math.Abs(best.Offset-0.5) {
						best = s
					}
				}
				return best.Color
			}
		}
	}
	return st.Fill
}

func (p *painter) fill(st scene.Style, pts []geom.Point, t xform, alpha float64) {
	fill := p.fillColor(st)
	if fill == "" && st.FillGradient == "" && st.Stroke == "" {
		fill = "#000000" // SVG default paint
	}
	c, ok := paint(fill, alpha)
	if !ok || len(pts) < 3 {
		return
	}
	z := p.rasterizer()
	p.polygon(z, pts, t)
	z.Draw(p.img, p.img.Bounds(), image.NewUniform(c), image.Point{})
}

func (p *painter) stroke(st scene.Style, pts []geom.Point, closed bool, t xform, alpha float64) {
	c, ok := paint(st.Stroke, alpha)
	if !ok || len(pts) < 2 {
		return
	}
	half := geom.Positive(st.StrokeWidth, 1) / 2
	z := p.rasterizer()
	seg := func(a, b geom.Point) {
		// Wound the same way as ellipsePoints so overlaps add, not cancel.
		n := b.Sub(a).Perp().Scale(half)
		p.polygon(z, []geom.Point{a.Sub(n), b.Sub(n), b.Add(n), a.Add(n)}, t)
	}
	for i := 1; i < len(pts); i++ {
		seg(pts[i-1], pts[i])
	}
	if closed {
		seg(pts[len(pts)-1], pts[0])
	}
	if half*p.k >= 1 {
		for _, q := range pts {
			p.polygon(z, ellipsePoints(q, half, half), t)
		}
	}
	z.Draw(p.img, p.img.Bounds(), image.NewUniform(c), image.Point{})
}

func (p *painter) text(n *scene.Node, t xform, alpha float64) {
	c, ok := paint(n.Style.Fill, alpha)
	if !ok {
		c, _ = paint(shape.DarkText, alpha)
	}
	at := t(n.At).Scale(p.k)
	face := basicfont.Face7x13
	adv := font.MeasureString(face, n.Text).Round()
	x := int(math.Round(at.X))
	switch n.Style.Anchor {
	case "middle":
		x -= adv / 2
	case "end":
		x -= adv
	}
	y := int(math.Round(at.Y))
	if n.Style.Baseline == "central" {
		y += face.Ascent / 2
	}
	d := font.Drawer{Dst: p.img, Src: image.NewUniform(c), Face: face, Dot: fixed.P(x, y)}
	d.DrawString(n.Text)
}

func (p *painter) rasterizer() *vector.Rasterizer {
	b := p.img.Bounds()
	return vector.NewRasterizer(b.Dx(), b.Dy())
}

// polygon adds one closed contour in scene pixels.
func (p *painter) polygon(z *vector.Rasterizer, pts []geom.Point, t xform) {
	for i, q := range pts {
		d := t(q).Scale(p.k)
		if !d.Finite() {
			return
		}
		if i == 0 {
			z.MoveTo(float32(d.X), float32(d.Y))
			continue
		}
		z.LineTo(float32(d.X), float32(d.Y))
	}
	z.ClosePath()
}

// paint parses a CSS colour into RGBA premultiplied by alpha.
func paint(css string, alpha float64) (color.RGBA, bool) {
	if css == "" || css == "none" {
		return color.RGBA{}, false
	}
	c, ok := shape.ParseColor(css)
	if !ok {
		return color.RGBA{}, false
	}
	a := geom.Clamp(alpha, 0, 1)
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{
		R: uint8(math.Round(float64(r) * a)),
		G: uint8(math.Round(float64(g) * a)),
		B: uint8(math.Round(float64(b) * a)),
		A: uint8(math.Round(255 * a)),
	}, true
}

func ellipsePoints(c geom.Point, rx, ry float64) []geom.Point {
	pts := make([]geom.Point, circleSteps)
	for i := range pts {
		s, co := math.Sincos(2 * math.Pi * float64(i) / circleSteps)
		pts[i] = geom.Pt(c.X+rx*co, c.Y+ry*s)
	}
	return pts
}

type subpath struct {
	pts    []geom.Point
	closed bool
}

// flatten turns a path into polylines, one per subpath.
func flatten(path scene.Path) []subpath {
	var out []subpath
	var cur subpath
	var pen, start geom.Point
	flush := func() {
		if len(cur.pts) > 1 {
			out = append(out, cur)
		}
		cur = subpath{}
	}
	for _, s := range path.Segs {
		switch s.Op {
		case scene.OpMove:
			flush()
			pen, start = s.Pts[0], s.Pts[0]
			cur.pts = append(cur.pts, pen)
		case scene.OpLine:
			pen = s.Pts[0]
			cur.pts = append(cur.pts, pen)
		case scene.OpQuad:
			for i := 1; i <= curveSteps; i++ {
				u := float64(i) / curveSteps
				a := geom.Lerp(pen, s.Pts[0], u)
				b := geom.Lerp(s.Pts[0], s.Pts[1], u)
				cur.pts = append(cur.pts, geom.Lerp(a, b, u))
			}
			pen = s.Pts[1]
		case scene.OpCubic:
			for i := 1; i <= curveSteps; i++ {
				u := float64(i) / curveSteps
				a := geom.Lerp(pen, s.Pts[0], u)
				b := geom.Lerp(s.Pts[0], s.Pts[1], u)
				c := geom.Lerp(s.Pts[1], s.Pts[2], u)
				cur.pts = append(cur.pts, geom.Lerp(geom.Lerp(a, b, u), geom.Lerp(b, c, u), u))
			}
			pen = s.Pts[2]
		case scene.OpArc:
			cur.pts = append(cur.pts, arcPoints(pen, s)...)
			pen = s.Pts[0]
		case scene.OpClose:
			cur.closed = true
			pen = start
			flush()
		}
	}
	flush()
	return out
}

// arcPoints flattens an SVG elliptical arc (no x-axis rotation) from p0 to
// s.Pts[0] using the endpoint-to-centre conversion, excluding p0.
func arcPoints(p0 geom.Point, s scene.Segment) []geom.Point {
	p1 := s.Pts[0]
	rx, ry := math.Abs(s.RX), math.Abs(s.RY)
	if rx < geom.Eps || ry < geom.Eps || p0.Dist(p1) < geom.Eps {
		return []geom.Point{p1}
	}
	hx, hy := (p0.X-p1.X)/2, (p0.Y-p1.Y)/2
	// Scale radii up when they cannot span the chord.
	if l := hx*hx/(rx*rx) + hy*hy/(ry*ry); l > 1 {
		r := math.Sqrt(l)
		rx, ry = rx*r, ry*r
	}
	num := rx*rx*ry*ry - rx*rx*hy*hy - ry*ry*hx*hx
	den := rx*rx*hy*hy + ry*ry*hx*hx
	co := math.Sqrt(math.Max(0, num/den))
	if s.Large == s.Sweep {
		co = -co
	}
	cx := co*rx*hy/ry + (p0.X+p1.X)/2
	cy := -co*ry*hx/rx + (p0.Y+p1.Y)/2

	a0 := math.Atan2((p0.Y-cy)/ry, (p0.X-cx)/rx)
	a1 := math.Atan2((p1.Y-cy)/ry, (p1.X-cx)/rx)
	d := a1 - a0
	if s.Sweep && d < 0 {
		d += 2 * math.Pi
	} else if !s.Sweep && d > 0 {
		d -= 2 * math.Pi
	}
	steps := max(2, int(math.Ceil(math.Abs(d)/(2*math.Pi)*circleSteps)))
	pts := make([]geom.Point, steps)
	for i := 1; i <= steps; i++ {
		a := a0 + d*float64(i)/float64(steps)
		pts[i-1] = geom.Pt(cx+rx*math.Cos(a), cy+ry*math.Sin(a))
	}
	pts[steps-1] = p1
	return pts
}
