// SPDX-License-Identifier: MIT
// Package: diagramkit/scene
//
// path.go - backend-neutral path data.

package scene

import (
	"strings"

	"github.com/katalvlaran/diagramkit/geom"
)

// PathOp is a path command.
type PathOp byte

const (
	OpMove  PathOp = 'M' // Pts[0]
	OpLine  PathOp = 'L' // Pts[0]
	OpQuad  PathOp = 'Q' // control Pts[0], end Pts[1]
	OpCubic PathOp = 'C' // controls Pts[0], Pts[1], end Pts[2]
	OpArc   PathOp = 'A' // radii RX,RY, flags Large/Sweep, end Pts[0]
	OpClose PathOp = 'Z'
)

// Segment is one path command with its operands in absolute coordinates.
type Segment struct {
	Op    PathOp
	Pts   []geom.Point
	RX    float64
	RY    float64
	Large bool
	Sweep bool
}

// Path is an ordered list of segments.
type Path struct {
	Segs []Segment
}

// MoveTo starts a new subpath.
func (p *Path) MoveTo(pt geom.Point) *Path {
	p.Segs = append(p.Segs, Segment{Op: OpMove, Pts: []geom.Point{pt}})
	return p
}

// LineTo draws a straight segment.
func (p *Path) LineTo(pt geom.Point) *Path {
	p.Segs = append(p.Segs, Segment{Op: OpLine, Pts: []geom.Point{pt}})
	return p
}

// QuadTo draws a quadratic Bézier.
func (p *Path) QuadTo(ctrl, end geom.Point) *Path {
	p.Segs = append(p.Segs, Segment{Op: OpQuad, Pts: []geom.Point{ctrl, end}})
	return p
}

// CubicTo draws a cubic Bézier.
func (p *Path) CubicTo(c1, c2, end geom.Point) *Path {
	p.Segs = append(p.Segs, Segment{Op: OpCubic, Pts: []geom.Point{c1, c2, end}})
	return p
}

// ArcTo draws an elliptical arc (x-axis rotation 0).
func (p *Path) ArcTo(rx, ry float64, large, sweep bool, end geom.Point) *Path {
	p.Segs = append(p.Segs, Segment{Op: OpArc, Pts: []geom.Point{end}, RX: rx, RY: ry, Large: large, Sweep: sweep})
	return p
}

// Close closes the current subpath.
func (p *Path) Close() *Path {
	p.Segs = append(p.Segs, Segment{Op: OpClose})
	return p
}

// Empty reports whether the path has no drawing segments.
func (p Path) Empty() bool { return len(p.Segs) == 0 }

// Subpaths returns the number of MoveTo commands.
func (p Path) Subpaths() int {
	n := 0
	for _, s := range p.Segs {
		if s.Op == OpMove {
			n++
		}
	}
	return n
}

// Vertices returns every on-curve end point in order.
func (p Path) Vertices() []geom.Point {
	var out []geom.Point
	for _, s := range p.Segs {
		if len(s.Pts) > 0 {
			out = append(out, s.Pts[len(s.Pts)-1])
		}
	}
	return out
}

// PolylinePath returns M p0 L p1 L p2 …; nil for fewer than one point.
func PolylinePath(pts []geom.Point) Path {
	var p Path
	for i, pt := range pts {
		if i == 0 {
			p.MoveTo(pt)
			continue
		}
		p.LineTo(pt)
	}
	return p
}

// Data renders the path as SVG path data with prec decimals.
func (p Path) Data(prec int) string {
	var b strings.Builder
	for i, s := range p.Segs {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(byte(s.Op))
		switch s.Op {
		case OpArc:
			b.WriteString(Format(s.RX, prec))
			b.WriteByte(' ')
			b.WriteString(Format(s.RY, prec))
			b.WriteString(" 0 ")
			b.WriteString(flag(s.Large))
			b.WriteByte(' ')
			b.WriteString(flag(s.Sweep))
			b.WriteByte(' ')
			writePoint(&b, s.Pts[0], prec)
		case OpClose:
		default:
			for j, pt := range s.Pts {
				if j > 0 {
					b.WriteByte(' ')
				}
				writePoint(&b, pt, prec)
			}
		}
	}
	return b.String()
}

func writePoint(b *strings.Builder, pt geom.Point, prec int) {
	b.WriteString(Format(pt.X, prec))
	b.WriteByte(',')
	b.WriteString(Format(pt.Y, prec))
}

func flag(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
