// SPDX-License-Identifier: MIT
// Package: diagramkit/scene
//
// node.go - node kinds, paint style and node constructors.
//
// Contract:
//   - A Node is one vector fragment; groups nest fragments in emission order.
//   - Gradient and filter references are local ids (Style.FillGradient,
//     Style.Filter); the renderer prefixes them with Scene.IDPrefix, so a
//     node never points at anything outside its own scene.

package scene

import "github.com/katalvlaran/diagramkit/geom"

// Kind is the closed set of node kinds a backend must understand.
type Kind int

const (
	// KindGroup nests children.
	KindGroup Kind = iota
	// KindPath is an arbitrary path (M/L/Q/C/A/Z).
	KindPath
	// KindCircle is a circle at Center with radius R.
	KindCircle
	// KindEllipse is an ellipse at Center with radii RX, RY.
	KindEllipse
	// KindLine is a segment Points[0]→Points[1].
	KindLine
	// KindPolyline is an open chain through Points.
	KindPolyline
	// KindPolygon is a closed chain through Points.
	KindPolygon
	// KindRect is an axis-aligned rectangle Box with optional Corner radius.
	KindRect
	// KindText is a text run anchored at At.
	KindText
)

var kindNames = [...]string{
	KindGroup:    "group",
	KindPath:     "path",
	KindCircle:   "circle",
	KindEllipse:  "ellipse",
	KindLine:     "line",
	KindPolyline: "polyline",
	KindPolygon:  "polygon",
	KindRect:     "rect",
	KindText:     "text",
}

// String returns the lower-case kind name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Style is the paint applied to a node. Zero values mean "not set": the
// backend omits the attribute and the inherited/default paint applies.
type Style struct {
	Fill         string  // CSS colour or "none"
	FillGradient string  // local gradient id; wins over Fill
	Stroke       string  // CSS colour or "none"
	StrokeWidth  float64 // pixels
	Opacity      float64 // 0 means opaque
	Dash         string  // stroke-dasharray
	LineCap      string  // butt|round|square
	LineJoin     string  // miter|round|bevel
	Filter       string  // local filter id

	FontSize   float64
	FontWeight string
	FontFamily string
	Anchor     string // text-anchor: start|middle|end
	Baseline   string // dominant-baseline
}

// Stroked returns a stroke-only style.
func Stroked(color string, width float64) Style {
	return Style{Fill: "none", Stroke: color, StrokeWidth: width}
}

// Filled returns a fill-only style.
func Filled(color string) Style {
	return Style{Fill: color}
}

// Outlined returns a filled style with an outline.
func Outlined(fill, stroke string, width float64) Style {
	return Style{Fill: fill, Stroke: stroke, StrokeWidth: width}
}

// Label returns a centred text style.
func Label(color string, size float64) Style {
	return Style{Fill: color, FontSize: size, Anchor: "middle", Baseline: "central", FontFamily: DefaultFont}
}

// DefaultFont is the font stack used by every text node unless overridden.
const DefaultFont = "Helvetica, Arial, sans-serif"

// Node is one element of the scene graph.
type Node struct {
	Kind  Kind
	ID    string // optional local id
	Class string // semantic class: "bond", "atom", "branch", "symbol", ...
	Name  string // optional token, e.g. the circuit component name
	Style Style

	Points []geom.Point // line, polyline, polygon
	Path   Path         // path

	Center geom.Point // circle, ellipse
	R      float64    // circle
	RX, RY float64    // ellipse

	Box    geom.Rect // rect
	Corner float64   // rect corner radius

	Text string     // text
	At   geom.Point // text anchor

	// Rotate turns the node by Rotate degrees (clockwise on screen) about
	// Pivot.
	Rotate float64
	Pivot  geom.Point

	Children []*Node
}

// Append adds children to a group and returns the group.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// WithClass sets the semantic class and returns n.
func (n *Node) WithClass(class string) *Node {
	n.Class = class
	return n
}

// WithName sets the token name and returns n.
func (n *Node) WithName(name string) *Node {
	n.Name = name
	return n
}

// WithID sets the local id and returns n.
func (n *Node) WithID(id string) *Node {
	n.ID = id
	return n
}

// Rotated turns n by deg degrees about pivot and returns n.
func (n *Node) Rotated(deg float64, pivot geom.Point) *Node {
	n.Rotate = deg
	n.Pivot = pivot
	return n
}

// Group returns a group node of the given class.
func Group(class string, children ...*Node) *Node {
	return (&Node{Kind: KindGroup, Class: class}).Append(children...)
}

// Circle returns a circle node.
func Circle(c geom.Point, r float64, st Style) *Node {
	return &Node{Kind: KindCircle, Center: c, R: r, Style: st}
}

// Ellipse returns an ellipse node.
func Ellipse(c geom.Point, rx, ry float64, st Style) *Node {
	return &Node{Kind: KindEllipse, Center: c, RX: rx, RY: ry, Style: st}
}

// Line returns a segment node.
func Line(a, b geom.Point, st Style) *Node {
	return &Node{Kind: KindLine, Points: []geom.Point{a, b}, Style: st}
}

// Polyline returns an open chain node.
func Polyline(pts []geom.Point, st Style) *Node {
	return &Node{Kind: KindPolyline, Points: append([]geom.Point(nil), pts...), Style: st}
}

// Polygon returns a closed chain node.
func Polygon(pts []geom.Point, st Style) *Node {
	return &Node{Kind: KindPolygon, Points: append([]geom.Point(nil), pts...), Style: st}
}

// Rect returns a rectangle node.
func Rect(r geom.Rect, st Style) *Node {
	return &Node{Kind: KindRect, Box: r, Style: st}
}

// RoundRect returns a rectangle node with rounded corners.
func RoundRect(r geom.Rect, corner float64, st Style) *Node {
	return &Node{Kind: KindRect, Box: r, Corner: corner, Style: st}
}

// Text returns a text node.
func Text(at geom.Point, s string, st Style) *Node {
	return &Node{Kind: KindText, At: at, Text: s, Style: st}
}

// PathNode returns a path node.
func PathNode(p Path, st Style) *Node {
	return &Node{Kind: KindPath, Path: p, Style: st}
}
