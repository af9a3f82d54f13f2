// SPDX-License-Identifier: MIT
// Package: diagramkit/shape
//
// polygon.go - regular polygon fragments.

package shape

import (
	"github.com/katalvlaran/diagramkit/geom"
	"github.com/katalvlaran/diagramkit/scene"
)

// RegularPolygon returns a closed n-gon of radius r centred on c, vertex 0
// straight up, as a "polygon" node.
func RegularPolygon(c geom.Point, r float64, n int, st scene.Style) *scene.Node {
	return scene.Polygon(geom.RegularPolygon(c, r, n), st).WithClass("polygon")
}
