// Package geom holds the planar math every diagram is built on: points and
// vectors, the logical→pixel coordinate frame, regular polygon placement and
// nice axis ticks.
//
// Coordinate frame
//
//	pixelX = OriginX + x*ScaleX
//	pixelY = OriginY - y*ScaleY   (mathematical "up" is decreasing pixel y)
//
// A Frame never holds a zero, negative, NaN or infinite scale: degenerate
// logical ranges are widened to MinExtent and empty pixel rectangles become
// one pixel wide, so every mapping stays finite.
//
// Usage:
//
//	f := geom.NewFrame(geom.Range{XMin: -5, XMax: 5, YMin: -5, YMax: 5},
//		geom.Rect{X: 40, Y: 20, W: 320, H: 260})
//	p := f.ToPixel(1, 2)
//
// All functions are pure and safe for concurrent use.
package geom
