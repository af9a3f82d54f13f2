// Package curve is the CurveSampler: it turns a function family and its
// parameters into ordered pixel-space branches inside a geom.Frame.
//
// Branches never straddle a discontinuity. Reciprocal and tangent curves are
// split analytically at their poles; the hyperbola is traced through its
// parametric form on two disjoint intervals; everything that leaves the pixel
// rectangle is dropped, leaving a gap instead of a distorted joint.
package curve
