// Package shape holds the geometric primitives every domain generator
// composes: atoms and spheres, multi-order bonds, arrows and springs,
// circuit symbols, axes and grids, plus the shared colour helpers.
//
// Builders are pure functions of position, size and style that return
// *scene.Node fragments. Builders that need a gradient or filter register it
// through the Defs interface (usually the *scene.Scene being built) and
// reference it by local id.
package shape
