// Package diagramkit turns small declarative descriptors ("a parabola with
// a=1", "a water molecule", "a three-resistor series circuit") into precise,
// self-contained 2D vector diagrams for educational material.
//
// The module root holds no code; the work is split into subpackages that
// depend on each other leaves-first:
//
//	geom/     — points, the logical→pixel coordinate frame, polygons, ticks
//	curve/    — function-family sampling with asymptote-safe branches
//	scene/    — the typed scene graph every generator emits
//	shape/    — primitives: atoms, bonds, arrows, circuit symbols, axes
//	graphs/   — function graphs, regular polygons, cube projection
//	chem/     — molecules, small-molecule layouts, benzene, beaker, elements
//	physics/  — incline, circuits, electric field, wave, projectile, lever
//	charts/   — scatter with OLS trend, histogram, box plot, bar chart
//	render/   — SVG (svgo) and PNG (x/image/vector) backends
//	diagram/  — the family dispatch table, descriptors, cache, YAML decode
//	variants/ — numeric sweeps and concurrent batch generation
//
// Output is a pure function of the descriptor: the same input always yields
// byte-identical SVG, which makes diagrams safe to cache and to compare in
// visual regression tests.
//
// Quick start:
//
//	d := diagram.Assemble(diagram.Descriptor{
//		Family: diagram.Parabola,
//		Config: graphs.Parabola{A: 1},
//		Canvas: scene.DefaultCanvas(),
//	})
//	fmt.Println(d.SVG)
//
// The cmd/diagramgen tool renders YAML batches or the built-in sweeps to
// SVG or PNG files.
package diagramkit
