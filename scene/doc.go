// Package scene is the typed scene graph every generator emits and every
// backend consumes. Geometry and layout live in the generators; markup syntax
// lives in package render. Nothing in between knows about SVG.
//
// Node kinds are closed: group, path, circle, ellipse, line, polyline,
// polygon, rect and text. Paint may reference a gradient or filter defined
// in the same Scene by local id; the backend namespaces those ids with
// Scene.IDPrefix so several diagrams can be inlined into one page.
package scene
