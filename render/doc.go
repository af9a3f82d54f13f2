// Package render serialises a scene.Scene. SVG is the output of record and
// is written with ajstarks/svgo; PNG is a raster preview built on
// golang.org/x/image/vector. Both satisfy Backend.
package render
