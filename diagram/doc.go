// Package diagram is the assembler: it turns a Descriptor (family tag,
// family config, canvas options) into a Diagram holding the typed scene, an
// inline SVG fragment and the interactive overlay.
//
// Dispatch goes through a closed table keyed by Family, so an unknown tag
// can only ever produce Empty. Descriptors are built in Go with
// NewDescriptor or read from YAML/JSON with Decode; Cache memoises
// Assemble by the descriptor's canonical key.
//
//	d := diagram.Assemble(diagram.Descriptor{Family: diagram.Parabola})
//	fmt.Println(d.ID, len(d.SVG))
package diagram
