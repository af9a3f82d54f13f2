// SPDX-License-Identifier: MIT
// Package: diagramkit/diagram_test
//
// example_test.go - runnable examples for the assembler.

package diagram_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/diagramkit/chem"
	"github.com/katalvlaran/diagramkit/diagram"
)

func ExampleAssemble() {
	d := diagram.Assemble(diagram.Descriptor{
		Family: diagram.SmallMolecule,
		Config: chem.SmallMolecule{Kind: "CO2"},
	})
	fmt.Println(d.Family, d.Width, d.Height, len(d.Overlay.Points))
	// Output: smallMolecule 400 300 3
}

func ExampleDecode() {
	ds, err := diagram.Decode(strings.NewReader("family: beaker\nparams: {capacity: 500, fillLevel: 125}\n"))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(len(ds), ds[0].Family, ds[0].Config.(chem.Beaker).Fraction())
	// Output: 1 beaker 0.25
}

func ExampleFamilies() {
	fmt.Println(diagram.Families()[:4])
	// Output: [bar beaker benzene boxplot]
}
