// SPDX-License-Identifier: MIT
// Package: diagramkit/variants_test

package variants_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/diagramkit/physics"
	"github.com/katalvlaran/diagramkit/scene"
	"github.com/katalvlaran/diagramkit/variants"
)

func ExampleSweep() {
	angles, _ := variants.Sweep(5, 85, 5)
	fmt.Println(len(angles), angles[0], angles[len(angles)-1])
	// Output: 17 5 85
}

func ExampleGenerate() {
	entries := variants.InclineSweep(physics.DefaultIncline(), scene.DefaultCanvas())
	out, err := variants.Generate(context.Background(), entries, variants.WithWorkers(4))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(len(out), entries[2].Name, out[2].Family)
	// Output: 17 incline-15 incline
}
