// Package graphs generates mathematics diagrams: function graphs for every
// curve family (linear through ODE solution families), regular polygons and
// an oblique cube projection.
//
// Each family has its own configuration struct with a DefaultX constructor
// and a Validate method. Generators accept any configuration and repair
// out-of-domain values instead of failing, so Validate is where callers learn
// that a value was unusable.
//
//	s := graphs.Plot(graphs.Parabola{A: 1, B: -2}, scene.DefaultCanvas())
//	_ = s.Count("branch") // 1
package graphs
