// Package variants expands numeric sweeps into batches of diagram
// descriptors and assembles batches concurrently.
//
// Expansion is purely cartesian: every Entry carries its own Descriptor and
// shares nothing with its neighbours, so Generate may assemble entries in
// any order on any number of workers and still return them in input order.
//
//	entries := variants.InclineSweep(physics.DefaultIncline(), scene.DefaultCanvas())
//	out, err := variants.Generate(ctx, entries, variants.WithWorkers(4))
package variants
