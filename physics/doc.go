// Package physics lays out mechanics, electricity and wave diagrams:
//
//   - Incline: block on a ramp with weight, normal and friction forces.
//   - SeriesCircuit / ParallelCircuit: component symbols on wires at a
//     fixed ComponentPitch; unknown component names are skipped.
//   - ElectricField: field lines of point charges traced with RK2.
//   - Wave: a (optionally damped) sinusoid with λ and A markers.
//   - Projectile: drag-free trajectory with apex and landing points.
//   - Lever: beam, fulcrum and loads with their moments.
//
// Every Draw function is pure: the same configuration and canvas always
// produce the same scene. Forces and moments are also reported in the
// scene's Overlay so hosts can annotate them.
package physics
