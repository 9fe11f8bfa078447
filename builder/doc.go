// Package builder provides deterministic “functional-options”-style
// generators of test and benchmark graphs for the coloring solvers.
//
// The package offers:
//
//   - BuildGraph(opts, cons...): resolves options once and applies the
//     constructors in order; each constructor appends a disjoint block of
//     vertices, so BuildGraph(nil, Complete(3), Cycle(5)) is K_3 ∪ C_5.
//   - Topologies with known chromatic numbers: Complete, Cycle, Path, Star,
//     Wheel, CompleteBipartite, Grid and Mycielski.
//   - Random families: RandomSparse (G(n,p)) and RandomRegular (stub
//     matching), reproducible through WithSeed or WithRand.
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Structured runtime errors for invalid build parameters, matching the
//     sentinels in errors.go with errors.Is.
//   - Same options, seed and constructor order ⇒ the same graph.
package builder
