// Package compact solves vertex coloring with the classical assignment
// formulation, as a baseline for the column-generation engine.
//
// With K colors available (K is the greedy coloring size):
//
//	min  Σ_k y_k
//	s.t. x_ik + x_jk - y_k <= 0   for every edge {i,j} and color k
//	     x_ik - y_k <= 0          for every isolated vertex i and color k
//	     Σ_k x_ik = 1             for every vertex i
//	     y_k - y_{k+1} >= 0       for k < K
//	     x, y ∈ {0,1}
//
// The relaxation is weak (2 on any graph with an edge when every x_ik is
// spread evenly) and the model is symmetric, so it only suits small graphs.
package compact
