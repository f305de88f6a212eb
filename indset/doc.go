// Package indset builds maximum independent set models over core graphs.
//
// Vertices are relabeled to 0..n-1 in insertion order (core.Densify) and
// become binaries x_0 … x_{n-1} with objective 1, maximize.
//
//	Build        one row x_u + x_v ≤ 1 per edge
//	BuildClique  one row Σ_{v∈C} x_v ≤ 1 per clique C of a greedy clique
//	             partition, plus x_u + x_v ≤ 1 for each edge between two
//	             cliques; at most one row per edge
//
// A self-loop u–u forbids u: Build emits 2·x_u ≤ 1, BuildClique x_u ≤ 0.
// Directed graphs are rejected.
package indset
