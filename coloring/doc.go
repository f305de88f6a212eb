// Package coloring builds vertex coloring models over undirected core
// graphs, following the formulations compared by A. Jabrayilov and P. Mutzel,
// "New Integer Linear Programming Models for the Vertex Coloring Problem"
// (LATIN 2018).
//
//	Assignment             x_v_c assigns colors, w_c opens them
//	AssignmentAsymmetric   Assignment plus symmetry breaking
//	Representatives        x_u_v: u represents the color class of v
//	SetCovering            one variable per independent set
//	PartialOrdering        y_c_v / z_v_c order vertices against colors
//	HybridPartialOrdering  PartialOrdering with assignment variables
//
// Every model minimizes. Vertices are relabeled 0..n-1 with core.Densify;
// directed graphs and self-loops are rejected.
package coloring
