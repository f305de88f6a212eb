// Package knapsack generates 0-1 knapsack instances.
//
// Formulation (Build): one binary x_i per item with objective profit_i, a
// single capacity row Σ w_i·x_i ≤ C, maximize. n variables, 1 constraint.
//
// Parameter generators:
//
//	PisingerParams   correlated weight/profit pairs (Pisinger 2005, §3)
//	Spanner          spanner instances built from a small pattern set
//	YangParams       Yang, Boland, Dilkina, Savelsbergh (2020)
//	ExpandPisinger   grows a backbone with new items from a Distribution
//
// A Distribution is one of a closed set of tagged records (Uncorrelated,
// WeaklyCorrelated, …) that say how to draw a weight given a profit or a
// profit given a weight, and which of the two is drawn first.
package knapsack
