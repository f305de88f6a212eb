// Package lpformat reads and writes Models in a subset of the CPLEX LP text
// format:
//
//	\ Problem name: knapsack
//	Maximize
//	 obj: + 3 x_0 + 5 x_1
//	Subject To
//	 capacity: + 2 x_0 + 4 x_1 <= 5
//	Bounds
//	 0 <= y <= 7
//	Generals
//	 y
//	Binaries
//	 x_0 x_1
//	End
//
// Every column is listed in the objective, zero coefficients included, so
// column order survives a round trip. Coefficients use the shortest decimal
// form that parses back to the same float64. Decode(Encode(m)) is Equal to m.
//
// Bounds lines are emitted only when they differ from the defaults: [0,1] for
// binaries, [0,+inf] otherwise.
package lpformat
