// Package auction generates combinatorial auction winner determination
// instances: one binary x_i per bid with objective price_i and one row
// Σ x_i ≤ 1 per item over the bids containing it, maximize.
//
// GasseParams follows the "arbitrary" relationship scheme of Leyton-Brown,
// Pearson and Shoham, "Towards a Universal Test Suite for Combinatorial
// Auction Algorithms" (EC 2000), §4.3. Bidders with more than two
// substitutable bids share a dummy item that makes their bids mutually
// exclusive.
package auction
