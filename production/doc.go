// Package production generates uncapacitated lot-sizing instances
// (Pochet and Wolsey, "Production Planning by Mixed Integer Programming",
// 2006, §2.1) over periods 0..T:
//
//	min  Σ p_t x_t + q_t y_t + h_t s_t
//	s.t. s_{t-1} + x_t = d_t + s_t     t = 1..T
//	     x_t ≤ M y_t                   t = 1..T
//	     s_0 = initial, s_T = final
//
// x_t is the lot produced, y_t the setup decision and s_t the stock at the
// end of period t. Period 0 only carries the initial stock, so x_0 does not
// exist.
package production
