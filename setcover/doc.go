// Package setcover generates weighted set cover instances.
//
// Formulation (Build): one binary v_i per element with objective cost_i and
// one covering row Σ_{i∈S} v_i ≥ 1 per set S, minimize.
//
// Parameter generators:
//
//	YangParams   Yang, Boland, Dilkina, Savelsbergh (2020): n = 10m elements
//	SunParams    Sun, Chen, Li, Song (2021): every element in ≥ 2 sets
//	ExpandSun    grows a Sun backbone with new elements
//	GasseParams  Balas and Ho (1980) as used by Gasse et al. (2019)
//
// Sets hold element indices in increasing order.
package setcover
