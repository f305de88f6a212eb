// Package facility generates capacitated facility location instances.
//
// Formulation (Build), c customers and f facilities:
//
//	variables   x_i_j  binary, customer i served by facility j (c·f, row-major)
//	            y_j    binary, facility j open (f)
//	objective   minimize Σ transport_ij·x_ij + Σ fixed_j·y_j
//	demand_i    Σ_j x_ij ≥ 1                              (c rows)
//	capacity_j  Σ_i demand_i·x_ij - capacity_j·y_j ≤ 0     (f rows)
//	total       Σ_j capacity_j·y_j ≥ Σ_i demand_i           (1 row)
//	link_i_j    x_ij - y_j ≤ 0                             (c·f rows)
//
// CornuejolsParams follows Cornuéjols, Sridharan and Thizy (1991) and
// BeasleyParams follows Beasley (1988).
package facility
