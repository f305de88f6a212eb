// SPDX-License-Identifier: MIT
// Package: geco/setcover
//
// gasse.go — the Balas and Ho (1980) set cover template used by M. Gasse et
// al., "Exact Combinatorial Optimization with Graph Convolutional Neural
// Networks" (2019).
//
// The nonzeros are laid out column by column. Draw order:
//  1. nnz column indices Intn(ncols); the first 2·ncols are then overwritten
//     with 0,0,1,1,… so every column holds at least two rows,
//  2. Perm(nrows) for the first nrows row slots so every row is covered,
//  3. per column in order, the repair draws for slots past nrows,
//  4. ncols costs Intn(maxCoef)+1.

package setcover

import (
	"fmt"
	"math"

	"github.com/katalvlaran/geco"
	"github.com/katalvlaran/geco/model"
	"github.com/katalvlaran/geco/sampler"
)

const methodGasseParams = "GasseParams"

// DefaultMaxCoef is the usual upper bound of Gasse costs.
const DefaultMaxCoef = 100

// GasseParams draws an instance with nrows sets over ncols elements and
// ⌊nrows·ncols·density⌋ nonzeros.
//
// Errors: non-positive sizes, density outside (0,1] or maxCoef < 1 →
// geco.ErrInvalidParameter; too few nonzeros to cover every row once and
// every column twice → geco.ErrInfeasibleConstruction.
func GasseParams(nrows, ncols int, density float64, maxCoef int, s *sampler.Sampler) (Params, error) {
	if nrows < 1 || ncols < 1 || maxCoef < 1 {
		return Params{}, fmt.Errorf("%s: nrows=%d ncols=%d maxCoef=%d: %w",
			methodGasseParams, nrows, ncols, maxCoef, geco.ErrInvalidParameter)
	}
	if math.IsNaN(density) || density <= 0 || density > 1 {
		return Params{}, fmt.Errorf("%s: density=%g not in (0,1]: %w",
			methodGasseParams, density, geco.ErrInvalidParameter)
	}
	nnz := int(float64(nrows) * float64(ncols) * density)
	if nnz < nrows || nnz < 2*ncols {
		return Params{}, fmt.Errorf("%s: %d nonzeros for %d rows and %d columns: %w",
			methodGasseParams, nnz, nrows, ncols, geco.ErrInfeasibleConstruction)
	}

	// Rows per column.
	indices := make([]int, nnz)
	for i := range indices {
		indices[i] = s.Intn(ncols)
	}
	for j := 0; j < ncols; j++ {
		indices[2*j], indices[2*j+1] = j, j
	}
	colRows := make([]int, ncols)
	for _, j := range indices {
		colRows[j]++
	}

	// Rows of each column, stored in indices[start:start+count].
	copy(indices, s.Perm(nrows))
	start := 0
	for _, count := range colRows {
		switch {
		case start >= nrows:
			rows, err := s.Sample(nrows, count)
			if err != nil {
				return Params{}, fmt.Errorf("%s: column of %d rows: %w",
					methodGasseParams, count, geco.ErrInfeasibleConstruction)
			}
			copy(indices[start:], rows)
		case start+count > nrows:
			rows, err := s.SampleFrom(remainingRows(nrows, indices[start:nrows]), start+count-nrows)
			if err != nil {
				return Params{}, fmt.Errorf("%s: column of %d rows: %w",
					methodGasseParams, count, geco.ErrInfeasibleConstruction)
			}
			copy(indices[nrows:], rows)
		}
		start += count
	}

	p := Params{Costs: make([]float64, ncols), Sets: make([][]int, nrows)}
	for j := range p.Costs {
		p.Costs[j] = float64(s.Intn(maxCoef) + 1)
	}

	// Transpose column-major rows into per-row element lists.
	start = 0
	for j, count := range colRows {
		for _, r := range indices[start : start+count] {
			p.Sets[r] = append(p.Sets[r], j)
		}
		start += count
	}

	return p, nil
}

// Gasse builds a Gasse instance from a fresh sampler seeded with seed.
func Gasse(nrows, ncols int, density float64, maxCoef int, seed int64) (*model.Model, error) {
	p, err := GasseParams(nrows, ncols, density, maxCoef, sampler.New(seed))
	if err != nil {
		return nil, err
	}
	return BuildNamed(p, "Gasse Set Cover")
}

// remainingRows returns 0..nrows-1 without the rows in used, ascending.
func remainingRows(nrows int, used []int) []int {
	seen := make([]bool, nrows)
	for _, r := range used {
		seen[r] = true
	}
	out := make([]int, 0, nrows-len(used))
	for r, ok := range seen {
		if !ok {
			out = append(out, r)
		}
	}
	return out
}
