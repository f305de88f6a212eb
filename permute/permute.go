// SPDX-License-Identifier: MIT
// Package: geco/permute

// Package permute reorders the columns and rows of a Model under a seed.
// The result has the same feasible region and optimum as its source; only
// the presentation order seen by a solver changes.
//
// The source is first serialized and decoded through a model.Codec, so the
// permuted Model never shares storage with it and every permuted instance
// is known to survive the textual format solvers read.
package permute

import (
	"fmt"

	"github.com/katalvlaran/geco"
	"github.com/katalvlaran/geco/lpformat"
	"github.com/katalvlaran/geco/model"
	"github.com/katalvlaran/geco/sampler"
)

const methodPermute = "Permute"

// Permuted is a permuted Model together with the permutations applied.
// Columns[i] is the source column now at position i; Rows likewise.
type Permuted struct {
	Model   *model.Model
	Seed    int64
	Columns []int
	Rows    []int
}

// Option configures Permute.
type Option func(*config)

type config struct {
	columns bool
	rows    bool
	codec   model.Codec
}

// WithColumns toggles column permutation (default on).
func WithColumns(on bool) Option { return func(c *config) { c.columns = on } }

// WithRows toggles row permutation (default on).
func WithRows(on bool) Option { return func(c *config) { c.rows = on } }

// WithCodec sets the round-trip codec (default lpformat.Codec).
func WithCodec(codec model.Codec) Option { return func(c *config) { c.codec = codec } }

// Permute returns m with columns and rows shuffled by sampler.New(seed).
// The column permutation is always drawn first and the row permutation
// second, so disabling one leaves the other unchanged for the same seed.
// Disabled permutations are reported as the identity.
//
// Errors: nil m or seed == 0 → geco.ErrInvalidParameter; codec failures are
// wrapped as returned.
func Permute(m *model.Model, seed int64, opts ...Option) (*Permuted, error) {
	cfg := config{columns: true, rows: true, codec: lpformat.Codec{}}
	for _, o := range opts {
		o(&cfg)
	}
	if m == nil {
		return nil, fmt.Errorf("%s: nil model: %w", methodPermute, geco.ErrInvalidParameter)
	}
	if seed == 0 {
		return nil, fmt.Errorf("%s: seed must be nonzero: %w", methodPermute, geco.ErrInvalidParameter)
	}
	if cfg.codec == nil {
		return nil, fmt.Errorf("%s: nil codec: %w", methodPermute, geco.ErrInvalidParameter)
	}

	data, err := cfg.codec.Encode(m)
	if err != nil {
		return nil, fmt.Errorf("%s: encode %s: %w", methodPermute, m.Name(), err)
	}
	src, err := cfg.codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: decode %s: %w", methodPermute, m.Name(), err)
	}

	s := sampler.New(seed)
	cols := s.Perm(src.NumVariables())
	rows := s.Perm(src.NumConstraints())
	if !cfg.columns {
		cols = identity(len(cols))
	}
	if !cfg.rows {
		rows = identity(len(rows))
	}

	out, err := apply(src, cols, rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodPermute, err)
	}
	return &Permuted{Model: out, Seed: seed, Columns: cols, Rows: rows}, nil
}

func apply(src *model.Model, cols, rows []int) (*model.Model, error) {
	out := model.New(src.Name())
	position := make([]int, len(cols))
	for i, c := range cols {
		position[c] = i
		if _, err := out.AddVariable(src.Variable(c)); err != nil {
			return nil, err
		}
	}
	for _, r := range rows {
		c := src.Constraint(r)
		terms := make([]model.Term, len(c.Terms))
		for j, t := range c.Terms {
			terms[j] = model.Term{Var: position[t.Var], Coef: t.Coef}
		}
		if err := out.AddRow(c.Name, terms, c.Rel, c.RHS); err != nil {
			return nil, err
		}
	}
	if err := out.SetSense(src.Sense()); err != nil {
		return nil, err
	}
	return out, nil
}

func identity(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return p
}

// Restore maps an assignment of the permuted columns back to source column
// order.
func (p *Permuted) Restore(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, c := range p.Columns {
		out[c] = x[i]
	}
	return out
}
