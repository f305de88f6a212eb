// SPDX-License-Identifier: MIT
// Package: geco/auction

package auction

import (
	"fmt"
	"math"
	"slices"
	"sort"

	"github.com/katalvlaran/geco"
	"github.com/katalvlaran/geco/model"
	"github.com/katalvlaran/geco/sampler"
)

const methodGasseParams = "GasseParams"

// Config holds the knobs of the arbitrary scheme.
type Config struct {
	Items int
	Bids  int
	// MinValue and MaxValue bound the common resale value of an item.
	MinValue, MaxValue float64
	// ValueDeviation is the spread of private values relative to MaxValue.
	ValueDeviation float64
	// AddItemProb is the probability of growing a bundle by one more item.
	AddItemProb float64
	// MaxSubBids caps substitutable bids per bidder; a bidder places at
	// most MaxSubBids+1 bids.
	MaxSubBids int
	// Additivity > 0 makes bundles super-additive, < 0 sub-additive.
	Additivity float64
	// BudgetFactor caps substitute prices relative to the initial bid.
	BudgetFactor float64
	// ResaleFactor is the minimum resale value of a substitute relative to
	// the initial bundle.
	ResaleFactor float64
	// Integers truncates prices toward zero.
	Integers bool
}

// DefaultConfig returns the settings of Gasse et al. (2019).
func DefaultConfig() Config {
	return Config{
		Items:          100,
		Bids:           500,
		MinValue:       1,
		MaxValue:       100,
		ValueDeviation: 0.5,
		AddItemProb:    0.9,
		MaxSubBids:     5,
		Additivity:     0.2,
		BudgetFactor:   1.5,
		ResaleFactor:   0.5,
	}
}

// Validate checks cfg.
func (c Config) Validate() error {
	switch {
	case c.Items < 2:
		return fmt.Errorf("%d items < 2: %w", c.Items, geco.ErrInvalidParameter)
	case c.Bids < 1:
		return fmt.Errorf("%d bids < 1: %w", c.Bids, geco.ErrInvalidParameter)
	case !(c.MinValue >= 0) || !(c.MaxValue >= c.MinValue) || math.IsInf(c.MaxValue, 0):
		return fmt.Errorf("values [%g,%g]: %w", c.MinValue, c.MaxValue, geco.ErrInvalidParameter)
	case !(c.AddItemProb >= 0 && c.AddItemProb <= 1):
		return fmt.Errorf("add item probability %g: %w", c.AddItemProb, geco.ErrInvalidParameter)
	case c.MaxSubBids < 0:
		return fmt.Errorf("max substitutable bids %d: %w", c.MaxSubBids, geco.ErrInvalidParameter)
	}
	for _, x := range []float64{c.ValueDeviation, c.Additivity, c.BudgetFactor, c.ResaleFactor} {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("non-finite factor %g: %w", x, geco.ErrInvalidParameter)
		}
	}
	return nil
}

// arbitrary holds the per-instance state shared by all bidders.
type arbitrary struct {
	cfg     Config
	s       *sampler.Sampler
	values  []float64
	compats [][]float64
}

// GasseParams generates exactly cfg.Bids bids. The draw order, with
// n = cfg.Items:
//
//  1. n resale values MinValue + (MaxValue-MinValue)·Float64;
//  2. the n×n compatibility matrix row by row (only the strict upper
//     triangle is kept and mirrored, then columns are normalized);
//  3. per bidder: n private interests, one WeightedChoice for the first item,
//     then while Float64 < AddItemProb one WeightedChoice per added item,
//     then for each bundle item the WeightedChoice draws that grow its
//     substitute to the bundle size.
//
// Bidders whose initial bundle is negatively priced are skipped.
//
// Errors: invalid cfg → geco.ErrInvalidParameter.
func GasseParams(cfg Config, s *sampler.Sampler) (Params, error) {
	if err := cfg.Validate(); err != nil {
		return Params{}, fmt.Errorf("%s: %w", methodGasseParams, err)
	}
	a := &arbitrary{cfg: cfg, s: s}
	a.draw()

	p := Params{Items: cfg.Items}
	for len(p.Bids) < cfg.Bids {
		bids, err := a.bidder(len(p.Bids))
		if err != nil {
			return Params{}, fmt.Errorf("%s: %w", methodGasseParams, err)
		}
		if len(bids) > 2 {
			dummy := cfg.Items + p.DummyItems
			p.DummyItems++
			for i := range bids {
				bids[i].Items = append(bids[i].Items, dummy)
			}
		}
		p.Bids = append(p.Bids, bids...)
	}
	return p, nil
}

func (a *arbitrary) draw() {
	n := a.cfg.Items
	a.values = make([]float64, n)
	for i := range a.values {
		a.values[i] = a.cfg.MinValue + (a.cfg.MaxValue-a.cfg.MinValue)*a.s.Float64()
	}

	a.compats = make([][]float64, n)
	for i := range a.compats {
		a.compats[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			u := a.s.Float64()
			if j > i {
				a.compats[i][j] = u
				a.compats[j][i] = u
			}
		}
	}
	sums := make([]float64, n)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			sums[j] += a.compats[i][j]
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a.compats[i][j] /= sums[j]
		}
	}
}

// bidder generates the bids of one bidder, given placed bids already in the
// instance. The result is nil when the initial bundle is negatively priced.
func (a *arbitrary) bidder(placed int) ([]Bid, error) {
	n := a.cfg.Items
	interests := make([]float64, n)
	private := make([]float64, n)
	for i := range interests {
		interests[i] = a.s.Float64()
		private[i] = a.values[i] + a.cfg.MaxValue*a.cfg.ValueDeviation*(2*interests[i]-1)
	}

	first, err := a.s.WeightedChoice(interests)
	if err != nil {
		return nil, err
	}
	in := make([]bool, n)
	in[first] = true
	size := 1
	for a.s.Float64() < a.cfg.AddItemProb {
		if size == n {
			break
		}
		if err := a.grow(in, interests); err != nil {
			return nil, err
		}
		size++
	}
	bundle := members(in)
	price := a.price(bundle, private)
	if price < 0 {
		return nil, nil
	}
	bids := []Bid{{Items: bundle, Price: price}}

	candidates := make([]Bid, 0, len(bundle))
	for _, item := range bundle {
		sub := make([]bool, n)
		sub[item] = true
		for k := 1; k < len(bundle); k++ {
			if err := a.grow(sub, interests); err != nil {
				return nil, err
			}
		}
		items := members(sub)
		candidates = append(candidates, Bid{Items: items, Price: a.price(items, private)})
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].Price > candidates[j].Price })

	budget := a.cfg.BudgetFactor * price
	minResale := a.cfg.ResaleFactor * a.resale(bundle)
	for _, c := range candidates {
		if len(bids) >= a.cfg.MaxSubBids+1 || placed+len(bids) >= a.cfg.Bids {
			break
		}
		if c.Price < 0 || c.Price > budget || a.resale(c.Items) < minResale {
			continue
		}
		if slices.ContainsFunc(bids, func(b Bid) bool { return slices.Equal(b.Items, c.Items) }) {
			continue
		}
		bids = append(bids, c)
	}
	return bids, nil
}

// grow adds one item to the bundle in, chosen with weight
// interest_j · mean_{i∈in} compat_ij over items j not yet in.
func (a *arbitrary) grow(in []bool, interests []float64) error {
	n := len(in)
	w := make([]float64, n)
	count := 0
	for i, ok := range in {
		if !ok {
			continue
		}
		count++
		for j := 0; j < n; j++ {
			w[j] += a.compats[i][j]
		}
	}
	for j := range w {
		if in[j] {
			w[j] = 0
			continue
		}
		w[j] *= interests[j] / float64(count)
	}
	j, err := a.s.WeightedChoice(w)
	if err != nil {
		return err
	}
	in[j] = true
	return nil
}

func (a *arbitrary) price(bundle []int, private []float64) float64 {
	price := math.Pow(float64(len(bundle)), 1+a.cfg.Additivity)
	for _, i := range bundle {
		price += private[i]
	}
	if a.cfg.Integers {
		price = math.Trunc(price)
	}
	return price
}

func (a *arbitrary) resale(bundle []int) float64 {
	var v float64
	for _, i := range bundle {
		v += a.values[i]
	}
	return v
}

func members(in []bool) []int {
	var out []int
	for i, ok := range in {
		if ok {
			out = append(out, i)
		}
	}
	return out
}

// Gasse builds a Gasse instance with cfg from a fresh sampler seeded with
// seed.
func Gasse(cfg Config, seed int64) (*model.Model, error) {
	p, err := GasseParams(cfg, sampler.New(seed))
	if err != nil {
		return nil, err
	}
	return BuildNamed(p, "Gasse Combinatorial Auction")
}
