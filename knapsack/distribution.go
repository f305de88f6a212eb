// SPDX-License-Identifier: MIT
// Package: geco/knapsack
//
// distribution.go — the closed set of Pisinger weight/profit distributions.
//
// Each record draws from the sampler it is given, never from its own state.
// Records whose ProfitFirst is true draw profits freely and derive weights
// from them (WeightOf); the others draw weights freely (WeightOf with the
// profit argument ignored) and derive profits (ProfitOf).

package knapsack

import (
	"fmt"
	"math"

	"github.com/katalvlaran/geco"
	"github.com/katalvlaran/geco/sampler"
)

// Distribution relates the weight and profit of one knapsack item.
type Distribution interface {
	// WeightOf draws or derives a weight; profit is meaningful only when
	// ProfitFirst reports true.
	WeightOf(s *sampler.Sampler, profit float64) float64
	// ProfitOf draws or derives a profit; weight is meaningful only when
	// ProfitFirst reports false.
	ProfitOf(s *sampler.Sampler, weight float64) float64
	// ProfitFirst reports which side is drawn first.
	ProfitFirst() bool

	validate() error
}

// DefaultRange is the data range R used by Pisinger (2005).
const DefaultRange = 1000

// Uncorrelated: w, p ~ U(1,R) independently.
type Uncorrelated struct{ R float64 }

// WeaklyCorrelated: w ~ U(1,R), p ~ max(1, U(w-R/10, w+R/10)).
type WeaklyCorrelated struct{ R float64 }

// StronglyCorrelated: w ~ U(1,R), p = w + R/10.
type StronglyCorrelated struct{ R float64 }

// InverseStronglyCorrelated: p ~ U(1,R), w = p + R/10.
type InverseStronglyCorrelated struct{ R float64 }

// AlmostStronglyCorrelated: w ~ U(1,R), p ~ U(w+R/10-R/500, w+R/10+R/500).
type AlmostStronglyCorrelated struct{ R float64 }

// SubsetSum: w ~ U(1,R), p = w.
type SubsetSum struct{ R float64 }

// UncorrelatedSimilarWeights: w ~ U(100000,100100), p ~ U(1,1000).
type UncorrelatedSimilarWeights struct{}

// ProfitCeiling: w ~ U(1,R), p = D·⌈w/D⌉.
type ProfitCeiling struct{ D, R float64 }

// Circle: w ~ U(1,R), p = D·√(4R² − (w−2R)²).
type Circle struct{ D, R float64 }

// MultipleStronglyCorrelated: w ~ Int(1,R), p = w+K1 if D divides w, else w+K2.
// Weights are integral so the divisibility test is meaningful.
type MultipleStronglyCorrelated struct{ K1, K2, D, R float64 }

func uniformWeight(s *sampler.Sampler, r float64) float64 { return s.Uniform(1, r) }

func checkRange(name string, r float64) error {
	if !(r >= 1) || math.IsInf(r, 0) {
		return fmt.Errorf("%s: R=%g must be a finite value ≥ 1: %w", name, r, geco.ErrInvalidParameter)
	}
	return nil
}

func (d Uncorrelated) WeightOf(s *sampler.Sampler, _ float64) float64 { return uniformWeight(s, d.R) }
func (d Uncorrelated) ProfitOf(s *sampler.Sampler, _ float64) float64 { return s.Uniform(1, d.R) }
func (Uncorrelated) ProfitFirst() bool                                { return true }
func (d Uncorrelated) validate() error                                { return checkRange("Uncorrelated", d.R) }

func (d WeaklyCorrelated) WeightOf(s *sampler.Sampler, _ float64) float64 {
	return uniformWeight(s, d.R)
}
func (d WeaklyCorrelated) ProfitOf(s *sampler.Sampler, w float64) float64 {
	return math.Max(1, s.Uniform(w-d.R/10, w+d.R/10))
}
func (WeaklyCorrelated) ProfitFirst() bool { return false }
func (d WeaklyCorrelated) validate() error { return checkRange("WeaklyCorrelated", d.R) }

func (d StronglyCorrelated) WeightOf(s *sampler.Sampler, _ float64) float64 {
	return uniformWeight(s, d.R)
}
func (d StronglyCorrelated) ProfitOf(_ *sampler.Sampler, w float64) float64 { return w + d.R/10 }
func (StronglyCorrelated) ProfitFirst() bool                               { return false }
func (d StronglyCorrelated) validate() error                               { return checkRange("StronglyCorrelated", d.R) }

func (d InverseStronglyCorrelated) WeightOf(_ *sampler.Sampler, p float64) float64 {
	return p + d.R/10
}
func (d InverseStronglyCorrelated) ProfitOf(s *sampler.Sampler, _ float64) float64 {
	return s.Uniform(1, d.R)
}
func (InverseStronglyCorrelated) ProfitFirst() bool { return true }
func (d InverseStronglyCorrelated) validate() error {
	return checkRange("InverseStronglyCorrelated", d.R)
}

func (d AlmostStronglyCorrelated) WeightOf(s *sampler.Sampler, _ float64) float64 {
	return uniformWeight(s, d.R)
}
func (d AlmostStronglyCorrelated) ProfitOf(s *sampler.Sampler, w float64) float64 {
	base := w + d.R/10
	return s.Uniform(base-d.R/500, base+d.R/500)
}
func (AlmostStronglyCorrelated) ProfitFirst() bool { return false }
func (d AlmostStronglyCorrelated) validate() error {
	return checkRange("AlmostStronglyCorrelated", d.R)
}

func (d SubsetSum) WeightOf(s *sampler.Sampler, _ float64) float64 { return uniformWeight(s, d.R) }
func (SubsetSum) ProfitOf(_ *sampler.Sampler, w float64) float64   { return w }
func (SubsetSum) ProfitFirst() bool                                { return false }
func (d SubsetSum) validate() error                                { return checkRange("SubsetSum", d.R) }

const (
	similarWeightLo = 100_000
	similarWeightHi = 100_100
	similarProfitHi = 1000
)

func (UncorrelatedSimilarWeights) WeightOf(s *sampler.Sampler, _ float64) float64 {
	return s.Uniform(similarWeightLo, similarWeightHi)
}
func (UncorrelatedSimilarWeights) ProfitOf(s *sampler.Sampler, _ float64) float64 {
	return s.Uniform(1, similarProfitHi)
}
func (UncorrelatedSimilarWeights) ProfitFirst() bool { return false }
func (UncorrelatedSimilarWeights) validate() error   { return nil }

func (d ProfitCeiling) WeightOf(s *sampler.Sampler, _ float64) float64 {
	return uniformWeight(s, d.R)
}
func (d ProfitCeiling) ProfitOf(_ *sampler.Sampler, w float64) float64 {
	return d.D * math.Ceil(w/d.D)
}
func (ProfitCeiling) ProfitFirst() bool { return false }
func (d ProfitCeiling) validate() error {
	if !(d.D > 0) {
		return fmt.Errorf("ProfitCeiling: D=%g must be > 0: %w", d.D, geco.ErrInvalidParameter)
	}
	return checkRange("ProfitCeiling", d.R)
}

func (d Circle) WeightOf(s *sampler.Sampler, _ float64) float64 { return uniformWeight(s, d.R) }
func (d Circle) ProfitOf(_ *sampler.Sampler, w float64) float64 {
	return d.D * math.Sqrt(4*d.R*d.R-(w-2*d.R)*(w-2*d.R))
}
func (Circle) ProfitFirst() bool { return false }
func (d Circle) validate() error {
	if !(d.D > 0) {
		return fmt.Errorf("Circle: D=%g must be > 0: %w", d.D, geco.ErrInvalidParameter)
	}
	return checkRange("Circle", d.R)
}

func (d MultipleStronglyCorrelated) WeightOf(s *sampler.Sampler, _ float64) float64 {
	return float64(s.Int(1, int(d.R)))
}
func (d MultipleStronglyCorrelated) ProfitOf(_ *sampler.Sampler, w float64) float64 {
	if math.Mod(w, d.D) == 0 {
		return w + d.K1
	}
	return w + d.K2
}
func (MultipleStronglyCorrelated) ProfitFirst() bool { return false }
func (d MultipleStronglyCorrelated) validate() error {
	if !(d.D >= 1) || d.K1 < 0 || d.K2 < 0 {
		return fmt.Errorf("MultipleStronglyCorrelated: K1=%g K2=%g D=%g: %w", d.K1, d.K2, d.D, geco.ErrInvalidParameter)
	}
	return checkRange("MultipleStronglyCorrelated", d.R)
}

// Defaults of the parameterised families when selected by name (Pisinger 2005).
const (
	defaultCeilingD = 3
	defaultCircleD  = 2.0 / 3.0
	defaultMstrK1   = 300
	defaultMstrK2   = 200
	defaultMstrD    = 6
)

// DistributionNames lists the names accepted by DistributionByName.
var DistributionNames = []string{
	"uncorrelated",
	"weakly_correlated",
	"strongly_correlated",
	"inverse_strongly_correlated",
	"almost_strongly_correlated",
	"subset_sum",
	"uncorrelated_similar_weights",
	"profit_ceiling",
	"circle",
	"multiple_strongly_correlated",
}

// DistributionByName returns the named distribution with data range r and the
// published defaults for the remaining fields.
//
// Errors: unknown name → geco.ErrUnsupportedVariant; invalid r →
// geco.ErrInvalidParameter.
func DistributionByName(name string, r float64) (Distribution, error) {
	var d Distribution
	switch name {
	case "uncorrelated":
		d = Uncorrelated{R: r}
	case "weakly_correlated":
		d = WeaklyCorrelated{R: r}
	case "strongly_correlated":
		d = StronglyCorrelated{R: r}
	case "inverse_strongly_correlated":
		d = InverseStronglyCorrelated{R: r}
	case "almost_strongly_correlated":
		d = AlmostStronglyCorrelated{R: r}
	case "subset_sum":
		d = SubsetSum{R: r}
	case "uncorrelated_similar_weights":
		d = UncorrelatedSimilarWeights{}
	case "profit_ceiling":
		d = ProfitCeiling{D: defaultCeilingD, R: r}
	case "circle":
		d = Circle{D: defaultCircleD, R: r}
	case "multiple_strongly_correlated":
		d = MultipleStronglyCorrelated{K1: defaultMstrK1, K2: defaultMstrK2, D: defaultMstrD, R: r}
	default:
		return nil, fmt.Errorf("DistributionByName(%q): %w", name, geco.ErrUnsupportedVariant)
	}
	if err := d.validate(); err != nil {
		return nil, fmt.Errorf("DistributionByName(%q): %w", name, err)
	}
	return d, nil
}
