// Package builder provides the edge-weight distributions used by weighted
// constructors.
package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/geco/sampler"
)

// DefaultEdgeWeight is the weight of every edge when no WeightFn is set.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an edge weight from the build's sampler. Deterministic
// functions ignore the sampler (it may be nil).
type WeightFn func(s *sampler.Sampler) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *sampler.Sampler) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value is NaN or infinite.
func ConstantWeightFn(value float64) WeightFn {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be finite, got %g", value))
	}
	return func(_ *sampler.Sampler) float64 { return value }
}

// UniformIntWeightFn draws an integer uniformly from [lo, hi] (one Int draw).
// Panics if hi < lo.
func UniformIntWeightFn(lo, hi int) WeightFn {
	if hi < lo {
		panic(fmt.Sprintf("UniformIntWeightFn: hi=%d < lo=%d", hi, lo))
	}
	return func(s *sampler.Sampler) float64 { return float64(s.Int(lo, hi)) }
}

// ScaledIntWeightFn draws an integer from [lo, hi] and divides it by scale,
// e.g. ScaledIntWeightFn(-10, 10, 10) yields {-1.0, -0.9, …, 1.0}.
// Panics if hi < lo or scale is zero.
func ScaledIntWeightFn(lo, hi int, scale float64) WeightFn {
	if hi < lo {
		panic(fmt.Sprintf("ScaledIntWeightFn: hi=%d < lo=%d", hi, lo))
	}
	if scale == 0 || math.IsNaN(scale) {
		panic("ScaledIntWeightFn: scale must be non-zero")
	}
	return func(s *sampler.Sampler) float64 { return float64(s.Int(lo, hi)) / scale }
}

// UniformWeightFn draws a real weight uniformly from [lo, hi).
// Panics if hi < lo.
func UniformWeightFn(lo, hi float64) WeightFn {
	if hi < lo {
		panic(fmt.Sprintf("UniformWeightFn: hi=%g < lo=%g", hi, lo))
	}
	return func(s *sampler.Sampler) float64 { return s.Uniform(lo, hi) }
}

// SignWeightFn draws +1 or -1 with equal probability (one Float64 draw).
func SignWeightFn() WeightFn {
	return func(s *sampler.Sampler) float64 {
		if s.Float64() < 0.5 {
			return 1
		}
		return -1
	}
}

// BalancedSignWeightFn yields exactly count +1s and count -1s: each call
// draws one Float64 and returns +1 with probability plus/(plus+minus) over
// the remaining supply. Calls past the supply return 0. The returned
// function is stateful; use a fresh one per build.
// Panics if count < 0.
func BalancedSignWeightFn(count int) WeightFn {
	if count < 0 {
		panic(fmt.Sprintf("BalancedSignWeightFn: count=%d < 0", count))
	}
	plus, minus := count, count
	return func(s *sampler.Sampler) float64 {
		if plus+minus == 0 {
			return 0
		}
		if s.Float64() < float64(plus)/float64(plus+minus) {
			plus--
			return 1
		}
		minus--
		return -1
	}
}

// NormalIntWeightFn draws N(mu, sigma), scales it and truncates toward
// zero, e.g. NormalIntWeightFn(0, 1, 1e5) for the t2g torus weights.
// Panics if sigma < 0 or scale is not finite.
func NormalIntWeightFn(mu, sigma, scale float64) WeightFn {
	if !(sigma >= 0) || math.IsInf(sigma, 0) {
		panic(fmt.Sprintf("NormalIntWeightFn: sigma=%g", sigma))
	}
	if math.IsNaN(scale) || math.IsInf(scale, 0) {
		panic(fmt.Sprintf("NormalIntWeightFn: scale=%g", scale))
	}
	return func(s *sampler.Sampler) float64 { return math.Trunc(scale * s.Normal(mu, sigma)) }
}
