// SPDX-License-Identifier: MIT
// Package: geco/generator

package generator

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/geco"
	"github.com/katalvlaran/geco/sampler"
)

const (
	methodTake      = "Take"
	methodGenerateN = "GenerateN"
)

// GenFunc draws one value from s.
type GenFunc[T any] func(s *sampler.Sampler) (T, error)

// Stream yields successive values of a GenFunc that all consume the same
// Sampler, so the i-th value depends on every value before it.
type Stream[T any] struct {
	s   *sampler.Sampler
	gen GenFunc[T]
	n   int
}

// NewStream returns a Stream over s. Panics if s or gen is nil.
func NewStream[T any](s *sampler.Sampler, gen GenFunc[T]) *Stream[T] {
	if s == nil || gen == nil {
		panic("generator: NewStream(nil)")
	}
	return &Stream[T]{s: s, gen: gen}
}

// SeededStream is NewStream over a fresh sampler.New(seed).
func SeededStream[T any](seed int64, gen GenFunc[T]) *Stream[T] {
	return NewStream(sampler.New(seed), gen)
}

// Next draws the next value.
func (st *Stream[T]) Next() (T, error) {
	v, err := st.gen(st.s)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("generator: value %d: %w", st.n, err)
	}
	st.n++
	return v, nil
}

// Generated returns how many values Next has produced.
func (st *Stream[T]) Generated() int { return st.n }

// Take draws the next n values. On error nothing is returned, but the
// values drawn before the failure are consumed.
func (st *Stream[T]) Take(n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodTake, n, geco.ErrInvalidParameter)
	}
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		v, err := st.Next()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodTake, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// All ranges over the stream until the consumer stops or a draw fails. A
// failure is yielded once, with the zero value, and ends the sequence.
func (st *Stream[T]) All() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for {
			v, err := st.Next()
			if !yield(v, err) || err != nil {
				return
			}
		}
	}
}

// GenerateN returns n values of a Stream seeded with seed.
func GenerateN[T any](n int, seed int64, gen GenFunc[T]) ([]T, error) {
	if gen == nil {
		return nil, fmt.Errorf("%s: nil generator: %w", methodGenerateN, geco.ErrInvalidParameter)
	}
	return SeededStream(seed, gen).Take(n)
}
