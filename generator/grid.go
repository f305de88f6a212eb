// SPDX-License-Identifier: MIT
// Package: geco/generator

package generator

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/geco"
)

const methodExpandParameters = "ExpandParameters"

// Axis is one named dimension of a parameter grid.
type Axis struct {
	Name   string
	Values []any
}

// IntAxis returns an Axis of int values.
func IntAxis(name string, values ...int) Axis { return axisOf(name, values) }

// Int64Axis returns an Axis of int64 values.
func Int64Axis(name string, values ...int64) Axis { return axisOf(name, values) }

// FloatAxis returns an Axis of float64 values.
func FloatAxis(name string, values ...float64) Axis { return axisOf(name, values) }

// StringAxis returns an Axis of string values.
func StringAxis(name string, values ...string) Axis { return axisOf(name, values) }

func axisOf[T any](name string, values []T) Axis {
	a := Axis{Name: name, Values: make([]any, len(values))}
	for i, v := range values {
		a.Values[i] = v
	}
	return a
}

// Point is one element of a parameter grid. Accessors panic on unknown names
// or mismatched types, which are programming errors in the caller.
type Point struct {
	names  []string
	values []any
}

// Names returns the axis names in grid order.
func (p Point) Names() []string { return append([]string(nil), p.names...) }

// Get returns the value of the named axis.
func (p Point) Get(name string) (any, bool) {
	for i, n := range p.names {
		if n == name {
			return p.values[i], true
		}
	}
	return nil, false
}

func (p Point) must(name string) any {
	v, ok := p.Get(name)
	if !ok {
		panic(fmt.Sprintf("generator: point has no axis %q", name))
	}
	return v
}

// Int returns the named int value.
func (p Point) Int(name string) int { return p.must(name).(int) }

// Int64 returns the named int64 value.
func (p Point) Int64(name string) int64 { return p.must(name).(int64) }

// Float64 returns the named float64 value.
func (p Point) Float64(name string) float64 { return p.must(name).(float64) }

// Text returns the named string value.
func (p Point) Text(name string) string { return p.must(name).(string) }

// Map returns the point as a name → value map.
func (p Point) Map() map[string]any {
	out := make(map[string]any, len(p.names))
	for i, n := range p.names {
		out[n] = p.values[i]
	}
	return out
}

// Points returns the lazy Cartesian product of axes in lexicographic order,
// the last axis varying fastest. With no axes it yields one empty Point; an
// axis without values makes the product empty. The sequence is stateless
// and may be ranged over any number of times.
//
// Errors: an empty or repeated axis name → geco.ErrInvalidParameter.
func Points(axes ...Axis) (iter.Seq[Point], error) {
	names := make([]string, len(axes))
	seen := make(map[string]bool, len(axes))
	for i, a := range axes {
		if a.Name == "" || seen[a.Name] {
			return nil, fmt.Errorf("%s: axis %d name %q: %w", methodExpandParameters, i, a.Name, geco.ErrInvalidParameter)
		}
		seen[a.Name] = true
		names[i] = a.Name
	}
	grid := make([][]any, len(axes))
	for i, a := range axes {
		grid[i] = append([]any(nil), a.Values...)
	}

	return func(yield func(Point) bool) {
		for _, vs := range grid {
			if len(vs) == 0 {
				return
			}
		}
		odometer := make([]int, len(grid))
		for {
			values := make([]any, len(grid))
			for i, k := range odometer {
				values[i] = grid[i][k]
			}
			if !yield(Point{names: names, values: values}) {
				return
			}
			i := len(odometer) - 1
			for ; i >= 0; i-- {
				odometer[i]++
				if odometer[i] < len(grid[i]) {
					break
				}
				odometer[i] = 0
			}
			if i < 0 {
				return
			}
		}
	}, nil
}

// ExpandParameters lazily maps fn over Points(axes...). Values are computed
// on demand and never cached.
func ExpandParameters[T any](fn func(Point) T, axes ...Axis) (iter.Seq[T], error) {
	if fn == nil {
		return nil, fmt.Errorf("%s: nil function: %w", methodExpandParameters, geco.ErrInvalidParameter)
	}
	points, err := Points(axes...)
	if err != nil {
		return nil, err
	}
	return func(yield func(T) bool) {
		for pt := range points {
			if !yield(fn(pt)) {
				return
			}
		}
	}, nil
}

// MustExpandParameters is ExpandParameters that panics on error.
func MustExpandParameters[T any](fn func(Point) T, axes ...Axis) iter.Seq[T] {
	seq, err := ExpandParameters(fn, axes...)
	if err != nil {
		panic(err)
	}
	return seq
}
