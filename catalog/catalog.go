// SPDX-License-Identifier: MIT
// Package: geco/catalog

// Package catalog names the instance families of geco so that tools can
// list them and build them from untyped arguments.
//
//	v, err := catalog.Lookup("setcover/yang")
//	args, err := v.Resolve(catalog.Args{"m": 60})
//	m, err := v.Build(args, seed)
//
// Names are "<family>/<scheme>". Every variant draws from a fresh sampler
// seeded with the seed passed to Build.
package catalog

import (
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/katalvlaran/geco"
	"github.com/katalvlaran/geco/model"
)

const (
	methodLookup  = "Lookup"
	methodResolve = "Resolve"
)

// Kind is the type of a variant parameter.
type Kind int

const (
	Int Kind = iota
	Float
	Bool
	String
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	case String:
		return "string"
	default:
		return "unknown"
	}
}

// Param describes one argument of a variant.
type Param struct {
	Name    string
	Kind    Kind
	Default any
	Doc     string
}

// BuildFunc builds an instance from resolved arguments and a seed.
type BuildFunc func(args Args, seed int64) (*model.Model, error)

// Variant is a named, buildable instance scheme.
type Variant struct {
	Name    string
	Summary string
	Params  []Param
	Build   BuildFunc
}

// Resolve returns args completed with defaults and checked against the
// parameter list. Values keep their dynamic type; accessors convert them.
//
// Errors: an unknown name, or a value that does not convert to its Kind →
// geco.ErrInvalidParameter.
func (v Variant) Resolve(args Args) (Args, error) {
	out := make(Args, len(v.Params))
	for name := range args {
		if !slices.ContainsFunc(v.Params, func(p Param) bool { return p.Name == name }) {
			return nil, fmt.Errorf("%s(%s): unknown parameter %q: %w", methodResolve, v.Name, name, geco.ErrInvalidParameter)
		}
	}
	for _, p := range v.Params {
		val, ok := args[p.Name]
		if !ok {
			val = p.Default
		}
		out[p.Name] = val
		if err := out.check(p); err != nil {
			return nil, fmt.Errorf("%s(%s): %w", methodResolve, v.Name, err)
		}
	}
	return out, nil
}

// Args maps parameter names to values. Values may be Go numbers, bools or
// strings as they come from flags or YAML.
type Args map[string]any

func (a Args) check(p Param) error {
	var err error
	switch p.Kind {
	case Int:
		_, err = a.Int(p.Name)
	case Float:
		_, err = a.Float64(p.Name)
	case Bool:
		_, err = a.Bool(p.Name)
	case String:
		_, err = a.String(p.Name)
	}
	return err
}

func (a Args) get(name string) (any, error) {
	v, ok := a[name]
	if !ok || v == nil {
		return nil, fmt.Errorf("missing argument %q: %w", name, geco.ErrInvalidParameter)
	}
	return v, nil
}

func mistyped(name string, v any, want Kind) error {
	return fmt.Errorf("argument %q=%v (%T) is not %s: %w", name, v, v, want, geco.ErrInvalidParameter)
}

// Int returns the named argument as an int. Integral floats and decimal
// strings convert.
func (a Args) Int(name string) (int, error) {
	v, err := a.get(name)
	if err != nil {
		return 0, err
	}
	switch x := v.(type) {
	case int:
		return x, nil
	case int64:
		return int(x), nil
	case float64:
		if x == math.Trunc(x) && !math.IsInf(x, 0) {
			return int(x), nil
		}
	case string:
		if n, err := strconv.Atoi(x); err == nil {
			return n, nil
		}
	}
	return 0, mistyped(name, v, Int)
}

// Float64 returns the named argument as a float64.
func (a Args) Float64(name string) (float64, error) {
	v, err := a.get(name)
	if err != nil {
		return 0, err
	}
	switch x := v.(type) {
	case float64:
		return x, nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case string:
		if f, err := strconv.ParseFloat(x, 64); err == nil {
			return f, nil
		}
	}
	return 0, mistyped(name, v, Float)
}

// Bool returns the named argument as a bool.
func (a Args) Bool(name string) (bool, error) {
	v, err := a.get(name)
	if err != nil {
		return false, err
	}
	switch x := v.(type) {
	case bool:
		return x, nil
	case string:
		if b, err := strconv.ParseBool(x); err == nil {
			return b, nil
		}
	}
	return false, mistyped(name, v, Bool)
}

// String returns the named argument as a string.
func (a Args) String(name string) (string, error) {
	v, err := a.get(name)
	if err != nil {
		return "", err
	}
	if s, ok := v.(string); ok {
		return s, nil
	}
	return "", mistyped(name, v, String)
}

// Lookup returns the variant called name.
//
// Errors: unknown name → geco.ErrUnsupportedVariant.
func Lookup(name string) (Variant, error) {
	i := slices.IndexFunc(variants, func(v Variant) bool { return v.Name == name })
	if i < 0 {
		return Variant{}, fmt.Errorf("%s(%q): %w", methodLookup, name, geco.ErrUnsupportedVariant)
	}
	return variants[i], nil
}

// Names returns every variant name in sorted order.
func Names() []string {
	out := make([]string, len(variants))
	for i, v := range variants {
		out[i] = v.Name
	}
	slices.Sort(out)
	return out
}

// Generate looks up name, resolves args and builds the instance.
func Generate(name string, args Args, seed int64) (*model.Model, error) {
	v, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	resolved, err := v.Resolve(args)
	if err != nil {
		return nil, err
	}
	return v.Build(resolved, seed)
}
