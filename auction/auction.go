// SPDX-License-Identifier: MIT
// Package: geco/auction

package auction

import (
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/geco"
	"github.com/katalvlaran/geco/model"
)

const methodBuild = "Build"

// Bid is a bundle of item indices with the price offered for all of them.
type Bid struct {
	Items []int
	Price float64
}

// Params is an auction over Items real items plus DummyItems dummy items
// indexed Items..Items+DummyItems-1.
type Params struct {
	Items      int
	DummyItems int
	Bids       []Bid
}

// Validate checks item counts, bundles and prices.
func (p Params) Validate() error {
	if p.Items < 1 || p.DummyItems < 0 {
		return fmt.Errorf("%d items, %d dummy items: %w", p.Items, p.DummyItems, geco.ErrInvalidParameter)
	}
	total := p.Items + p.DummyItems
	for i, b := range p.Bids {
		if len(b.Items) == 0 {
			return fmt.Errorf("bid %d has no items: %w", i, geco.ErrInvalidParameter)
		}
		for _, it := range b.Items {
			if it < 0 || it >= total {
				return fmt.Errorf("bid %d: item %d out of range: %w", i, it, geco.ErrInvalidParameter)
			}
		}
		if math.IsNaN(b.Price) || math.IsInf(b.Price, 0) {
			return fmt.Errorf("bid %d: price %g: %w", i, b.Price, geco.ErrInvalidParameter)
		}
	}
	return nil
}

// Build returns the winner determination Model named "Combinatorial Auction".
// Items without bids get no row.
func Build(p Params) (*model.Model, error) {
	return BuildNamed(p, "Combinatorial Auction")
}

// BuildNamed is Build with a caller-chosen problem name.
func BuildNamed(p Params, name string) (*model.Model, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}

	m := model.New(name)
	byItem := make([][]model.Var, p.Items+p.DummyItems)
	for i, b := range p.Bids {
		x, err := m.AddBinary("x_"+strconv.Itoa(i), b.Price)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuild, err)
		}
		for _, it := range b.Items {
			byItem[it] = append(byItem[it], x)
		}
	}
	for it, bids := range byItem {
		if len(bids) == 0 {
			continue
		}
		if err := m.AddConstraint("item_"+strconv.Itoa(it), model.Sum(bids...), model.LE, 1); err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuild, err)
		}
	}
	if err := m.SetSense(model.Maximize); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}
	return m, nil
}
