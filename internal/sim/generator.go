//-------------------------------------------------------------------------
//
// pgEdge Retail Dataset Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package sim

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/pgEdge/retailgen/internal/dataset"
	"github.com/pgEdge/retailgen/internal/demand"
	"github.com/pgEdge/retailgen/internal/dims"
	"github.com/pgEdge/retailgen/internal/sample"
)

// Config holds simulation parameters shared by all strategies.
type Config struct {
	// Start and End bound the simulated period (inclusive).
	Start, End time.Time

	// TargetLines is the line budget. The day strategy derives its
	// daily Poisson line rate from it, so expected volume tracks the
	// budget rather than the candidate order count.
	TargetLines int

	// AvgLinesPerOrder converts a drawn line count into an order
	// count for the day strategy.
	AvgLinesPerOrder float64

	// Orders is the candidate order count thinned by the order
	// strategy.
	Orders int

	// MaxLines caps the line count of a single order.
	MaxLines int
}

// activityLineBase maps customer activity level to the mean line
// count of an order.
var activityLineBase = map[string]float64{
	dataset.ActivityLow:    1.4,
	dataset.ActivityMedium: 2.0,
	dataset.ActivityHigh:   2.6,
}

// activityOrderWeight maps activity level to order propensity.
var activityOrderWeight = map[string]float64{
	dataset.ActivityLow:    0.65,
	dataset.ActivityMedium: 1.0,
	dataset.ActivityHigh:   1.6,
}

// onlineCategoryAffinity skews online baskets toward categories that
// sell well on the web channel.
var onlineCategoryAffinity = map[string]float64{
	"Running": 1.25,
	"Tenis":   0.95,
	"Padel":   0.95,
	"Fitness": 1.30,
}

const (
	onlineTopSellerBoost = 1.15
	storeRegionBias      = 1.6
	onlineLineBonus      = 0.2
	onlineDiscountJitter = 0.06
	maxDiscount          = 0.6
)

// Generator turns orders into priced sales lines. It precomputes the
// sampling weights once so per-order work is a handful of draws.
type Generator struct {
	rng    *rand.Rand
	cfg    Config
	shaper *demand.Shaper

	customers []dataset.Customer
	stores    []dataset.Store
	products  []dataset.Product

	custWeights       []float64
	prodWeights       []float64
	prodOnlineWeights []float64

	// storeWeights is keyed by customer region: stores in the same
	// macro region are favored.
	storeWeights map[string][]float64

	orderSeq int
}

// NewGenerator builds a Generator over the given dimensions.
func NewGenerator(rng *rand.Rand, cfg Config, shaper *demand.Shaper,
	customers []dataset.Customer, stores []dataset.Store, products []dataset.Product) (*Generator, error) {

	if len(customers) == 0 || len(stores) == 0 || len(products) == 0 {
		return nil, fmt.Errorf("all dimensions must be non-empty: %d customers, %d stores, %d products",
			len(customers), len(stores), len(products))
	}
	if cfg.End.Before(cfg.Start) {
		return nil, fmt.Errorf("end date %s is before start date %s",
			cfg.End.Format("2006-01-02"), cfg.Start.Format("2006-01-02"))
	}
	if cfg.TargetLines < 1 {
		return nil, fmt.Errorf("target line count must be positive, got %d", cfg.TargetLines)
	}
	if cfg.AvgLinesPerOrder <= 0 {
		return nil, fmt.Errorf("average lines per order must be positive, got %g", cfg.AvgLinesPerOrder)
	}
	if cfg.Orders < 1 {
		return nil, fmt.Errorf("order count must be positive, got %d", cfg.Orders)
	}
	if cfg.MaxLines < 1 {
		return nil, fmt.Errorf("max lines must be positive, got %d", cfg.MaxLines)
	}

	g := &Generator{
		rng:       rng,
		cfg:       cfg,
		shaper:    shaper,
		customers: customers,
		stores:    stores,
		products:  products,
	}

	g.custWeights = make([]float64, len(customers))
	for i, c := range customers {
		w, ok := activityOrderWeight[c.ActivityLevel]
		if !ok {
			w = 1.0
		}
		g.custWeights[i] = w
	}

	g.prodWeights = make([]float64, len(products))
	for i, p := range products {
		w := p.PurchaseWeight
		if w <= 0 {
			w = 1.0 / float64(len(products))
		}
		g.prodWeights[i] = w
	}
	g.prodOnlineWeights = sample.Apply(g.prodWeights,
		func(i int) float64 {
			if a, ok := onlineCategoryAffinity[products[i].Category]; ok {
				return a
			}
			return 1
		},
		func(i int) float64 {
			if products[i].TopSeller {
				return onlineTopSellerBoost
			}
			return 1
		},
	)

	g.storeWeights = make(map[string][]float64)
	regions := make(map[string]bool)
	for _, c := range customers {
		regions[c.Region] = true
	}
	for region := range regions {
		weights := make([]float64, len(stores))
		for i, s := range stores {
			weights[i] = 1.0
			if s.Region == region {
				weights[i] = storeRegionBias
			}
		}
		g.storeWeights[region] = weights
	}

	return g, nil
}

// Days returns the number of days in the simulated period, inclusive.
func (g *Generator) Days() int {
	return int(g.cfg.End.Sub(g.cfg.Start).Hours()/24) + 1
}

// Day returns the i-th day of the period.
func (g *Generator) Day(i int) time.Time {
	return g.cfg.Start.AddDate(0, 0, i)
}

// DrawChannel picks the order channel for a day using the shaped
// online share.
func (g *Generator) DrawChannel(d time.Time) bool {
	return g.rng.Float64() < g.shaper.OnlineShare(d)
}

// GenerateOrder produces the sales lines of one order placed on day d
// over the given channel.
func (g *Generator) GenerateOrder(d time.Time, online bool) ([]dataset.SaleLine, error) {
	g.orderSeq++
	orderID := g.orderSeq

	ci, err := sample.ChooseIndex(g.rng, g.custWeights)
	if err != nil {
		return nil, fmt.Errorf("choosing customer: %w", err)
	}
	customer := g.customers[ci]

	si, err := sample.ChooseIndex(g.rng, g.storeWeights[customer.Region])
	if err != nil {
		return nil, fmt.Errorf("choosing store: %w", err)
	}
	store := g.stores[si]

	channel := dataset.ChannelStore
	prodWeights := g.prodWeights
	if online {
		channel = dataset.ChannelOnline
		prodWeights = g.prodOnlineWeights
	}

	n := g.lineCount(customer.ActivityLevel, online)
	band := g.shaper.DiscountBand(d)

	lines := make([]dataset.SaleLine, 0, n)
	used := make(map[int]bool, n)
	for li := 0; li < n; li++ {
		pi, err := sample.ChooseIndex(g.rng, prodWeights)
		if err != nil {
			return nil, fmt.Errorf("choosing product: %w", err)
		}
		// A basket rarely holds the same product twice; retry a few
		// times, then accept the collision.
		for attempt := 0; used[pi] && attempt < 4; attempt++ {
			pi, err = sample.ChooseIndex(g.rng, prodWeights)
			if err != nil {
				return nil, fmt.Errorf("choosing product: %w", err)
			}
		}
		used[pi] = true
		product := g.products[pi]

		qty := g.quantity(product)
		price := g.unitPrice(product)
		discount := sample.Uniform(g.rng, band.Lo, band.Hi)
		if online {
			discount = sample.Clamp(discount+sample.Uniform(g.rng, 0, onlineDiscountJitter), 0, maxDiscount)
		}
		net := roundCents(float64(qty) * price * (1 - discount))

		lines = append(lines, dataset.SaleLine{
			OrderID:     orderID,
			LineID:      li + 1,
			OrderDate:   d,
			CustomerID:  customer.ID,
			StoreID:     store.ID,
			ProductID:   product.ID,
			Channel:     channel,
			Quantity:    qty,
			UnitPrice:   price,
			DiscountPct: discount,
			NetSales:    net,
		})
		g.applyReturn(&lines[li], product, online)
	}

	g.applyPayment(lines, online)
	g.applyShipping(lines, store.Region, online)
	return lines, nil
}

// lineCount draws the number of lines for an order, capped by config.
func (g *Generator) lineCount(activity string, online bool) int {
	base, ok := activityLineBase[activity]
	if !ok {
		base = 2.0
	}
	if online {
		base += onlineLineBonus
	}
	n := sample.Poisson(g.rng, base)
	if n < 1 {
		n = 1
	}
	if n > g.cfg.MaxLines {
		n = g.cfg.MaxLines
	}
	return n
}

// quantity draws the units for a line. Consumables are bought in
// multiples up to 5; everything else is 1 to 3, almost always 1.
func (g *Generator) quantity(p dataset.Product) int {
	if dims.Consumable(p.SubCategory) {
		q := 1 + sample.Poisson(g.rng, 1.2)
		if q > 5 {
			q = 5
		}
		return q
	}
	switch r := g.rng.Float64(); {
	case r < 0.03:
		return 3
	case r < 0.15:
		return 2
	default:
		return 1
	}
}

// unitPrice draws a lognormal price around the geometric mean of the
// product's range, clamped into the range and rounded to whole pesos.
func (g *Generator) unitPrice(p dataset.Product) float64 {
	lo, hi := p.PriceMin, p.PriceMax
	if lo <= 0 || hi < lo {
		lo, hi = 8000, 60000
	}
	mid := math.Sqrt(lo * hi)
	price := sample.LogNormal(g.rng, math.Log(mid), 0.35)
	return math.Round(sample.Clamp(price, lo, hi))
}

// roundCents rounds a monetary amount to 2 decimals.
func roundCents(x float64) float64 {
	return math.Round(x*100) / 100
}
