//-------------------------------------------------------------------------
//
// pgEdge Retail Dataset Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package dims builds the three dimension tables of the dataset:
// customers, stores and products. All randomness flows through a
// caller-supplied rand.Rand plus a seeded faker, so the same seed
// always produces the same dimensions.
package dims

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/pgEdge/retailgen/internal/datagen"
	"github.com/pgEdge/retailgen/internal/dataset"
	"github.com/pgEdge/retailgen/internal/sample"
)

// Config tunes dimension generation.
type Config struct {
	// ParetoAlpha shapes the product popularity curve. Larger values
	// concentrate demand on fewer products.
	ParetoAlpha float64

	// TopSellerBoost multiplies the purchase weight of top sellers.
	TopSellerBoost float64

	// TopSellerRate is the probability that a sampled (non-catalog)
	// product is flagged as a top seller.
	TopSellerRate float64
}

// DefaultConfig returns the tuning used by the stock dataset.
func DefaultConfig() Config {
	return Config{
		ParetoAlpha:    1.18,
		TopSellerBoost: 1.6,
		TopSellerRate:  0.08,
	}
}

// Builder generates dimension rows.
type Builder struct {
	rng   *rand.Rand
	faker *datagen.Faker
	cfg   Config
}

// NewBuilder returns a Builder drawing from rng and faker.
func NewBuilder(rng *rand.Rand, faker *datagen.Faker, cfg Config) *Builder {
	return &Builder{rng: rng, faker: faker, cfg: cfg}
}

// Customers generates n customer rows with weighted segment, region
// and activity level assignment.
func (b *Builder) Customers(n int) ([]dataset.Customer, error) {
	if n <= 0 {
		return nil, nil
	}

	customers := make([]dataset.Customer, 0, n)
	for i := 0; i < n; i++ {
		segment, err := sample.ChooseOne(b.rng, segments, segmentWeights)
		if err != nil {
			return nil, fmt.Errorf("choosing segment: %w", err)
		}
		region, err := sample.ChooseOne(b.rng, regions, regionWeights)
		if err != nil {
			return nil, fmt.Errorf("choosing region: %w", err)
		}
		activity, err := sample.ChooseOne(b.rng, activityLevels, activityWeights)
		if err != nil {
			return nil, fmt.Errorf("choosing activity level: %w", err)
		}

		name := b.faker.Name()
		customers = append(customers, dataset.Customer{
			ID:            i + 1,
			Name:          name,
			Email:         emailFor(name, i+1),
			Segment:       segment,
			Region:        region,
			ActivityLevel: activity,
		})
	}
	return customers, nil
}

// emailFor derives a deterministic address from the customer name so
// the two columns agree.
func emailFor(name string, id int) string {
	slug := strings.ToLower(strings.ReplaceAll(name, " ", "."))
	slug = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, slug)
	if slug == "" {
		slug = "customer"
	}
	return fmt.Sprintf("%s%d@example.com", slug, id)
}

// Stores generates n store rows placed on the fixed LATAM geography,
// weighted by country.
func (b *Builder) Stores(n int) ([]dataset.Store, error) {
	if n <= 0 {
		return nil, nil
	}

	cityWeights := make([]float64, len(geoCities))
	for i, g := range geoCities {
		w, ok := countryWeights[g.country]
		if !ok {
			w = defaultCountryWeight
		}
		cityWeights[i] = w
	}

	stores := make([]dataset.Store, 0, n)
	for i := 0; i < n; i++ {
		idx, err := sample.ChooseIndex(b.rng, cityWeights)
		if err != nil {
			return nil, fmt.Errorf("choosing city: %w", err)
		}
		g := geoCities[idx]

		storeType, err := sample.ChooseOne(b.rng, storeTypes, storeTypeWeights)
		if err != nil {
			return nil, fmt.Errorf("choosing store type: %w", err)
		}

		// Small jitter keeps stores in the same city from stacking
		// on one coordinate.
		lat := g.lat + sample.Uniform(b.rng, -0.05, 0.05)
		lon := g.lon + sample.Uniform(b.rng, -0.05, 0.05)

		stores = append(stores, dataset.Store{
			ID:          i + 1,
			Name:        fmt.Sprintf("%s %s %d", g.city, storeType, i+1),
			Region:      g.macroRegion,
			Type:        storeType,
			Country:     g.country,
			AdminRegion: g.adminRegion,
			City:        g.city,
			Lat:         lat,
			Lon:         lon,
		})
	}
	return stores, nil
}

// Products generates n product rows. The fixed top-seller catalog is
// seeded first; the remainder is sampled from the category
// vocabularies. Purchase weights follow a Pareto curve over catalog
// rank, boosted for top sellers.
func (b *Builder) Products(n int) ([]dataset.Product, error) {
	if n <= 0 {
		return nil, nil
	}

	// The fixed catalog leads; a smaller n just truncates it.
	seeded := len(topSellerCatalog)
	if seeded > n {
		seeded = n
	}
	products := make([]dataset.Product, 0, n)
	for i, t := range topSellerCatalog[:seeded] {
		p := b.newProduct(i+1, t.name, t.category, t.subCategory, t.brand, true)
		products = append(products, p)
	}

	for i := seeded; i < n; i++ {
		category, err := sample.ChooseOne(b.rng, categories, categoryWeightsFor())
		if err != nil {
			return nil, fmt.Errorf("choosing category: %w", err)
		}
		subs := subCategories[category]
		subCategory := subs[b.rng.Intn(len(subs))]
		bs := brands[category]
		brand := bs[b.rng.Intn(len(bs))]
		suffix := productSuffixes[b.rng.Intn(len(productSuffixes))]
		model := capitalize(b.faker.Word())
		name := fmt.Sprintf("%s %s %s %s", brand, subCategory, model, suffix)

		top := b.rng.Float64() < b.cfg.TopSellerRate
		products = append(products, b.newProduct(i+1, name, category, subCategory, brand, top))
	}

	b.assignWeights(products)
	return products, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// categoryWeightsFor returns uniform weights over categories. Kept as
// a function so per-category skew can be added without touching the
// sampling loop.
func categoryWeightsFor() []float64 {
	w := make([]float64, len(categories))
	for i := range w {
		w[i] = 1
	}
	return w
}

func (b *Builder) newProduct(id int, name, category, subCategory, brand string, top bool) dataset.Product {
	lo, hi := PriceRange(subCategory)
	if PremiumBrand(brand) {
		lo *= 1.08
		hi *= 1.08
	}
	return dataset.Product{
		ID:          id,
		Name:        datagen.Truncate(name, 120),
		Category:    category,
		SubCategory: subCategory,
		Brand:       brand,
		TopSeller:   top,
		PriceMin:    lo,
		PriceMax:    hi,
	}
}

// assignWeights sets PurchaseWeight to a normalized Pareto curve over
// a random permutation of the catalog, boosted for top sellers. The
// permutation decouples popularity rank from catalog order.
func (b *Builder) assignWeights(products []dataset.Product) {
	base := sample.ParetoWeights(len(products), b.cfg.ParetoAlpha)
	perm := b.rng.Perm(len(products))

	total := 0.0
	for i := range products {
		w := base[perm[i]]
		if products[i].TopSeller {
			w *= b.cfg.TopSellerBoost
		}
		products[i].PurchaseWeight = w
		total += w
	}
	for i := range products {
		products[i].PurchaseWeight /= total
	}
}
