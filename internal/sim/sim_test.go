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
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/pgEdge/retailgen/internal/datagen"
	"github.com/pgEdge/retailgen/internal/dataset"
	"github.com/pgEdge/retailgen/internal/demand"
	"github.com/pgEdge/retailgen/internal/dims"
)

func testDims(t *testing.T, seed int64) ([]dataset.Customer, []dataset.Store, []dataset.Product) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	faker := datagen.NewFaker(uint64(seed))
	b := dims.NewBuilder(rng, faker, dims.DefaultConfig())

	customers, err := b.Customers(80)
	if err != nil {
		t.Fatalf("Customers() error = %v", err)
	}
	stores, err := b.Stores(12)
	if err != nil {
		t.Fatalf("Stores() error = %v", err)
	}
	products, err := b.Products(40)
	if err != nil {
		t.Fatalf("Products() error = %v", err)
	}
	return customers, stores, products
}

func testGenerator(t *testing.T, seed int64, shaper *demand.Shaper, cfg Config) *Generator {
	t.Helper()
	customers, stores, products := testDims(t, seed)
	g, err := NewGenerator(rand.New(rand.NewSource(seed)), cfg, shaper, customers, stores, products)
	if err != nil {
		t.Fatalf("NewGenerator() error = %v", err)
	}
	return g
}

func defaultTestConfig() Config {
	return Config{
		Start:            time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:              time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC),
		TargetLines:      4000,
		AvgLinesPerOrder: 2.0,
		Orders:           2000,
		MaxLines:         5,
	}
}

func TestRegistry(t *testing.T) {
	for _, name := range []string{"day", "order"} {
		s, err := Get(name)
		if err != nil {
			t.Fatalf("Get(%q) error = %v", name, err)
		}
		if s.Name() != name {
			t.Errorf("Get(%q).Name() = %q", name, s.Name())
		}
		if s.Description() == "" {
			t.Errorf("strategy %q has no description", name)
		}
	}

	if _, err := Get("nope"); err == nil {
		t.Error("Get of unknown strategy should fail")
	}

	names := List()
	if len(names) < 2 {
		t.Fatalf("List() = %v, want at least day and order", names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("List() not sorted: %v", names)
		}
	}
}

func TestNewGeneratorValidation(t *testing.T) {
	customers, stores, products := testDims(t, 1)
	rng := rand.New(rand.NewSource(1))
	shaper := demand.DefaultShaper()
	cfg := defaultTestConfig()

	if _, err := NewGenerator(rng, cfg, shaper, nil, stores, products); err == nil {
		t.Error("empty customers should fail")
	}
	if _, err := NewGenerator(rng, cfg, shaper, customers, nil, products); err == nil {
		t.Error("empty stores should fail")
	}
	if _, err := NewGenerator(rng, cfg, shaper, customers, stores, nil); err == nil {
		t.Error("empty products should fail")
	}

	bad := cfg
	bad.End = cfg.Start.AddDate(0, 0, -1)
	if _, err := NewGenerator(rng, bad, shaper, customers, stores, products); err == nil {
		t.Error("inverted date range should fail")
	}

	bad = cfg
	bad.MaxLines = 0
	if _, err := NewGenerator(rng, bad, shaper, customers, stores, products); err == nil {
		t.Error("zero max lines should fail")
	}

	bad = cfg
	bad.TargetLines = 0
	if _, err := NewGenerator(rng, bad, shaper, customers, stores, products); err == nil {
		t.Error("zero target lines should fail")
	}

	bad = cfg
	bad.AvgLinesPerOrder = 0
	if _, err := NewGenerator(rng, bad, shaper, customers, stores, products); err == nil {
		t.Error("zero average lines per order should fail")
	}
}

func TestGenerateOrderShape(t *testing.T) {
	g := testGenerator(t, 42, demand.DefaultShaper(), defaultTestConfig())
	products := make(map[int]dataset.Product)
	for _, p := range g.products {
		products[p.ID] = p
	}

	d := time.Date(2024, time.February, 14, 0, 0, 0, 0, time.UTC)
	for trial := 0; trial < 200; trial++ {
		online := trial%2 == 0
		lines, err := g.GenerateOrder(d, online)
		if err != nil {
			t.Fatalf("GenerateOrder() error = %v", err)
		}
		if len(lines) < 1 || len(lines) > g.cfg.MaxLines {
			t.Fatalf("order has %d lines, want 1..%d", len(lines), g.cfg.MaxLines)
		}

		for i, l := range lines {
			if l.OrderID != lines[0].OrderID {
				t.Errorf("line %d has order ID %d, want %d", i, l.OrderID, lines[0].OrderID)
			}
			if l.LineID != i+1 {
				t.Errorf("line %d has line ID %d", i, l.LineID)
			}
			if l.Quantity < 1 {
				t.Errorf("line %d has quantity %d", i, l.Quantity)
			}

			p, ok := products[l.ProductID]
			if !ok {
				t.Fatalf("line %d references unknown product %d", i, l.ProductID)
			}
			if l.UnitPrice < math.Floor(p.PriceMin) || l.UnitPrice > math.Ceil(p.PriceMax) {
				t.Errorf("line %d price %f outside [%f, %f]", i, l.UnitPrice, p.PriceMin, p.PriceMax)
			}
			if l.DiscountPct < 0 || l.DiscountPct > maxDiscount {
				t.Errorf("line %d discount %f outside [0, %f]", i, l.DiscountPct, maxDiscount)
			}

			want := float64(l.Quantity) * l.UnitPrice * (1 - l.DiscountPct)
			if math.Abs(l.NetSales-want) > 0.01 {
				t.Errorf("line %d net sales %f, want about %f", i, l.NetSales, want)
			}

			if online {
				if l.Channel != dataset.ChannelOnline {
					t.Errorf("line %d channel %q, want online", i, l.Channel)
				}
				if l.ShippingType == "" {
					t.Errorf("online line %d has no shipping type", i)
				}
				if l.DeliveryDays < 0 || l.DeliveryDays > 12 {
					t.Errorf("online line %d has delivery days %d", i, l.DeliveryDays)
				}
			} else {
				if l.Channel != dataset.ChannelStore {
					t.Errorf("line %d channel %q, want store", i, l.Channel)
				}
				if l.ShippingType != "" || l.DeliveryDays != 0 {
					t.Errorf("store line %d carries shipping %q/%d", i, l.ShippingType, l.DeliveryDays)
				}
			}

			if l.Returned {
				if l.ReturnAmount <= 0 || l.ReturnAmount > l.NetSales {
					t.Errorf("returned line %d has amount %f, net %f", i, l.ReturnAmount, l.NetSales)
				}
			} else if l.ReturnAmount != 0 {
				t.Errorf("unreturned line %d has return amount %f", i, l.ReturnAmount)
			}

			if !paymentAllowed(l.PaymentMethod, online) {
				t.Errorf("line %d has payment %q for online=%v", i, l.PaymentMethod, online)
			}
			if l.PaymentMethod != lines[0].PaymentMethod {
				t.Errorf("line %d payment differs within order", i)
			}
		}
	}
}

func paymentAllowed(method string, online bool) bool {
	methods := storePayments
	if online {
		methods = onlinePayments
	}
	for _, m := range methods {
		if m == method {
			return true
		}
	}
	return false
}

func TestEventDiscountBand(t *testing.T) {
	event := demand.Event{
		Name:  "promo",
		Start: demand.Date(2024, time.June, 1),
		End:   demand.Date(2024, time.June, 5),
		Boost: 1.8,
		Band:  demand.Band{Lo: 0.15, Hi: 0.45},
	}
	// Zero mix bounds force every order onto the store channel, so no
	// online jitter widens the discount band.
	shaper := &demand.Shaper{
		Events:   []demand.Event{event},
		Baseline: demand.BaselineBand,
		MixFloor: 0,
		MixCeil:  0,
	}

	cfg := defaultTestConfig()
	cfg.Start = demand.Date(2024, time.June, 1)
	cfg.End = demand.Date(2024, time.June, 30)
	g := testGenerator(t, 9, shaper, cfg)

	d := demand.Date(2024, time.June, 3)
	for trial := 0; trial < 100; trial++ {
		lines, err := g.GenerateOrder(d, g.DrawChannel(d))
		if err != nil {
			t.Fatalf("GenerateOrder() error = %v", err)
		}
		for _, l := range lines {
			if l.Channel != dataset.ChannelStore {
				t.Fatalf("expected store channel with zero mix bounds, got %q", l.Channel)
			}
			if l.DiscountPct < 0.15 || l.DiscountPct >= 0.45 {
				t.Errorf("event day discount %f outside [0.15, 0.45)", l.DiscountPct)
			}
		}
	}
}

func TestOnlineDiscountJitter(t *testing.T) {
	// Mix bounds of 1 force every order online, so the only discount
	// mass above the baseline band comes from the online jitter.
	shaper := &demand.Shaper{
		Baseline: demand.BaselineBand,
		MixFloor: 1,
		MixCeil:  1,
	}

	cfg := defaultTestConfig()
	g := testGenerator(t, 11, shaper, cfg)

	d := time.Date(2024, time.February, 7, 0, 0, 0, 0, time.UTC)
	var aboveBand int
	for trial := 0; trial < 200; trial++ {
		lines, err := g.GenerateOrder(d, g.DrawChannel(d))
		if err != nil {
			t.Fatalf("GenerateOrder() error = %v", err)
		}
		for _, l := range lines {
			if l.Channel != dataset.ChannelOnline {
				t.Fatalf("expected online channel with full mix bounds, got %q", l.Channel)
			}
			if l.DiscountPct >= demand.BaselineBand.Hi+onlineDiscountJitter {
				t.Errorf("online discount %f beyond band plus jitter", l.DiscountPct)
			}
			if l.DiscountPct > demand.BaselineBand.Hi {
				aboveBand++
			}
		}
	}
	if aboveBand == 0 {
		t.Error("online jitter never pushed a discount past the baseline band")
	}
}

func TestDayStrategyTracksLineBudget(t *testing.T) {
	s, err := Get("day")
	if err != nil {
		t.Fatalf("Get(day) error = %v", err)
	}

	run := func(orders int) []dataset.SaleLine {
		cfg := defaultTestConfig()
		cfg.TargetLines = 6000
		cfg.Orders = orders
		g := testGenerator(t, 42, demand.DefaultShaper(), cfg)
		lines, err := s.Simulate(g)
		if err != nil {
			t.Fatalf("Simulate() error = %v", err)
		}
		return lines
	}

	// Seasonal multipliers push expected volume above the budget, but
	// it has to stay on the budget's scale.
	lines := run(100)
	if len(lines) < 5000 || len(lines) > 10000 {
		t.Fatalf("day strategy produced %d lines for a 6000 line budget", len(lines))
	}

	// The daily rate derives from the line budget, so the candidate
	// order count must not change the output at all.
	other := run(100000)
	if len(other) != len(lines) {
		t.Fatalf("order count changed day strategy volume: %d vs %d lines", len(lines), len(other))
	}
	for i := range lines {
		if lines[i] != other[i] {
			t.Fatalf("line %d differs when only the candidate order count changes", i)
		}
	}
}

func TestQuantityBounds(t *testing.T) {
	g := testGenerator(t, 7, demand.DefaultShaper(), defaultTestConfig())

	consumable := dataset.Product{SubCategory: "Pelotas Tenis"}
	durable := dataset.Product{SubCategory: "Zapatillas Running"}

	seen := map[string]map[int]bool{"consumable": {}, "durable": {}}
	for i := 0; i < 3000; i++ {
		q := g.quantity(consumable)
		if q < 1 || q > 5 {
			t.Fatalf("consumable quantity %d outside [1, 5]", q)
		}
		seen["consumable"][q] = true

		q = g.quantity(durable)
		if q < 1 || q > 3 {
			t.Fatalf("durable quantity %d outside [1, 3]", q)
		}
		seen["durable"][q] = true
	}

	if !seen["consumable"][5] {
		t.Error("consumables never reached quantity 5")
	}
	if !seen["durable"][3] {
		t.Error("durables never reached quantity 3")
	}
}

func TestStrategyDeterminism(t *testing.T) {
	for _, name := range []string{"day", "order"} {
		t.Run(name, func(t *testing.T) {
			run := func() []dataset.SaleLine {
				cfg := defaultTestConfig()
				cfg.Orders = 300
				g := testGenerator(t, 42, demand.DefaultShaper(), cfg)
				s, err := Get(name)
				if err != nil {
					t.Fatalf("Get(%q) error = %v", name, err)
				}
				lines, err := s.Simulate(g)
				if err != nil {
					t.Fatalf("Simulate() error = %v", err)
				}
				return lines
			}

			a, b := run(), run()
			if len(a) != len(b) {
				t.Fatalf("runs differ in length: %d vs %d", len(a), len(b))
			}
			for i := range a {
				if a[i] != b[i] {
					t.Fatalf("line %d differs between identically seeded runs", i)
				}
			}
		})
	}
}

func TestStrategyDatesWithinRange(t *testing.T) {
	cfg := defaultTestConfig()
	cfg.Orders = 500

	for _, name := range []string{"day", "order"} {
		t.Run(name, func(t *testing.T) {
			g := testGenerator(t, 5, demand.DefaultShaper(), cfg)
			s, err := Get(name)
			if err != nil {
				t.Fatalf("Get(%q) error = %v", name, err)
			}
			lines, err := s.Simulate(g)
			if err != nil {
				t.Fatalf("Simulate() error = %v", err)
			}
			if len(lines) == 0 {
				t.Fatal("strategy produced no lines")
			}
			for _, l := range lines {
				if l.OrderDate.Before(cfg.Start) || l.OrderDate.After(cfg.End) {
					t.Fatalf("line dated %s outside the period", l.OrderDate.Format("2006-01-02"))
				}
			}
		})
	}
}

func BenchmarkGenerateOrder(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	faker := datagen.NewFaker(42)
	builder := dims.NewBuilder(rng, faker, dims.DefaultConfig())
	customers, _ := builder.Customers(1000)
	stores, _ := builder.Stores(30)
	products, _ := builder.Products(400)

	g, err := NewGenerator(rng, defaultTestConfig(), demand.DefaultShaper(), customers, stores, products)
	if err != nil {
		b.Fatalf("NewGenerator() error = %v", err)
	}

	d := time.Date(2024, time.February, 14, 0, 0, 0, 0, time.UTC)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.GenerateOrder(d, i%2 == 0); err != nil {
			b.Fatal(err)
		}
	}
}
