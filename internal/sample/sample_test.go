//-------------------------------------------------------------------------
//
// pgEdge Retail Dataset Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package sample

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestChooseErrors(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	tests := []struct {
		name    string
		items   []string
		weights []float64
		want    error
	}{
		{"empty items", nil, nil, ErrEmptyItems},
		{"length mismatch", []string{"a", "b"}, []float64{1}, ErrInvalidWeights},
		{"all zero", []string{"a", "b"}, []float64{0, 0}, ErrInvalidWeights},
		{"negative weight", []string{"a", "b"}, []float64{1, -1}, ErrInvalidWeights},
		{"nan weight", []string{"a"}, []float64{math.NaN()}, ErrInvalidWeights},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Choose(r, tt.items, tt.weights, 1)
			if !errors.Is(err, tt.want) {
				t.Errorf("Choose error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestChooseMembership(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	items := []string{"a", "b", "c"}
	weights := []float64{1, 2, 3}

	out, err := Choose(r, items, weights, 100)
	if err != nil {
		t.Fatalf("Choose failed: %v", err)
	}
	if len(out) != 100 {
		t.Fatalf("Expected 100 samples, got %d", len(out))
	}
	for _, v := range out {
		if v != "a" && v != "b" && v != "c" {
			t.Errorf("Choose returned item not in slice: %s", v)
		}
	}
}

func TestChooseDistribution(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	items := []string{"rare", "common", "dominant"}
	// Unnormalized on purpose; Choose must normalize.
	weights := []float64{1, 2, 7}

	counts := make(map[string]int)
	out, err := Choose(r, items, weights, 10000)
	if err != nil {
		t.Fatalf("Choose failed: %v", err)
	}
	for _, v := range out {
		counts[v]++
	}

	if counts["dominant"] < counts["common"] || counts["common"] < counts["rare"] {
		t.Errorf("Weighted choice distribution unexpected: %v", counts)
	}
	if counts["dominant"] < 6000 || counts["dominant"] > 8000 {
		t.Errorf("Expected ~7000 dominant draws, got %d", counts["dominant"])
	}
}

func TestChooseDeterminism(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	weights := []float64{5, 4, 3, 2, 1}

	r1 := rand.New(rand.NewSource(42))
	r2 := rand.New(rand.NewSource(42))

	a, err := Choose(r1, items, weights, 50)
	if err != nil {
		t.Fatalf("Choose failed: %v", err)
	}
	b, err := Choose(r2, items, weights, 50)
	if err != nil {
		t.Fatalf("Choose failed: %v", err)
	}

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Same seed produced different draw at %d: %d != %d", i, a[i], b[i])
		}
	}
}

func TestChooseIndex(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	weights := []float64{0, 0, 1}

	for i := 0; i < 20; i++ {
		idx, err := ChooseIndex(r, weights)
		if err != nil {
			t.Fatalf("ChooseIndex failed: %v", err)
		}
		if idx != 2 {
			t.Errorf("Only index 2 has weight, got %d", idx)
		}
	}
}

func TestApply(t *testing.T) {
	base := []float64{0.25, 0.25, 0.25, 0.25}
	boosted := Apply(base,
		func(i int) float64 {
			if i == 0 {
				return 3
			}
			return 1
		},
		func(i int) float64 {
			if i == 3 {
				return 0
			}
			return 1
		},
	)

	var total float64
	for _, w := range boosted {
		total += w
	}
	if math.Abs(total-1) > 1e-12 {
		t.Errorf("Apply should renormalize to 1, got %v", total)
	}
	if boosted[3] != 0 {
		t.Errorf("Zeroed weight should stay zero, got %v", boosted[3])
	}
	if boosted[0] <= boosted[1] {
		t.Errorf("Boosted weight should dominate: %v vs %v", boosted[0], boosted[1])
	}
	// Base vector must not be modified.
	if base[0] != 0.25 {
		t.Errorf("Apply modified the base vector: %v", base)
	}
}

func TestParetoWeights(t *testing.T) {
	w := ParetoWeights(100, 1.18)
	if len(w) != 100 {
		t.Fatalf("Expected 100 weights, got %d", len(w))
	}

	var total float64
	for i, v := range w {
		total += v
		if i > 0 && v >= w[i-1] {
			t.Errorf("Weights should strictly decrease by rank: w[%d]=%v >= w[%d]=%v",
				i, v, i-1, w[i-1])
		}
	}
	if math.Abs(total-1) > 1e-9 {
		t.Errorf("Weights should sum to 1, got %v", total)
	}

	if ParetoWeights(0, 1.18) != nil {
		t.Error("ParetoWeights(0) should return nil")
	}
}

func TestPoisson(t *testing.T) {
	r := rand.New(rand.NewSource(5))

	if Poisson(r, 0) != 0 {
		t.Error("Poisson(0) should be 0")
	}
	if Poisson(r, -1) != 0 {
		t.Error("Poisson with negative rate should be 0")
	}

	// Sample mean should approximate the rate.
	const n = 20000
	var sum int
	for i := 0; i < n; i++ {
		sum += Poisson(r, 4.0)
	}
	mean := float64(sum) / n
	if mean < 3.8 || mean > 4.2 {
		t.Errorf("Poisson(4) sample mean out of range: %v", mean)
	}
}

func TestPoissonLargeRate(t *testing.T) {
	r := rand.New(rand.NewSource(6))

	// Rates beyond the chunk size must not underflow or hang.
	v := Poisson(r, 2000)
	if v < 1500 || v > 2500 {
		t.Errorf("Poisson(2000) wildly off: %d", v)
	}
}

func TestLogNormal(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		if LogNormal(r, 3.9, 0.6) <= 0 {
			t.Fatal("LogNormal must be positive")
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		x, lo, hi, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
		{0, 0, 1, 0},
	}
	for _, tt := range tests {
		if got := Clamp(tt.x, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.x, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func BenchmarkChooseIndex(b *testing.B) {
	r := rand.New(rand.NewSource(8))
	weights := ParetoWeights(1200, 1.18)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ChooseIndex(r, weights)
	}
}

func BenchmarkPoisson(b *testing.B) {
	r := rand.New(rand.NewSource(9))
	for i := 0; i < b.N; i++ {
		Poisson(r, 175)
	}
}
