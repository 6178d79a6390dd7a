//-------------------------------------------------------------------------
//
// pgEdge Retail Dataset Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package sample implements the weighted sampling primitives that back
// every stochastic decision in the simulation. All draws consume an
// explicitly passed *rand.Rand so a run is reproducible given a seed:
// identical seed and call sequence always yields identical output.
package sample

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// Sampling failure sentinels. Draws never substitute a default on bad
// input, since that would silently corrupt reproducibility.
var (
	ErrInvalidWeights = errors.New("invalid weights")
	ErrEmptyItems     = errors.New("empty item set")
)

// Choose draws count independent samples with replacement from items
// according to the given weights. Weights need not be normalized but
// must be non-negative and must not all be zero.
func Choose[T any](r *rand.Rand, items []T, weights []float64, count int) ([]T, error) {
	cum, total, err := cumulative(len(items), weights)
	if err != nil {
		return nil, err
	}
	out := make([]T, count)
	for n := range out {
		out[n] = items[search(cum, r.Float64()*total)]
	}
	return out, nil
}

// ChooseOne draws a single weighted sample.
func ChooseOne[T any](r *rand.Rand, items []T, weights []float64) (T, error) {
	var zero T
	out, err := Choose(r, items, weights, 1)
	if err != nil {
		return zero, err
	}
	return out[0], nil
}

// ChooseIndex draws a single weighted index, for callers that keep
// parallel slices keyed by position.
func ChooseIndex(r *rand.Rand, weights []float64) (int, error) {
	cum, total, err := cumulative(len(weights), weights)
	if err != nil {
		return 0, err
	}
	return search(cum, r.Float64()*total), nil
}

func cumulative(numItems int, weights []float64) ([]float64, float64, error) {
	if numItems == 0 {
		return nil, 0, ErrEmptyItems
	}
	if len(weights) != numItems {
		return nil, 0, fmt.Errorf("%w: %d weights for %d items",
			ErrInvalidWeights, len(weights), numItems)
	}
	cum := make([]float64, len(weights))
	var total float64
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) {
			return nil, 0, fmt.Errorf("%w: weight %v at index %d",
				ErrInvalidWeights, w, i)
		}
		total += w
		cum[i] = total
	}
	if total <= 0 {
		return nil, 0, fmt.Errorf("%w: weights sum to zero", ErrInvalidWeights)
	}
	return cum, total, nil
}

// search returns the first index whose cumulative weight exceeds x.
func search(cum []float64, x float64) int {
	lo, hi := 0, len(cum)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if cum[mid] > x {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// Adjust scales the weight of item i. Pipelines of adjustments are the
// single mechanism for popularity boosts: top-seller, channel-category
// affinity, and region affinity all compose through it.
type Adjust func(i int) float64

// Apply multiplies an ordered list of adjustments into a copy of the
// base weight vector and renormalizes once at the end. The base slice
// is not modified.
func Apply(base []float64, adjusts ...Adjust) []float64 {
	out := make([]float64, len(base))
	copy(out, base)
	for _, adjust := range adjusts {
		for i := range out {
			out[i] *= adjust(i)
		}
	}
	var total float64
	for _, w := range out {
		total += w
	}
	if total > 0 {
		for i := range out {
			out[i] /= total
		}
	}
	return out
}

// ParetoWeights returns n rank-based power-law weights w_r ∝ 1/r^alpha,
// normalized to sum to 1. Lower ranks (earlier items) are heavier.
func ParetoWeights(n int, alpha float64) []float64 {
	if n <= 0 {
		return nil
	}
	w := make([]float64, n)
	var total float64
	for i := range w {
		w[i] = 1 / math.Pow(float64(i+1), alpha)
		total += w[i]
	}
	for i := range w {
		w[i] /= total
	}
	return w
}

// Poisson draws from a Poisson distribution with the given rate using
// Knuth's method. Large rates are split into chunks so exp(-lambda)
// stays representable.
func Poisson(r *rand.Rand, lambda float64) int {
	if lambda <= 0 {
		return 0
	}
	const chunk = 500
	n := 0
	for lambda > chunk {
		n += poissonKnuth(r, chunk)
		lambda -= chunk
	}
	return n + poissonKnuth(r, lambda)
}

func poissonKnuth(r *rand.Rand, lambda float64) int {
	threshold := math.Exp(-lambda)
	k, p := 0, 1.0
	for {
		p *= r.Float64()
		if p <= threshold {
			return k
		}
		k++
	}
}

// LogNormal draws exp(mu + sigma*Z) for a standard normal Z.
func LogNormal(r *rand.Rand, mu, sigma float64) float64 {
	return math.Exp(mu + sigma*r.NormFloat64())
}

// Uniform draws uniformly from [lo, hi).
func Uniform(r *rand.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Clamp bounds x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
