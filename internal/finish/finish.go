//-------------------------------------------------------------------------
//
// pgEdge Retail Dataset Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package finish post-processes simulated sales lines: budget
// enforcement, realistic noise, and stable output ordering.
package finish

import (
	"math/rand"
	"sort"

	"github.com/pgEdge/retailgen/internal/dataset"
)

// EnforceBudget downsamples lines to the target count when the
// simulation overshot. Undershooting is left alone; the target is a
// cap, not a quota. The kept subset is chosen uniformly at random and
// re-sorted into date order.
func EnforceBudget(rng *rand.Rand, lines []dataset.SaleLine, target int) []dataset.SaleLine {
	if target <= 0 || len(lines) <= target {
		return lines
	}

	perm := rng.Perm(len(lines))
	kept := make([]dataset.SaleLine, 0, target)
	for _, idx := range perm[:target] {
		kept = append(kept, lines[idx])
	}
	SortLines(kept)
	return kept
}

// InjectNoise dirties the dataset the way real exports are dirty:
// a small fraction of online lines lose their shipping type, and a
// small fraction of lines are appended again as duplicates. The
// result is re-sorted so duplicates sit next to their originals.
func InjectNoise(rng *rand.Rand, lines []dataset.SaleLine, nullShipRate, dupFrac float64) []dataset.SaleLine {
	for i := range lines {
		if lines[i].Channel == dataset.ChannelOnline && rng.Float64() < nullShipRate {
			lines[i].ShippingType = ""
		}
	}

	var dups []dataset.SaleLine
	for i := range lines {
		if rng.Float64() < dupFrac {
			dups = append(dups, lines[i])
		}
	}
	if len(dups) == 0 {
		return lines
	}
	lines = append(lines, dups...)
	SortLines(lines)
	return lines
}

// SortLines orders lines by date, then order ID, then line ID.
func SortLines(lines []dataset.SaleLine) {
	sort.Slice(lines, func(i, j int) bool {
		a, b := lines[i], lines[j]
		if !a.OrderDate.Equal(b.OrderDate) {
			return a.OrderDate.Before(b.OrderDate)
		}
		if a.OrderID != b.OrderID {
			return a.OrderID < b.OrderID
		}
		return a.LineID < b.LineID
	})
}
