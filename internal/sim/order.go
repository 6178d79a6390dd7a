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

	"github.com/pgEdge/retailgen/internal/dataset"
)

func init() {
	Register(&OrderStrategy{})
}

// OrderStrategy draws candidate orders on uniformly random days and
// keeps each with the day's demand-shaped keep probability. The peak
// day keeps every candidate; quieter days thin out proportionally.
type OrderStrategy struct{}

// Name returns the strategy name.
func (s *OrderStrategy) Name() string {
	return "order"
}

// Description returns a human-readable description.
func (s *OrderStrategy) Description() string {
	return "Uniform candidate orders thinned by per-day keep probability"
}

// Simulate produces the sales lines for the whole period.
func (s *OrderStrategy) Simulate(g *Generator) ([]dataset.SaleLine, error) {
	days := g.Days()

	var lines []dataset.SaleLine
	for i := 0; i < g.cfg.Orders; i++ {
		d := g.Day(g.rng.Intn(days))
		online := g.DrawChannel(d)

		if g.rng.Float64() >= g.shaper.KeepProbability(d, online) {
			continue
		}
		orderLines, err := g.GenerateOrder(d, online)
		if err != nil {
			return nil, fmt.Errorf("generating order on %s: %w", d.Format("2006-01-02"), err)
		}
		lines = append(lines, orderLines...)
	}
	return lines, nil
}
