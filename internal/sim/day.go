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

	"github.com/pgEdge/retailgen/internal/dataset"
	"github.com/pgEdge/retailgen/internal/sample"
)

func init() {
	Register(&DayStrategy{})
}

// DayStrategy walks the calendar day by day and draws a Poisson line
// count per day. The daily rate is the line budget spread evenly over
// the period, scaled by the demand multiplier, so busy days carry
// visibly more volume. The line draw is converted to an order count
// via the configured average lines per order.
type DayStrategy struct{}

// Name returns the strategy name.
func (s *DayStrategy) Name() string {
	return "day"
}

// Description returns a human-readable description.
func (s *DayStrategy) Description() string {
	return "Daily Poisson line counts scaled by seasonal and event demand"
}

// Simulate produces the sales lines for the whole period.
func (s *DayStrategy) Simulate(g *Generator) ([]dataset.SaleLine, error) {
	days := g.Days()
	dailyBase := float64(g.cfg.TargetLines) / float64(days)

	var lines []dataset.SaleLine
	for i := 0; i < days; i++ {
		d := g.Day(i)
		rate := dailyBase * g.shaper.Multiplier(d)
		dayLines := sample.Poisson(g.rng, rate)
		if dayLines == 0 {
			continue
		}
		orders := int(math.Round(float64(dayLines) / g.cfg.AvgLinesPerOrder))
		if orders < 1 {
			orders = 1
		}

		for o := 0; o < orders; o++ {
			online := g.DrawChannel(d)
			orderLines, err := g.GenerateOrder(d, online)
			if err != nil {
				return nil, fmt.Errorf("generating order on %s: %w", d.Format("2006-01-02"), err)
			}
			lines = append(lines, orderLines...)
		}
	}
	return lines, nil
}
