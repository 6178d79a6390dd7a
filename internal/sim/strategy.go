//-------------------------------------------------------------------------
//
// pgEdge Retail Dataset Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package sim simulates order and sales line generation over a date
// range. Strategies decide how many orders fall on which day; the
// shared Generator turns each order into priced sales lines.
package sim

import (
	"fmt"
	"sort"
	"sync"

	"github.com/pgEdge/retailgen/internal/dataset"
)

// Strategy defines the interface that all simulation strategies
// must implement.
type Strategy interface {
	// Name returns the strategy name.
	Name() string

	// Description returns a human-readable description.
	Description() string

	// Simulate produces sales lines using the generator.
	Simulate(g *Generator) ([]dataset.SaleLine, error)
}

var (
	registry = make(map[string]Strategy)
	mu       sync.RWMutex
)

// Register adds a strategy to the registry.
func Register(s Strategy) {
	mu.Lock()
	defer mu.Unlock()
	registry[s.Name()] = s
}

// Get retrieves a strategy by name.
func Get(name string) (Strategy, error) {
	mu.RLock()
	defer mu.RUnlock()

	s, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown strategy: %s", name)
	}
	return s, nil
}

// List returns all registered strategy names, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns all registered strategies in name order.
func All() []Strategy {
	strategies := make([]Strategy, 0, len(registry))
	for _, name := range List() {
		mu.RLock()
		s := registry[name]
		mu.RUnlock()
		strategies = append(strategies, s)
	}
	return strategies
}
