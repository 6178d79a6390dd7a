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
	"github.com/pgEdge/retailgen/internal/dataset"
	"github.com/pgEdge/retailgen/internal/sample"
)

// Ticket size thresholds (CLP) switching the payment mix.
const (
	highTicket = 220000
	midTicket  = 90000
)

var (
	onlinePayments = []string{"Credit Card", "Debit Card", "Digital Wallet", "Bank Transfer"}
	storePayments  = []string{"Credit Card", "Debit Card", "Cash", "Digital Wallet"}

	onlinePaymentWeights = map[string][]float64{
		"high": {0.55, 0.10, 0.10, 0.25},
		"mid":  {0.45, 0.20, 0.25, 0.10},
		"low":  {0.25, 0.35, 0.35, 0.05},
	}
	storePaymentWeights = map[string][]float64{
		"high": {0.60, 0.25, 0.05, 0.10},
		"mid":  {0.40, 0.35, 0.15, 0.10},
		"low":  {0.20, 0.35, 0.35, 0.10},
	}
)

func ticketBand(total float64) string {
	switch {
	case total > highTicket:
		return "high"
	case total > midTicket:
		return "mid"
	default:
		return "low"
	}
}

// applyPayment picks one payment method for the whole order, weighted
// by channel and ticket size.
func (g *Generator) applyPayment(lines []dataset.SaleLine, online bool) {
	total := 0.0
	for _, l := range lines {
		total += l.NetSales
	}
	band := ticketBand(total)

	methods, weights := storePayments, storePaymentWeights[band]
	if online {
		methods, weights = onlinePayments, onlinePaymentWeights[band]
	}

	idx, err := sample.ChooseIndex(g.rng, weights)
	if err != nil {
		// Weight tables are fixed and valid; this cannot happen.
		idx = 0
	}
	for i := range lines {
		lines[i].PaymentMethod = methods[idx]
	}
}

// shippingOption is one row of a regional shipping mix.
type shippingOption struct {
	kind     string
	weight   float64
	baseDays float64
}

// shippingMix maps store macro region to its shipping options.
// Central hosts the distribution center, so it gets same-day service.
var shippingMix = map[string][]shippingOption{
	"Central": {
		{"Same Day", 0.18, 0},
		{"Next Day", 0.40, 1},
		{"Standard", 0.32, 2},
		{"Pickup", 0.10, 1},
	},
	"North": {
		{"Next Day", 0.15, 2},
		{"Standard", 0.70, 4},
		{"Pickup", 0.15, 2},
	},
	"South": {
		{"Next Day", 0.18, 2},
		{"Standard", 0.67, 4},
		{"Pickup", 0.15, 2},
	},
}

// applyShipping sets one shipping type and delivery estimate for the
// whole order. Store orders carry neither.
func (g *Generator) applyShipping(lines []dataset.SaleLine, storeRegion string, online bool) {
	if !online {
		return
	}

	options, ok := shippingMix[storeRegion]
	if !ok {
		options = shippingMix["Central"]
	}
	weights := make([]float64, len(options))
	for i, o := range options {
		weights[i] = o.weight
	}
	idx, err := sample.ChooseIndex(g.rng, weights)
	if err != nil {
		idx = 0
	}
	opt := options[idx]

	days := int(sample.Clamp(opt.baseDays+g.rng.NormFloat64(), 0, 12))
	for i := range lines {
		lines[i].ShippingType = opt.kind
		lines[i].DeliveryDays = days
	}
}

// returnRates maps sub-category to (online, store) return rates.
// Footwear and racquets come back more often; consumables almost never.
var returnRates = map[string][2]float64{
	"Zapatillas Running": {0.09, 0.04},
	"Zapatillas Tenis":   {0.09, 0.04},
	"Zapatillas Padel":   {0.09, 0.04},
	"Raquetas Tenis":     {0.05, 0.025},
	"Palas Padel":        {0.05, 0.025},
	"Pelotas Tenis":      {0.005, 0.002},
	"Pelotas Padel":      {0.005, 0.002},
	"Calcetines":         {0.01, 0.005},
}

var defaultReturnRate = [2]float64{0.04, 0.02}

const fullReturnProb = 0.85

// applyReturn flags a line as returned with a sub-category and
// channel dependent rate. Most returns are the full amount; the rest
// are partial.
func (g *Generator) applyReturn(line *dataset.SaleLine, p dataset.Product, online bool) {
	rates, ok := returnRates[p.SubCategory]
	if !ok {
		rates = defaultReturnRate
	}
	rate := rates[1]
	if online {
		rate = rates[0]
	}
	if g.rng.Float64() >= rate {
		return
	}

	line.Returned = true
	if g.rng.Float64() < fullReturnProb {
		line.ReturnAmount = line.NetSales
		return
	}
	line.ReturnAmount = roundCents(line.NetSales * sample.Uniform(g.rng, 0.2, 0.8))
}
