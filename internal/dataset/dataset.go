//-------------------------------------------------------------------------
//
// pgEdge Retail Dataset Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package dataset defines the generated tables and their CSV
// materialization. Rows are plain values: nothing here is ever mutated
// after the generator appends it.
package dataset

import "time"

// Sales channels.
const (
	ChannelOnline = "Online"
	ChannelStore  = "Store"
)

// Customer activity levels, ordinal.
const (
	ActivityLow    = "Low"
	ActivityMedium = "Medium"
	ActivityHigh   = "High"
)

// Customer is a dimension row. Immutable once built.
type Customer struct {
	ID            int
	Name          string
	Email         string
	Segment       string
	Region        string
	ActivityLevel string
}

// Store is a dimension row carrying its geography.
type Store struct {
	ID          int
	Name        string
	Region      string // macro region: North/Central/South
	Type        string
	Country     string
	AdminRegion string
	City        string
	Lat         float64
	Lon         float64
}

// Product is a dimension row. PurchaseWeight is a derived popularity
// score, computed once at build time and normalized across the catalog;
// it drives sampling but is not materialized to CSV.
type Product struct {
	ID             int
	Name           string
	Category       string
	SubCategory    string
	Brand          string
	TopSeller      bool
	PriceMin       float64
	PriceMax       float64
	PurchaseWeight float64
}

// SaleLine is one product line of an order. OrderID+LineID is the
// composite key; LineID is 1-based and contiguous within an order.
// An empty ShippingType materializes as a null cell.
type SaleLine struct {
	OrderID       int
	LineID        int
	OrderDate     time.Time
	CustomerID    int
	StoreID       int
	ProductID     int
	Channel       string
	Quantity      int
	UnitPrice     float64
	DiscountPct   float64
	NetSales      float64
	PaymentMethod string
	ShippingType  string
	DeliveryDays  int
	Returned      bool
	ReturnAmount  float64
}

// Dataset bundles the four output tables of one generation run.
type Dataset struct {
	Customers []Customer
	Stores    []Store
	Products  []Product
	Sales     []SaleLine
}
