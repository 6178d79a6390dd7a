//-------------------------------------------------------------------------
//
// pgEdge Retail Dataset Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package db

import (
	"context"
	"testing"
	"time"

	"github.com/pgEdge/retailgen/internal/dataset"
	"github.com/pgEdge/retailgen/internal/testutil"
)

func integrationDataset() *dataset.Dataset {
	return &dataset.Dataset{
		Customers: []dataset.Customer{
			{ID: 1, Name: "Ana Rojas", Email: "ana.rojas1@example.com", Segment: "Consumer", Region: "Central", ActivityLevel: dataset.ActivityHigh},
		},
		Stores: []dataset.Store{
			{ID: 1, Name: "Santiago Mall 1", Region: "Central", Type: "Mall", Country: "Chile", AdminRegion: "Metropolitana", City: "Santiago", Lat: -33.4489, Lon: -70.6693},
		},
		Products: []dataset.Product{
			{ID: 1, Name: "Nike Zapatillas Running Pegasus 41", Category: "Running", SubCategory: "Zapatillas Running", Brand: "Nike", TopSeller: true},
		},
		Sales: []dataset.SaleLine{
			{
				OrderID: 1, LineID: 1,
				OrderDate:  time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC),
				CustomerID: 1, StoreID: 1, ProductID: 1,
				Channel: dataset.ChannelOnline, Quantity: 1,
				UnitPrice: 98000, DiscountPct: 0.25, NetSales: 73500,
				PaymentMethod: "Credit Card", ShippingType: "Next Day", DeliveryDays: 1,
			},
			{
				OrderID: 2, LineID: 1,
				OrderDate:  time.Date(2024, time.June, 4, 0, 0, 0, 0, time.UTC),
				CustomerID: 1, StoreID: 1, ProductID: 1,
				Channel: dataset.ChannelStore, Quantity: 1,
				UnitPrice: 95000, DiscountPct: 0, NetSales: 95000,
				PaymentMethod: "Cash",
			},
		},
	}
}

func TestLoadIntegration(t *testing.T) {
	baseConnStr := testutil.SkipIfNoPostgres(t)
	connStr, dbName := testutil.CreateTestDB(t, baseConnStr)
	defer testutil.DropTestDB(t, baseConnStr, dbName)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	pool, err := Connect(ctx, connStr)
	if err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	defer pool.Close()

	if err := CreateSchema(ctx, pool); err != nil {
		t.Fatalf("CreateSchema() error = %v", err)
	}

	ds := integrationDataset()
	loader := NewLoader(pool, 100)
	if err := loader.Load(ctx, ds); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	var count int
	if err := pool.QueryRow(ctx, "SELECT count(*) FROM raw.sales").Scan(&count); err != nil {
		t.Fatalf("counting sales: %v", err)
	}
	if count != len(ds.Sales) {
		t.Errorf("loaded %d sales rows, want %d", count, len(ds.Sales))
	}

	// Store-channel rows land with null shipping type but a zero
	// delivery_days, matching the CSV.
	var storeRows int
	if err := pool.QueryRow(ctx,
		"SELECT count(*) FROM raw.sales WHERE channel = 'Store' AND shipping_type IS NULL AND delivery_days = 0",
	).Scan(&storeRows); err != nil {
		t.Fatalf("counting store rows: %v", err)
	}
	if storeRows != 1 {
		t.Errorf("got %d store rows with null shipping and zero delivery days, want 1", storeRows)
	}

	// Loading twice must not double the rows.
	if err := loader.Load(ctx, ds); err != nil {
		t.Fatalf("second Load() error = %v", err)
	}
	if err := pool.QueryRow(ctx, "SELECT count(*) FROM raw.sales").Scan(&count); err != nil {
		t.Fatalf("counting sales: %v", err)
	}
	if count != len(ds.Sales) {
		t.Errorf("reload left %d sales rows, want %d", count, len(ds.Sales))
	}

	if err := SaveMetadata(ctx, pool, "data/raw", len(ds.Sales)); err != nil {
		t.Fatalf("SaveMetadata() error = %v", err)
	}
	value, err := GetMetadataValue(ctx, pool, "sales_rows")
	if err != nil {
		t.Fatalf("GetMetadataValue() error = %v", err)
	}
	if value != "2" {
		t.Errorf("sales_rows metadata = %q, want \"2\"", value)
	}

	all, err := GetAllMetadata(ctx, pool)
	if err != nil {
		t.Fatalf("GetAllMetadata() error = %v", err)
	}
	if all["source_dir"] != "data/raw" {
		t.Errorf("source_dir metadata = %q", all["source_dir"])
	}

	if err := DropSchema(ctx, pool); err != nil {
		t.Fatalf("DropSchema() error = %v", err)
	}
}
