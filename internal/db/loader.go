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
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pgEdge/retailgen/internal/dataset"
	"github.com/pgEdge/retailgen/internal/logging"
)

// Loader bulk-copies a dataset into the raw schema.
type Loader struct {
	pool      *pgxpool.Pool
	batchSize int
}

// NewLoader returns a Loader copying in batches of batchSize rows.
func NewLoader(pool *pgxpool.Pool, batchSize int) *Loader {
	if batchSize < 1 {
		batchSize = 5000
	}
	return &Loader{pool: pool, batchSize: batchSize}
}

// Load copies all four tables. Tables are truncated first so the load
// is idempotent.
func (l *Loader) Load(ctx context.Context, ds *dataset.Dataset) error {
	start := time.Now()

	if err := l.loadCustomers(ctx, ds.Customers); err != nil {
		return err
	}
	if err := l.loadStores(ctx, ds.Stores); err != nil {
		return err
	}
	if err := l.loadProducts(ctx, ds.Products); err != nil {
		return err
	}
	if err := l.loadSales(ctx, ds.Sales); err != nil {
		return err
	}

	logging.Info().
		Int("customers", len(ds.Customers)).
		Int("stores", len(ds.Stores)).
		Int("products", len(ds.Products)).
		Int("sales", len(ds.Sales)).
		Dur("elapsed", time.Since(start)).
		Msg("Loaded dataset")
	return nil
}

// copyTable truncates the target and streams rows via COPY in batches.
func (l *Loader) copyTable(ctx context.Context, table string, columns []string, n int, row func(i int) []any) error {
	if _, err := l.pool.Exec(ctx, fmt.Sprintf("TRUNCATE %s.%s", SchemaName, table)); err != nil {
		return fmt.Errorf("failed to truncate %s: %w", table, err)
	}

	ident := pgx.Identifier{SchemaName, table}
	for lo := 0; lo < n; lo += l.batchSize {
		hi := lo + l.batchSize
		if hi > n {
			hi = n
		}
		batch := make([][]any, 0, hi-lo)
		for i := lo; i < hi; i++ {
			batch = append(batch, row(i))
		}
		if _, err := l.pool.CopyFrom(ctx, ident, columns, pgx.CopyFromRows(batch)); err != nil {
			return fmt.Errorf("failed to copy into %s: %w", table, err)
		}
	}

	logging.Debug().Str("table", table).Int("rows", n).Msg("Copied table")
	return nil
}

func (l *Loader) loadCustomers(ctx context.Context, customers []dataset.Customer) error {
	return l.copyTable(ctx, "customers", dataset.CustomerColumns, len(customers), func(i int) []any {
		c := customers[i]
		return []any{c.ID, c.Name, c.Email, c.Segment, c.Region, c.ActivityLevel}
	})
}

func (l *Loader) loadStores(ctx context.Context, stores []dataset.Store) error {
	return l.copyTable(ctx, "stores", dataset.StoreColumns, len(stores), func(i int) []any {
		s := stores[i]
		return []any{s.ID, s.Name, s.Region, s.Type, s.Country, s.AdminRegion, s.City, s.Lat, s.Lon}
	})
}

func (l *Loader) loadProducts(ctx context.Context, products []dataset.Product) error {
	return l.copyTable(ctx, "products", dataset.ProductColumns, len(products), func(i int) []any {
		p := products[i]
		return []any{p.ID, p.Name, p.Category, p.SubCategory, p.Brand, p.TopSeller}
	})
}

func (l *Loader) loadSales(ctx context.Context, sales []dataset.SaleLine) error {
	return l.copyTable(ctx, "sales", dataset.SalesColumns, len(sales), func(i int) []any {
		s := sales[i]
		// Shipping type is NULL when blank; delivery_days always
		// loads the CSV value (0 for store orders).
		var shipping any
		if s.ShippingType != "" {
			shipping = s.ShippingType
		}
		return []any{
			s.OrderID, s.LineID, s.OrderDate, s.CustomerID, s.StoreID, s.ProductID,
			s.Channel, s.Quantity, s.UnitPrice, s.DiscountPct, s.NetSales, s.PaymentMethod,
			shipping, s.DeliveryDays, s.Returned, s.ReturnAmount,
		}
	})
}
