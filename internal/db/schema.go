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

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pgEdge/retailgen/internal/logging"
)

// SchemaName is the schema holding the raw generated tables.
const SchemaName = "raw"

// Typed landing tables mirroring the CSV layout. Shipping columns are
// nullable because store-channel rows never carry them.
var schemaStatements = []string{
	`CREATE SCHEMA IF NOT EXISTS raw`,

	`CREATE TABLE IF NOT EXISTS raw.customers (
        customer_id    INTEGER PRIMARY KEY,
        customer_name  TEXT NOT NULL,
        email          TEXT NOT NULL,
        segment        TEXT NOT NULL,
        region         TEXT NOT NULL,
        activity_level TEXT NOT NULL
    )`,

	`CREATE TABLE IF NOT EXISTS raw.stores (
        store_id     INTEGER PRIMARY KEY,
        store_name   TEXT NOT NULL,
        store_region TEXT NOT NULL,
        store_type   TEXT NOT NULL,
        country      TEXT NOT NULL,
        admin_region TEXT NOT NULL,
        city         TEXT NOT NULL,
        lat          DOUBLE PRECISION NOT NULL,
        lon          DOUBLE PRECISION NOT NULL
    )`,

	`CREATE TABLE IF NOT EXISTS raw.products (
        product_id    INTEGER PRIMARY KEY,
        product_name  TEXT NOT NULL,
        category      TEXT NOT NULL,
        sub_category  TEXT NOT NULL,
        brand         TEXT NOT NULL,
        is_top_seller BOOLEAN NOT NULL
    )`,

	`CREATE TABLE IF NOT EXISTS raw.sales (
        order_id       INTEGER NOT NULL,
        line_id        INTEGER NOT NULL,
        order_date     DATE NOT NULL,
        customer_id    INTEGER NOT NULL,
        store_id       INTEGER NOT NULL,
        product_id     INTEGER NOT NULL,
        channel        TEXT NOT NULL,
        quantity       INTEGER NOT NULL,
        unit_price     NUMERIC(12,2) NOT NULL,
        discount_pct   NUMERIC(5,3) NOT NULL,
        net_sales      NUMERIC(14,2) NOT NULL,
        payment_method TEXT NOT NULL,
        shipping_type  TEXT,
        delivery_days  INTEGER NOT NULL,
        is_returned    BOOLEAN NOT NULL,
        return_amount  NUMERIC(14,2) NOT NULL
    )`,

	`CREATE INDEX IF NOT EXISTS sales_order_date_idx ON raw.sales (order_date)`,
	`CREATE INDEX IF NOT EXISTS sales_customer_idx ON raw.sales (customer_id)`,
	`CREATE INDEX IF NOT EXISTS sales_product_idx ON raw.sales (product_id)`,
}

// CreateSchema creates the raw schema and landing tables.
func CreateSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	logging.Info().Str("schema", SchemaName).Msg("Created schema")
	return nil
}

// DropSchema drops the raw schema and everything in it.
func DropSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, `DROP SCHEMA IF EXISTS raw CASCADE`); err != nil {
		return fmt.Errorf("failed to drop schema: %w", err)
	}
	logging.Info().Str("schema", SchemaName).Msg("Dropped schema")
	return nil
}
