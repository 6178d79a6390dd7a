//-------------------------------------------------------------------------
//
// pgEdge Retail Dataset Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Output file names, fixed so the loader never needs configuring.
const (
	CustomersFile = "customers.csv"
	StoresFile    = "stores.csv"
	ProductsFile  = "products.csv"
	SalesFile     = "sales.csv"
)

// Column headers per table.
var (
	CustomerColumns = []string{"customer_id", "customer_name", "email", "segment", "region", "activity_level"}
	StoreColumns    = []string{"store_id", "store_name", "store_region", "store_type", "country", "admin_region", "city", "lat", "lon"}
	ProductColumns  = []string{"product_id", "product_name", "category", "sub_category", "brand", "is_top_seller"}
	SalesColumns    = []string{"order_id", "line_id", "order_date", "customer_id", "store_id", "product_id",
		"channel", "quantity", "unit_price", "discount_pct", "net_sales", "payment_method",
		"shipping_type", "delivery_days", "is_returned", "return_amount"}
)

const dateLayout = "2006-01-02"

// WriteCSV materializes the dataset as four CSV files under dir,
// creating the directory if needed. Cell formatting is fixed (prices
// to 2 decimals, discounts to 3) so identical runs produce
// byte-identical files.
func WriteCSV(dir string, ds *Dataset) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	if err := writeTable(filepath.Join(dir, CustomersFile), CustomerColumns, len(ds.Customers), func(i int) []string {
		c := ds.Customers[i]
		return []string{
			strconv.Itoa(c.ID), c.Name, c.Email, c.Segment, c.Region, c.ActivityLevel,
		}
	}); err != nil {
		return err
	}

	if err := writeTable(filepath.Join(dir, StoresFile), StoreColumns, len(ds.Stores), func(i int) []string {
		s := ds.Stores[i]
		return []string{
			strconv.Itoa(s.ID), s.Name, s.Region, s.Type, s.Country, s.AdminRegion, s.City,
			strconv.FormatFloat(s.Lat, 'f', 4, 64),
			strconv.FormatFloat(s.Lon, 'f', 4, 64),
		}
	}); err != nil {
		return err
	}

	if err := writeTable(filepath.Join(dir, ProductsFile), ProductColumns, len(ds.Products), func(i int) []string {
		p := ds.Products[i]
		return []string{
			strconv.Itoa(p.ID), p.Name, p.Category, p.SubCategory, p.Brand, formatBool(p.TopSeller),
		}
	}); err != nil {
		return err
	}

	return writeTable(filepath.Join(dir, SalesFile), SalesColumns, len(ds.Sales), func(i int) []string {
		l := ds.Sales[i]
		return []string{
			strconv.Itoa(l.OrderID),
			strconv.Itoa(l.LineID),
			l.OrderDate.Format(dateLayout),
			strconv.Itoa(l.CustomerID),
			strconv.Itoa(l.StoreID),
			strconv.Itoa(l.ProductID),
			l.Channel,
			strconv.Itoa(l.Quantity),
			strconv.FormatFloat(l.UnitPrice, 'f', 2, 64),
			strconv.FormatFloat(l.DiscountPct, 'f', 3, 64),
			strconv.FormatFloat(l.NetSales, 'f', 2, 64),
			l.PaymentMethod,
			l.ShippingType,
			strconv.Itoa(l.DeliveryDays),
			formatBool(l.Returned),
			strconv.FormatFloat(l.ReturnAmount, 'f', 2, 64),
		}
	})
}

func writeTable(path string, header []string, n int, row func(i int) []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header of %s: %w", path, err)
	}
	for i := 0; i < n; i++ {
		if err := w.Write(row(i)); err != nil {
			return fmt.Errorf("failed to write row %d of %s: %w", i, path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return f.Close()
}

// formatBool renders booleans as 0/1, the friendliest form for
// downstream warehouse loads.
func formatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
