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
	"time"
)

// ReadCSV loads a dataset previously written by WriteCSV, for handing
// to the warehouse loader. PurchaseWeight and price bounds are not
// materialized, so products come back without them.
func ReadCSV(dir string) (*Dataset, error) {
	ds := &Dataset{}

	if err := readTable(filepath.Join(dir, CustomersFile), len(CustomerColumns), func(rec []string) error {
		id, err := strconv.Atoi(rec[0])
		if err != nil {
			return fmt.Errorf("bad customer_id %q: %w", rec[0], err)
		}
		ds.Customers = append(ds.Customers, Customer{
			ID: id, Name: rec[1], Email: rec[2], Segment: rec[3], Region: rec[4], ActivityLevel: rec[5],
		})
		return nil
	}); err != nil {
		return nil, err
	}

	if err := readTable(filepath.Join(dir, StoresFile), len(StoreColumns), func(rec []string) error {
		id, err := strconv.Atoi(rec[0])
		if err != nil {
			return fmt.Errorf("bad store_id %q: %w", rec[0], err)
		}
		lat, err := strconv.ParseFloat(rec[7], 64)
		if err != nil {
			return fmt.Errorf("bad lat %q: %w", rec[7], err)
		}
		lon, err := strconv.ParseFloat(rec[8], 64)
		if err != nil {
			return fmt.Errorf("bad lon %q: %w", rec[8], err)
		}
		ds.Stores = append(ds.Stores, Store{
			ID: id, Name: rec[1], Region: rec[2], Type: rec[3],
			Country: rec[4], AdminRegion: rec[5], City: rec[6], Lat: lat, Lon: lon,
		})
		return nil
	}); err != nil {
		return nil, err
	}

	if err := readTable(filepath.Join(dir, ProductsFile), len(ProductColumns), func(rec []string) error {
		id, err := strconv.Atoi(rec[0])
		if err != nil {
			return fmt.Errorf("bad product_id %q: %w", rec[0], err)
		}
		ds.Products = append(ds.Products, Product{
			ID: id, Name: rec[1], Category: rec[2], SubCategory: rec[3], Brand: rec[4],
			TopSeller: rec[5] == "1",
		})
		return nil
	}); err != nil {
		return nil, err
	}

	if err := readTable(filepath.Join(dir, SalesFile), len(SalesColumns), func(rec []string) error {
		line, err := parseSaleLine(rec)
		if err != nil {
			return err
		}
		ds.Sales = append(ds.Sales, line)
		return nil
	}); err != nil {
		return nil, err
	}

	return ds, nil
}

func parseSaleLine(rec []string) (SaleLine, error) {
	var l SaleLine
	var err error

	if l.OrderID, err = strconv.Atoi(rec[0]); err != nil {
		return l, fmt.Errorf("bad order_id %q: %w", rec[0], err)
	}
	if l.LineID, err = strconv.Atoi(rec[1]); err != nil {
		return l, fmt.Errorf("bad line_id %q: %w", rec[1], err)
	}
	if l.OrderDate, err = time.ParseInLocation(dateLayout, rec[2], time.UTC); err != nil {
		return l, fmt.Errorf("bad order_date %q: %w", rec[2], err)
	}
	if l.CustomerID, err = strconv.Atoi(rec[3]); err != nil {
		return l, fmt.Errorf("bad customer_id %q: %w", rec[3], err)
	}
	if l.StoreID, err = strconv.Atoi(rec[4]); err != nil {
		return l, fmt.Errorf("bad store_id %q: %w", rec[4], err)
	}
	if l.ProductID, err = strconv.Atoi(rec[5]); err != nil {
		return l, fmt.Errorf("bad product_id %q: %w", rec[5], err)
	}
	l.Channel = rec[6]
	if l.Quantity, err = strconv.Atoi(rec[7]); err != nil {
		return l, fmt.Errorf("bad quantity %q: %w", rec[7], err)
	}
	if l.UnitPrice, err = strconv.ParseFloat(rec[8], 64); err != nil {
		return l, fmt.Errorf("bad unit_price %q: %w", rec[8], err)
	}
	if l.DiscountPct, err = strconv.ParseFloat(rec[9], 64); err != nil {
		return l, fmt.Errorf("bad discount_pct %q: %w", rec[9], err)
	}
	if l.NetSales, err = strconv.ParseFloat(rec[10], 64); err != nil {
		return l, fmt.Errorf("bad net_sales %q: %w", rec[10], err)
	}
	l.PaymentMethod = rec[11]
	l.ShippingType = rec[12]
	if l.DeliveryDays, err = strconv.Atoi(rec[13]); err != nil {
		return l, fmt.Errorf("bad delivery_days %q: %w", rec[13], err)
	}
	l.Returned = rec[14] == "1"
	if l.ReturnAmount, err = strconv.ParseFloat(rec[15], 64); err != nil {
		return l, fmt.Errorf("bad return_amount %q: %w", rec[15], err)
	}
	return l, nil
}

func readTable(path string, columns int, row func(rec []string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = columns

	recs, err := r.ReadAll()
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(recs) == 0 {
		return fmt.Errorf("%s: missing header row", path)
	}
	for i, rec := range recs[1:] {
		if err := row(rec); err != nil {
			return fmt.Errorf("%s row %d: %w", path, i+1, err)
		}
	}
	return nil
}
