//-------------------------------------------------------------------------
//
// pgEdge Retail Dataset Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pgEdge/retailgen/internal/dataset"
	"github.com/pgEdge/retailgen/internal/db"
	"github.com/pgEdge/retailgen/internal/logging"
)

var (
	loadDir          string
	loadDropExisting bool
	loadBatchSize    int
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load generated CSV files into PostgreSQL",
	Long: `Load a previously generated dataset into PostgreSQL. The four CSV
files are bulk-copied into typed tables under the 'raw' schema, which
is created if missing. Reloading replaces the table contents.

Example:
  retailgen load --dir data/raw --connection "postgres://..."`,
	RunE: runLoad,
}

func init() {
	loadCmd.Flags().StringVar(&loadDir, "dir", "",
		"directory holding the generated CSV files")
	loadCmd.Flags().BoolVar(&loadDropExisting, "drop-existing", false,
		"drop the raw schema before loading")
	loadCmd.Flags().IntVar(&loadBatchSize, "batch-size", 0,
		"rows per copy batch")
}

func runLoad(cmd *cobra.Command, args []string) error {
	// Override config with CLI flags
	if loadDir != "" {
		cfg.Load.Dir = loadDir
	}
	if loadDropExisting {
		cfg.Load.DropExisting = true
	}
	if loadBatchSize > 0 {
		cfg.Load.BatchSize = loadBatchSize
	}

	// Validate configuration
	if err := cfg.ValidateLoad(); err != nil {
		return err
	}

	logging.Info().
		Str("dir", cfg.Load.Dir).
		Msg("Reading dataset")

	ds, err := dataset.ReadCSV(cfg.Load.Dir)
	if err != nil {
		return fmt.Errorf("failed to read dataset: %w", err)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.Connection)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Load.DropExisting {
		logging.Info().Msg("Dropping existing schema")
		if err := db.DropSchema(ctx, pool); err != nil {
			return fmt.Errorf("failed to drop schema: %w", err)
		}
	}

	if err := db.CreateSchema(ctx, pool); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	loader := db.NewLoader(pool, cfg.Load.BatchSize)
	if err := loader.Load(ctx, ds); err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	if err := db.SaveMetadata(ctx, pool, cfg.Load.Dir, len(ds.Sales)); err != nil {
		return fmt.Errorf("failed to save metadata: %w", err)
	}

	logging.Info().
		Int("sales", len(ds.Sales)).
		Msg("Load complete")

	return nil
}
