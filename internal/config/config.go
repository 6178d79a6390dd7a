//-------------------------------------------------------------------------
//
// pgEdge Retail Dataset Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package config handles configuration management for retailgen.
// Configuration is loaded from config files and CLI flags.
// CLI flags take precedence over config file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for retailgen.
type Config struct {
	// Connection is the PostgreSQL connection string (load command only).
	Connection string `mapstructure:"connection"`

	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`

	// Generate holds configuration for the generate subcommand.
	Generate GenerateConfig `mapstructure:"generate"`

	// Load holds configuration for the load subcommand.
	Load LoadConfig `mapstructure:"load"`
}

// GenerateConfig holds configuration for dataset generation.
type GenerateConfig struct {
	// Seed drives all random draws. The same seed always produces the
	// same dataset.
	Seed int64 `mapstructure:"seed"`

	// StartDate and EndDate bound the simulated period (inclusive,
	// YYYY-MM-DD).
	StartDate string `mapstructure:"start_date"`
	EndDate   string `mapstructure:"end_date"`

	// Customers, Stores and Products size the dimension tables.
	Customers int `mapstructure:"customers"`
	Stores    int `mapstructure:"stores"`
	Products  int `mapstructure:"products"`

	// Strategy selects the simulation strategy ("day" or "order").
	Strategy string `mapstructure:"strategy"`

	// TargetLines is the sales line budget. When the simulation
	// overshoots, the dataset is downsampled to exactly this count.
	TargetLines int `mapstructure:"target_lines"`

	// AvgLinesPerOrder is the expected line count per order, used by
	// the day strategy to turn a daily line draw into an order count.
	AvgLinesPerOrder float64 `mapstructure:"avg_lines_per_order"`

	// Orders is the number of candidate orders for the order strategy.
	Orders int `mapstructure:"orders"`

	// MaxLines caps the line count of a single order.
	MaxLines int `mapstructure:"max_lines"`

	// OutDir is where CSV files are written.
	OutDir string `mapstructure:"out_dir"`

	// NullShipRate is the fraction of online lines with a blanked
	// shipping type.
	NullShipRate float64 `mapstructure:"null_ship_rate"`

	// DupFrac is the fraction of lines duplicated as near-duplicates.
	DupFrac float64 `mapstructure:"dup_frac"`
}

// LoadConfig holds configuration for loading CSV files into PostgreSQL.
type LoadConfig struct {
	// Dir is the directory holding the generated CSV files.
	Dir string `mapstructure:"dir"`

	// DropExisting drops the raw schema before loading.
	DropExisting bool `mapstructure:"drop_existing"`

	// BatchSize is the number of rows per copy batch.
	BatchSize int `mapstructure:"batch_size"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Generate: GenerateConfig{
			Seed:             42,
			StartDate:        "2022-01-01",
			EndDate:          "2025-12-31",
			Customers:        8000,
			Stores:           60,
			Products:         1200,
			Strategy:         "day",
			TargetLines:      256000,
			AvgLinesPerOrder: 2.0,
			Orders:           120000,
			MaxLines:         5,
			OutDir:           "data/raw",
			NullShipRate:     0.002,
			DupFrac:          0.001,
		},
		Load: LoadConfig{
			Dir:          "data/raw",
			DropExisting: false,
			BatchSize:    5000,
		},
	}
}

// Load reads configuration from config files.
// Config file locations (in order of precedence):
// 1. Path specified by configFile parameter
// 2. ./retailgen.yaml
// 3. ~/.config/retailgen/config.yaml
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("retailgen")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "retailgen"))
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

const dateLayout = "2006-01-02"

// DateRange parses the configured start and end dates.
func (g *GenerateConfig) DateRange() (time.Time, time.Time, error) {
	start, err := time.ParseInLocation(dateLayout, g.StartDate, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start_date %q: %w", g.StartDate, err)
	}
	end, err := time.ParseInLocation(dateLayout, g.EndDate, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end_date %q: %w", g.EndDate, err)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("end_date %s is before start_date %s", g.EndDate, g.StartDate)
	}
	return start, end, nil
}

// ValidateGenerate checks configuration required for the generate command.
func (c *Config) ValidateGenerate() error {
	g := &c.Generate
	if _, _, err := g.DateRange(); err != nil {
		return err
	}
	if g.Customers < 1 {
		return fmt.Errorf("customers must be at least 1")
	}
	if g.Stores < 1 {
		return fmt.Errorf("stores must be at least 1")
	}
	if g.Products < 1 {
		return fmt.Errorf("products must be at least 1")
	}
	if g.TargetLines < 1 {
		return fmt.Errorf("target_lines must be at least 1")
	}
	if g.AvgLinesPerOrder <= 0 {
		return fmt.Errorf("avg_lines_per_order must be positive")
	}
	if g.Orders < 1 {
		return fmt.Errorf("orders must be at least 1")
	}
	if g.MaxLines < 1 {
		return fmt.Errorf("max_lines must be at least 1")
	}
	if g.Strategy == "" {
		return fmt.Errorf("strategy is required")
	}
	if g.OutDir == "" {
		return fmt.Errorf("out_dir is required")
	}
	if g.NullShipRate < 0 || g.NullShipRate > 1 {
		return fmt.Errorf("null_ship_rate must be in [0, 1]")
	}
	if g.DupFrac < 0 || g.DupFrac > 1 {
		return fmt.Errorf("dup_frac must be in [0, 1]")
	}
	return nil
}

// ValidateLoad checks configuration required for the load command.
func (c *Config) ValidateLoad() error {
	if c.Connection == "" {
		return fmt.Errorf("connection string is required")
	}
	if c.Load.Dir == "" {
		return fmt.Errorf("data directory is required")
	}
	if c.Load.BatchSize < 1 {
		return fmt.Errorf("batch_size must be at least 1")
	}
	return nil
}
