//-------------------------------------------------------------------------
//
// pgEdge Retail Dataset Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package cli implements the command-line interface for retailgen.
package cli

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/pgEdge/retailgen/internal/config"
	"github.com/pgEdge/retailgen/internal/logging"
	"github.com/pgEdge/retailgen/internal/sim"
	"github.com/pgEdge/retailgen/pkg/version"
)

var (
	// Global flags
	cfgFile    string
	connection string
	logLevel   string

	// Global config
	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:   "retailgen",
		Short: "Synthetic retail transaction dataset generator",
		Long: `retailgen generates a reproducible synthetic retail dataset: customer,
store and product dimensions plus several years of order transactions
shaped by seasonality and promotional events.

The same seed always produces the same dataset. Output is plain CSV,
with an optional loader that bulk-copies the files into PostgreSQL for
analytics and warehouse testing.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./retailgen.yaml)")
	rootCmd.PersistentFlags().StringVar(&connection, "connection", "",
		"PostgreSQL connection string")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level (debug, info, warn, error)")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(strategiesCmd)
}

func initConfig() error {
	// A local .env may carry the connection string; missing files are fine.
	_ = godotenv.Load()

	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}

	// Override with CLI flags
	if connection != "" {
		cfg.Connection = connection
	}
	if cfg.Connection == "" {
		cfg.Connection = os.Getenv("RETAILGEN_CONNECTION")
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	// Reinitialize logger with config
	logging.Init(logging.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
	})

	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.Info())
	},
}

var strategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "List available simulation strategies",
	Long: `List the registered simulation strategies. A strategy decides how
candidate orders are distributed over the simulated period.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println("Available strategies:")
		cmd.Println()
		for _, s := range sim.All() {
			cmd.Printf("  %-8s - %s\n", s.Name(), s.Description())
		}
	},
}
