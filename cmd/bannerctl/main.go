// Package main provides bannerctl, the BannerDesk operations tool
package main

import (
	"bannerdesk/internal/config"
	"bannerdesk/internal/logger"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	envFile string
	output  = "text" // "text" or "json"

	cfg  *config.Config
	logg *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "bannerctl",
	Short: "bannerctl - Operate a BannerDesk deployment",
	Long: `bannerctl runs maintenance tasks against the BannerDesk database:
schema migrations, the scheduled booking transitions and price lookups.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if output != "text" && output != "json" {
			return fmt.Errorf("unknown output format %q", output)
		}
		if err := godotenv.Load(envFile); err != nil && envFile != ".env" {
			return err
		}
		cfg = &config.Config{}
		if err := cfg.LoadFromEnv(); err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		logg = logger.New(logger.Options{Level: cfg.Log.Level, File: cfg.Log.File})
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logg != nil {
			_ = logg.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "Path to env file")
	rootCmd.PersistentFlags().StringVar(&output, "output", output, "Output format: text or json")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(advanceCmd)
	rootCmd.AddCommand(pricesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
