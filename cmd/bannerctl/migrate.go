package main

import (
	"bannerdesk/internal/database"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := database.RunMigrations(cfg.Database); err != nil {
			return err
		}
		return printVersion(cmd)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down [steps]",
	Short: "Roll back migrations (default 1)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		steps := 1
		if len(args) == 1 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return fmt.Errorf("steps must be a positive number, got %q", args[0])
			}
			steps = n
		}
		if err := database.RollbackMigrations(cfg.Database, steps); err != nil {
			return err
		}
		return printVersion(cmd)
	},
}

var migrateVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the current schema version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printVersion(cmd)
	},
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
	migrateCmd.AddCommand(migrateVersionCmd)
}

func printVersion(cmd *cobra.Command) error {
	version, dirty, err := database.MigrationVersion(cfg.Database)
	if err != nil {
		return err
	}
	return render(cmd.OutOrStdout(), map[string]any{"version": version, "dirty": dirty}, func() string {
		if version == 0 {
			return "no migrations applied"
		}
		if dirty {
			return fmt.Sprintf("schema version %d (dirty)", version)
		}
		return fmt.Sprintf("schema version %d", version)
	})
}
