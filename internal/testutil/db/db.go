// Package db provides database utilities for testing
package db

import (
	"bannerdesk/internal/config"
	"bannerdesk/internal/database"
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// CleanupTestDB drops all tables in the test database
func CleanupTestDB(db *sql.DB) error {
	rows, err := db.Query(`
		SELECT tablename
		FROM pg_tables
		WHERE schemaname = 'public'
	`)
	if err != nil {
		return fmt.Errorf("failed to get table names: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var tableName string
		if err := rows.Scan(&tableName); err != nil {
			return fmt.Errorf("failed to scan table name: %w", err)
		}
		tables = append(tables, tableName)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating over table names: %w", err)
	}

	if len(tables) > 0 {
		dropQuery := fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", strings.Join(tables, ", "))
		if _, err := db.Exec(dropQuery); err != nil {
			return fmt.Errorf("failed to drop tables: %w", err)
		}
	}
	return nil
}

// SetupTestDB connects to the test database, drops every table and migrates
// from scratch. The test is skipped when PostgreSQL is not reachable.
func SetupTestDB(t *testing.T, cfg *config.DatabaseConfig) *sql.DB {
	t.Helper()

	db, err := database.Connect(context.Background(), *cfg)
	if err != nil {
		t.Skipf("PostgreSQL not available: %v", err)
	}

	require.NoError(t, CleanupTestDB(db), "Failed to cleanup test database")

	var tableCount int
	err = db.QueryRow(`SELECT COUNT(*) FROM pg_tables WHERE schemaname = 'public'`).Scan(&tableCount)
	require.NoError(t, err, "Failed to count tables")
	require.Equal(t, 0, tableCount, "Database should be empty before running migrations")

	require.NoError(t, database.RunMigrations(*cfg), "Failed to run migrations")

	t.Cleanup(func() {
		if err := CleanupTestDB(db); err != nil {
			t.Errorf("Failed to cleanup test database: %v", err)
		}
		db.Close()
	})
	return db
}
