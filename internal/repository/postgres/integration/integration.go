// Package integration provides utilities for postgres integration testing
package integration

import (
	"bannerdesk/internal/banner"
	"bannerdesk/internal/models"
	"bannerdesk/internal/repository/postgres"
	"bannerdesk/internal/testutil"
	"bannerdesk/internal/testutil/db"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// TestContext wraps testutil.TestContext with a migrated PostgreSQL database
type TestContext struct {
	*testutil.TestContext
}

// NewTestContext creates a new test context for postgres integration tests.
// The test is skipped when the database from .env.test is unreachable.
func NewTestContext(t *testing.T) *TestContext {
	t.Helper()
	cfg := testutil.LoadTestConfig(t)
	testDB := db.SetupTestDB(t, &cfg.Database)

	tc := testutil.NewTestContextWithRepos(t, testDB, testutil.Repositories{
		Users:    postgres.NewUserRepository(testDB),
		Roles:    postgres.NewRoleRepository(testDB),
		Zones:    postgres.NewZoneRepository(testDB),
		Bookings: postgres.NewBookingRepository(testDB),
		Audit:    postgres.NewAuditLogRepository(testDB),
	})
	return &TestContext{TestContext: tc}
}

// CleanupTestUsers removes all users and what they booked
func (tc *TestContext) CleanupTestUsers() {
	tc.T.Helper()
	tc.ExecuteSQL("DELETE FROM banner_bookings")
	tc.ExecuteSQL("DELETE FROM users")
}

// CleanupTestZones removes all zones and their bookings
func (tc *TestContext) CleanupTestZones() {
	tc.T.Helper()
	tc.ExecuteSQL("DELETE FROM banner_bookings")
	tc.ExecuteSQL("DELETE FROM ad_zones")
}

// InsertBooking writes a booking straight through the repository, bypassing
// the service checks
func (tc *TestContext) InsertBooking(zone *models.Zone, requester *models.User, position banner.Position, start, end string, status banner.Status) *models.Booking {
	tc.T.Helper()
	s, err := banner.ParseDate(start)
	require.NoError(tc.T, err)
	e, err := banner.ParseDate(end)
	require.NoError(tc.T, err)

	format, _ := banner.FormatForPosition(position)
	b := &models.Booking{
		ZoneID:       zone.ID,
		Position:     position,
		Format:       format.Format,
		StartDate:    s,
		EndDate:      e,
		DurationDays: int(e.Sub(s).Hours()/24) + 1,
		PriceUSD:     5,
		ImageURL:     "https://cdn.example.com/banner.png",
		Status:       status,
		RequestedBy:  requester.ID,
	}
	require.NoError(tc.T, tc.BookingRepo.Create(context.Background(), b))
	return b
}

// CreateTestAuditLog creates a test audit log entry
func (tc *TestContext) CreateTestAuditLog(userID *uuid.UUID, action models.AuditAction, entityType, entityID, description string) {
	tc.T.Helper()
	req := &models.CreateAuditLogRequest{
		UserID:      userID,
		Action:      action,
		EntityType:  entityType,
		EntityID:    entityID,
		Description: description,
		IPAddress:   "127.0.0.1",
		UserAgent:   "test-agent",
	}
	require.NoError(tc.T, tc.AuditRepo.Create(context.Background(), req))
}
