// Package testutil provides utilities for testing
package testutil

import (
	"bannerdesk/internal/auth"
	"bannerdesk/internal/banner"
	"bannerdesk/internal/booking"
	"bannerdesk/internal/cache"
	"bannerdesk/internal/config"
	"bannerdesk/internal/events"
	"bannerdesk/internal/metrics"
	"bannerdesk/internal/models"
	"bannerdesk/internal/repository"
	"bannerdesk/internal/testutil/db"
	"bannerdesk/internal/testutil/memstore"
	"bannerdesk/internal/validation"
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// LoadTestConfig loads the test configuration
func LoadTestConfig(t *testing.T) *config.Config {
	t.Helper()
	return db.LoadTestConfig(t)
}

// Repositories groups the stores a TestContext runs against
type Repositories struct {
	Users    repository.UserRepository
	Roles    repository.RoleRepository
	Zones    repository.ZoneRepository
	Bookings repository.BookingRepository
	Audit    repository.AuditLogRepository
}

// TestContext holds common test dependencies
type TestContext struct {
	T      *testing.T
	DB     *sql.DB
	Config *config.Config

	UserRepo    repository.UserRepository
	RoleRepo    repository.RoleRepository
	ZoneRepo    repository.ZoneRepository
	BookingRepo repository.BookingRepository
	AuditRepo   repository.AuditLogRepository

	AuthService *auth.Service
	Zones       *booking.ZoneResolver
	Bookings    *booking.Service
	Events      *events.Recorder
	Metrics     *metrics.Metrics

	// Now is the clock seen by the booking service; tests may move it
	Now time.Time
}

// NewTestContext creates a test context backed by the in-memory store
func NewTestContext(t *testing.T) *TestContext {
	t.Helper()
	store := memstore.New()
	return NewTestContextWithRepos(t, nil, Repositories{
		Users:    store.Users(),
		Roles:    store.Roles(),
		Zones:    store.Zones(),
		Bookings: store.Bookings(),
		Audit:    store.AuditLogs(),
	})
}

// NewTestContextWithRepos creates a test context around the given repositories
func NewTestContextWithRepos(t *testing.T, testDB *sql.DB, repos Repositories) *TestContext {
	t.Helper()

	gin.SetMode(gin.TestMode)
	validation.Initialize()

	cfg := LoadTestConfig(t)

	tc := &TestContext{
		T:           t,
		DB:          testDB,
		Config:      cfg,
		UserRepo:    repos.Users,
		RoleRepo:    repos.Roles,
		ZoneRepo:    repos.Zones,
		BookingRepo: repos.Bookings,
		AuditRepo:   repos.Audit,
		AuthService: auth.NewService(cfg.Auth),
		Events:      &events.Recorder{},
		Metrics:     metrics.NewNop(),
		Now:         time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	tc.Zones = booking.NewZoneResolver(repos.Zones, cache.NewMemory(nil), cfg.Cache.TTL, tc.Metrics, nil)
	tc.Bookings = booking.NewService(booking.Options{
		Bookings: repos.Bookings,
		Users:    repos.Users,
		Audit:    repos.Audit,
		Zones:    tc.Zones,
		Events:   tc.Events,
		Metrics:  tc.Metrics,
		Now:      func() time.Time { return tc.Now },
	})
	return tc
}

// CreateTestUser creates a test user with the given details and returns the created user
func (tc *TestContext) CreateTestUser(username, email, password string, isAdmin bool) *models.User {
	tc.T.Helper()

	roleName := "user"
	if isAdmin {
		roleName = "admin"
	}
	role, err := tc.RoleRepo.GetByName(context.Background(), roleName)
	require.NoError(tc.T, err, "Failed to get %s role", roleName)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(tc.T, err, "Failed to hash password")

	user := &models.User{
		Username: username,
		Password: string(hashedPassword),
		RoleID:   role.ID,
	}
	if email != "" {
		user.Email = &email
	}

	err = tc.UserRepo.Create(context.Background(), user)
	require.NoError(tc.T, err, "Failed to create test user")
	user.Role = role

	return user
}

// CreateFakeUser creates a user with generated credentials
func (tc *TestContext) CreateFakeUser(isAdmin bool) *models.User {
	tc.T.Helper()
	username := fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(1000, 9999))
	return tc.CreateTestUser(username, gofakeit.Email(), gofakeit.Password(true, true, true, false, false, 12), isAdmin)
}

// GetTestJWT generates a JWT token for testing
func (tc *TestContext) GetTestJWT(userID uuid.UUID) string {
	tc.T.Helper()

	user, err := tc.UserRepo.GetByID(context.Background(), userID)
	require.NoError(tc.T, err, "Failed to get user")

	token, err := tc.AuthService.GenerateToken(user)
	require.NoError(tc.T, err, "Failed to generate test JWT")
	return token
}

// CreateTestZone creates an active zone. regionID is required for city zones.
func (tc *TestContext) CreateTestZone(zoneType banner.ZoneType, countryID uuid.UUID, regionID *uuid.UUID) *models.Zone {
	tc.T.Helper()

	name := gofakeit.Country()
	if zoneType == banner.ZoneTypeCity {
		name = fmt.Sprintf("%s - %s", name, gofakeit.City())
	}
	zone := &models.Zone{
		Name:      name,
		ZoneType:  zoneType,
		CountryID: countryID,
		RegionID:  regionID,
		IsActive:  true,
	}
	err := tc.Zones.Create(context.Background(), zone)
	require.NoError(tc.T, err, "Failed to create test zone")
	return zone
}

// CreateTestBooking books zone/position for the requester through the service
func (tc *TestContext) CreateTestBooking(requester *models.User, zone *models.Zone, position banner.Position, start string, days int) *models.Booking {
	tc.T.Helper()

	startDate, err := banner.ParseDate(start)
	require.NoError(tc.T, err)
	format, ok := banner.FormatForPosition(position)
	require.True(tc.T, ok, "no format for position %s", position)

	b, err := tc.Bookings.Create(context.Background(), booking.CreateInput{
		RequesterID:  requester.ID,
		CountryID:    zone.CountryID,
		ZoneType:     zone.ZoneType,
		RegionID:     zone.RegionID,
		Position:     position,
		Format:       format.Format,
		StartDate:    startDate,
		DurationDays: days,
		ImageURL:     gofakeit.URL() + "/banner.png",
	}, booking.Actor{UserID: requester.ID})
	require.NoError(tc.T, err, "Failed to create test booking")
	return b
}

// ApproveTestBooking approves b as admin
func (tc *TestContext) ApproveTestBooking(admin *models.User, b *models.Booking) *models.Booking {
	tc.T.Helper()
	approved, err := tc.Bookings.Approve(context.Background(), b.ID, booking.Actor{UserID: admin.ID, IsAdmin: true}, nil)
	require.NoError(tc.T, err, "Failed to approve test booking")
	return approved
}

// ExecuteSQL executes raw SQL against the test database
func (tc *TestContext) ExecuteSQL(query string, args ...any) {
	tc.T.Helper()
	require.NotNil(tc.T, tc.DB, "ExecuteSQL needs a database-backed context")
	_, err := tc.DB.Exec(query, args...)
	require.NoError(tc.T, err, "Failed to execute SQL: %s", query)
}
