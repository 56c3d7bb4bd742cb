package repository

import (
	"bannerdesk/internal/banner"
	"bannerdesk/internal/models"
	"context"
	"time"

	"github.com/google/uuid"
)

// BookingRepository defines the interface for banner booking database operations.
// Check-then-write sequences must run inside Transaction after LockSlot.
type BookingRepository interface {
	Repository
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	// GetForUpdate loads a booking and locks its row for the rest of the transaction
	GetForUpdate(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	// Update persists dates, status, review fields and notes
	Update(ctx context.Context, booking *models.Booking) error
	List(ctx context.Context, filter BookingFilter) ([]models.Booking, error)

	// LockSlot serializes writers of one zone/position until the transaction ends
	LockSlot(ctx context.Context, zoneID uuid.UUID, position banner.Position) error
	// HasOverlap reports whether an approved or active booking of the slot shares a day with r
	HasOverlap(ctx context.Context, zoneID uuid.UUID, position banner.Position, r banner.DateRange, excludeID *uuid.UUID) (bool, error)
	Occupancy(ctx context.Context, filter OccupancyFilter) ([]banner.Occupancy, error)

	// ActivateDue moves approved bookings starting on or before today to active
	ActivateDue(ctx context.Context, today time.Time) ([]models.Booking, error)
	// ExpireDue moves active bookings that ended before today to expired
	ExpireDue(ctx context.Context, today time.Time) ([]models.Booking, error)
}

// BookingFilter defines the filter options for listing bookings
type BookingFilter struct {
	Statuses    []banner.Status
	ZoneID      *uuid.UUID
	Position    *banner.Position
	RequestedBy *uuid.UUID
	Limit       *int
	Offset      *int
}

// OccupancyFilter selects the calendar of one zone/position
type OccupancyFilter struct {
	ZoneID   uuid.UUID
	Position banner.Position
	// From and To bound the returned ranges; ranges overlapping the window are included
	From *time.Time
	To   *time.Time
	// IncludePending adds pending requests to the approved/active ones
	IncludePending bool
}
