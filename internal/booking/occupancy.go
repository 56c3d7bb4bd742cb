package booking

import (
	"bannerdesk/internal/banner"
	"bannerdesk/internal/repository"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// OccupancyQuery selects a zone/position calendar. From and To only narrow
// the listed entries; the next available date always looks from today on.
type OccupancyQuery struct {
	ZoneID         uuid.UUID
	Position       banner.Position
	From           *time.Time
	To             *time.Time
	IncludePending bool
}

// OccupancyView is the calendar shown by the purchase flow
type OccupancyView struct {
	ZoneID        uuid.UUID
	Position      banner.Position
	Occupied      []banner.Occupancy
	NextAvailable time.Time
	MinStart      time.Time
}

// Occupancy returns the booked ranges of a zone/position together with the
// earliest date a new booking could start.
func (s *Service) Occupancy(ctx context.Context, q OccupancyQuery) (*OccupancyView, error) {
	if _, err := banner.ParsePosition(string(q.Position)); err != nil {
		return nil, err
	}

	entries, err := s.bookings.Occupancy(ctx, repository.OccupancyFilter{
		ZoneID:         q.ZoneID,
		Position:       q.Position,
		From:           q.From,
		To:             q.To,
		IncludePending: q.IncludePending,
	})
	if err != nil {
		return nil, fmt.Errorf("load occupancy: %w", err)
	}

	today := s.Today()
	upcoming, err := s.bookings.Occupancy(ctx, repository.OccupancyFilter{
		ZoneID:   q.ZoneID,
		Position: q.Position,
		From:     &today,
	})
	if err != nil {
		return nil, fmt.Errorf("load upcoming occupancy: %w", err)
	}

	minStart := s.MinStartDate()
	if entries == nil {
		entries = []banner.Occupancy{}
	}
	return &OccupancyView{
		ZoneID:        q.ZoneID,
		Position:      q.Position,
		Occupied:      entries,
		NextAvailable: banner.NextAvailableDate(upcoming, today, minStart),
		MinStart:      minStart,
	}, nil
}

// Availability is the answer to a dates check
type Availability struct {
	Available bool
	Range     banner.DateRange
	// PriceUSD is set when the range length is a sold duration
	PriceUSD *int
}

// CheckAvailability reports whether start/end is free on a zone/position.
// It is advisory; Create repeats the check under the slot lock.
func (s *Service) CheckAvailability(ctx context.Context, zoneID uuid.UUID, position banner.Position, start, end time.Time) (*Availability, error) {
	r, err := banner.NewDateRange(start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDates, err)
	}
	busy, err := s.bookings.HasOverlap(ctx, zoneID, position, r, nil)
	if err != nil {
		return nil, fmt.Errorf("check availability: %w", err)
	}

	res := &Availability{Available: !busy, Range: r}
	if d, err := banner.ParseDuration(r.Days()); err == nil {
		if zone, err := s.zones.Get(ctx, zoneID); err == nil {
			price := banner.PriceFor(zone.ZoneType, d)
			res.PriceUSD = &price
		}
	}
	return res, nil
}
