package postgres_test

import (
	"bannerdesk/internal/banner"
	"bannerdesk/internal/booking"
	"bannerdesk/internal/models"
	"bannerdesk/internal/repository"
	"bannerdesk/internal/repository/postgres/integration"
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type bookingFixture struct {
	tc    *integration.TestContext
	zone  *models.Zone
	user  *models.User
	admin *models.User
}

func newBookingFixture(t *testing.T) *bookingFixture {
	tc := integration.NewTestContext(t)
	return &bookingFixture{
		tc:    tc,
		zone:  tc.CreateTestZone(banner.ZoneTypeHomeCountry, uuid.New(), nil),
		user:  tc.CreateFakeUser(false),
		admin: tc.CreateFakeUser(true),
	}
}

func dateRange(t *testing.T, start, end string) banner.DateRange {
	t.Helper()
	s, err := banner.ParseDate(start)
	require.NoError(t, err)
	e, err := banner.ParseDate(end)
	require.NoError(t, err)
	return banner.DateRange{Start: s, End: e}
}

func TestBookingRepository_CreateAndGet(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	b := f.tc.InsertBooking(f.zone, f.user, banner.PositionHeader, "2024-03-08", "2024-03-14", banner.StatusPending)

	got, err := f.tc.BookingRepo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	require.Equal(t, b.ZoneID, got.ZoneID)
	require.Equal(t, banner.PositionHeader, got.Position)
	require.Equal(t, dateRange(t, "2024-03-08", "2024-03-14"), got.Range())
	require.Equal(t, 7, got.DurationDays)
	require.Equal(t, banner.StatusPending, got.Status)
	require.Nil(t, got.ReviewedBy)

	_, err = f.tc.BookingRepo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, repository.ErrBookingNotFound)
}

func TestBookingRepository_HasOverlap(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	approved := f.tc.InsertBooking(f.zone, f.user, banner.PositionHeader, "2024-03-08", "2024-03-14", banner.StatusApproved)
	f.tc.InsertBooking(f.zone, f.user, banner.PositionHeader, "2024-04-01", "2024-04-07", banner.StatusPending)

	tests := []struct {
		name     string
		position banner.Position
		r        banner.DateRange
		exclude  *uuid.UUID
		want     bool
	}{
		{"Overlaps start", banner.PositionHeader, dateRange(t, "2024-03-01", "2024-03-08"), nil, true},
		{"Overlaps end", banner.PositionHeader, dateRange(t, "2024-03-14", "2024-03-20"), nil, true},
		{"Contained", banner.PositionHeader, dateRange(t, "2024-03-10", "2024-03-11"), nil, true},
		{"Adjacent after", banner.PositionHeader, dateRange(t, "2024-03-15", "2024-03-21"), nil, false},
		{"Adjacent before", banner.PositionHeader, dateRange(t, "2024-03-01", "2024-03-07"), nil, false},
		{"Other position", banner.PositionFooter, dateRange(t, "2024-03-10", "2024-03-11"), nil, false},
		{"Pending does not count", banner.PositionHeader, dateRange(t, "2024-04-01", "2024-04-07"), nil, false},
		{"Excluding itself", banner.PositionHeader, dateRange(t, "2024-03-10", "2024-03-20"), &approved.ID, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.tc.BookingRepo.HasOverlap(ctx, f.zone.ID, tt.position, tt.r, tt.exclude)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestBookingRepository_UpdateLength(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()
	b := f.tc.InsertBooking(f.zone, f.user, banner.PositionHeader, "2024-05-01", "2024-05-07", banner.StatusApproved)

	t.Run("duration and price are stored with the dates", func(t *testing.T) {
		r := dateRange(t, "2024-05-01", "2024-05-15")
		b.EndDate = r.End
		b.DurationDays = 15
		b.PriceUSD = 20
		require.NoError(t, f.tc.BookingRepo.Update(ctx, b))

		stored, err := f.tc.BookingRepo.GetByID(ctx, b.ID)
		require.NoError(t, err)
		require.Equal(t, r.End, stored.EndDate)
		require.Equal(t, 15, stored.DurationDays)
		require.Equal(t, 20, stored.PriceUSD)
	})

	t.Run("dates that disagree with the duration are rejected", func(t *testing.T) {
		b.EndDate = dateRange(t, "2024-05-01", "2024-05-20").End
		require.Error(t, f.tc.BookingRepo.Update(ctx, b))

		stored, err := f.tc.BookingRepo.GetByID(ctx, b.ID)
		require.NoError(t, err)
		require.Equal(t, 15, stored.DurationDays)
		require.Equal(t, 15, stored.Range().Days())
	})
}

func TestBookingRepository_ExclusionConstraint(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	f.tc.InsertBooking(f.zone, f.user, banner.PositionHeader, "2024-03-08", "2024-03-14", banner.StatusApproved)
	pending := f.tc.InsertBooking(f.zone, f.user, banner.PositionHeader, "2024-03-10", "2024-03-16", banner.StatusPending)

	pending.Status = banner.StatusApproved
	err := f.tc.BookingRepo.Update(ctx, pending)
	require.ErrorIs(t, err, repository.ErrOverlap)

	stored, err := f.tc.BookingRepo.GetByID(ctx, pending.ID)
	require.NoError(t, err)
	require.Equal(t, banner.StatusPending, stored.Status)
}

func TestBookingRepository_LockSlotNeedsTransaction(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	require.Error(t, f.tc.BookingRepo.LockSlot(ctx, f.zone.ID, banner.PositionHeader))
	err := f.tc.BookingRepo.Transaction(ctx, func(ctx context.Context) error {
		return f.tc.BookingRepo.LockSlot(ctx, f.zone.ID, banner.PositionHeader)
	})
	require.NoError(t, err)
}

func TestBookingRepository_Occupancy(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	first := f.tc.InsertBooking(f.zone, f.user, banner.PositionHeader, "2024-03-01", "2024-03-07", banner.StatusActive)
	second := f.tc.InsertBooking(f.zone, f.user, banner.PositionHeader, "2024-03-20", "2024-03-26", banner.StatusApproved)
	f.tc.InsertBooking(f.zone, f.user, banner.PositionHeader, "2024-04-01", "2024-04-07", banner.StatusPending)
	f.tc.InsertBooking(f.zone, f.user, banner.PositionHeader, "2024-05-01", "2024-05-07", banner.StatusRejected)

	entries, err := f.tc.BookingRepo.Occupancy(ctx, repository.OccupancyFilter{ZoneID: f.zone.ID, Position: banner.PositionHeader})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, first.ID, entries[0].BookingID)
	require.Equal(t, second.ID, entries[1].BookingID)
	require.Equal(t, f.user.Username, entries[0].RequesterUsername)

	entries, err = f.tc.BookingRepo.Occupancy(ctx, repository.OccupancyFilter{ZoneID: f.zone.ID, Position: banner.PositionHeader, IncludePending: true})
	require.NoError(t, err)
	require.Len(t, entries, 3)

	from := dateRange(t, "2024-03-07", "2024-03-07").Start
	to := dateRange(t, "2024-03-19", "2024-03-19").Start
	entries, err = f.tc.BookingRepo.Occupancy(ctx, repository.OccupancyFilter{ZoneID: f.zone.ID, Position: banner.PositionHeader, From: &from, To: &to})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, first.ID, entries[0].BookingID)
}

func TestBookingRepository_ActivateAndExpire(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	due := f.tc.InsertBooking(f.zone, f.user, banner.PositionHeader, "2024-03-01", "2024-03-07", banner.StatusApproved)
	later := f.tc.InsertBooking(f.zone, f.user, banner.PositionHeader, "2024-03-20", "2024-03-26", banner.StatusApproved)
	ended := f.tc.InsertBooking(f.zone, f.user, banner.PositionFooter, "2024-02-01", "2024-02-07", banner.StatusActive)

	today := dateRange(t, "2024-03-05", "2024-03-05").Start
	activated, err := f.tc.BookingRepo.ActivateDue(ctx, today)
	require.NoError(t, err)
	require.Len(t, activated, 1)
	require.Equal(t, due.ID, activated[0].ID)
	require.Equal(t, banner.StatusActive, activated[0].Status)

	expired, err := f.tc.BookingRepo.ExpireDue(ctx, today)
	require.NoError(t, err)
	require.Len(t, expired, 1)
	require.Equal(t, ended.ID, expired[0].ID)

	stored, err := f.tc.BookingRepo.GetByID(ctx, later.ID)
	require.NoError(t, err)
	require.Equal(t, banner.StatusApproved, stored.Status)
}

func TestBookingService_ConcurrentApprovalsAgainstPostgres(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()
	f.tc.Now = dateRange(t, "2024-03-01", "2024-03-01").Start

	a := f.tc.CreateTestBooking(f.user, f.zone, banner.PositionHeader, "2024-03-08", 7)
	b := f.tc.CreateTestBooking(f.user, f.zone, banner.PositionHeader, "2024-03-10", 7)

	var (
		wg   sync.WaitGroup
		errs = make([]error, 2)
	)
	for i, id := range []uuid.UUID{a.ID, b.ID} {
		wg.Add(1)
		go func(i int, id uuid.UUID) {
			defer wg.Done()
			_, errs[i] = f.tc.Bookings.Approve(ctx, id, booking.Actor{UserID: f.admin.ID, IsAdmin: true}, nil)
		}(i, id)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		require.ErrorIs(t, err, booking.ErrSlotUnavailable)
	}
	require.Equal(t, 1, succeeded)

	occupying, err := f.tc.BookingRepo.List(ctx, repository.BookingFilter{Statuses: banner.OccupyingStatuses})
	require.NoError(t, err)
	require.Len(t, occupying, 1)
}
