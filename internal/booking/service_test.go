package booking_test

import (
	"bannerdesk/internal/banner"
	"bannerdesk/internal/booking"
	"bannerdesk/internal/cache"
	"bannerdesk/internal/email"
	"bannerdesk/internal/events"
	"bannerdesk/internal/metrics"
	"bannerdesk/internal/models"
	"bannerdesk/internal/repository"
	"bannerdesk/internal/testutil"
	"bannerdesk/internal/testutil/memstore"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	mu      sync.Mutex
	reviews []email.Review
}

func (n *recordingNotifier) SendBookingReviewed(_ context.Context, r email.Review) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.reviews = append(n.reviews, r)
	return nil
}

func (n *recordingNotifier) Reviews() []email.Review {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]email.Review(nil), n.reviews...)
}

type harness struct {
	t        *testing.T
	ctx      context.Context
	store    *memstore.Store
	svc      *booking.Service
	events   *events.Recorder
	notifier *recordingNotifier
	metrics  *metrics.Metrics
	now      time.Time

	country  uuid.UUID
	region   uuid.UUID
	zone     *models.Zone
	homeZone *models.Zone
	user     *models.User
	other    *models.User
	admin    *models.User
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		t:        t,
		ctx:      context.Background(),
		store:    memstore.New(),
		events:   &events.Recorder{},
		notifier: &recordingNotifier{},
		metrics:  metrics.New(prometheus.NewRegistry()),
		now:      time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		country:  uuid.New(),
		region:   uuid.New(),
	}

	resolver := booking.NewZoneResolver(h.store.Zones(), cache.NewMemory(nil), time.Minute, h.metrics, nil)
	h.svc = booking.NewService(booking.Options{
		Bookings: h.store.Bookings(),
		Users:    h.store.Users(),
		Audit:    h.store.AuditLogs(),
		Zones:    resolver,
		Events:   h.events,
		Notifier: h.notifier,
		Metrics:  h.metrics,
		Now:      func() time.Time { return h.now },
	})

	h.zone = &models.Zone{Name: "Sweden - Stockholm", ZoneType: banner.ZoneTypeCity, CountryID: h.country, RegionID: &h.region, IsActive: true}
	require.NoError(t, resolver.Create(h.ctx, h.zone))
	h.homeZone = &models.Zone{Name: "Sweden", ZoneType: banner.ZoneTypeHomeCountry, CountryID: h.country, IsActive: true}
	require.NoError(t, resolver.Create(h.ctx, h.homeZone))

	h.user = h.createUser("alice", "user")
	h.other = h.createUser("bob", "user")
	h.admin = h.createUser("moderator", "admin")
	return h
}

func (h *harness) createUser(username, roleName string) *models.User {
	role, err := h.store.Roles().GetByName(h.ctx, roleName)
	require.NoError(h.t, err)
	mail := username + "@example.com"
	u := &models.User{Username: username, Password: "hash", Email: &mail, RoleID: role.ID}
	require.NoError(h.t, h.store.Users().Create(h.ctx, u))
	u.Role = role
	return u
}

func (h *harness) actor(u *models.User) booking.Actor {
	return booking.Actor{UserID: u.ID, IsAdmin: u.IsAdmin()}
}

func (h *harness) input(start string, days int) booking.CreateInput {
	return booking.CreateInput{
		RequesterID:  h.user.ID,
		CountryID:    h.country,
		ZoneType:     banner.ZoneTypeCity,
		RegionID:     &h.region,
		Position:     banner.PositionHeader,
		Format:       banner.FormatLeaderboard,
		StartDate:    day(start),
		DurationDays: days,
		ImageURL:     "https://cdn.example.com/banner.png",
	}
}

func (h *harness) create(start string, days int) *models.Booking {
	h.t.Helper()
	b, err := h.svc.Create(h.ctx, h.input(start, days), h.actor(h.user))
	require.NoError(h.t, err)
	return b
}

func (h *harness) approved(start string, days int) *models.Booking {
	h.t.Helper()
	b := h.create(start, days)
	b, err := h.svc.Approve(h.ctx, b.ID, h.actor(h.admin), nil)
	require.NoError(h.t, err)
	return b
}

func day(s string) time.Time {
	d, err := banner.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCreate(t *testing.T) {
	h := newHarness(t)

	b, err := h.svc.Create(h.ctx, h.input("2024-03-08", 7), h.actor(h.user))
	require.NoError(t, err)

	assert.Equal(t, banner.StatusPending, b.Status)
	assert.Equal(t, h.zone.ID, b.ZoneID)
	assert.Equal(t, day("2024-03-08"), b.StartDate)
	assert.Equal(t, day("2024-03-14"), b.EndDate)
	assert.Equal(t, 7, b.DurationDays)
	assert.Equal(t, 5, b.PriceUSD)
	assert.Equal(t, []events.Type{events.BookingRequested}, h.events.Types())
	assert.Equal(t, float64(1), promtest.ToFloat64(h.metrics.BookingRequestsTotal.WithLabelValues("created")))

	logs, err := h.store.AuditLogs().List(h.ctx, repository.AuditLogFilter{EntityIDs: []string{b.ID.String()}})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, models.AuditActionCreate, logs[0].Action)
	assert.Equal(t, h.user.ID, *logs[0].UserID)

	t.Run("home country pricing ignores the region", func(t *testing.T) {
		in := h.input("2024-04-01", 30)
		in.ZoneType = banner.ZoneTypeHomeCountry
		b, err := h.svc.Create(h.ctx, in, h.actor(h.user))
		require.NoError(t, err)
		assert.Equal(t, h.homeZone.ID, b.ZoneID)
		assert.Equal(t, 30, b.PriceUSD)
	})
}

func TestCreateValidation(t *testing.T) {
	h := newHarness(t)

	tests := []struct {
		name   string
		modify func(*booking.CreateInput)
		code   string
	}{
		{
			name:   "start before minimum start date",
			modify: func(in *booking.CreateInput) { in.StartDate = day("2024-03-03") },
			code:   "lead_time_violation",
		},
		{
			name: "lead time is checked before everything else",
			modify: func(in *booking.CreateInput) {
				in.StartDate = day("2024-03-02")
				in.Format = banner.FormatMediumRectangle
				in.DurationDays = 10
				in.CountryID = uuid.New()
			},
			code: "lead_time_violation",
		},
		{
			name:   "format not allowed at position",
			modify: func(in *booking.CreateInput) { in.Position = banner.PositionSidebarTop },
			code:   "invalid_format",
		},
		{
			name:   "duration not sold",
			modify: func(in *booking.CreateInput) { in.DurationDays = 10 },
			code:   "invalid_duration",
		},
		{
			name:   "no zone for country",
			modify: func(in *booking.CreateInput) { in.CountryID = uuid.New() },
			code:   "zone_not_found",
		},
		{
			name:   "city without region",
			modify: func(in *booking.CreateInput) { in.RegionID = nil },
			code:   "zone_not_found",
		},
		{
			name:   "unknown zone type",
			modify: func(in *booking.CreateInput) { in.ZoneType = "continent" },
			code:   "invalid_zone_type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := h.input("2024-03-08", 7)
			tt.modify(&in)
			b, err := h.svc.Create(h.ctx, in, h.actor(h.user))
			require.Error(t, err)
			assert.Nil(t, b)
			assert.Equal(t, tt.code, booking.Code(err))
		})
	}

	t.Run("lead time error carries the minimum start date", func(t *testing.T) {
		in := h.input("2024-03-02", 7)
		_, err := h.svc.Create(h.ctx, in, h.actor(h.user))
		var lead *booking.LeadTimeError
		require.True(t, errors.As(err, &lead))
		assert.Equal(t, day("2024-03-04"), lead.MinStart)
	})

	t.Run("minimum start date is accepted", func(t *testing.T) {
		_, err := h.svc.Create(h.ctx, h.input("2024-03-04", 7), h.actor(h.user))
		assert.NoError(t, err)
	})
}

func TestValidate(t *testing.T) {
	h := newHarness(t)

	zone, duration, err := h.svc.Validate(h.ctx, h.input("2024-03-08", 15))
	require.NoError(t, err)
	assert.Equal(t, h.zone.ID, zone.ID)
	assert.Equal(t, banner.Duration15, duration)

	_, _, err = h.svc.Validate(h.ctx, h.input("2024-03-01", 10))
	assert.Equal(t, "lead_time_violation", booking.Code(err))

	bookings, err := h.svc.List(h.ctx, repository.BookingFilter{})
	require.NoError(t, err)
	assert.Empty(t, bookings)
	assert.Empty(t, h.events.Types())
}

func TestCreateAgainstApprovedBooking(t *testing.T) {
	h := newHarness(t)
	existing := h.approved("2024-03-08", 7)

	_, err := h.svc.Create(h.ctx, h.input("2024-03-10", 7), h.actor(h.user))
	require.Error(t, err)
	assert.Equal(t, "slot_unavailable", booking.Code(err))

	var slot *booking.SlotUnavailableError
	require.True(t, errors.As(err, &slot))
	assert.Equal(t, day("2024-03-15"), slot.NextAvailable)
	require.Len(t, slot.Occupied, 1)
	assert.Equal(t, existing.ID, slot.Occupied[0].BookingID)
	assert.Equal(t, "alice", slot.Occupied[0].RequesterUsername)
	assert.Equal(t, float64(1), promtest.ToFloat64(h.metrics.BookingRequestsTotal.WithLabelValues("slot_unavailable")))

	t.Run("adjacent range is free", func(t *testing.T) {
		_, err := h.svc.Create(h.ctx, h.input("2024-03-15", 7), h.actor(h.user))
		assert.NoError(t, err)
	})

	t.Run("other position is free", func(t *testing.T) {
		in := h.input("2024-03-10", 7)
		in.Position = banner.PositionFooter
		_, err := h.svc.Create(h.ctx, in, h.actor(h.user))
		assert.NoError(t, err)
	})
}

func TestPendingBookingsDoNotBlock(t *testing.T) {
	h := newHarness(t)
	first := h.create("2024-03-08", 7)
	second := h.create("2024-03-08", 7)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestConcurrentApprovals(t *testing.T) {
	h := newHarness(t)
	a := h.create("2024-03-08", 7)
	b := h.create("2024-03-10", 15)

	var (
		wg   sync.WaitGroup
		errs = make([]error, 2)
	)
	for i, id := range []uuid.UUID{a.ID, b.ID} {
		wg.Add(1)
		go func(i int, id uuid.UUID) {
			defer wg.Done()
			_, errs[i] = h.svc.Approve(h.ctx, id, h.actor(h.admin), nil)
		}(i, id)
	}
	wg.Wait()

	var ok, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case booking.Code(err) == "slot_unavailable":
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, conflicts)

	active, err := h.svc.List(h.ctx, repository.BookingFilter{Statuses: banner.OccupyingStatuses})
	require.NoError(t, err)
	assert.Len(t, active, 1)
}

func TestApprove(t *testing.T) {
	h := newHarness(t)
	b := h.create("2024-03-08", 7)
	notes := "looks good"

	approved, err := h.svc.Approve(h.ctx, b.ID, h.actor(h.admin), &notes)
	require.NoError(t, err)
	assert.Equal(t, banner.StatusApproved, approved.Status)
	require.NotNil(t, approved.ReviewedBy)
	assert.Equal(t, h.admin.ID, *approved.ReviewedBy)
	assert.Equal(t, &notes, approved.AdminNotes)

	reviews := h.notifier.Reviews()
	require.Len(t, reviews, 1)
	assert.True(t, reviews[0].Approved)
	assert.Equal(t, "alice@example.com", reviews[0].To)
	assert.Equal(t, "Sweden - Stockholm", reviews[0].ZoneName)

	t.Run("approving again changes nothing", func(t *testing.T) {
		again, err := h.svc.Approve(h.ctx, b.ID, h.actor(h.admin), nil)
		require.NoError(t, err)
		assert.Equal(t, banner.StatusApproved, again.Status)
		assert.Len(t, h.notifier.Reviews(), 1)
		assert.Equal(t, []events.Type{events.BookingRequested, events.BookingApproved}, h.events.Types())
	})

	t.Run("rejecting an approved booking fails", func(t *testing.T) {
		_, err := h.svc.Reject(h.ctx, b.ID, h.actor(h.admin), nil)
		assert.Equal(t, "invalid_transition", booking.Code(err))
	})

	t.Run("unknown booking", func(t *testing.T) {
		_, err := h.svc.Approve(h.ctx, uuid.New(), h.actor(h.admin), nil)
		assert.ErrorIs(t, err, booking.ErrBookingNotFound)
	})
}

func TestApproveConflictingBooking(t *testing.T) {
	h := newHarness(t)
	a := h.create("2024-03-08", 7)
	b := h.create("2024-03-12", 7)

	_, err := h.svc.Approve(h.ctx, a.ID, h.actor(h.admin), nil)
	require.NoError(t, err)

	_, err = h.svc.Approve(h.ctx, b.ID, h.actor(h.admin), nil)
	var slot *booking.SlotUnavailableError
	require.True(t, errors.As(err, &slot))
	assert.Equal(t, day("2024-03-12"), slot.Requested.Start)

	stored, err := h.svc.Get(h.ctx, b.ID, h.actor(h.admin))
	require.NoError(t, err)
	assert.Equal(t, banner.StatusPending, stored.Status)
}

func TestReject(t *testing.T) {
	h := newHarness(t)
	b := h.create("2024-03-08", 7)
	notes := "image is blurry"

	rejected, err := h.svc.Reject(h.ctx, b.ID, h.actor(h.admin), &notes)
	require.NoError(t, err)
	assert.Equal(t, banner.StatusRejected, rejected.Status)

	again, err := h.svc.Reject(h.ctx, b.ID, h.actor(h.admin), nil)
	require.NoError(t, err)
	assert.Equal(t, banner.StatusRejected, again.Status)

	reviews := h.notifier.Reviews()
	require.Len(t, reviews, 1)
	assert.False(t, reviews[0].Approved)
	assert.Equal(t, notes, reviews[0].Notes)

	_, err = h.svc.Approve(h.ctx, b.ID, h.actor(h.admin), nil)
	assert.Equal(t, "invalid_transition", booking.Code(err))
}

func TestCancel(t *testing.T) {
	h := newHarness(t)
	b := h.approved("2024-03-08", 7)

	_, err := h.svc.Cancel(h.ctx, b.ID, h.actor(h.other))
	assert.ErrorIs(t, err, booking.ErrForbidden)

	cancelled, err := h.svc.Cancel(h.ctx, b.ID, h.actor(h.user))
	require.NoError(t, err)
	assert.Equal(t, banner.StatusCancelled, cancelled.Status)

	_, err = h.svc.Cancel(h.ctx, b.ID, h.actor(h.user))
	require.NoError(t, err)

	// the slot is free again
	_, err = h.svc.Create(h.ctx, h.input("2024-03-08", 7), h.actor(h.user))
	assert.NoError(t, err)

	count := 0
	for _, typ := range h.events.Types() {
		if typ == events.BookingCancelled {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestEdit(t *testing.T) {
	h := newHarness(t)

	t.Run("moving the start keeps the length", func(t *testing.T) {
		b := h.approved("2024-03-08", 7)
		edited, err := h.svc.Edit(h.ctx, b.ID, booking.EditInput{StartDate: testutil.Ptr(day("2024-04-01"))}, h.actor(h.admin))
		require.NoError(t, err)
		assert.Equal(t, day("2024-04-01"), edited.StartDate)
		assert.Equal(t, day("2024-04-07"), edited.EndDate)
	})

	t.Run("end before start", func(t *testing.T) {
		b := h.create("2024-05-01", 7)
		_, err := h.svc.Edit(h.ctx, b.ID, booking.EditInput{EndDate: testutil.Ptr(day("2024-04-20"))}, h.actor(h.admin))
		assert.Equal(t, "invalid_dates", booking.Code(err))
	})

	t.Run("overlap leaves the booking unchanged", func(t *testing.T) {
		h.approved("2024-06-01", 7)
		b := h.approved("2024-06-10", 7)
		_, err := h.svc.Edit(h.ctx, b.ID, booking.EditInput{StartDate: testutil.Ptr(day("2024-06-05"))}, h.actor(h.admin))
		assert.Equal(t, "slot_unavailable", booking.Code(err))

		stored, err := h.svc.Get(h.ctx, b.ID, h.actor(h.admin))
		require.NoError(t, err)
		assert.Equal(t, day("2024-06-10"), stored.StartDate)
	})

	t.Run("extending over its own dates is allowed", func(t *testing.T) {
		b := h.approved("2024-07-01", 7)
		edited, err := h.svc.Edit(h.ctx, b.ID, booking.EditInput{EndDate: testutil.Ptr(day("2024-07-15"))}, h.actor(h.admin))
		require.NoError(t, err)
		assert.Equal(t, day("2024-07-15"), edited.EndDate)
		assert.Equal(t, 15, edited.DurationDays)
		assert.Equal(t, 10, edited.PriceUSD)
	})

	t.Run("new length must be a sold duration", func(t *testing.T) {
		b := h.approved("2024-09-02", 7)
		_, err := h.svc.Edit(h.ctx, b.ID, booking.EditInput{EndDate: testutil.Ptr(day("2024-12-20"))}, h.actor(h.admin))
		assert.Equal(t, "invalid_duration", booking.Code(err))

		stored, err := h.svc.Get(h.ctx, b.ID, h.actor(h.admin))
		require.NoError(t, err)
		assert.Equal(t, day("2024-09-08"), stored.EndDate)
		assert.Equal(t, 7, stored.DurationDays)
		assert.Equal(t, 5, stored.PriceUSD)
	})

	t.Run("changing both dates reprices the booking", func(t *testing.T) {
		b := h.approved("2024-10-01", 7)
		edited, err := h.svc.Edit(h.ctx, b.ID, booking.EditInput{
			StartDate: testutil.Ptr(day("2024-10-05")),
			EndDate:   testutil.Ptr(day("2024-11-03")),
		}, h.actor(h.admin))
		require.NoError(t, err)
		assert.Equal(t, 30, edited.DurationDays)
		assert.Equal(t, 15, edited.PriceUSD)

		stored, err := h.svc.Get(h.ctx, b.ID, h.actor(h.admin))
		require.NoError(t, err)
		assert.Equal(t, banner.EndDate(stored.StartDate, banner.Duration30), stored.EndDate)
		assert.Equal(t, 30, stored.DurationDays)
	})

	t.Run("terminal bookings accept notes only", func(t *testing.T) {
		b := h.create("2024-08-01", 7)
		_, err := h.svc.Reject(h.ctx, b.ID, h.actor(h.admin), nil)
		require.NoError(t, err)

		notes := "resubmitted as a new booking"
		edited, err := h.svc.Edit(h.ctx, b.ID, booking.EditInput{Notes: &notes}, h.actor(h.admin))
		require.NoError(t, err)
		assert.Equal(t, &notes, edited.AdminNotes)

		_, err = h.svc.Edit(h.ctx, b.ID, booking.EditInput{StartDate: testutil.Ptr(day("2024-08-05"))}, h.actor(h.admin))
		assert.Equal(t, "invalid_transition", booking.Code(err))
	})
}

func TestChangeStatus(t *testing.T) {
	h := newHarness(t)

	pending := h.create("2024-03-08", 7)
	_, err := h.svc.ChangeStatus(h.ctx, pending.ID, banner.StatusActive, h.actor(h.admin))
	assert.Equal(t, "invalid_transition", booking.Code(err))

	_, err = h.svc.ChangeStatus(h.ctx, pending.ID, banner.Status("paused"), h.actor(h.admin))
	assert.ErrorIs(t, err, banner.ErrInvalidStatus)

	same, err := h.svc.ChangeStatus(h.ctx, pending.ID, banner.StatusPending, h.actor(h.admin))
	require.NoError(t, err)
	assert.Equal(t, banner.StatusPending, same.Status)

	approved, err := h.svc.ChangeStatus(h.ctx, pending.ID, banner.StatusApproved, h.actor(h.admin))
	require.NoError(t, err)
	assert.Equal(t, banner.StatusApproved, approved.Status)

	active, err := h.svc.ChangeStatus(h.ctx, pending.ID, banner.StatusActive, h.actor(h.admin))
	require.NoError(t, err)
	assert.Equal(t, banner.StatusActive, active.Status)

	expired, err := h.svc.ChangeStatus(h.ctx, pending.ID, banner.StatusExpired, h.actor(h.admin))
	require.NoError(t, err)
	assert.Equal(t, banner.StatusExpired, expired.Status)

	_, err = h.svc.ChangeStatus(h.ctx, pending.ID, banner.StatusCancelled, h.actor(h.admin))
	assert.Equal(t, "invalid_transition", booking.Code(err))
}

func TestAdvanceSchedule(t *testing.T) {
	h := newHarness(t)
	pending := h.create("2024-03-08", 7)
	first := h.approved("2024-03-08", 7)
	second := h.approved("2024-03-20", 7)

	res, err := h.svc.AdvanceSchedule(h.ctx, time.Date(2024, 3, 8, 0, 5, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, res.Activated, 1)
	assert.Equal(t, first.ID, res.Activated[0].ID)
	assert.Empty(t, res.Expired)

	res, err = h.svc.AdvanceSchedule(h.ctx, time.Date(2024, 3, 14, 0, 5, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, res.Activated)
	assert.Empty(t, res.Expired, "a booking is live through its last day")

	// second was never activated and has already ended
	res, err = h.svc.AdvanceSchedule(h.ctx, time.Date(2024, 4, 1, 0, 5, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, res.Activated, 1)
	assert.Equal(t, second.ID, res.Activated[0].ID)
	assert.Len(t, res.Expired, 2)

	stored, err := h.svc.Get(h.ctx, pending.ID, h.actor(h.admin))
	require.NoError(t, err)
	assert.Equal(t, banner.StatusPending, stored.Status)

	res, err = h.svc.AdvanceSchedule(h.ctx, time.Date(2024, 4, 2, 0, 5, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, res.Activated)
	assert.Empty(t, res.Expired)
	assert.Equal(t, float64(4), promtest.ToFloat64(h.metrics.ScheduledRunsTotal.WithLabelValues("ok")))
}

func TestOccupancy(t *testing.T) {
	h := newHarness(t)
	past := h.approved("2024-03-04", 7)
	h.now = time.Date(2024, 3, 9, 9, 0, 0, 0, time.UTC)
	h.approved("2024-03-20", 15)
	h.create("2024-04-10", 7)

	view, err := h.svc.Occupancy(h.ctx, booking.OccupancyQuery{ZoneID: h.zone.ID, Position: banner.PositionHeader})
	require.NoError(t, err)
	assert.Len(t, view.Occupied, 2)
	assert.Equal(t, past.ID, view.Occupied[0].BookingID)
	assert.Equal(t, day("2024-03-12"), view.MinStart)
	assert.Equal(t, day("2024-04-04"), view.NextAvailable)

	withPending, err := h.svc.Occupancy(h.ctx, booking.OccupancyQuery{ZoneID: h.zone.ID, Position: banner.PositionHeader, IncludePending: true})
	require.NoError(t, err)
	assert.Len(t, withPending.Occupied, 3)
	assert.Equal(t, view.NextAvailable, withPending.NextAvailable)

	from := day("2024-03-15")
	window, err := h.svc.Occupancy(h.ctx, booking.OccupancyQuery{ZoneID: h.zone.ID, Position: banner.PositionHeader, From: &from})
	require.NoError(t, err)
	assert.Len(t, window.Occupied, 1)
	assert.Equal(t, day("2024-04-04"), window.NextAvailable)

	empty, err := h.svc.Occupancy(h.ctx, booking.OccupancyQuery{ZoneID: h.zone.ID, Position: banner.PositionFooter})
	require.NoError(t, err)
	assert.Empty(t, empty.Occupied)
	assert.Equal(t, view.MinStart, empty.NextAvailable)

	_, err = h.svc.Occupancy(h.ctx, booking.OccupancyQuery{ZoneID: h.zone.ID, Position: banner.Position("popup")})
	assert.Error(t, err)
}

func TestCheckAvailability(t *testing.T) {
	h := newHarness(t)
	h.approved("2024-03-08", 7)

	res, err := h.svc.CheckAvailability(h.ctx, h.zone.ID, banner.PositionHeader, day("2024-03-14"), day("2024-03-20"))
	require.NoError(t, err)
	assert.False(t, res.Available)
	require.NotNil(t, res.PriceUSD)
	assert.Equal(t, 5, *res.PriceUSD)

	res, err = h.svc.CheckAvailability(h.ctx, h.zone.ID, banner.PositionHeader, day("2024-03-15"), day("2024-03-18"))
	require.NoError(t, err)
	assert.True(t, res.Available)
	assert.Nil(t, res.PriceUSD)

	_, err = h.svc.CheckAvailability(h.ctx, h.zone.ID, banner.PositionHeader, day("2024-03-18"), day("2024-03-15"))
	assert.ErrorIs(t, err, booking.ErrInvalidDates)
}

func TestGetVisibility(t *testing.T) {
	h := newHarness(t)
	b := h.create("2024-03-08", 7)

	_, err := h.svc.Get(h.ctx, b.ID, h.actor(h.user))
	assert.NoError(t, err)
	_, err = h.svc.Get(h.ctx, b.ID, h.actor(h.other))
	assert.ErrorIs(t, err, booking.ErrForbidden)
	_, err = h.svc.Get(h.ctx, b.ID, h.actor(h.admin))
	assert.NoError(t, err)
	_, err = h.svc.Get(h.ctx, uuid.New(), h.actor(h.admin))
	assert.ErrorIs(t, err, booking.ErrBookingNotFound)
}
