// Package booking implements the banner booking lifecycle: creation through
// the purchase flow, moderation, date edits and the scheduled move to
// active and expired.
package booking

import (
	"bannerdesk/internal/banner"
	"bannerdesk/internal/email"
	"bannerdesk/internal/events"
	"bannerdesk/internal/metrics"
	"bannerdesk/internal/models"
	"bannerdesk/internal/repository"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Actor identifies who performs an operation
type Actor struct {
	UserID    uuid.UUID
	IsAdmin   bool
	IPAddress string
	UserAgent string
}

// Options configures a Service
type Options struct {
	Bookings repository.BookingRepository
	Users    repository.UserRepository
	Audit    repository.AuditLogRepository
	Zones    *ZoneResolver
	Events   events.Publisher
	Notifier email.Notifier
	Metrics  *metrics.Metrics
	Logger   *zap.Logger
	// Location decides which calendar day "today" is
	Location *time.Location
	// Now defaults to time.Now
	Now func() time.Time
}

// Service owns the booking state machine
type Service struct {
	bookings repository.BookingRepository
	users    repository.UserRepository
	audit    repository.AuditLogRepository
	zones    *ZoneResolver
	events   events.Publisher
	notifier email.Notifier
	metrics  *metrics.Metrics
	log      *zap.Logger
	loc      *time.Location
	now      func() time.Time
}

// NewService creates a booking service
func NewService(opts Options) *Service {
	s := &Service{
		bookings: opts.Bookings,
		users:    opts.Users,
		audit:    opts.Audit,
		zones:    opts.Zones,
		events:   opts.Events,
		notifier: opts.Notifier,
		metrics:  opts.Metrics,
		log:      opts.Logger,
		loc:      opts.Location,
		now:      opts.Now,
	}
	if s.events == nil {
		s.events = events.NopPublisher{}
	}
	if s.notifier == nil {
		s.notifier = email.NopNotifier{}
	}
	if s.metrics == nil {
		s.metrics = metrics.NewNop()
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	if s.loc == nil {
		s.loc = time.UTC
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Now returns the service clock
func (s *Service) Now() time.Time {
	return s.now()
}

// Today returns the current calendar day in the booking time zone
func (s *Service) Today() time.Time {
	return banner.Today(s.now(), s.loc)
}

// MinStartDate returns the earliest start date a new booking may use
func (s *Service) MinStartDate() time.Time {
	return banner.MinStartDate(s.now(), s.loc)
}

// Zones returns the zone resolver used by the service
func (s *Service) Zones() *ZoneResolver {
	return s.zones
}

// CreateInput is a booking request from the purchase flow
type CreateInput struct {
	RequesterID  uuid.UUID
	CountryID    uuid.UUID
	ZoneType     banner.ZoneType
	RegionID     *uuid.UUID
	Position     banner.Position
	Format       banner.Format
	StartDate    time.Time
	DurationDays int
	ImageURL     string
	ClickURL     *string
}

// Create validates a request, prices it and stores it as pending.
// The availability check and the insert run under the slot lock.
func (s *Service) Create(ctx context.Context, in CreateInput, actor Actor) (*models.Booking, error) {
	b, err := s.create(ctx, in, actor)
	outcome := "created"
	if err != nil {
		outcome = Code(err)
	}
	s.metrics.BookingRequestsTotal.WithLabelValues(outcome).Inc()
	return b, err
}

// Validate runs the checks Create does before touching the slot: lead time,
// placement, duration and zone, in that order. It stores nothing.
func (s *Service) Validate(ctx context.Context, in CreateInput) (*models.Zone, banner.Duration, error) {
	start := banner.Day(in.StartDate)
	if minStart := s.MinStartDate(); start.Before(minStart) {
		return nil, 0, &LeadTimeError{Requested: start, MinStart: minStart}
	}
	if err := banner.ValidatePlacement(in.Format, in.Position); err != nil {
		return nil, 0, err
	}
	duration, err := banner.ParseDuration(in.DurationDays)
	if err != nil {
		return nil, 0, err
	}
	zone, err := s.zones.Resolve(ctx, in.ZoneType, in.CountryID, in.RegionID)
	if err != nil {
		return nil, 0, err
	}
	return zone, duration, nil
}

func (s *Service) create(ctx context.Context, in CreateInput, actor Actor) (*models.Booking, error) {
	zone, duration, err := s.Validate(ctx, in)
	if err != nil {
		return nil, err
	}
	start := banner.Day(in.StartDate)

	b := &models.Booking{
		ID:           uuid.New(),
		ZoneID:       zone.ID,
		Position:     in.Position,
		Format:       in.Format,
		StartDate:    start,
		EndDate:      banner.EndDate(start, duration),
		DurationDays: duration.Days(),
		PriceUSD:     banner.PriceFor(zone.ZoneType, duration),
		ImageURL:     in.ImageURL,
		ClickURL:     in.ClickURL,
		Status:       banner.StatusPending,
		RequestedBy:  in.RequesterID,
	}

	err = s.bookings.Transaction(ctx, func(ctx context.Context) error {
		if err := s.reserve(ctx, b, nil); err != nil {
			return err
		}
		if err := s.bookings.Create(ctx, b); err != nil {
			return err
		}
		return s.record(ctx, actor, models.AuditActionCreate, b, "banner booking requested")
	})
	if err != nil {
		return nil, s.slotError(ctx, b, err)
	}

	s.log.Info("banner booking requested",
		zap.String("booking_id", b.ID.String()),
		zap.String("zone_id", b.ZoneID.String()),
		zap.String("position", string(b.Position)),
		zap.Stringer("range", b.Range()),
	)
	s.publish(ctx, events.BookingRequested, &actor.UserID, *b)
	return b, nil
}

// reserve locks the slot and fails when the booking's range overlaps an
// approved or active booking. Must run inside a transaction.
func (s *Service) reserve(ctx context.Context, b *models.Booking, excludeID *uuid.UUID) error {
	if err := s.bookings.LockSlot(ctx, b.ZoneID, b.Position); err != nil {
		return fmt.Errorf("lock slot: %w", err)
	}
	busy, err := s.bookings.HasOverlap(ctx, b.ZoneID, b.Position, b.Range(), excludeID)
	if err != nil {
		return fmt.Errorf("check availability: %w", err)
	}
	if busy {
		return ErrSlotUnavailable
	}
	return nil
}

// slotError turns overlap failures into a SlotUnavailableError carrying the
// current calendar, and translates repository errors.
func (s *Service) slotError(ctx context.Context, b *models.Booking, err error) error {
	switch {
	case errors.Is(err, ErrSlotUnavailable), errors.Is(err, repository.ErrOverlap):
		view, verr := s.Occupancy(ctx, OccupancyQuery{ZoneID: b.ZoneID, Position: b.Position})
		if verr != nil {
			s.log.Warn("failed to load occupancy for conflict", zap.Error(verr))
			return fmt.Errorf("%w: %s", ErrSlotUnavailable, b.Range())
		}
		return &SlotUnavailableError{
			Requested:     b.Range(),
			Occupied:      banner.Conflicts(view.Occupied, b.Range()),
			NextAvailable: view.NextAvailable,
		}
	case errors.Is(err, repository.ErrBookingNotFound):
		return ErrBookingNotFound
	default:
		return err
	}
}

// Get returns a booking visible to actor
func (s *Service) Get(ctx context.Context, id uuid.UUID, actor Actor) (*models.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if errors.Is(err, repository.ErrBookingNotFound) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin && b.RequestedBy != actor.UserID {
		return nil, ErrForbidden
	}
	return b, nil
}

// List returns bookings for the admin views
func (s *Service) List(ctx context.Context, filter repository.BookingFilter) ([]models.Booking, error) {
	return s.bookings.List(ctx, filter)
}

// Approve moves a pending booking to approved after re-checking availability
// under the slot lock. Approving an approved or active booking changes nothing.
func (s *Service) Approve(ctx context.Context, id uuid.UUID, actor Actor, notes *string) (*models.Booking, error) {
	var (
		b       *models.Booking
		changed bool
	)
	err := s.bookings.Transaction(ctx, func(ctx context.Context) error {
		var err error
		b, err = s.bookings.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if b.Status == banner.StatusApproved || b.Status == banner.StatusActive {
			return nil
		}
		if err := s.transition(b, banner.StatusApproved, actor, notes); err != nil {
			return err
		}
		if err := s.reserve(ctx, b, &b.ID); err != nil {
			return err
		}
		if err := s.bookings.Update(ctx, b); err != nil {
			return err
		}
		changed = true
		return s.record(ctx, actor, models.AuditActionApprove, b, "banner booking approved")
	})
	if err != nil {
		if b != nil {
			return nil, s.slotError(ctx, b, err)
		}
		return nil, s.slotError(ctx, &models.Booking{ID: id}, err)
	}
	if changed {
		s.metrics.BookingTransitions.WithLabelValues(string(banner.StatusPending), string(banner.StatusApproved)).Inc()
		s.publish(ctx, events.BookingApproved, &actor.UserID, *b)
		s.notifyReview(ctx, b, true)
	}
	return b, nil
}

// Reject moves a pending booking to rejected. Rejecting a rejected booking changes nothing.
func (s *Service) Reject(ctx context.Context, id uuid.UUID, actor Actor, notes *string) (*models.Booking, error) {
	var (
		b       *models.Booking
		changed bool
	)
	err := s.bookings.Transaction(ctx, func(ctx context.Context) error {
		var err error
		b, err = s.bookings.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if b.Status == banner.StatusRejected {
			return nil
		}
		if err := s.transition(b, banner.StatusRejected, actor, notes); err != nil {
			return err
		}
		if err := s.bookings.Update(ctx, b); err != nil {
			return err
		}
		changed = true
		return s.record(ctx, actor, models.AuditActionReject, b, "banner booking rejected")
	})
	if err != nil {
		return nil, s.slotError(ctx, &models.Booking{ID: id}, err)
	}
	if changed {
		s.metrics.BookingTransitions.WithLabelValues(string(banner.StatusPending), string(banner.StatusRejected)).Inc()
		s.publish(ctx, events.BookingRejected, &actor.UserID, *b)
		s.notifyReview(ctx, b, false)
	}
	return b, nil
}

// Cancel withdraws a non-terminal booking. Requesters may cancel their own
// bookings, admins any booking. Cancelling a cancelled booking changes nothing.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID, actor Actor) (*models.Booking, error) {
	var (
		b       *models.Booking
		from    banner.Status
		changed bool
	)
	err := s.bookings.Transaction(ctx, func(ctx context.Context) error {
		var err error
		b, err = s.bookings.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if !actor.IsAdmin && b.RequestedBy != actor.UserID {
			return ErrForbidden
		}
		if b.Status == banner.StatusCancelled {
			return nil
		}
		from = b.Status
		if b.Status, err = b.Status.Transition(banner.StatusCancelled); err != nil {
			return err
		}
		if err := s.bookings.Update(ctx, b); err != nil {
			return err
		}
		changed = true
		return s.record(ctx, actor, models.AuditActionCancel, b, "banner booking cancelled")
	})
	if err != nil {
		return nil, s.slotError(ctx, &models.Booking{ID: id}, err)
	}
	if changed {
		s.metrics.BookingTransitions.WithLabelValues(string(from), string(banner.StatusCancelled)).Inc()
		s.publish(ctx, events.BookingCancelled, &actor.UserID, *b)
	}
	return b, nil
}

// EditInput holds the admin-editable fields; nil fields are left unchanged
type EditInput struct {
	StartDate *time.Time
	EndDate   *time.Time
	Notes     *string
}

// Edit changes dates and notes. Changing only the start date shifts the end
// date so the booked length is kept. A new length must be a sold duration
// and reprices the booking. New dates must pass the availability check
// excluding the booking itself. Terminal bookings accept notes only.
func (s *Service) Edit(ctx context.Context, id uuid.UUID, in EditInput, actor Actor) (*models.Booking, error) {
	var (
		b            *models.Booking
		datesChanged bool
	)
	err := s.bookings.Transaction(ctx, func(ctx context.Context) error {
		var err error
		b, err = s.bookings.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}

		current := b.Range()
		next := current
		if in.StartDate != nil {
			next.Start = banner.Day(*in.StartDate)
			next.End = banner.AddDays(next.Start, current.Days()-1)
		}
		if in.EndDate != nil {
			next.End = banner.Day(*in.EndDate)
		}
		datesChanged = !next.Start.Equal(current.Start) || !next.End.Equal(current.End)

		if datesChanged {
			if b.Status.IsTerminal() {
				return fmt.Errorf("%w: %s bookings accept note edits only", ErrInvalidTransition, b.Status)
			}
			if next.End.Before(next.Start) {
				return ErrInvalidDates
			}
			duration, err := banner.ParseDuration(next.Days())
			if err != nil {
				return err
			}
			if duration.Days() != b.DurationDays {
				zone, err := s.zones.Get(ctx, b.ZoneID)
				if err != nil {
					return err
				}
				b.DurationDays = duration.Days()
				b.PriceUSD = banner.PriceFor(zone.ZoneType, duration)
			}
			b.StartDate, b.EndDate = next.Start, next.End
			if err := s.reserve(ctx, b, &b.ID); err != nil {
				return err
			}
		}
		if in.Notes != nil {
			b.AdminNotes = in.Notes
		}
		if !datesChanged && in.Notes == nil {
			return nil
		}
		if err := s.bookings.Update(ctx, b); err != nil {
			return err
		}
		return s.record(ctx, actor, models.AuditActionUpdate, b,
			fmt.Sprintf("banner booking edited: %s -> %s", current, b.Range()))
	})
	if err != nil {
		if b != nil {
			return nil, s.slotError(ctx, b, err)
		}
		return nil, s.slotError(ctx, &models.Booking{ID: id}, err)
	}
	if datesChanged {
		s.publish(ctx, events.BookingEdited, &actor.UserID, *b)
	}
	return b, nil
}

// ChangeStatus is the admin override. The state machine still applies and
// moving into approved or active re-runs the availability check. Setting the
// current status again changes nothing.
func (s *Service) ChangeStatus(ctx context.Context, id uuid.UUID, to banner.Status, actor Actor) (*models.Booking, error) {
	if _, err := banner.ParseStatus(string(to)); err != nil {
		return nil, err
	}
	switch to {
	case banner.StatusApproved:
		return s.Approve(ctx, id, actor, nil)
	case banner.StatusRejected:
		return s.Reject(ctx, id, actor, nil)
	case banner.StatusCancelled:
		return s.Cancel(ctx, id, actor)
	}

	var (
		b       *models.Booking
		from    banner.Status
		changed bool
	)
	err := s.bookings.Transaction(ctx, func(ctx context.Context) error {
		var err error
		b, err = s.bookings.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if b.Status == to {
			return nil
		}
		from = b.Status
		if b.Status, err = b.Status.Transition(to); err != nil {
			return err
		}
		if to.Occupies() {
			if err := s.reserve(ctx, b, &b.ID); err != nil {
				return err
			}
		}
		if err := s.bookings.Update(ctx, b); err != nil {
			return err
		}
		changed = true
		return s.record(ctx, actor, models.AuditActionStatus, b,
			fmt.Sprintf("banner booking status changed: %s -> %s", from, to))
	})
	if err != nil {
		if b != nil {
			return nil, s.slotError(ctx, b, err)
		}
		return nil, s.slotError(ctx, &models.Booking{ID: id}, err)
	}
	if changed {
		s.metrics.BookingTransitions.WithLabelValues(string(from), string(to)).Inc()
		typ := events.BookingActivated
		if to == banner.StatusExpired {
			typ = events.BookingExpired
		}
		s.publish(ctx, typ, &actor.UserID, *b)
	}
	return b, nil
}

// AdvanceResult reports the bookings moved by AdvanceSchedule
type AdvanceResult struct {
	Activated []models.Booking
	Expired   []models.Booking
}

// AdvanceSchedule activates approved bookings whose start date has arrived
// and expires active bookings whose end date has passed, as of now in the
// booking time zone. Activation runs first so a booking that was never
// activated and has already ended is expired in the same run.
func (s *Service) AdvanceSchedule(ctx context.Context, now time.Time) (*AdvanceResult, error) {
	today := banner.Today(now, s.loc)
	res := &AdvanceResult{}

	err := s.bookings.Transaction(ctx, func(ctx context.Context) error {
		var err error
		if res.Activated, err = s.bookings.ActivateDue(ctx, today); err != nil {
			return fmt.Errorf("activate bookings: %w", err)
		}
		if res.Expired, err = s.bookings.ExpireDue(ctx, today); err != nil {
			return fmt.Errorf("expire bookings: %w", err)
		}
		if len(res.Activated) == 0 && len(res.Expired) == 0 {
			return nil
		}
		meta, _ := json.Marshal(map[string]any{
			"date":      today.Format(banner.DateLayout),
			"activated": len(res.Activated),
			"expired":   len(res.Expired),
		})
		return s.audit.Create(ctx, &models.CreateAuditLogRequest{
			Action:      models.AuditActionAdvance,
			EntityType:  "booking",
			EntityID:    today.Format(banner.DateLayout),
			Description: "scheduled booking transitions",
			Metadata:    string(meta),
		})
	})
	if err != nil {
		s.metrics.ScheduledRunsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	s.metrics.ScheduledRunsTotal.WithLabelValues("ok").Inc()
	s.metrics.BookingTransitions.WithLabelValues(string(banner.StatusApproved), string(banner.StatusActive)).Add(float64(len(res.Activated)))
	s.metrics.BookingTransitions.WithLabelValues(string(banner.StatusActive), string(banner.StatusExpired)).Add(float64(len(res.Expired)))
	for _, b := range res.Activated {
		s.publish(ctx, events.BookingActivated, nil, b)
	}
	for _, b := range res.Expired {
		s.publish(ctx, events.BookingExpired, nil, b)
	}

	s.log.Info("advanced booking schedule",
		zap.String("date", today.Format(banner.DateLayout)),
		zap.Int("activated", len(res.Activated)),
		zap.Int("expired", len(res.Expired)),
	)
	return res, nil
}

// transition applies a review decision to b
func (s *Service) transition(b *models.Booking, to banner.Status, actor Actor, notes *string) error {
	next, err := b.Status.Transition(to)
	if err != nil {
		return err
	}
	now := s.now()
	b.Status = next
	b.ReviewedBy = &actor.UserID
	b.ReviewedAt = &now
	if notes != nil {
		b.AdminNotes = notes
	}
	return nil
}

func (s *Service) record(ctx context.Context, actor Actor, action models.AuditAction, b *models.Booking, description string) error {
	meta, err := json.Marshal(map[string]any{
		"zone_id":    b.ZoneID,
		"position":   b.Position,
		"start_date": b.StartDate.Format(banner.DateLayout),
		"end_date":   b.EndDate.Format(banner.DateLayout),
		"status":     b.Status,
		"price_usd":  b.PriceUSD,
	})
	if err != nil {
		return err
	}
	var userID *uuid.UUID
	if actor.UserID != uuid.Nil {
		userID = &actor.UserID
	}
	return s.audit.Create(ctx, &models.CreateAuditLogRequest{
		UserID:      userID,
		Action:      action,
		EntityType:  "booking",
		EntityID:    b.ID.String(),
		Description: description,
		Metadata:    string(meta),
		IPAddress:   actor.IPAddress,
		UserAgent:   actor.UserAgent,
	})
}

func (s *Service) publish(ctx context.Context, typ events.Type, actorID *uuid.UUID, b models.Booking) {
	e := events.Event{
		Type:       typ,
		BookingID:  b.ID,
		ZoneID:     b.ZoneID,
		Position:   string(b.Position),
		Status:     string(b.Status),
		StartDate:  b.StartDate.Format(banner.DateLayout),
		EndDate:    b.EndDate.Format(banner.DateLayout),
		ActorID:    actorID,
		OccurredAt: s.now().UTC(),
	}
	if err := s.events.Publish(ctx, e); err != nil {
		s.log.Warn("failed to publish booking event",
			zap.String("type", string(typ)),
			zap.String("booking_id", b.ID.String()),
			zap.Error(err),
		)
	}
}

func (s *Service) notifyReview(ctx context.Context, b *models.Booking, approved bool) {
	user, err := s.users.GetByID(ctx, b.RequestedBy)
	if err != nil || user.Email == nil || *user.Email == "" {
		return
	}
	zoneName := b.ZoneID.String()
	if zone, err := s.zones.Get(ctx, b.ZoneID); err == nil {
		zoneName = zone.Name
	}
	review := email.Review{
		To:        *user.Email,
		Username:  user.Username,
		BookingID: b.ID.String(),
		ZoneName:  zoneName,
		Position:  string(b.Position),
		StartDate: b.StartDate.Format(banner.DateLayout),
		EndDate:   b.EndDate.Format(banner.DateLayout),
		PriceUSD:  b.PriceUSD,
		Approved:  approved,
	}
	if b.AdminNotes != nil {
		review.Notes = *b.AdminNotes
	}
	if err := s.notifier.SendBookingReviewed(ctx, review); err != nil {
		s.log.Warn("failed to send review notification",
			zap.String("booking_id", b.ID.String()),
			zap.Error(err),
		)
	}
}
