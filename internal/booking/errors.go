package booking

import (
	"bannerdesk/internal/banner"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrSlotUnavailable means the dates overlap an approved or active booking
	ErrSlotUnavailable = errors.New("dates already reserved")
	// ErrInvalidFormat means the position does not accept the banner format
	ErrInvalidFormat = banner.ErrInvalidFormat
	// ErrInvalidDuration means the duration is not one of the sold durations
	ErrInvalidDuration = banner.ErrInvalidDuration
	// ErrLeadTimeViolation means the start date is before the minimum start date
	ErrLeadTimeViolation = errors.New("start date is too soon")
	// ErrZoneNotFound means no active zone matches; advertising is not offered there
	ErrZoneNotFound = errors.New("advertising is not offered here")
	// ErrUploadFailure means the banner image could not be stored
	ErrUploadFailure = errors.New("banner upload failed")
	// ErrInvalidTransition means the status change is not allowed from the current status
	ErrInvalidTransition = banner.ErrInvalidTransition
	// ErrInvalidDates means an edited range ends before it starts
	ErrInvalidDates = errors.New("end date is before start date")
	// ErrBookingNotFound means there is no booking with the given id
	ErrBookingNotFound = errors.New("booking not found")
	// ErrForbidden means the actor may not act on the booking
	ErrForbidden = errors.New("not allowed to modify this booking")
)

// LeadTimeError reports the earliest accepted start date
type LeadTimeError struct {
	Requested time.Time
	MinStart  time.Time
}

func (e *LeadTimeError) Error() string {
	return fmt.Sprintf("start date %s is too soon, the earliest possible start date is %s",
		e.Requested.Format(banner.DateLayout), e.MinStart.Format(banner.DateLayout))
}

func (e *LeadTimeError) Unwrap() error { return ErrLeadTimeViolation }

// SlotUnavailableError carries the calendar shown to the user as remediation
type SlotUnavailableError struct {
	Requested     banner.DateRange
	Occupied      []banner.Occupancy
	NextAvailable time.Time
}

func (e *SlotUnavailableError) Error() string {
	return fmt.Sprintf("dates %s already reserved, next available start date is %s",
		e.Requested, e.NextAvailable.Format(banner.DateLayout))
}

func (e *SlotUnavailableError) Unwrap() error { return ErrSlotUnavailable }

// Code returns the stable machine-readable code for err
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrSlotUnavailable):
		return "slot_unavailable"
	case errors.Is(err, ErrInvalidFormat):
		return "invalid_format"
	case errors.Is(err, ErrInvalidDuration):
		return "invalid_duration"
	case errors.Is(err, ErrLeadTimeViolation):
		return "lead_time_violation"
	case errors.Is(err, ErrZoneNotFound):
		return "zone_not_found"
	case errors.Is(err, banner.ErrInvalidZoneType):
		return "invalid_zone_type"
	case errors.Is(err, ErrUploadFailure):
		return "upload_failure"
	case errors.Is(err, ErrInvalidTransition):
		return "invalid_transition"
	case errors.Is(err, ErrInvalidDates):
		return "invalid_dates"
	case errors.Is(err, ErrBookingNotFound):
		return "booking_not_found"
	case errors.Is(err, ErrForbidden):
		return "forbidden"
	default:
		return "unexpected_error"
	}
}
