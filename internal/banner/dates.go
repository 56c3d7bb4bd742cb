package banner

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// LeadDays is the minimum number of days between today and a booking's start date.
const LeadDays = 3

// DateRange is an inclusive range of calendar days.
type DateRange struct {
	Start time.Time `json:"start_date"`
	End   time.Time `json:"end_date"`
}

// Day truncates t to midnight UTC of its calendar date in t's location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar day as observed in loc.
func Today(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return Day(now.In(loc))
}

// ParseDate parses a YYYY-MM-DD string into a calendar day.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// AddDays moves a calendar day by n days.
func AddDays(day time.Time, n int) time.Time {
	return Day(day).AddDate(0, 0, n)
}

// EndDate returns the last day of a booking starting on start, inclusive:
// a 7 day booking starting on the 1st ends on the 7th.
func EndDate(start time.Time, d Duration) time.Time {
	return AddDays(start, int(d)-1)
}

// MinStartDate returns the earliest start date accepted for a new booking.
func MinStartDate(now time.Time, loc *time.Location) time.Time {
	return AddDays(Today(now, loc), LeadDays)
}

// NewDateRange builds a range, rejecting an end before the start.
func NewDateRange(start, end time.Time) (DateRange, error) {
	r := DateRange{Start: Day(start), End: Day(end)}
	if r.End.Before(r.Start) {
		return DateRange{}, fmt.Errorf("end date %s is before start date %s",
			r.End.Format(DateLayout), r.Start.Format(DateLayout))
	}
	return r, nil
}

// Overlaps reports whether two inclusive ranges share at least one day.
func (r DateRange) Overlaps(o DateRange) bool {
	return !r.Start.After(o.End) && !r.End.Before(o.Start)
}

// Overlaps is the package-level form of DateRange.Overlaps.
func Overlaps(a, b DateRange) bool {
	return a.Overlaps(b)
}

// Days returns the number of calendar days covered by the range.
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

// Contains reports whether day falls inside the range.
func (r DateRange) Contains(day time.Time) bool {
	day = Day(day)
	return !day.Before(r.Start) && !day.After(r.End)
}

func (r DateRange) String() string {
	return fmt.Sprintf("[%s, %s]", r.Start.Format(DateLayout), r.End.Format(DateLayout))
}
