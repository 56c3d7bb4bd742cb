package banner

import (
	"time"

	"github.com/google/uuid"
)

// Occupancy is one booked range on a zone/position calendar.
type Occupancy struct {
	BookingID         uuid.UUID `json:"booking_id"`
	StartDate         time.Time `json:"start_date"`
	EndDate           time.Time `json:"end_date"`
	RequesterUsername string    `json:"requester_username"`
	Status            Status    `json:"status"`
}

// Range returns the occupied dates as a DateRange.
func (o Occupancy) Range() DateRange {
	return DateRange{Start: Day(o.StartDate), End: Day(o.EndDate)}
}

// NextAvailableDate returns the day after the latest occupied range that
// overlaps or follows today. Pending entries are ignored since they do not
// hold the slot. The result is never earlier than minStart.
func NextAvailableDate(entries []Occupancy, today, minStart time.Time) time.Time {
	today = Day(today)
	next := Day(minStart)
	for _, e := range entries {
		if !e.Status.Occupies() {
			continue
		}
		end := Day(e.EndDate)
		if end.Before(today) {
			continue
		}
		if candidate := AddDays(end, 1); candidate.After(next) {
			next = candidate
		}
	}
	return next
}

// Conflicts returns the occupying entries that overlap r.
func Conflicts(entries []Occupancy, r DateRange) []Occupancy {
	var out []Occupancy
	for _, e := range entries {
		if e.Status.Occupies() && e.Range().Overlaps(r) {
			out = append(out, e)
		}
	}
	return out
}
