package banner

import (
	"errors"
	"fmt"
)

// Status is a booking's position in its lifecycle.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusActive    Status = "active"
	StatusExpired   Status = "expired"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

// ErrInvalidStatus is returned for unknown status strings.
var ErrInvalidStatus = errors.New("invalid booking status")

// ErrInvalidTransition is returned when a status change is not allowed.
var ErrInvalidTransition = errors.New("invalid booking status transition")

// transitions is the complete lifecycle graph. Anything not listed is illegal.
var transitions = map[Status][]Status{
	StatusPending:  {StatusApproved, StatusRejected, StatusCancelled},
	StatusApproved: {StatusActive, StatusCancelled},
	StatusActive:   {StatusExpired, StatusCancelled},
}

// OccupyingStatuses are the statuses that hold a zone/position for their dates.
var OccupyingStatuses = []Status{StatusApproved, StatusActive}

// ParseStatus validates s as a booking status.
func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusPending, StatusApproved, StatusActive, StatusExpired, StatusRejected, StatusCancelled:
		return st, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// IsTerminal reports whether no further transitions leave s.
func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// Occupies reports whether a booking in status s blocks its slot.
func (s Status) Occupies() bool {
	return s == StatusApproved || s == StatusActive
}

// CanTransition reports whether moving from s to next is allowed.
func (s Status) CanTransition(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Transition returns next if the lifecycle allows it.
func (s Status) Transition(next Status) (Status, error) {
	if !s.CanTransition(next) {
		return s, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, next)
	}
	return next, nil
}

// StatusStrings converts statuses for use in SQL array parameters.
func StatusStrings(statuses []Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
