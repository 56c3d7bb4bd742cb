// Package events publishes booking lifecycle changes for other services
package events

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Type names a lifecycle change
type Type string

const (
	BookingRequested Type = "booking.requested"
	BookingApproved  Type = "booking.approved"
	BookingRejected  Type = "booking.rejected"
	BookingCancelled Type = "booking.cancelled"
	BookingActivated Type = "booking.activated"
	BookingExpired   Type = "booking.expired"
	BookingEdited    Type = "booking.edited"
)

// Event is the payload published for a booking change
type Event struct {
	Type       Type       `json:"type"`
	BookingID  uuid.UUID  `json:"booking_id"`
	ZoneID     uuid.UUID  `json:"zone_id"`
	Position   string     `json:"position"`
	Status     string     `json:"status"`
	StartDate  string     `json:"start_date"`
	EndDate    string     `json:"end_date"`
	ActorID    *uuid.UUID `json:"actor_id,omitempty"`
	OccurredAt time.Time  `json:"occurred_at"`
}

// Publisher delivers events
type Publisher interface {
	Publish(ctx context.Context, events ...Event) error
	Close() error
}

// NopPublisher discards events
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, ...Event) error { return nil }
func (NopPublisher) Close() error                            { return nil }

// Recorder keeps published events in memory
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) Publish(_ context.Context, events ...Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, events...)
	return nil
}

func (r *Recorder) Close() error { return nil }

// Events returns a copy of everything published so far
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Types returns the published event types in order
func (r *Recorder) Types() []Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Type, len(r.events))
	for i, e := range r.events {
		out[i] = e.Type
	}
	return out
}
