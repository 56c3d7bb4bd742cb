package events

import (
	"bannerdesk/internal/config"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMessageKeyedByBooking(t *testing.T) {
	e := Event{
		Type:       BookingApproved,
		BookingID:  uuid.New(),
		ZoneID:     uuid.New(),
		Position:   "header",
		Status:     "approved",
		StartDate:  "2024-03-08",
		EndDate:    "2024-03-14",
		OccurredAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	msg, err := Message(e)
	require.NoError(t, err)
	assert.Equal(t, e.BookingID.String(), string(msg.Key))
	assert.Equal(t, e.OccurredAt, msg.Time)
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "booking.approved", string(msg.Headers[0].Value))

	var decoded Event
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, e, decoded)
}

func TestNewKafkaPublisherValidation(t *testing.T) {
	_, err := NewKafkaPublisher(config.EventsConfig{Topic: "topic"}, zap.NewNop())
	assert.Error(t, err)

	_, err = NewKafkaPublisher(config.EventsConfig{Brokers: []string{"localhost:9092"}}, zap.NewNop())
	assert.Error(t, err)

	p, err := NewKafkaPublisher(config.EventsConfig{Brokers: []string{"localhost:9092"}, Topic: "banner-bookings"}, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, p.Close())
	assert.ErrorIs(t, p.Publish(context.Background(), Event{Type: BookingExpired}), ErrPublisherClosed)
}

func TestNewKafkaPublisherWriterSettings(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.EventsConfig
		wantBatch time.Duration
		wantAsync bool
	}{
		{
			name:      "unset batch timeout",
			cfg:       config.EventsConfig{Brokers: []string{"localhost:9092"}, Topic: "banner-bookings"},
			wantBatch: 10 * time.Millisecond,
		},
		{
			name:      "configured async writer",
			cfg:       config.EventsConfig{Brokers: []string{"localhost:9092"}, Topic: "banner-bookings", BatchTimeout: 50 * time.Millisecond, Async: true},
			wantBatch: 50 * time.Millisecond,
			wantAsync: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewKafkaPublisher(tt.cfg, zap.NewNop())
			require.NoError(t, err)
			t.Cleanup(func() { _ = p.Close() })

			assert.Equal(t, tt.wantBatch, p.writer.BatchTimeout)
			assert.Equal(t, tt.wantAsync, p.writer.Async)
			assert.Equal(t, tt.wantAsync, p.writer.Completion != nil)
		})
	}
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	require.NoError(t, r.Publish(context.Background(), Event{Type: BookingRequested}, Event{Type: BookingApproved}))
	assert.Equal(t, []Type{BookingRequested, BookingApproved}, r.Types())
	assert.Len(t, r.Events(), 2)
}
