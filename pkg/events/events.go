package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Type names a lifecycle event.
type Type string

const (
	BookingCreated     Type = "booking.created"
	BookingActivated   Type = "booking.activated"
	BookingDeactivated Type = "booking.deactivated"
	RoomDeleted        Type = "room.deleted"
)

// Event is the JSON payload published for booking and room changes.
// Dates use the YYYY-MM-DD form.
type Event struct {
	ID         uuid.UUID  `json:"id"`
	Type       Type       `json:"type"`
	OccurredAt time.Time  `json:"occurred_at"`
	BookingID  *uuid.UUID `json:"booking_id,omitempty"`
	RoomID     *uuid.UUID `json:"room_id,omitempty"`
	UserID     *uuid.UUID `json:"user_id,omitempty"`
	Checkin    string     `json:"checkin,omitempty"`
	Checkout   string     `json:"checkout,omitempty"`
	Active     *bool      `json:"active,omitempty"`
}

// New stamps an event of type t with a fresh id and the current time.
func New(t Type) Event {
	return Event{ID: uuid.New(), Type: t, OccurredAt: time.Now().UTC()}
}

// Key is the partition key: the room id, so events of one room stay ordered.
func (e Event) Key() string {
	if e.RoomID != nil {
		return e.RoomID.String()
	}
	return e.ID.String()
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// Nop discards events. It is used when no brokers are configured.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
func (Nop) Close() error                         { return nil }
