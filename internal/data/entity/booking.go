package entity

import (
	"github.com/google/uuid"
)

type Booking struct {
	BaseNoDelete
	RoomID   *uuid.UUID `db:"room_id"`
	UserID   *uuid.UUID `db:"user_id"`
	Checkin  Date       `db:"checkin"`
	Checkout Date       `db:"checkout"`
	Active   bool       `db:"active"`
}

// Range returns the half-open stay interval of the booking.
func (b *Booking) Range() DateRange {
	return DateRange{Checkin: b.Checkin, Checkout: b.Checkout}
}

// OwnedBy reports whether userID is the booking's requester.
func (b *Booking) OwnedBy(userID uuid.UUID) bool {
	return b.UserID != nil && *b.UserID == userID
}
