package entity

import "github.com/google/uuid"

// DateRange is the half-open stay interval [Checkin, Checkout).
type DateRange struct {
	Checkin  Date
	Checkout Date
}

func NewDateRange(checkin, checkout Date) DateRange {
	return DateRange{Checkin: checkin, Checkout: checkout}
}

// Valid reports whether the range is non-empty.
func (r DateRange) Valid() bool {
	return r.Checkout.After(r.Checkin)
}

// Nights is the number of nights covered by a valid range.
func (r DateRange) Nights() int {
	return int(r.Checkout.Sub(r.Checkin.Time).Hours() / 24)
}

// Overlaps reports whether two non-empty ranges share at least one day.
// A checkout on the same day as the other range's checkin does not overlap.
// The same predicate is used by BookingRepository.FindOverlapping in SQL.
func (r DateRange) Overlaps(o DateRange) bool {
	return r.Checkin.Before(o.Checkout) && r.Checkout.After(o.Checkin)
}

// FilterOverlapping returns the active bookings overlapping rng,
// restricted to roomID when it is non-nil.
func FilterOverlapping(bookings []*Booking, rng DateRange, roomID *uuid.UUID) []*Booking {
	var matched []*Booking
	for _, b := range bookings {
		if !b.Active {
			continue
		}
		if roomID != nil && (b.RoomID == nil || *b.RoomID != *roomID) {
			continue
		}
		if rng.Overlaps(b.Range()) {
			matched = append(matched, b)
		}
	}
	return matched
}
