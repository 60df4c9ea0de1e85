package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type BookingResponse struct {
	ID        string      `json:"id"`
	RoomID    *string     `json:"room"`
	UserID    *string     `json:"user"`
	Checkin   entity.Date `json:"checkin"`
	Checkout  entity.Date `json:"checkout"`
	Active    bool        `json:"active"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func BookingToResponse(b *entity.Booking) BookingResponse {
	resp := BookingResponse{
		ID:        b.ID.String(),
		Checkin:   b.Checkin,
		Checkout:  b.Checkout,
		Active:    b.Active,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
	if b.RoomID != nil {
		id := b.RoomID.String()
		resp.RoomID = &id
	}
	if b.UserID != nil {
		id := b.UserID.String()
		resp.UserID = &id
	}
	return resp
}

func BookingsToResponse(bookings []*entity.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, BookingToResponse(b))
	}
	return out
}
