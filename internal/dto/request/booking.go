package request

type CreateBookingRequest struct {
	RoomID   string `json:"room" validate:"required,uuid"`
	Checkin  string `json:"checkin" validate:"required,date"`
	Checkout string `json:"checkout" validate:"required,date"`
}

// UpdateBookingRequest only honours Active. Room and dates are read-only
// after creation and are ignored when sent.
type UpdateBookingRequest struct {
	Active   *bool   `json:"active"`
	RoomID   *string `json:"room,omitempty"`
	Checkin  *string `json:"checkin,omitempty"`
	Checkout *string `json:"checkout,omitempty"`
}
