package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type RoomResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Capacity  int       `json:"capacity"`
	Price     string    `json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func RoomToResponse(room *entity.Room) RoomResponse {
	return RoomResponse{
		ID:        room.ID.String(),
		Type:      room.Type.String(),
		Capacity:  room.Capacity,
		Price:     room.Price.StringFixed(2),
		CreatedAt: room.CreatedAt,
		UpdatedAt: room.UpdatedAt,
	}
}

func RoomsToResponse(rooms []*entity.Room) []RoomResponse {
	out := make([]RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		out = append(out, RoomToResponse(room))
	}
	return out
}
