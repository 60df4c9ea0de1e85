package adaptor

import (
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/database"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	User    *UserHandler
	Room    *RoomHandler
	Booking *BookingHandler
	Health  *HealthHandler
}

func NewHandler(service *usecase.Service, db database.PgxIface, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		User:    NewUserHandler(service.User, log),
		Room:    NewRoomHandler(service.Room, log),
		Booking: NewBookingHandler(service.Booking, log),
		Health:  NewHealthHandler(db, log),
	}
}
