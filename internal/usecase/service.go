package usecase

import (
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/events"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth         AuthService
	User         UserService
	Room         RoomService
	Booking      BookingService
	Availability AvailabilityService
	Overlap      OverlapEngine
}

func NewService(repo *repository.Repository, publisher events.Publisher, config *utils.Config, log *zap.Logger) *Service {
	if publisher == nil {
		publisher = events.Nop{}
	}

	overlap := NewOverlapService(repo.Booking, log)
	availability := NewAvailabilityService(overlap, log)

	return &Service{
		Auth:         NewAuthService(repo, config, log),
		User:         NewUserService(repo.User, log),
		Room:         NewRoomService(repo, availability, publisher, log),
		Booking:      NewBookingService(repo, overlap, publisher, log),
		Availability: availability,
		Overlap:      overlap,
	}
}
