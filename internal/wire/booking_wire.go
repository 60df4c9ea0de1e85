package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Every booking route needs a session; ownership is checked per booking.
	r.Route("/api/bookings", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Post("/", bookingHandler.CreateBooking)
		r.Get("/", bookingHandler.ListBookings)
		r.Get("/{id}", bookingHandler.GetBooking)
		r.Patch("/{id}", bookingHandler.UpdateBooking)
	})
}
