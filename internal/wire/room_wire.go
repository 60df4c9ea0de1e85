package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRoom(
	r chi.Router,
	roomHandler *adaptor.RoomHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/rooms", roomHandler.ListRooms)
	r.Get("/api/rooms/{id}", roomHandler.GetRoom)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/rooms", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Superuser(log))

		r.Post("/", roomHandler.CreateRoom)
		r.Patch("/{id}", roomHandler.UpdateRoom)
		r.Delete("/{id}", roomHandler.DeleteRoom)
	})
}
