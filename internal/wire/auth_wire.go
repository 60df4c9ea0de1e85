package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireAuth registers under /api/accounts.
func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Anonymous only
	r.Group(func(r chi.Router) {
		r.Use(middleware.RejectAuthenticated(repo.Session, log))
		r.Post("/signup", authHandler.Signup)
		r.Post("/login", authHandler.Login)
	})

	r.With(middleware.AuthSession(repo.Session, repo.User, log)).Post("/logout", authHandler.Logout)
}
