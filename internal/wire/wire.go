package wire

import (
	"net/http"

	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/events"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App holds the wired router.
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring builds services, handlers and routes.
func Wiring(repo *repository.Repository, publisher events.Publisher, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, publisher, config, logger)
	handler := adaptor.NewHandler(service, repo.DB, logger)

	return &App{
		Router:  setupRouter(handler, repo, config, logger),
		Service: service,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.App.AllowedOrigins))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "resource not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseJSON(w, http.StatusMethodNotAllowed, false, "method not allowed", nil, nil)
	})

	r.Route("/api/accounts", func(r chi.Router) {
		wireAuth(r, handler.Auth, repo, logger)
		wireUser(r, handler.User, repo, logger)
	})
	wireRoom(r, handler.Room, repo, logger)
	wireBooking(r, handler.Booking, repo, logger)

	r.Get("/health", handler.Health.Health)

	return r
}
