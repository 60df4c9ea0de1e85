package adaptor

import (
	"context"
	"net/http"
	"time"

	"hotel-booking/pkg/database"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type HealthHandler struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewHealthHandler(db database.PgxIface, log *zap.Logger) *HealthHandler {
	return &HealthHandler{db: db, log: log.With(zap.String("handler", "health"))}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.log.Error("Database ping failed", zap.Error(err))
		utils.ResponseJSON(w, http.StatusServiceUnavailable, false, "database unavailable", nil, nil)
		return
	}

	utils.ResponseSuccess(w, "OK", map[string]string{"database": "up"})
}
