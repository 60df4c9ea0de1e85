package wire

import (
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/events"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp() *App {
	return Wiring(&repository.Repository{}, events.Nop{}, &utils.Config{}, zap.NewNop())
}

func TestRoutes(t *testing.T) {
	app := newTestApp()

	var routes []string
	err := chi.Walk(app.Router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes = append(routes, method+" "+strings.TrimSuffix(route, "/"))
		return nil
	})
	require.NoError(t, err)
	sort.Strings(routes)

	want := []string{
		"DELETE /api/admin/rooms/{id}",
		"GET /api/accounts/me",
		"GET /api/bookings",
		"GET /api/bookings/{id}",
		"GET /api/rooms",
		"GET /api/rooms/{id}",
		"GET /health",
		"PATCH /api/admin/rooms/{id}",
		"PATCH /api/bookings/{id}",
		"POST /api/accounts/login",
		"POST /api/accounts/logout",
		"POST /api/accounts/signup",
		"POST /api/admin/rooms",
		"POST /api/bookings",
	}
	for _, route := range want {
		assert.Contains(t, routes, route)
	}
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	app := newTestApp()

	for _, target := range []struct{ method, path string }{
		{http.MethodGet, "/api/bookings"},
		{http.MethodPost, "/api/bookings"},
		{http.MethodPatch, "/api/bookings/abc"},
		{http.MethodPost, "/api/admin/rooms"},
		{http.MethodDelete, "/api/admin/rooms/abc"},
		{http.MethodGet, "/api/accounts/me"},
		{http.MethodPost, "/api/accounts/logout"},
	} {
		rec := httptest.NewRecorder()
		app.Router.ServeHTTP(rec, httptest.NewRequest(target.method, target.path, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", target.method, target.path)
	}
}

func TestUnknownRouteIsJSON404(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestApp().Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}
