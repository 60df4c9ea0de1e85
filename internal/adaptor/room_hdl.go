package adaptor

import (
	"net/http"
	"net/url"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RoomHandler struct {
	service usecase.RoomService
	log     *zap.Logger
}

func NewRoomHandler(service usecase.RoomService, log *zap.Logger) *RoomHandler {
	return &RoomHandler{
		service: service,
		log:     log.With(zap.String("handler", "room")),
	}
}

// firstOf returns the first non-empty query value among keys.
func firstOf(query url.Values, keys ...string) string {
	for _, key := range keys {
		if v := query.Get(key); v != "" {
			return v
		}
	}
	return ""
}

// ListRooms handles GET /api/rooms
//
// Query: price_gte, price_lte, capacity_gte|spots_gte, capacity_lte|spots_lte,
// checkin, checkout, order_by, limit, offset.
func (h *RoomHandler) ListRooms(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.ListRoomsRequest{
		PriceGTE:    query.Get("price_gte"),
		PriceLTE:    query.Get("price_lte"),
		CapacityGTE: firstOf(query, "capacity_gte", "spots_gte"),
		CapacityLTE: firstOf(query, "capacity_lte", "spots_lte"),
		Checkin:     query.Get("checkin"),
		Checkout:    query.Get("checkout"),
		OrderBy:     query.Get("order_by"),
		PaginatedRequest: request.PaginatedRequest{
			Limit:  utils.ParseInt(query.Get("limit"), request.DefaultLimit),
			Offset: utils.ParseNonNegativeInt(query.Get("offset"), 0),
		},
	}

	rooms, err := h.service.ListRooms(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list rooms")
		return
	}

	utils.ResponseSuccess(w, "success", rooms)
}

// GetRoom handles GET /api/rooms/{id}
func (h *RoomHandler) GetRoom(w http.ResponseWriter, r *http.Request) {
	room, err := h.service.GetRoom(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get room")
		return
	}

	utils.ResponseSuccess(w, "success", room)
}

// ==================== ADMIN METHODS ====================

// CreateRoom handles POST /api/admin/rooms (superuser only)
func (h *RoomHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRoomRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	room, err := h.service.CreateRoom(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create room")
		return
	}

	utils.ResponseCreated(w, "success", room)
}

// UpdateRoom handles PATCH /api/admin/rooms/{id} (superuser only)
func (h *RoomHandler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateRoomRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	room, err := h.service.UpdateRoom(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update room")
		return
	}

	utils.ResponseSuccess(w, "success", room)
}

// DeleteRoom handles DELETE /api/admin/rooms/{id} (superuser only)
func (h *RoomHandler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteRoom(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete room")
		return
	}

	utils.ResponseSuccess(w, "Room deleted", nil)
}
