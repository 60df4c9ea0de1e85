package usecase

import (
	"context"
	"strconv"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/apperror"
	"hotel-booking/pkg/database"
	"hotel-booking/pkg/events"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// maxPrice is the largest value a NUMERIC(7,2) column holds.
var maxPrice = decimal.RequireFromString("99999.99")

type RoomService interface {
	ListRooms(ctx context.Context, req *request.ListRoomsRequest) (*response.PaginatedResponse[response.RoomResponse], error)
	GetRoom(ctx context.Context, roomID string) (*response.RoomResponse, error)
	CreateRoom(ctx context.Context, req *request.CreateRoomRequest) (*response.RoomResponse, error)
	UpdateRoom(ctx context.Context, roomID string, req *request.UpdateRoomRequest) (*response.RoomResponse, error)
	// DeleteRoom fails with RoomInUse while the room has an active booking
	// ending after today.
	DeleteRoom(ctx context.Context, roomID string) error
}

type roomService struct {
	repo         *repository.Repository
	availability AvailabilityService
	events       events.Publisher
	log          *zap.Logger
	now          func() time.Time
}

func NewRoomService(repo *repository.Repository, availability AvailabilityService, publisher events.Publisher, log *zap.Logger) RoomService {
	return &roomService{
		repo:         repo,
		availability: availability,
		events:       publisher,
		log:          log.With(zap.String("service", "room")),
		now:          time.Now,
	}
}

// roomOrderAliases maps accepted order_by spellings to catalog orderings.
var roomOrderAliases = map[string]string{
	"spots":  "capacity",
	"-spots": "-capacity",
}

func (s *roomService) ListRooms(ctx context.Context, req *request.ListRoomsRequest) (*response.PaginatedResponse[response.RoomResponse], error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("List rooms validation failed", zap.Any("errors", errs))
		return nil, apperror.Validation(msgValidationFailed, errs)
	}

	page := req.PaginatedRequest.Normalized()
	query := repository.RoomQuery{
		OrderBy: req.OrderBy,
		Limit:   page.Limit,
		Offset:  page.Offset,
	}
	if alias, ok := roomOrderAliases[req.OrderBy]; ok {
		query.OrderBy = alias
	}
	if !repository.ValidRoomOrdering(query.OrderBy) {
		return nil, apperror.Validation(msgValidationFailed, map[string]string{"order_by": "Unsupported ordering"})
	}

	var err error
	if query.PriceGTE, err = parseDecimal(req.PriceGTE); err != nil {
		return nil, apperror.Validation(msgValidationFailed, map[string]string{"price_gte": "Must be a number"})
	}
	if query.PriceLTE, err = parseDecimal(req.PriceLTE); err != nil {
		return nil, apperror.Validation(msgValidationFailed, map[string]string{"price_lte": "Must be a number"})
	}
	if query.CapacityGTE, err = parseInt(req.CapacityGTE); err != nil {
		return nil, apperror.Validation(msgValidationFailed, map[string]string{"capacity_gte": "Must be a whole number"})
	}
	if query.CapacityLTE, err = parseInt(req.CapacityLTE); err != nil {
		return nil, apperror.Validation(msgValidationFailed, map[string]string{"capacity_lte": "Must be a whole number"})
	}

	// Availability only applies when the caller asked about dates.
	if req.Checkin != "" || req.Checkout != "" {
		checkin, err := parseOptionalDate(req.Checkin)
		if err != nil {
			return nil, apperror.Validation(msgValidationFailed, map[string]string{"checkin": "Must be a date in YYYY-MM-DD format"})
		}
		checkout, err := parseOptionalDate(req.Checkout)
		if err != nil {
			return nil, apperror.Validation(msgValidationFailed, map[string]string{"checkout": "Must be a date in YYYY-MM-DD format"})
		}

		rng, err := s.availability.Window(checkin, checkout)
		if err != nil {
			return nil, err
		}
		if query.ExcludeIDs, err = s.availability.ExcludedRooms(ctx, rng); err != nil {
			return nil, serviceError(err, "list rooms")
		}
	}

	rooms, err := s.repo.Room.FindAll(ctx, query)
	if err != nil {
		return nil, serviceError(err, "list rooms")
	}

	total, err := s.repo.Room.CountAll(ctx, query)
	if err != nil {
		return nil, serviceError(err, "count rooms")
	}

	return response.NewPaginatedResponse(response.RoomsToResponse(rooms), page.Limit, page.Offset, total), nil
}

func (s *roomService) GetRoom(ctx context.Context, roomID string) (*response.RoomResponse, error) {
	id, err := uuid.Parse(roomID)
	if err != nil {
		return nil, apperror.NotFound("room")
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil {
		return nil, serviceError(err, "get room")
	}
	if room == nil {
		return nil, apperror.NotFound("room")
	}

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) CreateRoom(ctx context.Context, req *request.CreateRoomRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create room validation failed", zap.Any("errors", errs))
		return nil, apperror.Validation(msgValidationFailed, errs)
	}

	roomType, err := entity.ParseRoomType(req.Type)
	if err != nil {
		return nil, apperror.Validation(msgValidationFailed, map[string]string{"type": "Must be one of: ECONOMIC, STANDARD, PREMIUM, LUXURY"})
	}
	if msg := checkPrice(*req.Price); msg != "" {
		return nil, apperror.Validation(msgValidationFailed, map[string]string{"price": msg})
	}

	now := s.now()
	room := &entity.Room{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Type:     roomType,
		Capacity: req.Capacity,
		Price:    req.Price.Round(2),
	}

	if err := s.repo.Room.Create(ctx, room); err != nil {
		return nil, serviceError(err, "create room")
	}

	s.log.Info("Room created",
		zap.String("room_id", room.ID.String()),
		zap.String("type", room.Type.String()),
	)

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) UpdateRoom(ctx context.Context, roomID string, req *request.UpdateRoomRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperror.Validation(msgValidationFailed, errs)
	}
	if req.Price != nil {
		if msg := checkPrice(*req.Price); msg != "" {
			return nil, apperror.Validation(msgValidationFailed, map[string]string{"price": msg})
		}
	}

	id, err := uuid.Parse(roomID)
	if err != nil {
		return nil, apperror.NotFound("room")
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil {
		return nil, serviceError(err, "get room")
	}
	if room == nil {
		return nil, apperror.NotFound("room")
	}

	if req.Capacity != nil {
		room.Capacity = *req.Capacity
	}
	if req.Price != nil {
		room.Price = req.Price.Round(2)
	}
	room.UpdatedAt = s.now()

	if err := s.repo.Room.Update(ctx, room); err != nil {
		return nil, serviceError(err, "update room")
	}

	s.log.Info("Room updated", zap.String("room_id", roomID))

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) DeleteRoom(ctx context.Context, roomID string) error {
	id, err := uuid.Parse(roomID)
	if err != nil {
		return apperror.NotFound("room")
	}

	today := entity.DateOf(s.now())
	err = database.WithTx(ctx, s.repo.DB, func(tx pgx.Tx) error {
		room, err := s.repo.Room.LockByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if room == nil {
			return apperror.NotFound("room")
		}

		blocking, err := s.repo.Booking.CountBlockingRoomDelete(ctx, tx, id, today)
		if err != nil {
			return err
		}
		if blocking > 0 {
			return apperror.RoomInUse("room has active bookings and can not be deleted")
		}

		return s.repo.Room.Delete(ctx, tx, id)
	})
	if err != nil {
		s.log.Warn("Delete room failed", zap.Error(err), zap.String("room_id", roomID))
		return serviceError(err, "delete room")
	}

	ev := events.New(events.RoomDeleted)
	ev.RoomID = &id
	publish(ctx, s.events, s.log, ev)

	s.log.Info("Room deleted", zap.String("room_id", roomID))
	return nil
}

func checkPrice(price decimal.Decimal) string {
	switch {
	case price.IsNegative():
		return "Must be zero or greater"
	case price.GreaterThan(maxPrice):
		return "Maximum value is " + maxPrice.StringFixed(2)
	case !price.Equal(price.Round(2)):
		return "At most 2 decimal places"
	}
	return ""
}

func parseDecimal(s string) (*decimal.Decimal, error) {
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func parseInt(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func parseOptionalDate(s string) (*entity.Date, error) {
	if s == "" {
		return nil, nil
	}
	d, err := entity.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
