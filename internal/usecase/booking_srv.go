package usecase

import (
	"context"
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
	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, actorID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	// SetActive changes only the active flag; other fields of req are ignored.
	SetActive(ctx context.Context, scope Scope, bookingID string, req *request.UpdateBookingRequest) (*response.BookingResponse, error)
	ListBookings(ctx context.Context, scope Scope, page request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetBooking(ctx context.Context, scope Scope, bookingID string) (*response.BookingResponse, error)
}

type bookingService struct {
	repo    *repository.Repository
	overlap OverlapEngine
	events  events.Publisher
	log     *zap.Logger
	now     func() time.Time
}

func NewBookingService(repo *repository.Repository, overlap OverlapEngine, publisher events.Publisher, log *zap.Logger) BookingService {
	return &bookingService{
		repo:    repo,
		overlap: overlap,
		events:  publisher,
		log:     log.With(zap.String("service", "booking")),
		now:     time.Now,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, actorID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, apperror.Validation(msgValidationFailed, errs)
	}

	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return nil, apperror.Validation(msgValidationFailed, map[string]string{"room": "Must be a valid UUID"})
	}
	checkin, err := entity.ParseDate(req.Checkin)
	if err != nil {
		return nil, apperror.Validation(msgValidationFailed, map[string]string{"checkin": "Must be a date in YYYY-MM-DD format"})
	}
	checkout, err := entity.ParseDate(req.Checkout)
	if err != nil {
		return nil, apperror.Validation(msgValidationFailed, map[string]string{"checkout": "Must be a date in YYYY-MM-DD format"})
	}

	rng := entity.NewDateRange(checkin, checkout)
	if !rng.Valid() {
		return nil, apperror.InvalidRange(msgCheckoutAfter)
	}

	now := s.now()
	booking := &entity.Booking{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		RoomID:   &roomID,
		UserID:   &actorID,
		Checkin:  checkin,
		Checkout: checkout,
		Active:   true,
	}

	// The room row lock serializes every writer of this room's bookings
	// until commit.
	err = database.WithTx(ctx, s.repo.DB, func(tx pgx.Tx) error {
		room, err := s.repo.Room.LockByID(ctx, tx, roomID)
		if err != nil {
			return err
		}
		if room == nil {
			return apperror.NotFound("room")
		}

		conflicts, err := s.overlap.Conflicts(ctx, tx, rng, roomID, nil)
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return apperror.Conflict(msgDateBooked)
		}

		return s.repo.Booking.Create(ctx, tx, booking)
	})
	if err != nil {
		s.log.Warn("Create booking failed",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
			zap.Stringer("checkin", checkin),
			zap.Stringer("checkout", checkout),
		)
		return nil, serviceError(err, "create booking")
	}

	publish(ctx, s.events, s.log, bookingEvent(events.BookingCreated, booking))

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("room_id", roomID.String()),
		zap.String("user_id", actorID.String()),
		zap.Int("nights", rng.Nights()),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) SetActive(ctx context.Context, scope Scope, bookingID string, req *request.UpdateBookingRequest) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, apperror.NotFound("booking")
	}

	current, err := s.findScoped(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if req.Active == nil {
		resp := response.BookingToResponse(current)
		return &resp, nil
	}
	active := *req.Active
	owner := scope.OwnerFilter()

	var updated *entity.Booking
	var changed bool
	err = database.WithTx(ctx, s.repo.DB, func(tx pgx.Tx) error {
		// Room before booking: same lock order as create and room delete.
		if active && current.RoomID != nil {
			if _, err := s.repo.Room.LockByID(ctx, tx, *current.RoomID); err != nil {
				return err
			}
		}

		locked, err := s.repo.Booking.LockByID(ctx, tx, id, owner)
		if err != nil {
			return err
		}
		if locked == nil {
			return apperror.NotFound("booking")
		}

		if active && !locked.Active && locked.RoomID != nil {
			conflicts, err := s.overlap.Conflicts(ctx, tx, locked.Range(), *locked.RoomID, &locked.ID)
			if err != nil {
				return err
			}
			if len(conflicts) > 0 {
				return apperror.Conflict(msgDateBooked)
			}
		}

		changed = locked.Active != active
		updated, err = s.repo.Booking.SetActive(ctx, tx, id, active)
		return err
	})
	if err != nil {
		s.log.Warn("Update booking status failed",
			zap.Error(err),
			zap.String("booking_id", bookingID),
			zap.Bool("active", active),
		)
		return nil, serviceError(err, "update booking")
	}

	if changed {
		t := events.BookingDeactivated
		if active {
			t = events.BookingActivated
		}
		publish(ctx, s.events, s.log, bookingEvent(t, updated))
	}

	s.log.Info("Booking status updated",
		zap.String("booking_id", bookingID),
		zap.Bool("active", active),
		zap.Bool("changed", changed),
	)

	resp := response.BookingToResponse(updated)
	return &resp, nil
}

func (s *bookingService) ListBookings(ctx context.Context, scope Scope, page request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	page = page.Normalized()
	owner := scope.OwnerFilter()

	bookings, err := s.repo.Booking.FindAll(ctx, owner, page.Limit, page.Offset)
	if err != nil {
		return nil, serviceError(err, "list bookings")
	}

	total, err := s.repo.Booking.CountAll(ctx, owner)
	if err != nil {
		return nil, serviceError(err, "count bookings")
	}

	return response.NewPaginatedResponse(response.BookingsToResponse(bookings), page.Limit, page.Offset, total), nil
}

func (s *bookingService) GetBooking(ctx context.Context, scope Scope, bookingID string) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, apperror.NotFound("booking")
	}

	booking, err := s.findScoped(ctx, scope, id)
	if err != nil {
		return nil, err
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

// findScoped loads a booking visible to scope. Bookings outside the scope
// are reported as missing.
func (s *bookingService) findScoped(ctx context.Context, scope Scope, id uuid.UUID) (*entity.Booking, error) {
	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, serviceError(err, "get booking")
	}
	if booking == nil {
		return nil, apperror.NotFound("booking")
	}
	if owner := scope.OwnerFilter(); owner != nil && !booking.OwnedBy(*owner) {
		s.log.Debug("Booking outside scope",
			zap.String("booking_id", id.String()),
			zap.String("actor_id", scope.ActorID.String()),
		)
		return nil, apperror.NotFound("booking")
	}
	return booking, nil
}
