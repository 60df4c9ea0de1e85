package usecase

import (
	"context"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OverlapEngine finds active bookings intersecting a stay. Callers pass a
// valid range; the engine does not re-check it.
type OverlapEngine interface {
	FindOverlapping(ctx context.Context, rng entity.DateRange, roomID *uuid.UUID) ([]*entity.Booking, error)
	// Conflicts runs the same lookup for one room inside q, skipping the
	// booking exclude when non-nil.
	Conflicts(ctx context.Context, q database.Querier, rng entity.DateRange, roomID uuid.UUID, exclude *uuid.UUID) ([]*entity.Booking, error)
}

type overlapService struct {
	bookings repository.BookingRepository
	log      *zap.Logger
}

func NewOverlapService(bookings repository.BookingRepository, log *zap.Logger) OverlapEngine {
	return &overlapService{
		bookings: bookings,
		log:      log.With(zap.String("service", "overlap")),
	}
}

func (s *overlapService) FindOverlapping(ctx context.Context, rng entity.DateRange, roomID *uuid.UUID) ([]*entity.Booking, error) {
	found, err := s.bookings.FindOverlapping(ctx, nil, rng, roomID, nil)
	if err != nil {
		return nil, serviceError(err, "check booked dates")
	}
	return found, nil
}

func (s *overlapService) Conflicts(ctx context.Context, q database.Querier, rng entity.DateRange, roomID uuid.UUID, exclude *uuid.UUID) ([]*entity.Booking, error) {
	found, err := s.bookings.FindOverlapping(ctx, q, rng, &roomID, exclude)
	if err != nil {
		return nil, serviceError(err, "check booked dates")
	}
	if len(found) > 0 {
		s.log.Debug("Overlapping bookings found",
			zap.String("room_id", roomID.String()),
			zap.Stringer("checkin", rng.Checkin),
			zap.Stringer("checkout", rng.Checkout),
			zap.Int("count", len(found)),
		)
	}
	return found, nil
}
