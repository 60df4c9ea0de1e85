package usecase

import (
	"context"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AvailabilityService interface {
	// Window resolves the requested stay: checkin defaults to today and
	// checkout to the day after checkin.
	Window(checkin, checkout *entity.Date) (entity.DateRange, error)
	// ExcludedRooms lists rooms holding an active booking overlapping rng.
	ExcludedRooms(ctx context.Context, rng entity.DateRange) ([]uuid.UUID, error)
	FilterAvailable(ctx context.Context, candidates []*entity.Room, checkin, checkout *entity.Date) ([]*entity.Room, error)
}

type availabilityService struct {
	overlap OverlapEngine
	log     *zap.Logger
	now     func() time.Time
}

func NewAvailabilityService(overlap OverlapEngine, log *zap.Logger) AvailabilityService {
	return &availabilityService{
		overlap: overlap,
		log:     log.With(zap.String("service", "availability")),
		now:     time.Now,
	}
}

func (s *availabilityService) Window(checkin, checkout *entity.Date) (entity.DateRange, error) {
	start := entity.DateOf(s.now())
	if checkin != nil {
		start = *checkin
	}
	end := start.AddDays(1)
	if checkout != nil {
		end = *checkout
	}

	switch {
	case start.Equal(end):
		return entity.DateRange{}, apperror.InvalidRange("checkout date can not be equal to checkin date")
	case start.After(end):
		return entity.DateRange{}, apperror.InvalidRange("checkin date cant be lower than checkout date")
	}

	return entity.NewDateRange(start, end), nil
}

func (s *availabilityService) ExcludedRooms(ctx context.Context, rng entity.DateRange) ([]uuid.UUID, error) {
	booked, err := s.overlap.FindOverlapping(ctx, rng, nil)
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]struct{}, len(booked))
	var ids []uuid.UUID
	for _, b := range booked {
		if b.RoomID == nil {
			continue
		}
		if _, ok := seen[*b.RoomID]; ok {
			continue
		}
		seen[*b.RoomID] = struct{}{}
		ids = append(ids, *b.RoomID)
	}

	return ids, nil
}

func (s *availabilityService) FilterAvailable(ctx context.Context, candidates []*entity.Room, checkin, checkout *entity.Date) ([]*entity.Room, error) {
	rng, err := s.Window(checkin, checkout)
	if err != nil {
		return nil, err
	}

	excluded, err := s.ExcludedRooms(ctx, rng)
	if err != nil {
		return nil, err
	}

	busy := make(map[uuid.UUID]struct{}, len(excluded))
	for _, id := range excluded {
		busy[id] = struct{}{}
	}

	available := make([]*entity.Room, 0, len(candidates))
	for _, room := range candidates {
		if _, ok := busy[room.ID]; !ok {
			available = append(available, room)
		}
	}

	s.log.Debug("Availability filtered",
		zap.Stringer("checkin", rng.Checkin),
		zap.Stringer("checkout", rng.Checkout),
		zap.Int("candidates", len(candidates)),
		zap.Int("available", len(available)),
	)

	return available, nil
}
