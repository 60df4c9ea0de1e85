package usecase

import (
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var testToday = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

func fixedNow() time.Time { return testToday }

func mustDecimal(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func day(d int) entity.Date { return entity.NewDate(2024, 3, d) }

type testEnv struct {
	store        *memStore
	db           *fakeDB
	repo         *repository.Repository
	events       *recordingPublisher
	overlap      OverlapEngine
	availability *availabilityService
	bookings     *bookingService
	rooms        *roomService
}

func newTestEnv() *testEnv {
	log := zap.NewNop()
	store := newMemStore()
	db := &fakeDB{}
	repo := &repository.Repository{
		DB:      db,
		Room:    memRooms{store},
		Booking: memBookings{store},
	}
	pub := &recordingPublisher{}

	overlap := NewOverlapService(repo.Booking, log)
	availability := NewAvailabilityService(overlap, log).(*availabilityService)
	availability.now = fixedNow

	bookings := NewBookingService(repo, overlap, pub, log).(*bookingService)
	bookings.now = fixedNow

	rooms := NewRoomService(repo, availability, pub, log).(*roomService)
	rooms.now = fixedNow

	return &testEnv{
		store:        store,
		db:           db,
		repo:         repo,
		events:       pub,
		overlap:      overlap,
		availability: availability,
		bookings:     bookings,
		rooms:        rooms,
	}
}
