package repository

import (
	"hotel-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	// DB is exposed so services can open transactions spanning repositories.
	DB      database.PgxIface
	User    UserRepository
	Session SessionRepository
	Room    RoomRepository
	Booking BookingRepository
}

// NewRepository builds the Postgres repositories. sessions overrides the
// session store; nil keeps sessions in Postgres.
func NewRepository(db database.PgxIface, sessions SessionRepository, log *zap.Logger) *Repository {
	if sessions == nil {
		sessions = NewSessionRepository(db, log)
	}
	return &Repository{
		DB:      db,
		User:    NewUserRepository(db, log),
		Session: sessions,
		Room:    NewRoomRepository(db, log),
		Booking: NewBookingRepository(db, log),
	}
}
