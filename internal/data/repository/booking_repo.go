package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, q database.Querier, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	// FindAll lists bookings newest first; owner restricts the list to one
	// user when non-nil.
	FindAll(ctx context.Context, owner *uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	CountAll(ctx context.Context, owner *uuid.UUID) (int64, error)

	// LockByID loads a booking with FOR UPDATE; owner restricts the lookup
	// to that user's bookings when non-nil.
	LockByID(ctx context.Context, q database.Querier, id uuid.UUID, owner *uuid.UUID) (*entity.Booking, error)
	SetActive(ctx context.Context, q database.Querier, id uuid.UUID, active bool) (*entity.Booking, error)

	// FindOverlapping returns active bookings intersecting rng, optionally
	// limited to one room and skipping one booking id.
	FindOverlapping(ctx context.Context, q database.Querier, rng entity.DateRange, roomID, excludeID *uuid.UUID) ([]*entity.Booking, error)
	// CountBlockingRoomDelete counts active bookings of the room whose
	// checkout is after today.
	CountBlockingRoomDelete(ctx context.Context, q database.Querier, roomID uuid.UUID, today entity.Date) (int64, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, room_id, user_id, checkin, checkout, active, created_at, updated_at`

func (r *bookingRepository) querier(q database.Querier) database.Querier {
	if q == nil {
		return r.db
	}
	return q
}

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.RoomID,
		&booking.UserID,
		&booking.Checkin,
		&booking.Checkout,
		&booking.Active,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func collectBookings(rows pgx.Rows) ([]*entity.Booking, error) {
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}

	return bookings, nil
}

func (r *bookingRepository) Create(ctx context.Context, q database.Querier, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, room_id, user_id, checkin, checkout, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.querier(q).Exec(ctx, query,
		booking.ID,
		booking.RoomID,
		booking.UserID,
		booking.Checkin,
		booking.Checkout,
		booking.Active,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.Stringer("checkin", booking.Checkin),
			zap.Stringer("checkout", booking.Checkout),
		)
		return fmt.Errorf("create booking %s: %w", booking.ID, TranslatePgError(err))
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id, err)
	}

	return booking, nil
}

func ownerClause(owner *uuid.UUID) (string, []any) {
	if owner == nil {
		return "", nil
	}
	return " WHERE user_id = $1", []any{*owner}
}

func (r *bookingRepository) FindAll(ctx context.Context, owner *uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	where, args := ownerClause(owner)
	query := fmt.Sprintf(`SELECT %s FROM bookings%s ORDER BY created_at DESC, id LIMIT $%d OFFSET $%d`,
		bookingColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find bookings",
			zap.Error(err),
			zap.Bool("scoped", owner != nil),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find bookings: %w", err)
	}

	return collectBookings(rows)
}

func (r *bookingRepository) CountAll(ctx context.Context, owner *uuid.UUID) (int64, error) {
	where, args := ownerClause(owner)

	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings`+where, args...).Scan(&count); err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err), zap.Bool("scoped", owner != nil))
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	return count, nil
}

func (r *bookingRepository) LockByID(ctx context.Context, q database.Querier, id uuid.UUID, owner *uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	args := []any{id}
	if owner != nil {
		query += ` AND user_id = $2`
		args = append(args, *owner)
	}
	query += ` FOR UPDATE`

	booking, err := scanBooking(r.querier(q).QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to lock booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("lock booking %s: %w", id, err)
	}

	return booking, nil
}

func (r *bookingRepository) SetActive(ctx context.Context, q database.Querier, id uuid.UUID, active bool) (*entity.Booking, error) {
	query := `
		UPDATE bookings
		SET active = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + bookingColumns

	booking, err := scanBooking(r.querier(q).QueryRow(ctx, query, id, active))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("booking %s not found", id)
	}
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.Bool("active", active),
		)
		return nil, fmt.Errorf("set booking %s active=%t: %w", id, active, TranslatePgError(err))
	}

	return booking, nil
}

func (r *bookingRepository) FindOverlapping(ctx context.Context, q database.Querier, rng entity.DateRange, roomID, excludeID *uuid.UUID) ([]*entity.Booking, error) {
	// Same predicate as entity.DateRange.Overlaps.
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE active AND checkin < $1 AND checkout > $2`)

	args := []any{rng.Checkout, rng.Checkin}
	argCount := 3

	if roomID != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND room_id = $%d", argCount))
		args = append(args, *roomID)
		argCount++
	}
	if excludeID != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND id <> $%d", argCount))
		args = append(args, *excludeID)
	}

	rows, err := r.querier(q).Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find overlapping bookings",
			zap.Error(err),
			zap.Stringer("checkin", rng.Checkin),
			zap.Stringer("checkout", rng.Checkout),
		)
		return nil, fmt.Errorf("find bookings overlapping %s..%s: %w", rng.Checkin, rng.Checkout, err)
	}

	return collectBookings(rows)
}

func (r *bookingRepository) CountBlockingRoomDelete(ctx context.Context, q database.Querier, roomID uuid.UUID, today entity.Date) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE room_id = $1 AND active AND checkout > $2`

	var count int64
	if err := r.querier(q).QueryRow(ctx, query, roomID, today).Scan(&count); err != nil {
		r.log.Error("Failed to count blocking bookings",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
		)
		return 0, fmt.Errorf("count active bookings of room %s: %w", roomID, err)
	}

	return count, nil
}
