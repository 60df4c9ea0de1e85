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
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// RoomQuery holds the catalog predicates; nil fields are not applied.
type RoomQuery struct {
	PriceGTE    *decimal.Decimal
	PriceLTE    *decimal.Decimal
	CapacityGTE *int
	CapacityLTE *int
	ExcludeIDs  []uuid.UUID
	OrderBy     string
	Limit       int
	Offset      int
}

var roomOrderings = map[string]string{
	"":          "created_at ASC, id ASC",
	"price":     "price ASC, created_at ASC, id ASC",
	"-price":    "price DESC, created_at ASC, id ASC",
	"capacity":  "capacity ASC, created_at ASC, id ASC",
	"-capacity": "capacity DESC, created_at ASC, id ASC",
}

// ValidRoomOrdering reports whether order is an accepted order_by value.
func ValidRoomOrdering(order string) bool {
	_, ok := roomOrderings[order]
	return ok
}

type RoomRepository interface {
	Create(ctx context.Context, room *entity.Room) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error)
	FindAll(ctx context.Context, query RoomQuery) ([]*entity.Room, error)
	CountAll(ctx context.Context, query RoomQuery) (int64, error)
	Update(ctx context.Context, room *entity.Room) error

	// LockByID loads the room with FOR UPDATE, serializing writers of its bookings.
	LockByID(ctx context.Context, q database.Querier, id uuid.UUID) (*entity.Room, error)
	Delete(ctx context.Context, q database.Querier, id uuid.UUID) error
}

type roomRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoomRepository(db database.PgxIface, log *zap.Logger) RoomRepository {
	return &roomRepository{
		db:  db,
		log: log.With(zap.String("repository", "room")),
	}
}

const roomColumns = `id, room_type, capacity, price, created_at, updated_at`

func (r *roomRepository) querier(q database.Querier) database.Querier {
	if q == nil {
		return r.db
	}
	return q
}

func scanRoom(row pgx.Row) (*entity.Room, error) {
	var room entity.Room
	err := row.Scan(
		&room.ID,
		&room.Type,
		&room.Capacity,
		&room.Price,
		&room.CreatedAt,
		&room.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) Create(ctx context.Context, room *entity.Room) error {
	query := `
		INSERT INTO rooms (id, room_type, capacity, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		room.ID,
		room.Type,
		room.Capacity,
		room.Price,
		room.CreatedAt,
		room.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create room",
			zap.Error(err),
			zap.String("room_type", room.Type.String()),
		)
		return fmt.Errorf("create room: %w", TranslatePgError(err))
	}

	return nil
}

func (r *roomRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1`

	room, err := scanRoom(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room by ID",
			zap.Error(err),
			zap.String("room_id", id.String()),
		)
		return nil, fmt.Errorf("find room by ID %s: %w", id, err)
	}

	return room, nil
}

// buildWhere renders the filter predicates starting at placeholder $1.
func (q RoomQuery) buildWhere() (string, []any) {
	var where strings.Builder
	args := []any{}

	add := func(clause string, arg any) {
		args = append(args, arg)
		where.WriteString(fmt.Sprintf(" AND "+clause, len(args)))
	}

	if q.PriceGTE != nil {
		add("price >= $%d", *q.PriceGTE)
	}
	if q.PriceLTE != nil {
		add("price <= $%d", *q.PriceLTE)
	}
	if q.CapacityGTE != nil {
		add("capacity >= $%d", *q.CapacityGTE)
	}
	if q.CapacityLTE != nil {
		add("capacity <= $%d", *q.CapacityLTE)
	}
	if len(q.ExcludeIDs) > 0 {
		add("id <> ALL($%d)", q.ExcludeIDs)
	}

	return where.String(), args
}

func (r *roomRepository) FindAll(ctx context.Context, query RoomQuery) ([]*entity.Room, error) {
	orderBy, ok := roomOrderings[query.OrderBy]
	if !ok {
		return nil, fmt.Errorf("unsupported room ordering %q", query.OrderBy)
	}

	where, args := query.buildWhere()

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + roomColumns + ` FROM rooms WHERE TRUE`)
	queryBuilder.WriteString(where)
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s LIMIT $%d OFFSET $%d", orderBy, len(args)+1, len(args)+2))
	args = append(args, query.Limit, query.Offset)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find rooms",
			zap.Error(err),
			zap.Int("limit", query.Limit),
			zap.Int("offset", query.Offset),
			zap.String("order_by", query.OrderBy),
		)
		return nil, fmt.Errorf("find rooms: %w", err)
	}
	defer rows.Close()

	var rooms []*entity.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			r.log.Error("Failed to scan room row", zap.Error(err))
			return nil, fmt.Errorf("scan room row: %w", err)
		}
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate room rows: %w", err)
	}

	return rooms, nil
}

func (r *roomRepository) CountAll(ctx context.Context, query RoomQuery) (int64, error) {
	where, args := query.buildWhere()

	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM rooms WHERE TRUE`+where, args...).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count rooms", zap.Error(err))
		return 0, fmt.Errorf("count rooms: %w", err)
	}

	return count, nil
}

func (r *roomRepository) Update(ctx context.Context, room *entity.Room) error {
	query := `
		UPDATE rooms
		SET capacity = $2, price = $3, updated_at = $4
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, room.ID, room.Capacity, room.Price, room.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to update room",
			zap.Error(err),
			zap.String("room_id", room.ID.String()),
		)
		return fmt.Errorf("update room %s: %w", room.ID, TranslatePgError(err))
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %s not found", room.ID)
	}

	return nil
}

func (r *roomRepository) LockByID(ctx context.Context, q database.Querier, id uuid.UUID) (*entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1 FOR UPDATE`

	room, err := scanRoom(r.querier(q).QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to lock room",
			zap.Error(err),
			zap.String("room_id", id.String()),
		)
		return nil, fmt.Errorf("lock room %s: %w", id, err)
	}

	return room, nil
}

func (r *roomRepository) Delete(ctx context.Context, q database.Querier, id uuid.UUID) error {
	result, err := r.querier(q).Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete room",
			zap.Error(err),
			zap.String("room_id", id.String()),
		)
		return fmt.Errorf("delete room %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %s not found", id)
	}

	r.log.Info("Room deleted", zap.String("room_id", id.String()))
	return nil
}
