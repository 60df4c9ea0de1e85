package usecase

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/database"
	"hotel-booking/pkg/events"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var errNotImplemented = errors.New("not implemented in fake")

// fakeDB hands out fakeTx values; direct queries are not supported.
type fakeDB struct {
	mu        sync.Mutex
	begun     int
	committed int
	rolled    int
}

func (db *fakeDB) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errNotImplemented
}

func (db *fakeDB) QueryRow(context.Context, string, ...any) pgx.Row { return nil }

func (db *fakeDB) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errNotImplemented
}

func (db *fakeDB) Begin(context.Context) (pgx.Tx, error) {
	db.mu.Lock()
	db.begun++
	db.mu.Unlock()
	return &fakeTx{db: db}, nil
}

func (db *fakeDB) Ping(context.Context) error { return nil }
func (db *fakeDB) Close()                     {}

// fakeTx holds room locks until it ends. Methods it does not override
// panic through the nil embedded interface.
type fakeTx struct {
	pgx.Tx
	db    *fakeDB
	locks []*sync.Mutex
	done  bool
}

func (tx *fakeTx) release() {
	for i := len(tx.locks) - 1; i >= 0; i-- {
		tx.locks[i].Unlock()
	}
	tx.locks = nil
	tx.done = true
}

func (tx *fakeTx) Commit(context.Context) error {
	if tx.done {
		return pgx.ErrTxClosed
	}
	tx.release()
	tx.db.mu.Lock()
	tx.db.committed++
	tx.db.mu.Unlock()
	return nil
}

func (tx *fakeTx) Rollback(context.Context) error {
	if tx.done {
		return pgx.ErrTxClosed
	}
	tx.release()
	tx.db.mu.Lock()
	tx.db.rolled++
	tx.db.mu.Unlock()
	return nil
}

// memStore backs the fake room and booking repositories.
type memStore struct {
	mu        sync.Mutex
	rooms     map[uuid.UUID]*entity.Room
	bookings  map[uuid.UUID]*entity.Booking
	order     []uuid.UUID
	roomLocks map[uuid.UUID]*sync.Mutex
	seq       int

	overlapErr error
}

func newMemStore() *memStore {
	return &memStore{
		rooms:     map[uuid.UUID]*entity.Room{},
		bookings:  map[uuid.UUID]*entity.Booking{},
		roomLocks: map[uuid.UUID]*sync.Mutex{},
	}
}

func (m *memStore) roomLock(id uuid.UUID) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.roomLocks[id]
	if !ok {
		l = &sync.Mutex{}
		m.roomLocks[id] = l
	}
	return l
}

func (m *memStore) addRoom(rt entity.RoomType, capacity int, price string) *entity.Room {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	created := time.Date(2024, 1, 1, 0, 0, m.seq, 0, time.UTC)
	room := &entity.Room{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New(), CreatedAt: created, UpdatedAt: created},
		Type:         rt,
		Capacity:     capacity,
		Price:        mustDecimal(price),
	}
	m.rooms[room.ID] = room
	return room
}

func (m *memStore) addBooking(roomID, userID uuid.UUID, checkin, checkout entity.Date, active bool) *entity.Booking {
	m.mu.Lock()
	defer m.mu.Unlock()
	b := &entity.Booking{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		RoomID:       &roomID,
		UserID:       &userID,
		Checkin:      checkin,
		Checkout:     checkout,
		Active:       active,
	}
	m.bookings[b.ID] = b
	m.order = append(m.order, b.ID)
	return b
}

func (m *memStore) activeBookings() []*entity.Booking {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Booking
	for _, id := range m.order {
		if b := m.bookings[id]; b.Active {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out
}

func (m *memStore) bookingCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.bookings)
}

type memRooms struct{ *memStore }

func (r memRooms) Create(_ context.Context, room *entity.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *room
	r.rooms[room.ID] = &cp
	return nil
}

func (r memRooms) FindByID(_ context.Context, id uuid.UUID) (*entity.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	room, ok := r.rooms[id]
	if !ok {
		return nil, nil
	}
	cp := *room
	return &cp, nil
}

func (r memRooms) filter(q repository.RoomQuery) []*entity.Room {
	excluded := map[uuid.UUID]bool{}
	for _, id := range q.ExcludeIDs {
		excluded[id] = true
	}

	var out []*entity.Room
	for _, room := range r.rooms {
		switch {
		case excluded[room.ID]:
		case q.PriceGTE != nil && room.Price.LessThan(*q.PriceGTE):
		case q.PriceLTE != nil && room.Price.GreaterThan(*q.PriceLTE):
		case q.CapacityGTE != nil && room.Capacity < *q.CapacityGTE:
		case q.CapacityLTE != nil && room.Capacity > *q.CapacityLTE:
		default:
			cp := *room
			out = append(out, &cp)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch q.OrderBy {
		case "price":
			if !a.Price.Equal(b.Price) {
				return a.Price.LessThan(b.Price)
			}
		case "-price":
			if !a.Price.Equal(b.Price) {
				return a.Price.GreaterThan(b.Price)
			}
		case "capacity":
			if a.Capacity != b.Capacity {
				return a.Capacity < b.Capacity
			}
		case "-capacity":
			if a.Capacity != b.Capacity {
				return a.Capacity > b.Capacity
			}
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})
	return out
}

func (r memRooms) FindAll(_ context.Context, q repository.RoomQuery) ([]*entity.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := r.filter(q)
	if q.Offset >= len(all) {
		return nil, nil
	}
	end := q.Offset + q.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[q.Offset:end], nil
}

func (r memRooms) CountAll(_ context.Context, q repository.RoomQuery) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.filter(q))), nil
}

func (r memRooms) Update(_ context.Context, room *entity.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rooms[room.ID]; !ok {
		return errors.New("room not found")
	}
	cp := *room
	r.rooms[room.ID] = &cp
	return nil
}

func (r memRooms) LockByID(ctx context.Context, q database.Querier, id uuid.UUID) (*entity.Room, error) {
	if tx, ok := q.(*fakeTx); ok {
		l := r.roomLock(id)
		l.Lock()
		tx.locks = append(tx.locks, l)
	}
	return r.FindByID(ctx, id)
}

func (r memRooms) Delete(_ context.Context, _ database.Querier, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rooms[id]; !ok {
		return errors.New("room not found")
	}
	delete(r.rooms, id)
	for _, b := range r.bookings {
		if b.RoomID != nil && *b.RoomID == id {
			b.RoomID = nil
		}
	}
	return nil
}

type memBookings struct{ *memStore }

func (r memBookings) Create(_ context.Context, _ database.Querier, b *entity.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !b.Range().Valid() {
		return errors.New("violates checkin_before_checkout")
	}
	cp := *b
	r.bookings[b.ID] = &cp
	r.order = append(r.order, b.ID)
	return nil
}

func (r memBookings) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r memBookings) scoped(owner *uuid.UUID) []*entity.Booking {
	var out []*entity.Booking
	for i := len(r.order) - 1; i >= 0; i-- {
		b := r.bookings[r.order[i]]
		if owner != nil && !b.OwnedBy(*owner) {
			continue
		}
		cp := *b
		out = append(out, &cp)
	}
	return out
}

func (r memBookings) FindAll(_ context.Context, owner *uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := r.scoped(owner)
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r memBookings) CountAll(_ context.Context, owner *uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.scoped(owner))), nil
}

func (r memBookings) LockByID(ctx context.Context, _ database.Querier, id uuid.UUID, owner *uuid.UUID) (*entity.Booking, error) {
	b, err := r.FindByID(ctx, id)
	if err != nil || b == nil {
		return b, err
	}
	if owner != nil && !b.OwnedBy(*owner) {
		return nil, nil
	}
	return b, nil
}

func (r memBookings) SetActive(_ context.Context, _ database.Querier, id uuid.UUID, active bool) (*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, errors.New("booking not found")
	}
	b.Active = active
	b.UpdatedAt = time.Now()
	cp := *b
	return &cp, nil
}

func (r memBookings) FindOverlapping(_ context.Context, _ database.Querier, rng entity.DateRange, roomID, excludeID *uuid.UUID) ([]*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.overlapErr != nil {
		return nil, r.overlapErr
	}
	var all []*entity.Booking
	for _, id := range r.order {
		if excludeID != nil && id == *excludeID {
			continue
		}
		cp := *r.bookings[id]
		all = append(all, &cp)
	}
	return entity.FilterOverlapping(all, rng, roomID), nil
}

func (r memBookings) CountBlockingRoomDelete(_ context.Context, _ database.Querier, roomID uuid.UUID, today entity.Date) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, b := range r.bookings {
		if b.RoomID != nil && *b.RoomID == roomID && b.Active && b.Checkout.After(today) {
			n++
		}
	}
	return n, nil
}

// recordingPublisher keeps published events for assertions.
type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, ev events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []events.Type {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]events.Type, 0, len(p.events))
	for _, ev := range p.events {
		out = append(out, ev.Type)
	}
	return out
}

// mockUserRepo and mockSessionRepo are func-field mocks; unset funcs
// panic when called.
type mockUserRepo struct {
	CreateFunc         func(ctx context.Context, user *entity.User) error
	FindByIDFunc       func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmailFunc    func(ctx context.Context, email string) (*entity.User, error)
	FindByUsernameFunc func(ctx context.Context, username string) (*entity.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	return m.CreateFunc(ctx, user)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return m.FindByEmailFunc(ctx, email)
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return m.FindByUsernameFunc(ctx, username)
}

type mockSessionRepo struct {
	CreateFunc           func(ctx context.Context, session *entity.Session) error
	FindValidSessionFunc func(ctx context.Context, token string) (*entity.Session, error)
	RevokeFunc           func(ctx context.Context, token string) error
}

func (m *mockSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	return m.CreateFunc(ctx, session)
}

func (m *mockSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	return m.FindValidSessionFunc(ctx, token)
}

func (m *mockSessionRepo) Revoke(ctx context.Context, token string) error {
	return m.RevokeFunc(ctx, token)
}
