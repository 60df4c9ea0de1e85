package adaptor

import (
	"context"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/internal/usecase"

	"github.com/google/uuid"
)

type mockBookingService struct {
	CreateBookingFunc func(ctx context.Context, actorID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	SetActiveFunc     func(ctx context.Context, scope usecase.Scope, id string, req *request.UpdateBookingRequest) (*response.BookingResponse, error)
	ListBookingsFunc  func(ctx context.Context, scope usecase.Scope, page request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetBookingFunc    func(ctx context.Context, scope usecase.Scope, id string) (*response.BookingResponse, error)
}

func (m *mockBookingService) CreateBooking(ctx context.Context, actorID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	return m.CreateBookingFunc(ctx, actorID, req)
}

func (m *mockBookingService) SetActive(ctx context.Context, scope usecase.Scope, id string, req *request.UpdateBookingRequest) (*response.BookingResponse, error) {
	return m.SetActiveFunc(ctx, scope, id, req)
}

func (m *mockBookingService) ListBookings(ctx context.Context, scope usecase.Scope, page request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	return m.ListBookingsFunc(ctx, scope, page)
}

func (m *mockBookingService) GetBooking(ctx context.Context, scope usecase.Scope, id string) (*response.BookingResponse, error) {
	return m.GetBookingFunc(ctx, scope, id)
}

type mockRoomService struct {
	ListRoomsFunc  func(ctx context.Context, req *request.ListRoomsRequest) (*response.PaginatedResponse[response.RoomResponse], error)
	GetRoomFunc    func(ctx context.Context, id string) (*response.RoomResponse, error)
	CreateRoomFunc func(ctx context.Context, req *request.CreateRoomRequest) (*response.RoomResponse, error)
	UpdateRoomFunc func(ctx context.Context, id string, req *request.UpdateRoomRequest) (*response.RoomResponse, error)
	DeleteRoomFunc func(ctx context.Context, id string) error
}

func (m *mockRoomService) ListRooms(ctx context.Context, req *request.ListRoomsRequest) (*response.PaginatedResponse[response.RoomResponse], error) {
	return m.ListRoomsFunc(ctx, req)
}

func (m *mockRoomService) GetRoom(ctx context.Context, id string) (*response.RoomResponse, error) {
	return m.GetRoomFunc(ctx, id)
}

func (m *mockRoomService) CreateRoom(ctx context.Context, req *request.CreateRoomRequest) (*response.RoomResponse, error) {
	return m.CreateRoomFunc(ctx, req)
}

func (m *mockRoomService) UpdateRoom(ctx context.Context, id string, req *request.UpdateRoomRequest) (*response.RoomResponse, error) {
	return m.UpdateRoomFunc(ctx, id, req)
}

func (m *mockRoomService) DeleteRoom(ctx context.Context, id string) error {
	return m.DeleteRoomFunc(ctx, id)
}

type mockAuthService struct {
	RegisterFunc func(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error)
	LoginFunc    func(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	LogoutFunc   func(ctx context.Context, token string) error
}

func (m *mockAuthService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	return m.RegisterFunc(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	return m.LoginFunc(ctx, req)
}

func (m *mockAuthService) Logout(ctx context.Context, token string) error {
	return m.LogoutFunc(ctx, token)
}
