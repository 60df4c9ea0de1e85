package usecase

import (
	"context"

	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log.With(zap.String("service", "user")),
	}
}

func (us *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := us.userRepo.FindByID(ctx, userID)
	if err != nil {
		us.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, serviceError(err, "get profile")
	}
	if user == nil {
		return nil, apperror.NotFound("user")
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}
