package usecase

import (
	"context"
	"errors"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/apperror"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	repo       *repository.Repository
	sessionTTL time.Duration
	log        *zap.Logger
	now        func() time.Time
}

func NewAuthService(repo *repository.Repository, config *utils.Config, log *zap.Logger) AuthService {
	ttl := config.Session.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &authService{
		repo:       repo,
		sessionTTL: ttl,
		log:        log.With(zap.String("service", "auth")),
		now:        time.Now,
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, apperror.Validation(msgValidationFailed, errs)
	}

	taken := map[string]string{}

	existing, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, serviceError(err, "check username")
	}
	if existing != nil {
		taken["username"] = "Already taken"
	}

	existing, err = s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, serviceError(err, "check email")
	}
	if existing != nil {
		taken["email"] = "Already registered"
	}

	if len(taken) > 0 {
		return nil, apperror.Validation("username or email already in use", taken)
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, apperror.Internal(err, "failed to process password")
	}

	now := s.now()
	user := &entity.User{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashedPassword,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("username", req.Username))
		return nil, serviceError(err, "create account")
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, apperror.Validation(msgValidationFailed, errs)
	}

	user, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, serviceError(err, "find user")
	}

	if user == nil || !utils.CheckPassword(user.PasswordHash, req.Password) {
		s.log.Warn("Invalid credentials", zap.String("username", req.Username))
		return nil, apperror.Validation("invalid credentials", nil)
	}

	now := s.now()
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
		},
		UserID:    user.ID,
		Token:     utils.GenerateSessionToken(),
		ExpiresAt: now.Add(s.sessionTTL),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		s.log.Error("Failed to create session", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, serviceError(err, "create session")
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	resp := response.AuthToResponse(user, session)
	return &resp, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if err := s.repo.Session.Revoke(ctx, token); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return apperror.Unauthorized("session not found or already revoked")
		}
		s.log.Error("Failed to revoke session", zap.Error(err))
		return serviceError(err, "logout")
	}

	s.log.Info("User logged out")
	return nil
}
