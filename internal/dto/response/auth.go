package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type AuthResponse struct {
	UserID      string    `json:"user_id"`
	Token       string    `json:"token,omitempty"`
	ExpiresAt   time.Time `json:"expires_at,omitempty"`
	Email       string    `json:"email"`
	Username    string    `json:"username"`
	IsSuperuser bool      `json:"is_superuser"`
}

type UserResponse struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	IsSuperuser bool      `json:"is_superuser"`
	CreatedAt   time.Time `json:"created_at"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:          user.ID.String(),
		Username:    user.Username,
		Email:       user.Email,
		IsSuperuser: user.IsSuperuser,
		CreatedAt:   user.CreatedAt,
	}
}

func AuthToResponse(user *entity.User, session *entity.Session) AuthResponse {
	resp := AuthResponse{
		UserID:      user.ID.String(),
		Email:       user.Email,
		Username:    user.Username,
		IsSuperuser: user.IsSuperuser,
	}

	if session != nil {
		resp.Token = session.Token.String()
		resp.ExpiresAt = session.ExpiresAt
	}

	return resp
}
