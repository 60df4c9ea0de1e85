package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hotel-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// sessionRedisRepository keeps sessions as JSON values under
// "session:<token>" with a TTL matching the session expiry.
type sessionRedisRepository struct {
	rdb *redis.Client
	log *zap.Logger
	now func() time.Time
}

func NewSessionRedisRepository(rdb *redis.Client, log *zap.Logger) SessionRepository {
	return &sessionRedisRepository{
		rdb: rdb,
		log: log.With(zap.String("repository", "session_redis")),
		now: time.Now,
	}
}

type sessionValue struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	UserAgent *string   `json:"user_agent,omitempty"`
	IPAddress *string   `json:"ip_address,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *sessionRedisRepository) key(token string) string { return "session:" + token }

func (r *sessionRedisRepository) Create(ctx context.Context, session *entity.Session) error {
	ttl := session.ExpiresAt.Sub(r.now())
	if ttl <= 0 {
		return fmt.Errorf("create session: already expired at %s", session.ExpiresAt)
	}

	val, err := json.Marshal(sessionValue{
		ID:        session.ID,
		UserID:    session.UserID,
		UserAgent: session.UserAgent,
		IPAddress: session.IPAddress,
		ExpiresAt: session.ExpiresAt.UTC(),
		CreatedAt: session.CreatedAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err := r.rdb.Set(ctx, r.key(session.Token.String()), val, ttl).Err(); err != nil {
		r.log.Error("Failed to create session",
			zap.Error(err),
			zap.String("user_id", session.UserID.String()),
		)
		return fmt.Errorf("create session: %w", err)
	}

	return nil
}

func (r *sessionRedisRepository) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	tokenID, err := uuid.Parse(token)
	if err != nil {
		return nil, nil
	}

	raw, err := r.rdb.Get(ctx, r.key(tokenID.String())).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find valid session", zap.Error(err))
		return nil, fmt.Errorf("find session: %w", err)
	}

	var sv sessionValue
	if err := json.Unmarshal(raw, &sv); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}

	session := &entity.Session{
		BaseSimple: entity.BaseSimple{ID: sv.ID, CreatedAt: sv.CreatedAt},
		UserID:     sv.UserID,
		Token:      tokenID,
		UserAgent:  sv.UserAgent,
		IPAddress:  sv.IPAddress,
		ExpiresAt:  sv.ExpiresAt,
	}
	if !session.Valid(r.now()) {
		return nil, nil
	}

	return session, nil
}

func (r *sessionRedisRepository) Revoke(ctx context.Context, token string) error {
	tokenID, err := uuid.Parse(token)
	if err != nil {
		return ErrSessionNotFound
	}

	deleted, err := r.rdb.Del(ctx, r.key(tokenID.String())).Result()
	if err != nil {
		r.log.Error("Failed to revoke session", zap.Error(err))
		return fmt.Errorf("revoke session: %w", err)
	}
	if deleted == 0 {
		return ErrSessionNotFound
	}

	return nil
}
