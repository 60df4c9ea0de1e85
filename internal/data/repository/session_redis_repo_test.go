package repository

import (
	"context"
	"testing"
	"time"

	"hotel-booking/internal/data/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRedisSessions(t *testing.T) (*miniredis.Miniredis, SessionRepository) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, NewSessionRedisRepository(rdb, zap.NewNop())
}

func newSession(ttl time.Duration) *entity.Session {
	now := time.Now()
	return &entity.Session{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
		UserID:     uuid.New(),
		Token:      uuid.New(),
		ExpiresAt:  now.Add(ttl),
	}
}

func TestSessionRedis_CreateFindRevoke(t *testing.T) {
	mr, repo := newRedisSessions(t)
	ctx := context.Background()

	session := newSession(time.Hour)
	require.NoError(t, repo.Create(ctx, session))
	assert.True(t, mr.Exists("session:"+session.Token.String()))

	found, err := repo.FindValidSession(ctx, session.Token.String())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, session.UserID, found.UserID)
	assert.Equal(t, session.Token, found.Token)

	require.NoError(t, repo.Revoke(ctx, session.Token.String()))
	assert.ErrorIs(t, repo.Revoke(ctx, session.Token.String()), ErrSessionNotFound)

	found, err = repo.FindValidSession(ctx, session.Token.String())
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestSessionRedis_ExpiresWithTTL(t *testing.T) {
	mr, repo := newRedisSessions(t)
	ctx := context.Background()

	session := newSession(time.Minute)
	require.NoError(t, repo.Create(ctx, session))

	mr.FastForward(2 * time.Minute)

	found, err := repo.FindValidSession(ctx, session.Token.String())
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestSessionRedis_RejectsBadInput(t *testing.T) {
	_, repo := newRedisSessions(t)
	ctx := context.Background()

	assert.Error(t, repo.Create(ctx, newSession(-time.Minute)))

	found, err := repo.FindValidSession(ctx, "not-a-token")
	require.NoError(t, err)
	assert.Nil(t, found)
	assert.ErrorIs(t, repo.Revoke(ctx, "not-a-token"), ErrSessionNotFound)
}
