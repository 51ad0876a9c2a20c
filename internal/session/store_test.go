package session_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/smoralesusma/olsoftware-dashboard/internal/entity"
	"github.com/smoralesusma/olsoftware-dashboard/internal/session"
)

type stubRedis struct {
	store map[string]string
	ttl   map[string]time.Duration
	err   error
}

func (s *stubRedis) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(ctx)
	if s.err != nil {
		cmd.SetErr(s.err)
		return cmd
	}

	if s.store == nil {
		s.store = make(map[string]string)
		s.ttl = make(map[string]time.Duration)
	}

	s.store[key] = fmt.Sprint(value)
	s.ttl[key] = expiration
	cmd.SetVal("OK")

	return cmd
}

func (s *stubRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx)
	if s.err != nil {
		cmd.SetErr(s.err)
		return cmd
	}

	val, ok := s.store[key]
	if !ok {
		cmd.SetErr(redis.Nil)
		return cmd
	}

	cmd.SetVal(val)

	return cmd
}

func (s *stubRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	cmd := redis.NewIntCmd(ctx)

	var n int64

	for _, k := range keys {
		if _, ok := s.store[k]; ok {
			delete(s.store, k)
			n++
		}
	}

	cmd.SetVal(n)

	return cmd
}

func TestRedisStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	rdb := &stubRedis{}
	store := session.NewRedisStore(rdb, time.Hour)

	_, err := store.Load(ctx, "sid-1")
	require.ErrorIs(t, err, entity.ErrNoSession)

	expiresAt := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	sess := entity.Session{
		ID:           "sid-1",
		UID:          "uid-1",
		Email:        "user@example.com",
		Provider:     entity.ProviderPassword,
		IDToken:      "id-token",
		RefreshToken: "refresh-token",
		ExpiresAt:    expiresAt,
	}

	require.NoError(t, store.Save(ctx, sess))
	require.Equal(t, time.Hour, rdb.ttl["session:sid-1"])

	got, err := store.Load(ctx, "sid-1")
	require.NoError(t, err)
	require.Equal(t, sess.Email, got.Email)
	require.Equal(t, sess.RefreshToken, got.RefreshToken)
	require.Equal(t, "sid-1", got.ID)
	require.True(t, expiresAt.Equal(got.ExpiresAt))

	require.NoError(t, store.Delete(ctx, "sid-1"))
	require.NoError(t, store.Delete(ctx, "sid-1"))

	_, err = store.Load(ctx, "sid-1")
	require.ErrorIs(t, err, entity.ErrNoSession)
}

func TestRedisStore_Failure(t *testing.T) {
	t.Parallel()

	store := session.NewRedisStore(&stubRedis{err: errors.New("connection refused")}, time.Hour)

	_, err := store.Load(context.Background(), "sid-1")
	require.Error(t, err)
	require.NotErrorIs(t, err, entity.ErrNoSession)

	require.Error(t, store.Save(context.Background(), entity.Session{ID: "sid-1"}))
}
