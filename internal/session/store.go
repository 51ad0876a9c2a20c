package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/smoralesusma/olsoftware-dashboard/internal/entity"
)

const keyPrefix = "session:"

type redisCommander interface {
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisStore persists sessions so that they survive restarts and are shared between instances.
type RedisStore struct {
	redis redisCommander
	ttl   time.Duration
}

func NewRedisStore(client redisCommander, ttl time.Duration) *RedisStore {
	return &RedisStore{
		redis: client,
		ttl:   ttl,
	}
}

type storedSession struct {
	UID          string    `json:"uid"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"display_name,omitempty"`
	Provider     string    `json:"provider"`
	IDToken      string    `json:"id_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

func (s *RedisStore) Load(ctx context.Context, sid string) (entity.Session, error) {
	raw, err := s.redis.Get(ctx, keyPrefix+sid).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return entity.Session{}, entity.ErrNoSession
		}

		return entity.Session{}, fmt.Errorf("redis get: %w", err)
	}

	var stored storedSession

	err = json.Unmarshal([]byte(raw), &stored)
	if err != nil {
		return entity.Session{}, fmt.Errorf("decode session: %w", err)
	}

	return entity.Session{
		ID:           sid,
		UID:          stored.UID,
		Email:        stored.Email,
		DisplayName:  stored.DisplayName,
		Provider:     stored.Provider,
		IDToken:      stored.IDToken,
		RefreshToken: stored.RefreshToken,
		ExpiresAt:    stored.ExpiresAt,
	}, nil
}

func (s *RedisStore) Save(ctx context.Context, sess entity.Session) error {
	b, err := json.Marshal(storedSession{
		UID:          sess.UID,
		Email:        sess.Email,
		DisplayName:  sess.DisplayName,
		Provider:     sess.Provider,
		IDToken:      sess.IDToken,
		RefreshToken: sess.RefreshToken,
		ExpiresAt:    sess.ExpiresAt,
	})
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	err = s.redis.Set(ctx, keyPrefix+sess.ID, string(b), s.ttl).Err()
	if err != nil {
		return fmt.Errorf("redis set: %w", err)
	}

	return nil
}

func (s *RedisStore) Delete(ctx context.Context, sid string) error {
	err := s.redis.Del(ctx, keyPrefix+sid).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("redis del: %w", err)
	}

	return nil
}
