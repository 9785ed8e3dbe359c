package redisstore

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sessionworks/authsvc/internal/domain/repository"
)

func sessionKey(sid string) string {
	return "session:id:" + sid
}

// SessionStore persists session-id -> user-id mappings in Redis.
// A zero TTL keeps sessions alive until they are destroyed explicitly.
type SessionStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSessionStore(rdb *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{rdb: rdb, ttl: ttl}
}

func (s *SessionStore) Put(ctx context.Context, sid, userID string) error {
	return s.rdb.Set(ctx, sessionKey(sid), userID, s.ttl).Err()
}

func (s *SessionStore) Get(ctx context.Context, sid string) (string, error) {
	uid, err := s.rdb.Get(ctx, sessionKey(sid)).Result()
	if errors.Is(err, redis.Nil) {
		return "", repository.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return uid, nil
}

func (s *SessionStore) Delete(ctx context.Context, sid string) (bool, error) {
	n, err := s.rdb.Del(ctx, sessionKey(sid)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

var _ repository.SessionStore = (*SessionStore)(nil)
