// Package redisstore provides a Redis-backed session.Store so sessions survive
// restarts and can be shared by several server instances.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/gryffintwin/internal/session"
	"github.com/oksasatya/gryffintwin/pkg/helpers"
)

// SessionStore stores each session as JSON under "session:<id>" with a Redis
// TTL equal to the session's remaining lifetime.
type SessionStore struct {
	rdb    redis.Cmdable
	prefix string
}

func NewSessionStore(rdb redis.Cmdable) *SessionStore {
	return &SessionStore{rdb: rdb, prefix: "session:"}
}

func (s *SessionStore) key(id string) string { return s.prefix + id }

func (s *SessionStore) Get(ctx context.Context, id string) (*session.Session, error) {
	var sess session.Session
	found, err := helpers.RedisGetJSON(ctx, s.rdb, s.key(id), &sess)
	if err != nil {
		var se *json.SyntaxError
		var ute *json.UnmarshalTypeError
		if errors.As(err, &se) || errors.As(err, &ute) {
			return nil, session.ErrInvalidSession
		}
		return nil, fmt.Errorf("redis get %s: %w", s.key(id), err)
	}
	if !found {
		return nil, session.ErrSessionNotFound
	}
	if sess.Expired(time.Now()) {
		_ = helpers.RedisDel(ctx, s.rdb, s.key(id))
		return nil, session.ErrSessionExpired
	}
	return &sess, nil
}

func (s *SessionStore) Save(ctx context.Context, sess *session.Session) error {
	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return session.ErrSessionExpired
	}
	if err := helpers.RedisSetJSON(ctx, s.rdb, s.key(sess.ID), sess, ttl); err != nil {
		return fmt.Errorf("redis set %s: %w", s.key(sess.ID), err)
	}
	return nil
}

func (s *SessionStore) Destroy(ctx context.Context, id string) error {
	if err := helpers.RedisDel(ctx, s.rdb, s.key(id)); err != nil {
		return fmt.Errorf("redis del %s: %w", s.key(id), err)
	}
	return nil
}

var _ session.Store = (*SessionStore)(nil)
