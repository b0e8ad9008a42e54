// Package session keeps per-client session state behind a signed cookie.
// Session data lives in a pluggable Store (in-memory or Redis) and expires a
// fixed TTL after creation.
package session

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/gryffintwin/internal/domain/entity"
)

var (
	// ErrSessionNotFound is returned when a session is not found
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired is returned when a session has expired
	ErrSessionExpired = errors.New("session expired")
	// ErrInvalidSession is returned when stored session data cannot be decoded
	ErrInvalidSession = errors.New("invalid session")
)

// Session is the per-client state. User is nil until a successful login.
type Session struct {
	ID        string              `json:"id"`
	User      *entity.SessionUser `json:"user,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
	ExpiresAt time.Time           `json:"expires_at"`
}

// Authenticated reports whether the session holds a logged-in user.
func (s *Session) Authenticated() bool {
	return s != nil && s.User != nil
}

func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Clone returns a deep copy so stores never share memory with callers.
func (s *Session) Clone() *Session {
	cp := *s
	if s.User != nil {
		u := *s.User
		cp.User = &u
	}
	return &cp
}

const contextKey = "session"

// Attach stores s on the request context for downstream handlers.
func Attach(c *gin.Context, s *Session) { c.Set(contextKey, s) }

// Current returns the session attached by the session middleware, or nil.
func Current(c *gin.Context) *Session {
	v, ok := c.Get(contextKey)
	if !ok {
		return nil
	}
	s, _ := v.(*Session)
	return s
}

// CurrentUser returns the reduced user view of the current session, or nil.
func CurrentUser(c *gin.Context) *entity.SessionUser {
	if s := Current(c); s != nil {
		return s.User
	}
	return nil
}
