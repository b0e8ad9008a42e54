package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/oksasatya/gryffintwin/pkg/helpers"
)

// Manager ties a Store to the session cookie.
type Manager struct {
	store   Store
	signer  *helpers.SessionSigner
	cookies *helpers.Manager
	name    string
	ttl     time.Duration
	now     func() time.Time
}

// NewManager creates a session manager. name is the cookie name and ttl the
// lifetime of every session counted from its creation.
func NewManager(store Store, signer *helpers.SessionSigner, cookies *helpers.Manager, name string, ttl time.Duration) *Manager {
	return &Manager{
		store:   store,
		signer:  signer,
		cookies: cookies,
		name:    name,
		ttl:     ttl,
		now:     time.Now,
	}
}

// New returns a fresh anonymous session that has not been saved yet.
func (m *Manager) New() *Session {
	now := m.now()
	return &Session{
		ID:        uuid.New().String(),
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}
}

// Load returns the session referenced by the request cookie. A missing,
// forged, unknown or expired cookie yields a new anonymous session which is
// saved right away. Only store failures are returned as errors.
func (m *Manager) Load(c *gin.Context) (*Session, error) {
	s, err := m.lookup(c)
	if err != nil {
		return nil, err
	}
	if s != nil {
		return s, nil
	}
	s = m.New()
	if err := m.Save(c, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (m *Manager) lookup(c *gin.Context) (*Session, error) {
	raw, err := c.Cookie(m.name)
	if err != nil || raw == "" {
		return nil, nil
	}
	sid, err := m.signer.Parse(raw)
	if err != nil {
		return nil, nil
	}
	s, err := m.store.Get(c.Request.Context(), sid)
	switch {
	case errors.Is(err, ErrSessionNotFound), errors.Is(err, ErrSessionExpired), errors.Is(err, ErrInvalidSession):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("load session: %w", err)
	}
	if s.Expired(m.now()) {
		return nil, nil
	}
	return s, nil
}

// Save persists s and (re)sets the cookie. The expiry stays fixed at
// s.ExpiresAt; saving never extends a session.
func (m *Manager) Save(c *gin.Context, s *Session) error {
	if err := m.store.Save(c.Request.Context(), s); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	tok, err := m.signer.Sign(s.ID, s.ExpiresAt)
	if err != nil {
		return fmt.Errorf("sign session: %w", err)
	}
	m.cookies.Set(c, m.name, tok, s.ExpiresAt)
	return nil
}

// Destroy removes all state of s and clears the cookie.
func (m *Manager) Destroy(c *gin.Context, s *Session) error {
	if err := m.store.Destroy(c.Request.Context(), s.ID); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	m.cookies.Clear(c, m.name)
	return nil
}
