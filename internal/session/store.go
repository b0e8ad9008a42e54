package session

import "context"

// Store defines the interface for session storage operations.
// Get returns ErrSessionNotFound for unknown ids and ErrSessionExpired once
// the session outlived its ExpiresAt.
type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Destroy(ctx context.Context, id string) error
}
