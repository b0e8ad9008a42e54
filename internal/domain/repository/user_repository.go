package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/gryffintwin/internal/domain/entity"
)

// ErrUserNotFound is returned when no user matches the lookup key.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the lookup operations the login flow needs.
type UserRepository interface {
	// GetByEmail returns the user whose email matches exactly (case-sensitive).
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
