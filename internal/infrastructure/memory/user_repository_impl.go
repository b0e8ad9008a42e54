package memory

import (
	"context"

	"github.com/oksasatya/gryffintwin/internal/domain/entity"
	"github.com/oksasatya/gryffintwin/internal/domain/repository"
)

// UserRepository serves a fixed user table keyed by email.
type UserRepository struct {
	users map[string]entity.User
}

// NewUserRepository builds a repository over the given users. Later entries
// win on duplicate emails.
func NewUserRepository(users ...entity.User) *UserRepository {
	m := make(map[string]entity.User, len(users))
	for _, u := range users {
		m[u.Email] = u
	}
	return &UserRepository{users: m}
}

// NewDemoUserRepository returns the built-in demo accounts.
func NewDemoUserRepository() *UserRepository {
	return NewUserRepository(DemoUsers()...)
}

// DemoUsers is the fixed account table the dashboard ships with.
func DemoUsers() []entity.User {
	return []entity.User{
		{Email: "user@example.com", Password: "password123", Name: "Harry Potter", Role: entity.RoleAdmin},
		{Email: "hermione@gryffindor.com", Password: "gryffindor123", Name: "Hermione Granger", Role: entity.RoleUser},
		{Email: "ron@gryffindor.com", Password: "potter123", Name: "Ron Weasley", Role: entity.RoleUser},
	}
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return &u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
