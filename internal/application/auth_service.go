package application

import (
	"context"
	"crypto/subtle"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/gryffintwin/internal/domain/entity"
	repo "github.com/oksasatya/gryffintwin/internal/domain/repository"
)

var (
	ErrMissingCredentials = errors.New("missing credentials")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthService struct {
	Repo   repo.UserRepository
	Logger *logrus.Logger
}

func NewAuthService(repo repo.UserRepository, logger *logrus.Logger) *AuthService {
	return &AuthService{Repo: repo, Logger: logger}
}

// Authenticate checks email/password against the user table and returns the
// reduced view to store in the session. Unknown emails and wrong passwords
// both yield ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*entity.SessionUser, error) {
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("email", email).Error("user lookup failed")
		}
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if subtle.ConstantTimeCompare([]byte(u.Password), []byte(password)) != 1 {
		return nil, ErrInvalidCredentials
	}
	return u.SessionView(), nil
}
