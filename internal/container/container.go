package container

import (
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/gryffintwin/config"
	"github.com/oksasatya/gryffintwin/internal/domain/repository"
	"github.com/oksasatya/gryffintwin/internal/session"
)

// Container carries the constructed infrastructure that modules are wired
// from. It is built once in main (or in a test) and passed down explicitly.
type Container struct {
	Config   *config.Config
	Logger   *logrus.Logger
	Users    repository.UserRepository
	Finance  repository.FinanceRepository
	Sessions *session.Manager
}

func New(cfg *config.Config, logger *logrus.Logger, users repository.UserRepository, finance repository.FinanceRepository, sessions *session.Manager) *Container {
	return &Container{
		Config:   cfg,
		Logger:   logger,
		Users:    users,
		Finance:  finance,
		Sessions: sessions,
	}
}
