package router

import (
	"github.com/oksasatya/gryffintwin/internal/application"
	"github.com/oksasatya/gryffintwin/internal/container"
	"github.com/oksasatya/gryffintwin/internal/domain/entity"
	handlers "github.com/oksasatya/gryffintwin/internal/interface/http"
	"github.com/oksasatya/gryffintwin/internal/router/modules"
)

type moduleDeps struct {
	Auth  *handlers.AuthHandler
	Pages *handlers.PageHandler
	API   *handlers.APIHandler
}

func buildDeps(ctr *container.Container) moduleDeps {
	authSvc := application.NewAuthService(ctr.Users, ctr.Logger)
	financeSvc := application.NewFinanceService(ctr.Finance, entity.Money(ctr.Config.ExpenseBudget)*100)

	return moduleDeps{
		Auth:  handlers.NewAuthHandler(authSvc, ctr.Sessions, ctr.Logger),
		Pages: handlers.NewPageHandler(financeSvc, ctr.Logger),
		API:   handlers.NewAPIHandler(financeSvc, ctr.Logger, ctr.Config.AppName),
	}
}

// InitModules wires every module into the registry. Call once at startup.
func InitModules(r *Registry, ctr *container.Container) {
	deps := buildDeps(ctr)
	r.AddPages(modules.NewAuthModule(deps.Auth))
	r.AddPages(modules.NewPageModule(deps.Pages))
	r.Add(modules.NewAPIModule(deps.API))
	if ctr.Config.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
	r.NoRoute(deps.Pages.NotFound)
}
