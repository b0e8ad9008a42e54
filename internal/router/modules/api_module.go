package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/gryffintwin/internal/interface/http"
	"github.com/oksasatya/gryffintwin/internal/interface/middleware"
)

// APIModule wires the JSON endpoints under /api.
// Public: GET /api/health
// Gated: GET /api/user, /api/dashboard, /api/expenses
type APIModule struct {
	Handler *handlers.APIHandler
}

func NewAPIModule(h *handlers.APIHandler) *APIModule {
	return &APIModule{Handler: h}
}

func (m *APIModule) Register(rg *gin.RouterGroup) {
	rg.GET("/health", m.Handler.Health)

	auth := rg.Group("/")
	auth.Use(middleware.RequireUser())
	{
		auth.GET("/user", m.Handler.User)
		auth.GET("/dashboard", m.Handler.Dashboard)
		auth.GET("/expenses", m.Handler.Expenses)
	}
}
