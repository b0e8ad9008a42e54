package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/gryffintwin/internal/interface/http"
	"github.com/oksasatya/gryffintwin/internal/interface/middleware"
)

type PageModule struct {
	Handler *handlers.PageHandler
}

func NewPageModule(h *handlers.PageHandler) *PageModule {
	return &PageModule{Handler: h}
}

func (m *PageModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.RequireUser())
	{
		auth.GET("/dashboard", m.Handler.Dashboard)
		auth.GET("/expenses", m.Handler.Expenses)
		auth.GET("/analytics", m.Handler.Analytics)
		auth.GET("/goals", m.Handler.Placeholder("goals.tmpl", "Goals"))
		auth.GET("/security", m.Handler.Placeholder("security.tmpl", "Security"))
		auth.GET("/portfolio", m.Handler.Placeholder("portfolio.tmpl", "Portfolio"))
		auth.GET("/myfam", m.Handler.Placeholder("myfam.tmpl", "My Family"))
	}
}
