package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/gryffintwin/internal/interface/http"
)

// AuthModule wires the public login/logout routes.
// GET /, GET /login, POST /login, GET /logout
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.GET("/", m.Handler.Root)
	rg.GET("/login", m.Handler.LoginPage)
	rg.POST("/login", m.Handler.Login)
	rg.GET("/logout", m.Handler.Logout)
}
