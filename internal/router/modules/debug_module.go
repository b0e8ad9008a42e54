package modules

import (
	"expvar"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/gryffintwin/internal/domain/entity"
	"github.com/oksasatya/gryffintwin/internal/interface/middleware"
)

type DebugModule struct{}

func NewDebugModule() *DebugModule { return &DebugModule{} }

// Register exposes expvar (login/logout counters, memstats) to admins only.
func (m *DebugModule) Register(rg *gin.RouterGroup) {
	rg.GET("/debug/vars", middleware.RequireUser(), middleware.RequireRole(entity.RoleAdmin), gin.WrapH(expvar.Handler()))
}
