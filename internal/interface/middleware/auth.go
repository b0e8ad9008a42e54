package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/gryffintwin/internal/domain/entity"
	"github.com/oksasatya/gryffintwin/internal/session"
	"github.com/oksasatya/gryffintwin/pkg/response"
)

// LoginPath is where unauthenticated requests to gated routes are sent.
const LoginPath = "/"

// RequireUser lets the request through only when the session holds a
// logged-in user; otherwise it redirects to LoginPath. JSON routes are
// redirected too.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if session.Current(c).Authenticated() {
			c.Next()
			return
		}
		c.Redirect(http.StatusFound, LoginPath)
		c.Abort()
	}
}

// RequireRole rejects authenticated users lacking role with 403. Use after
// RequireUser.
func RequireRole(role entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := session.CurrentUser(c)
		if u == nil || u.Role != role {
			response.AbortWithError(c, http.StatusForbidden, "forbidden", nil)
			return
		}
		c.Next()
	}
}
