package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/gryffintwin/internal/session"
	"github.com/oksasatya/gryffintwin/pkg/response"
)

// Sessions loads (or creates) the client's session and attaches it to the
// context. A failing session store ends the request with 500.
func Sessions(mgr *session.Manager, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := mgr.Load(c)
		if err != nil {
			logger.WithError(err).WithField("request_id", c.GetString("request_id")).Error("session load failed")
			if strings.HasPrefix(c.Request.URL.Path, "/api/") {
				response.AbortWithError(c, http.StatusInternalServerError, "session unavailable", nil)
				return
			}
			c.String(http.StatusInternalServerError, "Session unavailable")
			c.Abort()
			return
		}
		session.Attach(c, s)
		c.Next()
	}
}
