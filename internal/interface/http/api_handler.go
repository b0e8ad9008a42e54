package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/gryffintwin/internal/application"
	"github.com/oksasatya/gryffintwin/internal/session"
	"github.com/oksasatya/gryffintwin/pkg/response"
)

// APIHandler serves the JSON mirrors of the dashboard pages.
type APIHandler struct {
	Finance *application.FinanceService
	Logger  *logrus.Logger
	AppName string
}

func NewAPIHandler(finance *application.FinanceService, logger *logrus.Logger, appName string) *APIHandler {
	return &APIHandler{Finance: finance, Logger: logger, AppName: appName}
}

func (h *APIHandler) fail(c *gin.Context, err error) {
	h.Logger.WithError(err).WithField("path", c.Request.URL.Path).Error("api request failed")
	response.AbortWithError(c, http.StatusInternalServerError, "internal error", nil)
}

// User GET /api/user
func (h *APIHandler) User(c *gin.Context) {
	response.Envelope(c, http.StatusOK, gin.H{"user": session.CurrentUser(c)})
}

// Dashboard GET /api/dashboard
func (h *APIHandler) Dashboard(c *gin.Context) {
	d, err := h.Finance.Dashboard(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Envelope(c, http.StatusOK, gin.H{"data": d})
}

// Expenses GET /api/expenses
func (h *APIHandler) Expenses(c *gin.Context) {
	r, err := h.Finance.Expenses(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Envelope(c, http.StatusOK, gin.H{
		"expenses": r.Expenses,
		"total":    r.Total,
		"budget":   r.Budget,
	})
}

// Health GET /api/health (public)
func (h *APIHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"service":   h.AppName,
		"timestamp": time.Now().UTC(),
	})
}
