package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/gryffintwin/internal/application"
	"github.com/oksasatya/gryffintwin/internal/session"
)

// PageHandler renders the gated dashboard pages.
type PageHandler struct {
	Finance *application.FinanceService
	Logger  *logrus.Logger
}

func NewPageHandler(finance *application.FinanceService, logger *logrus.Logger) *PageHandler {
	return &PageHandler{Finance: finance, Logger: logger}
}

func (h *PageHandler) fail(c *gin.Context, err error) {
	h.Logger.WithError(err).WithField("path", c.Request.URL.Path).Error("page render failed")
	c.String(http.StatusInternalServerError, "Internal Server Error")
}

func (h *PageHandler) Dashboard(c *gin.Context) {
	d, err := h.Finance.Dashboard(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "dashboard.tmpl", gin.H{
		"title": "Dashboard",
		"user":  session.CurrentUser(c),
		"data":  d,
	})
}

func (h *PageHandler) Expenses(c *gin.Context) {
	r, err := h.Finance.Expenses(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "expenses.tmpl", gin.H{
		"title":             "Expenses",
		"user":              session.CurrentUser(c),
		"expenses":          r.Expenses,
		"total_expenses":    r.Total,
		"budget":            r.Budget,
		"remaining_budget":  r.RemainingBudget,
		"budget_percentage": r.BudgetPercentage,
	})
}

func (h *PageHandler) Analytics(c *gin.Context) {
	cats, err := h.Finance.CategoryBreakdown(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "analytics.tmpl", gin.H{
		"title":      "Analytics",
		"user":       session.CurrentUser(c),
		"categories": cats,
	})
}

// Placeholder renders a page whose only data is the current user.
func (h *PageHandler) Placeholder(view, title string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, view, gin.H{"title": title, "user": session.CurrentUser(c)})
	}
}

// NotFound handles every unmatched route.
func (h *PageHandler) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.tmpl", gin.H{"title": "Not Found", "user": session.CurrentUser(c)})
}
