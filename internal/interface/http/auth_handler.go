package handlers

import (
	"encoding/json"
	"errors"
	"expvar"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/gryffintwin/internal/application"
	"github.com/oksasatya/gryffintwin/internal/session"
	"github.com/oksasatya/gryffintwin/pkg/validation"
)

const (
	MsgMissingCredentials = "Please enter email and password."
	MsgInvalidCredentials = "Invalid email or password."
	MsgLogoutFailed       = "Error logging out"
	MsgLoginFailed        = "Error logging in"
)

var (
	loginsSucceeded = expvar.NewInt("logins_succeeded")
	loginsFailed    = expvar.NewInt("logins_failed")
	logouts         = expvar.NewInt("logouts")
)

type AuthHandler struct {
	Svc      *application.AuthService
	Sessions *session.Manager
	Logger   *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, sessions *session.Manager, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Sessions: sessions, Logger: logger}
}

type loginRequest struct {
	Email    string `form:"email" json:"email" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

func (h *AuthHandler) renderLogin(c *gin.Context, msg string) {
	var errMsg any
	if msg != "" {
		errMsg = msg
	}
	c.HTML(http.StatusOK, "login.tmpl", gin.H{"title": "Login", "error": errMsg})
}

// Root GET /
// Logged-in users go to the dashboard; everyone else gets the login form,
// with ?error= shown as the form message.
func (h *AuthHandler) Root(c *gin.Context) {
	if session.Current(c).Authenticated() {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	h.renderLogin(c, c.Query("error"))
}

// LoginPage GET /login
func (h *AuthHandler) LoginPage(c *gin.Context) {
	if session.Current(c).Authenticated() {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	h.renderLogin(c, "")
}

// Login POST /login {email, password}
func (h *AuthHandler) Login(c *gin.Context) {
	log := h.Logger.WithField("request_id", c.GetString("request_id"))

	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		entry := log.WithField("details", validation.ToDetails(err))
		if wrongTypeSupplied(err, &req) {
			loginsFailed.Add(1)
			entry.Info("login rejected")
			h.renderLogin(c, MsgInvalidCredentials)
			return
		}
		if validation.IsMissing(err) {
			entry.Debug("login form incomplete")
		} else {
			entry.Warn("login payload rejected")
		}
		h.renderLogin(c, MsgMissingCredentials)
		return
	}

	u, err := h.Svc.Authenticate(c.Request.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, application.ErrMissingCredentials):
		h.renderLogin(c, MsgMissingCredentials)
		return
	case errors.Is(err, application.ErrInvalidCredentials):
		loginsFailed.Add(1)
		log.WithField("email", req.Email).Info("login rejected")
		h.renderLogin(c, MsgInvalidCredentials)
		return
	case err != nil:
		log.WithError(err).Error("login failed")
		c.String(http.StatusInternalServerError, MsgLoginFailed)
		return
	}

	s := session.Current(c)
	if s == nil {
		s = h.Sessions.New()
		session.Attach(c, s)
	}
	s.User = u
	if err := h.Sessions.Save(c, s); err != nil {
		log.WithError(err).Error("session save failed")
		c.String(http.StatusInternalServerError, MsgLoginFailed)
		return
	}
	loginsSucceeded.Add(1)
	log.WithFields(logrus.Fields{"email": u.Email, "role": u.Role}).Info("login succeeded")
	c.Redirect(http.StatusFound, "/dashboard")
}

// wrongTypeSupplied reports whether a JSON body carried a non-string value
// for one credential while the other was given. Such a value can never match
// a stored string, so the attempt counts as invalid rather than incomplete.
func wrongTypeSupplied(err error, req *loginRequest) bool {
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) {
		return false
	}
	switch typeErr.Field {
	case "email":
		return req.Password != ""
	case "password":
		return req.Email != ""
	}
	return false
}

// Logout GET /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	log := h.Logger.WithField("request_id", c.GetString("request_id"))
	s := session.Current(c)
	if s != nil {
		if err := h.Sessions.Destroy(c, s); err != nil {
			log.WithError(err).Error("session destroy failed")
			c.String(http.StatusInternalServerError, MsgLogoutFailed)
			return
		}
		if s.User != nil {
			logouts.Add(1)
			log.WithField("email", s.User.Email).Info("logged out")
		}
	}
	c.Redirect(http.StatusFound, "/")
}
