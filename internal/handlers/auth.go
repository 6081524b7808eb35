package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/septumca/story-service/internal/metrics"
	"github.com/septumca/story-service/internal/service"
)

// AuthHandler handles login and logout requests.
type AuthHandler struct {
	authService service.AuthService
	sessions    service.SessionService
	cookies     *CookieHelper
	logger      *slog.Logger
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(authService service.AuthService, sessions service.SessionService, cookies *CookieHelper, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
		cookies:     cookies,
		logger:      logger,
	}
}

// LoginRequest represents the login form payload.
type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// Login verifies submitted credentials, mints a session and redirects
// the client home. Bad credentials get 401, never a 500.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.authService.Verify(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues("failure").Inc()
		if errors.Is(err, service.ErrInvalidCredentials) {
			RespondError(c, http.StatusUnauthorized, "invalid credentials")
			return
		}
		LogAndRespondError(c, h.logger, http.StatusInternalServerError, err, "login failed")
		return
	}

	token, ttl, err := h.sessions.Create(c.Request.Context(), user.ID, user.Username)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues("failure").Inc()
		LogAndRespondError(c, h.logger, http.StatusInternalServerError, err, "login failed")
		return
	}

	metrics.LoginAttempts.WithLabelValues("success").Inc()
	h.cookies.SetSessionCookie(c, token, ttl)
	c.Header("HX-Redirect", "/")
	c.Status(http.StatusNoContent)
}

// Logout destroys the session record and clears the cookie. Safe to
// call without a session.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token := h.cookies.GetSessionToken(c); token != "" {
		if err := h.sessions.Destroy(c.Request.Context(), token); err != nil {
			LogAndRespondError(c, h.logger, http.StatusInternalServerError, err, "logout failed")
			return
		}
	}

	h.cookies.ClearSessionCookie(c)
	c.Header("HX-Redirect", "/login")
	c.Status(http.StatusNoContent)
}
