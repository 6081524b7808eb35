package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/septumca/story-service/internal/config"
)

// SessionCookie is the name of the session cookie.
const SessionCookie = "session_id"

// CookieHelper manages the session cookie.
type CookieHelper struct {
	config config.CookieConfig
}

// NewCookieHelper creates a new cookie helper with the given configuration.
func NewCookieHelper(config config.CookieConfig) *CookieHelper {
	return &CookieHelper{config: config}
}

// SetSessionCookie attaches the session token to the response.
func (h *CookieHelper) SetSessionCookie(c *gin.Context, token string, ttl time.Duration) {
	h.setCookie(c, SessionCookie, token, int(ttl.Seconds()))
}

// ClearSessionCookie removes the session cookie.
func (h *CookieHelper) ClearSessionCookie(c *gin.Context) {
	h.setCookie(c, SessionCookie, "", -1)
}

// GetSessionToken retrieves the session token from the request cookie.
func (h *CookieHelper) GetSessionToken(c *gin.Context) string {
	token, err := c.Cookie(SessionCookie)
	if err != nil {
		return ""
	}
	return token
}

func (h *CookieHelper) setCookie(c *gin.Context, name, value string, maxAge int) {
	c.SetSameSite(h.config.SameSite)
	c.SetCookie(
		name,
		value,
		maxAge,
		h.config.Path,
		h.config.Domain,
		h.config.Secure,
		true, // httpOnly - always true for the session cookie
	)
}
