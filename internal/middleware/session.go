// Package middleware provides HTTP middleware for the story service.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/septumca/story-service/internal/service"
)

const sessionContextKey = "currentSession"

// Session resolves the session cookie into a server-side session record
// and attaches it to the request context. Requests without a valid
// session pass through unauthenticated.
func Session(sessions service.SessionService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		session, err := sessions.Get(c.Request.Context(), token)
		if err == nil {
			c.Set(sessionContextKey, session)
		}
		c.Next()
	}
}

// RequireSession aborts requests that carry no valid session.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentSession(c); !ok {
			c.String(http.StatusUnauthorized, "Something went wrong: not logged in")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentSession returns the session attached by the Session middleware.
func CurrentSession(c *gin.Context) (*service.Session, bool) {
	value, ok := c.Get(sessionContextKey)
	if !ok {
		return nil, false
	}
	session, ok := value.(*service.Session)
	return session, ok
}
