// Package handlers contains HTTP request handlers for the story service.
package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// RespondError writes a plain-text error fragment with the given status.
func RespondError(c *gin.Context, status int, message string) {
	c.String(status, "Something went wrong: %s", message)
}

// LogAndRespondError logs the underlying error and writes a generic
// error fragment. The real cause never reaches the client.
func LogAndRespondError(c *gin.Context, logger *slog.Logger, status int, err error, message string) {
	logger.Error(message, "error", err, "method", c.Request.Method, "path", c.Request.URL.Path)
	RespondError(c, status, message)
}
