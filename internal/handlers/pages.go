package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/septumca/story-service/internal/middleware"
	"github.com/septumca/story-service/internal/service"
)

// PageHandler renders pages and read-only fragments.
type PageHandler struct {
	stories service.StoryService
	logger  *slog.Logger
}

// NewPageHandler creates a new PageHandler instance.
func NewPageHandler(stories service.StoryService, logger *slog.Logger) *PageHandler {
	return &PageHandler{
		stories: stories,
		logger:  logger,
	}
}

// Index renders the landing page.
func (h *PageHandler) Index(c *gin.Context) {
	session, _ := middleware.CurrentSession(c)
	c.HTML(http.StatusOK, "index.html", gin.H{"Session": session})
}

// LoginForm renders the login form.
func (h *PageHandler) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", nil)
}

// StoryList renders the story list fragment.
func (h *PageHandler) StoryList(c *gin.Context) {
	stories, err := h.stories.List(c.Request.Context())
	if err != nil {
		LogAndRespondError(c, h.logger, http.StatusInternalServerError, err, "failed to list stories")
		return
	}
	c.HTML(http.StatusOK, "story-list.html", gin.H{"Stories": stories})
}

// StoryCreateForm renders the creation form with the user picker.
func (h *PageHandler) StoryCreateForm(c *gin.Context) {
	users, err := h.stories.Users(c.Request.Context())
	if err != nil {
		LogAndRespondError(c, h.logger, http.StatusInternalServerError, err, "failed to list users")
		return
	}
	c.HTML(http.StatusOK, "story-create.html", gin.H{"Users": users})
}
