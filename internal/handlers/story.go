package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/septumca/story-service/internal/metrics"
	"github.com/septumca/story-service/internal/service"
)

// StoryHandler handles story mutation requests.
type StoryHandler struct {
	stories service.StoryService
	logger  *slog.Logger
}

// NewStoryHandler creates a new StoryHandler instance.
func NewStoryHandler(stories service.StoryService, logger *slog.Logger) *StoryHandler {
	return &StoryHandler{
		stories: stories,
		logger:  logger,
	}
}

// CreateStoryRequest represents the story creation form payload. Title
// validation is left to the service so blank titles map to 422.
type CreateStoryRequest struct {
	Creator int64  `form:"creator" binding:"required"`
	Title   string `form:"title"`
}

// Create inserts a new story and renders its list-item fragment.
func (h *StoryHandler) Create(c *gin.Context) {
	var req CreateStoryRequest
	if err := c.ShouldBind(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	story, err := h.stories.Create(c.Request.Context(), req.Creator, req.Title)
	if err != nil {
		metrics.StoryOperations.WithLabelValues("create", "failure").Inc()
		if errors.Is(err, service.ErrEmptyTitle) || errors.Is(err, service.ErrCreatorNotFound) {
			RespondError(c, http.StatusUnprocessableEntity, err.Error())
			return
		}
		LogAndRespondError(c, h.logger, http.StatusInternalServerError, err, "failed to create story")
		return
	}

	metrics.StoryOperations.WithLabelValues("create", "success").Inc()
	c.HTML(http.StatusCreated, "story-item.html", story)
}

// Delete removes a story by id. Deleting a story that no longer exists
// is a no-op success.
func (h *StoryHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid story id")
		return
	}

	if err := h.stories.Delete(c.Request.Context(), id); err != nil {
		metrics.StoryOperations.WithLabelValues("delete", "failure").Inc()
		LogAndRespondError(c, h.logger, http.StatusInternalServerError, err, "failed to delete story")
		return
	}

	metrics.StoryOperations.WithLabelValues("delete", "success").Inc()
	c.Status(http.StatusOK)
}
