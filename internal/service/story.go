package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/septumca/story-service/internal/models"
	"github.com/septumca/story-service/internal/repository"
)

var (
	// ErrEmptyTitle is returned when a story title is empty or
	// whitespace-only.
	ErrEmptyTitle = errors.New("title must not be empty")
	// ErrCreatorNotFound is returned when the creator id does not
	// reference an existing user.
	ErrCreatorNotFound = errors.New("creator not found")
)

// StoryService implements the story list/create/delete operations.
type StoryService interface {
	List(ctx context.Context) ([]models.StoryWithCreator, error)
	Create(ctx context.Context, creatorID int64, title string) (*models.StoryWithCreator, error)
	Delete(ctx context.Context, id int64) error
	Users(ctx context.Context) ([]models.User, error)
}

type storyService struct {
	storyRepo repository.StoryRepository
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// NewStoryService creates a new StoryService instance.
func NewStoryService(storyRepo repository.StoryRepository, userRepo repository.UserRepository, logger *slog.Logger) StoryService {
	return &storyService{
		storyRepo: storyRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

// List re-queries the store on every call; no caching.
func (s *storyService) List(ctx context.Context) ([]models.StoryWithCreator, error) {
	return s.storyRepo.ListWithCreators(ctx)
}

func (s *storyService) Create(ctx context.Context, creatorID int64, title string) (*models.StoryWithCreator, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	story, err := s.storyRepo.Create(ctx, creatorID, title)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCreatorNotFound
		}
		return nil, err
	}

	s.logger.Info("story created", "story_id", story.ID, "creator", story.CreatorName)
	return story, nil
}

// Delete is idempotent by id: deleting a missing story succeeds.
func (s *storyService) Delete(ctx context.Context, id int64) error {
	if err := s.storyRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("story deleted", "story_id", id)
	return nil
}

// Users returns the user list for the creation-form picker.
func (s *storyService) Users(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List(ctx)
}
