package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/septumca/story-service/internal/models"
	"gorm.io/gorm"
)

// StoryRepository defines the interface for story data operations.
type StoryRepository interface {
	ListWithCreators(ctx context.Context) ([]models.StoryWithCreator, error)
	Create(ctx context.Context, creatorID int64, title string) (*models.StoryWithCreator, error)
	Delete(ctx context.Context, id int64) error
}

type storyRepository struct {
	db *gorm.DB
}

// NewStoryRepository creates a new StoryRepository instance.
func NewStoryRepository(db *gorm.DB) StoryRepository {
	return &storyRepository{db: db}
}

// ListWithCreators returns all stories joined with their creator's
// username. Inner join: stories whose creator row is gone are omitted.
func (r *storyRepository) ListWithCreators(ctx context.Context) ([]models.StoryWithCreator, error) {
	var stories []models.StoryWithCreator
	err := r.db.WithContext(ctx).
		Table("story").
		Select("story.id, story.title, user.username as creator_name").
		Joins("JOIN user ON user.id = story.creator").
		Order("story.id").
		Scan(&stories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list stories: %w", err)
	}
	return stories, nil
}

// Create validates the creator reference and inserts the story inside a
// single transaction, so the creator cannot disappear between the check
// and the insert.
func (r *storyRepository) Create(ctx context.Context, creatorID int64, title string) (*models.StoryWithCreator, error) {
	var created models.StoryWithCreator
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var creator models.User
		if err := tx.First(&creator, creatorID).Error; err != nil {
			return err
		}

		story := models.Story{Title: title, Creator: creatorID}
		if err := tx.Create(&story).Error; err != nil {
			return err
		}

		created = models.StoryWithCreator{
			ID:          story.ID,
			Title:       story.Title,
			CreatorName: creator.Username,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to create story: %w", err)
	}
	return &created, nil
}

// Delete removes the story with the given id. Deleting a missing id is
// a no-op success.
func (r *storyRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.Story{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete story %d: %w", id, err)
	}
	return nil
}
