package service

import (
	"errors"
	"strings"

	"github.com/chocolate-not-availabe/blokify/internal/domain"
	"github.com/chocolate-not-availabe/blokify/pkg/apperrors"
)

// defaultNewestLimit caps the newest-stories listing when the caller gives
// no usable limit.
const defaultNewestLimit = 20

type storyService struct {
	stories         domain.StoryStore
	progress        domain.ProgressStore
	logger          domain.Logger
	defaultAuthorID string
}

// NewStoryService creates the story catalog service.
func NewStoryService(stories domain.StoryStore, progress domain.ProgressStore, logger domain.Logger, defaultAuthorID string) domain.StoryService {
	return &storyService{
		stories:         stories,
		progress:        progress,
		logger:          logger,
		defaultAuthorID: defaultAuthorID,
	}
}

// YourStories returns the user's published stories, most recently updated
// first.
func (s *storyService) YourStories(userID string) ([]domain.Story, error) {
	if userID == "" {
		return nil, apperrors.NewValidationError("userId is required")
	}
	return s.stories.ListByAuthorPublished(userID), nil
}

// NewestStories returns published stories by createdAt descending. A
// non-positive limit falls back to the default of 20.
func (s *storyService) NewestStories(limit int) []domain.Story {
	if limit <= 0 {
		limit = defaultNewestLimit
	}
	return s.stories.ListPublishedNewest(limit)
}

// ReadingStories returns the stories the user has a progress record for,
// most recently updated first. Records pointing at stories that no longer
// exist are silently skipped.
func (s *storyService) ReadingStories(userID string) ([]domain.Story, error) {
	if userID == "" {
		return nil, apperrors.NewValidationError("userId is required")
	}
	return s.stories.ListByIDs(s.progress.StoryIDsWithProgress(userID)), nil
}

// Get returns one story by id.
func (s *storyService) Get(storyID string) (domain.Story, error) {
	story, err := s.stories.GetByID(storyID)
	if err != nil {
		return domain.Story{}, apperrors.NewNotFoundError("Story not found")
	}
	return story, nil
}

// Upsert creates a story (empty or unknown id) or updates one in place.
// New stories start as drafts with an empty block list.
func (s *storyService) Upsert(input domain.StoryUpsert) (domain.Story, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	input.Genre = strings.TrimSpace(input.Genre)

	if input.Title == "" {
		return domain.Story{}, apperrors.NewValidationError("Title is required")
	}
	if input.AuthorID == "" {
		input.AuthorID = s.defaultAuthorID
	}
	if input.Tags == nil {
		input.Tags = []string{}
	}

	story := s.stories.Upsert(input)
	s.logger.Debug("Story upserted", "story_id", story.ID, "author_id", story.AuthorID)
	return story, nil
}

// Publish transitions a story to published. The transition is one-way and
// idempotent beyond refreshing updatedAt.
func (s *storyService) Publish(storyID string) (domain.Story, error) {
	story, err := s.stories.Publish(storyID)
	if err != nil {
		if errors.Is(err, domain.ErrStoryNotFound) {
			return domain.Story{}, apperrors.NewNotFoundError("Story not found")
		}
		return domain.Story{}, apperrors.NewInternalError("failed to publish story", err)
	}
	s.logger.Info("Story published", "story_id", story.ID)
	return story, nil
}
