package service

import (
	"github.com/chocolate-not-availabe/blokify/internal/domain"
	"github.com/chocolate-not-availabe/blokify/pkg/apperrors"
)

type progressService struct {
	progress domain.ProgressStore
	logger   domain.Logger
}

// NewProgressService creates the reading-progress service.
func NewProgressService(progress domain.ProgressStore, logger domain.Logger) domain.ProgressService {
	return &progressService{
		progress: progress,
		logger:   logger,
	}
}

// Save overwrites the reader's last block index for the story and counts one
// tap, returning the new cumulative tap count. The index is accepted as-is;
// there is no bounds check against the story's block count.
func (s *progressService) Save(userID, storyID string, lastBlockIndex int) (int, error) {
	if userID == "" || storyID == "" {
		return 0, apperrors.NewValidationError("userId and storyId required")
	}
	return s.progress.Save(userID, storyID, lastBlockIndex), nil
}

// Get returns the reader's stored last block index for the story, or the -1
// sentinel when no record exists.
func (s *progressService) Get(storyID, userID string) (int, error) {
	if userID == "" {
		return 0, apperrors.NewValidationError("userId required")
	}
	return s.progress.LastIndex(userID, storyID), nil
}
