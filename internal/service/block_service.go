package service

import (
	"errors"

	"github.com/chocolate-not-availabe/blokify/internal/domain"
	"github.com/chocolate-not-availabe/blokify/pkg/apperrors"
)

type blockService struct {
	stories domain.StoryStore
	logger  domain.Logger
}

// NewBlockService creates the block authoring service. Blocks live in the
// story store so mutations and the parent story's updatedAt bump share one
// lock.
func NewBlockService(stories domain.StoryStore, logger domain.Logger) domain.BlockService {
	return &blockService{
		stories: stories,
		logger:  logger,
	}
}

// List returns a story's ordered block sequence.
func (s *blockService) List(storyID string) ([]domain.Block, error) {
	blocks, err := s.stories.Blocks(storyID)
	if err != nil {
		return nil, apperrors.NewNotFoundError("Story not found")
	}
	return blocks, nil
}

// Append validates the block type and places the block at the end of the
// story's list.
func (s *blockService) Append(storyID string, blockType domain.BlockType, content, characterID, imageURL *string) (domain.Block, error) {
	if !domain.ValidBlockType(blockType) {
		return domain.Block{}, apperrors.NewValidationError("Invalid block type")
	}

	block, err := s.stories.AppendBlock(storyID, blockType, content, characterID, imageURL)
	if err != nil {
		if errors.Is(err, domain.ErrStoryNotFound) {
			return domain.Block{}, apperrors.NewNotFoundError("Story not found")
		}
		return domain.Block{}, apperrors.NewInternalError("failed to append block", err)
	}
	return block, nil
}

// Edit applies a partial overwrite to a text or chat block located by id
// alone. Image blocks reject edits.
func (s *blockService) Edit(blockID string, edit domain.BlockEdit) (domain.Block, error) {
	block, err := s.stories.EditBlock(blockID, edit)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBlockNotEditable):
			return domain.Block{}, apperrors.NewValidationError("Editing images not supported")
		case errors.Is(err, domain.ErrBlockNotFound):
			return domain.Block{}, apperrors.NewNotFoundError("Block not found")
		}
		return domain.Block{}, apperrors.NewInternalError("failed to edit block", err)
	}
	return block, nil
}

// Delete removes a block located by id alone and reindexes the remaining
// blocks of its story.
func (s *blockService) Delete(blockID string) error {
	if err := s.stories.DeleteBlock(blockID); err != nil {
		if errors.Is(err, domain.ErrBlockNotFound) {
			return apperrors.NewNotFoundError("Block not found")
		}
		return apperrors.NewInternalError("failed to delete block", err)
	}
	return nil
}
