package store

import (
	"sort"
	"sync"
	"time"

	"github.com/chocolate-not-availabe/blokify/internal/domain"
)

// StoryStore keeps stories and their ordered block lists in memory. Both
// live under one mutex: every block mutation also bumps the parent story's
// updatedAt, and that pair must be atomic.
//
// Invariant: after any mutation returns, each story's block list carries
// index values exactly 0..n-1 in list order.
type StoryStore struct {
	mu      sync.RWMutex
	stories map[string]domain.Story
	blocks  map[string][]domain.Block

	now func() int64
}

// NewStoryStore creates an empty story store.
func NewStoryStore() *StoryStore {
	return &StoryStore{
		stories: make(map[string]domain.Story),
		blocks:  make(map[string][]domain.Block),
		now:     func() int64 { return time.Now().Unix() },
	}
}

// Upsert creates a story or updates one in place. The update path is taken
// only when the input id matches an existing story; an unknown id falls
// through to create under a freshly generated id. On update, authorId,
// status and createdAt are untouched and coverUrl keeps its prior value when
// the incoming one is empty.
func (s *StoryStore) Upsert(input domain.StoryUpsert) domain.Story {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts := s.now()

	if story, ok := s.stories[input.ID]; ok {
		story.Title = input.Title
		story.Description = input.Description
		story.Genre = input.Genre
		story.Tags = input.Tags
		story.Original = input.Original
		if input.CoverURL != "" {
			story.CoverURL = input.CoverURL
		}
		story.UpdatedAt = ts
		s.stories[story.ID] = story
		return story
	}

	story := domain.Story{
		ID:          newEntityID("s"),
		AuthorID:    input.AuthorID,
		Title:       input.Title,
		Description: input.Description,
		Genre:       input.Genre,
		Tags:        input.Tags,
		Original:    input.Original,
		CoverURL:    input.CoverURL,
		Status:      domain.StoryDraft,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
	s.stories[story.ID] = story
	s.blocks[story.ID] = []domain.Block{}
	return story
}

// GetByID returns the story with the given id.
func (s *StoryStore) GetByID(id string) (domain.Story, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	story, ok := s.stories[id]
	if !ok {
		return domain.Story{}, domain.ErrStoryNotFound
	}
	return story, nil
}

// Publish transitions a story to published and bumps updatedAt. Publishing
// an already-published story only refreshes the timestamp; there is no way
// back to draft.
func (s *StoryStore) Publish(id string) (domain.Story, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	story, ok := s.stories[id]
	if !ok {
		return domain.Story{}, domain.ErrStoryNotFound
	}
	story.Status = domain.StoryPublished
	story.UpdatedAt = s.now()
	s.stories[id] = story
	return story, nil
}

// ListByAuthor returns every story by the author, any status, unsorted.
func (s *StoryStore) ListByAuthor(authorID string) []domain.Story {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []domain.Story{}
	for _, story := range s.stories {
		if story.AuthorID == authorID {
			result = append(result, story)
		}
	}
	return result
}

// ListByAuthorPublished returns the author's published stories, most
// recently updated first.
func (s *StoryStore) ListByAuthorPublished(authorID string) []domain.Story {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []domain.Story{}
	for _, story := range s.stories {
		if story.AuthorID == authorID && story.Status == domain.StoryPublished {
			result = append(result, story)
		}
	}
	sortByUpdatedAtDesc(result)
	return result
}

// ListPublishedNewest returns published stories by createdAt descending,
// truncated to limit.
func (s *StoryStore) ListPublishedNewest(limit int) []domain.Story {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []domain.Story{}
	for _, story := range s.stories {
		if story.Status == domain.StoryPublished {
			result = append(result, story)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt > result[j].CreatedAt
	})
	if limit >= 0 && len(result) > limit {
		result = result[:limit]
	}
	return result
}

// ListByIDs returns the stories that still exist among the given ids,
// silently skipping unknown ones, most recently updated first.
func (s *StoryStore) ListByIDs(ids []string) []domain.Story {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []domain.Story{}
	for _, id := range ids {
		if story, ok := s.stories[id]; ok {
			result = append(result, story)
		}
	}
	sortByUpdatedAtDesc(result)
	return result
}

// Blocks returns the ordered block list of a story. A story id that was
// never initialized with a block list yields domain.ErrStoryNotFound.
func (s *StoryStore) Blocks(storyID string) ([]domain.Block, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list, ok := s.blocks[storyID]
	if !ok {
		return nil, domain.ErrStoryNotFound
	}
	out := make([]domain.Block, len(list))
	copy(out, list)
	return out, nil
}

// AppendBlock places a new block at the end of the story's list and bumps
// the story's updatedAt.
func (s *StoryStore) AppendBlock(storyID string, blockType domain.BlockType, content, characterID, imageURL *string) (domain.Block, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	story, ok := s.stories[storyID]
	if !ok {
		return domain.Block{}, domain.ErrStoryNotFound
	}

	list := s.blocks[storyID]
	block := domain.Block{
		ID:          newEntityID("b"),
		StoryID:     storyID,
		Type:        blockType,
		Content:     content,
		CharacterID: characterID,
		ImageURL:    imageURL,
		Index:       len(list),
	}
	s.blocks[storyID] = append(list, block)

	story.UpdatedAt = s.now()
	s.stories[storyID] = story
	return block, nil
}

// EditBlock locates a block by id across all stories and applies a partial
// overwrite. Image blocks reject edits; characterId only applies to chat
// blocks. The parent story's updatedAt is bumped on success.
func (s *StoryStore) EditBlock(blockID string, edit domain.BlockEdit) (domain.Block, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for storyID, list := range s.blocks {
		for i, block := range list {
			if block.ID != blockID {
				continue
			}
			if block.Type == domain.BlockImage {
				return domain.Block{}, domain.ErrBlockNotEditable
			}
			if edit.Content != nil {
				block.Content = edit.Content
			}
			if block.Type == domain.BlockChat && edit.CharacterID != nil {
				block.CharacterID = edit.CharacterID
			}
			list[i] = block

			story := s.stories[storyID]
			story.UpdatedAt = s.now()
			s.stories[storyID] = story
			return block, nil
		}
	}
	return domain.Block{}, domain.ErrBlockNotFound
}

// DeleteBlock locates a block by id across all stories, removes it and
// reindexes the remaining blocks of that story to 0..n-1 in their current
// order. The parent story's updatedAt is bumped on success.
func (s *StoryStore) DeleteBlock(blockID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for storyID, list := range s.blocks {
		for i, block := range list {
			if block.ID != blockID {
				continue
			}
			list = append(list[:i], list[i+1:]...)
			for idx := range list {
				list[idx].Index = idx
			}
			s.blocks[storyID] = list

			story := s.stories[storyID]
			story.UpdatedAt = s.now()
			s.stories[storyID] = story
			return nil
		}
	}
	return domain.ErrBlockNotFound
}

func sortByUpdatedAtDesc(stories []domain.Story) {
	sort.SliceStable(stories, func(i, j int) bool {
		return stories[i].UpdatedAt > stories[j].UpdatedAt
	})
}
