package store

import (
	"sync"

	"github.com/chocolate-not-availabe/blokify/internal/domain"
)

// ProgressStore keeps per-(reader, story) reading progress and tap counters.
// Both maps share one mutex so the index overwrite and the tap increment of
// a save land atomically.
type ProgressStore struct {
	mu        sync.RWMutex
	lastIndex map[domain.ProgressKey]int
	taps      map[domain.ProgressKey]int
}

// NewProgressStore creates an empty progress store.
func NewProgressStore() *ProgressStore {
	return &ProgressStore{
		lastIndex: make(map[domain.ProgressKey]int),
		taps:      make(map[domain.ProgressKey]int),
	}
}

// Save unconditionally overwrites the reader's last block index for the
// story and adds exactly one tap, returning the new cumulative tap count.
// The index is stored as-is; it is not checked against the story's block
// count.
func (s *ProgressStore) Save(userID, storyID string, lastBlockIndex int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := domain.ProgressKey{UserID: userID, StoryID: storyID}
	s.lastIndex[key] = lastBlockIndex
	s.taps[key]++
	return s.taps[key]
}

// LastIndex returns the reader's stored last block index for the story, or
// domain.NoProgress when no record exists.
func (s *ProgressStore) LastIndex(userID, storyID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.lastIndex[domain.ProgressKey{UserID: userID, StoryID: storyID}]
	if !ok {
		return domain.NoProgress
	}
	return idx
}

// StoryIDsWithProgress returns the ids of every story the reader has a
// progress record for.
func (s *ProgressStore) StoryIDsWithProgress(userID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := []string{}
	for key := range s.lastIndex {
		if key.UserID == userID {
			ids = append(ids, key.StoryID)
		}
	}
	return ids
}

// TapTotalsByStory returns a snapshot of tap counts per story, summed over
// all readers.
func (s *ProgressStore) TapTotalsByStory() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	totals := make(map[string]int, len(s.taps))
	for key, count := range s.taps {
		totals[key.StoryID] += count
	}
	return totals
}
