package domain

// ProgressKey identifies one reader's state on one story.
type ProgressKey struct {
	UserID  string
	StoryID string
}

// NoProgress is the sentinel returned when a reader has no stored progress
// for a story.
const NoProgress = -1

// ProgressStore defines storage operations for reading progress and tap
// counters. Save writes the index and increments the tap counter atomically.
type ProgressStore interface {
	Save(userID, storyID string, lastBlockIndex int) int
	LastIndex(userID, storyID string) int
	StoryIDsWithProgress(userID string) []string
	TapTotalsByStory() map[string]int
}

// ProgressService defines the reading-progress use cases.
type ProgressService interface {
	Save(userID, storyID string, lastBlockIndex int) (int, error)
	Get(storyID, userID string) (int, error)
}
