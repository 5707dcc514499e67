package domain

// StoryStatus is the publication state of a story.
type StoryStatus string

const (
	StoryDraft     StoryStatus = "draft"
	StoryPublished StoryStatus = "published"
)

// Story represents a short-form interactive story. Blocks live in a parallel
// ordered collection keyed by the story id.
type Story struct {
	ID          string      `json:"id"`
	AuthorID    string      `json:"authorId"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Genre       string      `json:"genre"`
	Tags        []string    `json:"tags"`
	Original    bool        `json:"original"`
	CoverURL    string      `json:"coverUrl"`
	Status      StoryStatus `json:"status"`
	CreatedAt   int64       `json:"createdAt"`
	UpdatedAt   int64       `json:"updatedAt"`
}

// StoryUpsert is the input of the create-or-update operation. An empty or
// unknown ID selects the create path. AuthorID, Status and CreatedAt are
// immutable on the update path.
type StoryUpsert struct {
	ID          string
	AuthorID    string
	Title       string
	Description string
	Genre       string
	Tags        []string
	Original    bool
	CoverURL    string
}

// StoryStore defines storage operations for stories and their blocks. Blocks
// share the store's lock with stories so block mutations and the parent
// story's updatedAt bump are atomic.
type StoryStore interface {
	Upsert(input StoryUpsert) Story
	GetByID(id string) (Story, error)
	Publish(id string) (Story, error)
	ListByAuthor(authorID string) []Story
	ListByAuthorPublished(authorID string) []Story
	ListPublishedNewest(limit int) []Story
	ListByIDs(ids []string) []Story

	Blocks(storyID string) ([]Block, error)
	AppendBlock(storyID string, blockType BlockType, content, characterID, imageURL *string) (Block, error)
	EditBlock(blockID string, edit BlockEdit) (Block, error)
	DeleteBlock(blockID string) error
}

// StoryService defines the story catalog use cases.
type StoryService interface {
	YourStories(userID string) ([]Story, error)
	NewestStories(limit int) []Story
	ReadingStories(userID string) ([]Story, error)
	Get(storyID string) (Story, error)
	Upsert(input StoryUpsert) (Story, error)
	Publish(storyID string) (Story, error)
}
