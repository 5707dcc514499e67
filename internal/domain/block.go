package domain

// BlockType is the kind of content a block holds.
type BlockType string

const (
	BlockText  BlockType = "text"
	BlockChat  BlockType = "chat"
	BlockImage BlockType = "image"
)

// ValidBlockType reports whether t is one of the supported block types.
func ValidBlockType(t BlockType) bool {
	switch t {
	case BlockText, BlockChat, BlockImage:
		return true
	}
	return false
}

// Block is one ordered unit of story content. Content, CharacterID and
// ImageURL are pointers so absent values serialize as null, matching the
// original wire format.
type Block struct {
	ID          string    `json:"id"`
	StoryID     string    `json:"storyId"`
	Type        BlockType `json:"type"`
	Content     *string   `json:"content"`
	CharacterID *string   `json:"characterId"`
	ImageURL    *string   `json:"imageUrl"`
	Index       int       `json:"index"`
}

// BlockEdit carries a partial block mutation. Nil fields are left untouched.
// CharacterID only applies to chat blocks; image blocks reject edits
// entirely.
type BlockEdit struct {
	Content     *string `json:"content"`
	CharacterID *string `json:"characterId"`
}

// BlockService defines the block authoring use cases. Edit and Delete locate
// the block by id alone, scanning across stories.
type BlockService interface {
	List(storyID string) ([]Block, error)
	Append(storyID string, blockType BlockType, content, characterID, imageURL *string) (Block, error)
	Edit(blockID string, edit BlockEdit) (Block, error)
	Delete(blockID string) error
}
