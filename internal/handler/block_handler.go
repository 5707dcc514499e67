package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/chocolate-not-availabe/blokify/internal/domain"
)

// BlockHandler handles block authoring requests.
type BlockHandler struct {
	blockService domain.BlockService
	logger       domain.Logger
}

// NewBlockHandler creates a new block handler
func NewBlockHandler(blockService domain.BlockService, logger domain.Logger) *BlockHandler {
	return &BlockHandler{
		blockService: blockService,
		logger:       logger,
	}
}

// ListBlocks returns a story's ordered block sequence.
func (h *BlockHandler) ListBlocks(w http.ResponseWriter, r *http.Request) {
	blocks, err := h.blockService.List(mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, blocks)
}

// AppendBlock places a new block at the end of a story.
func (h *BlockHandler) AppendBlock(w http.ResponseWriter, r *http.Request) {
	storyID := mux.Vars(r)["id"]

	var req struct {
		Type        domain.BlockType `json:"type"`
		Content     *string          `json:"content"`
		CharacterID *string          `json:"characterId"`
		ImageURL    *string          `json:"imageUrl"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	block, err := h.blockService.Append(storyID, req.Type, req.Content, req.CharacterID, req.ImageURL)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, block)
}

// EditBlock applies a partial overwrite to a text or chat block located by
// id alone.
func (h *BlockHandler) EditBlock(w http.ResponseWriter, r *http.Request) {
	blockID := mux.Vars(r)["id"]

	var req domain.BlockEdit
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	block, err := h.blockService.Edit(blockID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, block)
}

// DeleteBlock removes a block and reindexes the rest of its story.
func (h *BlockHandler) DeleteBlock(w http.ResponseWriter, r *http.Request) {
	if err := h.blockService.Delete(mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
