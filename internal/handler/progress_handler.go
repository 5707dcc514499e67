package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/chocolate-not-availabe/blokify/internal/domain"
)

// ProgressHandler handles reading-progress requests.
type ProgressHandler struct {
	progressService domain.ProgressService
	logger          domain.Logger
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(progressService domain.ProgressService, logger domain.Logger) *ProgressHandler {
	return &ProgressHandler{
		progressService: progressService,
		logger:          logger,
	}
}

// SaveProgress overwrites the reader's last block index and counts one tap.
func (h *ProgressHandler) SaveProgress(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID         string `json:"userId"`
		StoryID        string `json:"storyId"`
		LastBlockIndex int    `json:"lastBlockIndex"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	taps, err := h.progressService.Save(req.UserID, req.StoryID, req.LastBlockIndex)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":               true,
		"tapCountForThisReader": taps,
	})
}

// GetProgress returns the reader's stored last block index for a story, or
// -1 when none is recorded.
func (h *ProgressHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	storyID := mux.Vars(r)["storyId"]
	userID := r.URL.Query().Get("userId")

	lastIndex, err := h.progressService.Get(storyID, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"lastBlockIndex": lastIndex})
}
