package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/chocolate-not-availabe/blokify/internal/domain"
)

// StoryHandler handles story catalog requests.
type StoryHandler struct {
	storyService domain.StoryService
	logger       domain.Logger
}

// NewStoryHandler creates a new story handler
func NewStoryHandler(storyService domain.StoryService, logger domain.Logger) *StoryHandler {
	return &StoryHandler{
		storyService: storyService,
		logger:       logger,
	}
}

// YourStories lists the caller's published stories, most recently updated
// first.
func (h *StoryHandler) YourStories(w http.ResponseWriter, r *http.Request) {
	stories, err := h.storyService.YourStories(r.URL.Query().Get("userId"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stories)
}

// NewestStories lists the most recently created published stories.
func (h *StoryHandler) NewestStories(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}
	writeJSON(w, http.StatusOK, h.storyService.NewestStories(limit))
}

// ReadingStories lists the stories the caller has reading progress on.
func (h *StoryHandler) ReadingStories(w http.ResponseWriter, r *http.Request) {
	stories, err := h.storyService.ReadingStories(r.URL.Query().Get("userId"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stories)
}

// GetStory returns one story by id.
func (h *StoryHandler) GetStory(w http.ResponseWriter, r *http.Request) {
	story, err := h.storyService.Get(mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, story)
}

// UpsertStory creates a story or updates an existing one in place. The
// original flag defaults to true when absent.
func (h *StoryHandler) UpsertStory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID          string   `json:"id"`
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Genre       string   `json:"genre"`
		Tags        []string `json:"tags"`
		Original    *bool    `json:"original"`
		AuthorID    string   `json:"authorId"`
		CoverURL    string   `json:"coverUrl"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	original := true
	if req.Original != nil {
		original = *req.Original
	}

	story, err := h.storyService.Upsert(domain.StoryUpsert{
		ID:          req.ID,
		AuthorID:    req.AuthorID,
		Title:       req.Title,
		Description: req.Description,
		Genre:       req.Genre,
		Tags:        req.Tags,
		Original:    original,
		CoverURL:    req.CoverURL,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, story)
}

// PublishStory transitions a story to published.
func (h *StoryHandler) PublishStory(w http.ResponseWriter, r *http.Request) {
	story, err := h.storyService.Publish(mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, story)
}
