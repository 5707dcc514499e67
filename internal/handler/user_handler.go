package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/chocolate-not-availabe/blokify/internal/domain"
)

// UserHandler handles profile requests.
type UserHandler struct {
	userService domain.UserService
	logger      domain.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService domain.UserService, logger domain.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// GetProfile returns the public user plus derived counters.
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	profile, err := h.userService.Profile(userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// UpdateProfile applies a partial update to username, bio and avatarUrl.
// Absent fields keep their stored value; empty strings overwrite.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	var req domain.ProfileUpdate
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.userService.UpdateProfile(userID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}
