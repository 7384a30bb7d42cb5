package apiserver

import (
	"encoding/json"
	"net/http"
	"strconv"

	"social-go/internal/middleware"
	"social-go/internal/services"

	"github.com/gorilla/mux"
)

// UserHandler bundles the user directory and profile HTTP handlers.
type UserHandler struct {
	userService    services.UserService
	profileService services.ProfileService
}

// NewUserHandler creates a new UserHandler instance.
func NewUserHandler(userService services.UserService, profileService services.ProfileService) *UserHandler {
	return &UserHandler{
		userService:    userService,
		profileService: profileService,
	}
}

// GetMeHandler returns the authenticated user's own record.
func (h *UserHandler) GetMeHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeJSONError(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	user, err := h.userService.GetUserProfile(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, "failed to load user")
		return
	}
	user.PasswordHash = ""
	writeJSONResponse(w, http.StatusOK, user)
}

// UpdateProfileRequest carries the editable profile fields.
type UpdateProfileRequest struct {
	Nickname  string `json:"nickname"`
	AvatarURL string `json:"avatarUrl"`
	Bio       string `json:"bio"`
}

// UpdateMeHandler updates the authenticated user's profile fields.
func (h *UserHandler) UpdateMeHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeJSONError(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	user, err := h.userService.UpdateUserProfile(r.Context(), userID, req.Nickname, req.AvatarURL, req.Bio)
	if err != nil {
		writeServiceError(w, err, "failed to update profile")
		return
	}
	user.PasswordHash = ""
	writeJSONResponse(w, http.StatusOK, user)
}

// ListUsersHandler returns the full user directory (basic info only).
func (h *UserHandler) ListUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		writeServiceError(w, err, "failed to list users")
		return
	}
	writeJSONResponse(w, http.StatusOK, users)
}

// GetProfileHandler returns the full profile page composition for a user:
// their record, groups, posts, images, friends, locations, and the user
// directory, assembled in one response.
func (h *UserHandler) GetProfileHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID, err := strconv.ParseUint(vars["userID"], 10, 32)
	if err != nil {
		writeJSONError(w, "invalid user ID", http.StatusBadRequest)
		return
	}

	profile, err := h.profileService.GetProfile(r.Context(), uint(userID))
	if err != nil {
		writeServiceError(w, err, "failed to load profile")
		return
	}
	profile.User.PasswordHash = ""
	writeJSONResponse(w, http.StatusOK, profile)
}
