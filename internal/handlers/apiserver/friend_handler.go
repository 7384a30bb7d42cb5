package apiserver

import (
	"encoding/json"
	"net/http"

	"social-go/internal/middleware"
	"social-go/internal/services"
)

// FriendHandler bundles the friendship HTTP handlers.
type FriendHandler struct {
	friendshipService services.FriendshipService
}

// NewFriendHandler creates a new FriendHandler instance.
func NewFriendHandler(friendshipService services.FriendshipService) *FriendHandler {
	return &FriendHandler{friendshipService: friendshipService}
}

// ChangeFriendshipRequest selects the target user and the operation.
type ChangeFriendshipRequest struct {
	TargetID  uint   `json:"targetId"`
	Operation string `json:"operation"` // "add" or "remove"
}

// ChangeFriendshipHandler adds or removes a friendship between the
// authenticated user and the target. The relation is symmetric: one add
// makes each user appear in the other's friend list.
func (h *FriendHandler) ChangeFriendshipHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeJSONError(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	var req ChangeFriendshipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	op := services.FriendshipOp(req.Operation)
	if err := h.friendshipService.ChangeFriendship(r.Context(), userID, req.TargetID, op); err != nil {
		writeServiceError(w, err, "failed to change friendship")
		return
	}
	writeJSONResponse(w, http.StatusOK, map[string]string{"message": "friendship updated"})
}

// ListFriendsHandler returns the authenticated user's friends. Users with
// no friendships get an empty list.
func (h *FriendHandler) ListFriendsHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeJSONError(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	friends, err := h.friendshipService.GetFriendsList(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, "failed to list friends")
		return
	}
	writeJSONResponse(w, http.StatusOK, friends)
}
