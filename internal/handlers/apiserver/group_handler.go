package apiserver

import (
	"encoding/json"
	"net/http"
	"strconv"

	"social-go/internal/middleware"
	"social-go/internal/models"
	"social-go/internal/services"

	"github.com/gorilla/mux"
)

// GroupHandler bundles the group and membership HTTP handlers.
type GroupHandler struct {
	groupService services.GroupService
	postService  services.PostService
}

// NewGroupHandler creates a new GroupHandler instance.
func NewGroupHandler(groupService services.GroupService, postService services.PostService) *GroupHandler {
	return &GroupHandler{
		groupService: groupService,
		postService:  postService,
	}
}

// CreateGroupRequest carries the fields of a new group. All three are
// required.
type CreateGroupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// CreateGroupHandler creates a new group. The creator does not become a
// member automatically; membership is a separate join.
func (h *GroupHandler) CreateGroupHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	group, err := h.groupService.CreateGroup(r.Context(), req.Name, req.Description, req.ImageURL)
	if err != nil {
		writeServiceError(w, err, "failed to create group")
		return
	}
	writeJSONResponse(w, http.StatusCreated, group)
}

// ListGroupsHandler returns every group, newest first.
func (h *GroupHandler) ListGroupsHandler(w http.ResponseWriter, r *http.Request) {
	groups, err := h.groupService.ListGroups(r.Context())
	if err != nil {
		writeServiceError(w, err, "failed to list groups")
		return
	}
	writeJSONResponse(w, http.StatusOK, groups)
}

// GroupDetailResponse is a group together with its posts.
type GroupDetailResponse struct {
	Group *models.Group  `json:"group"`
	Posts []*models.Post `json:"posts"`
}

// GetGroupDetailsHandler returns a group and its posts.
func (h *GroupHandler) GetGroupDetailsHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	groupID, err := strconv.ParseUint(vars["groupID"], 10, 32)
	if err != nil {
		writeJSONError(w, "invalid group ID", http.StatusBadRequest)
		return
	}

	group, err := h.groupService.GetGroupByID(r.Context(), uint(groupID))
	if err != nil {
		writeServiceError(w, err, "failed to load group")
		return
	}

	posts, err := h.postService.ListGroupPosts(r.Context(), uint(groupID))
	if err != nil {
		writeServiceError(w, err, "failed to load group posts")
		return
	}

	writeJSONResponse(w, http.StatusOK, GroupDetailResponse{Group: group, Posts: posts})
}

// DeleteGroupHandler deletes a group with all of its posts, comments and
// memberships.
func (h *GroupHandler) DeleteGroupHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	groupID, err := strconv.ParseUint(vars["groupID"], 10, 32)
	if err != nil {
		writeJSONError(w, "invalid group ID", http.StatusBadRequest)
		return
	}

	if err := h.groupService.DeleteGroup(r.Context(), uint(groupID)); err != nil {
		writeServiceError(w, err, "failed to delete group")
		return
	}
	writeJSONResponse(w, http.StatusOK, map[string]string{"message": "group deleted"})
}

// JoinGroupHandler adds the authenticated user to a group. Joining twice
// leaves the membership unchanged.
func (h *GroupHandler) JoinGroupHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeJSONError(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	groupID, err := strconv.ParseUint(vars["groupID"], 10, 32)
	if err != nil {
		writeJSONError(w, "invalid group ID", http.StatusBadRequest)
		return
	}

	if err := h.groupService.JoinGroup(r.Context(), userID, uint(groupID)); err != nil {
		writeServiceError(w, err, "failed to join group")
		return
	}
	writeJSONResponse(w, http.StatusOK, map[string]string{"message": "joined group"})
}

// LeaveGroupHandler removes the authenticated user from a group. Leaving a
// group the user is not a member of is a no-op.
func (h *GroupHandler) LeaveGroupHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeJSONError(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	groupID, err := strconv.ParseUint(vars["groupID"], 10, 32)
	if err != nil {
		writeJSONError(w, "invalid group ID", http.StatusBadRequest)
		return
	}

	if err := h.groupService.LeaveGroup(r.Context(), userID, uint(groupID)); err != nil {
		writeServiceError(w, err, "failed to leave group")
		return
	}
	writeJSONResponse(w, http.StatusOK, map[string]string{"message": "left group"})
}

// GetGroupMembersHandler returns a group's membership rows.
func (h *GroupHandler) GetGroupMembersHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	groupID, err := strconv.ParseUint(vars["groupID"], 10, 32)
	if err != nil {
		writeJSONError(w, "invalid group ID", http.StatusBadRequest)
		return
	}

	members, err := h.groupService.GetGroupMembers(r.Context(), uint(groupID))
	if err != nil {
		writeServiceError(w, err, "failed to list group members")
		return
	}
	writeJSONResponse(w, http.StatusOK, members)
}
