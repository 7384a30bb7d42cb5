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

// PostHandler bundles the post and like HTTP handlers.
type PostHandler struct {
	postService    services.PostService
	commentService services.CommentService
}

// NewPostHandler creates a new PostHandler instance.
func NewPostHandler(postService services.PostService, commentService services.CommentService) *PostHandler {
	return &PostHandler{
		postService:    postService,
		commentService: commentService,
	}
}

// PostRequest carries a post's editable fields.
type PostRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// CreatePostHandler publishes a new post in a group, authored by the
// authenticated user.
func (h *PostHandler) CreatePostHandler(w http.ResponseWriter, r *http.Request) {
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

	var req PostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	post, err := h.postService.CreatePost(r.Context(), uint(groupID), userID, req.Title, req.Body)
	if err != nil {
		writeServiceError(w, err, "failed to create post")
		return
	}
	writeJSONResponse(w, http.StatusCreated, post)
}

// PostDetailResponse is a post together with its comments and likers.
type PostDetailResponse struct {
	Post     *models.Post      `json:"post"`
	Comments []*models.Comment `json:"comments"`
	LikerIDs []uint            `json:"likerIds"`
}

// GetPostHandler returns a post with its comments and the IDs of the users
// who liked it.
func (h *PostHandler) GetPostHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	postID, err := strconv.ParseUint(vars["postID"], 10, 32)
	if err != nil {
		writeJSONError(w, "invalid post ID", http.StatusBadRequest)
		return
	}

	post, err := h.postService.GetPost(r.Context(), uint(postID))
	if err != nil {
		writeServiceError(w, err, "failed to load post")
		return
	}

	comments, err := h.commentService.ListPostComments(r.Context(), uint(postID))
	if err != nil {
		writeServiceError(w, err, "failed to load comments")
		return
	}

	likerIDs, err := h.postService.GetLikerIDs(r.Context(), uint(postID))
	if err != nil {
		writeServiceError(w, err, "failed to load likers")
		return
	}

	writeJSONResponse(w, http.StatusOK, PostDetailResponse{
		Post:     post,
		Comments: comments,
		LikerIDs: likerIDs,
	})
}

// EditPostHandler updates a post's title and body. The publish date is
// refreshed; the author stays the original author no matter who edits.
func (h *PostHandler) EditPostHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	postID, err := strconv.ParseUint(vars["postID"], 10, 32)
	if err != nil {
		writeJSONError(w, "invalid post ID", http.StatusBadRequest)
		return
	}

	var req PostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	post, err := h.postService.EditPost(r.Context(), uint(postID), req.Title, req.Body)
	if err != nil {
		writeServiceError(w, err, "failed to edit post")
		return
	}
	writeJSONResponse(w, http.StatusOK, post)
}

// DeletePostHandler deletes a post together with its comments and likes.
func (h *PostHandler) DeletePostHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	postID, err := strconv.ParseUint(vars["postID"], 10, 32)
	if err != nil {
		writeJSONError(w, "invalid post ID", http.StatusBadRequest)
		return
	}

	if err := h.postService.DeletePost(r.Context(), uint(postID)); err != nil {
		writeServiceError(w, err, "failed to delete post")
		return
	}
	writeJSONResponse(w, http.StatusOK, map[string]string{"message": "post deleted"})
}

// LikePostHandler records the authenticated user's like on a post. Liking a
// post twice changes nothing; there is no way to take a like back.
func (h *PostHandler) LikePostHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeJSONError(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	postID, err := strconv.ParseUint(vars["postID"], 10, 32)
	if err != nil {
		writeJSONError(w, "invalid post ID", http.StatusBadRequest)
		return
	}

	post, err := h.postService.LikePost(r.Context(), userID, uint(postID))
	if err != nil {
		writeServiceError(w, err, "failed to like post")
		return
	}
	writeJSONResponse(w, http.StatusOK, post)
}
