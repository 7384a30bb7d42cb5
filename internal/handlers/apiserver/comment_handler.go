package apiserver

import (
	"encoding/json"
	"net/http"
	"strconv"

	"social-go/internal/middleware"
	"social-go/internal/services"

	"github.com/gorilla/mux"
)

// CommentHandler bundles the comment HTTP handlers.
type CommentHandler struct {
	commentService services.CommentService
}

// NewCommentHandler creates a new CommentHandler instance.
func NewCommentHandler(commentService services.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// CreateCommentRequest carries the comment body.
type CreateCommentRequest struct {
	Body string `json:"body"`
}

// CreateCommentHandler adds a comment to a post, authored by the
// authenticated user.
func (h *CommentHandler) CreateCommentHandler(w http.ResponseWriter, r *http.Request) {
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

	var req CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	comment, err := h.commentService.CreateComment(r.Context(), uint(postID), userID, req.Body)
	if err != nil {
		writeServiceError(w, err, "failed to create comment")
		return
	}
	writeJSONResponse(w, http.StatusCreated, comment)
}

// DeleteCommentHandler deletes a comment.
func (h *CommentHandler) DeleteCommentHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	commentID, err := strconv.ParseUint(vars["commentID"], 10, 32)
	if err != nil {
		writeJSONError(w, "invalid comment ID", http.StatusBadRequest)
		return
	}

	if err := h.commentService.DeleteComment(r.Context(), uint(commentID)); err != nil {
		writeServiceError(w, err, "failed to delete comment")
		return
	}
	writeJSONResponse(w, http.StatusOK, map[string]string{"message": "comment deleted"})
}
