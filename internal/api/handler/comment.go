package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/vidtube/vidtube/internal/domain/model"
	"github.com/vidtube/vidtube/internal/usecase"
)

type CommentRequest struct {
	Text string `json:"text"`
}

type CommentResponse struct {
	ID        string `json:"id"`
	OwnerID   string `json:"ownerId"`
	VideoID   string `json:"videoId"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// CommentHandler handles comment-related HTTP requests.
type CommentHandler struct {
	svc usecase.CommentService
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(svc usecase.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

// Add handles POST /v1/videos/{videoID}/comments
func (h *CommentHandler) Add(w http.ResponseWriter, r *http.Request) {
	videoID, ok := pathID(w, r, "videoID")
	if !ok {
		return
	}
	author, ok := actorID(w, r)
	if !ok {
		return
	}

	var req CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	item, err := h.svc.Add(r.Context(), videoID, author, req.Text)
	if err != nil {
		serviceError(w, err)
		return
	}

	JSON(w, http.StatusCreated, toCommentItemResponse(*item))
}

// Update handles PATCH /v1/comments/{commentID}
func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	commentID, ok := pathID(w, r, "commentID")
	if !ok {
		return
	}
	caller, ok := actorID(w, r)
	if !ok {
		return
	}

	var req CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	comment, err := h.svc.Update(r.Context(), commentID, caller, req.Text)
	if err != nil {
		serviceError(w, err)
		return
	}

	JSON(w, http.StatusOK, toCommentResponse(comment))
}

// Delete handles DELETE /v1/comments/{commentID}
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	commentID, ok := pathID(w, r, "commentID")
	if !ok {
		return
	}
	caller, ok := actorID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), commentID, caller); err != nil {
		serviceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toCommentResponse(c *model.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID.String(),
		OwnerID:   c.OwnerID.String(),
		VideoID:   c.VideoID.String(),
		Text:      c.Text,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
}
