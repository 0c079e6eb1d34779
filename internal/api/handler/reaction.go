package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/vidtube/vidtube/internal/usecase"
)

type ToggleReactionRequest struct {
	// Liked selects the polarity: true for a like, false for a dislike.
	Liked *bool `json:"liked"`
}

type ToggleReactionResponse struct {
	Reacted    bool  `json:"reacted"`
	TotalLikes int64 `json:"totalLikes"`
}

type LikedVideosResponse struct {
	Items []VideoResponse `json:"items"`
}

// ReactionHandler handles like/dislike HTTP requests.
type ReactionHandler struct {
	svc usecase.ReactionService
}

// NewReactionHandler creates a new ReactionHandler.
func NewReactionHandler(svc usecase.ReactionService) *ReactionHandler {
	return &ReactionHandler{svc: svc}
}

// ToggleVideo handles POST /v1/videos/{videoID}/reactions
func (h *ReactionHandler) ToggleVideo(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, "videoID", h.svc.ToggleVideoReaction)
}

// ToggleComment handles POST /v1/comments/{commentID}/reactions
func (h *ReactionHandler) ToggleComment(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, "commentID", h.svc.ToggleCommentReaction)
}

// ToggleTweet handles POST /v1/tweets/{tweetID}/reactions
func (h *ReactionHandler) ToggleTweet(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, "tweetID", h.svc.ToggleTweetReaction)
}

// LikedVideos handles GET /v1/users/{userID}/liked-videos
func (h *ReactionHandler) LikedVideos(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userID")
	if !ok {
		return
	}

	videos, err := h.svc.ListLikedVideos(r.Context(), userID)
	if err != nil {
		serviceError(w, err)
		return
	}

	items := make([]VideoResponse, 0, len(videos))
	for _, v := range videos {
		items = append(items, toVideoResponse(v))
	}

	JSON(w, http.StatusOK, LikedVideosResponse{Items: items})
}

type toggleFunc func(ctx context.Context, subjectID, actorID uuid.UUID, liked bool) (*usecase.ToggleReactionOutput, error)

func (h *ReactionHandler) toggle(w http.ResponseWriter, r *http.Request, param string, fn toggleFunc) {
	subjectID, ok := pathID(w, r, param)
	if !ok {
		return
	}
	actor, ok := actorID(w, r)
	if !ok {
		return
	}

	var req ToggleReactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}
	if req.Liked == nil {
		Error(w, http.StatusBadRequest, "invalid_request", "liked is required")
		return
	}

	output, err := fn(r.Context(), subjectID, actor, *req.Liked)
	if err != nil {
		serviceError(w, err)
		return
	}

	JSON(w, http.StatusOK, ToggleReactionResponse{
		Reacted:    output.Reacted,
		TotalLikes: output.TotalLikes,
	})
}
