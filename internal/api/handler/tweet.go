package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/vidtube/vidtube/internal/domain/model"
	"github.com/vidtube/vidtube/internal/usecase"
)

type TweetRequest struct {
	Text string `json:"text"`
}

type TweetResponse struct {
	ID        string `json:"id"`
	OwnerID   string `json:"ownerId"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type TweetListResponse struct {
	Items []TweetResponse `json:"items"`
}

// TweetHandler handles tweet HTTP requests.
type TweetHandler struct {
	svc usecase.TweetService
}

// NewTweetHandler creates a new TweetHandler.
func NewTweetHandler(svc usecase.TweetService) *TweetHandler {
	return &TweetHandler{svc: svc}
}

// Create handles POST /v1/tweets
func (h *TweetHandler) Create(w http.ResponseWriter, r *http.Request) {
	owner, ok := actorID(w, r)
	if !ok {
		return
	}

	var req TweetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	tweet, err := h.svc.Create(r.Context(), owner, req.Text)
	if err != nil {
		serviceError(w, err)
		return
	}

	JSON(w, http.StatusCreated, toTweetResponse(tweet))
}

// ListByOwner handles GET /v1/users/{userID}/tweets
func (h *TweetHandler) ListByOwner(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := pathID(w, r, "userID")
	if !ok {
		return
	}

	tweets, err := h.svc.ListByOwner(r.Context(), ownerID)
	if err != nil {
		serviceError(w, err)
		return
	}

	items := make([]TweetResponse, 0, len(tweets))
	for _, t := range tweets {
		items = append(items, toTweetResponse(t))
	}

	JSON(w, http.StatusOK, TweetListResponse{Items: items})
}

// Update handles PATCH /v1/tweets/{tweetID}
func (h *TweetHandler) Update(w http.ResponseWriter, r *http.Request) {
	tweetID, ok := pathID(w, r, "tweetID")
	if !ok {
		return
	}
	caller, ok := actorID(w, r)
	if !ok {
		return
	}

	var req TweetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	tweet, err := h.svc.Update(r.Context(), tweetID, caller, req.Text)
	if err != nil {
		serviceError(w, err)
		return
	}

	JSON(w, http.StatusOK, toTweetResponse(tweet))
}

// Delete handles DELETE /v1/tweets/{tweetID}
func (h *TweetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	tweetID, ok := pathID(w, r, "tweetID")
	if !ok {
		return
	}
	caller, ok := actorID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), tweetID, caller); err != nil {
		serviceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toTweetResponse(t *model.Tweet) TweetResponse {
	return TweetResponse{
		ID:        t.ID.String(),
		OwnerID:   t.OwnerID.String(),
		Text:      t.Text,
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
		UpdatedAt: t.UpdatedAt.Format(time.RFC3339),
	}
}
