package handler

import (
	"net/http"

	"github.com/vidtube/vidtube/internal/domain/model"
	"github.com/vidtube/vidtube/internal/usecase"
)

type ToggleSubscriptionResponse struct {
	Subscribed       bool  `json:"subscribed"`
	TotalSubscribers int64 `json:"totalSubscribers"`
}

type ProfileListResponse struct {
	Items []ProfileResponse `json:"items"`
}

// SubscriptionHandler handles channel subscription HTTP requests.
type SubscriptionHandler struct {
	svc usecase.SubscriptionService
}

// NewSubscriptionHandler creates a new SubscriptionHandler.
func NewSubscriptionHandler(svc usecase.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{svc: svc}
}

// Toggle handles POST /v1/channels/{channelID}/subscription-toggle
func (h *SubscriptionHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	channelID, ok := pathID(w, r, "channelID")
	if !ok {
		return
	}
	subscriber, ok := actorID(w, r)
	if !ok {
		return
	}

	output, err := h.svc.Toggle(r.Context(), channelID, subscriber)
	if err != nil {
		serviceError(w, err)
		return
	}

	JSON(w, http.StatusOK, ToggleSubscriptionResponse{
		Subscribed:       output.Subscribed,
		TotalSubscribers: output.TotalSubscribers,
	})
}

// Subscribers handles GET /v1/channels/{channelID}/subscribers
func (h *SubscriptionHandler) Subscribers(w http.ResponseWriter, r *http.Request) {
	channelID, ok := pathID(w, r, "channelID")
	if !ok {
		return
	}

	profiles, err := h.svc.Subscribers(r.Context(), channelID)
	if err != nil {
		serviceError(w, err)
		return
	}

	JSON(w, http.StatusOK, toProfileListResponse(profiles))
}

// SubscribedChannels handles GET /v1/users/{userID}/subscriptions
func (h *SubscriptionHandler) SubscribedChannels(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userID")
	if !ok {
		return
	}

	profiles, err := h.svc.SubscribedChannels(r.Context(), userID)
	if err != nil {
		serviceError(w, err)
		return
	}

	JSON(w, http.StatusOK, toProfileListResponse(profiles))
}

func toProfileListResponse(profiles []model.Profile) ProfileListResponse {
	items := make([]ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		items = append(items, toProfileResponse(p))
	}
	return ProfileListResponse{Items: items}
}
