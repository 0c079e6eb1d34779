package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/vidtube/vidtube/internal/domain/model"
	"github.com/vidtube/vidtube/internal/usecase"
)

type CreatePlaylistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type PlaylistResponse struct {
	ID          string   `json:"id"`
	OwnerID     string   `json:"ownerId"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	VideoIDs    []string `json:"videoIds"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

type PlaylistListResponse struct {
	Items []PlaylistResponse `json:"items"`
}

// PlaylistHandler handles playlist HTTP requests.
type PlaylistHandler struct {
	svc usecase.PlaylistService
}

// NewPlaylistHandler creates a new PlaylistHandler.
func NewPlaylistHandler(svc usecase.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{svc: svc}
}

// Create handles POST /v1/playlists
func (h *PlaylistHandler) Create(w http.ResponseWriter, r *http.Request) {
	owner, ok := actorID(w, r)
	if !ok {
		return
	}

	var req CreatePlaylistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	playlist, err := h.svc.Create(r.Context(), owner, req.Name, req.Description)
	if err != nil {
		serviceError(w, err)
		return
	}

	JSON(w, http.StatusCreated, toPlaylistResponse(playlist))
}

// Get handles GET /v1/playlists/{playlistID}
func (h *PlaylistHandler) Get(w http.ResponseWriter, r *http.Request) {
	playlistID, ok := pathID(w, r, "playlistID")
	if !ok {
		return
	}

	playlist, err := h.svc.Get(r.Context(), playlistID)
	if err != nil {
		serviceError(w, err)
		return
	}

	JSON(w, http.StatusOK, toPlaylistResponse(playlist))
}

// ListByOwner handles GET /v1/users/{userID}/playlists
func (h *PlaylistHandler) ListByOwner(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := pathID(w, r, "userID")
	if !ok {
		return
	}

	playlists, err := h.svc.ListByOwner(r.Context(), ownerID)
	if err != nil {
		serviceError(w, err)
		return
	}

	items := make([]PlaylistResponse, 0, len(playlists))
	for _, p := range playlists {
		items = append(items, toPlaylistResponse(p))
	}

	JSON(w, http.StatusOK, PlaylistListResponse{Items: items})
}

// AddVideo handles PUT /v1/playlists/{playlistID}/videos/{videoID}
func (h *PlaylistHandler) AddVideo(w http.ResponseWriter, r *http.Request) {
	h.modifyVideos(w, r, h.svc.AddVideo)
}

// RemoveVideo handles DELETE /v1/playlists/{playlistID}/videos/{videoID}
func (h *PlaylistHandler) RemoveVideo(w http.ResponseWriter, r *http.Request) {
	h.modifyVideos(w, r, h.svc.RemoveVideo)
}

// Delete handles DELETE /v1/playlists/{playlistID}
func (h *PlaylistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	playlistID, ok := pathID(w, r, "playlistID")
	if !ok {
		return
	}
	caller, ok := actorID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), playlistID, caller); err != nil {
		serviceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *PlaylistHandler) modifyVideos(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, playlistID, videoID, callerID uuid.UUID) (*model.Playlist, error),
) {
	playlistID, ok := pathID(w, r, "playlistID")
	if !ok {
		return
	}
	videoID, ok := pathID(w, r, "videoID")
	if !ok {
		return
	}
	caller, ok := actorID(w, r)
	if !ok {
		return
	}

	playlist, err := fn(r.Context(), playlistID, videoID, caller)
	if err != nil {
		serviceError(w, err)
		return
	}

	JSON(w, http.StatusOK, toPlaylistResponse(playlist))
}

func toPlaylistResponse(p *model.Playlist) PlaylistResponse {
	videoIDs := make([]string, 0, len(p.VideoIDs))
	for _, id := range p.VideoIDs {
		videoIDs = append(videoIDs, id.String())
	}
	return PlaylistResponse{
		ID:          p.ID.String(),
		OwnerID:     p.OwnerID.String(),
		Name:        p.Name,
		Description: p.Description,
		VideoIDs:    videoIDs,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.Format(time.RFC3339),
	}
}
