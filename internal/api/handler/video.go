package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/vidtube/vidtube/internal/domain/model"
	"github.com/vidtube/vidtube/internal/usecase"
)

// Request/Response types

type PublishVideoRequest struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	VideoFileName string `json:"video_file_name"`
	ThumbnailName string `json:"thumbnail_file_name"`
}

type PublishVideoResponse struct {
	Video              VideoResponse `json:"video"`
	VideoUploadURL     string        `json:"videoUploadUrl"`
	ThumbnailUploadURL string        `json:"thumbnailUploadUrl"`
}

type UpdateVideoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type VideoResponse struct {
	ID           string  `json:"id"`
	OwnerID      string  `json:"ownerId"`
	Title        string  `json:"title"`
	Description  string  `json:"description,omitempty"`
	VideoKey     string  `json:"videoKey,omitempty"`
	ThumbnailKey string  `json:"thumbnailKey,omitempty"`
	Duration     float64 `json:"duration"`
	Views        int64   `json:"views"`
	IsPublished  bool    `json:"isPublished"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// VideoHandler handles video-related HTTP requests.
type VideoHandler struct {
	svc usecase.VideoService
}

// NewVideoHandler creates a new VideoHandler.
func NewVideoHandler(svc usecase.VideoService) *VideoHandler {
	return &VideoHandler{svc: svc}
}

// Publish handles POST /v1/videos
func (h *VideoHandler) Publish(w http.ResponseWriter, r *http.Request) {
	owner, ok := actorID(w, r)
	if !ok {
		return
	}

	var req PublishVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	if req.VideoFileName == "" {
		Error(w, http.StatusBadRequest, "invalid_file_name", "Video file name is required")
		return
	}

	output, err := h.svc.Publish(r.Context(), usecase.PublishVideoInput{
		OwnerID:       owner,
		Title:         req.Title,
		Description:   req.Description,
		VideoFileName: req.VideoFileName,
		ThumbnailName: req.ThumbnailName,
	})
	if err != nil {
		serviceError(w, err)
		return
	}

	JSON(w, http.StatusCreated, PublishVideoResponse{
		Video:              toVideoResponse(output.Video),
		VideoUploadURL:     output.VideoUploadURL,
		ThumbnailUploadURL: output.ThumbnailUploadURL,
	})
}

// Get handles GET /v1/videos/{videoID}
func (h *VideoHandler) Get(w http.ResponseWriter, r *http.Request) {
	videoID, ok := pathID(w, r, "videoID")
	if !ok {
		return
	}

	video, err := h.svc.Get(r.Context(), videoID)
	if err != nil {
		serviceError(w, err)
		return
	}

	JSON(w, http.StatusOK, toVideoResponse(video))
}

// Update handles PATCH /v1/videos/{videoID}
func (h *VideoHandler) Update(w http.ResponseWriter, r *http.Request) {
	videoID, ok := pathID(w, r, "videoID")
	if !ok {
		return
	}
	caller, ok := actorID(w, r)
	if !ok {
		return
	}

	var req UpdateVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	video, err := h.svc.Update(r.Context(), usecase.UpdateVideoInput{
		VideoID:     videoID,
		CallerID:    caller,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		serviceError(w, err)
		return
	}

	JSON(w, http.StatusOK, toVideoResponse(video))
}

// Delete handles DELETE /v1/videos/{videoID}
func (h *VideoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	videoID, ok := pathID(w, r, "videoID")
	if !ok {
		return
	}
	caller, ok := actorID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), videoID, caller); err != nil {
		serviceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// TogglePublish handles POST /v1/videos/{videoID}/publish-toggle
func (h *VideoHandler) TogglePublish(w http.ResponseWriter, r *http.Request) {
	videoID, ok := pathID(w, r, "videoID")
	if !ok {
		return
	}
	caller, ok := actorID(w, r)
	if !ok {
		return
	}

	video, err := h.svc.TogglePublish(r.Context(), videoID, caller)
	if err != nil {
		serviceError(w, err)
		return
	}

	JSON(w, http.StatusOK, toVideoResponse(video))
}

func toVideoResponse(v *model.Video) VideoResponse {
	return VideoResponse{
		ID:           v.ID.String(),
		OwnerID:      v.OwnerID.String(),
		Title:        v.Title,
		Description:  v.Description,
		VideoKey:     v.VideoKey,
		ThumbnailKey: v.ThumbnailKey,
		Duration:     v.Duration,
		Views:        v.Views,
		IsPublished:  v.IsPublished,
		CreatedAt:    v.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    v.UpdatedAt.Format(time.RFC3339),
	}
}
