package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vidtube/vidtube/internal/domain/model"
	"github.com/vidtube/vidtube/internal/domain/repository"
	"github.com/vidtube/vidtube/internal/usecase"
)

func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, "failed to encode response", http.StatusInternalServerError)
		}
	}
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func Error(w http.ResponseWriter, status int, err string, message string) {
	JSON(w, status, ErrorResponse{
		Error:   err,
		Message: message,
	})
}

// serviceError maps service and repository errors onto HTTP responses.
// Internal store errors are never leaked verbatim.
func serviceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidScope),
		errors.Is(err, usecase.ErrInvalidSort),
		errors.Is(err, model.ErrEmptyTitle),
		errors.Is(err, model.ErrTitleTooLong),
		errors.Is(err, model.ErrInvalidOwner),
		errors.Is(err, model.ErrInvalidActor),
		errors.Is(err, model.ErrInvalidSubjectKind),
		errors.Is(err, model.ErrInvalidSubjectID),
		errors.Is(err, model.ErrInvalidVideoRef),
		errors.Is(err, model.ErrEmptyCommentText),
		errors.Is(err, model.ErrEmptyTweetText),
		errors.Is(err, model.ErrEmptyPlaylistName),
		errors.Is(err, model.ErrVideoAlreadyInList),
		errors.Is(err, model.ErrVideoNotInList),
		errors.Is(err, model.ErrSelfSubscription),
		errors.Is(err, model.ErrInvalidChannel),
		errors.Is(err, model.ErrInvalidSubscriber):
		Error(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, usecase.ErrNotVideoOwner),
		errors.Is(err, usecase.ErrNotCommentOwner),
		errors.Is(err, usecase.ErrNotPlaylistOwner),
		errors.Is(err, usecase.ErrNotTweetOwner):
		Error(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, repository.ErrVideoNotFound):
		Error(w, http.StatusNotFound, "video_not_found", "Video not found")
	case errors.Is(err, repository.ErrCommentNotFound):
		Error(w, http.StatusNotFound, "comment_not_found", "Comment not found")
	case errors.Is(err, repository.ErrChannelNotFound):
		Error(w, http.StatusNotFound, "channel_not_found", "Channel not found")
	case errors.Is(err, repository.ErrTweetNotFound):
		Error(w, http.StatusNotFound, "tweet_not_found", "Tweet not found")
	case errors.Is(err, repository.ErrPlaylistNotFound):
		Error(w, http.StatusNotFound, "playlist_not_found", "Playlist not found")
	case errors.Is(err, repository.ErrStoreUnavailable):
		Error(w, http.StatusServiceUnavailable, "upstream_unavailable", "Store is temporarily unavailable, retry later")
	default:
		Error(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
	}
}
