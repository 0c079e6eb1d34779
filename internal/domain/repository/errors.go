package repository

import "errors"

var (
	// ErrVideoNotFound is returned when a video cannot be found.
	ErrVideoNotFound = errors.New("video not found")

	// ErrCommentNotFound is returned when a comment cannot be found.
	ErrCommentNotFound = errors.New("comment not found")

	// ErrChannelNotFound is returned when a channel (user) cannot be found.
	ErrChannelNotFound = errors.New("channel not found")

	// ErrTweetNotFound is returned when a tweet cannot be found.
	ErrTweetNotFound = errors.New("tweet not found")

	// ErrPlaylistNotFound is returned when a playlist cannot be found.
	ErrPlaylistNotFound = errors.New("playlist not found")

	// ErrDuplicateVideo is returned when attempting to create a video that already exists.
	ErrDuplicateVideo = errors.New("video already exists")

	// ErrStoreUnavailable is returned when the store cannot be reached or a
	// query exceeds its deadline. Callers may retry with backoff; the
	// repository layer never retries on its own.
	ErrStoreUnavailable = errors.New("store unavailable")
)
