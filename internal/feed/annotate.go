package feed

import (
	"github.com/google/uuid"
	"github.com/vidtube/vidtube/internal/domain/model"
)

// ReactionFields are the derived, viewer-relative fields of a feed item.
// They are computed fresh per request and never persisted.
type ReactionFields struct {
	LikesCount     int
	DislikesCount  int
	IsOwner        bool
	IsLiked        bool
	IsDisliked     bool
	IsLikedByOwner bool
}

// Annotate derives the viewer-relative fields for one content item.
// viewerID == uuid.Nil means an anonymous viewer: the three viewer
// booleans stay false. IsLikedByOwner depends only on the content owner,
// not on the viewer. Each check is a set membership test, O(1).
func Annotate(summary Summary, ownerID, viewerID uuid.UUID) ReactionFields {
	fields := ReactionFields{
		LikesCount:    summary.LikesCount(),
		DislikesCount: summary.DislikesCount(),
	}

	if _, ok := summary.LikedBy[ownerID]; ok {
		fields.IsLikedByOwner = true
	}

	if viewerID == uuid.Nil {
		return fields
	}

	fields.IsOwner = viewerID == ownerID
	_, fields.IsLiked = summary.LikedBy[viewerID]
	_, fields.IsDisliked = summary.DislikedBy[viewerID]
	return fields
}

// VideoItem is a video annotated for one viewer.
type VideoItem struct {
	Video    *model.Video
	Owner    model.Profile
	Reaction ReactionFields
}

// CommentItem is a comment annotated for one viewer.
type CommentItem struct {
	Comment  *model.Comment
	Owner    model.Profile
	Reaction ReactionFields
}
