package feed

import (
	"testing"

	"github.com/google/uuid"
)

func summaryOf(liked, disliked []uuid.UUID) Summary {
	s := newSummary()
	for _, id := range liked {
		s.LikedBy[id] = struct{}{}
	}
	for _, id := range disliked {
		s.DislikedBy[id] = struct{}{}
	}
	return s
}

func TestAnnotate(t *testing.T) {
	ownerID := uuid.New()
	viewerID := uuid.New()
	otherID := uuid.New()

	tests := []struct {
		name     string
		summary  Summary
		ownerID  uuid.UUID
		viewerID uuid.UUID
		want     ReactionFields
	}{
		{
			name:     "anonymous viewer gets counts but no booleans",
			summary:  summaryOf([]uuid.UUID{otherID}, nil),
			ownerID:  ownerID,
			viewerID: uuid.Nil,
			want:     ReactionFields{LikesCount: 1},
		},
		{
			name:     "viewer liked",
			summary:  summaryOf([]uuid.UUID{viewerID}, nil),
			ownerID:  ownerID,
			viewerID: viewerID,
			want:     ReactionFields{LikesCount: 1, IsLiked: true},
		},
		{
			name:     "viewer disliked",
			summary:  summaryOf(nil, []uuid.UUID{viewerID}),
			ownerID:  ownerID,
			viewerID: viewerID,
			want:     ReactionFields{DislikesCount: 1, IsDisliked: true},
		},
		{
			name:     "viewer is the owner",
			summary:  summaryOf(nil, nil),
			ownerID:  viewerID,
			viewerID: viewerID,
			want:     ReactionFields{IsOwner: true},
		},
		{
			name:     "owner liked their own content",
			summary:  summaryOf([]uuid.UUID{ownerID}, nil),
			ownerID:  ownerID,
			viewerID: viewerID,
			want:     ReactionFields{LikesCount: 1, IsLikedByOwner: true},
		},
		{
			name:     "owner like is visible to anonymous viewers too",
			summary:  summaryOf([]uuid.UUID{ownerID}, nil),
			ownerID:  ownerID,
			viewerID: uuid.Nil,
			want:     ReactionFields{LikesCount: 1, IsLikedByOwner: true},
		},
		{
			name:     "owner viewing own liked content sets every flag",
			summary:  summaryOf([]uuid.UUID{ownerID}, nil),
			ownerID:  ownerID,
			viewerID: ownerID,
			want:     ReactionFields{LikesCount: 1, IsOwner: true, IsLiked: true, IsLikedByOwner: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Annotate(tt.summary, tt.ownerID, tt.viewerID)
			if got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}
