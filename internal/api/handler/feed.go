package handler

import (
	"net/http"
	"time"

	"github.com/vidtube/vidtube/internal/domain/model"
	"github.com/vidtube/vidtube/internal/feed"
	"github.com/vidtube/vidtube/internal/usecase"
)

// Request/Response types

type ProfileResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Handle      string `json:"handle"`
	AvatarKey   string `json:"avatarKey,omitempty"`
}

type ReactionResponse struct {
	LikesCount     int  `json:"likesCount"`
	DislikesCount  int  `json:"dislikesCount"`
	IsOwner        bool `json:"isOwner"`
	IsLiked        bool `json:"isLiked"`
	IsDisliked     bool `json:"isDisliked"`
	IsLikedByOwner bool `json:"isLikedByContentOwner"`
}

type VideoItemResponse struct {
	Video    VideoResponse    `json:"video"`
	Owner    ProfileResponse  `json:"owner"`
	Reaction ReactionResponse `json:"reaction"`
}

type CommentItemResponse struct {
	ID        string           `json:"id"`
	VideoID   string           `json:"videoId"`
	Text      string           `json:"text"`
	Owner     ProfileResponse  `json:"owner"`
	Reaction  ReactionResponse `json:"reaction"`
	CreatedAt string           `json:"createdAt"`
	UpdatedAt string           `json:"updatedAt"`
}

type VideoFeedResponse struct {
	Items    []VideoItemResponse `json:"items"`
	Page     int                 `json:"page"`
	PageSize int                 `json:"pageSize"`
	HasMore  bool                `json:"hasMore"`
}

type CommentFeedResponse struct {
	Items    []CommentItemResponse `json:"items"`
	Page     int                   `json:"page"`
	PageSize int                   `json:"pageSize"`
	HasMore  bool                  `json:"hasMore"`
}

// FeedHandler handles viewer-relative feed requests.
type FeedHandler struct {
	svc usecase.FeedService
}

// NewFeedHandler creates a new FeedHandler.
func NewFeedHandler(svc usecase.FeedService) *FeedHandler {
	return &FeedHandler{svc: svc}
}

// VideoFeed handles GET /v1/channels/{channelID}/videos
func (h *FeedHandler) VideoFeed(w http.ResponseWriter, r *http.Request) {
	channelID, ok := pathID(w, r, "channelID")
	if !ok {
		return
	}

	viewer, err := viewerID(r)
	if err != nil {
		Error(w, http.StatusBadRequest, "invalid_viewer_id", "X-Viewer-Id must be a valid UUID")
		return
	}

	output, err := h.svc.BuildVideoFeed(r.Context(), usecase.VideoFeedInput{
		ChannelID: channelID,
		ViewerID:  viewer,
		Sort:      sortFromQuery(r),
		Page:      pageFromQuery(r),
	})
	if err != nil {
		serviceError(w, err)
		return
	}

	JSON(w, http.StatusOK, toVideoFeedResponse(output))
}

// CommentFeed handles GET /v1/videos/{videoID}/comments
func (h *FeedHandler) CommentFeed(w http.ResponseWriter, r *http.Request) {
	videoID, ok := pathID(w, r, "videoID")
	if !ok {
		return
	}

	viewer, err := viewerID(r)
	if err != nil {
		Error(w, http.StatusBadRequest, "invalid_viewer_id", "X-Viewer-Id must be a valid UUID")
		return
	}

	output, err := h.svc.BuildCommentFeed(r.Context(), usecase.CommentFeedInput{
		VideoID:  videoID,
		ViewerID: viewer,
		Sort:     sortFromQuery(r),
		Page:     pageFromQuery(r),
	})
	if err != nil {
		serviceError(w, err)
		return
	}

	items := make([]CommentItemResponse, 0, len(output.Items))
	for _, item := range output.Items {
		items = append(items, toCommentItemResponse(item))
	}

	JSON(w, http.StatusOK, CommentFeedResponse{
		Items:    items,
		Page:     output.Page.Number,
		PageSize: output.Page.Size,
		HasMore:  output.HasMore,
	})
}

func toVideoFeedResponse(output *usecase.VideoFeedOutput) VideoFeedResponse {
	items := make([]VideoItemResponse, 0, len(output.Items))
	for _, item := range output.Items {
		items = append(items, VideoItemResponse{
			Video:    toVideoResponse(item.Video),
			Owner:    toProfileResponse(item.Owner),
			Reaction: toReactionResponse(item.Reaction),
		})
	}
	return VideoFeedResponse{
		Items:    items,
		Page:     output.Page.Number,
		PageSize: output.Page.Size,
		HasMore:  output.HasMore,
	}
}

func toCommentItemResponse(item feed.CommentItem) CommentItemResponse {
	return CommentItemResponse{
		ID:        item.Comment.ID.String(),
		VideoID:   item.Comment.VideoID.String(),
		Text:      item.Comment.Text,
		Owner:     toProfileResponse(item.Owner),
		Reaction:  toReactionResponse(item.Reaction),
		CreatedAt: item.Comment.CreatedAt.Format(time.RFC3339),
		UpdatedAt: item.Comment.UpdatedAt.Format(time.RFC3339),
	}
}

func toProfileResponse(p model.Profile) ProfileResponse {
	return ProfileResponse{
		ID:          p.ID.String(),
		DisplayName: p.DisplayName,
		Handle:      p.Handle,
		AvatarKey:   p.AvatarKey,
	}
}

func toReactionResponse(f feed.ReactionFields) ReactionResponse {
	return ReactionResponse{
		LikesCount:     f.LikesCount,
		DislikesCount:  f.DislikesCount,
		IsOwner:        f.IsOwner,
		IsLiked:        f.IsLiked,
		IsDisliked:     f.IsDisliked,
		IsLikedByOwner: f.IsLikedByOwner,
	}
}
