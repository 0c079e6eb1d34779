package handler

import (
	"net/http"

	"github.com/vidtube/vidtube/internal/usecase"
)

type ChannelStatsResponse struct {
	ChannelID        string `json:"channelId"`
	TotalVideos      int64  `json:"totalVideos"`
	TotalViews       int64  `json:"totalViews"`
	TotalSubscribers int64  `json:"totalSubscribers"`
	TotalLikes       int64  `json:"totalLikes"`
}

// ChannelHandler handles channel stats and dashboard HTTP requests.
type ChannelHandler struct {
	svc usecase.ChannelService
}

// NewChannelHandler creates a new ChannelHandler.
func NewChannelHandler(svc usecase.ChannelService) *ChannelHandler {
	return &ChannelHandler{svc: svc}
}

// Stats handles GET /v1/channels/{channelID}/stats
func (h *ChannelHandler) Stats(w http.ResponseWriter, r *http.Request) {
	channelID, ok := pathID(w, r, "channelID")
	if !ok {
		return
	}

	stats, err := h.svc.Stats(r.Context(), channelID)
	if err != nil {
		serviceError(w, err)
		return
	}

	JSON(w, http.StatusOK, ChannelStatsResponse{
		ChannelID:        stats.ChannelID.String(),
		TotalVideos:      stats.TotalVideos,
		TotalViews:       stats.TotalViews,
		TotalSubscribers: stats.TotalSubscribers,
		TotalLikes:       stats.TotalLikes,
	})
}

// Dashboard handles GET /v1/channels/{channelID}/dashboard
// The dashboard is the channel seen through its owner's eyes, so the
// feed is annotated with the channel ID as the viewer.
func (h *ChannelHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	channelID, ok := pathID(w, r, "channelID")
	if !ok {
		return
	}

	output, err := h.svc.DashboardVideos(r.Context(), channelID, pageFromQuery(r))
	if err != nil {
		serviceError(w, err)
		return
	}

	JSON(w, http.StatusOK, toVideoFeedResponse(output))
}
