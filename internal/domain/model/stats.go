package model

import "github.com/google/uuid"

// ChannelStats is the derived dashboard summary for a channel. It is
// computed on demand and may be served from cache.
type ChannelStats struct {
	ChannelID        uuid.UUID
	TotalVideos      int64
	TotalViews       int64
	TotalSubscribers int64
	TotalLikes       int64
}
