// Package metrics provides Prometheus metrics for observability.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "vidtube"

var (
	// FeedBuildsTotal tracks feed page builds.
	// Labels:
	//   - kind: video, comment
	FeedBuildsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feed_builds_total",
			Help:      "Total number of feed pages built",
		},
		[]string{"kind"},
	)

	// FeedItemsReturned observes how many items each feed page carried
	// after owner-resolution drops.
	FeedItemsReturned = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "feed_items_returned",
			Help:      "Items returned per feed page",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100},
		},
		[]string{"kind"},
	)

	// FeedItemsDropped counts feed items discarded because their owner
	// could not be resolved.
	// Labels:
	//   - kind: video, comment
	FeedItemsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feed_items_dropped_total",
			Help:      "Total number of feed items dropped for unresolved owners",
		},
		[]string{"kind"},
	)

	// ReactionInvariantViolations counts duplicate (subject, actor)
	// reaction pairs found during aggregation.
	ReactionInvariantViolations = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reaction_invariant_violations_total",
			Help:      "Total number of duplicate reaction pairs detected",
		},
	)

	// CacheOperationsTotal tracks cache operations (get, set, delete).
	// Labels:
	//   - operation: get, set, delete
	//   - status: hit, miss, success, error
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_operations_total",
			Help:      "Total number of cache operations",
		},
		[]string{"operation", "status"},
	)

	// SingleflightRequestsTotal tracks singleflight behavior on the
	// channel stats path.
	// Labels:
	//   - result: initiated (new execution), shared (reused result)
	SingleflightRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "singleflight_requests_total",
			Help:      "Total number of singleflight requests",
		},
		[]string{"result"},
	)

	// EventsPublishedTotal tracks domain event publishing.
	// Labels:
	//   - type: event type
	//   - status: success, error
	EventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_published_total",
			Help:      "Total number of domain events published",
		},
		[]string{"type", "status"},
	)
)

// Feed kind constants.
const (
	FeedKindVideo   = "video"
	FeedKindComment = "comment"
)

// Cache operation status constants.
const (
	CacheStatusHit     = "hit"
	CacheStatusMiss    = "miss"
	CacheStatusSuccess = "success"
	CacheStatusError   = "error"
)

// Cache operation type constants.
const (
	CacheOpGet    = "get"
	CacheOpSet    = "set"
	CacheOpDelete = "delete"
)

// Singleflight result constants.
const (
	SingleflightInitiated = "initiated"
	SingleflightShared    = "shared"
)

// Event publish status constants.
const (
	EventStatusSuccess = "success"
	EventStatusError   = "error"
)
