package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event types published on content writes.
const (
	EventVideoPublished      = "video.published"
	EventVideoDeleted        = "video.deleted"
	EventCommentAdded        = "comment.added"
	EventReactionToggled     = "reaction.toggled"
	EventSubscriptionToggled = "subscription.toggled"
)

// Event is a best-effort domain event emitted after a successful write.
// Downstream consumers (notification fan-out and the like) live outside
// this service.
type Event struct {
	Type       string    `json:"type"`
	SubjectID  uuid.UUID `json:"subject_id"`
	ActorID    uuid.UUID `json:"actor_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for emitting domain events.
// Implementations should be provided by the infrastructure layer (e.g., RabbitMQ).
type EventPublisher interface {
	// Publish sends one event. Failures are reported, never swallowed,
	// but callers treat them as non-fatal for the originating request.
	Publish(ctx context.Context, event Event) error

	// Close gracefully closes the connection to the broker.
	Close() error
}
