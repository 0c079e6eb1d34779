package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// SubjectKind tags the content type a Reaction applies to.
// Every reaction query must filter on the kind tag together with the
// subject ID; a reaction on a comment must never count toward a video.
type SubjectKind string

const (
	SubjectVideo   SubjectKind = "video"
	SubjectComment SubjectKind = "comment"
	SubjectTweet   SubjectKind = "tweet"
)

func (k SubjectKind) IsValid() bool {
	switch k {
	case SubjectVideo, SubjectComment, SubjectTweet:
		return true
	default:
		return false
	}
}

func (k SubjectKind) String() string {
	return string(k)
}

// Subject identifies the content item a Reaction applies to.
type Subject struct {
	Kind SubjectKind
	ID   uuid.UUID
}

// Reaction records that an actor liked (Liked=true) or disliked
// (Liked=false) a subject. At most one reaction exists per
// (subject kind, subject ID, actor) triple.
type Reaction struct {
	ID        uuid.UUID
	Subject   Subject
	ActorID   uuid.UUID
	Liked     bool
	CreatedAt time.Time
}

var (
	ErrInvalidSubjectKind = errors.New("invalid reaction subject kind")
	ErrInvalidSubjectID   = errors.New("subject ID cannot be nil")
	ErrInvalidActor       = errors.New("actor ID cannot be nil")
)

// NewReaction creates a Reaction after validating the subject and actor.
func NewReaction(subject Subject, actorID uuid.UUID, liked bool) (*Reaction, error) {
	if !subject.Kind.IsValid() {
		return nil, ErrInvalidSubjectKind
	}
	if subject.ID == uuid.Nil {
		return nil, ErrInvalidSubjectID
	}
	if actorID == uuid.Nil {
		return nil, ErrInvalidActor
	}

	return &Reaction{
		ID:        uuid.New(),
		Subject:   subject,
		ActorID:   actorID,
		Liked:     liked,
		CreatedAt: time.Now(),
	}, nil
}
