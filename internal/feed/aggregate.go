package feed

import (
	"github.com/google/uuid"
	"github.com/vidtube/vidtube/internal/domain/model"
)

// Summary holds the per-subject reaction aggregates for one feed page.
// Sets are always non-nil, so membership tests and counts work the same
// for subjects nobody reacted to.
type Summary struct {
	LikedBy    map[uuid.UUID]struct{}
	DislikedBy map[uuid.UUID]struct{}
}

func newSummary() Summary {
	return Summary{
		LikedBy:    make(map[uuid.UUID]struct{}),
		DislikedBy: make(map[uuid.UUID]struct{}),
	}
}

// LikesCount returns the number of distinct actors who liked the subject.
func (s Summary) LikesCount() int { return len(s.LikedBy) }

// DislikesCount returns the number of distinct actors who disliked the subject.
func (s Summary) DislikesCount() int { return len(s.DislikedBy) }

// Violation records a duplicate (subject, actor) reaction pair found
// during aggregation. The store's uniqueness constraint should make this
// impossible; when it happens anyway the first-seen reaction wins and the
// request still completes.
type Violation struct {
	SubjectID uuid.UUID
	ActorID   uuid.UUID
}

// Aggregate groups reactions by subject into liked/disliked actor sets.
// Every requested subject ID gets a Summary, reactions for subjects
// outside the requested set are ignored, and duplicate (subject, actor)
// pairs are resolved first-seen-wins and reported as violations.
// Single pass over the input: O(len(reactions)).
func Aggregate(subjectIDs []uuid.UUID, reactions []*model.Reaction) (map[uuid.UUID]Summary, []Violation) {
	summaries := make(map[uuid.UUID]Summary, len(subjectIDs))
	for _, id := range subjectIDs {
		summaries[id] = newSummary()
	}

	var violations []Violation
	for _, r := range reactions {
		summary, ok := summaries[r.Subject.ID]
		if !ok {
			continue
		}

		_, liked := summary.LikedBy[r.ActorID]
		_, disliked := summary.DislikedBy[r.ActorID]
		if liked || disliked {
			violations = append(violations, Violation{
				SubjectID: r.Subject.ID,
				ActorID:   r.ActorID,
			})
			continue
		}

		if r.Liked {
			summary.LikedBy[r.ActorID] = struct{}{}
		} else {
			summary.DislikedBy[r.ActorID] = struct{}{}
		}
	}

	return summaries, violations
}
