package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/vidtube/vidtube/internal/domain/model"
	"github.com/vidtube/vidtube/internal/domain/repository"
)

func TestTweetService_Create(t *testing.T) {
	ownerID := uuid.New()

	tests := []struct {
		name    string
		ownerID uuid.UUID
		text    string
		wantErr error
	}{
		{
			name:    "valid tweet",
			ownerID: ownerID,
			text:    "shipping a new upload pipeline this week",
		},
		{
			name:    "empty text",
			ownerID: ownerID,
			text:    "",
			wantErr: model.ErrEmptyTweetText,
		},
		{
			name:    "nil owner",
			ownerID: uuid.Nil,
			text:    "hello",
			wantErr: model.ErrInvalidOwner,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewTweetService(&mockTweetRepository{}, &mockReactionRepository{})

			tweet, err := svc.Create(context.Background(), tt.ownerID, tt.text)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tweet.Text != tt.text || tweet.OwnerID != tt.ownerID {
				t.Errorf("unexpected tweet: %+v", tweet)
			}
			if tweet.CreatedAt.IsZero() {
				t.Error("expected CreatedAt to be set")
			}
		})
	}
}

func TestTweetService_Update(t *testing.T) {
	ownerID := uuid.New()
	tweetID := uuid.New()

	tweets := &mockTweetRepository{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*model.Tweet, error) {
			return &model.Tweet{ID: tweetID, OwnerID: ownerID, Text: "old"}, nil
		},
	}

	svc := NewTweetService(tweets, &mockReactionRepository{})

	t.Run("owner edits text", func(t *testing.T) {
		tweet, err := svc.Update(context.Background(), tweetID, ownerID, "new")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tweet.Text != "new" {
			t.Errorf("expected updated text, got %q", tweet.Text)
		}
	})

	t.Run("non-owner rejected", func(t *testing.T) {
		if _, err := svc.Update(context.Background(), tweetID, uuid.New(), "new"); !errors.Is(err, ErrNotTweetOwner) {
			t.Fatalf("expected ErrNotTweetOwner, got %v", err)
		}
	})

	t.Run("empty text rejected", func(t *testing.T) {
		if _, err := svc.Update(context.Background(), tweetID, ownerID, ""); !errors.Is(err, model.ErrEmptyTweetText) {
			t.Fatalf("expected ErrEmptyTweetText, got %v", err)
		}
	})

	t.Run("missing tweet", func(t *testing.T) {
		svc := NewTweetService(&mockTweetRepository{}, &mockReactionRepository{})
		if _, err := svc.Update(context.Background(), tweetID, ownerID, "new"); !errors.Is(err, repository.ErrTweetNotFound) {
			t.Fatalf("expected ErrTweetNotFound, got %v", err)
		}
	})
}

func TestTweetService_Delete(t *testing.T) {
	ownerID := uuid.New()
	tweetID := uuid.New()

	tweets := &mockTweetRepository{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*model.Tweet, error) {
			return &model.Tweet{ID: tweetID, OwnerID: ownerID, Text: "old"}, nil
		},
	}

	var clearedSubject model.Subject
	reactions := &mockReactionRepository{
		deleteBySubjectFn: func(ctx context.Context, subject model.Subject) error {
			clearedSubject = subject
			return nil
		},
	}

	svc := NewTweetService(tweets, reactions)

	if err := svc.Delete(context.Background(), tweetID, uuid.New()); !errors.Is(err, ErrNotTweetOwner) {
		t.Fatalf("expected ErrNotTweetOwner, got %v", err)
	}

	if err := svc.Delete(context.Background(), tweetID, ownerID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Reactions attached to the tweet go with it.
	if clearedSubject.Kind != model.SubjectTweet || clearedSubject.ID != tweetID {
		t.Errorf("unexpected cleared subject: %+v", clearedSubject)
	}
}
