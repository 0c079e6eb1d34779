package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/vidtube/vidtube/internal/domain/model"
	"github.com/vidtube/vidtube/internal/domain/repository"
)

// ErrNotTweetOwner is returned when a caller tries to modify a tweet
// they do not own.
var ErrNotTweetOwner = errors.New("caller does not own this tweet")

// TweetService defines the interface for tweet operations.
type TweetService interface {
	Create(ctx context.Context, ownerID uuid.UUID, text string) (*model.Tweet, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Tweet, error)
	Update(ctx context.Context, tweetID, callerID uuid.UUID, text string) (*model.Tweet, error)
	Delete(ctx context.Context, tweetID, callerID uuid.UUID) error
}

type tweetService struct {
	tweets    repository.TweetRepository
	reactions repository.ReactionRepository
}

// NewTweetService creates a new TweetService instance.
func NewTweetService(tweets repository.TweetRepository, reactions repository.ReactionRepository) TweetService {
	return &tweetService{tweets: tweets, reactions: reactions}
}

func (s *tweetService) Create(ctx context.Context, ownerID uuid.UUID, text string) (*model.Tweet, error) {
	tweet, err := model.NewTweet(ownerID, text)
	if err != nil {
		return nil, err
	}

	if err := s.tweets.Create(ctx, tweet); err != nil {
		return nil, fmt.Errorf("create tweet: %w", err)
	}
	return tweet, nil
}

func (s *tweetService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Tweet, error) {
	if ownerID == uuid.Nil {
		return nil, model.ErrInvalidOwner
	}
	return s.tweets.ListByOwner(ctx, ownerID)
}

func (s *tweetService) Update(ctx context.Context, tweetID, callerID uuid.UUID, text string) (*model.Tweet, error) {
	tweet, err := s.tweets.GetByID(ctx, tweetID)
	if err != nil {
		return nil, err
	}
	if tweet.OwnerID != callerID {
		return nil, ErrNotTweetOwner
	}

	if err := tweet.SetText(text); err != nil {
		return nil, err
	}

	if err := s.tweets.Update(ctx, tweet); err != nil {
		return nil, fmt.Errorf("update tweet: %w", err)
	}
	return tweet, nil
}

func (s *tweetService) Delete(ctx context.Context, tweetID, callerID uuid.UUID) error {
	tweet, err := s.tweets.GetByID(ctx, tweetID)
	if err != nil {
		return err
	}
	if tweet.OwnerID != callerID {
		return ErrNotTweetOwner
	}

	if err := s.reactions.DeleteBySubject(ctx, model.Subject{Kind: model.SubjectTweet, ID: tweetID}); err != nil {
		return fmt.Errorf("delete tweet reactions: %w", err)
	}

	return s.tweets.Delete(ctx, tweetID)
}
