package model

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestNewPlaylist(t *testing.T) {
	if _, err := NewPlaylist(uuid.Nil, "Favorites", ""); !errors.Is(err, ErrInvalidOwner) {
		t.Errorf("expected ErrInvalidOwner, got %v", err)
	}
	if _, err := NewPlaylist(uuid.New(), "", ""); !errors.Is(err, ErrEmptyPlaylistName) {
		t.Errorf("expected ErrEmptyPlaylistName, got %v", err)
	}

	p, err := NewPlaylist(uuid.New(), "Favorites", "the good stuff")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.VideoIDs) != 0 {
		t.Errorf("expected empty playlist, got %d videos", len(p.VideoIDs))
	}
}

func TestPlaylist_AddVideo(t *testing.T) {
	p, err := NewPlaylist(uuid.New(), "Watch later", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	videoID := uuid.New()
	if err := p.AddVideo(videoID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.AddVideo(videoID); !errors.Is(err, ErrVideoAlreadyInList) {
		t.Errorf("expected ErrVideoAlreadyInList, got %v", err)
	}
	if len(p.VideoIDs) != 1 {
		t.Errorf("expected 1 video, got %d", len(p.VideoIDs))
	}
}

func TestPlaylist_RemoveVideo(t *testing.T) {
	p, err := NewPlaylist(uuid.New(), "Watch later", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first := uuid.New()
	second := uuid.New()
	third := uuid.New()
	for _, id := range []uuid.UUID{first, second, third} {
		if err := p.AddVideo(id); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if err := p.RemoveVideo(second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.RemoveVideo(second); !errors.Is(err, ErrVideoNotInList) {
		t.Errorf("expected ErrVideoNotInList, got %v", err)
	}

	want := []uuid.UUID{first, third}
	if len(p.VideoIDs) != len(want) {
		t.Fatalf("expected %d videos, got %d", len(want), len(p.VideoIDs))
	}
	for i, id := range want {
		if p.VideoIDs[i] != id {
			t.Errorf("position %d: expected %s, got %s", i, id, p.VideoIDs[i])
		}
	}
}

func TestNewSubscription(t *testing.T) {
	channelID := uuid.New()
	subscriberID := uuid.New()

	tests := []struct {
		name         string
		channelID    uuid.UUID
		subscriberID uuid.UUID
		wantErr      error
	}{
		{name: "valid", channelID: channelID, subscriberID: subscriberID},
		{name: "nil channel", channelID: uuid.Nil, subscriberID: subscriberID, wantErr: ErrInvalidChannel},
		{name: "nil subscriber", channelID: channelID, subscriberID: uuid.Nil, wantErr: ErrInvalidSubscriber},
		{name: "self subscription", channelID: channelID, subscriberID: channelID, wantErr: ErrSelfSubscription},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSubscription(tt.channelID, tt.subscriberID)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
