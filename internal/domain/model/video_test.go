package model

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewVideo(t *testing.T) {
	ownerID := uuid.New()

	tests := []struct {
		name        string
		ownerID     uuid.UUID
		title       string
		description string
		wantErr     error
	}{
		{
			name:        "valid video",
			ownerID:     ownerID,
			title:       "My First Video",
			description: "A description",
			wantErr:     nil,
		},
		{
			name:    "nil owner",
			ownerID: uuid.Nil,
			title:   "My First Video",
			wantErr: ErrInvalidOwner,
		},
		{
			name:    "empty title",
			ownerID: ownerID,
			title:   "",
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "title at maximum length",
			ownerID: ownerID,
			title:   strings.Repeat("a", 255),
			wantErr: nil,
		},
		{
			name:    "title too long",
			ownerID: ownerID,
			title:   strings.Repeat("a", 256),
			wantErr: ErrTitleTooLong,
		},
		{
			name:        "empty description is allowed",
			ownerID:     ownerID,
			title:       "No description",
			description: "",
			wantErr:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			video, err := NewVideo(tt.ownerID, tt.title, tt.description)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if video.ID == uuid.Nil {
				t.Error("expected generated ID")
			}
			if video.OwnerID != tt.ownerID {
				t.Errorf("expected owner %s, got %s", tt.ownerID, video.OwnerID)
			}
			if video.IsPublished {
				t.Error("new videos start unpublished")
			}
			if video.CreatedAt.IsZero() || video.UpdatedAt.IsZero() {
				t.Error("expected timestamps to be set")
			}
		})
	}
}

func TestVideo_TogglePublished(t *testing.T) {
	video, err := NewVideo(uuid.New(), "Toggle me", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	video.TogglePublished()
	if !video.IsPublished {
		t.Error("expected published after first toggle")
	}

	video.TogglePublished()
	if video.IsPublished {
		t.Error("expected unpublished after second toggle")
	}
}

func TestVideo_SetMediaKeys(t *testing.T) {
	video, err := NewVideo(uuid.New(), "With media", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	video.SetMediaKeys("videos/abc/original.mp4", "thumbnails/abc/cover.jpg")

	if video.VideoKey != "videos/abc/original.mp4" {
		t.Errorf("unexpected video key: %s", video.VideoKey)
	}
	if video.ThumbnailKey != "thumbnails/abc/cover.jpg" {
		t.Errorf("unexpected thumbnail key: %s", video.ThumbnailKey)
	}
}
