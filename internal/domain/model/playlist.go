package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Playlist is an ordered collection of videos curated by a user.
type Playlist struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description string
	VideoIDs    []uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

var (
	ErrEmptyPlaylistName  = errors.New("playlist name cannot be empty")
	ErrVideoAlreadyInList = errors.New("video is already in the playlist")
	ErrVideoNotInList     = errors.New("video is not in the playlist")
)

func NewPlaylist(ownerID uuid.UUID, name, description string) (*Playlist, error) {
	if ownerID == uuid.Nil {
		return nil, ErrInvalidOwner
	}
	if name == "" {
		return nil, ErrEmptyPlaylistName
	}

	now := time.Now()
	return &Playlist{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// AddVideo appends a video, rejecting duplicates.
func (p *Playlist) AddVideo(videoID uuid.UUID) error {
	for _, id := range p.VideoIDs {
		if id == videoID {
			return ErrVideoAlreadyInList
		}
	}
	p.VideoIDs = append(p.VideoIDs, videoID)
	p.UpdatedAt = time.Now()
	return nil
}

// RemoveVideo drops a video, preserving the order of the rest.
func (p *Playlist) RemoveVideo(videoID uuid.UUID) error {
	for i, id := range p.VideoIDs {
		if id == videoID {
			p.VideoIDs = append(p.VideoIDs[:i], p.VideoIDs[i+1:]...)
			p.UpdatedAt = time.Now()
			return nil
		}
	}
	return ErrVideoNotInList
}
