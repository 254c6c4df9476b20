package domain

import (
	"errors"
	"time"

	videodomain "video_platform_service/internal/video/domain"
	"video_platform_service/pkg"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrPlaylistNotFound no playlist matches
var ErrPlaylistNotFound = errors.New("playlist not found")

// Playlist ordered, duplicate free list of videos
type Playlist struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Name        string               `bson:"name" json:"name"`
	Description string               `bson:"description" json:"description"`
	Videos      []primitive.ObjectID `bson:"videos" json:"videos"`
	Owner       primitive.ObjectID   `bson:"owner" json:"owner"`
	IsPublic    bool                 `bson:"isPublic" json:"isPublic"`
	CreatedAt   time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// IsOwnedBy compare the owner with a user id in hex
func (p *Playlist) IsOwnedBy(userID string) bool {
	return userID != "" && p.Owner.Hex() == userID
}

// VisibleTo private playlists are only visible to their owner
func (p *Playlist) VisibleTo(userID string) bool {
	return p.IsPublic || p.IsOwnedBy(userID)
}

// Contains video already in the list
func (p *Playlist) Contains(videoID primitive.ObjectID) bool {
	return pkg.Contains(p.Videos, videoID)
}

// PlaylistUpdate partial update
type PlaylistUpdate struct {
	Name        *string
	Description *string
	IsPublic    *bool
}

// IsEmpty nothing to update
func (u PlaylistUpdate) IsEmpty() bool {
	return u == PlaylistUpdate{}
}

// PlaylistDetails playlist with its videos resolved, in playlist order
type PlaylistDetails struct {
	ID          primitive.ObjectID    `json:"_id"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Owner       primitive.ObjectID    `json:"owner"`
	IsPublic    bool                  `json:"isPublic"`
	Videos      []videodomain.Details `json:"videos"`
	TotalVideos int                   `json:"totalVideos"`
	CreatedAt   time.Time             `json:"createdAt"`
	UpdatedAt   time.Time             `json:"updatedAt"`
}

// WithVideos resolve the playlist, videos the viewer cannot see are dropped
func (p *Playlist) WithVideos(videos []videodomain.Details, viewerID string) *PlaylistDetails {
	visible := make([]videodomain.Details, 0, len(videos))
	for i := range videos {
		if videos[i].VisibleTo(viewerID) {
			visible = append(visible, videos[i])
		}
	}
	return &PlaylistDetails{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Owner:       p.Owner,
		IsPublic:    p.IsPublic,
		Videos:      visible,
		TotalVideos: len(visible),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
