package media

import (
	"context"
	"errors"
	"mime"
	"path/filepath"
	"strings"
)

// ResourceType kind of stored asset
type ResourceType string

const (
	// ResourceImage avatars, covers, thumbnails
	ResourceImage ResourceType = "image"
	// ResourceVideo video files
	ResourceVideo ResourceType = "video"
)

// Folders used for uploaded assets
const (
	FolderAvatars     = "avatars"
	FolderCoverImages = "cover-images"
	FolderVideos      = "videos"
	FolderThumbnails  = "thumbnails"
)

// ErrUnsupportedType only images and videos are accepted
var ErrUnsupportedType = errors.New("only images and videos are allowed")

// Asset reference to a stored object
type Asset struct {
	PublicID string `bson:"public_id" json:"public_id"`
	URL      string `bson:"url" json:"url"`
}

// IsZero report an unset asset
func (a Asset) IsZero() bool {
	return a.PublicID == "" && a.URL == ""
}

// Store external object storage used for avatars, covers, videos and thumbnails
type Store interface {
	Upload(ctx context.Context, localPath, folder string) (Asset, error)
	Delete(ctx context.Context, publicID string, resourceType ResourceType) error
}

// ContentType guess the mime type of a local file from its extension
func ContentType(path string) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(path))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// CheckAllowed accept image/* and video/* mime types only
func CheckAllowed(contentType string) error {
	if strings.HasPrefix(contentType, "image/") || strings.HasPrefix(contentType, "video/") {
		return nil
	}
	return ErrUnsupportedType
}
