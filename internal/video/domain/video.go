package domain

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	userdomain "video_platform_service/internal/user/domain"
	"video_platform_service/pkg"
	"video_platform_service/pkg/media"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrVideoNotFound no video matches
var ErrVideoNotFound = errors.New("video not found")

// Video uploaded video and its metadata
type Video struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	VideoFile   media.Asset        `bson:"videoFile" json:"videoFile"`
	Thumbnail   media.Asset        `bson:"thumbnail" json:"thumbnail"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Duration    float64            `bson:"duration" json:"duration"`
	Views       int64              `bson:"views" json:"views"`
	Shares      int64              `bson:"shares" json:"shares"`
	IsPublished bool               `bson:"isPublished" json:"isPublished"`
	Owner       primitive.ObjectID `bson:"owner" json:"owner"`
	Category    string             `bson:"category" json:"category"`
	Tags        []string           `bson:"tags" json:"tags"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// IsOwnedBy compare the owner with a user id in hex
func (v *Video) IsOwnedBy(userID string) bool {
	return userID != "" && v.Owner.Hex() == userID
}

// VisibleTo unpublished videos are only visible to their owner
func (v *Video) VisibleTo(userID string) bool {
	return v.IsPublished || v.IsOwnedBy(userID)
}

// Details video with the owner's public fields joined in place of the owner id
type Details struct {
	ID          primitive.ObjectID `bson:"_id" json:"_id"`
	VideoFile   media.Asset        `bson:"videoFile" json:"videoFile"`
	Thumbnail   media.Asset        `bson:"thumbnail" json:"thumbnail"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Duration    float64            `bson:"duration" json:"duration"`
	Views       int64              `bson:"views" json:"views"`
	Shares      int64              `bson:"shares" json:"shares"`
	IsPublished bool               `bson:"isPublished" json:"isPublished"`
	Owner       userdomain.Summary `bson:"owner" json:"owner"`
	Category    string             `bson:"category" json:"category"`
	Tags        []string           `bson:"tags" json:"tags"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// VisibleTo unpublished videos are only visible to their owner
func (d *Details) VisibleTo(userID string) bool {
	return d.IsPublished || (userID != "" && d.Owner.ID.Hex() == userID)
}

// VideoUpdate partial update, nil fields are left untouched
type VideoUpdate struct {
	Title       *string
	Description *string
	Category    *string
	Tags        *[]string
	Thumbnail   *media.Asset
	IsPublished *bool
}

// IsEmpty nothing to update
func (u VideoUpdate) IsEmpty() bool {
	return u == VideoUpdate{}
}

// ParseTags accept a JSON array or a comma separated list, trimmed and de-duplicated
func ParseTags(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}
	}

	var parts []string
	if strings.HasPrefix(raw, "[") {
		if err := json.Unmarshal([]byte(raw), &parts); err != nil {
			parts = strings.Split(strings.Trim(raw, "[]"), ",")
		}
	} else {
		parts = strings.Split(raw, ",")
	}

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.Trim(strings.TrimSpace(p), `"`); p != "" {
			out = append(out, p)
		}
	}
	return pkg.Unique(out)
}
