package domain

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidLike a like targets exactly one video or one comment
var ErrInvalidLike = errors.New("like must target exactly one of video or comment")

// Like a user liking a video or a comment
type Like struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"_id"`
	LikedBy   primitive.ObjectID  `bson:"likedBy" json:"likedBy"`
	Video     *primitive.ObjectID `bson:"video,omitempty" json:"video,omitempty"`
	Comment   *primitive.ObjectID `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt time.Time           `bson:"createdAt" json:"createdAt"`
}

// VideoLike like on a video
func VideoLike(user, video primitive.ObjectID) *Like {
	return &Like{LikedBy: user, Video: &video}
}

// CommentLike like on a comment
func CommentLike(user, comment primitive.ObjectID) *Like {
	return &Like{LikedBy: user, Comment: &comment}
}

// Validate must hold before insert
func (l *Like) Validate() error {
	if l.LikedBy.IsZero() {
		return ErrInvalidLike
	}
	hasVideo := l.Video != nil && !l.Video.IsZero()
	hasComment := l.Comment != nil && !l.Comment.IsZero()
	if hasVideo == hasComment {
		return ErrInvalidLike
	}
	return nil
}

// ToggleResult state after a toggle
type ToggleResult struct {
	Liked bool `json:"isLiked"`
}
