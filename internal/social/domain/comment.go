package domain

import (
	"errors"
	"time"

	userdomain "video_platform_service/internal/user/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrCommentNotFound no comment matches
var ErrCommentNotFound = errors.New("comment not found")

// Comment on a video, a reply carries its parent
type Comment struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty" json:"_id"`
	Content       string              `bson:"content" json:"content"`
	Video         primitive.ObjectID  `bson:"video" json:"video"`
	Owner         primitive.ObjectID  `bson:"owner" json:"owner"`
	ParentComment *primitive.ObjectID `bson:"parentComment" json:"parentComment"`
	CreatedAt     time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// IsOwnedBy compare the author with a user id in hex
func (c *Comment) IsOwnedBy(userID string) bool {
	return userID != "" && c.Owner.Hex() == userID
}

// IsReply has a parent
func (c *Comment) IsReply() bool {
	return c.ParentComment != nil && !c.ParentComment.IsZero()
}

// CommentView comment with its author, like and reply counts
type CommentView struct {
	ID            primitive.ObjectID  `bson:"_id" json:"_id"`
	Content       string              `bson:"content" json:"content"`
	Video         primitive.ObjectID  `bson:"video" json:"video"`
	Owner         userdomain.Summary  `bson:"owner" json:"owner"`
	ParentComment *primitive.ObjectID `bson:"parentComment" json:"parentComment"`
	LikesCount    int64               `bson:"likesCount" json:"likesCount"`
	RepliesCount  int64               `bson:"repliesCount" json:"repliesCount"`
	CreatedAt     time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time           `bson:"updatedAt" json:"updatedAt"`
}
