package domain

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Type kind of notification
type Type string

const (
	// TypeSubscription someone subscribed to the channel
	TypeSubscription Type = "SUBSCRIPTION"
	// TypeComment someone commented on a video
	TypeComment Type = "COMMENT"
	// TypeReply someone replied to a comment
	TypeReply Type = "REPLY"
	// TypeShare someone shared a video
	TypeShare Type = "SHARE"
	// TypeVideo a subscribed channel published a video
	TypeVideo Type = "VIDEO"
)

// ErrNotificationNotFound no notification of this recipient matches
var ErrNotificationNotFound = errors.New("notification not found")

// ErrInvalidNotification required fields missing or unknown type
var ErrInvalidNotification = errors.New("invalid notification")

// Valid known type
func (t Type) Valid() bool {
	switch t {
	case TypeSubscription, TypeComment, TypeReply, TypeShare, TypeVideo:
		return true
	}
	return false
}

// Notification message for one recipient
type Notification struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Recipient primitive.ObjectID `bson:"recipient" json:"recipient"`
	Sender    primitive.ObjectID `bson:"sender" json:"sender"`
	Type      Type               `bson:"type" json:"type"`
	Content   string             `bson:"content" json:"content"`
	IsRead    bool               `bson:"isRead" json:"isRead"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Validate check the notification before it is stored
func (n *Notification) Validate() error {
	if n.Recipient.IsZero() || n.Sender.IsZero() || n.Content == "" || !n.Type.Valid() {
		return ErrInvalidNotification
	}
	return nil
}

// Filter optional conditions of a notification listing
type Filter struct {
	IsRead *bool
	Type   Type
}

// Channel redis pub/sub channel of a recipient
func Channel(recipient string) string {
	return "notifications:user:" + recipient
}

// Event what the live feed pushes to a connected client
type Event struct {
	Action       string        `json:"action"`
	Notification *Notification `json:"notification,omitempty"`
}

// EventNotification a new notification was created
const EventNotification = "notification"
