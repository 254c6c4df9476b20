package domain

import (
	"errors"
	"time"

	userdomain "video_platform_service/internal/user/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrSelfSubscription a channel cannot subscribe to itself
var ErrSelfSubscription = errors.New("cannot subscribe to your own channel")

// Subscription subscriber follows channel, unique per pair
type Subscription struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Subscriber primitive.ObjectID `bson:"subscriber" json:"subscriber"`
	Channel    primitive.ObjectID `bson:"channel" json:"channel"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// NewSubscription reject subscribing to oneself
func NewSubscription(subscriber, channel primitive.ObjectID) (*Subscription, error) {
	if subscriber == channel {
		return nil, ErrSelfSubscription
	}
	return &Subscription{Subscriber: subscriber, Channel: channel}, nil
}

// SubscriberView a subscriber of a channel
type SubscriberView struct {
	ID         primitive.ObjectID `bson:"_id" json:"_id"`
	Subscriber userdomain.Summary `bson:"subscriber" json:"subscriber"`
	CreatedAt  time.Time          `bson:"createdAt" json:"subscribedAt"`
}

// ChannelView a channel the user subscribed to
type ChannelView struct {
	ID        primitive.ObjectID `bson:"_id" json:"_id"`
	Channel   userdomain.Summary `bson:"channel" json:"channel"`
	CreatedAt time.Time          `bson:"createdAt" json:"subscribedAt"`
}
