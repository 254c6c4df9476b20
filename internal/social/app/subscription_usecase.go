package app

import (
	"context"
	"errors"

	analyticsdomain "video_platform_service/internal/analytics/domain"
	notificationdomain "video_platform_service/internal/notification/domain"
	"video_platform_service/internal/social/domain"
	"video_platform_service/internal/social/repository"
	"video_platform_service/pkg/database"
	errprocess "video_platform_service/pkg/err"
	"video_platform_service/pkg/pagination"
	"video_platform_service/pkg/token"
)

// SubscriptionState result of a toggle
type SubscriptionState struct {
	Subscribed bool `json:"isSubscribed"`
}

// SubscriptionUseCase 訂閱服務
type SubscriptionUseCase interface {
	Toggle(ctx context.Context, caller *token.Identity, channelID string) (*SubscriptionState, error)
	Subscribers(ctx context.Context, channelID string, p pagination.Params) (*pagination.Page[domain.SubscriberView], error)
	Subscribed(ctx context.Context, userID string, p pagination.Params) (*pagination.Page[domain.ChannelView], error)
}

type subscriptionUseCase struct {
	repo     repository.SubscriptionRepository
	users    UserLookup
	notifier Notifier
	activity ActivityRecorder
}

// NewSubscriptionUseCase create SubscriptionUseCase
func NewSubscriptionUseCase(repo repository.SubscriptionRepository, users UserLookup, notifier Notifier, activity ActivityRecorder) SubscriptionUseCase {
	return &subscriptionUseCase{repo: repo, users: users, notifier: notifier, activity: activity}
}

func (u *subscriptionUseCase) Toggle(ctx context.Context, caller *token.Identity, channelID string) (*SubscriptionState, error) {
	channel, err := database.ParseID(channelID, "channel id")
	if err != nil {
		return nil, err
	}
	subscriber, err := database.ParseID(caller.UserID, "user id")
	if err != nil {
		return nil, err
	}

	sub, err := domain.NewSubscription(subscriber, channel)
	if err != nil {
		return nil, errprocess.BadRequest("You cannot subscribe to your own channel")
	}
	if _, err := u.users.ResolveIdentity(ctx, channelID); err != nil {
		return nil, errprocess.NotFound("Channel not found")
	}

	removed, err := u.repo.Delete(ctx, subscriber, channel)
	if err != nil {
		return nil, errprocess.Internal("Failed to update subscription", err)
	}
	if removed {
		record(ctx, u.activity, channel, analyticsdomain.Metric{SubscribersLost: 1})
		return &SubscriptionState{Subscribed: false}, nil
	}

	if err := u.repo.Create(ctx, sub); err != nil {
		// 同時送出的第二個請求，已經訂閱
		if errors.Is(err, repository.ErrDuplicate) {
			return &SubscriptionState{Subscribed: true}, nil
		}
		return nil, errprocess.Internal("Failed to update subscription", err)
	}

	record(ctx, u.activity, channel, analyticsdomain.Metric{SubscribersGained: 1})
	notify(ctx, u.notifier, &notificationdomain.Notification{
		Recipient: channel,
		Sender:    subscriber,
		Type:      notificationdomain.TypeSubscription,
		Content:   caller.UserName + " subscribed to your channel",
	})
	return &SubscriptionState{Subscribed: true}, nil
}

func (u *subscriptionUseCase) Subscribers(ctx context.Context, channelID string, p pagination.Params) (*pagination.Page[domain.SubscriberView], error) {
	channel, err := database.ParseID(channelID, "channel id")
	if err != nil {
		return nil, err
	}
	p = p.Normalize()
	items, total, err := u.repo.ListSubscribers(ctx, channel, p)
	if err != nil {
		return nil, errprocess.Internal("Failed to list subscribers", err)
	}
	page := pagination.New(items, total, p)
	return &page, nil
}

func (u *subscriptionUseCase) Subscribed(ctx context.Context, userID string, p pagination.Params) (*pagination.Page[domain.ChannelView], error) {
	subscriber, err := database.ParseID(userID, "user id")
	if err != nil {
		return nil, err
	}
	p = p.Normalize()
	items, total, err := u.repo.ListSubscribed(ctx, subscriber, p)
	if err != nil {
		return nil, errprocess.Internal("Failed to list subscriptions", err)
	}
	page := pagination.New(items, total, p)
	return &page, nil
}
