package app

import (
	"context"
	"errors"

	"video_platform_service/internal/notification/domain"
	"video_platform_service/internal/notification/repository"
	"video_platform_service/pkg/database"
	errprocess "video_platform_service/pkg/err"
	"video_platform_service/pkg/logger"
	"video_platform_service/pkg/pagination"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Preferences recipient side opt-out of notification kinds
type Preferences interface {
	Allows(ctx context.Context, userID primitive.ObjectID, kind string) (bool, error)
}

// PubSub live delivery of new notifications
type PubSub interface {
	Publish(ctx context.Context, channel string, message interface{}) error
	Subscribe(ctx context.Context, channel string, handler func(domain.Event)) error
}

// ListResult one page plus the recipient's unread count
type ListResult struct {
	pagination.Page[repository.View]
	UnreadCount int64 `json:"unreadCount"`
}

// NotificationUseCase 通知服務
type NotificationUseCase interface {
	Notify(ctx context.Context, n *domain.Notification)
	List(ctx context.Context, userID string, f domain.Filter, p pagination.Params) (*ListResult, error)
	MarkRead(ctx context.Context, userID, notificationID string) (*domain.Notification, error)
	MarkAllRead(ctx context.Context, userID string) (int64, error)
	Delete(ctx context.Context, userID, notificationID string) error
}

type notificationUseCase struct {
	repo   repository.NotificationRepository
	prefs  Preferences
	pubsub PubSub
}

// NewNotificationUseCase create NotificationUseCase, prefs and pubsub may be nil
func NewNotificationUseCase(repo repository.NotificationRepository, prefs Preferences, pubsub PubSub) NotificationUseCase {
	return &notificationUseCase{repo: repo, prefs: prefs, pubsub: pubsub}
}

// Notify persist and publish, best-effort: failures are logged and never returned
func (u *notificationUseCase) Notify(ctx context.Context, n *domain.Notification) {
	if n == nil || n.Sender == n.Recipient {
		return
	}
	if err := n.Validate(); err != nil {
		logger.Log.Warn("skip notification", zap.String("type", string(n.Type)), zap.Error(err))
		return
	}

	if u.prefs != nil {
		allowed, err := u.prefs.Allows(ctx, n.Recipient, string(n.Type))
		if err != nil {
			logger.Log.Warn("notification preferences", zap.String("recipient", n.Recipient.Hex()), zap.Error(err))
			return
		}
		if !allowed {
			return
		}
	}

	if err := u.repo.Create(ctx, n); err != nil {
		logger.Log.Error("create notification failed", zap.String("recipient", n.Recipient.Hex()), zap.Error(err))
		return
	}

	if u.pubsub != nil {
		if err := u.pubsub.Publish(ctx, domain.Channel(n.Recipient.Hex()), n); err != nil {
			logger.Log.Warn("publish notification failed", zap.String("recipient", n.Recipient.Hex()), zap.Error(err))
		}
	}
}

func (u *notificationUseCase) List(ctx context.Context, userID string, f domain.Filter, p pagination.Params) (*ListResult, error) {
	recipient, err := database.ParseID(userID, "user id")
	if err != nil {
		return nil, err
	}
	if f.Type != "" && !f.Type.Valid() {
		return nil, errprocess.BadRequest("Invalid notification type")
	}
	p = p.Normalize()

	items, total, err := u.repo.List(ctx, recipient, f, p)
	if err != nil {
		return nil, errprocess.Internal("Failed to fetch notifications", err)
	}
	unread, err := u.repo.CountUnread(ctx, recipient)
	if err != nil {
		return nil, errprocess.Internal("Failed to fetch notifications", err)
	}

	return &ListResult{Page: pagination.New(items, total, p), UnreadCount: unread}, nil
}

func (u *notificationUseCase) ids(userID, notificationID string) (primitive.ObjectID, primitive.ObjectID, error) {
	recipient, err := database.ParseID(userID, "user id")
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, err
	}
	id, err := database.ParseID(notificationID, "notification id")
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, err
	}
	return recipient, id, nil
}

// MarkRead recipient only, anyone else gets 404
func (u *notificationUseCase) MarkRead(ctx context.Context, userID, notificationID string) (*domain.Notification, error) {
	recipient, id, err := u.ids(userID, notificationID)
	if err != nil {
		return nil, err
	}
	n, err := u.repo.MarkRead(ctx, id, recipient)
	if errors.Is(err, domain.ErrNotificationNotFound) {
		return nil, errprocess.NotFound("Notification not found")
	}
	if err != nil {
		return nil, errprocess.Internal("Failed to update notification", err)
	}
	return n, nil
}

func (u *notificationUseCase) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	recipient, err := database.ParseID(userID, "user id")
	if err != nil {
		return 0, err
	}
	n, err := u.repo.MarkAllRead(ctx, recipient)
	if err != nil {
		return 0, errprocess.Internal("Failed to update notifications", err)
	}
	return n, nil
}

// Delete recipient only, anyone else gets 404
func (u *notificationUseCase) Delete(ctx context.Context, userID, notificationID string) error {
	recipient, id, err := u.ids(userID, notificationID)
	if err != nil {
		return err
	}
	err = u.repo.Delete(ctx, id, recipient)
	if errors.Is(err, domain.ErrNotificationNotFound) {
		return errprocess.NotFound("Notification not found")
	}
	if err != nil {
		return errprocess.Internal("Failed to delete notification", err)
	}
	return nil
}
