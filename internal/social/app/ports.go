package app

import (
	"context"

	analyticsdomain "video_platform_service/internal/analytics/domain"
	notificationdomain "video_platform_service/internal/notification/domain"
	videodomain "video_platform_service/internal/video/domain"
	"video_platform_service/pkg/token"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notifier best-effort notification delivery
type Notifier interface {
	Notify(ctx context.Context, n *notificationdomain.Notification)
}

// ActivityRecorder best-effort channel analytics
type ActivityRecorder interface {
	Record(ctx context.Context, channelID primitive.ObjectID, m analyticsdomain.Metric)
}

// UserLookup resolve a user id, any error means the user is gone
type UserLookup interface {
	ResolveIdentity(ctx context.Context, userID string) (*token.Identity, error)
}

// VideoLookup videos referenced by likes, comments and playlists
type VideoLookup interface {
	FindVideo(ctx context.Context, videoID primitive.ObjectID) (*videodomain.Video, error)
	VideosByIDs(ctx context.Context, ids []primitive.ObjectID) ([]videodomain.Details, error)
}

func notify(ctx context.Context, n Notifier, msg *notificationdomain.Notification) {
	if n != nil {
		n.Notify(ctx, msg)
	}
}

func record(ctx context.Context, r ActivityRecorder, channelID primitive.ObjectID, m analyticsdomain.Metric) {
	if r != nil {
		r.Record(ctx, channelID, m)
	}
}

func viewerID(viewer *token.Identity) string {
	if viewer == nil {
		return ""
	}
	return viewer.UserID
}
