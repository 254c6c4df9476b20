package app

import (
	"context"
	"errors"
	"strings"

	analyticsdomain "video_platform_service/internal/analytics/domain"
	notificationdomain "video_platform_service/internal/notification/domain"
	"video_platform_service/internal/video/domain"
	"video_platform_service/internal/video/repository"
	"video_platform_service/pkg/database"
	errprocess "video_platform_service/pkg/err"
	"video_platform_service/pkg/logger"
	"video_platform_service/pkg/media"
	"video_platform_service/pkg/pagination"
	"video_platform_service/pkg/token"
	"video_platform_service/pkg/validation"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Notifier best-effort notification delivery
type Notifier interface {
	Notify(ctx context.Context, n *notificationdomain.Notification)
}

// ActivityRecorder best-effort channel analytics
type ActivityRecorder interface {
	Record(ctx context.Context, channelID primitive.ObjectID, m analyticsdomain.Metric)
}

// WatchHistoryRecorder push a watched video to the front of a user's history
type WatchHistoryRecorder interface {
	AddToWatchHistory(ctx context.Context, userID string, videoID primitive.ObjectID) error
}

// SubscriberLister ids of everyone subscribed to a channel
type SubscriberLister interface {
	SubscriberIDs(ctx context.Context, channelID primitive.ObjectID) ([]primitive.ObjectID, error)
}

// RelatedCleaner remove records hanging off a deleted video
type RelatedCleaner interface {
	DeleteByVideo(ctx context.Context, videoID primitive.ObjectID) error
}

// PublishInput upload form
type PublishInput struct {
	Title         string  `form:"title" validate:"notblank,max=200"`
	Description   string  `form:"description" validate:"notblank,max=5000"`
	Category      string  `form:"category" validate:"notblank"`
	Tags          string  `form:"tags" validate:"notblank"`
	Duration      float64 `form:"duration" validate:"gte=0"`
	IsPublished   *bool   `form:"isPublished"`
	VideoPath     string  `form:"-"`
	ThumbnailPath string  `form:"-"`
}

// UpdateInput PATCH form, empty fields are left untouched
type UpdateInput struct {
	Title         *string `form:"title" validate:"omitempty,notblank,max=200"`
	Description   *string `form:"description" validate:"omitempty,max=5000"`
	Category      *string `form:"category"`
	Tags          *string `form:"tags"`
	ThumbnailPath string  `form:"-"`
}

// VideoUseCase 影片相關服務
type VideoUseCase interface {
	ListVideos(ctx context.Context, q domain.ListQuery) (*pagination.Page[domain.Details], error)
	PublishVideo(ctx context.Context, caller *token.Identity, in PublishInput) (*domain.Video, error)
	GetVideo(ctx context.Context, videoID string, viewer *token.Identity) (*domain.Details, error)
	UpdateVideo(ctx context.Context, callerID, videoID string, in UpdateInput) (*domain.Video, error)
	DeleteVideo(ctx context.Context, callerID, videoID string) error
	TogglePublish(ctx context.Context, callerID, videoID string) (*domain.Video, error)
	ShareVideo(ctx context.Context, caller *token.Identity, videoID string) (*domain.Video, error)
	VideosByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Details, error)
	FindVideo(ctx context.Context, videoID primitive.ObjectID) (*domain.Video, error)
}

type videoUseCase struct {
	repo     repository.VideoRepository
	store    media.Store
	notifier Notifier
	activity ActivityRecorder
	history  WatchHistoryRecorder
	subs     SubscriberLister
	cleaners []RelatedCleaner
}

// NewVideoUseCase 建立 VideoUseCase, collaborators other than repo and store may be nil
func NewVideoUseCase(
	repo repository.VideoRepository,
	store media.Store,
	notifier Notifier,
	activity ActivityRecorder,
	history WatchHistoryRecorder,
	subs SubscriberLister,
	cleaners ...RelatedCleaner,
) VideoUseCase {
	return &videoUseCase{
		repo:     repo,
		store:    store,
		notifier: notifier,
		activity: activity,
		history:  history,
		subs:     subs,
		cleaners: cleaners,
	}
}

func (u *videoUseCase) ListVideos(ctx context.Context, q domain.ListQuery) (*pagination.Page[domain.Details], error) {
	plan, err := domain.BuildListPlan(q)
	if err != nil {
		var sortErr *domain.ErrInvalidSortField
		if errors.As(err, &sortErr) {
			return nil, errprocess.BadRequest("Invalid sortBy field", "sortBy must be one of "+strings.Join(domain.SortFields, ", "))
		}
		return nil, errprocess.BadRequest("Invalid userId")
	}

	items, total, err := u.repo.List(ctx, plan)
	if err != nil {
		return nil, errprocess.Internal("Failed to list videos", err)
	}
	page := pagination.New(items, total, plan.Page)
	return &page, nil
}

func (u *videoUseCase) PublishVideo(ctx context.Context, caller *token.Identity, in PublishInput) (*domain.Video, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if in.VideoPath == "" {
		return nil, errprocess.BadRequest("Video file is required")
	}
	if in.ThumbnailPath == "" {
		return nil, errprocess.BadRequest("Thumbnail is required")
	}
	tags := domain.ParseTags(in.Tags)
	if len(tags) == 0 {
		return nil, errprocess.BadRequest("Tags are required")
	}
	ownerID, err := database.ParseID(caller.UserID, "user id")
	if err != nil {
		return nil, err
	}

	videoAsset, err := u.store.Upload(ctx, in.VideoPath, media.FolderVideos)
	if err != nil {
		return nil, errprocess.Internal("Failed to upload video file", err)
	}
	thumbAsset, err := u.store.Upload(ctx, in.ThumbnailPath, media.FolderThumbnails)
	if err != nil {
		u.discard(ctx, videoAsset, media.ResourceVideo)
		return nil, errprocess.Internal("Failed to upload thumbnail", err)
	}

	published := true
	if in.IsPublished != nil {
		published = *in.IsPublished
	}
	video := &domain.Video{
		VideoFile:   videoAsset,
		Thumbnail:   thumbAsset,
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Duration:    in.Duration,
		IsPublished: published,
		Owner:       ownerID,
		Category:    strings.TrimSpace(in.Category),
		Tags:        tags,
	}
	if err := u.repo.Create(ctx, video); err != nil {
		u.discard(ctx, videoAsset, media.ResourceVideo)
		u.discard(ctx, thumbAsset, media.ResourceImage)
		return nil, errprocess.Internal("Failed to save video", err)
	}

	u.record(ctx, ownerID, analyticsdomain.Metric{Videos: 1})
	if video.IsPublished {
		u.notifySubscribers(ctx, caller, video)
	}
	return video, nil
}

func (u *videoUseCase) notifySubscribers(ctx context.Context, caller *token.Identity, video *domain.Video) {
	if u.subs == nil || u.notifier == nil {
		return
	}
	ids, err := u.subs.SubscriberIDs(ctx, video.Owner)
	if err != nil {
		logger.Log.Warn("list subscribers failed", zap.String("channel", video.Owner.Hex()), zap.Error(err))
		return
	}
	content := caller.UserName + " uploaded a new video: " + video.Title
	for _, id := range ids {
		u.notifier.Notify(ctx, &notificationdomain.Notification{
			Recipient: id,
			Sender:    video.Owner,
			Type:      notificationdomain.TypeVideo,
			Content:   content,
		})
	}
}

func (u *videoUseCase) GetVideo(ctx context.Context, videoID string, viewer *token.Identity) (*domain.Details, error) {
	id, err := database.ParseID(videoID, "video id")
	if err != nil {
		return nil, err
	}
	details, err := u.repo.FindDetails(ctx, id)
	if err != nil {
		return nil, u.notFound(err, "Failed to load video")
	}

	viewerID := ""
	if viewer != nil {
		viewerID = viewer.UserID
	}
	if !details.VisibleTo(viewerID) {
		return nil, errprocess.NotFound("Video not found")
	}

	if err := u.repo.IncrementViews(ctx, id); err != nil {
		return nil, errprocess.Internal("Failed to update views", err)
	}
	details.Views++
	u.record(ctx, details.Owner.ID, analyticsdomain.Metric{Views: 1})

	if viewerID != "" && u.history != nil {
		if err := u.history.AddToWatchHistory(ctx, viewerID, id); err != nil {
			logger.Log.Warn("watch history", zap.String("user", viewerID), zap.Error(err))
		}
	}
	return details, nil
}

// owned load a video the caller owns, anything else reads as missing
func (u *videoUseCase) owned(ctx context.Context, callerID, videoID string) (*domain.Video, error) {
	id, err := database.ParseID(videoID, "video id")
	if err != nil {
		return nil, err
	}
	video, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, u.notFound(err, "Failed to load video")
	}
	if !video.IsOwnedBy(callerID) {
		return nil, errprocess.NotFound("Video not found")
	}
	return video, nil
}

func (u *videoUseCase) UpdateVideo(ctx context.Context, callerID, videoID string, in UpdateInput) (*domain.Video, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	video, err := u.owned(ctx, callerID, videoID)
	if err != nil {
		return nil, err
	}

	upd := domain.VideoUpdate{Category: trimmed(in.Category)}
	upd.Title = trimmed(in.Title)
	upd.Description = trimmed(in.Description)
	if in.Tags != nil {
		tags := domain.ParseTags(*in.Tags)
		upd.Tags = &tags
	}

	if in.ThumbnailPath != "" {
		// 舊縮圖先刪除再上傳新的
		u.discard(ctx, video.Thumbnail, media.ResourceImage)
		asset, err := u.store.Upload(ctx, in.ThumbnailPath, media.FolderThumbnails)
		if err != nil {
			return nil, errprocess.Internal("Failed to upload thumbnail", err)
		}
		upd.Thumbnail = &asset
	}
	if upd.IsEmpty() {
		return nil, errprocess.BadRequest("Nothing to update")
	}

	updated, err := u.repo.Update(ctx, video.ID, upd)
	if err != nil {
		return nil, u.notFound(err, "Failed to update video")
	}
	return updated, nil
}

func (u *videoUseCase) DeleteVideo(ctx context.Context, callerID, videoID string) error {
	video, err := u.owned(ctx, callerID, videoID)
	if err != nil {
		return err
	}

	u.discard(ctx, video.VideoFile, media.ResourceVideo)
	u.discard(ctx, video.Thumbnail, media.ResourceImage)

	if err := u.repo.Delete(ctx, video.ID); err != nil {
		return u.notFound(err, "Failed to delete video")
	}
	for _, c := range u.cleaners {
		if err := c.DeleteByVideo(ctx, video.ID); err != nil {
			logger.Log.Warn("delete video relations", zap.String("video", video.ID.Hex()), zap.Error(err))
		}
	}
	u.record(ctx, video.Owner, analyticsdomain.Metric{Videos: -1})
	return nil
}

func (u *videoUseCase) TogglePublish(ctx context.Context, callerID, videoID string) (*domain.Video, error) {
	video, err := u.owned(ctx, callerID, videoID)
	if err != nil {
		return nil, err
	}
	published := !video.IsPublished
	updated, err := u.repo.Update(ctx, video.ID, domain.VideoUpdate{IsPublished: &published})
	if err != nil {
		return nil, u.notFound(err, "Failed to update video")
	}
	return updated, nil
}

func (u *videoUseCase) ShareVideo(ctx context.Context, caller *token.Identity, videoID string) (*domain.Video, error) {
	id, err := database.ParseID(videoID, "video id")
	if err != nil {
		return nil, err
	}
	video, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, u.notFound(err, "Failed to load video")
	}
	if !video.VisibleTo(caller.UserID) {
		return nil, errprocess.NotFound("Video not found")
	}

	shared, err := u.repo.IncrementShares(ctx, id)
	if err != nil {
		return nil, u.notFound(err, "Failed to share video")
	}

	if u.notifier != nil {
		if senderID, err := primitive.ObjectIDFromHex(caller.UserID); err == nil {
			u.notifier.Notify(ctx, &notificationdomain.Notification{
				Recipient: shared.Owner,
				Sender:    senderID,
				Type:      notificationdomain.TypeShare,
				Content:   caller.UserName + " shared your video: " + shared.Title,
			})
		}
	}
	return shared, nil
}

func (u *videoUseCase) VideosByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Details, error) {
	return NewLookup(u.repo).VideosByIDs(ctx, ids)
}

func (u *videoUseCase) FindVideo(ctx context.Context, videoID primitive.ObjectID) (*domain.Video, error) {
	return NewLookup(u.repo).FindVideo(ctx, videoID)
}

func (u *videoUseCase) notFound(err error, msg string) error {
	return notFound(err, msg)
}

// discard best-effort asset removal
func (u *videoUseCase) discard(ctx context.Context, asset media.Asset, kind media.ResourceType) {
	if asset.PublicID == "" {
		return
	}
	if err := u.store.Delete(ctx, asset.PublicID, kind); err != nil {
		logger.Log.Warn("delete asset failed", zap.String("public_id", asset.PublicID), zap.Error(err))
	}
}

func (u *videoUseCase) record(ctx context.Context, channelID primitive.ObjectID, m analyticsdomain.Metric) {
	if u.activity != nil {
		u.activity.Record(ctx, channelID, m)
	}
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
