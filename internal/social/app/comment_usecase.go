package app

import (
	"context"
	"errors"
	"strings"

	analyticsdomain "video_platform_service/internal/analytics/domain"
	notificationdomain "video_platform_service/internal/notification/domain"
	"video_platform_service/internal/social/domain"
	"video_platform_service/internal/social/repository"
	"video_platform_service/pkg/database"
	errprocess "video_platform_service/pkg/err"
	"video_platform_service/pkg/logger"
	"video_platform_service/pkg/pagination"
	"video_platform_service/pkg/token"
	"video_platform_service/pkg/validation"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// CreateCommentInput body of POST comment
type CreateCommentInput struct {
	Content       string `json:"content" validate:"notblank,max=2000"`
	ParentComment string `json:"parentComment"`
}

// UpdateCommentInput body of PATCH comment
type UpdateCommentInput struct {
	Content string `json:"content" validate:"notblank,max=2000"`
}

// CommentUseCase 留言服務
type CommentUseCase interface {
	List(ctx context.Context, videoID, parentID string, p pagination.Params) (*pagination.Page[domain.CommentView], error)
	Create(ctx context.Context, caller *token.Identity, videoID string, in CreateCommentInput) (*domain.Comment, error)
	Update(ctx context.Context, callerID, commentID string, in UpdateCommentInput) (*domain.Comment, error)
	Delete(ctx context.Context, callerID, commentID string) error
	DeleteByVideo(ctx context.Context, videoID primitive.ObjectID) error
}

type commentUseCase struct {
	repo     repository.CommentRepository
	likes    repository.LikeRepository
	videos   VideoLookup
	notifier Notifier
	activity ActivityRecorder
}

// NewCommentUseCase create CommentUseCase
func NewCommentUseCase(
	repo repository.CommentRepository,
	likes repository.LikeRepository,
	videos VideoLookup,
	notifier Notifier,
	activity ActivityRecorder,
) CommentUseCase {
	return &commentUseCase{repo: repo, likes: likes, videos: videos, notifier: notifier, activity: activity}
}

func (u *commentUseCase) List(ctx context.Context, videoID, parentID string, p pagination.Params) (*pagination.Page[domain.CommentView], error) {
	vid, err := database.ParseID(videoID, "video id")
	if err != nil {
		return nil, err
	}
	var parent *primitive.ObjectID
	if parentID = strings.TrimSpace(parentID); parentID != "" {
		pid, err := database.ParseID(parentID, "parent comment id")
		if err != nil {
			return nil, err
		}
		parent = &pid
	}

	p = p.Normalize()
	items, total, err := u.repo.List(ctx, vid, parent, p)
	if err != nil {
		return nil, errprocess.Internal("Failed to list comments", err)
	}
	page := pagination.New(items, total, p)
	return &page, nil
}

func (u *commentUseCase) Create(ctx context.Context, caller *token.Identity, videoID string, in CreateCommentInput) (*domain.Comment, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	vid, err := database.ParseID(videoID, "video id")
	if err != nil {
		return nil, err
	}
	owner, err := database.ParseID(caller.UserID, "user id")
	if err != nil {
		return nil, err
	}
	video, err := u.videos.FindVideo(ctx, vid)
	if err != nil {
		return nil, err
	}
	if !video.VisibleTo(caller.UserID) {
		return nil, errprocess.NotFound("Video not found")
	}

	comment := &domain.Comment{
		Content: strings.TrimSpace(in.Content),
		Video:   vid,
		Owner:   owner,
	}

	var parent *domain.Comment
	if in.ParentComment != "" {
		pid, err := database.ParseID(in.ParentComment, "parent comment id")
		if err != nil {
			return nil, err
		}
		parent, err = u.load(ctx, pid)
		if err != nil {
			return nil, err
		}
		if parent.Video != vid {
			return nil, errprocess.BadRequest("Parent comment belongs to another video")
		}
		comment.ParentComment = &pid
	}

	if err := u.repo.Create(ctx, comment); err != nil {
		return nil, errprocess.Internal("Failed to create comment", err)
	}

	record(ctx, u.activity, video.Owner, analyticsdomain.Metric{Comments: 1})
	if parent != nil {
		notify(ctx, u.notifier, &notificationdomain.Notification{
			Recipient: parent.Owner,
			Sender:    owner,
			Type:      notificationdomain.TypeReply,
			Content:   caller.UserName + " replied to your comment",
		})
	} else {
		notify(ctx, u.notifier, &notificationdomain.Notification{
			Recipient: video.Owner,
			Sender:    owner,
			Type:      notificationdomain.TypeComment,
			Content:   caller.UserName + " commented on your video: " + video.Title,
		})
	}
	return comment, nil
}

func (u *commentUseCase) load(ctx context.Context, id primitive.ObjectID) (*domain.Comment, error) {
	c, err := u.repo.FindByID(ctx, id)
	if errors.Is(err, domain.ErrCommentNotFound) {
		return nil, errprocess.NotFound("Comment not found")
	}
	if err != nil {
		return nil, errprocess.Internal("Failed to load comment", err)
	}
	return c, nil
}

func (u *commentUseCase) owned(ctx context.Context, callerID, commentID string) (*domain.Comment, error) {
	id, err := database.ParseID(commentID, "comment id")
	if err != nil {
		return nil, err
	}
	c, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !c.IsOwnedBy(callerID) {
		return nil, errprocess.NotFound("Comment not found")
	}
	return c, nil
}

func (u *commentUseCase) Update(ctx context.Context, callerID, commentID string, in UpdateCommentInput) (*domain.Comment, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	c, err := u.owned(ctx, callerID, commentID)
	if err != nil {
		return nil, err
	}
	updated, err := u.repo.UpdateContent(ctx, c.ID, strings.TrimSpace(in.Content))
	if errors.Is(err, domain.ErrCommentNotFound) {
		return nil, errprocess.NotFound("Comment not found")
	}
	if err != nil {
		return nil, errprocess.Internal("Failed to update comment", err)
	}
	return updated, nil
}

// Delete the comment goes together with its replies and their likes
func (u *commentUseCase) Delete(ctx context.Context, callerID, commentID string) error {
	c, err := u.owned(ctx, callerID, commentID)
	if err != nil {
		return err
	}
	removed, err := u.repo.DeleteThread(ctx, c.ID)
	if errors.Is(err, domain.ErrCommentNotFound) {
		return errprocess.NotFound("Comment not found")
	}
	if err != nil {
		return errprocess.Internal("Failed to delete comment", err)
	}
	u.dropLikes(ctx, removed)

	if video, err := u.videos.FindVideo(ctx, c.Video); err == nil {
		record(ctx, u.activity, video.Owner, analyticsdomain.Metric{Comments: -int64(len(removed))})
	}
	return nil
}

func (u *commentUseCase) DeleteByVideo(ctx context.Context, videoID primitive.ObjectID) error {
	removed, err := u.repo.DeleteByVideo(ctx, videoID)
	if err != nil {
		return err
	}
	u.dropLikes(ctx, removed)
	return nil
}

func (u *commentUseCase) dropLikes(ctx context.Context, comments []primitive.ObjectID) {
	if err := u.likes.DeleteByComments(ctx, comments); err != nil {
		logger.Log.Warn("delete comment likes", zap.Int("comments", len(comments)), zap.Error(err))
	}
}
