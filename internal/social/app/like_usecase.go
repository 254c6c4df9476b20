package app

import (
	"context"
	"errors"

	analyticsdomain "video_platform_service/internal/analytics/domain"
	"video_platform_service/internal/social/domain"
	"video_platform_service/internal/social/repository"
	videodomain "video_platform_service/internal/video/domain"
	"video_platform_service/pkg/database"
	errprocess "video_platform_service/pkg/err"
	"video_platform_service/pkg/pagination"
	"video_platform_service/pkg/token"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LikeUseCase 按讚服務
type LikeUseCase interface {
	ToggleVideoLike(ctx context.Context, caller *token.Identity, videoID string) (*domain.ToggleResult, error)
	ToggleCommentLike(ctx context.Context, caller *token.Identity, commentID string) (*domain.ToggleResult, error)
	LikedVideos(ctx context.Context, caller *token.Identity, p pagination.Params) (*pagination.Page[videodomain.Details], error)
	DeleteByVideo(ctx context.Context, videoID primitive.ObjectID) error
}

type likeUseCase struct {
	repo     repository.LikeRepository
	comments repository.CommentRepository
	videos   VideoLookup
	activity ActivityRecorder
}

// NewLikeUseCase create LikeUseCase
func NewLikeUseCase(repo repository.LikeRepository, comments repository.CommentRepository, videos VideoLookup, activity ActivityRecorder) LikeUseCase {
	return &likeUseCase{repo: repo, comments: comments, videos: videos, activity: activity}
}

// toggle remove the like when present, otherwise add it
func (u *likeUseCase) toggle(ctx context.Context, like *domain.Like) (bool, error) {
	if err := like.Validate(); err != nil {
		return false, errprocess.BadRequest(err.Error())
	}
	removed, err := u.repo.Remove(ctx, like)
	if err != nil {
		return false, errprocess.Internal("Failed to toggle like", err)
	}
	if removed {
		return false, nil
	}
	if err := u.repo.Create(ctx, like); err != nil && !errors.Is(err, repository.ErrDuplicate) {
		return false, errprocess.Internal("Failed to toggle like", err)
	}
	return true, nil
}

func (u *likeUseCase) ToggleVideoLike(ctx context.Context, caller *token.Identity, videoID string) (*domain.ToggleResult, error) {
	vid, err := database.ParseID(videoID, "video id")
	if err != nil {
		return nil, err
	}
	user, err := database.ParseID(caller.UserID, "user id")
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

	liked, err := u.toggle(ctx, domain.VideoLike(user, vid))
	if err != nil {
		return nil, err
	}
	delta := int64(1)
	if !liked {
		delta = -1
	}
	record(ctx, u.activity, video.Owner, analyticsdomain.Metric{Likes: delta})
	return &domain.ToggleResult{Liked: liked}, nil
}

func (u *likeUseCase) ToggleCommentLike(ctx context.Context, caller *token.Identity, commentID string) (*domain.ToggleResult, error) {
	cid, err := database.ParseID(commentID, "comment id")
	if err != nil {
		return nil, err
	}
	user, err := database.ParseID(caller.UserID, "user id")
	if err != nil {
		return nil, err
	}
	if _, err := u.comments.FindByID(ctx, cid); err != nil {
		if errors.Is(err, domain.ErrCommentNotFound) {
			return nil, errprocess.NotFound("Comment not found")
		}
		return nil, errprocess.Internal("Failed to load comment", err)
	}

	liked, err := u.toggle(ctx, domain.CommentLike(user, cid))
	if err != nil {
		return nil, err
	}
	return &domain.ToggleResult{Liked: liked}, nil
}

// LikedVideos newest like first, videos no longer visible are left out of items
func (u *likeUseCase) LikedVideos(ctx context.Context, caller *token.Identity, p pagination.Params) (*pagination.Page[videodomain.Details], error) {
	user, err := database.ParseID(caller.UserID, "user id")
	if err != nil {
		return nil, err
	}
	p = p.Normalize()
	ids, total, err := u.repo.LikedVideoIDs(ctx, user, p)
	if err != nil {
		return nil, errprocess.Internal("Failed to list liked videos", err)
	}
	videos, err := u.videos.VideosByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]videodomain.Details, 0, len(videos))
	for i := range videos {
		if videos[i].VisibleTo(caller.UserID) {
			items = append(items, videos[i])
		}
	}
	page := pagination.New(items, total, p)
	return &page, nil
}

func (u *likeUseCase) DeleteByVideo(ctx context.Context, videoID primitive.ObjectID) error {
	return u.repo.DeleteByVideo(ctx, videoID)
}
