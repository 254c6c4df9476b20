package app

import (
	"context"
	"errors"

	"video_platform_service/internal/video/domain"
	"video_platform_service/internal/video/repository"
	errprocess "video_platform_service/pkg/err"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lookup read-only video access for likes, comments and playlists.
// It only needs the repository so it can be built before VideoUseCase,
// whose delete cascade depends on those same use cases.
type Lookup struct {
	repo repository.VideoRepository
}

// NewLookup create Lookup
func NewLookup(repo repository.VideoRepository) *Lookup {
	return &Lookup{repo: repo}
}

// FindVideo 404 when missing
func (l *Lookup) FindVideo(ctx context.Context, videoID primitive.ObjectID) (*domain.Video, error) {
	video, err := l.repo.FindByID(ctx, videoID)
	if err != nil {
		return nil, notFound(err, "Failed to load video")
	}
	return video, nil
}

// VideosByIDs owner-joined videos in the order of ids, missing ones skipped
func (l *Lookup) VideosByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Details, error) {
	out, err := l.repo.FindDetailsByIDs(ctx, ids)
	if err != nil {
		return nil, errprocess.Internal("Failed to load videos", err)
	}
	return out, nil
}

func notFound(err error, msg string) error {
	if errors.Is(err, domain.ErrVideoNotFound) {
		return errprocess.NotFound("Video not found")
	}
	return errprocess.Internal(msg, err)
}
