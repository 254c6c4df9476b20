package app

import (
	"context"
	"errors"
	"strings"

	"video_platform_service/internal/social/domain"
	"video_platform_service/internal/social/repository"
	"video_platform_service/pkg/database"
	errprocess "video_platform_service/pkg/err"
	"video_platform_service/pkg/pagination"
	"video_platform_service/pkg/token"
	"video_platform_service/pkg/validation"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreatePlaylistInput body of POST playlist, isPublic defaults to true
type CreatePlaylistInput struct {
	Name        string `json:"name" validate:"notblank,max=150"`
	Description string `json:"description" validate:"max=1000"`
	IsPublic    *bool  `json:"isPublic"`
}

// UpdatePlaylistInput body of PATCH playlist
type UpdatePlaylistInput struct {
	Name        *string `json:"name" validate:"omitempty,notblank,max=150"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	IsPublic    *bool   `json:"isPublic"`
}

// PlaylistUseCase 播放清單服務
type PlaylistUseCase interface {
	Create(ctx context.Context, callerID string, in CreatePlaylistInput) (*domain.Playlist, error)
	Get(ctx context.Context, playlistID string, viewer *token.Identity) (*domain.PlaylistDetails, error)
	ListByUser(ctx context.Context, userID string, viewer *token.Identity, p pagination.Params) (*pagination.Page[domain.Playlist], error)
	Update(ctx context.Context, callerID, playlistID string, in UpdatePlaylistInput) (*domain.Playlist, error)
	Delete(ctx context.Context, callerID, playlistID string) error
	AddVideo(ctx context.Context, callerID, videoID, playlistID string) (*domain.Playlist, error)
	RemoveVideo(ctx context.Context, callerID, videoID, playlistID string) (*domain.Playlist, error)
	DeleteByVideo(ctx context.Context, videoID primitive.ObjectID) error
}

type playlistUseCase struct {
	repo   repository.PlaylistRepository
	videos VideoLookup
}

// NewPlaylistUseCase create PlaylistUseCase
func NewPlaylistUseCase(repo repository.PlaylistRepository, videos VideoLookup) PlaylistUseCase {
	return &playlistUseCase{repo: repo, videos: videos}
}

func (u *playlistUseCase) Create(ctx context.Context, callerID string, in CreatePlaylistInput) (*domain.Playlist, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	owner, err := database.ParseID(callerID, "user id")
	if err != nil {
		return nil, err
	}
	p := &domain.Playlist{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Owner:       owner,
		IsPublic:    true,
	}
	if in.IsPublic != nil {
		p.IsPublic = *in.IsPublic
	}
	if err := u.repo.Create(ctx, p); err != nil {
		return nil, errprocess.Internal("Failed to create playlist", err)
	}
	return p, nil
}

func (u *playlistUseCase) load(ctx context.Context, playlistID string) (*domain.Playlist, error) {
	id, err := database.ParseID(playlistID, "playlist id")
	if err != nil {
		return nil, err
	}
	p, err := u.repo.FindByID(ctx, id)
	if errors.Is(err, domain.ErrPlaylistNotFound) {
		return nil, errprocess.NotFound("Playlist not found")
	}
	if err != nil {
		return nil, errprocess.Internal("Failed to load playlist", err)
	}
	return p, nil
}

func (u *playlistUseCase) owned(ctx context.Context, callerID, playlistID string) (*domain.Playlist, error) {
	p, err := u.load(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if !p.IsOwnedBy(callerID) {
		return nil, errprocess.NotFound("Playlist not found")
	}
	return p, nil
}

func (u *playlistUseCase) Get(ctx context.Context, playlistID string, viewer *token.Identity) (*domain.PlaylistDetails, error) {
	p, err := u.load(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	vid := viewerID(viewer)
	if !p.VisibleTo(vid) {
		return nil, errprocess.NotFound("Playlist not found")
	}
	videos, err := u.videos.VideosByIDs(ctx, p.Videos)
	if err != nil {
		return nil, err
	}
	return p.WithVideos(videos, vid), nil
}

// ListByUser private playlists are listed for their owner only
func (u *playlistUseCase) ListByUser(ctx context.Context, userID string, viewer *token.Identity, p pagination.Params) (*pagination.Page[domain.Playlist], error) {
	owner, err := database.ParseID(userID, "user id")
	if err != nil {
		return nil, err
	}
	p = p.Normalize()
	publicOnly := viewerID(viewer) != owner.Hex()
	items, total, err := u.repo.ListByOwner(ctx, owner, publicOnly, p)
	if err != nil {
		return nil, errprocess.Internal("Failed to list playlists", err)
	}
	page := pagination.New(items, total, p)
	return &page, nil
}

func (u *playlistUseCase) Update(ctx context.Context, callerID, playlistID string, in UpdatePlaylistInput) (*domain.Playlist, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	p, err := u.owned(ctx, callerID, playlistID)
	if err != nil {
		return nil, err
	}

	upd := domain.PlaylistUpdate{IsPublic: in.IsPublic}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		upd.Name = &name
	}
	if in.Description != nil {
		desc := strings.TrimSpace(*in.Description)
		upd.Description = &desc
	}
	if upd.IsEmpty() {
		return nil, errprocess.BadRequest("Nothing to update")
	}
	return u.apply(u.repo.Update(ctx, p.ID, upd))
}

func (u *playlistUseCase) Delete(ctx context.Context, callerID, playlistID string) error {
	p, err := u.owned(ctx, callerID, playlistID)
	if err != nil {
		return err
	}
	_, err = u.apply(nil, u.repo.Delete(ctx, p.ID))
	return err
}

func (u *playlistUseCase) AddVideo(ctx context.Context, callerID, videoID, playlistID string) (*domain.Playlist, error) {
	vid, err := database.ParseID(videoID, "video id")
	if err != nil {
		return nil, err
	}
	p, err := u.owned(ctx, callerID, playlistID)
	if err != nil {
		return nil, err
	}
	video, err := u.videos.FindVideo(ctx, vid)
	if err != nil {
		return nil, err
	}
	if !video.VisibleTo(callerID) {
		return nil, errprocess.NotFound("Video not found")
	}
	if p.Contains(vid) {
		return nil, errprocess.Conflict("Video already in playlist")
	}
	return u.apply(u.repo.AddVideo(ctx, p.ID, vid))
}

func (u *playlistUseCase) RemoveVideo(ctx context.Context, callerID, videoID, playlistID string) (*domain.Playlist, error) {
	vid, err := database.ParseID(videoID, "video id")
	if err != nil {
		return nil, err
	}
	p, err := u.owned(ctx, callerID, playlistID)
	if err != nil {
		return nil, err
	}
	if !p.Contains(vid) {
		return nil, errprocess.NotFound("Video not in playlist")
	}
	return u.apply(u.repo.RemoveVideo(ctx, p.ID, vid))
}

func (u *playlistUseCase) DeleteByVideo(ctx context.Context, videoID primitive.ObjectID) error {
	return u.repo.PullVideo(ctx, videoID)
}

func (u *playlistUseCase) apply(p *domain.Playlist, err error) (*domain.Playlist, error) {
	if errors.Is(err, domain.ErrPlaylistNotFound) {
		return nil, errprocess.NotFound("Playlist not found")
	}
	if err != nil {
		return nil, errprocess.Internal("Failed to update playlist", err)
	}
	return p, nil
}
