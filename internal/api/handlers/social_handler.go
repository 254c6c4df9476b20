package handlers

import (
	"video_platform_service/internal/social/app"
	"video_platform_service/pkg/middlewares"
	"video_platform_service/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// SocialHandler subscriptions, likes, comments and playlists
type SocialHandler struct {
	subscriptions app.SubscriptionUseCase
	likes         app.LikeUseCase
	comments      app.CommentUseCase
	playlists     app.PlaylistUseCase
}

// NewSocialHandler create SocialHandler
func NewSocialHandler(
	subscriptions app.SubscriptionUseCase,
	likes app.LikeUseCase,
	comments app.CommentUseCase,
	playlists app.PlaylistUseCase,
) *SocialHandler {
	return &SocialHandler{subscriptions: subscriptions, likes: likes, comments: comments, playlists: playlists}
}

// ToggleSubscription 訂閱 / 取消訂閱
// @Summary Toggle subscription to a channel
// @Tags Subscriptions
// @Produce json
// @Param channelId path string true "channel id"
// @Success 200 {object} response.Body
// @Failure 400 {object} errprocess.ErrorBody
// @Failure 404 {object} errprocess.ErrorBody
// @Router /subscriptions/c/{channelId} [post]
func (h *SocialHandler) ToggleSubscription(c *fiber.Ctx) error {
	identity, err := middlewares.MustIdentity(c)
	if err != nil {
		return err
	}
	state, err := h.subscriptions.Toggle(c.UserContext(), identity, c.Params("channelId"))
	if err != nil {
		return err
	}
	msg := "Unsubscribed successfully"
	if state.Subscribed {
		msg = "Subscribed successfully"
	}
	return response.OK(c, state, msg)
}

// ChannelSubscribers 頻道訂閱者
// @Summary Subscribers of a channel
// @Tags Subscriptions
// @Produce json
// @Param channelId path string true "channel id"
// @Param page query int false "page"
// @Param limit query int false "page size"
// @Success 200 {object} response.Body
// @Router /subscriptions/c/{channelId}/subscribers [get]
func (h *SocialHandler) ChannelSubscribers(c *fiber.Ctx) error {
	page, err := h.subscriptions.Subscribers(c.UserContext(), c.Params("channelId"), pageParams(c))
	if err != nil {
		return err
	}
	return response.OK(c, page, "Subscribers fetched successfully")
}

// SubscribedChannels 我訂閱的頻道
// @Summary Channels the current user subscribed to
// @Tags Subscriptions
// @Produce json
// @Param page query int false "page"
// @Param limit query int false "page size"
// @Success 200 {object} response.Body
// @Router /subscriptions/u/subscribed [get]
func (h *SocialHandler) SubscribedChannels(c *fiber.Ctx) error {
	identity, err := middlewares.MustIdentity(c)
	if err != nil {
		return err
	}
	page, err := h.subscriptions.Subscribed(c.UserContext(), identity.UserID, pageParams(c))
	if err != nil {
		return err
	}
	return response.OK(c, page, "Subscribed channels fetched successfully")
}

// ToggleVideoLike 影片按讚
// @Summary Toggle like on a video
// @Tags Likes
// @Produce json
// @Param videoId path string true "video id"
// @Success 200 {object} response.Body
// @Failure 404 {object} errprocess.ErrorBody
// @Router /likes/toggle/v/{videoId} [post]
func (h *SocialHandler) ToggleVideoLike(c *fiber.Ctx) error {
	identity, err := middlewares.MustIdentity(c)
	if err != nil {
		return err
	}
	res, err := h.likes.ToggleVideoLike(c.UserContext(), identity, c.Params("videoId"))
	if err != nil {
		return err
	}
	return response.OK(c, res, "Video like toggled")
}

// ToggleCommentLike 留言按讚
// @Summary Toggle like on a comment
// @Tags Likes
// @Produce json
// @Param commentId path string true "comment id"
// @Success 200 {object} response.Body
// @Failure 404 {object} errprocess.ErrorBody
// @Router /likes/toggle/c/{commentId} [post]
func (h *SocialHandler) ToggleCommentLike(c *fiber.Ctx) error {
	identity, err := middlewares.MustIdentity(c)
	if err != nil {
		return err
	}
	res, err := h.likes.ToggleCommentLike(c.UserContext(), identity, c.Params("commentId"))
	if err != nil {
		return err
	}
	return response.OK(c, res, "Comment like toggled")
}

// LikedVideos 我按讚的影片
// @Summary Videos liked by the current user
// @Tags Likes
// @Produce json
// @Param page query int false "page"
// @Param limit query int false "page size"
// @Success 200 {object} response.Body
// @Router /likes/videos [get]
func (h *SocialHandler) LikedVideos(c *fiber.Ctx) error {
	identity, err := middlewares.MustIdentity(c)
	if err != nil {
		return err
	}
	page, err := h.likes.LikedVideos(c.UserContext(), identity, pageParams(c))
	if err != nil {
		return err
	}
	return response.OK(c, page, "Liked videos fetched successfully")
}

// ListComments 影片留言
// @Summary Comments of a video, or replies of parentId
// @Tags Comments
// @Produce json
// @Param videoId path string true "video id"
// @Param parentId query string false "parent comment id"
// @Param page query int false "page"
// @Param limit query int false "page size"
// @Success 200 {object} response.Body
// @Router /comments/{videoId} [get]
func (h *SocialHandler) ListComments(c *fiber.Ctx) error {
	page, err := h.comments.List(c.UserContext(), c.Params("videoId"), c.Query("parentId"), pageParams(c))
	if err != nil {
		return err
	}
	return response.OK(c, page, "Comments fetched successfully")
}

// AddComment 新增留言
// @Summary Comment on a video
// @Tags Comments
// @Accept json
// @Produce json
// @Param videoId path string true "video id"
// @Param request body app.CreateCommentInput true "comment"
// @Success 201 {object} response.Body
// @Failure 400 {object} errprocess.ErrorBody
// @Router /comments/{videoId} [post]
func (h *SocialHandler) AddComment(c *fiber.Ctx) error {
	identity, err := middlewares.MustIdentity(c)
	if err != nil {
		return err
	}
	var in app.CreateCommentInput
	if err := parseBody(c, &in); err != nil {
		return err
	}
	comment, err := h.comments.Create(c.UserContext(), identity, c.Params("videoId"), in)
	if err != nil {
		return err
	}
	return response.Created(c, comment, "Comment added successfully")
}

// UpdateComment 修改留言
// @Summary Edit own comment
// @Tags Comments
// @Accept json
// @Produce json
// @Param commentId path string true "comment id"
// @Param request body app.UpdateCommentInput true "comment"
// @Success 200 {object} response.Body
// @Failure 404 {object} errprocess.ErrorBody
// @Router /comments/c/{commentId} [patch]
func (h *SocialHandler) UpdateComment(c *fiber.Ctx) error {
	identity, err := middlewares.MustIdentity(c)
	if err != nil {
		return err
	}
	var in app.UpdateCommentInput
	if err := parseBody(c, &in); err != nil {
		return err
	}
	comment, err := h.comments.Update(c.UserContext(), identity.UserID, c.Params("commentId"), in)
	if err != nil {
		return err
	}
	return response.OK(c, comment, "Comment updated successfully")
}

// DeleteComment 刪除留言
// @Summary Delete own comment and its replies
// @Tags Comments
// @Produce json
// @Param commentId path string true "comment id"
// @Success 200 {object} response.Body
// @Failure 404 {object} errprocess.ErrorBody
// @Router /comments/c/{commentId} [delete]
func (h *SocialHandler) DeleteComment(c *fiber.Ctx) error {
	identity, err := middlewares.MustIdentity(c)
	if err != nil {
		return err
	}
	if err := h.comments.Delete(c.UserContext(), identity.UserID, c.Params("commentId")); err != nil {
		return err
	}
	return deleted(c, "Comment deleted successfully")
}

// CreatePlaylist 建立播放清單
// @Summary Create a playlist
// @Tags Playlists
// @Accept json
// @Produce json
// @Param request body app.CreatePlaylistInput true "playlist"
// @Success 201 {object} response.Body
// @Router /playlists [post]
func (h *SocialHandler) CreatePlaylist(c *fiber.Ctx) error {
	identity, err := middlewares.MustIdentity(c)
	if err != nil {
		return err
	}
	var in app.CreatePlaylistInput
	if err := parseBody(c, &in); err != nil {
		return err
	}
	p, err := h.playlists.Create(c.UserContext(), identity.UserID, in)
	if err != nil {
		return err
	}
	return response.Created(c, p, "Playlist created successfully")
}

// GetPlaylist 播放清單內容
// @Summary Get a playlist with its videos
// @Tags Playlists
// @Produce json
// @Param playlistId path string true "playlist id"
// @Success 200 {object} response.Body
// @Failure 404 {object} errprocess.ErrorBody
// @Router /playlists/{playlistId} [get]
func (h *SocialHandler) GetPlaylist(c *fiber.Ctx) error {
	viewer, _ := middlewares.CurrentIdentity(c)
	p, err := h.playlists.Get(c.UserContext(), c.Params("playlistId"), viewer)
	if err != nil {
		return err
	}
	return response.OK(c, p, "Playlist fetched successfully")
}

// UserPlaylists 使用者的播放清單
// @Summary Playlists of a user
// @Tags Playlists
// @Produce json
// @Param userId path string true "user id"
// @Param page query int false "page"
// @Param limit query int false "page size"
// @Success 200 {object} response.Body
// @Router /playlists/user/{userId} [get]
func (h *SocialHandler) UserPlaylists(c *fiber.Ctx) error {
	viewer, _ := middlewares.CurrentIdentity(c)
	page, err := h.playlists.ListByUser(c.UserContext(), c.Params("userId"), viewer, pageParams(c))
	if err != nil {
		return err
	}
	return response.OK(c, page, "Playlists fetched successfully")
}

// UpdatePlaylist 修改播放清單
// @Summary Update own playlist
// @Tags Playlists
// @Accept json
// @Produce json
// @Param playlistId path string true "playlist id"
// @Param request body app.UpdatePlaylistInput true "fields"
// @Success 200 {object} response.Body
// @Failure 404 {object} errprocess.ErrorBody
// @Router /playlists/{playlistId} [patch]
func (h *SocialHandler) UpdatePlaylist(c *fiber.Ctx) error {
	identity, err := middlewares.MustIdentity(c)
	if err != nil {
		return err
	}
	var in app.UpdatePlaylistInput
	if err := parseBody(c, &in); err != nil {
		return err
	}
	p, err := h.playlists.Update(c.UserContext(), identity.UserID, c.Params("playlistId"), in)
	if err != nil {
		return err
	}
	return response.OK(c, p, "Playlist updated successfully")
}

// DeletePlaylist 刪除播放清單
// @Summary Delete own playlist
// @Tags Playlists
// @Produce json
// @Param playlistId path string true "playlist id"
// @Success 200 {object} response.Body
// @Failure 404 {object} errprocess.ErrorBody
// @Router /playlists/{playlistId} [delete]
func (h *SocialHandler) DeletePlaylist(c *fiber.Ctx) error {
	identity, err := middlewares.MustIdentity(c)
	if err != nil {
		return err
	}
	if err := h.playlists.Delete(c.UserContext(), identity.UserID, c.Params("playlistId")); err != nil {
		return err
	}
	return deleted(c, "Playlist deleted successfully")
}

// AddVideoToPlaylist 加入影片
// @Summary Add a video to own playlist
// @Tags Playlists
// @Produce json
// @Param videoId path string true "video id"
// @Param playlistId path string true "playlist id"
// @Success 200 {object} response.Body
// @Failure 409 {object} errprocess.ErrorBody
// @Router /playlists/add/{videoId}/{playlistId} [patch]
func (h *SocialHandler) AddVideoToPlaylist(c *fiber.Ctx) error {
	identity, err := middlewares.MustIdentity(c)
	if err != nil {
		return err
	}
	p, err := h.playlists.AddVideo(c.UserContext(), identity.UserID, c.Params("videoId"), c.Params("playlistId"))
	if err != nil {
		return err
	}
	return response.OK(c, p, "Video added to playlist")
}

// RemoveVideoFromPlaylist 移除影片
// @Summary Remove a video from own playlist
// @Tags Playlists
// @Produce json
// @Param videoId path string true "video id"
// @Param playlistId path string true "playlist id"
// @Success 200 {object} response.Body
// @Failure 404 {object} errprocess.ErrorBody
// @Router /playlists/remove/{videoId}/{playlistId} [patch]
func (h *SocialHandler) RemoveVideoFromPlaylist(c *fiber.Ctx) error {
	identity, err := middlewares.MustIdentity(c)
	if err != nil {
		return err
	}
	p, err := h.playlists.RemoveVideo(c.UserContext(), identity.UserID, c.Params("videoId"), c.Params("playlistId"))
	if err != nil {
		return err
	}
	return response.OK(c, p, "Video removed from playlist")
}
