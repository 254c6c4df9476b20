package handlers

import (
	"encoding/json"
	"strconv"
	"strings"

	analyticsapp "video_platform_service/internal/analytics/app"
	"video_platform_service/internal/user/app"
	"video_platform_service/internal/user/domain"
	videodomain "video_platform_service/internal/video/domain"
	errprocess "video_platform_service/pkg/err"
	"video_platform_service/pkg/middlewares"
	"video_platform_service/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ChannelHandler 頻道頁面
type ChannelHandler struct {
	users     app.UserUseCase
	analytics analyticsapp.AnalyticsUseCase
	uploads   Uploads
}

// NewChannelHandler create ChannelHandler
func NewChannelHandler(users app.UserUseCase, analytics analyticsapp.AnalyticsUseCase, uploads Uploads) *ChannelHandler {
	return &ChannelHandler{users: users, analytics: analytics, uploads: uploads}
}

// GetChannel 頻道公開資料
// @Summary Public channel profile
// @Tags Channels
// @Produce json
// @Param username path string true "channel userName"
// @Success 200 {object} response.Body
// @Failure 404 {object} errprocess.ErrorBody
// @Router /channels/{username} [get]
func (h *ChannelHandler) GetChannel(c *fiber.Ctx) error {
	viewer, _ := middlewares.CurrentIdentity(c)
	profile, err := h.users.ChannelProfile(c.UserContext(), c.Params("username"), viewer)
	if err != nil {
		return err
	}
	return response.OK(c, profile, "Channel fetched successfully")
}

// channelInput json body, or multipart fields with tags and links sent as strings
func channelInput(c *fiber.Ctx) (app.UpdateChannelInput, error) {
	var in app.UpdateChannelInput
	if !strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		return in, parseBody(c, &in)
	}

	in.ChannelDescription = formString(c, "channelDescription")
	if raw := formString(c, "channelTags"); raw != nil {
		tags := videodomain.ParseTags(*raw)
		in.ChannelTags = &tags
	}
	if raw := formString(c, "socialLinks"); raw != nil && strings.TrimSpace(*raw) != "" {
		var links domain.SocialLinks
		if err := json.Unmarshal([]byte(*raw), &links); err != nil {
			return in, errprocess.BadRequest("Invalid socialLinks", err.Error())
		}
		in.SocialLinks = &links
	}
	return in, nil
}

// UpdateChannel 更新頻道
// @Summary Update own channel
// @Tags Channels
// @Accept json,multipart/form-data
// @Produce json
// @Param username path string true "channel userName"
// @Param coverImage formData file false "Cover image"
// @Success 200 {object} response.Body
// @Failure 404 {object} errprocess.ErrorBody
// @Router /channels/{username} [patch]
func (h *ChannelHandler) UpdateChannel(c *fiber.Ctx) error {
	identity, err := middlewares.MustIdentity(c)
	if err != nil {
		return err
	}
	in, err := channelInput(c)
	if err != nil {
		return err
	}
	cover, err := h.uploads.Save(c, "coverImage")
	if err != nil {
		return err
	}
	defer h.uploads.Cleanup(cover)
	in.CoverImagePath = cover

	user, err := h.users.UpdateChannel(c.UserContext(), identity, c.Params("username"), in)
	if err != nil {
		return err
	}
	return response.OK(c, user.ChannelProfile(), "Channel updated successfully")
}

// UpdateNotificationSettings 通知設定
// @Summary Update notification settings
// @Tags Channels
// @Accept json
// @Produce json
// @Param request body domain.NotificationSettingsPatch true "settings"
// @Success 200 {object} response.Body
// @Failure 400 {object} errprocess.ErrorBody
// @Router /channels/notifications [patch]
func (h *ChannelHandler) UpdateNotificationSettings(c *fiber.Ctx) error {
	identity, err := middlewares.MustIdentity(c)
	if err != nil {
		return err
	}
	var patch domain.NotificationSettingsPatch
	if err := parseBody(c, &patch); err != nil {
		return err
	}
	settings, err := h.users.UpdateNotificationSettings(c.UserContext(), identity.UserID, patch)
	if err != nil {
		return err
	}
	return response.OK(c, settings, "Notification settings updated successfully")
}

// Analytics 頻道數據，只有頻道擁有者可看
// @Summary Channel analytics
// @Tags Channels
// @Produce json
// @Param username path string true "channel userName"
// @Param days query int false "days of daily stats" default(30)
// @Success 200 {object} response.Body
// @Failure 404 {object} errprocess.ErrorBody
// @Router /channels/{username}/analytics [get]
func (h *ChannelHandler) Analytics(c *fiber.Ctx) error {
	identity, err := middlewares.MustIdentity(c)
	if err != nil {
		return err
	}
	user, err := h.users.FindByUserName(c.UserContext(), c.Params("username"))
	if err != nil {
		return err
	}
	if user.ID.Hex() != identity.UserID {
		return errprocess.NotFound("Channel does not exist")
	}

	days, _ := strconv.Atoi(c.Query("days"))
	stats, err := h.analytics.Get(c.UserContext(), user.ID, days)
	if err != nil {
		return err
	}
	return response.OK(c, stats, "Channel analytics fetched successfully")
}
