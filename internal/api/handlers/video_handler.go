package handlers

import (
	"strconv"

	"video_platform_service/internal/video/app"
	"video_platform_service/internal/video/domain"
	errprocess "video_platform_service/pkg/err"
	"video_platform_service/pkg/middlewares"
	"video_platform_service/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// VideoHandler 影片 HTTP 請求
type VideoHandler struct {
	videos  app.VideoUseCase
	uploads Uploads
}

// NewVideoHandler create VideoHandler
func NewVideoHandler(videos app.VideoUseCase, uploads Uploads) *VideoHandler {
	return &VideoHandler{videos: videos, uploads: uploads}
}

// ListVideos 影片列表
// @Summary List published videos
// @Tags Videos
// @Produce json
// @Param page query int false "page" default(1)
// @Param limit query int false "page size, at most 100" default(10)
// @Param query query string false "substring of title, description or tags"
// @Param sortBy query string false "createdAt, updatedAt, views, duration, title or shares"
// @Param sortOrder query string false "asc or desc" default(desc)
// @Param userId query string false "owner id"
// @Success 200 {object} response.Body
// @Failure 400 {object} errprocess.ErrorBody
// @Router /videos [get]
func (h *VideoHandler) ListVideos(c *fiber.Ctx) error {
	sortOrder := c.Query("sortOrder")
	if sortOrder == "" {
		sortOrder = c.Query("sortType")
	}
	page, err := h.videos.ListVideos(c.UserContext(), domain.ListQuery{
		Page:      c.Query("page"),
		Limit:     c.Query("limit"),
		Query:     c.Query("query"),
		SortBy:    c.Query("sortBy"),
		SortOrder: sortOrder,
		UserID:    c.Query("userId"),
	})
	if err != nil {
		return err
	}
	return response.OK(c, page, "Videos fetched successfully")
}

// PublishVideo 上傳影片
// @Summary Upload a video
// @Tags Videos
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "title"
// @Param description formData string true "description"
// @Param category formData string true "category"
// @Param tags formData string true "JSON array or comma separated"
// @Param duration formData number false "seconds"
// @Param isPublished formData bool false "default true"
// @Param videoFile formData file true "video"
// @Param thumbnail formData file true "thumbnail image"
// @Success 201 {object} response.Body
// @Failure 400 {object} errprocess.ErrorBody
// @Failure 500 {object} errprocess.ErrorBody
// @Router /videos [post]
func (h *VideoHandler) PublishVideo(c *fiber.Ctx) error {
	identity, err := middlewares.MustIdentity(c)
	if err != nil {
		return err
	}

	in := app.PublishInput{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Category:    c.FormValue("category"),
		Tags:        c.FormValue("tags"),
	}
	if raw := c.FormValue("duration"); raw != "" {
		if in.Duration, err = strconv.ParseFloat(raw, 64); err != nil {
			return errprocess.BadRequest("duration must be a number")
		}
	}
	if raw := c.FormValue("isPublished"); raw != "" {
		published, err := strconv.ParseBool(raw)
		if err != nil {
			return errprocess.BadRequest("isPublished must be a boolean")
		}
		in.IsPublished = &published
	}

	if in.VideoPath, err = h.uploads.Save(c, "videoFile"); err != nil {
		return err
	}
	defer h.uploads.Cleanup(in.VideoPath)
	if in.ThumbnailPath, err = h.uploads.Save(c, "thumbnail"); err != nil {
		return err
	}
	defer h.uploads.Cleanup(in.ThumbnailPath)

	video, err := h.videos.PublishVideo(c.UserContext(), identity, in)
	if err != nil {
		return err
	}
	return response.Created(c, video, "Video published successfully")
}

// GetVideo 取得影片，每次呼叫都會增加觀看數
// @Summary Get a video
// @Tags Videos
// @Produce json
// @Param videoId path string true "video id"
// @Success 200 {object} response.Body
// @Failure 404 {object} errprocess.ErrorBody
// @Router /videos/{videoId} [get]
func (h *VideoHandler) GetVideo(c *fiber.Ctx) error {
	viewer, _ := middlewares.CurrentIdentity(c)
	video, err := h.videos.GetVideo(c.UserContext(), c.Params("videoId"), viewer)
	if err != nil {
		return err
	}
	return response.OK(c, video, "Video fetched successfully")
}

// UpdateVideo 更新影片
// @Summary Update own video
// @Tags Videos
// @Accept multipart/form-data
// @Produce json
// @Param videoId path string true "video id"
// @Param title formData string false "title"
// @Param description formData string false "description"
// @Param category formData string false "category"
// @Param tags formData string false "JSON array or comma separated"
// @Param thumbnail formData file false "thumbnail image"
// @Success 200 {object} response.Body
// @Failure 404 {object} errprocess.ErrorBody
// @Router /videos/{videoId} [patch]
func (h *VideoHandler) UpdateVideo(c *fiber.Ctx) error {
	identity, err := middlewares.MustIdentity(c)
	if err != nil {
		return err
	}
	in := app.UpdateInput{
		Title:       formString(c, "title"),
		Description: formString(c, "description"),
		Category:    formString(c, "category"),
		Tags:        formString(c, "tags"),
	}
	if in.ThumbnailPath, err = h.uploads.Save(c, "thumbnail"); err != nil {
		return err
	}
	defer h.uploads.Cleanup(in.ThumbnailPath)

	video, err := h.videos.UpdateVideo(c.UserContext(), identity.UserID, c.Params("videoId"), in)
	if err != nil {
		return err
	}
	return response.OK(c, video, "Video updated successfully")
}

// DeleteVideo 刪除影片
// @Summary Delete own video
// @Tags Videos
// @Produce json
// @Param videoId path string true "video id"
// @Success 200 {object} response.Body
// @Failure 404 {object} errprocess.ErrorBody
// @Router /videos/{videoId} [delete]
func (h *VideoHandler) DeleteVideo(c *fiber.Ctx) error {
	identity, err := middlewares.MustIdentity(c)
	if err != nil {
		return err
	}
	if err := h.videos.DeleteVideo(c.UserContext(), identity.UserID, c.Params("videoId")); err != nil {
		return err
	}
	return deleted(c, "Video deleted successfully")
}

// TogglePublish 切換發佈狀態
// @Summary Toggle publish status
// @Tags Videos
// @Produce json
// @Param videoId path string true "video id"
// @Success 200 {object} response.Body
// @Failure 404 {object} errprocess.ErrorBody
// @Router /videos/toggle-publish/{videoId} [patch]
func (h *VideoHandler) TogglePublish(c *fiber.Ctx) error {
	identity, err := middlewares.MustIdentity(c)
	if err != nil {
		return err
	}
	video, err := h.videos.TogglePublish(c.UserContext(), identity.UserID, c.Params("videoId"))
	if err != nil {
		return err
	}
	return response.OK(c, video, "Publish status toggled successfully")
}

// ShareVideo 分享影片
// @Summary Share a video
// @Tags Videos
// @Produce json
// @Param videoId path string true "video id"
// @Success 200 {object} response.Body
// @Failure 404 {object} errprocess.ErrorBody
// @Router /videos/{videoId}/share [post]
func (h *VideoHandler) ShareVideo(c *fiber.Ctx) error {
	identity, err := middlewares.MustIdentity(c)
	if err != nil {
		return err
	}
	video, err := h.videos.ShareVideo(c.UserContext(), identity, c.Params("videoId"))
	if err != nil {
		return err
	}
	return response.OK(c, fiber.Map{"shares": video.Shares}, "Video shared successfully")
}
