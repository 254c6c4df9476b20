package handlers

import (
	"strconv"
	"strings"

	"video_platform_service/internal/notification/app"
	"video_platform_service/internal/notification/domain"
	errprocess "video_platform_service/pkg/err"
	"video_platform_service/pkg/middlewares"
	"video_platform_service/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// NotificationHandler 通知 HTTP 請求
type NotificationHandler struct {
	notifications app.NotificationUseCase
}

// NewNotificationHandler create NotificationHandler
func NewNotificationHandler(notifications app.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

func notificationFilter(c *fiber.Ctx) (domain.Filter, error) {
	var f domain.Filter
	if raw := c.Query("isRead"); raw != "" {
		isRead, err := strconv.ParseBool(raw)
		if err != nil {
			return f, errprocess.BadRequest("isRead must be a boolean")
		}
		f.IsRead = &isRead
	}
	if raw := c.Query("type"); raw != "" {
		f.Type = domain.Type(strings.ToUpper(raw))
		if !f.Type.Valid() {
			return f, errprocess.BadRequest("Invalid notification type")
		}
	}
	return f, nil
}

// List 通知列表
// @Summary Notifications of the current user, newest first
// @Tags Notifications
// @Produce json
// @Param page query int false "page"
// @Param limit query int false "page size"
// @Param isRead query bool false "read state"
// @Param type query string false "SUBSCRIPTION, COMMENT, REPLY, SHARE or VIDEO"
// @Success 200 {object} response.Body
// @Router /notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	identity, err := middlewares.MustIdentity(c)
	if err != nil {
		return err
	}
	f, err := notificationFilter(c)
	if err != nil {
		return err
	}
	res, err := h.notifications.List(c.UserContext(), identity.UserID, f, pageParams(c))
	if err != nil {
		return err
	}
	return response.OK(c, res, "Notifications fetched successfully")
}

// MarkRead 標記已讀
// @Summary Mark one notification as read
// @Tags Notifications
// @Produce json
// @Param notificationId path string true "notification id"
// @Success 200 {object} response.Body
// @Failure 404 {object} errprocess.ErrorBody
// @Router /notifications/read/{notificationId} [patch]
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	identity, err := middlewares.MustIdentity(c)
	if err != nil {
		return err
	}
	n, err := h.notifications.MarkRead(c.UserContext(), identity.UserID, c.Params("notificationId"))
	if err != nil {
		return err
	}
	return response.OK(c, n, "Notification marked as read")
}

// MarkAllRead 全部已讀
// @Summary Mark every notification as read
// @Tags Notifications
// @Produce json
// @Success 200 {object} response.Body
// @Router /notifications/all-read [patch]
func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	identity, err := middlewares.MustIdentity(c)
	if err != nil {
		return err
	}
	n, err := h.notifications.MarkAllRead(c.UserContext(), identity.UserID)
	if err != nil {
		return err
	}
	return response.OK(c, fiber.Map{"modifiedCount": n}, "All notifications marked as read")
}

// Delete 刪除通知
// @Summary Delete one notification
// @Tags Notifications
// @Produce json
// @Param notificationId path string true "notification id"
// @Success 200 {object} response.Body
// @Failure 404 {object} errprocess.ErrorBody
// @Router /notifications/{notificationId} [delete]
func (h *NotificationHandler) Delete(c *fiber.Ctx) error {
	identity, err := middlewares.MustIdentity(c)
	if err != nil {
		return err
	}
	if err := h.notifications.Delete(c.UserContext(), identity.UserID, c.Params("notificationId")); err != nil {
		return err
	}
	return deleted(c, "Notification deleted successfully")
}
