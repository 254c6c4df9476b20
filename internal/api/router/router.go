package router

import (
	"video_platform_service/internal/api/handlers"
	notificationapp "video_platform_service/internal/notification/app"
	errprocess "video_platform_service/pkg/err"
	"video_platform_service/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/gofiber/websocket/v2"
)

// Handlers 所有 http handler
type Handlers struct {
	User           *handlers.UserHandler
	Channel        *handlers.ChannelHandler
	Video          *handlers.VideoHandler
	Social         *handlers.SocialHandler
	Notification   *handlers.NotificationHandler
	NotificationWS *notificationapp.NotificationWebsocketHandler
}

// RegisterRoutes 注册路由
// @title Video Platform Service API
// @version 1.0
// @description API documentation for Video Platform Service
// @host localhost:8000
// @BasePath /api/v1
func RegisterRoutes(app *fiber.App, prefix string, gate *middlewares.AuthGate, h Handlers) {
	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/", handlers.ConnectCheck)
	app.Post("/debug", handlers.DebugLogFlag)

	api := app.Group(prefix)
	required := gate.Required()
	optional := gate.Optional()

	users := api.Group("/users")
	users.Post("/register", h.User.Register)
	users.Post("/login", h.User.Login)
	users.Post("/refresh-token", h.User.RefreshToken)
	users.Post("/logout", gate.Logout(), h.User.Logout)
	users.Patch("/change-password", required, h.User.ChangePassword)
	users.Get("/current-user", required, h.User.CurrentUser)
	users.Patch("/current-user", required, h.User.UpdateAccount)
	users.Patch("/upload-avatar", required, h.User.UpdateAvatar)
	users.Patch("/upload-cover-image", required, h.User.UpdateCoverImage)
	users.Get("/watch-history", required, h.User.WatchHistory)

	// /notifications 要在 /:username 之前
	channels := api.Group("/channels")
	channels.Patch("/notifications", required, h.Channel.UpdateNotificationSettings)
	channels.Get("/:username", optional, h.Channel.GetChannel)
	channels.Patch("/:username", required, h.Channel.UpdateChannel)
	channels.Get("/:username/analytics", required, h.Channel.Analytics)

	videos := api.Group("/videos")
	videos.Get("/", h.Video.ListVideos)
	videos.Post("/", required, h.Video.PublishVideo)
	videos.Patch("/toggle-publish/:videoId", required, h.Video.TogglePublish)
	videos.Get("/:videoId", optional, h.Video.GetVideo)
	videos.Patch("/:videoId", required, h.Video.UpdateVideo)
	videos.Delete("/:videoId", required, h.Video.DeleteVideo)
	videos.Post("/:videoId/share", required, h.Video.ShareVideo)

	subscriptions := api.Group("/subscriptions")
	subscriptions.Post("/c/:channelId", required, h.Social.ToggleSubscription)
	subscriptions.Get("/c/:channelId/subscribers", h.Social.ChannelSubscribers)
	subscriptions.Get("/u/subscribed", required, h.Social.SubscribedChannels)

	likes := api.Group("/likes", required)
	likes.Post("/toggle/v/:videoId", h.Social.ToggleVideoLike)
	likes.Post("/toggle/c/:commentId", h.Social.ToggleCommentLike)
	likes.Get("/videos", h.Social.LikedVideos)

	comments := api.Group("/comments")
	comments.Patch("/c/:commentId", required, h.Social.UpdateComment)
	comments.Delete("/c/:commentId", required, h.Social.DeleteComment)
	comments.Get("/:videoId", optional, h.Social.ListComments)
	comments.Post("/:videoId", required, h.Social.AddComment)

	playlists := api.Group("/playlists")
	playlists.Post("/", required, h.Social.CreatePlaylist)
	playlists.Get("/user/:userId", optional, h.Social.UserPlaylists)
	playlists.Patch("/add/:videoId/:playlistId", required, h.Social.AddVideoToPlaylist)
	playlists.Patch("/remove/:videoId/:playlistId", required, h.Social.RemoveVideoFromPlaylist)
	playlists.Get("/:playlistId", optional, h.Social.GetPlaylist)
	playlists.Patch("/:playlistId", required, h.Social.UpdatePlaylist)
	playlists.Delete("/:playlistId", required, h.Social.DeletePlaylist)

	notifications := api.Group("/notifications", required)
	notifications.Get("/", h.Notification.List)
	notifications.Patch("/all-read", h.Notification.MarkAllRead)
	notifications.Patch("/read/:notificationId", h.Notification.MarkRead)
	notifications.Get("/ws", upgradeOnly, websocket.New(h.NotificationWS.HandleConnection))
	notifications.Delete("/:notificationId", h.Notification.Delete)

	app.Use(errprocess.RouteNotFound)
}

func upgradeOnly(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}
