package router

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"video_platform_service/internal/api/handlers"
	notificationapp "video_platform_service/internal/notification/app"
	"video_platform_service/pkg/config"
	errprocess "video_platform_service/pkg/err"
	"video_platform_service/pkg/logger"
	"video_platform_service/pkg/middlewares"
	"video_platform_service/pkg/token"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rejectAll struct{}

func (rejectAll) VerifyAccess(string) (*token.AccessClaims, error) {
	return nil, token.ErrInvalidToken
}

func (rejectAll) ResolveIdentity(context.Context, string) (*token.Identity, error) {
	return nil, errors.New("no user")
}

func newApp(t *testing.T) *fiber.App {
	t.Helper()
	logger.SetNewNop()
	app := fiber.New(fiber.Config{ErrorHandler: errprocess.NewErrorHandler(func() bool { return true })})
	uploads := handlers.Uploads{TmpDir: t.TempDir()}
	RegisterRoutes(app, "/api/v1", middlewares.NewAuthGate(rejectAll{}, rejectAll{}, nil), Handlers{
		User:           handlers.NewUserHandler(nil, nil, config.TokenConfig{}, uploads),
		Channel:        handlers.NewChannelHandler(nil, nil, uploads),
		Video:          handlers.NewVideoHandler(nil, uploads),
		Social:         handlers.NewSocialHandler(nil, nil, nil, nil),
		Notification:   handlers.NewNotificationHandler(nil),
		NotificationWS: notificationapp.NewNotificationWebsocketHandler(nil),
	})
	return app
}

func TestRegisterRoutes_ProtectedRoutesNeedToken(t *testing.T) {
	app := newApp(t)

	cases := []struct{ method, path string }{
		{http.MethodGet, "/api/v1/users/current-user"},
		{http.MethodPatch, "/api/v1/users/change-password"},
		{http.MethodPost, "/api/v1/videos"},
		{http.MethodPatch, "/api/v1/videos/toggle-publish/abc"},
		{http.MethodPatch, "/api/v1/channels/notifications"},
		{http.MethodPost, "/api/v1/subscriptions/c/abc"},
		{http.MethodGet, "/api/v1/likes/videos"},
		{http.MethodDelete, "/api/v1/comments/c/abc"},
		{http.MethodPost, "/api/v1/playlists"},
		{http.MethodGet, "/api/v1/notifications"},
		{http.MethodGet, "/api/v1/notifications/ws"},
	}
	for _, tc := range cases {
		resp, err := app.Test(httptest.NewRequest(tc.method, tc.path, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, tc.method+" "+tc.path)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/current-user", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer forged")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRegisterRoutes_LogoutWithBadTokenSucceeds(t *testing.T) {
	app := newApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/logout", nil)
	req.AddCookie(&http.Cookie{Name: middlewares.CookieAccessToken, Value: "expired"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cleared := map[string]bool{}
	for _, c := range resp.Cookies() {
		cleared[c.Name] = c.Value == ""
	}
	assert.True(t, cleared[middlewares.CookieAccessToken])
	assert.True(t, cleared[middlewares.CookieRefreshToken])
}

func TestRegisterRoutes_Fallbacks(t *testing.T) {
	app := newApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/does-not-exist", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
