package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"video_platform_service/pkg/config"
	errprocess "video_platform_service/pkg/err"
	"video_platform_service/pkg/logger"
	"video_platform_service/pkg/token"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockResolver struct {
	mock.Mock
}

func (m *mockResolver) ResolveIdentity(ctx context.Context, userID string) (*token.Identity, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.(*token.Identity), args.Error(1)
	}
	return nil, args.Error(1)
}

type memRevocation map[string]bool

func (r memRevocation) Revoke(_ context.Context, jti string, _ time.Duration) error {
	r[jti] = true
	return nil
}

func (r memRevocation) IsRevoked(_ context.Context, jti string) (bool, error) {
	return r[jti], nil
}

var bob = &token.Identity{UserID: "u1", Email: "bob@x.com", UserName: "bob", FullName: "Bob B"}

func newManager(t *testing.T) *token.Manager {
	m, err := token.NewManager(config.TokenConfig{
		AccessSecret:  "access-secret",
		RefreshSecret: "refresh-secret",
		AccessExpiry:  time.Minute,
		RefreshExpiry: time.Hour,
	}, "test")
	require.NoError(t, err)
	return m
}

func newApp(gate *AuthGate) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: errprocess.NewErrorHandler(func() bool { return true })})
	whoami := func(c *fiber.Ctx) error {
		identity, ok := CurrentIdentity(c)
		if !ok {
			return c.SendString("anonymous")
		}
		return c.SendString(identity.UserName)
	}
	app.Get("/required", gate.Required(), whoami)
	app.Get("/optional", gate.Optional(), whoami)
	app.Post("/logout", gate.Logout(), whoami)
	return app
}

func body(t *testing.T, resp *http.Response) string {
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestAuthGate_Required(t *testing.T) {
	logger.SetNewNop()
	m := newManager(t)
	resolver := new(mockResolver)
	app := newApp(NewAuthGate(m, resolver, memRevocation{}))

	access, err := m.IssueAccessToken(*bob)
	require.NoError(t, err)
	resolver.On("ResolveIdentity", mock.Anything, "u1").Return(bob, nil)

	t.Run("missing token", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/required", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		var env errprocess.ErrorBody
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
		assert.False(t, env.Success)
		assert.Equal(t, "Unauthorized request", env.Message)
	})

	t.Run("bearer header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/required", nil)
		req.Header.Set("Authorization", "Bearer "+access)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "bob", body(t, resp))
	})

	t.Run("cookie wins over header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/required", nil)
		req.AddCookie(&http.Cookie{Name: CookieAccessToken, Value: access})
		req.Header.Set("Authorization", "Bearer garbage")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("refresh token is not an access token", func(t *testing.T) {
		refresh, err := m.IssueRefreshToken("u1")
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/required", nil)
		req.Header.Set("Authorization", "Bearer "+refresh)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestAuthGate_UserGone(t *testing.T) {
	logger.SetNewNop()
	m := newManager(t)
	resolver := new(mockResolver)
	app := newApp(NewAuthGate(m, resolver, nil))

	access, err := m.IssueAccessToken(*bob)
	require.NoError(t, err)
	resolver.On("ResolveIdentity", mock.Anything, "u1").Return(nil, errors.New("user not found"))

	req := httptest.NewRequest(http.MethodGet, "/required", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthGate_Revoked(t *testing.T) {
	logger.SetNewNop()
	m := newManager(t)
	resolver := new(mockResolver)
	revoked := memRevocation{}
	app := newApp(NewAuthGate(m, resolver, revoked))

	access, err := m.IssueAccessToken(*bob)
	require.NoError(t, err)
	claims, err := m.VerifyAccess(access)
	require.NoError(t, err)
	resolver.On("ResolveIdentity", mock.Anything, "u1").Return(bob, nil)
	revoked[claims.ID] = true

	req := httptest.NewRequest(http.MethodGet, "/required", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthGate_Optional(t *testing.T) {
	logger.SetNewNop()
	m := newManager(t)
	resolver := new(mockResolver)
	app := newApp(NewAuthGate(m, resolver, nil))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/optional", nil))
	require.NoError(t, err)
	assert.Equal(t, "anonymous", body(t, resp))

	req := httptest.NewRequest(http.MethodGet, "/optional", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "anonymous", body(t, resp))
}

func TestAuthGate_LogoutWithBadTokenSucceeds(t *testing.T) {
	logger.SetNewNop()
	m := newManager(t)
	app := newApp(NewAuthGate(m, new(mockResolver), nil))

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: CookieAccessToken, Value: "expired-or-garbage"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cleared := map[string]bool{}
	for _, ck := range resp.Cookies() {
		if ck.Value == "" {
			cleared[ck.Name] = true
		}
	}
	assert.True(t, cleared[CookieAccessToken])
	assert.True(t, cleared[CookieRefreshToken])
}

func TestSetAuthCookies(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		SetAuthCookies(c, token.Pair{AccessToken: "a", RefreshToken: "r"}, time.Minute, time.Hour)
		return nil
	})
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	cookies := resp.Cookies()
	require.Len(t, cookies, 2)
	for _, ck := range cookies {
		assert.True(t, ck.HttpOnly)
		assert.Equal(t, http.SameSiteStrictMode, ck.SameSite)
		assert.Equal(t, "/", ck.Path)
	}
}
