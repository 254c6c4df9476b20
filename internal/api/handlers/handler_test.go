package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"testing"

	notificationapp "video_platform_service/internal/notification/app"
	notificationdomain "video_platform_service/internal/notification/domain"
	notificationrepo "video_platform_service/internal/notification/repository"
	videoapp "video_platform_service/internal/video/app"
	videodomain "video_platform_service/internal/video/domain"
	errprocess "video_platform_service/pkg/err"
	"video_platform_service/pkg/logger"
	"video_platform_service/pkg/middlewares"
	"video_platform_service/pkg/pagination"
	"video_platform_service/pkg/response"
	"video_platform_service/pkg/token"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var caller = &token.Identity{UserID: primitive.NewObjectID().Hex(), UserName: "alice", Email: "alice@example.com"}

// newTestApp fiber app with the production error handler, identity is attached when not nil
func newTestApp(identity *token.Identity) *fiber.App {
	logger.SetNewNop()
	app := fiber.New(fiber.Config{ErrorHandler: errprocess.NewErrorHandler(func() bool { return false })})
	app.Use(func(c *fiber.Ctx) error {
		if identity != nil {
			c.Locals(middlewares.LocalIdentity, identity)
		}
		return c.Next()
	})
	return app
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, &out), string(body))
	return out
}

func TestConnectCheck(t *testing.T) {
	app := newTestApp(nil)
	app.Get("/", ConnectCheck)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "api server start!", string(body))
}

func TestDebugLogFlag(t *testing.T) {
	app := newTestApp(nil)
	app.Post("/debug", DebugLogFlag)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/debug?status=true", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, logger.Log.DebugMode())

	resp, err = app.Test(httptest.NewRequest(http.MethodPost, "/debug?status=maybe", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[errprocess.ErrorBody](t, resp)
	assert.False(t, body.Success)
	assert.Equal(t, "Invalid status value", body.Message)
}

func TestListVideos_SortTypeFallback(t *testing.T) {
	videos := new(MockVideoUseCase)
	h := NewVideoHandler(videos, Uploads{TmpDir: t.TempDir()})
	app := newTestApp(nil)
	app.Get("/videos", h.ListVideos)

	page := pagination.New([]videodomain.Details{{Title: "hello"}}, 11, pagination.Params{Page: 2, Limit: 10})
	videos.On("ListVideos", mock.Anything, videodomain.ListQuery{
		Page: "2", Query: "go", SortBy: "views", SortOrder: "asc",
	}).Return(&page, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/videos?page=2&query=go&sortBy=views&sortType=asc", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[struct {
		Success bool                                 `json:"success"`
		Data    pagination.Page[videodomain.Details] `json:"data"`
	}](t, resp)
	assert.True(t, body.Success)
	assert.Equal(t, int64(11), body.Data.TotalResults)
	assert.Equal(t, 2, body.Data.TotalPages)
	assert.True(t, body.Data.HasPreviousPage)
	assert.False(t, body.Data.HasNextPage)
	videos.AssertExpectations(t)
}

func TestListVideos_InvalidSort(t *testing.T) {
	videos := new(MockVideoUseCase)
	h := NewVideoHandler(videos, Uploads{TmpDir: t.TempDir()})
	app := newTestApp(nil)
	app.Get("/videos", h.ListVideos)

	videos.On("ListVideos", mock.Anything, mock.Anything).
		Return(nil, errprocess.BadRequest("Invalid sortBy field", "sortBy must be one of createdAt"))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/videos?sortBy=password", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[errprocess.ErrorBody](t, resp)
	assert.Equal(t, []string{"sortBy must be one of createdAt"}, body.Errors)
	assert.Nil(t, body.Data)
	assert.NotEmpty(t, body.Stack)
}

func TestGetVideo_AnonymousViewer(t *testing.T) {
	videos := new(MockVideoUseCase)
	h := NewVideoHandler(videos, Uploads{TmpDir: t.TempDir()})
	app := newTestApp(nil)
	app.Get("/videos/:videoId", h.GetVideo)

	id := primitive.NewObjectID()
	videos.On("GetVideo", mock.Anything, id.Hex(), mock.MatchedBy(func(v *token.Identity) bool { return v == nil })).
		Return(&videodomain.Details{ID: id, Views: 1}, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/videos/"+id.Hex(), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	videos.AssertExpectations(t)
}

func TestGetVideo_NotFound(t *testing.T) {
	videos := new(MockVideoUseCase)
	h := NewVideoHandler(videos, Uploads{TmpDir: t.TempDir()})
	app := newTestApp(caller)
	app.Get("/videos/:videoId", h.GetVideo)

	videos.On("GetVideo", mock.Anything, "abc", caller).Return(nil, errprocess.NotFound("Video not found"))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/videos/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decode[errprocess.ErrorBody](t, resp)
	assert.False(t, body.Success)
	assert.Equal(t, "Video not found", body.Message)
	assert.Equal(t, []string{}, body.Errors)
}

func TestDeleteVideo_RequiresIdentity(t *testing.T) {
	videos := new(MockVideoUseCase)
	h := NewVideoHandler(videos, Uploads{TmpDir: t.TempDir()})
	app := newTestApp(nil)
	app.Delete("/videos/:videoId", h.DeleteVideo)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/videos/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	videos.AssertNotCalled(t, "DeleteVideo", mock.Anything, mock.Anything, mock.Anything)
}

func TestShareVideo(t *testing.T) {
	videos := new(MockVideoUseCase)
	h := NewVideoHandler(videos, Uploads{TmpDir: t.TempDir()})
	app := newTestApp(caller)
	app.Post("/videos/:videoId/share", h.ShareVideo)

	videos.On("ShareVideo", mock.Anything, caller, "v1").Return(&videodomain.Video{Shares: 4}, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/videos/v1/share", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[struct {
		Data struct {
			Shares int64 `json:"shares"`
		} `json:"data"`
	}](t, resp)
	assert.Equal(t, int64(4), body.Data.Shares)
}

type formFile struct {
	field, name, contentType string
	content                  []byte
}

func multipartBody(t *testing.T, fields map[string]string, files ...formFile) (*bytes.Buffer, string) {
	t.Helper()
	buf := new(bytes.Buffer)
	w := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, f := range files {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="`+f.field+`"; filename="`+f.name+`"`)
		header.Set("Content-Type", f.contentType)
		part, err := w.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(f.content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf, w.FormDataContentType()
}

func TestPublishVideo_StagesUploads(t *testing.T) {
	videos := new(MockVideoUseCase)
	h := NewVideoHandler(videos, Uploads{TmpDir: t.TempDir()})
	app := newTestApp(caller)
	app.Post("/videos", h.PublishVideo)

	var staged []string
	videos.On("PublishVideo", mock.Anything, caller, mock.MatchedBy(func(in videoapp.PublishInput) bool {
		return in.Title == "Intro" && in.Tags == "go,fiber" && in.Duration == 12.5 &&
			in.IsPublished != nil && !*in.IsPublished && in.VideoPath != "" && in.ThumbnailPath != ""
	})).Run(func(args mock.Arguments) {
		in := args.Get(2).(videoapp.PublishInput)
		staged = []string{in.VideoPath, in.ThumbnailPath}
		for _, p := range staged {
			_, err := os.Stat(p)
			assert.NoError(t, err, "upload must exist while the use case runs")
		}
	}).Return(&videodomain.Video{Title: "Intro"}, nil)

	body, contentType := multipartBody(t, map[string]string{
		"title":       "Intro",
		"description": "first video",
		"category":    "tech",
		"tags":        "go,fiber",
		"duration":    "12.5",
		"isPublished": "false",
	},
		formFile{field: "videoFile", name: "intro.mp4", contentType: "video/mp4", content: []byte("mp4")},
		formFile{field: "thumbnail", name: "thumb.png", contentType: "image/png", content: []byte("png")},
	)
	req := httptest.NewRequest(http.MethodPost, "/videos", body)
	req.Header.Set(fiber.HeaderContentType, contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	videos.AssertExpectations(t)

	require.Len(t, staged, 2)
	for _, p := range staged {
		_, err := os.Stat(p)
		assert.True(t, os.IsNotExist(err), "temp upload must be removed after the request")
	}
}

func TestPublishVideo_RejectsNonMedia(t *testing.T) {
	videos := new(MockVideoUseCase)
	h := NewVideoHandler(videos, Uploads{TmpDir: t.TempDir()})
	app := newTestApp(caller)
	app.Post("/videos", h.PublishVideo)

	body, contentType := multipartBody(t, map[string]string{"title": "x"},
		formFile{field: "videoFile", name: "notes.txt", contentType: "text/plain", content: []byte("hi")},
	)
	req := httptest.NewRequest(http.MethodPost, "/videos", body)
	req.Header.Set(fiber.HeaderContentType, contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	videos.AssertNotCalled(t, "PublishVideo", mock.Anything, mock.Anything, mock.Anything)
}

func TestPublishVideo_BadDuration(t *testing.T) {
	videos := new(MockVideoUseCase)
	h := NewVideoHandler(videos, Uploads{TmpDir: t.TempDir()})
	app := newTestApp(caller)
	app.Post("/videos", h.PublishVideo)

	body, contentType := multipartBody(t, map[string]string{"duration": "long"})
	req := httptest.NewRequest(http.MethodPost, "/videos", body)
	req.Header.Set(fiber.HeaderContentType, contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestNotificationList_Filter(t *testing.T) {
	notifications := new(MockNotificationUseCase)
	h := NewNotificationHandler(notifications)
	app := newTestApp(caller)
	app.Get("/notifications", h.List)

	unread := false
	notifications.On("List", mock.Anything, caller.UserID,
		notificationdomain.Filter{IsRead: &unread, Type: notificationdomain.TypeComment},
		pagination.Params{Page: 1, Limit: 5},
	).Return(&notificationapp.ListResult{
		Page:        pagination.New([]notificationrepo.View{}, 0, pagination.Params{Page: 1, Limit: 5}),
		UnreadCount: 3,
	}, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/notifications?isRead=false&type=comment&limit=5", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[struct {
		Data struct {
			UnreadCount int64 `json:"unreadCount"`
		} `json:"data"`
	}](t, resp)
	assert.Equal(t, int64(3), body.Data.UnreadCount)
	notifications.AssertExpectations(t)
}

func TestNotificationList_InvalidFilter(t *testing.T) {
	notifications := new(MockNotificationUseCase)
	h := NewNotificationHandler(notifications)
	app := newTestApp(caller)
	app.Get("/notifications", h.List)

	for _, q := range []string{"isRead=nope", "type=spam"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/notifications?"+q, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, q)
	}
	notifications.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestNotificationMarkAllRead(t *testing.T) {
	notifications := new(MockNotificationUseCase)
	h := NewNotificationHandler(notifications)
	app := newTestApp(caller)
	app.Patch("/notifications/all-read", h.MarkAllRead)

	notifications.On("MarkAllRead", mock.Anything, caller.UserID).Return(int64(7), nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodPatch, "/notifications/all-read", nil))
	require.NoError(t, err)
	body := decode[response.Body](t, resp)
	assert.True(t, body.Success)
	assert.Equal(t, float64(7), body.Data.(map[string]interface{})["modifiedCount"])
}

func TestNotificationDelete_UpstreamFailure(t *testing.T) {
	notifications := new(MockNotificationUseCase)
	h := NewNotificationHandler(notifications)
	app := newTestApp(caller)
	app.Delete("/notifications/:notificationId", h.Delete)

	notifications.On("Delete", mock.Anything, caller.UserID, "n1").Return(errors.New("mongo down"))

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/notifications/n1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body := decode[errprocess.ErrorBody](t, resp)
	assert.Equal(t, "mongo down", body.Message)
}
