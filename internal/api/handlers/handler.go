package handlers

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	errprocess "video_platform_service/pkg/err"
	"video_platform_service/pkg/logger"
	"video_platform_service/pkg/media"
	"video_platform_service/pkg/pagination"
	"video_platform_service/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ConnectCheck check api connect start
// @Summary Check API server status
// @Description Returns a simple confirmation message
// @Tags Shared
// @Success 200 {string} string "api server start!"
// @Router / [get]
func ConnectCheck(c *fiber.Ctx) error {
	return c.SendString("api server start!")
}

// DebugLogFlag toggle debug log flag
// @Summary Toggle Debug Log Flag
// @Description Enable or disable debug logging
// @Tags Shared
// @Param status query bool true "Debug status"
// @Success 200 {string} string "debug mode updated"
// @Failure 400 {object} errprocess.ErrorBody "Invalid status value"
// @Router /debug [post]
func DebugLogFlag(c *fiber.Ctx) error {
	statusStr := c.Query("status")
	logger.Log.Info("debug", zap.String("status", statusStr))
	status, err := strconv.ParseBool(statusStr)
	if err != nil {
		return errprocess.BadRequest("Invalid status value")
	}

	logger.Log.SetDebugMode(status)
	return c.SendString(fmt.Sprintf("debug mode is : %t", status))
}

// Uploads save multipart files into a temp dir, removed once the request is done
type Uploads struct {
	TmpDir string
}

// Save store the file of field, "" when the field is absent
func (u Uploads) Save(c *fiber.Ctx, field string) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil || fh == nil {
		return "", nil
	}
	contentType := fh.Header.Get(fiber.HeaderContentType)
	if contentType == "" || contentType == fiber.MIMEOctetStream {
		contentType = media.ContentType(fh.Filename)
	}
	if err := media.CheckAllowed(contentType); err != nil {
		return "", errprocess.BadRequest(err.Error(), field+": "+contentType)
	}

	if err := os.MkdirAll(u.TmpDir, 0o755); err != nil {
		return "", errprocess.Internal("Failed to prepare upload", err)
	}
	path := filepath.Join(u.TmpDir, uuid.New().String()+strings.ToLower(filepath.Ext(fh.Filename)))
	if err := c.SaveFile(fh, path); err != nil {
		return "", errprocess.Internal("Failed to save upload", err)
	}
	return path, nil
}

// Cleanup remove saved temp files, best-effort
func (u Uploads) Cleanup(paths ...string) {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			logger.Log.Warn("remove temp upload", zap.String("path", p), zap.Error(err))
		}
	}
}

// pageParams page & limit query values
func pageParams(c *fiber.Ctx) pagination.Params {
	return pagination.Parse(c.Query("page"), c.Query("limit"))
}

// parseBody decode the json / form body, malformed input is a 400
func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return errprocess.BadRequest("Invalid request body", err.Error())
	}
	return nil
}

// formString pointer to a form value, nil when the field was not sent
func formString(c *fiber.Ctx, key string) *string {
	if c.Request().PostArgs().Has(key) {
		v := c.FormValue(key)
		return &v
	}
	if form, err := c.MultipartForm(); err == nil {
		if vals, ok := form.Value[key]; ok && len(vals) > 0 {
			return &vals[0]
		}
	}
	return nil
}

// deleted envelope for successful deletes
func deleted(c *fiber.Ctx, message string) error {
	return response.OK(c, nil, message)
}
