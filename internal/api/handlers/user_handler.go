package handlers

import (
	"video_platform_service/internal/user/app"
	"video_platform_service/internal/user/domain"
	videoapp "video_platform_service/internal/video/app"
	"video_platform_service/pkg/config"
	errprocess "video_platform_service/pkg/err"
	"video_platform_service/pkg/middlewares"
	"video_platform_service/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// UserHandler 處理使用者相關的 HTTP 請求
type UserHandler struct {
	users   app.UserUseCase
	videos  videoapp.VideoUseCase
	tokens  config.TokenConfig
	uploads Uploads
}

// NewUserHandler create UserHandler
func NewUserHandler(users app.UserUseCase, videos videoapp.VideoUseCase, tokens config.TokenConfig, uploads Uploads) *UserHandler {
	return &UserHandler{users: users, videos: videos, tokens: tokens, uploads: uploads}
}

type tokenData struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// authenticated set both cookies, the body only carries the user
func (h *UserHandler) authenticated(c *fiber.Ctx, status int, res *app.AuthResult, message string) error {
	middlewares.SetAuthCookies(c, res.Tokens, h.tokens.AccessExpiry, h.tokens.RefreshExpiry)
	return response.JSON(c, status, res.User, message)
}

// Register 註冊新用戶
// @Summary Register a user
// @Tags Users
// @Accept multipart/form-data
// @Produce json
// @Param userName formData string true "User name"
// @Param fullName formData string true "Full name"
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Param avatar formData file false "Avatar image"
// @Param coverImage formData file false "Cover image"
// @Success 201 {object} response.Body
// @Failure 400 {object} errprocess.ErrorBody
// @Failure 409 {object} errprocess.ErrorBody
// @Router /users/register [post]
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var in app.RegisterInput
	if err := parseBody(c, &in); err != nil {
		return err
	}

	avatar, err := h.uploads.Save(c, "avatar")
	if err != nil {
		return err
	}
	defer h.uploads.Cleanup(avatar)
	cover, err := h.uploads.Save(c, "coverImage")
	if err != nil {
		return err
	}
	defer h.uploads.Cleanup(cover)
	in.AvatarPath, in.CoverImagePath = avatar, cover

	res, err := h.users.Register(c.UserContext(), in)
	if err != nil {
		return err
	}
	return h.authenticated(c, fiber.StatusCreated, res, "User registered successfully")
}

// Login 用戶登入
// @Summary Login with email or userName
// @Tags Users
// @Accept json
// @Produce json
// @Param request body app.LoginInput true "credentials"
// @Success 200 {object} response.Body
// @Failure 400 {object} errprocess.ErrorBody
// @Failure 401 {object} errprocess.ErrorBody
// @Router /users/login [post]
func (h *UserHandler) Login(c *fiber.Ctx) error {
	var in app.LoginInput
	if err := parseBody(c, &in); err != nil {
		return err
	}
	res, err := h.users.Login(c.UserContext(), in)
	if err != nil {
		return err
	}
	return h.authenticated(c, fiber.StatusOK, res, "Login successful")
}

// Logout 用戶登出
// @Summary Logout
// @Tags Users
// @Produce json
// @Success 200 {object} response.Body
// @Router /users/logout [post]
func (h *UserHandler) Logout(c *fiber.Ctx) error {
	identity, err := middlewares.MustIdentity(c)
	if err != nil {
		return err
	}
	claims, _ := middlewares.CurrentClaims(c)
	if err := h.users.Logout(c.UserContext(), identity.UserID, claims); err != nil {
		return err
	}
	middlewares.ClearAuthCookies(c)
	return response.OK(c, nil, "User logged out successfully")
}

// RefreshToken 換發 token
// @Summary Refresh the token pair
// @Tags Users
// @Accept json
// @Produce json
// @Success 200 {object} response.Body
// @Failure 401 {object} errprocess.ErrorBody
// @Router /users/refresh-token [post]
func (h *UserHandler) RefreshToken(c *fiber.Ctx) error {
	incoming := c.Cookies(middlewares.CookieRefreshToken)
	if incoming == "" {
		var body struct {
			RefreshToken string `json:"refreshToken"`
		}
		_ = c.BodyParser(&body)
		incoming = body.RefreshToken
	}

	res, err := h.users.RefreshToken(c.UserContext(), incoming)
	if err != nil {
		return err
	}
	middlewares.SetAuthCookies(c, res.Tokens, h.tokens.AccessExpiry, h.tokens.RefreshExpiry)
	return response.OK(c, tokenData{
		AccessToken:  res.Tokens.AccessToken,
		RefreshToken: res.Tokens.RefreshToken,
	}, "Access token refreshed successfully")
}

// ChangePassword 修改密碼
// @Summary Change password
// @Tags Users
// @Accept json
// @Produce json
// @Success 200 {object} response.Body
// @Failure 400 {object} errprocess.ErrorBody
// @Failure 401 {object} errprocess.ErrorBody
// @Router /users/change-password [patch]
func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	identity, err := middlewares.MustIdentity(c)
	if err != nil {
		return err
	}
	var body struct {
		OldPassword string `json:"oldPassword"`
		NewPassword string `json:"newPassword"`
	}
	if err := parseBody(c, &body); err != nil {
		return err
	}

	res, err := h.users.ChangePassword(c.UserContext(), identity.UserID, body.OldPassword, body.NewPassword)
	if err != nil {
		return err
	}
	middlewares.SetAuthCookies(c, res.Tokens, h.tokens.AccessExpiry, h.tokens.RefreshExpiry)
	return response.OK(c, nil, "Password changed successfully")
}

// CurrentUser 目前登入的用戶
// @Summary Current user
// @Tags Users
// @Produce json
// @Success 200 {object} response.Body
// @Failure 401 {object} errprocess.ErrorBody
// @Router /users/current-user [get]
func (h *UserHandler) CurrentUser(c *fiber.Ctx) error {
	identity, err := middlewares.MustIdentity(c)
	if err != nil {
		return err
	}
	user, err := h.users.CurrentUser(c.UserContext(), identity.UserID)
	if err != nil {
		return err
	}
	return response.OK(c, user, "User fetched successfully")
}

// UpdateAccount 更新帳號資料
// @Summary Update fullName / email
// @Tags Users
// @Accept json
// @Produce json
// @Param request body app.UpdateAccountInput true "fields"
// @Success 200 {object} response.Body
// @Failure 409 {object} errprocess.ErrorBody
// @Router /users/current-user [patch]
func (h *UserHandler) UpdateAccount(c *fiber.Ctx) error {
	identity, err := middlewares.MustIdentity(c)
	if err != nil {
		return err
	}
	var in app.UpdateAccountInput
	if err := parseBody(c, &in); err != nil {
		return err
	}
	user, err := h.users.UpdateAccount(c.UserContext(), identity.UserID, in)
	if err != nil {
		return err
	}
	return response.OK(c, user, "Account details updated successfully")
}

func (h *UserHandler) replaceImage(c *fiber.Ctx, field string, apply func(userID, path string) (*domain.User, error), message string) error {
	identity, err := middlewares.MustIdentity(c)
	if err != nil {
		return err
	}
	path, err := h.uploads.Save(c, field)
	if err != nil {
		return err
	}
	defer h.uploads.Cleanup(path)
	if path == "" {
		return errprocess.BadRequest(field + " file is missing")
	}

	user, err := apply(identity.UserID, path)
	if err != nil {
		return err
	}
	return response.OK(c, user, message)
}

// UpdateAvatar 更新頭像
// @Summary Upload avatar
// @Tags Users
// @Accept multipart/form-data
// @Produce json
// @Param avatar formData file true "Avatar image"
// @Success 200 {object} response.Body
// @Router /users/upload-avatar [patch]
func (h *UserHandler) UpdateAvatar(c *fiber.Ctx) error {
	return h.replaceImage(c, "avatar", func(userID, path string) (*domain.User, error) {
		return h.users.UpdateAvatar(c.UserContext(), userID, path)
	}, "Avatar updated successfully")
}

// UpdateCoverImage 更新封面
// @Summary Upload cover image
// @Tags Users
// @Accept multipart/form-data
// @Produce json
// @Param coverImage formData file true "Cover image"
// @Success 200 {object} response.Body
// @Router /users/upload-cover-image [patch]
func (h *UserHandler) UpdateCoverImage(c *fiber.Ctx) error {
	return h.replaceImage(c, "coverImage", func(userID, path string) (*domain.User, error) {
		return h.users.UpdateCoverImage(c.UserContext(), userID, path)
	}, "Cover image updated successfully")
}

// WatchHistory 觀看紀錄
// @Summary Watch history, most recent first
// @Tags Users
// @Produce json
// @Success 200 {object} response.Body
// @Router /users/watch-history [get]
func (h *UserHandler) WatchHistory(c *fiber.Ctx) error {
	identity, err := middlewares.MustIdentity(c)
	if err != nil {
		return err
	}
	ids, err := h.users.WatchHistory(c.UserContext(), identity.UserID)
	if err != nil {
		return err
	}
	videos, err := h.videos.VideosByIDs(c.UserContext(), ids)
	if err != nil {
		return err
	}
	return response.OK(c, videos, "Watch history fetched successfully")
}
