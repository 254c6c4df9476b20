package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"video_platform_service/internal/user/domain"
	"video_platform_service/internal/user/repository"
	"video_platform_service/pkg"
	"video_platform_service/pkg/database"
	"video_platform_service/pkg/encrypt"
	errprocess "video_platform_service/pkg/err"
	"video_platform_service/pkg/logger"
	"video_platform_service/pkg/media"
	"video_platform_service/pkg/token"
	"video_platform_service/pkg/validation"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// TokenIssuer sign and verify the token pair
type TokenIssuer interface {
	IssuePair(id token.Identity) (token.Pair, error)
	VerifyRefresh(tokenStr string) (*token.RefreshClaims, error)
}

// SubscriberCounter subscription facts shown on a channel
type SubscriberCounter interface {
	CountSubscribers(ctx context.Context, channelID primitive.ObjectID) (int64, error)
	IsSubscribed(ctx context.Context, subscriberID, channelID primitive.ObjectID) (bool, error)
}

// VideoCounter number of videos a channel owns
type VideoCounter interface {
	CountByOwner(ctx context.Context, ownerID primitive.ObjectID, publishedOnly bool) (int64, error)
}

// RegisterInput register form
type RegisterInput struct {
	UserName       string `json:"userName" form:"userName" validate:"notblank,max=50"`
	FullName       string `json:"fullName" form:"fullName" validate:"notblank,max=100"`
	Email          string `json:"email" form:"email" validate:"notblank,email"`
	Password       string `json:"password" form:"password" validate:"notblank"`
	AvatarPath     string `json:"-" form:"-"`
	CoverImagePath string `json:"-" form:"-"`
}

// LoginInput email or userName plus password
type LoginInput struct {
	Email    string `json:"email"`
	UserName string `json:"userName"`
	Password string `json:"password" validate:"notblank"`
}

// UpdateAccountInput fields of PATCH current-user
type UpdateAccountInput struct {
	FullName string `json:"fullName" validate:"omitempty,max=100"`
	Email    string `json:"email" validate:"omitempty,email"`
}

// UpdateChannelInput fields of PATCH channel
type UpdateChannelInput struct {
	ChannelDescription *string             `json:"channelDescription" validate:"omitempty,max=5000"`
	ChannelTags        *[]string           `json:"channelTags"`
	SocialLinks        *domain.SocialLinks `json:"socialLinks"`
	CoverImagePath     string              `json:"-" form:"-"`
}

// AuthResult user plus the freshly issued tokens
type AuthResult struct {
	User   *domain.User
	Tokens token.Pair
}

// UserUseCase 這裡封裝了對外提供的應用服務
type UserUseCase interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, in LoginInput) (*AuthResult, error)
	Logout(ctx context.Context, userID string, claims *token.AccessClaims) error
	RefreshToken(ctx context.Context, incoming string) (*AuthResult, error)
	ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) (*AuthResult, error)
	CurrentUser(ctx context.Context, userID string) (*domain.User, error)
	UpdateAccount(ctx context.Context, userID string, in UpdateAccountInput) (*domain.User, error)
	UpdateAvatar(ctx context.Context, userID, localPath string) (*domain.User, error)
	UpdateCoverImage(ctx context.Context, userID, localPath string) (*domain.User, error)
	WatchHistory(ctx context.Context, userID string) ([]primitive.ObjectID, error)
	AddToWatchHistory(ctx context.Context, userID string, videoID primitive.ObjectID) error
	FindByUserName(ctx context.Context, userName string) (*domain.User, error)
	ChannelProfile(ctx context.Context, userName string, viewer *token.Identity) (*domain.ChannelProfile, error)
	UpdateChannel(ctx context.Context, caller *token.Identity, userName string, in UpdateChannelInput) (*domain.User, error)
	UpdateNotificationSettings(ctx context.Context, userID string, patch domain.NotificationSettingsPatch) (*domain.NotificationSettings, error)
	ResolveIdentity(ctx context.Context, userID string) (*token.Identity, error)
	Allows(ctx context.Context, userID primitive.ObjectID, kind string) (bool, error)
}

type userUseCase struct {
	userRepo repository.UserRepository
	tokens   TokenIssuer
	store    media.Store
	revoked  token.RevocationList
	subs     SubscriberCounter
	videos   VideoCounter
	now      func() time.Time
}

// NewUserUseCase 建立一個新的 UserUseCase, revoked may be nil
func NewUserUseCase(
	userRepo repository.UserRepository,
	tokens TokenIssuer,
	store media.Store,
	revoked token.RevocationList,
	subs SubscriberCounter,
	videos VideoCounter,
) UserUseCase {
	return &userUseCase{
		userRepo: userRepo,
		tokens:   tokens,
		store:    store,
		revoked:  revoked,
		subs:     subs,
		videos:   videos,
		now:      time.Now,
	}
}

func (u *userUseCase) findByHex(ctx context.Context, userID string) (*domain.User, error) {
	id, err := database.ParseID(userID, "user id")
	if err != nil {
		return nil, err
	}
	user, err := u.userRepo.FindByID(ctx, id)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, errprocess.NotFound("User does not exist")
	}
	if err != nil {
		return nil, errprocess.Internal("Failed to load user", err)
	}
	return user, nil
}

// issue sign a new pair and make its refresh token the only live one
func (u *userUseCase) issue(ctx context.Context, user *domain.User) (*AuthResult, error) {
	pair, err := u.tokens.IssuePair(user.Identity())
	if err != nil {
		return nil, errprocess.Internal("Something went wrong while generating tokens", err)
	}
	updated, err := u.userRepo.Update(ctx, user.ID, domain.UserUpdate{RefreshToken: &pair.RefreshToken})
	if err != nil {
		return nil, errprocess.Internal("Something went wrong while generating tokens", err)
	}
	return &AuthResult{User: updated, Tokens: pair}, nil
}

func (u *userUseCase) uploadOptional(ctx context.Context, localPath, folder string) (media.Asset, error) {
	if localPath == "" {
		return media.Asset{}, nil
	}
	return u.store.Upload(ctx, localPath, folder)
}

// deleteAsset best-effort removal, failures are only logged
func (u *userUseCase) deleteAsset(ctx context.Context, asset media.Asset) {
	if asset.PublicID == "" {
		return
	}
	if err := u.store.Delete(ctx, asset.PublicID, media.ResourceImage); err != nil {
		logger.Log.Warn("delete asset failed", zap.String("public_id", asset.PublicID), zap.Error(err))
	}
}

// Register create the account, upload the optional images and log the user in
func (u *userUseCase) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}

	if _, err := u.userRepo.FindByEmailOrUserName(ctx, in.Email, in.UserName); err == nil {
		return nil, errprocess.Conflict(domain.ErrDuplicateUser.Error())
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, errprocess.Internal("Failed to register user", err)
	}

	user := &domain.User{
		UserName: in.UserName,
		FullName: in.FullName,
		Email:    in.Email,
	}
	if err := user.SetPassword(in.Password); err != nil {
		if errors.Is(err, encrypt.ErrWeakPassword) {
			return nil, errprocess.BadRequest(err.Error())
		}
		return nil, errprocess.Internal("Failed to register user", err)
	}

	avatar, err := u.uploadOptional(ctx, in.AvatarPath, media.FolderAvatars)
	if err != nil {
		return nil, errprocess.Internal("Failed to upload avatar", err)
	}
	cover, err := u.uploadOptional(ctx, in.CoverImagePath, media.FolderCoverImages)
	if err != nil {
		u.deleteAsset(ctx, avatar)
		return nil, errprocess.Internal("Failed to upload cover image", err)
	}
	user.Avatar = avatar
	user.CoverImage = cover
	user.PrepareForInsert(u.now())

	if err := u.userRepo.Create(ctx, user); err != nil {
		u.deleteAsset(ctx, avatar)
		u.deleteAsset(ctx, cover)
		if errors.Is(err, domain.ErrDuplicateUser) {
			return nil, errprocess.Conflict(err.Error())
		}
		return nil, errprocess.Internal("Something went wrong while registering the user", err)
	}

	logger.Log.Info("user registered", zap.String("userID", user.ID.Hex()), zap.String("userName", user.UserName))
	return u.issue(ctx, user)
}

// Login email or userName
func (u *userUseCase) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	if strings.TrimSpace(in.Email) == "" && strings.TrimSpace(in.UserName) == "" {
		return nil, errprocess.BadRequest("Username or email is required")
	}
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}

	user, err := u.userRepo.FindByEmailOrUserName(ctx, in.Email, in.UserName)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, errprocess.NotFound("User does not exist")
	}
	if err != nil {
		return nil, errprocess.Internal("Failed to login", err)
	}

	if err := user.IsPasswordMatch(in.Password); err != nil {
		logger.Log.Debug("password can't match", zap.String("userID", user.ID.Hex()))
		return nil, errprocess.Unauthorized("Invalid user credentials")
	}

	return u.issue(ctx, user)
}

// Logout drop the stored refresh token and revoke the presented access token
func (u *userUseCase) Logout(ctx context.Context, userID string, claims *token.AccessClaims) error {
	id, err := database.ParseID(userID, "user id")
	if err != nil {
		return err
	}
	empty := ""
	if _, err := u.userRepo.Update(ctx, id, domain.UserUpdate{RefreshToken: &empty}); err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return errprocess.Internal("Failed to logout", err)
	}

	if u.revoked != nil && claims != nil {
		if err := u.revoked.Revoke(ctx, claims.ID, token.RemainingTTL(claims, u.now())); err != nil {
			logger.Log.Warn("revoke access token failed", zap.String("userID", userID), zap.Error(err))
		}
	}
	return nil
}

// RefreshToken rotate the pair, the presented token must be the one stored on the user
func (u *userUseCase) RefreshToken(ctx context.Context, incoming string) (*AuthResult, error) {
	if incoming == "" {
		return nil, errprocess.Unauthorized("Unauthorized request")
	}

	claims, err := u.tokens.VerifyRefresh(incoming)
	if err != nil {
		return nil, errprocess.Unauthorized("Invalid refresh token").WithCause(err)
	}

	id, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, errprocess.Unauthorized("Invalid refresh token")
	}
	user, err := u.userRepo.FindByID(ctx, id)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, errprocess.Unauthorized("Invalid refresh token")
	}
	if err != nil {
		return nil, errprocess.Internal("Failed to refresh token", err)
	}

	if user.RefreshToken == "" || user.RefreshToken != incoming {
		return nil, errprocess.Unauthorized("Refresh token is expired or used")
	}

	return u.issue(ctx, user)
}

// ChangePassword verify the old password, store the new hash and rotate the pair
func (u *userUseCase) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) (*AuthResult, error) {
	if oldPassword == "" || newPassword == "" {
		return nil, errprocess.BadRequest("Old and new password are required")
	}

	user, err := u.findByHex(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := user.IsPasswordMatch(oldPassword); err != nil {
		return nil, errprocess.BadRequest("Invalid old password")
	}
	if err := user.SetPassword(newPassword); err != nil {
		if errors.Is(err, encrypt.ErrWeakPassword) {
			return nil, errprocess.BadRequest(err.Error())
		}
		return nil, errprocess.Internal("Failed to change password", err)
	}

	empty := ""
	if _, err := u.userRepo.Update(ctx, user.ID, domain.UserUpdate{Password: &user.Password, RefreshToken: &empty}); err != nil {
		return nil, errprocess.Internal("Failed to change password", err)
	}
	return u.issue(ctx, user)
}

func (u *userUseCase) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	return u.findByHex(ctx, userID)
}

// UpdateAccount fullName and/or email
func (u *userUseCase) UpdateAccount(ctx context.Context, userID string, in UpdateAccountInput) (*domain.User, error) {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.TrimSpace(in.Email)
	if in.FullName == "" && in.Email == "" {
		return nil, errprocess.BadRequest("At least one field (fullName or email) is required")
	}
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}

	user, err := u.findByHex(ctx, userID)
	if err != nil {
		return nil, err
	}

	var upd domain.UserUpdate
	if in.FullName != "" {
		upd.FullName = &in.FullName
	}
	if in.Email != "" && domain.NormalizeName(in.Email) != user.Email {
		if other, err := u.userRepo.FindByEmailOrUserName(ctx, in.Email, ""); err == nil && other.ID != user.ID {
			return nil, errprocess.Conflict("Email is already in use")
		}
		upd.Email = &in.Email
	}

	updated, err := u.userRepo.Update(ctx, user.ID, upd)
	if errors.Is(err, domain.ErrDuplicateUser) {
		return nil, errprocess.Conflict("Email is already in use")
	}
	if err != nil {
		return nil, errprocess.Internal("Failed to update account", err)
	}
	return updated, nil
}

func (u *userUseCase) replaceImage(ctx context.Context, userID, localPath, folder string, pick func(*domain.User) media.Asset, set func(*domain.UserUpdate, *media.Asset)) (*domain.User, error) {
	if localPath == "" {
		return nil, errprocess.BadRequest("File is required")
	}
	user, err := u.findByHex(ctx, userID)
	if err != nil {
		return nil, err
	}

	asset, err := u.store.Upload(ctx, localPath, folder)
	if err != nil {
		return nil, errprocess.Internal("Error while uploading file", err)
	}

	var upd domain.UserUpdate
	set(&upd, &asset)
	updated, err := u.userRepo.Update(ctx, user.ID, upd)
	if err != nil {
		u.deleteAsset(ctx, asset)
		return nil, errprocess.Internal("Failed to update user", err)
	}

	u.deleteAsset(ctx, pick(user))
	return updated, nil
}

// UpdateAvatar store the new avatar, then drop the old one
func (u *userUseCase) UpdateAvatar(ctx context.Context, userID, localPath string) (*domain.User, error) {
	return u.replaceImage(ctx, userID, localPath, media.FolderAvatars,
		func(user *domain.User) media.Asset { return user.Avatar },
		func(upd *domain.UserUpdate, a *media.Asset) { upd.Avatar = a },
	)
}

// UpdateCoverImage store the new cover, then drop the old one
func (u *userUseCase) UpdateCoverImage(ctx context.Context, userID, localPath string) (*domain.User, error) {
	return u.replaceImage(ctx, userID, localPath, media.FolderCoverImages,
		func(user *domain.User) media.Asset { return user.CoverImage },
		func(upd *domain.UserUpdate, a *media.Asset) { upd.CoverImage = a },
	)
}

func (u *userUseCase) WatchHistory(ctx context.Context, userID string) ([]primitive.ObjectID, error) {
	user, err := u.findByHex(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.WatchHistory, nil
}

func (u *userUseCase) AddToWatchHistory(ctx context.Context, userID string, videoID primitive.ObjectID) error {
	id, err := database.ParseID(userID, "user id")
	if err != nil {
		return err
	}
	return u.userRepo.PushWatchHistory(ctx, id, videoID)
}

func (u *userUseCase) FindByUserName(ctx context.Context, userName string) (*domain.User, error) {
	if strings.TrimSpace(userName) == "" {
		return nil, errprocess.BadRequest("Username is required")
	}
	user, err := u.userRepo.FindByUserName(ctx, userName)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, errprocess.NotFound("Channel does not exist")
	}
	if err != nil {
		return nil, errprocess.Internal("Failed to load channel", err)
	}
	return user, nil
}

// ChannelProfile public channel page with subscriber & video counts
func (u *userUseCase) ChannelProfile(ctx context.Context, userName string, viewer *token.Identity) (*domain.ChannelProfile, error) {
	user, err := u.FindByUserName(ctx, userName)
	if err != nil {
		return nil, err
	}

	profile := user.ChannelProfile()
	if u.subs != nil {
		if profile.SubscribersCount, err = u.subs.CountSubscribers(ctx, user.ID); err != nil {
			return nil, errprocess.Internal("Failed to load channel", err)
		}
		if viewer != nil {
			if viewerID, err := primitive.ObjectIDFromHex(viewer.UserID); err == nil {
				profile.IsSubscribed, _ = u.subs.IsSubscribed(ctx, viewerID, user.ID)
			}
		}
	}
	if u.videos != nil {
		if profile.VideosCount, err = u.videos.CountByOwner(ctx, user.ID, true); err != nil {
			return nil, errprocess.Internal("Failed to load channel", err)
		}
	}
	return profile, nil
}

// UpdateChannel owner only, anyone else sees 404
func (u *userUseCase) UpdateChannel(ctx context.Context, caller *token.Identity, userName string, in UpdateChannelInput) (*domain.User, error) {
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}
	user, err := u.FindByUserName(ctx, userName)
	if err != nil {
		return nil, err
	}
	if caller == nil || caller.UserID != user.ID.Hex() {
		return nil, errprocess.NotFound("Channel does not exist")
	}

	upd := domain.UserUpdate{
		ChannelDescription: in.ChannelDescription,
		SocialLinks:        in.SocialLinks,
	}
	if in.ChannelTags != nil {
		tags := normalizeTags(*in.ChannelTags)
		upd.ChannelTags = &tags
	}

	var cover media.Asset
	if in.CoverImagePath != "" {
		if cover, err = u.store.Upload(ctx, in.CoverImagePath, media.FolderCoverImages); err != nil {
			return nil, errprocess.Internal("Error while uploading cover image", err)
		}
		upd.CoverImage = &cover
	}
	if upd.IsEmpty() {
		return nil, errprocess.BadRequest("Nothing to update")
	}

	updated, err := u.userRepo.Update(ctx, user.ID, upd)
	if err != nil {
		u.deleteAsset(ctx, cover)
		return nil, errprocess.Internal("Failed to update channel", err)
	}
	if upd.CoverImage != nil {
		u.deleteAsset(ctx, user.CoverImage)
	}
	return updated, nil
}

func (u *userUseCase) UpdateNotificationSettings(ctx context.Context, userID string, patch domain.NotificationSettingsPatch) (*domain.NotificationSettings, error) {
	if patch.IsEmpty() {
		return nil, errprocess.BadRequest("At least one notification setting is required")
	}
	user, err := u.findByHex(ctx, userID)
	if err != nil {
		return nil, err
	}

	settings := patch.Apply(user.NotificationSettings)
	updated, err := u.userRepo.Update(ctx, user.ID, domain.UserUpdate{NotificationSettings: &settings})
	if err != nil {
		return nil, errprocess.Internal("Failed to update notification settings", err)
	}
	return &updated.NotificationSettings, nil
}

// ResolveIdentity used by the auth gate, a missing user is an error
func (u *userUseCase) ResolveIdentity(ctx context.Context, userID string) (*token.Identity, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, err
	}
	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	identity := user.Identity()
	return &identity, nil
}

// Allows whether the user accepts notifications of kind
func (u *userUseCase) Allows(ctx context.Context, userID primitive.ObjectID, kind string) (bool, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		return false, err
	}
	return user.NotificationSettings.Allows(kind), nil
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return pkg.Unique(out)
}
