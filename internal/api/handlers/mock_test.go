package handlers

import (
	"context"

	notificationapp "video_platform_service/internal/notification/app"
	notificationdomain "video_platform_service/internal/notification/domain"
	userapp "video_platform_service/internal/user/app"
	userdomain "video_platform_service/internal/user/domain"
	videoapp "video_platform_service/internal/video/app"
	videodomain "video_platform_service/internal/video/domain"
	"video_platform_service/pkg/pagination"
	"video_platform_service/pkg/token"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockVideoUseCase mock videoapp.VideoUseCase
type MockVideoUseCase struct {
	mock.Mock
}

var _ videoapp.VideoUseCase = (*MockVideoUseCase)(nil)

func (m *MockVideoUseCase) ListVideos(ctx context.Context, q videodomain.ListQuery) (*pagination.Page[videodomain.Details], error) {
	args := m.Called(ctx, q)
	if args.Get(0) != nil {
		return args.Get(0).(*pagination.Page[videodomain.Details]), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVideoUseCase) PublishVideo(ctx context.Context, caller *token.Identity, in videoapp.PublishInput) (*videodomain.Video, error) {
	args := m.Called(ctx, caller, in)
	if args.Get(0) != nil {
		return args.Get(0).(*videodomain.Video), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVideoUseCase) GetVideo(ctx context.Context, videoID string, viewer *token.Identity) (*videodomain.Details, error) {
	args := m.Called(ctx, videoID, viewer)
	if args.Get(0) != nil {
		return args.Get(0).(*videodomain.Details), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVideoUseCase) UpdateVideo(ctx context.Context, callerID, videoID string, in videoapp.UpdateInput) (*videodomain.Video, error) {
	args := m.Called(ctx, callerID, videoID, in)
	if args.Get(0) != nil {
		return args.Get(0).(*videodomain.Video), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVideoUseCase) DeleteVideo(ctx context.Context, callerID, videoID string) error {
	args := m.Called(ctx, callerID, videoID)
	return args.Error(0)
}

func (m *MockVideoUseCase) TogglePublish(ctx context.Context, callerID, videoID string) (*videodomain.Video, error) {
	args := m.Called(ctx, callerID, videoID)
	if args.Get(0) != nil {
		return args.Get(0).(*videodomain.Video), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVideoUseCase) ShareVideo(ctx context.Context, caller *token.Identity, videoID string) (*videodomain.Video, error) {
	args := m.Called(ctx, caller, videoID)
	if args.Get(0) != nil {
		return args.Get(0).(*videodomain.Video), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVideoUseCase) VideosByIDs(ctx context.Context, ids []primitive.ObjectID) ([]videodomain.Details, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) != nil {
		return args.Get(0).([]videodomain.Details), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVideoUseCase) FindVideo(ctx context.Context, videoID primitive.ObjectID) (*videodomain.Video, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) != nil {
		return args.Get(0).(*videodomain.Video), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockNotificationUseCase mock notificationapp.NotificationUseCase
type MockNotificationUseCase struct {
	mock.Mock
}

var _ notificationapp.NotificationUseCase = (*MockNotificationUseCase)(nil)

func (m *MockNotificationUseCase) Notify(ctx context.Context, n *notificationdomain.Notification) {
	m.Called(ctx, n)
}

func (m *MockNotificationUseCase) List(ctx context.Context, userID string, f notificationdomain.Filter, p pagination.Params) (*notificationapp.ListResult, error) {
	args := m.Called(ctx, userID, f, p)
	if args.Get(0) != nil {
		return args.Get(0).(*notificationapp.ListResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockNotificationUseCase) MarkRead(ctx context.Context, userID, notificationID string) (*notificationdomain.Notification, error) {
	args := m.Called(ctx, userID, notificationID)
	if args.Get(0) != nil {
		return args.Get(0).(*notificationdomain.Notification), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockNotificationUseCase) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationUseCase) Delete(ctx context.Context, userID, notificationID string) error {
	args := m.Called(ctx, userID, notificationID)
	return args.Error(0)
}

// MockUserUseCase mock userapp.UserUseCase
type MockUserUseCase struct {
	mock.Mock
}

var _ userapp.UserUseCase = (*MockUserUseCase)(nil)

func (m *MockUserUseCase) authResult(args mock.Arguments) (*userapp.AuthResult, error) {
	if args.Get(0) != nil {
		return args.Get(0).(*userapp.AuthResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserUseCase) user(args mock.Arguments) (*userdomain.User, error) {
	if args.Get(0) != nil {
		return args.Get(0).(*userdomain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserUseCase) Register(ctx context.Context, in userapp.RegisterInput) (*userapp.AuthResult, error) {
	return m.authResult(m.Called(ctx, in))
}

func (m *MockUserUseCase) Login(ctx context.Context, in userapp.LoginInput) (*userapp.AuthResult, error) {
	return m.authResult(m.Called(ctx, in))
}

func (m *MockUserUseCase) Logout(ctx context.Context, userID string, claims *token.AccessClaims) error {
	return m.Called(ctx, userID, claims).Error(0)
}

func (m *MockUserUseCase) RefreshToken(ctx context.Context, incoming string) (*userapp.AuthResult, error) {
	return m.authResult(m.Called(ctx, incoming))
}

func (m *MockUserUseCase) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) (*userapp.AuthResult, error) {
	return m.authResult(m.Called(ctx, userID, oldPassword, newPassword))
}

func (m *MockUserUseCase) CurrentUser(ctx context.Context, userID string) (*userdomain.User, error) {
	return m.user(m.Called(ctx, userID))
}

func (m *MockUserUseCase) UpdateAccount(ctx context.Context, userID string, in userapp.UpdateAccountInput) (*userdomain.User, error) {
	return m.user(m.Called(ctx, userID, in))
}

func (m *MockUserUseCase) UpdateAvatar(ctx context.Context, userID, localPath string) (*userdomain.User, error) {
	return m.user(m.Called(ctx, userID, localPath))
}

func (m *MockUserUseCase) UpdateCoverImage(ctx context.Context, userID, localPath string) (*userdomain.User, error) {
	return m.user(m.Called(ctx, userID, localPath))
}

func (m *MockUserUseCase) WatchHistory(ctx context.Context, userID string) ([]primitive.ObjectID, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) != nil {
		return args.Get(0).([]primitive.ObjectID), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserUseCase) AddToWatchHistory(ctx context.Context, userID string, videoID primitive.ObjectID) error {
	return m.Called(ctx, userID, videoID).Error(0)
}

func (m *MockUserUseCase) FindByUserName(ctx context.Context, userName string) (*userdomain.User, error) {
	return m.user(m.Called(ctx, userName))
}

func (m *MockUserUseCase) ChannelProfile(ctx context.Context, userName string, viewer *token.Identity) (*userdomain.ChannelProfile, error) {
	args := m.Called(ctx, userName, viewer)
	if args.Get(0) != nil {
		return args.Get(0).(*userdomain.ChannelProfile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserUseCase) UpdateChannel(ctx context.Context, caller *token.Identity, userName string, in userapp.UpdateChannelInput) (*userdomain.User, error) {
	return m.user(m.Called(ctx, caller, userName, in))
}

func (m *MockUserUseCase) UpdateNotificationSettings(ctx context.Context, userID string, patch userdomain.NotificationSettingsPatch) (*userdomain.NotificationSettings, error) {
	args := m.Called(ctx, userID, patch)
	if args.Get(0) != nil {
		return args.Get(0).(*userdomain.NotificationSettings), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserUseCase) ResolveIdentity(ctx context.Context, userID string) (*token.Identity, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) != nil {
		return args.Get(0).(*token.Identity), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserUseCase) Allows(ctx context.Context, userID primitive.ObjectID, kind string) (bool, error) {
	args := m.Called(ctx, userID, kind)
	return args.Bool(0), args.Error(1)
}
