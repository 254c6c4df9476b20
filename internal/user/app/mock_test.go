package app

import (
	"context"
	"time"

	"video_platform_service/internal/user/domain"
	"video_platform_service/pkg/media"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockUserRepository Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	if args.Error(0) == nil && user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByUserName(ctx context.Context, userName string) (*domain.User, error) {
	args := m.Called(ctx, userName)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByEmailOrUserName(ctx context.Context, email, userName string) (*domain.User, error) {
	args := m.Called(ctx, email, userName)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, id primitive.ObjectID, upd domain.UserUpdate) (*domain.User, error) {
	args := m.Called(ctx, id, upd)
	if fn, ok := args.Get(0).(func(context.Context, primitive.ObjectID, domain.UserUpdate) *domain.User); ok {
		return fn(ctx, id, upd), args.Error(1)
	}
	if args.Get(0) != nil {
		return args.Get(0).(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) PushWatchHistory(ctx context.Context, id, videoID primitive.ObjectID) error {
	return m.Called(ctx, id, videoID).Error(0)
}

func (m *MockUserRepository) EnsureIndexes(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockStore Mock media.Store
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Upload(ctx context.Context, localPath, folder string) (media.Asset, error) {
	args := m.Called(ctx, localPath, folder)
	return args.Get(0).(media.Asset), args.Error(1)
}

func (m *MockStore) Delete(ctx context.Context, publicID string, resourceType media.ResourceType) error {
	return m.Called(ctx, publicID, resourceType).Error(0)
}

// MockCounters Mock SubscriberCounter & VideoCounter
type MockCounters struct {
	mock.Mock
}

func (m *MockCounters) CountSubscribers(ctx context.Context, channelID primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, channelID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCounters) IsSubscribed(ctx context.Context, subscriberID, channelID primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, subscriberID, channelID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCounters) CountByOwner(ctx context.Context, ownerID primitive.ObjectID, publishedOnly bool) (int64, error) {
	args := m.Called(ctx, ownerID, publishedOnly)
	return args.Get(0).(int64), args.Error(1)
}

type memRevocation struct {
	revoked map[string]time.Duration
}

func (r *memRevocation) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	r.revoked[jti] = ttl
	return nil
}

func (r *memRevocation) IsRevoked(_ context.Context, jti string) (bool, error) {
	_, ok := r.revoked[jti]
	return ok, nil
}
