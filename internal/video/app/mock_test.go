package app

import (
	"context"

	analyticsdomain "video_platform_service/internal/analytics/domain"
	notificationdomain "video_platform_service/internal/notification/domain"
	"video_platform_service/internal/video/domain"
	"video_platform_service/pkg/media"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockVideoRepository Mock VideoRepository
type MockVideoRepository struct {
	mock.Mock
}

func (m *MockVideoRepository) Create(ctx context.Context, v *domain.Video) error {
	args := m.Called(ctx, v)
	if args.Error(0) == nil && v.ID.IsZero() {
		v.ID = primitive.NewObjectID()
	}
	return args.Error(0)
}

func (m *MockVideoRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Video, error) {
	args := m.Called(ctx, id)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Video), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVideoRepository) FindDetails(ctx context.Context, id primitive.ObjectID) (*domain.Details, error) {
	args := m.Called(ctx, id)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Details), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVideoRepository) FindDetailsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Details, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Details), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVideoRepository) List(ctx context.Context, plan domain.ListPlan) ([]domain.Details, int64, error) {
	args := m.Called(ctx, plan)
	return args.Get(0).([]domain.Details), args.Get(1).(int64), args.Error(2)
}

func (m *MockVideoRepository) Update(ctx context.Context, id primitive.ObjectID, upd domain.VideoUpdate) (*domain.Video, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Video), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVideoRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockVideoRepository) IncrementViews(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockVideoRepository) IncrementShares(ctx context.Context, id primitive.ObjectID) (*domain.Video, error) {
	args := m.Called(ctx, id)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Video), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVideoRepository) CountByOwner(ctx context.Context, ownerID primitive.ObjectID, publishedOnly bool) (int64, error) {
	args := m.Called(ctx, ownerID, publishedOnly)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVideoRepository) EnsureIndexes(ctx context.Context) error {
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

// recorder collects side effects that never fail the request
type recorder struct {
	notifications []*notificationdomain.Notification
	metrics       map[primitive.ObjectID]analyticsdomain.Metric
	history       map[string][]primitive.ObjectID
	subscribers   []primitive.ObjectID
	cleaned       []primitive.ObjectID
}

func newRecorder() *recorder {
	return &recorder{
		metrics: map[primitive.ObjectID]analyticsdomain.Metric{},
		history: map[string][]primitive.ObjectID{},
	}
}

func (r *recorder) Notify(_ context.Context, n *notificationdomain.Notification) {
	r.notifications = append(r.notifications, n)
}

func (r *recorder) Record(_ context.Context, channelID primitive.ObjectID, m analyticsdomain.Metric) {
	cur := r.metrics[channelID]
	cur.Views += m.Views
	cur.Videos += m.Videos
	r.metrics[channelID] = cur
}

func (r *recorder) AddToWatchHistory(_ context.Context, userID string, videoID primitive.ObjectID) error {
	r.history[userID] = append([]primitive.ObjectID{videoID}, r.history[userID]...)
	return nil
}

func (r *recorder) SubscriberIDs(_ context.Context, _ primitive.ObjectID) ([]primitive.ObjectID, error) {
	return r.subscribers, nil
}

func (r *recorder) DeleteByVideo(_ context.Context, videoID primitive.ObjectID) error {
	r.cleaned = append(r.cleaned, videoID)
	return nil
}
