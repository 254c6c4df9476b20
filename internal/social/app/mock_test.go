package app

import (
	"context"

	analyticsdomain "video_platform_service/internal/analytics/domain"
	notificationdomain "video_platform_service/internal/notification/domain"
	"video_platform_service/internal/social/domain"
	videodomain "video_platform_service/internal/video/domain"
	errprocess "video_platform_service/pkg/err"
	"video_platform_service/pkg/pagination"
	"video_platform_service/pkg/token"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) Create(ctx context.Context, s *domain.Subscription) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockSubscriptionRepository) Delete(ctx context.Context, subscriber, channel primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, subscriber, channel)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubscriptionRepository) IsSubscribed(ctx context.Context, subscriber, channel primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, subscriber, channel)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubscriptionRepository) CountSubscribers(ctx context.Context, channel primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, channel)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSubscriptionRepository) SubscriberIDs(ctx context.Context, channel primitive.ObjectID) ([]primitive.ObjectID, error) {
	args := m.Called(ctx, channel)
	return args.Get(0).([]primitive.ObjectID), args.Error(1)
}

func (m *MockSubscriptionRepository) ListSubscribers(ctx context.Context, channel primitive.ObjectID, p pagination.Params) ([]domain.SubscriberView, int64, error) {
	args := m.Called(ctx, channel, p)
	return args.Get(0).([]domain.SubscriberView), args.Get(1).(int64), args.Error(2)
}

func (m *MockSubscriptionRepository) ListSubscribed(ctx context.Context, subscriber primitive.ObjectID, p pagination.Params) ([]domain.ChannelView, int64, error) {
	args := m.Called(ctx, subscriber, p)
	return args.Get(0).([]domain.ChannelView), args.Get(1).(int64), args.Error(2)
}

func (m *MockSubscriptionRepository) EnsureIndexes(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) Create(ctx context.Context, l *domain.Like) error {
	return m.Called(ctx, l).Error(0)
}

func (m *MockLikeRepository) Remove(ctx context.Context, l *domain.Like) (bool, error) {
	args := m.Called(ctx, l)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) LikedVideoIDs(ctx context.Context, user primitive.ObjectID, p pagination.Params) ([]primitive.ObjectID, int64, error) {
	args := m.Called(ctx, user, p)
	return args.Get(0).([]primitive.ObjectID), args.Get(1).(int64), args.Error(2)
}

func (m *MockLikeRepository) DeleteByVideo(ctx context.Context, video primitive.ObjectID) error {
	return m.Called(ctx, video).Error(0)
}

func (m *MockLikeRepository) DeleteByComments(ctx context.Context, comments []primitive.ObjectID) error {
	return m.Called(ctx, comments).Error(0)
}

func (m *MockLikeRepository) EnsureIndexes(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, c *domain.Comment) error {
	args := m.Called(ctx, c)
	if args.Error(0) == nil && c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	return args.Error(0)
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Comment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCommentRepository) List(ctx context.Context, video primitive.ObjectID, parent *primitive.ObjectID, p pagination.Params) ([]domain.CommentView, int64, error) {
	args := m.Called(ctx, video, parent, p)
	return args.Get(0).([]domain.CommentView), args.Get(1).(int64), args.Error(2)
}

func (m *MockCommentRepository) UpdateContent(ctx context.Context, id primitive.ObjectID, content string) (*domain.Comment, error) {
	args := m.Called(ctx, id, content)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Comment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCommentRepository) DeleteThread(ctx context.Context, id primitive.ObjectID) ([]primitive.ObjectID, error) {
	args := m.Called(ctx, id)
	if args.Get(0) != nil {
		return args.Get(0).([]primitive.ObjectID), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCommentRepository) DeleteByVideo(ctx context.Context, video primitive.ObjectID) ([]primitive.ObjectID, error) {
	args := m.Called(ctx, video)
	if args.Get(0) != nil {
		return args.Get(0).([]primitive.ObjectID), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCommentRepository) EnsureIndexes(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockPlaylistRepository struct {
	mock.Mock
}

func (m *MockPlaylistRepository) playlist(args mock.Arguments) (*domain.Playlist, error) {
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Playlist), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPlaylistRepository) Create(ctx context.Context, p *domain.Playlist) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPlaylistRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Playlist, error) {
	return m.playlist(m.Called(ctx, id))
}

func (m *MockPlaylistRepository) ListByOwner(ctx context.Context, owner primitive.ObjectID, publicOnly bool, p pagination.Params) ([]domain.Playlist, int64, error) {
	args := m.Called(ctx, owner, publicOnly, p)
	return args.Get(0).([]domain.Playlist), args.Get(1).(int64), args.Error(2)
}

func (m *MockPlaylistRepository) Update(ctx context.Context, id primitive.ObjectID, upd domain.PlaylistUpdate) (*domain.Playlist, error) {
	return m.playlist(m.Called(ctx, id, upd))
}

func (m *MockPlaylistRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockPlaylistRepository) AddVideo(ctx context.Context, id, video primitive.ObjectID) (*domain.Playlist, error) {
	return m.playlist(m.Called(ctx, id, video))
}

func (m *MockPlaylistRepository) RemoveVideo(ctx context.Context, id, video primitive.ObjectID) (*domain.Playlist, error) {
	return m.playlist(m.Called(ctx, id, video))
}

func (m *MockPlaylistRepository) PullVideo(ctx context.Context, video primitive.ObjectID) error {
	return m.Called(ctx, video).Error(0)
}

func (m *MockPlaylistRepository) EnsureIndexes(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// fakeWorld in-memory users and videos plus the best-effort side effects
type fakeWorld struct {
	users         map[string]bool
	videos        map[primitive.ObjectID]*videodomain.Video
	notifications []*notificationdomain.Notification
	metrics       map[primitive.ObjectID]analyticsdomain.Metric
}

func newFakeWorld() *fakeWorld {
	return &fakeWorld{
		users:   map[string]bool{},
		videos:  map[primitive.ObjectID]*videodomain.Video{},
		metrics: map[primitive.ObjectID]analyticsdomain.Metric{},
	}
}

func (w *fakeWorld) ResolveIdentity(_ context.Context, userID string) (*token.Identity, error) {
	if !w.users[userID] {
		return nil, errprocess.NotFound("User does not exist")
	}
	return &token.Identity{UserID: userID}, nil
}

func (w *fakeWorld) FindVideo(_ context.Context, id primitive.ObjectID) (*videodomain.Video, error) {
	v, ok := w.videos[id]
	if !ok {
		return nil, errprocess.NotFound("Video not found")
	}
	return v, nil
}

func (w *fakeWorld) VideosByIDs(_ context.Context, ids []primitive.ObjectID) ([]videodomain.Details, error) {
	out := []videodomain.Details{}
	for _, id := range ids {
		if v, ok := w.videos[id]; ok {
			d := videodomain.Details{ID: v.ID, Title: v.Title, IsPublished: v.IsPublished}
			d.Owner.ID = v.Owner
			out = append(out, d)
		}
	}
	return out, nil
}

func (w *fakeWorld) Notify(_ context.Context, n *notificationdomain.Notification) {
	w.notifications = append(w.notifications, n)
}

func (w *fakeWorld) Record(_ context.Context, channelID primitive.ObjectID, m analyticsdomain.Metric) {
	cur := w.metrics[channelID]
	cur.SubscribersGained += m.SubscribersGained
	cur.SubscribersLost += m.SubscribersLost
	cur.Likes += m.Likes
	cur.Comments += m.Comments
	w.metrics[channelID] = cur
}

func (w *fakeWorld) addVideo(owner primitive.ObjectID, published bool) *videodomain.Video {
	v := &videodomain.Video{ID: primitive.NewObjectID(), Owner: owner, IsPublished: published, Title: "clip"}
	w.videos[v.ID] = v
	return v
}
