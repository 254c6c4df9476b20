package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"video_platform_service/internal/analytics/domain"
	"video_platform_service/internal/analytics/repository"
	"video_platform_service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockAnalyticsRepository struct {
	mock.Mock
}

func (m *MockAnalyticsRepository) Increment(ctx context.Context, channelID primitive.ObjectID, date string, metric domain.Metric, now time.Time) error {
	return m.Called(ctx, channelID, date, metric, now).Error(0)
}

func (m *MockAnalyticsRepository) FindByChannel(ctx context.Context, channelID primitive.ObjectID) (*domain.ChannelAnalytics, error) {
	args := m.Called(ctx, channelID)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.ChannelAnalytics), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAnalyticsRepository) EnsureIndexes(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func newUseCase(repo *MockAnalyticsRepository, now time.Time) AnalyticsUseCase {
	return &analyticsUseCase{repo: repo, now: func() time.Time { return now }}
}

func TestAnalyticsUseCase_Record(t *testing.T) {
	logger.SetNewNop()
	ctx := context.Background()
	now := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	channel := primitive.NewObjectID()

	repo := new(MockAnalyticsRepository)
	repo.On("Increment", ctx, channel, "2024-03-10", domain.Metric{Views: 1}, now).Return(errors.New("mongo down")).Once()

	uc := newUseCase(repo, now)
	uc.Record(ctx, channel, domain.Metric{Views: 1})
	uc.Record(ctx, channel, domain.Metric{})
	uc.Record(ctx, primitive.NilObjectID, domain.Metric{Views: 1})

	repo.AssertNumberOfCalls(t, "Increment", 1)
}

func TestAnalyticsUseCase_Get(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	channel := primitive.NewObjectID()
	repo := new(MockAnalyticsRepository)
	uc := newUseCase(repo, now)

	repo.On("FindByChannel", ctx, channel).Return(&domain.ChannelAnalytics{
		Channel:   channel,
		TotalView: 9,
		DailyStats: []domain.DailyStat{
			{Date: "2024-01-01", Views: 4},
			{Date: "2024-03-09", Views: 5},
		},
	}, nil).Once()

	stats, err := uc.Get(ctx, channel, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(9), stats.TotalView)
	assert.Len(t, stats.DailyStats, 1)

	repo.On("FindByChannel", ctx, channel).Return(nil, repository.ErrAnalyticsNotFound).Once()
	stats, err = uc.Get(ctx, channel, 0)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalView)
	assert.NotNil(t, stats.DailyStats)
}
