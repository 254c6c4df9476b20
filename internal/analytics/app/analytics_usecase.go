package app

import (
	"context"
	"errors"
	"time"

	"video_platform_service/internal/analytics/domain"
	"video_platform_service/internal/analytics/repository"
	errprocess "video_platform_service/pkg/err"
	"video_platform_service/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const (
	// DefaultDays window returned when none is asked for
	DefaultDays = 30
	// MaxDays widest window
	MaxDays = repository.MaxDailyStats
)

// AnalyticsUseCase channel analytics
type AnalyticsUseCase interface {
	Record(ctx context.Context, channelID primitive.ObjectID, m domain.Metric)
	Get(ctx context.Context, channelID primitive.ObjectID, days int) (*domain.ChannelAnalytics, error)
}

type analyticsUseCase struct {
	repo repository.AnalyticsRepository
	now  func() time.Time
}

// NewAnalyticsUseCase create AnalyticsUseCase
func NewAnalyticsUseCase(repo repository.AnalyticsRepository) AnalyticsUseCase {
	return &analyticsUseCase{repo: repo, now: time.Now}
}

// Record best-effort, a failure never reaches the caller
func (a *analyticsUseCase) Record(ctx context.Context, channelID primitive.ObjectID, m domain.Metric) {
	if channelID.IsZero() || m.IsZero() {
		return
	}
	now := a.now().UTC()
	if err := a.repo.Increment(ctx, channelID, now.Format(domain.DateLayout), m, now); err != nil {
		logger.Log.Warn("record analytics failed", zap.String("channel", channelID.Hex()), zap.Error(err))
	}
}

// Get rollup plus the last days of the series, an untouched channel reads as zeros
func (a *analyticsUseCase) Get(ctx context.Context, channelID primitive.ObjectID, days int) (*domain.ChannelAnalytics, error) {
	if days <= 0 {
		days = DefaultDays
	}
	if days > MaxDays {
		days = MaxDays
	}

	stats, err := a.repo.FindByChannel(ctx, channelID)
	if errors.Is(err, repository.ErrAnalyticsNotFound) {
		return &domain.ChannelAnalytics{Channel: channelID, DailyStats: []domain.DailyStat{}}, nil
	}
	if err != nil {
		return nil, errprocess.Internal("Failed to load analytics", err)
	}

	stats.DailyStats = stats.LastDays(a.now().UTC(), days)
	return stats, nil
}
