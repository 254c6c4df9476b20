package repository

import (
	"context"
	"errors"
	"time"

	"video_platform_service/internal/analytics/domain"
	"video_platform_service/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MaxDailyStats 每個頻道最多保留的天數
const MaxDailyStats = 365

// ErrAnalyticsNotFound channel has no analytics yet
var ErrAnalyticsNotFound = errors.New("analytics not found")

// AnalyticsRepository definition channel analytics persistence
type AnalyticsRepository interface {
	Increment(ctx context.Context, channelID primitive.ObjectID, date string, m domain.Metric, now time.Time) error
	FindByChannel(ctx context.Context, channelID primitive.ObjectID) (*domain.ChannelAnalytics, error)
	EnsureIndexes(ctx context.Context) error
}

type analyticsRepository struct {
	coll *mongo.Collection
}

// NewMongoAnalyticsRepository create a mongo backed AnalyticsRepository
func NewMongoAnalyticsRepository(db *mongo.Database) AnalyticsRepository {
	return &analyticsRepository{coll: db.Collection("channelanalytics")}
}

func (r *analyticsRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "channel", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func incDoc(prefix string, in map[string]int64, out bson.M) {
	for k, v := range in {
		out[prefix+k] = v
	}
}

// incBucket $inc the rollup and the existing bucket of date, false when the bucket is missing
func (r *analyticsRepository) incBucket(ctx context.Context, channelID primitive.ObjectID, date string, m domain.Metric, now time.Time) (bool, error) {
	inc := bson.M{}
	incDoc("", m.Totals(), inc)
	incDoc("dailyStats.$.", m.Daily(), inc)
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"channel": channelID, "dailyStats.date": date},
		bson.M{"$inc": inc, "$set": bson.M{"updatedAt": now}},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// Increment add m to the rollup and to the bucket of date, creating either when missing
func (r *analyticsRepository) Increment(ctx context.Context, channelID primitive.ObjectID, date string, m domain.Metric, now time.Time) error {
	if m.IsZero() {
		return nil
	}
	daily := m.Daily()

	if len(daily) > 0 {
		ok, err := r.incBucket(ctx, channelID, date, m, now)
		if err != nil || ok {
			return err
		}
	}

	// 當天還沒有 bucket (或整份文件不存在)
	filter := bson.M{"channel": channelID}
	update := bson.M{"$set": bson.M{"updatedAt": now}}
	if totals := m.Totals(); len(totals) > 0 {
		inc := bson.M{}
		incDoc("", totals, inc)
		update["$inc"] = inc
	}
	if len(daily) > 0 {
		// 只在 bucket 仍不存在時 push，同時建立的另一方會撞上 channel 的 unique index
		filter["dailyStats.date"] = bson.M{"$ne": date}
		update["$push"] = bson.M{"dailyStats": bson.M{
			"$each":  bson.A{m.Bucket(date)},
			"$slice": -MaxDailyStats,
		}}
	}
	_, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if database.IsDuplicateKey(err) && len(daily) > 0 {
		ok, err := r.incBucket(ctx, channelID, date, m, now)
		if err == nil && !ok {
			err = errors.New("analytics bucket missing after concurrent create")
		}
		return err
	}
	return err
}

func (r *analyticsRepository) FindByChannel(ctx context.Context, channelID primitive.ObjectID) (*domain.ChannelAnalytics, error) {
	var a domain.ChannelAnalytics
	if err := r.coll.FindOne(ctx, bson.M{"channel": channelID}).Decode(&a); err != nil {
		if database.IsNotFound(err) {
			return nil, ErrAnalyticsNotFound
		}
		return nil, err
	}
	return &a, nil
}
