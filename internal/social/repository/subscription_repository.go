package repository

import (
	"context"
	"errors"
	"time"

	"video_platform_service/internal/social/domain"
	"video_platform_service/pkg/database"
	"video_platform_service/pkg/pagination"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrDuplicate the unique index already holds this pair
var ErrDuplicate = errors.New("already exists")

var newestFirst = bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}

// SubscriptionRepository definition subscription persistence
type SubscriptionRepository interface {
	Create(ctx context.Context, s *domain.Subscription) error
	Delete(ctx context.Context, subscriber, channel primitive.ObjectID) (bool, error)
	IsSubscribed(ctx context.Context, subscriber, channel primitive.ObjectID) (bool, error)
	CountSubscribers(ctx context.Context, channel primitive.ObjectID) (int64, error)
	SubscriberIDs(ctx context.Context, channel primitive.ObjectID) ([]primitive.ObjectID, error)
	ListSubscribers(ctx context.Context, channel primitive.ObjectID, p pagination.Params) ([]domain.SubscriberView, int64, error)
	ListSubscribed(ctx context.Context, subscriber primitive.ObjectID, p pagination.Params) ([]domain.ChannelView, int64, error)
	EnsureIndexes(ctx context.Context) error
}

type subscriptionRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

// NewMongoSubscriptionRepository create a mongo backed SubscriptionRepository
func NewMongoSubscriptionRepository(db *mongo.Database) SubscriptionRepository {
	return &subscriptionRepository{coll: db.Collection("subscriptions"), now: time.Now}
}

func (r *subscriptionRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "subscriber", Value: 1}, {Key: "channel", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "channel", Value: 1}, {Key: "createdAt", Value: -1}}},
	})
	return err
}

func (r *subscriptionRepository) Create(ctx context.Context, s *domain.Subscription) error {
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
	}
	now := r.now()
	s.CreatedAt, s.UpdatedAt = now, now
	if _, err := r.coll.InsertOne(ctx, s); err != nil {
		if database.IsDuplicateKey(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *subscriptionRepository) Delete(ctx context.Context, subscriber, channel primitive.ObjectID) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"subscriber": subscriber, "channel": channel})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *subscriptionRepository) IsSubscribed(ctx context.Context, subscriber, channel primitive.ObjectID) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"subscriber": subscriber, "channel": channel}, options.Count().SetLimit(1))
	return n > 0, err
}

func (r *subscriptionRepository) CountSubscribers(ctx context.Context, channel primitive.ObjectID) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"channel": channel})
}

func (r *subscriptionRepository) SubscriberIDs(ctx context.Context, channel primitive.ObjectID) ([]primitive.ObjectID, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"channel": channel}, options.Find().SetProjection(bson.M{"subscriber": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var subs []domain.Subscription
	if err := cursor.All(ctx, &subs); err != nil {
		return nil, err
	}
	ids := make([]primitive.ObjectID, 0, len(subs))
	for _, s := range subs {
		ids = append(ids, s.Subscriber)
	}
	return ids, nil
}

func (r *subscriptionRepository) ListSubscribers(ctx context.Context, channel primitive.ObjectID, p pagination.Params) ([]domain.SubscriberView, int64, error) {
	filter := mongo.Pipeline{{{Key: "$match", Value: bson.M{"channel": channel}}}}
	page := database.PageStages(newestFirst, p.Skip(), int64(p.Limit))
	page = append(page, database.LookupUserSummary("subscriber", "subscriber")...)
	return database.AggregatePage[domain.SubscriberView](ctx, r.coll, filter, page)
}

func (r *subscriptionRepository) ListSubscribed(ctx context.Context, subscriber primitive.ObjectID, p pagination.Params) ([]domain.ChannelView, int64, error) {
	filter := mongo.Pipeline{{{Key: "$match", Value: bson.M{"subscriber": subscriber}}}}
	page := database.PageStages(newestFirst, p.Skip(), int64(p.Limit))
	page = append(page, database.LookupUserSummary("channel", "channel")...)
	return database.AggregatePage[domain.ChannelView](ctx, r.coll, filter, page)
}
