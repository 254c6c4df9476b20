package repository

import (
	"context"
	"time"

	"video_platform_service/internal/social/domain"
	"video_platform_service/pkg/database"
	"video_platform_service/pkg/pagination"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LikeRepository definition like persistence
type LikeRepository interface {
	Create(ctx context.Context, l *domain.Like) error
	// Remove delete the like of the same user on the same target, reports whether one existed
	Remove(ctx context.Context, l *domain.Like) (bool, error)
	LikedVideoIDs(ctx context.Context, user primitive.ObjectID, p pagination.Params) ([]primitive.ObjectID, int64, error)
	DeleteByVideo(ctx context.Context, video primitive.ObjectID) error
	DeleteByComments(ctx context.Context, comments []primitive.ObjectID) error
	EnsureIndexes(ctx context.Context) error
}

type likeRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

// NewMongoLikeRepository create a mongo backed LikeRepository
func NewMongoLikeRepository(db *mongo.Database) LikeRepository {
	return &likeRepository{coll: db.Collection("likes"), now: time.Now}
}

// EnsureIndexes unique per target, each index only covers likes of its own kind
func (r *likeRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "likedBy", Value: 1}, {Key: "video", Value: 1}},
			Options: options.Index().SetUnique(true).
				SetPartialFilterExpression(bson.M{"video": bson.M{"$exists": true}}),
		},
		{
			Keys: bson.D{{Key: "likedBy", Value: 1}, {Key: "comment", Value: 1}},
			Options: options.Index().SetUnique(true).
				SetPartialFilterExpression(bson.M{"comment": bson.M{"$exists": true}}),
		},
		{Keys: bson.D{{Key: "video", Value: 1}}},
		{Keys: bson.D{{Key: "comment", Value: 1}}},
	})
	return err
}

func targetFilter(l *domain.Like) bson.M {
	f := bson.M{"likedBy": l.LikedBy}
	if l.Video != nil {
		f["video"] = *l.Video
	} else if l.Comment != nil {
		f["comment"] = *l.Comment
	}
	return f
}

func (r *likeRepository) Create(ctx context.Context, l *domain.Like) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if l.ID.IsZero() {
		l.ID = primitive.NewObjectID()
	}
	l.CreatedAt = r.now()
	if _, err := r.coll.InsertOne(ctx, l); err != nil {
		if database.IsDuplicateKey(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *likeRepository) Remove(ctx context.Context, l *domain.Like) (bool, error) {
	if err := l.Validate(); err != nil {
		return false, err
	}
	res, err := r.coll.DeleteOne(ctx, targetFilter(l))
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// LikedVideoIDs most recently liked first
func (r *likeRepository) LikedVideoIDs(ctx context.Context, user primitive.ObjectID, p pagination.Params) ([]primitive.ObjectID, int64, error) {
	filter := mongo.Pipeline{{{Key: "$match", Value: bson.M{"likedBy": user, "video": bson.M{"$exists": true}}}}}
	page := database.PageStages(newestFirst, p.Skip(), int64(p.Limit))
	likes, total, err := database.AggregatePage[domain.Like](ctx, r.coll, filter, page)
	if err != nil {
		return nil, 0, err
	}
	ids := make([]primitive.ObjectID, 0, len(likes))
	for _, l := range likes {
		if l.Video != nil {
			ids = append(ids, *l.Video)
		}
	}
	return ids, total, nil
}

func (r *likeRepository) DeleteByVideo(ctx context.Context, video primitive.ObjectID) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{"video": video})
	return err
}

func (r *likeRepository) DeleteByComments(ctx context.Context, comments []primitive.ObjectID) error {
	if len(comments) == 0 {
		return nil
	}
	_, err := r.coll.DeleteMany(ctx, bson.M{"comment": bson.M{"$in": comments}})
	return err
}
