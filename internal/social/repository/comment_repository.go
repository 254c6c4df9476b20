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

// CommentRepository definition comment persistence
type CommentRepository interface {
	Create(ctx context.Context, c *domain.Comment) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Comment, error)
	List(ctx context.Context, video primitive.ObjectID, parent *primitive.ObjectID, p pagination.Params) ([]domain.CommentView, int64, error)
	UpdateContent(ctx context.Context, id primitive.ObjectID, content string) (*domain.Comment, error)
	// DeleteThread delete the comment and every reply below it, returning the removed ids
	DeleteThread(ctx context.Context, id primitive.ObjectID) ([]primitive.ObjectID, error)
	DeleteByVideo(ctx context.Context, video primitive.ObjectID) ([]primitive.ObjectID, error)
	EnsureIndexes(ctx context.Context) error
}

type commentRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

// NewMongoCommentRepository create a mongo backed CommentRepository
func NewMongoCommentRepository(db *mongo.Database) CommentRepository {
	return &commentRepository{coll: db.Collection("comments"), now: time.Now}
}

func (r *commentRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "video", Value: 1}, {Key: "parentComment", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "parentComment", Value: 1}}},
	})
	return err
}

func (r *commentRepository) Create(ctx context.Context, c *domain.Comment) error {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	now := r.now()
	c.CreatedAt, c.UpdatedAt = now, now
	_, err := r.coll.InsertOne(ctx, c)
	return err
}

func (r *commentRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Comment, error) {
	var c domain.Comment
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if database.IsNotFound(err) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, err
	}
	return &c, nil
}

// ListStages author, like count and reply count of each comment on the page
func ListStages(p pagination.Params) mongo.Pipeline {
	page := database.PageStages(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}, p.Skip(), int64(p.Limit))
	page = append(page, database.LookupUserSummary("owner", "owner")...)
	page = append(page,
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "likes",
			"localField":   "_id",
			"foreignField": "comment",
			"as":           "likes",
			"pipeline":     bson.A{bson.M{"$project": bson.M{"_id": 1}}},
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "comments",
			"localField":   "_id",
			"foreignField": "parentComment",
			"as":           "replies",
			"pipeline":     bson.A{bson.M{"$project": bson.M{"_id": 1}}},
		}}},
		bson.D{{Key: "$set", Value: bson.M{
			"likesCount":   bson.M{"$size": "$likes"},
			"repliesCount": bson.M{"$size": "$replies"},
		}}},
		bson.D{{Key: "$unset", Value: bson.A{"likes", "replies"}}},
	)
	return page
}

// List top level comments of a video, or the replies to parent, newest first
func (r *commentRepository) List(ctx context.Context, video primitive.ObjectID, parent *primitive.ObjectID, p pagination.Params) ([]domain.CommentView, int64, error) {
	match := bson.M{"video": video, "parentComment": nil}
	if parent != nil {
		match["parentComment"] = *parent
	}
	filter := mongo.Pipeline{{{Key: "$match", Value: match}}}
	return database.AggregatePage[domain.CommentView](ctx, r.coll, filter, ListStages(p))
}

func (r *commentRepository) UpdateContent(ctx context.Context, id primitive.ObjectID, content string) (*domain.Comment, error) {
	var c domain.Comment
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"content": content, "updatedAt": r.now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&c)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *commentRepository) childIDs(ctx context.Context, parents []primitive.ObjectID) ([]primitive.ObjectID, error) {
	raw, err := r.coll.Distinct(ctx, "_id", bson.M{"parentComment": bson.M{"$in": parents}})
	if err != nil {
		return nil, err
	}
	ids := make([]primitive.ObjectID, 0, len(raw))
	for _, v := range raw {
		if id, ok := v.(primitive.ObjectID); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (r *commentRepository) DeleteThread(ctx context.Context, id primitive.ObjectID) ([]primitive.ObjectID, error) {
	all := []primitive.ObjectID{id}
	level := []primitive.ObjectID{id}
	for len(level) > 0 {
		children, err := r.childIDs(ctx, level)
		if err != nil {
			return nil, err
		}
		all = append(all, children...)
		level = children
	}

	res, err := r.coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": all}})
	if err != nil {
		return nil, err
	}
	if res.DeletedCount == 0 {
		return nil, domain.ErrCommentNotFound
	}
	return all, nil
}

func (r *commentRepository) DeleteByVideo(ctx context.Context, video primitive.ObjectID) ([]primitive.ObjectID, error) {
	raw, err := r.coll.Distinct(ctx, "_id", bson.M{"video": video})
	if err != nil {
		return nil, err
	}
	ids := make([]primitive.ObjectID, 0, len(raw))
	for _, v := range raw {
		if id, ok := v.(primitive.ObjectID); ok {
			ids = append(ids, id)
		}
	}
	if _, err := r.coll.DeleteMany(ctx, bson.M{"video": video}); err != nil {
		return nil, err
	}
	return ids, nil
}
