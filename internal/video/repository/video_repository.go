package repository

import (
	"context"
	"regexp"
	"time"

	"video_platform_service/internal/video/domain"
	"video_platform_service/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// VideoRepository definition video persistence
type VideoRepository interface {
	Create(ctx context.Context, v *domain.Video) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Video, error)
	FindDetails(ctx context.Context, id primitive.ObjectID) (*domain.Details, error)
	FindDetailsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Details, error)
	List(ctx context.Context, plan domain.ListPlan) ([]domain.Details, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, upd domain.VideoUpdate) (*domain.Video, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	IncrementViews(ctx context.Context, id primitive.ObjectID) error
	IncrementShares(ctx context.Context, id primitive.ObjectID) (*domain.Video, error)
	CountByOwner(ctx context.Context, ownerID primitive.ObjectID, publishedOnly bool) (int64, error)
	EnsureIndexes(ctx context.Context) error
}

type videoRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

// NewMongoVideoRepository create a mongo backed VideoRepository
func NewMongoVideoRepository(db *mongo.Database) VideoRepository {
	return &videoRepository{coll: db.Collection("videos"), now: time.Now}
}

func (r *videoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "title", Value: "text"}, {Key: "description", Value: "text"}, {Key: "tags", Value: "text"}}},
		{Keys: bson.D{{Key: "owner", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "isPublished", Value: 1}, {Key: "createdAt", Value: -1}}},
	})
	return err
}

// MatchStage compile the plan filter, the same document feeds the count and the page
func MatchStage(f domain.Filter) bson.M {
	match := bson.M{}
	if f.PublishedOnly {
		match["isPublished"] = true
	}
	if f.OwnerID != nil {
		match["owner"] = *f.OwnerID
	}
	if f.Text != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(f.Text), Options: "i"}
		match["$or"] = bson.A{
			bson.M{"title": re},
			bson.M{"description": re},
			bson.M{"tags": re},
		}
	}
	return match
}

// SortStage sort document of the plan, _id breaks ties so pages are stable
func SortStage(s domain.Sort) bson.D {
	dir := 1
	if s.Desc {
		dir = -1
	}
	return bson.D{{Key: s.Field, Value: dir}, {Key: "_id", Value: dir}}
}

// ListPipeline filter stages and page stages of a plan
func ListPipeline(plan domain.ListPlan) (mongo.Pipeline, mongo.Pipeline) {
	filter := mongo.Pipeline{{{Key: "$match", Value: MatchStage(plan.Filter)}}}
	page := database.PageStages(SortStage(plan.Sort), plan.Skip(), plan.Limit())
	page = append(page, database.LookupUserSummary("owner", "owner")...)
	return filter, page
}

func (r *videoRepository) List(ctx context.Context, plan domain.ListPlan) ([]domain.Details, int64, error) {
	filter, page := ListPipeline(plan)
	return database.AggregatePage[domain.Details](ctx, r.coll, filter, page)
}

func (r *videoRepository) Create(ctx context.Context, v *domain.Video) error {
	if v.ID.IsZero() {
		v.ID = primitive.NewObjectID()
	}
	now := r.now()
	v.CreatedAt, v.UpdatedAt = now, now
	if v.Tags == nil {
		v.Tags = []string{}
	}
	_, err := r.coll.InsertOne(ctx, v)
	return err
}

func (r *videoRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Video, error) {
	var v domain.Video
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&v); err != nil {
		if database.IsNotFound(err) {
			return nil, domain.ErrVideoNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *videoRepository) details(ctx context.Context, match bson.M) ([]domain.Details, error) {
	pipeline := mongo.Pipeline{{{Key: "$match", Value: match}}}
	pipeline = append(pipeline, database.LookupUserSummary("owner", "owner")...)

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []domain.Details
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *videoRepository) FindDetails(ctx context.Context, id primitive.ObjectID) (*domain.Details, error) {
	out, err := r.details(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, domain.ErrVideoNotFound
	}
	return &out[0], nil
}

// FindDetailsByIDs keep the order of ids, missing videos are skipped
func (r *videoRepository) FindDetailsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Details, error) {
	if len(ids) == 0 {
		return []domain.Details{}, nil
	}
	found, err := r.details(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	return OrderByIDs(found, ids), nil
}

// OrderByIDs arrange details in the order of ids
func OrderByIDs(found []domain.Details, ids []primitive.ObjectID) []domain.Details {
	byID := make(map[primitive.ObjectID]domain.Details, len(found))
	for _, d := range found {
		byID[d.ID] = d
	}
	out := make([]domain.Details, 0, len(found))
	for _, id := range ids {
		if d, ok := byID[id]; ok {
			out = append(out, d)
		}
	}
	return out
}

func updateDoc(upd domain.VideoUpdate, now time.Time) bson.M {
	set := bson.M{"updatedAt": now}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Category != nil {
		set["category"] = *upd.Category
	}
	if upd.Tags != nil {
		set["tags"] = *upd.Tags
	}
	if upd.Thumbnail != nil {
		set["thumbnail"] = *upd.Thumbnail
	}
	if upd.IsPublished != nil {
		set["isPublished"] = *upd.IsPublished
	}
	return bson.M{"$set": set}
}

func (r *videoRepository) Update(ctx context.Context, id primitive.ObjectID, upd domain.VideoUpdate) (*domain.Video, error) {
	var v domain.Video
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, updateDoc(upd, r.now()),
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&v)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, domain.ErrVideoNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *videoRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrVideoNotFound
	}
	return nil
}

func (r *videoRepository) IncrementViews(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"views": 1}})
	return err
}

func (r *videoRepository) IncrementShares(ctx context.Context, id primitive.ObjectID) (*domain.Video, error) {
	var v domain.Video
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"shares": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&v)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, domain.ErrVideoNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *videoRepository) CountByOwner(ctx context.Context, ownerID primitive.ObjectID, publishedOnly bool) (int64, error) {
	filter := bson.M{"owner": ownerID}
	if publishedOnly {
		filter["isPublished"] = true
	}
	return r.coll.CountDocuments(ctx, filter)
}
