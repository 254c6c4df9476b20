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

// PlaylistRepository definition playlist persistence
type PlaylistRepository interface {
	Create(ctx context.Context, p *domain.Playlist) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Playlist, error)
	ListByOwner(ctx context.Context, owner primitive.ObjectID, publicOnly bool, p pagination.Params) ([]domain.Playlist, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, upd domain.PlaylistUpdate) (*domain.Playlist, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	AddVideo(ctx context.Context, id, video primitive.ObjectID) (*domain.Playlist, error)
	RemoveVideo(ctx context.Context, id, video primitive.ObjectID) (*domain.Playlist, error)
	// PullVideo drop a deleted video from every playlist
	PullVideo(ctx context.Context, video primitive.ObjectID) error
	EnsureIndexes(ctx context.Context) error
}

type playlistRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

// NewMongoPlaylistRepository create a mongo backed PlaylistRepository
func NewMongoPlaylistRepository(db *mongo.Database) PlaylistRepository {
	return &playlistRepository{coll: db.Collection("playlists"), now: time.Now}
}

func (r *playlistRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "owner", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	return err
}

func (r *playlistRepository) Create(ctx context.Context, p *domain.Playlist) error {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	if p.Videos == nil {
		p.Videos = []primitive.ObjectID{}
	}
	now := r.now()
	p.CreatedAt, p.UpdatedAt = now, now
	_, err := r.coll.InsertOne(ctx, p)
	return err
}

func (r *playlistRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Playlist, error) {
	var p domain.Playlist
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if database.IsNotFound(err) {
			return nil, domain.ErrPlaylistNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *playlistRepository) ListByOwner(ctx context.Context, owner primitive.ObjectID, publicOnly bool, p pagination.Params) ([]domain.Playlist, int64, error) {
	match := bson.M{"owner": owner}
	if publicOnly {
		match["isPublic"] = true
	}
	filter := mongo.Pipeline{{{Key: "$match", Value: match}}}
	page := database.PageStages(newestFirst, p.Skip(), int64(p.Limit))
	return database.AggregatePage[domain.Playlist](ctx, r.coll, filter, page)
}

func (r *playlistRepository) findOneAndUpdate(ctx context.Context, id primitive.ObjectID, update bson.M) (*domain.Playlist, error) {
	var p domain.Playlist
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&p)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, domain.ErrPlaylistNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *playlistRepository) Update(ctx context.Context, id primitive.ObjectID, upd domain.PlaylistUpdate) (*domain.Playlist, error) {
	set := bson.M{"updatedAt": r.now()}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.IsPublic != nil {
		set["isPublic"] = *upd.IsPublic
	}
	return r.findOneAndUpdate(ctx, id, bson.M{"$set": set})
}

func (r *playlistRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrPlaylistNotFound
	}
	return nil
}

// AddVideo $addToSet keeps the list free of duplicates and the order of insertion
func (r *playlistRepository) AddVideo(ctx context.Context, id, video primitive.ObjectID) (*domain.Playlist, error) {
	return r.findOneAndUpdate(ctx, id, bson.M{
		"$addToSet": bson.M{"videos": video},
		"$set":      bson.M{"updatedAt": r.now()},
	})
}

func (r *playlistRepository) RemoveVideo(ctx context.Context, id, video primitive.ObjectID) (*domain.Playlist, error) {
	return r.findOneAndUpdate(ctx, id, bson.M{
		"$pull": bson.M{"videos": video},
		"$set":  bson.M{"updatedAt": r.now()},
	})
}

func (r *playlistRepository) PullVideo(ctx context.Context, video primitive.ObjectID) error {
	_, err := r.coll.UpdateMany(ctx, bson.M{"videos": video}, bson.M{"$pull": bson.M{"videos": video}})
	return err
}
